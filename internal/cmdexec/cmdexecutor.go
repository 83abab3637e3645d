package cmdexec

import (
	"io"
	"os/exec"

	"github.com/pkg/errors"
)

// CommandExecutor runs an external tool to completion and reports its
// exit code.
type CommandExecutor interface {
	SetStdin(stdin io.Reader)
	SetStdout(stdout io.Writer)
	SetStderr(stderr io.Writer)
	SetDir(dir string)
	Run(name string, args ...string) (int, error)
	Output(name string, args ...string) ([]byte, error)
}

type OSCommandExecutor struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	dir    string
}

var _ CommandExecutor = &OSCommandExecutor{}

func (c *OSCommandExecutor) SetStdin(stdin io.Reader) {
	c.Stdin = stdin
}

func (c *OSCommandExecutor) SetStdout(stdout io.Writer) {
	c.Stdout = stdout
}

func (c *OSCommandExecutor) SetStderr(stderr io.Writer) {
	c.Stderr = stderr
}

func (c *OSCommandExecutor) SetDir(dir string) {
	c.dir = dir
}

// Run blocks until the child exits, streaming the configured stdio. The
// exit code is -1 when the child never started, in which case err
// carries the OS context.
func (c *OSCommandExecutor) Run(name string, args ...string) (int, error) {
	cmd := exec.Command(name, args...)

	cmd.Dir = c.dir
	cmd.Stdin = c.Stdin
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr

	err := cmd.Run()
	if cmd.ProcessState == nil {
		return -1, errors.Wrapf(err, "fail to run %s", name)
	}

	return cmd.ProcessState.ExitCode(), err
}

// Output runs the tool with stdout captured rather than streamed.
// Stderr still goes to the configured writer.
func (c *OSCommandExecutor) Output(name string, args ...string) ([]byte, error) {
	cmd := exec.Command(name, args...)

	cmd.Dir = c.dir
	cmd.Stderr = c.Stderr

	out, err := cmd.Output()
	if err != nil {
		return nil, errors.Wrapf(err, "fail to run %s", name)
	}

	return out, nil
}
