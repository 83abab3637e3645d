package terraform

import (
	"os/exec"
	"strings"

	goversion "github.com/hashicorp/go-version"
	"github.com/pkg/errors"

	"github.com/ergomake/tf/internal/cmdexec"
)

type terraformCLI struct {
	binary string
	exec   cmdexec.CommandExecutor
}

var _ Client = &terraformCLI{}

// NewCLI wraps the named terraform binary, resolved through PATH by the
// executor.
func NewCLI(binary string, exec cmdexec.CommandExecutor) *terraformCLI {
	return &terraformCLI{binary, exec}
}

func (t *terraformCLI) Plan(varFile string) (int, error) {
	return t.run("plan", "-var-file", varFile)
}

func (t *terraformCLI) Apply(varFile string, autoApprove bool) (int, error) {
	args := []string{"apply", "-var-file", varFile}
	if autoApprove {
		args = append(args, "--auto-approve")
	}

	return t.run(args...)
}

func (t *terraformCLI) Destroy(varFile string) (int, error) {
	return t.run("destroy", "-var-file", varFile)
}

func (t *terraformCLI) Init(backendConfig string) (int, error) {
	return t.run("init", "-backend-config", backendConfig)
}

func (t *terraformCLI) run(args ...string) (int, error) {
	exitCode, err := t.exec.Run(t.binary, args...)
	if _, ok := err.(*exec.ExitError); ok {
		// terraform's own failures surface through the exit code, they
		// are not an error of this wrapper
		return exitCode, nil
	}
	if err != nil {
		return exitCode, errors.Wrapf(err, "fail to run %s %s", t.binary, strings.Join(args, " "))
	}

	return exitCode, nil
}

// Version parses the leading "Terraform vX.Y.Z" line of
// "terraform version" output.
func (t *terraformCLI) Version() (*goversion.Version, error) {
	out, err := t.exec.Output(t.binary, "version")
	if err != nil {
		return nil, errors.Wrapf(err, "fail to run %s version", t.binary)
	}

	line, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	raw := strings.TrimPrefix(strings.TrimSpace(line), "Terraform v")

	v, err := goversion.NewVersion(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "fail to parse terraform version from %q", line)
	}

	return v, nil
}
