package command

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"

	"github.com/ergomake/tf/internal/envrc"
)

type setEnvCommand struct {
	envrcPath string
	cacheDir  string
	out       io.Writer
}

func NewSetEnv(envrcPath, cacheDir string, out io.Writer) *setEnvCommand {
	return &setEnvCommand{envrcPath, cacheDir, out}
}

// Run points the envrc file at newEnv and drops the terraform cache
// directory. It never spawns terraform; the user reloads their shell
// and re-runs init afterwards.
func (c *setEnvCommand) Run(ctx context.Context, newEnv string) error {
	logger := hclog.FromContext(ctx)

	replaced, err := envrc.SetEnvironment(c.envrcPath, newEnv)
	if err != nil {
		return err
	}
	logger.Debug("rewrote envrc", "path", c.envrcPath, "replaced", replaced)

	if _, err := os.Stat(c.cacheDir); err == nil {
		if err := os.RemoveAll(c.cacheDir); err != nil {
			return errors.Wrap(err, "unable to remove terraform cache directory")
		}
		logger.Debug("removed terraform cache", "dir", c.cacheDir)
	}

	fmt.Fprintln(c.out, "Run 'direnv allow' to load new env changes. Terraform will need to be init'd again.")

	return nil
}
