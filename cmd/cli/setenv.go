package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ergomake/tf/internal/command"
)

func init() {
	rootCmd.AddCommand(setEnvCmd)
}

var setEnvCmd = &cobra.Command{
	Use:   "set-env <NEW_ENV>",
	Short: "switch the active environment by rewriting .envrc",
	Long: `The set-env command points .envrc at a different environment.

Every .envrc line containing "export ENV" is replaced with an export of
the new environment name; all other lines are kept as they are. The
local .terraform cache directory is removed so the next init starts
clean. No terraform process is spawned.`,
	Example: `# Switch to the prod environment
tf set-env prod`,
	Args: cobra.ExactArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		logger := hclog.Default()
		logLevel := hclog.LevelFromString(os.Getenv("TF_WRAP_LOG"))
		if logLevel != hclog.NoLevel {
			logger.SetLevel(logLevel)
		}
		ctx := hclog.WithContext(context.Background(), logger)

		setEnv := command.NewSetEnv(command.EnvrcFileName, command.CacheDirName, os.Stdout)

		if err := setEnv.Run(ctx, args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", errors.Wrapf(err, "fail to switch environment to %s", args[0]))
			os.Exit(1)
		}
	},
}
