package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/ergomake/tf/internal/command"
	"github.com/ergomake/tf/internal/tfcfg"
)

func init() {
	applyCmd.Flags().BoolP("auto-approve", "y", false, "skip terraform's interactive approval of the plan")
	applyCmd.Flags().String("env", "", "environment to apply to, overrides the ENV variable")
	rootCmd.AddCommand(applyCmd)
}

var applyCmd = &cobra.Command{
	Use:   "apply [-y]",
	Short: "apply the planned changes to the active environment",
	Long: `The apply command runs "terraform apply" with the variable file of the
active environment, envs/<ENV>/main.tfvars. Without -y terraform asks
for confirmation before touching anything.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		logger := hclog.Default()
		logLevel := hclog.LevelFromString(os.Getenv("TF_WRAP_LOG"))
		if logLevel != hclog.NoLevel {
			logger.SetLevel(logLevel)
		}
		ctx := hclog.WithContext(context.Background(), logger)

		autoApprove, err := cmd.Flags().GetBool("auto-approve")
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", errors.Wrap(err, "fail to get --auto-approve flag, this is a bug in tf"))
			os.Exit(1)
			return
		}

		env, err := cmd.Flags().GetString("env")
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", errors.Wrap(err, "fail to get --env flag, this is a bug in tf"))
			os.Exit(1)
			return
		}

		cfg, err := tfcfg.Load(tfcfg.DefaultFileName, os.Getenv, env)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			os.Exit(1)
			return
		}

		apply := command.NewApply(cfg, newTerraformClient(cfg), autoApprove)

		exitCode, err := apply.Run(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", errors.Wrap(err, "fail to apply"))
			os.Exit(1)
			return
		}

		os.Exit(exitCode)
	},
}
