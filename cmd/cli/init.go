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
	initCmd.Flags().String("env", "", "environment to initialize for, overrides the ENV variable")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "initialize terraform against the active environment's backend",
	Long: `The init command runs "terraform init" with the backend configuration
of the active environment, envs/<ENV>/terraform_state.tfvars. Run it
after every environment switch.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		logger := hclog.Default()
		logLevel := hclog.LevelFromString(os.Getenv("TF_WRAP_LOG"))
		if logLevel != hclog.NoLevel {
			logger.SetLevel(logLevel)
		}
		ctx := hclog.WithContext(context.Background(), logger)

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

		initialize := command.NewInit(cfg, newTerraformClient(cfg))

		exitCode, err := initialize.Run(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", errors.Wrap(err, "fail to init"))
			os.Exit(1)
			return
		}

		os.Exit(exitCode)
	},
}
