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
	destroyCmd.Flags().String("env", "", "environment to destroy, overrides the ENV variable")
	rootCmd.AddCommand(destroyCmd)
}

var destroyCmd = &cobra.Command{
	Use:   "destroy",
	Short: "destroy the infrastructure of the active environment",
	Long: `The destroy command runs "terraform destroy" with the variable file of
the active environment, envs/<ENV>/main.tfvars. Terraform asks for
confirmation before destroying anything.`,
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

		destroy := command.NewDestroy(cfg, newTerraformClient(cfg))

		exitCode, err := destroy.Run(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", errors.Wrap(err, "fail to destroy"))
			os.Exit(1)
			return
		}

		os.Exit(exitCode)
	},
}
