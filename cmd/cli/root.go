package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ergomake/tf/internal/cmdexec"
	"github.com/ergomake/tf/internal/terraform"
	"github.com/ergomake/tf/internal/tfcfg"
)

var rootCmd = &cobra.Command{
	Use:   "tf",
	Short: "tf wraps terraform with per-environment variable files",
	Long: `tf is a thin front-end for terraform.

It selects the variable file for the active environment under envs/<ENV>
and forwards plan, apply, destroy and init with the right flags. The
active environment comes from the ENV variable, usually exported by the
.envrc file that "tf set-env" maintains.`,
}

func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = fmt.Sprintf("%s (built from %s on %s)", version, commit, date)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newTerraformClient wires terraform onto the process stdio so its
// interactive prompts and progress output show up live.
func newTerraformClient(cfg *tfcfg.Config) terraform.Client {
	return terraform.NewCLI(cfg.Binary, &cmdexec.OSCommandExecutor{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	})
}
