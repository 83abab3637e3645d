package command

import (
	"context"

	"github.com/hashicorp/go-hclog"
	goversion "github.com/hashicorp/go-version"
	"github.com/pkg/errors"

	"github.com/ergomake/tf/internal/terraform"
	"github.com/ergomake/tf/internal/tfcfg"
)

const (
	// EnvrcFileName is the direnv file set-env maintains.
	EnvrcFileName = ".envrc"
	// CacheDirName is terraform's local working directory. set-env
	// drops it so stale providers and backend settings never leak
	// across environments.
	CacheDirName = ".terraform"
)

// checkTerraformVersion enforces cfg.MinTerraformVersion when set. When
// unset no subprocess runs before the real operation.
func checkTerraformVersion(ctx context.Context, cfg *tfcfg.Config, tf terraform.Client) error {
	if cfg.MinTerraformVersion == "" {
		return nil
	}

	min, err := goversion.NewVersion(cfg.MinTerraformVersion)
	if err != nil {
		return errors.Wrapf(err, "fail to parse minTerraformVersion %q", cfg.MinTerraformVersion)
	}

	installed, err := tf.Version()
	if err != nil {
		return errors.Wrap(err, "fail to get terraform version")
	}

	if installed.LessThan(min) {
		return errors.Errorf("terraform %s is older than the required minimum %s", installed, min)
	}

	hclog.FromContext(ctx).Debug("terraform version ok", "installed", installed.String(), "minimum", min.String())

	return nil
}
