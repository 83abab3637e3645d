package command

import (
	"context"

	"github.com/hashicorp/go-hclog"

	"github.com/ergomake/tf/internal/terraform"
	"github.com/ergomake/tf/internal/tfcfg"
)

type initCommand struct {
	cfg *tfcfg.Config
	tf  terraform.Client
}

func NewInit(cfg *tfcfg.Config, tf terraform.Client) *initCommand {
	return &initCommand{cfg, tf}
}

func (c *initCommand) Run(ctx context.Context) (int, error) {
	if err := checkTerraformVersion(ctx, c.cfg, c.tf); err != nil {
		return 0, err
	}

	hclog.FromContext(ctx).Debug("initializing", "environment", c.cfg.Environment, "backendConfig", c.cfg.BackendConfigFile())

	return c.tf.Init(c.cfg.BackendConfigFile())
}
