package command

import (
	"context"

	"github.com/hashicorp/go-hclog"

	"github.com/ergomake/tf/internal/terraform"
	"github.com/ergomake/tf/internal/tfcfg"
)

type planCommand struct {
	cfg *tfcfg.Config
	tf  terraform.Client
}

func NewPlan(cfg *tfcfg.Config, tf terraform.Client) *planCommand {
	return &planCommand{cfg, tf}
}

func (c *planCommand) Run(ctx context.Context) (int, error) {
	if err := checkTerraformVersion(ctx, c.cfg, c.tf); err != nil {
		return 0, err
	}

	hclog.FromContext(ctx).Debug("planning", "environment", c.cfg.Environment, "varFile", c.cfg.VarFile())

	return c.tf.Plan(c.cfg.VarFile())
}
