package command

import (
	"context"

	"github.com/hashicorp/go-hclog"

	"github.com/ergomake/tf/internal/terraform"
	"github.com/ergomake/tf/internal/tfcfg"
)

type applyCommand struct {
	cfg         *tfcfg.Config
	tf          terraform.Client
	autoApprove bool
}

func NewApply(cfg *tfcfg.Config, tf terraform.Client, autoApprove bool) *applyCommand {
	return &applyCommand{cfg, tf, autoApprove}
}

func (c *applyCommand) Run(ctx context.Context) (int, error) {
	if err := checkTerraformVersion(ctx, c.cfg, c.tf); err != nil {
		return 0, err
	}

	hclog.FromContext(ctx).Debug("applying", "environment", c.cfg.Environment, "varFile", c.cfg.VarFile(), "autoApprove", c.autoApprove)

	return c.tf.Apply(c.cfg.VarFile(), c.autoApprove)
}
