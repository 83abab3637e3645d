package command

import (
	"context"

	"github.com/hashicorp/go-hclog"

	"github.com/ergomake/tf/internal/terraform"
	"github.com/ergomake/tf/internal/tfcfg"
)

type destroyCommand struct {
	cfg *tfcfg.Config
	tf  terraform.Client
}

func NewDestroy(cfg *tfcfg.Config, tf terraform.Client) *destroyCommand {
	return &destroyCommand{cfg, tf}
}

func (c *destroyCommand) Run(ctx context.Context) (int, error) {
	if err := checkTerraformVersion(ctx, c.cfg, c.tf); err != nil {
		return 0, err
	}

	hclog.FromContext(ctx).Debug("destroying", "environment", c.cfg.Environment, "varFile", c.cfg.VarFile())

	return c.tf.Destroy(c.cfg.VarFile())
}
