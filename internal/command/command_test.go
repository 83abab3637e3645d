package command

import (
	"context"
	"path/filepath"
	"testing"

	goversion "github.com/hashicorp/go-version"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ergomake/tf/internal/tfcfg"
)

// fakeTerraform records calls instead of spawning terraform.
type fakeTerraform struct {
	calls       []string
	varFiles    []string
	autoApprove bool
	exitCode    int
	err         error
	version     *goversion.Version
	versionErr  error
}

func (f *fakeTerraform) Plan(varFile string) (int, error) {
	f.calls = append(f.calls, "plan")
	f.varFiles = append(f.varFiles, varFile)
	return f.exitCode, f.err
}

func (f *fakeTerraform) Apply(varFile string, autoApprove bool) (int, error) {
	f.calls = append(f.calls, "apply")
	f.varFiles = append(f.varFiles, varFile)
	f.autoApprove = autoApprove
	return f.exitCode, f.err
}

func (f *fakeTerraform) Destroy(varFile string) (int, error) {
	f.calls = append(f.calls, "destroy")
	f.varFiles = append(f.varFiles, varFile)
	return f.exitCode, f.err
}

func (f *fakeTerraform) Init(backendConfig string) (int, error) {
	f.calls = append(f.calls, "init")
	f.varFiles = append(f.varFiles, backendConfig)
	return f.exitCode, f.err
}

func (f *fakeTerraform) Version() (*goversion.Version, error) {
	f.calls = append(f.calls, "version")
	return f.version, f.versionErr
}

func stagingConfig() *tfcfg.Config {
	return &tfcfg.Config{
		Environment: "staging",
		AWSProfile:  "default",
		EnvsDir:     "envs",
		Binary:      "terraform",
	}
}

func TestPlan(t *testing.T) {
	tf := &fakeTerraform{}

	exitCode, err := NewPlan(stagingConfig(), tf).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, exitCode)
	assert.Equal(t, []string{"plan"}, tf.calls)
	assert.Equal(t, []string{filepath.Join("envs", "staging", "main.tfvars")}, tf.varFiles)
}

func TestApply(t *testing.T) {
	t.Run("passes auto approve through", func(t *testing.T) {
		tf := &fakeTerraform{}

		_, err := NewApply(stagingConfig(), tf, true).Run(context.Background())
		require.NoError(t, err)

		assert.Equal(t, []string{"apply"}, tf.calls)
		assert.True(t, tf.autoApprove)
	})

	t.Run("defaults to interactive approval", func(t *testing.T) {
		tf := &fakeTerraform{}

		_, err := NewApply(stagingConfig(), tf, false).Run(context.Background())
		require.NoError(t, err)

		assert.False(t, tf.autoApprove)
	})
}

func TestDestroy(t *testing.T) {
	tf := &fakeTerraform{}

	_, err := NewDestroy(stagingConfig(), tf).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"destroy"}, tf.calls)
	assert.Equal(t, []string{filepath.Join("envs", "staging", "main.tfvars")}, tf.varFiles)
}

func TestInit(t *testing.T) {
	tf := &fakeTerraform{}

	_, err := NewInit(stagingConfig(), tf).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"init"}, tf.calls)
	assert.Equal(t, []string{filepath.Join("envs", "staging", "terraform_state.tfvars")}, tf.varFiles)
}

func TestExitCodePropagation(t *testing.T) {
	tf := &fakeTerraform{exitCode: 2}

	exitCode, err := NewPlan(stagingConfig(), tf).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, exitCode)
}

func TestVersionPreflight(t *testing.T) {
	t.Run("skips the check when no minimum is configured", func(t *testing.T) {
		tf := &fakeTerraform{}

		_, err := NewPlan(stagingConfig(), tf).Run(context.Background())
		require.NoError(t, err)

		assert.Equal(t, []string{"plan"}, tf.calls)
	})

	t.Run("refuses to run with an older terraform", func(t *testing.T) {
		cfg := stagingConfig()
		cfg.MinTerraformVersion = "1.5.0"

		tf := &fakeTerraform{version: goversion.Must(goversion.NewVersion("1.4.6"))}

		_, err := NewPlan(cfg, tf).Run(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "older than the required minimum")

		assert.Equal(t, []string{"version"}, tf.calls)
	})

	t.Run("accepts an equal version", func(t *testing.T) {
		cfg := stagingConfig()
		cfg.MinTerraformVersion = "1.5.0"

		tf := &fakeTerraform{version: goversion.Must(goversion.NewVersion("1.5.0"))}

		_, err := NewPlan(cfg, tf).Run(context.Background())
		require.NoError(t, err)

		assert.Equal(t, []string{"version", "plan"}, tf.calls)
	})

	t.Run("errors when the version cannot be determined", func(t *testing.T) {
		cfg := stagingConfig()
		cfg.MinTerraformVersion = "1.5.0"

		tf := &fakeTerraform{versionErr: assert.AnError}

		_, err := NewApply(cfg, tf, false).Run(context.Background())
		require.Error(t, err)

		assert.Equal(t, []string{"version"}, tf.calls)
	})
}
