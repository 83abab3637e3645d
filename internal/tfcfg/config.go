package tfcfg

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is the optional per-project config file.
const DefaultFileName = ".tf.yaml"

const (
	defaultEnvsDir = "envs"
	defaultBinary  = "terraform"
)

type configFile struct {
	EnvsDir             string `yaml:"envsDir,omitempty"`
	Binary              string `yaml:"binary,omitempty"`
	MinTerraformVersion string `yaml:"minTerraformVersion,omitempty"`
}

// Config is built once at startup and handed to every command handler.
// Handlers never read process environment variables themselves.
type Config struct {
	Environment         string
	AWSProfile          string
	EnvsDir             string
	Binary              string
	MinTerraformVersion string
}

// Load builds the configuration for a guarded command. The environment
// name comes from envOverride when non-empty, otherwise from the ENV
// variable; AWS_PROFILE must always be present so terraform never runs
// against a default credential chain by accident. getenv is injected so
// tests don't have to mutate the real process environment.
func Load(path string, getenv func(string) string, envOverride string) (*Config, error) {
	file, err := loadFile(path)
	if err != nil {
		return nil, err
	}

	environment := envOverride
	if environment == "" {
		environment = getenv("ENV")
	}
	if environment == "" {
		return nil, errors.New("ENV environment variable is not set, run \"tf set-env\" and reload your shell, or pass --env")
	}

	profile := getenv("AWS_PROFILE")
	if profile == "" {
		return nil, errors.New("AWS_PROFILE environment variable is not set")
	}

	cfg := &Config{
		Environment:         environment,
		AWSProfile:          profile,
		EnvsDir:             defaultEnvsDir,
		Binary:              defaultBinary,
		MinTerraformVersion: file.MinTerraformVersion,
	}
	if file.EnvsDir != "" {
		cfg.EnvsDir = file.EnvsDir
	}
	if file.Binary != "" {
		cfg.Binary = file.Binary
	}

	return cfg, nil
}

func loadFile(path string) (*configFile, error) {
	var file configFile

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// the config file is optional, defaults apply
		return &file, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "fail to read config file %s", path)
	}

	err = yaml.Unmarshal(data, &file)
	if err != nil {
		return nil, errors.Wrapf(err, "fail to decode config file %s", path)
	}

	return &file, nil
}

// VarFile is the variable file terraform consumes for plan, apply and
// destroy.
func (c *Config) VarFile() string {
	return filepath.Join(c.EnvsDir, c.Environment, "main.tfvars")
}

// BackendConfigFile tells terraform where state lives for this
// environment.
func (c *Config) BackendConfigFile() string {
	return filepath.Join(c.EnvsDir, c.Environment, "terraform_state.tfvars")
}
