package app

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"peerdid/internal/domain"
	"peerdid/internal/store"
)

// Environment variables that override the YAML file.
const (
	EnvSecretsFile       = "PEERDID_SECRETS_FILE"
	EnvSecretsPassphrase = "PEERDID_SECRETS_PASSPHRASE"
	EnvLogEnv            = "PEERDID_LOG_ENV"
	EnvLogLevel          = "PEERDID_LOG_LEVEL"
)

// Config holds runtime options for building the app.
type Config struct {
	Secrets struct {
		File string `yaml:"file"`
		// Passphrase seals the secrets file when non-empty.
		Passphrase string `yaml:"passphrase"`
	} `yaml:"secrets"`

	Log struct {
		Env   string `yaml:"env"`   // dev | prod
		Level string `yaml:"level"` // debug | info | warn | error
	} `yaml:"log"`

	Defaults struct {
		AuthKeys      int    `yaml:"auth_keys"`
		AgreementKeys int    `yaml:"agreement_keys"`
		Format        string `yaml:"format"`
	} `yaml:"defaults"`
}

// Default returns the built-in configuration.
func Default() Config {
	var c Config
	c.Secrets.File = store.DefaultSecretsFile
	c.Log.Env = "dev"
	c.Log.Level = "warn"
	c.Defaults.AuthKeys = 1
	c.Defaults.AgreementKeys = 1
	c.Defaults.Format = string(domain.FormatJWK)
	return c
}

// Load reads the YAML file at path over the defaults and then applies
// environment overrides. An empty path skips the file.
func Load(path string) (Config, error) {
	c := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, err
		}
		if err := yaml.Unmarshal(b, &c); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}
	c.applyEnvOverrides()
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks values that would otherwise fail late.
func (c Config) Validate() error {
	if c.Defaults.AuthKeys < 0 || c.Defaults.AgreementKeys < 0 {
		return fmt.Errorf("defaults: key counts must be non-negative")
	}
	if _, err := domain.ParseMaterialFormat(c.Defaults.Format); err != nil {
		return fmt.Errorf("defaults: %w", err)
	}
	return nil
}

// applyEnvOverrides replaces file values with any set environment variables.
func (c *Config) applyEnvOverrides() {
	if v, ok := getEnvStr(EnvSecretsFile); ok {
		c.Secrets.File = v
	}
	if v, ok := getEnvStr(EnvSecretsPassphrase); ok {
		c.Secrets.Passphrase = v
	}
	if v, ok := getEnvStr(EnvLogEnv); ok {
		c.Log.Env = strings.ToLower(v)
	}
	if v, ok := getEnvStr(EnvLogLevel); ok {
		c.Log.Level = strings.ToLower(v)
	}
}

func getEnvStr(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	return v, v != ""
}
