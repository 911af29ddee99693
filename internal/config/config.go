// Package config resolves CLI settings from an optional per-user config
// file and environment variables. Environment values always win, which is
// also the test-isolation mechanism: pointing PIPEWATCH_SECRETS_DIR at a
// scratch directory redirects the credential store wholesale.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/pipewatch/cli/internal/api"
)

const (
	appName   = "pipewatch"
	envPrefix = "PIPEWATCH"

	// APIEndpointKey selects the remote API base URL
	APIEndpointKey = "api_endpoint"
	// SecretsDirKey selects the credential base directory
	SecretsDirKey = "secrets_dir"
	// TokenNameKey selects the default secret file name
	TokenNameKey = "token_name"

	// DefaultTokenName is the secret file consulted when --token-name is
	// not given
	DefaultTokenName = "api_token"
)

// Config carries the resolved settings for one invocation
type Config struct {
	v *viper.Viper
}

// Load reads the user config file (which may not exist) and wires up
// environment overrides
func Load() *Config {
	v := viper.New()
	v.SetConfigFile(configFile())
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	// attempt to read in config file but it might not exist
	_ = v.ReadInConfig()

	return New(v)
}

// New wraps an explicit viper instance, used by tests to inject settings
func New(v *viper.Viper) *Config {
	return &Config{v: v}
}

// APIEndpoint returns the remote API base URL
func (c *Config) APIEndpoint() string {
	if s := c.v.GetString(APIEndpointKey); s != "" {
		return s
	}
	return api.DefaultBaseURL
}

// SecretsDir returns the credential base directory
func (c *Config) SecretsDir() string {
	if s := c.v.GetString(SecretsDirKey); s != "" {
		return s
	}
	return filepath.Join(userConfigDir(), appName, "secrets")
}

// TokenName returns the default secret file name
func (c *Config) TokenName() string {
	if s := c.v.GetString(TokenNameKey); s != "" {
		return s
	}
	return DefaultTokenName
}

func configFile() string {
	return filepath.Join(userConfigDir(), appName, "config.yaml")
}

func userConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}
