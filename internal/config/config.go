// Package config loads cloudbrowser configuration from defaults, an
// optional config file, and CLOUDBROWSER_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/groveco/cloudbrowser/pkg/cloud"
	"github.com/groveco/cloudbrowser/pkg/cloud/swift"
)

// Config is the full cloudbrowser configuration.
type Config struct {
	Datastore Datastore `mapstructure:"datastore" yaml:"datastore"`
	Logging   Logging   `mapstructure:"logging" yaml:"logging"`
}

// Datastore configures the storage vendor connection and listing
// behavior.
type Datastore struct {
	// Account is the vendor account (user) name.
	Account string `mapstructure:"account" yaml:"account"`

	// SecretKey is the account API key.
	SecretKey string `mapstructure:"secret_key" yaml:"secret_key"`

	// AuthURL overrides the vendor auth endpoint.
	AuthURL string `mapstructure:"auth_url" yaml:"auth_url"`

	// Region selects a storage region for multi-region accounts.
	Region string `mapstructure:"region" yaml:"region"`

	// ServiceNet routes traffic over the vendor's internal network.
	// Off by default; only meaningful inside the vendor's data center.
	ServiceNet bool `mapstructure:"servicenet" yaml:"servicenet"`

	// DefaultLimit is the page size used when a listing does not
	// specify one.
	DefaultLimit int `mapstructure:"default_limit" yaml:"default_limit"`

	// MaxListLimit is the vendor ceiling on listing page sizes.
	MaxListLimit int `mapstructure:"max_list_limit" yaml:"max_list_limit"`
}

// Logging configures process logging.
type Logging struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `mapstructure:"level" yaml:"level"`
}

// Load reads configuration from defaults, an optional cloudbrowser.yaml
// (working directory or ~/.config/cloudbrowser), and CLOUDBROWSER_*
// environment variables.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("cloudbrowser")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.config/cloudbrowser")

	v.SetEnvPrefix("CLOUDBROWSER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// No config file is fine; defaults and environment apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// setDefaults registers the default value for every key so viper can
// bind the matching environment variables.
func setDefaults(v *viper.Viper) {
	v.SetDefault("datastore.account", "")
	v.SetDefault("datastore.secret_key", "")
	v.SetDefault("datastore.auth_url", swift.DefaultAuthURL)
	v.SetDefault("datastore.region", "")
	v.SetDefault("datastore.servicenet", false)
	v.SetDefault("datastore.default_limit", cloud.DefaultGetObjectsLimit)
	v.SetDefault("datastore.max_list_limit", swift.DefaultMaxListLimit)
	v.SetDefault("logging.level", "info")
}

// Validate checks that the configuration can open a connection.
func (c *Config) Validate() error {
	if c.Datastore.Account == "" {
		return errors.New("config: datastore.account is required")
	}
	if c.Datastore.SecretKey == "" {
		return errors.New("config: datastore.secret_key is required")
	}
	if c.Datastore.DefaultLimit <= 0 {
		return errors.New("config: datastore.default_limit must be positive")
	}
	if c.Datastore.MaxListLimit <= 0 {
		return errors.New("config: datastore.max_list_limit must be positive")
	}
	return nil
}

// Redacted returns a copy safe for display: the secret key is masked.
func (c *Config) Redacted() Config {
	out := *c
	if out.Datastore.SecretKey != "" {
		out.Datastore.SecretKey = "********"
	}
	return out
}
