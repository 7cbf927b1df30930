// Package config loads the application configuration from an optional YAML
// file and VOYAGES_* environment variables, with defaults suited to a local
// single-user installation.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds every runtime setting of the application.
type Config struct {
	// Host and Port form the local listen address. The application is meant
	// to run on the user's own machine, so the default host is loopback.
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`

	// DataDir is the root of all mutable state: database and uploads default
	// under it when not set explicitly.
	DataDir      string `mapstructure:"data_dir"`
	DatabasePath string `mapstructure:"database_path"`
	UploadsDir   string `mapstructure:"uploads_dir"`

	// TemplatesDir and StaticDir locate the web assets.
	TemplatesDir string `mapstructure:"templates_dir"`
	StaticDir    string `mapstructure:"static_dir"`

	// AdminPassword, when non-empty, puts the whole UI behind a login page.
	AdminPassword string `mapstructure:"admin_password"`

	// OpenBrowser opens the default browser on the index page at startup.
	OpenBrowser bool `mapstructure:"open_browser"`

	LogLevel string `mapstructure:"log_level"`
}

// Addr returns the listen address in host:port form.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BaseURL returns the address the browser should open.
func (c *Config) BaseURL() string {
	host := c.Host
	if host == "" || host == "0.0.0.0" {
		host = "127.0.0.1"
	}
	return fmt.Sprintf("http://%s:%d/", host, c.Port)
}

// Load reads voyages.yaml from the working directory if present, applies
// VOYAGES_* environment overrides and fills the derived path defaults.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("voyages")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("host", "127.0.0.1")
	v.SetDefault("port", 5001)
	v.SetDefault("data_dir", "data")
	v.SetDefault("templates_dir", "web/templates")
	v.SetDefault("static_dir", "web/static")
	v.SetDefault("open_browser", true)
	v.SetDefault("log_level", "info")

	v.SetEnvPrefix("VOYAGES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.DatabasePath == "" {
		cfg.DatabasePath = filepath.Join(cfg.DataDir, "voyages.db")
	}
	if cfg.UploadsDir == "" {
		cfg.UploadsDir = filepath.Join(cfg.DataDir, "uploads")
	}
	return cfg, nil
}
