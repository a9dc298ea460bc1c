package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/blackcoderx/postgen/pkg/postman"
)

// Config is the full configuration surface, merged from postgen.yaml,
// environment variables and flags.
type Config struct {
	// Name is the collection name; the environment document reuses it.
	Name string `mapstructure:"name"`
	// Routes is the directory holding route descriptor files.
	Routes string `mapstructure:"routes"`
	// Output holds the two document paths.
	Output OutputConfig `mapstructure:"output"`
	// Environment is the ordered variable list; must contain "host" and the
	// auth variable.
	Environment []postman.EnvVar `mapstructure:"environment"`
	// APIKeys are Postman API keys; one upload per key.
	APIKeys []string `mapstructure:"api_keys"`
	// MaxFolders is the folder-grouping depth.
	MaxFolders int `mapstructure:"max_folders"`
	// Comments toggles inline annotations in raw JSON bodies.
	Comments bool `mapstructure:"comments"`
	// AuthVariable is the environment key the bearer auth block reads.
	AuthVariable string `mapstructure:"auth_variable"`
	// UploadTimeout bounds each upload request, in seconds.
	UploadTimeout int `mapstructure:"upload_timeout"`
}

// OutputConfig holds the output document paths.
type OutputConfig struct {
	Collection  string `mapstructure:"collection"`
	Environment string `mapstructure:"environment"`
}

func loadConfig() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if !c.hasEnv("host") {
		return fmt.Errorf("environment must define a %q variable", "host")
	}
	if !c.hasEnv(c.AuthVariable) {
		return fmt.Errorf("environment must define the auth variable %q", c.AuthVariable)
	}
	return nil
}

func (c *Config) hasEnv(key string) bool {
	for _, v := range c.Environment {
		if v.Key == key {
			return true
		}
	}
	return false
}
