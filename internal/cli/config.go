package cli

import (
	"os"

	"github.com/zeebo/errs"
	"gopkg.in/yaml.v3"

	"github.com/calebcase/csd"
)

// ConfigError is the error class of configuration failures.
var ConfigError = errs.Class("config")

// Config holds the defaults the commands fall back to when an optional
// argument is omitted.
type Config struct {
	Places   int    `yaml:"places"`
	NonZeros uint   `yaml:"non_zeros"`
	LogLevel string `yaml:"log_level"`
	Format   string `yaml:"format"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Places:   csd.DefaultPlaces,
		NonZeros: 4,
		LogLevel: "warn",
		Format:   "text",
	}
}

// LoadConfig reads the YAML file at path over the defaults. Keys missing from
// the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ConfigError.Wrap(err)
	}

	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, ConfigError.New("parse %s: %v", path, err)
	}

	if !isValidFormat(cfg.Format) {
		return nil, ConfigError.New("invalid format %q: must be one of %v", cfg.Format, ValidFormats)
	}

	return &cfg, nil
}
