// Package config provides configuration management for the ltsvq CLI.
//
// Values are layered, lowest to highest priority: built-in defaults, a YAML
// config file, LTSVQ_* environment variables, and explicitly set flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	Format   string `koanf:"format"`
	Verbose  bool   `koanf:"verbose"`
	NoColor  bool   `koanf:"no_color"`
	LogLevel string `koanf:"log_level"`
}

// Default configuration values.
const (
	DefaultFormat   = "text"
	DefaultLogLevel = "warn"
)

// Config file names searched in the working directory.
const (
	ConfigFileName    = "ltsvq.yaml"
	ConfigFileNameAlt = "ltsvq.yml"
)

// EnvPrefix is the prefix of environment variables read into the config.
const EnvPrefix = "LTSVQ_"
