// Package config loads settings from ~/.lettercube/config.toml, an
// optional explicit file and LETTERCUBE_* environment variables.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// Config is the complete application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Scheme   SchemeConfig   `mapstructure:"scheme"`
	Quiz     QuizConfig     `mapstructure:"quiz"`
}

// DatabaseConfig locates the SQLite file. An empty path means the default.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// LogConfig controls logger output.
type LogConfig struct {
	JSON  bool   `mapstructure:"json"`
	Level string `mapstructure:"level"`
}

// SchemeConfig selects the buffer preset.
type SchemeConfig struct {
	Name string `mapstructure:"name"`
}

// QuizConfig tunes the drills.
type QuizConfig struct {
	AvoidRepeat    bool `mapstructure:"avoid_repeat"`
	ScrambleLength int  `mapstructure:"scramble_length"`
}

// EnvPrefix is the prefix for environment overrides, e.g. LETTERCUBE_LOG_LEVEL.
const EnvPrefix = "LETTERCUBE"

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("database.path", "")
	v.SetDefault("log.json", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("scheme.name", "oldpochmann")
	v.SetDefault("quiz.avoid_repeat", true)
	v.SetDefault("quiz.scramble_length", 20)
}

// New returns a viper instance with defaults and environment binding.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// UserConfigPath returns ~/.lettercube/config.toml.
func UserConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lettercube", "config.toml")
}

// Load reads configuration. An explicit path must exist; otherwise the
// user config is read when present.
func Load(path string) (*Config, error) {
	v := New()

	switch {
	case path != "":
		v.SetConfigFile(path)
		v.SetConfigType("toml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "failed to read config file %s", path)
		}
	default:
		if user := UserConfigPath(); user != "" {
			if _, err := os.Stat(user); err == nil {
				v.SetConfigFile(user)
				v.SetConfigType("toml")
				if err := v.ReadInConfig(); err != nil {
					return nil, errors.Wrapf(err, "failed to read config file %s", user)
				}
			}
		}
	}

	return LoadWithViper(v)
}

// LoadWithViper unmarshals and validates an already prepared viper instance.
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Quiz.ScrambleLength < 0 {
		return errors.Newf("quiz.scramble_length must not be negative, got %d", c.Quiz.ScrambleLength)
	}
	return nil
}
