package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"ecsign/internal/store"
)

const (
	envPrefix      = "ECSIGN"
	defaultDirName = ".ecsign"
	configFileName = "config.yaml"
)

// Config holds runtime options for building the app.
type Config struct {
	Home    string             `mapstructure:"home"`    // key directory, e.g. $HOME/.ecsign
	Verbose bool               `mapstructure:"verbose"` // debug logging
	Quiet   bool               `mapstructure:"quiet"`   // errors only
	Scrypt  store.ScryptParams `mapstructure:"scrypt"`  // private key sealing cost
}

// NewViper returns a viper instance with ecsign defaults and ECSIGN_*
// environment variable support (ECSIGN_HOME, ECSIGN_SCRYPT_N, ...).
func NewViper() *viper.Viper {
	v := viper.New()
	d := store.DefaultScryptParams()
	v.SetDefault("home", "")
	v.SetDefault("verbose", false)
	v.SetDefault("quiet", false)
	v.SetDefault("scrypt.n", d.N)
	v.SetDefault("scrypt.r", d.R)
	v.SetDefault("scrypt.p", d.P)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// DefaultHome returns $HOME/.ecsign.
func DefaultHome() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, defaultDirName), nil
}

// LoadConfig reads configuration into a Config. An explicit path must exist;
// without one, <home>/config.yaml is read when present. Values already bound
// on v (flags, environment) take precedence over the file.
func LoadConfig(v *viper.Viper, path string) (Config, error) {
	if path == "" {
		home := v.GetString("home")
		if home == "" {
			h, err := DefaultHome()
			if err != nil {
				return Config{}, err
			}
			home = h
		}
		candidate := filepath.Join(home, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			path = candidate
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.Home == "" {
		h, err := DefaultHome()
		if err != nil {
			return Config{}, err
		}
		cfg.Home = h
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the loaded values.
func (c Config) Validate() error {
	if c.Home == "" {
		return errors.New("home directory is required")
	}
	if c.Verbose && c.Quiet {
		return errors.New("verbose and quiet are mutually exclusive")
	}
	if err := c.Scrypt.Validate(); err != nil {
		return fmt.Errorf("invalid scrypt settings: %w", err)
	}
	return nil
}
