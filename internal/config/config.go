// Package config loads twisty CLI settings from flags, environment and an
// optional config.yaml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/SeamusWaldron/twisty"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	envPrefix      = "TWISTY"

	// Config keys.
	KeySize     = "size"
	KeyLength   = "length"
	KeyPolicy   = "policy"
	KeyFormat   = "format"
	KeyInterval = "interval"
	KeyPlain    = "plain"
)

// Defaults.
const (
	DefaultSize     = 3
	DefaultLength   = 25
	DefaultPolicy   = "resample"
	DefaultFormat   = "text"
	DefaultInterval = 500 * time.Millisecond
)

// Output formats accepted by the scramble command.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config validation errors.
var (
	ErrSizeInvalid     = errors.New("size must be at least 2")
	ErrLengthInvalid   = errors.New("scramble length must not be negative")
	ErrPolicyUnknown   = errors.New("unknown collision policy")
	ErrFormatUnknown   = errors.New("unknown output format")
	ErrIntervalInvalid = errors.New("replay interval must be positive")
)

var policies = map[string]twisty.CollisionPolicy{
	"resample": twisty.CollisionResample,
	"skip":     twisty.CollisionSkip,
}

var formats = map[string]bool{
	FormatText: true,
	FormatJSON: true,
	FormatYAML: true,
}

// Config holds the resolved settings.
type Config struct {
	Size     int           `mapstructure:"size"`
	Length   int           `mapstructure:"length"`
	Policy   string        `mapstructure:"policy"`
	Format   string        `mapstructure:"format"`
	Interval time.Duration `mapstructure:"interval"`
	Plain    bool          `mapstructure:"plain"`
}

// Validate checks that the Config is well-formed. It returns one of the
// sentinel errors of this package on failure.
func (c Config) Validate() error {
	if c.Size < 2 {
		return ErrSizeInvalid
	}
	if c.Length < 0 {
		return ErrLengthInvalid
	}
	if _, ok := policies[c.Policy]; !ok {
		return ErrPolicyUnknown
	}
	if !formats[c.Format] {
		return ErrFormatUnknown
	}
	if c.Interval <= 0 {
		return ErrIntervalInvalid
	}
	return nil
}

// CollisionPolicy returns the scrambler policy named by c.Policy.
// Call Validate first; an unknown name maps to the default policy.
func (c Config) CollisionPolicy() twisty.CollisionPolicy {
	return policies[c.Policy]
}

// DefaultDir returns $HOME/.twisty, or "" if the home directory is unknown.
func DefaultDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".twisty")
}

// New returns a viper instance with defaults and environment binding set
// up. TWISTY_SIZE overrides size, and so on.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeySize, DefaultSize)
	v.SetDefault(KeyLength, DefaultLength)
	v.SetDefault(KeyPolicy, DefaultPolicy)
	v.SetDefault(KeyFormat, DefaultFormat)
	v.SetDefault(KeyInterval, DefaultInterval)
	v.SetDefault(KeyPlain, false)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Read loads a config file into v. With an explicit path the file must
// exist. Otherwise config.yaml is looked up in dir, and a missing file is
// not an error.
func Read(v *viper.Viper, path, dir string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		return nil
	}

	if dir == "" {
		return nil
	}
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(dir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Decode unmarshals v into a Config and validates it.
func Decode(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
