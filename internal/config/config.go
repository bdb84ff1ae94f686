// Package config resolves f2c settings from, in decreasing precedence:
// command-line flags, F2C_* environment variables (a .env file in the
// working directory is loaded first), a YAML config file and defaults.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Keys shared by flags, environment variables (F2C_SCALE_FACTOR, ...) and
// the config file.
const (
	KeyScaleFactor = "scale-factor"
	KeyMaxDepth    = "max-depth"
	KeyFormat      = "format"
	KeyCacheDB     = "cache-db"
	KeyVerbose     = "verbose"
)

// Defaults.
const (
	DefaultScaleFactor = 4.0
	DefaultMaxDepth    = 512
	DefaultFormat      = FormatText

	// DefaultFileName is looked up in the working directory when no
	// explicit config file is given.
	DefaultFileName = ".f2c.yaml"

	envPrefix = "F2C"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the resolved configuration.
type Config struct {
	ScaleFactor float64 `mapstructure:"scale-factor"`
	MaxDepth    int     `mapstructure:"max-depth"`
	Format      string  `mapstructure:"format"`
	CacheDB     string  `mapstructure:"cache-db"`
	Verbose     bool    `mapstructure:"verbose"`

	// File is the config file that was read, empty if none.
	File string `mapstructure:"-"`
}

// Options controls where Load looks.
type Options struct {
	// Flags are bound by key name; only flags the user set override
	// lower layers.
	Flags *pflag.FlagSet

	// ConfigFile is an explicit config path. When set, the file must exist.
	ConfigFile string

	// Dir is searched for .env and the default config file.
	// Empty means the current directory.
	Dir string
}

// Error reports an invalid configuration value.
type Error struct {
	Key     string
	Message string
}

func (e *Error) Error() string {
	if e.Key == "" {
		return "config: " + e.Message
	}
	return fmt.Sprintf("config: %s: %s", e.Key, e.Message)
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		ScaleFactor: DefaultScaleFactor,
		MaxDepth:    DefaultMaxDepth,
		Format:      DefaultFormat,
	}
}

// Load resolves and validates the configuration.
func Load(opts Options) (*Config, error) {
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}

	// Existing environment variables win over .env entries.
	envFile := filepath.Join(dir, ".env")
	if _, err := os.Stat(envFile); err == nil {
		if err := godotenv.Load(envFile); err != nil {
			return nil, &Error{Message: fmt.Sprintf("load %s: %v", envFile, err)}
		}
	}

	v := viper.New()
	def := Default()
	v.SetDefault(KeyScaleFactor, def.ScaleFactor)
	v.SetDefault(KeyMaxDepth, def.MaxDepth)
	v.SetDefault(KeyFormat, def.Format)
	v.SetDefault(KeyCacheDB, def.CacheDB)
	v.SetDefault(KeyVerbose, def.Verbose)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if opts.Flags != nil {
		for _, key := range []string{KeyScaleFactor, KeyMaxDepth, KeyFormat, KeyCacheDB, KeyVerbose} {
			if f := opts.Flags.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, &Error{Key: key, Message: err.Error()}
				}
			}
		}
	}

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, &Error{Message: fmt.Sprintf("read %s: %v", opts.ConfigFile, err)}
		}
	} else {
		v.SetConfigName(strings.TrimSuffix(DefaultFileName, ".yaml"))
		v.SetConfigType("yaml")
		v.AddConfigPath(dir)
		if err := v.ReadInConfig(); err != nil {
			// The default config file is optional.
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, &Error{Message: fmt.Sprintf("read %s: %v", DefaultFileName, err)}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, &Error{Message: err.Error()}
	}
	cfg.File = v.ConfigFileUsed()
	cfg.Format = strings.ToLower(cfg.Format)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects values the parser or output layer cannot use.
func (c *Config) Validate() error {
	if math.IsNaN(c.ScaleFactor) || math.IsInf(c.ScaleFactor, 0) || c.ScaleFactor <= 0 {
		return &Error{Key: KeyScaleFactor, Message: fmt.Sprintf("must be a positive number, got %v", c.ScaleFactor)}
	}
	if c.MaxDepth < 0 {
		return &Error{Key: KeyMaxDepth, Message: fmt.Sprintf("must be 0 (unlimited) or positive, got %d", c.MaxDepth)}
	}
	switch c.Format {
	case FormatText, FormatJSON:
	default:
		return &Error{Key: KeyFormat, Message: fmt.Sprintf("must be %q or %q, got %q", FormatText, FormatJSON, c.Format)}
	}
	return nil
}
