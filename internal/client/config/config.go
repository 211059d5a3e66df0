package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Supported storage drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

const envPrefix = "GOPHDIARY"

// Config holds runtime settings for the diary CLI.
type Config struct {
	DatabaseDriver   string        `mapstructure:"db_driver"`
	DatabasePath     string        `mapstructure:"db_path"`
	DatabaseDSN      string        `mapstructure:"db_dsn"`
	LogLevel         string        `mapstructure:"log_level"`
	LogFile          string        `mapstructure:"log_file"`
	OperationTimeout time.Duration `mapstructure:"timeout"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDriver = DriverSQLite
	c.DatabasePath = "diary.sqlite"
	c.DatabaseDSN = ""
	c.LogLevel = "warn"
	c.LogFile = ""
	c.OperationTimeout = 5 * time.Second
}

// DSN is the data source name handed to the database driver.
func (c *Config) DSN() string {
	if c.DatabaseDriver == DriverPostgres {
		return c.DatabaseDSN
	}
	return c.DatabasePath
}

// Validate reports settings that cannot work together.
func (c *Config) Validate() error {
	switch c.DatabaseDriver {
	case DriverSQLite:
		if c.DatabasePath == "" {
			return errors.New("db_path must not be empty")
		}
	case DriverPostgres:
		if c.DatabaseDSN == "" {
			return errors.New("db_dsn is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported db_driver %q", c.DatabaseDriver)
	}
	if c.OperationTimeout < 0 {
		return fmt.Errorf("timeout must not be negative, got %s", c.OperationTimeout)
	}
	return nil
}

// dotEnvFile is loaded before environment variables are read.
var dotEnvFile = ".env"

// LoadConfig builds a Config from defaults, the optional config file,
// .env and environment, and finally flags (which may be nil).
func LoadConfig(flags *pflag.FlagSet) (*Config, error) {
	if err := godotenv.Load(dotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", dotEnvFile, err)
	}

	v := viper.New()

	var defaults Config
	defaults.LoadDefaults()
	v.SetDefault("db_driver", defaults.DatabaseDriver)
	v.SetDefault("db_path", defaults.DatabasePath)
	v.SetDefault("db_dsn", defaults.DatabaseDSN)
	v.SetDefault("log_level", defaults.LogLevel)
	v.SetDefault("log_file", defaults.LogFile)
	v.SetDefault("timeout", defaults.OperationTimeout)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := bindFlags(v, flags); err != nil {
			return nil, err
		}
	}

	if path := v.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
