package config

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// flagKeys maps command-line flag names to configuration keys.
var flagKeys = map[string]string{
	"config":    "config",
	"driver":    "db_driver",
	"db":        "db_path",
	"dsn":       "db_dsn",
	"log-level": "log_level",
	"log-file":  "log_file",
	"timeout":   "timeout",
}

// RegisterFlags declares the configuration flags on fs. Flag defaults are
// left empty so that unset flags never shadow the config file or environment.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP("config", "c", "", "path to a config file (yaml, json, toml)")
	fs.String("driver", "", `storage driver: "sqlite" or "postgres" (default "sqlite")`)
	fs.String("db", "", `SQLite database file (default "diary.sqlite")`)
	fs.String("dsn", "", "PostgreSQL connection string")
	fs.String("log-level", "", `log level: debug, info, warn, error (default "warn")`)
	fs.String("log-file", "", "write diagnostics to this file instead of stderr")
	fs.Duration("timeout", 0, "per-operation storage timeout (default 5s)")
}

// bindFlags binds every registered flag present in fs. Only flags the user
// actually set take precedence over other sources.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) error {
	for name, key := range flagKeys {
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		if !f.Changed {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}
