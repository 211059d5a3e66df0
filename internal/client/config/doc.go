// Package config loads runtime configuration for the gophdiary CLI.
//
// Sources & precedence (later wins)
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with --config. Any format viper
//     understands is accepted (YAML, JSON, TOML, ...).
//  3. A .env file in the working directory, then GOPHDIARY_* environment
//     variables, e.g. GOPHDIARY_DB_PATH or GOPHDIARY_LOG_LEVEL.
//  4. Command-line flags registered with RegisterFlags.
//
// Keys
//
//	db_driver   storage driver: "sqlite" (default) or "postgres"
//	db_path     SQLite file, default "diary.sqlite"
//	db_dsn      PostgreSQL connection string, required for "postgres"
//	log_level   debug | info | warn | error, default "warn"
//	log_file    diagnostics log file; empty means stderr
//	timeout     per-operation storage timeout, e.g. "5s"
package config
