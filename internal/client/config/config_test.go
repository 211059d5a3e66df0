package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultConfig() *Config {
	c := &Config{}
	c.LoadDefaults()
	return c
}

// isolate points the .env lookup at an empty temp dir and clears every
// GOPHDIARY_* variable for the duration of the test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	orig := dotEnvFile
	dotEnvFile = filepath.Join(dir, ".env")
	t.Cleanup(func() { dotEnvFile = orig })

	for _, key := range []string{"DB_DRIVER", "DB_PATH", "DB_DSN", "LOG_LEVEL", "LOG_FILE", "TIMEOUT", "CONFIG"} {
		name := envPrefix + "_" + key
		if old, ok := os.LookupEnv(name); ok {
			require.NoError(t, os.Unsetenv(name))
			t.Cleanup(func() { _ = os.Setenv(name, old) })
		}
	}
	return dir
}

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "sqlite", c.DatabaseDriver)
	assert.Equal(t, "diary.sqlite", c.DatabasePath)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Empty(t, c.LogFile)
	assert.Equal(t, 5*time.Second, c.OperationTimeout)
	assert.Equal(t, "diary.sqlite", c.DSN())
}

func TestLoadConfig_DefaultsWithoutSources(t *testing.T) {
	isolate(t)

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(defaultConfig(), cfg))

	cfg, err = LoadConfig(newFlags(t))
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(defaultConfig(), cfg), "unset flags must not override defaults")
}

func TestLoadConfig_Precedence(t *testing.T) {
	dir := isolate(t)

	file := filepath.Join(dir, "gophdiary.yaml")
	require.NoError(t, os.WriteFile(file, []byte("db_path: from-file.sqlite\nlog_level: debug\ntimeout: 7s\n"), 0o600))

	t.Run("file overrides defaults", func(t *testing.T) {
		cfg, err := LoadConfig(newFlags(t, "--config", file))
		require.NoError(t, err)

		want := defaultConfig()
		want.DatabasePath = "from-file.sqlite"
		want.LogLevel = "debug"
		want.OperationTimeout = 7 * time.Second
		assert.Empty(t, cmp.Diff(want, cfg))
	})

	t.Run("env overrides file", func(t *testing.T) {
		t.Setenv("GOPHDIARY_DB_PATH", "from-env.sqlite")
		t.Setenv("GOPHDIARY_TIMEOUT", "2s")

		cfg, err := LoadConfig(newFlags(t, "--config", file))
		require.NoError(t, err)
		assert.Equal(t, "from-env.sqlite", cfg.DatabasePath)
		assert.Equal(t, 2*time.Second, cfg.OperationTimeout)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("flags override env", func(t *testing.T) {
		t.Setenv("GOPHDIARY_DB_PATH", "from-env.sqlite")

		cfg, err := LoadConfig(newFlags(t, "--config", file, "--db", "from-flag.sqlite", "--timeout", "1s", "--log-level", "error"))
		require.NoError(t, err)
		assert.Equal(t, "from-flag.sqlite", cfg.DatabasePath)
		assert.Equal(t, time.Second, cfg.OperationTimeout)
		assert.Equal(t, "error", cfg.LogLevel)
	})
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("GOPHDIARY_LOG_FILE=diary.log\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("GOPHDIARY_LOG_FILE") })

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "diary.log", cfg.LogFile)
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := isolate(t)

	t.Run("missing config file", func(t *testing.T) {
		_, err := LoadConfig(newFlags(t, "--config", filepath.Join(dir, "nope.yaml")))
		require.Error(t, err)
	})

	t.Run("postgres without dsn", func(t *testing.T) {
		_, err := LoadConfig(newFlags(t, "--driver", "postgres"))
		require.Error(t, err)
	})

	t.Run("postgres with dsn", func(t *testing.T) {
		cfg, err := LoadConfig(newFlags(t, "--driver", "postgres", "--dsn", "postgres://u@localhost/diary"))
		require.NoError(t, err)
		assert.Equal(t, "postgres://u@localhost/diary", cfg.DSN())
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "unknown driver", mutate: func(c *Config) { c.DatabaseDriver = "mysql" }, wantErr: true},
		{name: "empty sqlite path", mutate: func(c *Config) { c.DatabasePath = "" }, wantErr: true},
		{name: "negative timeout", mutate: func(c *Config) { c.OperationTimeout = -time.Second }, wantErr: true},
		{name: "zero timeout disables deadlines", mutate: func(c *Config) { c.OperationTimeout = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := defaultConfig()
			tt.mutate(c)
			if tt.wantErr {
				require.Error(t, c.Validate())
			} else {
				require.NoError(t, c.Validate())
			}
		})
	}
}
