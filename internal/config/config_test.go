package config

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{"RUN_ADDRESS", "DATA_FILE", "ACCESS_LOG", "PUBLIC_DIR", "DATABASE_URI", "CORS_ORIGINS"}

// clearEnv unsets the config variables for the test and restores them after.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		key := key
		if old, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, old) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		require.NoError(t, os.Unsetenv(key))
	}
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { os.Chdir(wd) })
}

func TestParse_Defaults(t *testing.T) {
	clearEnv(t)

	cfg := Parse(flag.NewFlagSet("test", flag.ContinueOnError), nil)

	assert.Equal(t, &Config{
		RunAddress:  "localhost:8888",
		DataFile:    "data/pizzaorders.json",
		AccessLog:   "logs/access.log",
		CORSOrigins: []string{"*"},
	}, cfg)
}

func TestParse_EnvOverridesFlags(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATA_FILE", "/srv/orders.json")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg := Parse(flag.NewFlagSet("test", flag.ContinueOnError), []string{
		"-a", ":9000",
		"-f", "flag.json",
		"-d", "postgres://localhost/pizza",
	})

	assert.Equal(t, ":9000", cfg.RunAddress)
	assert.Equal(t, "/srv/orders.json", cfg.DataFile)
	assert.Equal(t, "postgres://localhost/pizza", cfg.DatabaseURI)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestParse_DotEnv(t *testing.T) {
	clearEnv(t)
	require.NoError(t, os.WriteFile(filepath.Join(".", ".env"), []byte("RUN_ADDRESS=:7777\nACCESS_LOG=/tmp/pizza.log\n"), 0o644))

	cfg := Parse(flag.NewFlagSet("test", flag.ContinueOnError), nil)

	assert.Equal(t, ":7777", cfg.RunAddress)
	assert.Equal(t, "/tmp/pizza.log", cfg.AccessLog)
}
