package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/manualfsm/internal/config"
)

func env(vars map[string]string) config.Option {
	return config.WithGetenv(func(k string) string { return vars[k] })
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load(env(nil), config.WithEnvFile(""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, "linear", cfg.Strategy)
	assert.Equal(t, config.DriverMemory, cfg.Store.Driver)
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
strategy: branching
store:
  driver: redis
  redis:
    addr: redis:6379
    ttl: 1h
server:
  addr: ":9000"
log:
  level: debug
`), 0o644))

	cfg, err := config.Load(
		config.WithFile(path),
		config.WithEnvFile(""),
		env(map[string]string{
			"MANUALFSM_SERVER_ADDR": ":9100",
			"MANUALFSM_REDIS_DB":    "3",
		}),
	)
	require.NoError(t, err)

	assert.Equal(t, "branching", cfg.Strategy, "file overrides default")
	assert.Equal(t, "redis:6379", cfg.Store.Redis.Addr)
	assert.Equal(t, time.Hour, cfg.Store.Redis.TTL)
	assert.Equal(t, ":9100", cfg.Server.Addr, "env overrides file")
	assert.Equal(t, 3, cfg.Store.Redis.DB)
	assert.Equal(t, "manualfsm:", cfg.Store.Redis.Prefix, "untouched keys keep defaults")
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(".env", []byte("MANUALFSM_LIBRARY_DIR=docs/manuals\n"), 0o644))
	t.Cleanup(func() { _ = os.Unsetenv("MANUALFSM_LIBRARY_DIR") })

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "docs/manuals", cfg.Library.Dir)
}

func TestLoad_RedactPatterns(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := config.Load(config.WithEnvFile(""), env(map[string]string{
		"MANUALFSM_STORE_REDACT": `password\S*, ,\d{4}-\d{4}`,
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{`password\S*`, `\d{4}-\d{4}`}, cfg.Store.Redact)
}

func TestLoad_Errors(t *testing.T) {
	t.Chdir(t.TempDir())

	tests := []struct {
		name string
		opts []config.Option
	}{
		{"missing explicit file", []config.Option{config.WithFile("nope.yaml")}},
		{"bad strategy", []config.Option{env(map[string]string{"MANUALFSM_STRATEGY": "quantum"})}},
		{"bad driver", []config.Option{env(map[string]string{"MANUALFSM_STORE_DRIVER": "s3"})}},
		{"bad number", []config.Option{env(map[string]string{"MANUALFSM_MAX_INPUT_BYTES": "lots"})}},
		{"bad ttl", []config.Option{env(map[string]string{"MANUALFSM_REDIS_TTL": "soon"})}},
		{"bad log level", []config.Option{env(map[string]string{"MANUALFSM_LOG_LEVEL": "loud"})}},
		{"bad redact pattern", []config.Option{env(map[string]string{"MANUALFSM_STORE_REDACT": "(unclosed"})}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := append([]config.Option{config.WithEnvFile(""), env(nil)}, tt.opts...)
			_, err := config.Load(opts...)
			assert.Error(t, err)
		})
	}
}
