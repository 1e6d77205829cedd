package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "quoteforge.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 4, cfg.Repricing.Workers)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	assert.Equal(t, "quoteforge.db", filepath.Base(cfg.Database.Path))
	require.NoError(t, validate(&cfg))
}

func TestLoadFrom_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Defaults().Server, cfg.Server)
}

func TestLoadFrom_YAMLOverridesDefaults(t *testing.T) {
	path := writeYAML(t, `
database:
  path: /tmp/quotes.db
server:
  addr: ":9090"
logging:
  level: debug
  format: json
cache:
  ttl: 30s
`)
	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/quotes.db", cfg.Database.Path)
	assert.Equal(t, ":9090", cfg.Server.Addr)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
	assert.Equal(t, int64(1<<20), cfg.Server.BodyLimit, "unset fields keep defaults")
}

func TestLoadFrom_EnvOverridesYAML(t *testing.T) {
	path := writeYAML(t, "server:\n  addr: \":9090\"\nrepricing:\n  workers: 2\n")
	t.Setenv("QUOTEFORGE_ADDR", ":7070")
	t.Setenv("QUOTEFORGE_REPRICE_WORKERS", "8")
	t.Setenv("QUOTEFORGE_DB", ":memory:")
	t.Setenv("QUOTEFORGE_CACHE_TTL", "not-a-duration")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, 8, cfg.Repricing.Workers)
	assert.Equal(t, ":memory:", cfg.Database.Path)
	assert.Equal(t, 5*time.Minute, cfg.Cache.TTL, "unparseable values are ignored")
}

func TestLoadFrom_InvalidYAML(t *testing.T) {
	_, err := LoadFrom(writeYAML(t, "server: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config yaml")
}

func TestLoadFrom_ValidationCollectsProblems(t *testing.T) {
	path := writeYAML(t, `
server:
  addr: ""
logging:
  level: loud
  format: xml
repricing:
  workers: 0
`)
	_, err := LoadFrom(path)
	require.Error(t, err)
	for _, want := range []string{"server.addr", "logging.level", "logging.format", "repricing.workers"} {
		assert.Contains(t, err.Error(), want)
	}
}
