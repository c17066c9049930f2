package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = append([]string{"testbin"}, args...)
}

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()
	assert.Equal(t, ":3001", c.EndpointAddr)
	assert.Empty(t, c.DatabaseDSN)
	assert.Empty(t, c.SeedFile)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("AUTHDEMO_ENDPOINT_ADDR", ":9999")
	t.Setenv("AUTHDEMO_DATABASE_DSN", "postgres://env")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, ":9999", c.EndpointAddr)
	assert.Equal(t, "postgres://env", c.DatabaseDSN)
	assert.Empty(t, c.SeedFile, "unset variables keep the previous value")
}

func TestParseFlags(t *testing.T) {
	withArgs(t, "-a", "127.0.0.1:9090", "-d", "db", "-seed", "users.json", "-x", "ignored")

	c := &Config{}
	require.NotPanics(t, func() { parseFlags(c) })
	assert.Empty(t, cmp.Diff(&Config{EndpointAddr: "127.0.0.1:9090", DatabaseDSN: "db", SeedFile: "users.json"}, c))
}

func TestParseJson(t *testing.T) {
	t.Run("overlays present keys", func(t *testing.T) {
		withArgs(t, "-c", writeTempJSON(t, map[string]any{"database_dsn": "postgres://json"}))
		var c Config
		c.LoadDefaults()
		parseJson(&c)
		assert.Equal(t, "postgres://json", c.DatabaseDSN)
		assert.Equal(t, ":3001", c.EndpointAddr)
	})

	t.Run("invalid json panics", func(t *testing.T) {
		bad := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{`), 0o600))
		withArgs(t, "-config", bad)
		require.Panics(t, func() { parseJson(&Config{}) })
	})
}

func TestLoadConfig_Precedence(t *testing.T) {
	t.Setenv("AUTHDEMO_ENDPOINT_ADDR", ":1111")
	t.Setenv("AUTHDEMO_DATABASE_DSN", "postgres://env")
	t.Setenv("AUTHDEMO_SEED_FILE", "env.json")
	path := writeTempJSON(t, map[string]any{"database_dsn": "postgres://json", "seed_file": "json.json"})
	withArgs(t, "-c", path, "-seed", "flag.json")

	c := LoadConfig()
	assert.Equal(t, ":1111", c.EndpointAddr)
	assert.Equal(t, "postgres://json", c.DatabaseDSN)
	assert.Equal(t, "flag.json", c.SeedFile)
}
