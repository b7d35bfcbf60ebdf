package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	require.NoError(t, c.Validate())
	assert.Equal(t, ":9091", c.HTTP.Addr)
	assert.Equal(t, StorageMemory, c.Storage.Driver)
	assert.True(t, c.Auth.Captcha)
	assert.Empty(t, c.Events.NATSURL)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "baba.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
http:
  addr: ":8080"
storage:
  driver: sqlite
  path: /tmp/baba.db
auth:
  captcha: false
`), 0o644))

	c, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, ":8080", c.HTTP.Addr)
	assert.Equal(t, 5*time.Second, c.HTTP.ShutdownTimeout, "unset keys keep defaults")
	assert.Equal(t, StorageSQLite, c.Storage.Driver)
	assert.False(t, c.Auth.Captcha)
	require.NoError(t, c.Validate())
}

func TestLoadFromFile_Errors(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http: [oops"), 0o644))
	_, err = LoadFromFile(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	c := DefaultConfig()
	c.Storage.Driver = "redis"
	assert.Error(t, c.Validate())

	c = DefaultConfig()
	c.Storage.Driver = StorageSQLite
	c.Storage.Path = ""
	assert.Error(t, c.Validate())

	c = DefaultConfig()
	c.Log.Level = "loud"
	assert.Error(t, c.Validate())
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"BABA_HTTP_ADDR":    ":7000",
		"BABA_STORAGE_PATH": "/var/lib/baba/session.db",
		"BABA_NATS_URL":     "nats://localhost:4222",
	}
	c := DefaultConfig()
	c.applyEnv(func(k string) (string, bool) { v, ok := env[k]; return v, ok })
	assert.Equal(t, ":7000", c.HTTP.Addr)
	assert.Equal(t, StorageSQLite, c.Storage.Driver)
	assert.Equal(t, "/var/lib/baba/session.db", c.Storage.Path)
	assert.Equal(t, "nats://localhost:4222", c.Events.NATSURL)
}
