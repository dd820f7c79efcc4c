package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flightdump.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
host: db.internal
port: 3307
user: ops
password: secret
database: flight_reservation
max_retries: 5
retry_delay_seconds: 1
`), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "db.internal", cfg.Host)
	assert.Equal(t, 3307, cfg.Port)
	assert.Equal(t, "ops", cfg.User)
	assert.Equal(t, "secret", cfg.Password)
	assert.Equal(t, "flight_reservation", cfg.Database)
	assert.Equal(t, 5, cfg.MaxRetries)
	assert.Equal(t, time.Second, cfg.RetryDelay)
}

func TestLoadConfigDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flightdump.yaml")
	require.NoError(t, os.WriteFile(path, []byte("database: flight_reservation\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "localhost", cfg.Host)
	assert.Equal(t, 3306, cfg.Port)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, 2*time.Second, cfg.RetryDelay)
}

func TestFindConfigFileInParent(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "flightdump.yaml"), []byte("database: x\n"), 0644))

	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0755))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(nested))
	t.Cleanup(func() { os.Chdir(wd) })

	found, err := FindConfigFile()
	require.NoError(t, err)

	// macOS tempdirs resolve through symlinks; compare by file identity
	wantInfo, err := os.Stat(filepath.Join(root, "flightdump.yaml"))
	require.NoError(t, err)
	gotInfo, err := os.Stat(found)
	require.NoError(t, err)
	assert.True(t, os.SameFile(wantInfo, gotInfo))
}
