package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.ServerAddr)
	assert.Equal(t, DriverPostgres, cfg.DBDriver)
	assert.Equal(t, 1440, cfg.AccessTokenExpireMinutes)
	assert.Equal(t, BackendFS, cfg.StorageBackend)
	assert.Equal(t, "./uploads", cfg.UploadDir)
}

func TestLoadConfigRequiresSecret(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	path := filepath.Join(dir, "config.yaml")
	yml := "db_driver: sqlite\ndb_path: /tmp/file.db\njwt_secret: from-file\naccess_token_expire_minutes: 30\n"
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))

	t.Setenv("CONFIG_FILE", path)
	t.Setenv("JWT_SECRET", "")
	t.Setenv("DB_PATH", "/tmp/env.db")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "/tmp/env.db", cfg.DBPath)
	assert.Equal(t, "from-file", cfg.JWTSecret)
	assert.Equal(t, 30, cfg.AccessTokenExpireMinutes)
}

func TestLoadConfigDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("JWT_SECRET=dotenv-secret\nSTORAGE_BACKEND=minio\n"), 0o600))

	// godotenv never overrides variables that are already set
	t.Setenv("JWT_SECRET", "")
	os.Unsetenv("JWT_SECRET")
	t.Setenv("STORAGE_BACKEND", "")
	os.Unsetenv("STORAGE_BACKEND")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "dotenv-secret", cfg.JWTSecret)
	assert.Equal(t, BackendMinIO, cfg.StorageBackend)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.JWTSecret = "s"
	assert.NoError(t, cfg.Validate())

	bad := cfg
	bad.DBDriver = "oracle"
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.StorageBackend = "ftp"
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.BcryptCost = 99
	assert.Error(t, bad.Validate())
}

func TestLoadConfigBadInt(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "soon")

	_, err := LoadConfig()
	assert.Error(t, err)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
