package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte(
		"MERCADO_DOTENV_TEST_SECRET=from-file\nMERCADO_DOTENV_TEST_KEPT=from-file\n",
	), 0o600))

	t.Setenv("MERCADO_DOTENV_TEST_KEPT", "from-env")
	t.Cleanup(func() { _ = os.Unsetenv("MERCADO_DOTENV_TEST_SECRET") })

	require.NoError(t, loadEnvFile(path))
	assert.Equal(t, "from-file", os.Getenv("MERCADO_DOTENV_TEST_SECRET"))
	assert.Equal(t, "from-env", os.Getenv("MERCADO_DOTENV_TEST_KEPT"))

	require.NoError(t, loadEnvFile(filepath.Join(dir, "missing.env")))
	require.NoError(t, loadEnvFile(""))
}
