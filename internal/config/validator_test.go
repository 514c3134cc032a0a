package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEnv_NoVersion(t *testing.T) {
	t.Setenv(EnvSchemaVersion, "")
	os.Unsetenv(EnvSchemaVersion)

	assert.NoError(t, ValidateEnv())
}

func TestValidateEnv_VersionMismatch(t *testing.T) {
	t.Setenv(EnvSchemaVersion, "0.9")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION mismatch")
	assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
}

func TestValidateEnvWithWarnings(t *testing.T) {
	t.Run("warns when schema version missing", func(t *testing.T) {
		t.Setenv(EnvSchemaVersion, "")
		t.Setenv(EnvLogFormat, "")

		warnings, err := ValidateEnvWithWarnings()

		require.NoError(t, err)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], EnvSchemaVersion)
	})

	t.Run("warns on unknown log format", func(t *testing.T) {
		t.Setenv(EnvSchemaVersion, ExpectedEnvSchemaVersion)
		t.Setenv(EnvLogFormat, "xml")

		warnings, err := ValidateEnvWithWarnings()

		require.NoError(t, err)
		require.Len(t, warnings, 1)
		assert.Contains(t, warnings[0], "xml")
	})

	t.Run("clean environment has no warnings", func(t *testing.T) {
		t.Setenv(EnvSchemaVersion, ExpectedEnvSchemaVersion)
		t.Setenv(EnvLogFormat, "JSON")

		warnings, err := ValidateEnvWithWarnings()

		require.NoError(t, err)
		assert.Empty(t, warnings)
	})

	t.Run("propagates version mismatch", func(t *testing.T) {
		t.Setenv(EnvSchemaVersion, "2.0")

		warnings, err := ValidateEnvWithWarnings()

		assert.Error(t, err)
		assert.Nil(t, warnings)
	})
}
