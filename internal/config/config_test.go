package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFilesIsValid(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	require.Empty(t, cfg.Providers)
	require.Empty(t, cfg.Defaults.CorrectionModel)
	require.NotNil(t, cfg.Options)
	require.NotEmpty(t, cfg.Options.DataDirectory)
}

func TestLoadMergesLocalOverGlobal(t *testing.T) {
	globalDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", globalDir)
	require.NoError(t, os.MkdirAll(filepath.Join(globalDir, appName), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(globalDir, appName, configFilename),
		[]byte(`{"defaults": {"correction_model": "global-model"}, "options": {"debug": true}}`),
		0o644,
	))

	workingDir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(workingDir, configFilename),
		[]byte(`{"defaults": {"correction_model": "local-model"}}`),
		0o644,
	))

	cfg, err := Load(workingDir)
	require.NoError(t, err)
	require.Equal(t, "local-model", cfg.Defaults.CorrectionModel)
	require.True(t, cfg.Options.Debug)
}

func TestCatalogExtensions(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	workingDir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(workingDir, configFilename),
		[]byte(`{"providers": [
			{"id": "internal", "name": "Internal", "models": ["team-model-large", "team-model-small"]},
			{"id": "openai", "models": ["gpt-4o-custom"]}
		]}`),
		0o644,
	))

	cfg, err := Load(workingDir)
	require.NoError(t, err)

	cat := cfg.Catalog()
	require.Equal(t, []string{"team-model-large", "team-model-small"}, cat.ModelIDs("internal"))
	// Extensions for a known provider append after the built-in models.
	ids := cat.ModelIDs("openai")
	require.Equal(t, "gpt-4o", ids[0])
	require.Equal(t, "gpt-4o-custom", ids[len(ids)-1])
}

func TestSetConfigField(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, cfg.SetConfigField("defaults.correction_model", "gemini/gemini-2.5-pro"))

	reloaded, err := Load(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, "gemini/gemini-2.5-pro", reloaded.Defaults.CorrectionModel)
}

func TestLoadRejectsMalformedConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	workingDir := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(workingDir, configFilename),
		[]byte(`{not json`),
		0o644,
	))

	_, err := Load(workingDir)
	require.Error(t, err)
}
