package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.Equal(t, "==> ", cfg.Prompt)
	require.True(t, cfg.Color)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Contains(t, cfg.HistoryFile, ".rpn_history")
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "config.toml", `
prompt = "rpn> "
history_file = "/tmp/hist"
color = false
log_level = "debug"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "rpn> ", cfg.Prompt)
	require.Equal(t, "/tmp/hist", cfg.HistoryFile)
	require.False(t, cfg.Color)
	require.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadYAML(t *testing.T) {
	for _, name := range []string{"config.yaml", "config.yml"} {
		path := writeFile(t, name, `
prompt: "rpn> "
color: false
`)
		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, "rpn> ", cfg.Prompt)
		require.False(t, cfg.Color)
		// untouched keys keep their defaults
		require.Equal(t, "warn", cfg.LogLevel)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	path := writeFile(t, "config.toml", `prompt = "$ "`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "$ ", cfg.Prompt)
	require.True(t, cfg.Color)
	require.Equal(t, Default().HistoryFile, cfg.HistoryFile)
}

func TestLoadUnknownExtensionIsTOML(t *testing.T) {
	path := writeFile(t, "rpnrc", `prompt = "> "`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "> ", cfg.Prompt)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.Error(t, err)
}

func TestLoadRejectsBadLogLevel(t *testing.T) {
	path := writeFile(t, "config.toml", `log_level = "chatty"`)
	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "log_level")
}

func TestLoadRejectsEmptyPrompt(t *testing.T) {
	path := writeFile(t, "config.toml", `prompt = ""`)
	_, err := Load(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "prompt")
}

func TestLoadRejectsBadSyntax(t *testing.T) {
	path := writeFile(t, "config.toml", `prompt = `)
	_, err := Load(path)
	require.Error(t, err)
}

func TestResolveWithoutFileUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := Resolve("")
	require.NoError(t, err)
	require.Equal(t, "==> ", cfg.Prompt)
}

func TestResolveFindsDefaultFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".config", "rpn")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`prompt = "rpn> "`), 0o644))

	cfg, err := Resolve("")
	require.NoError(t, err)
	require.Equal(t, "rpn> ", cfg.Prompt)
}

func TestResolveExplicitMissingFails(t *testing.T) {
	_, err := Resolve(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoadExpandsHomeInHistoryFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	path := writeFile(t, "config.toml", `history_file = "~/.rpn_history"`)

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".rpn_history"), cfg.HistoryFile)
}

func TestDetectFormat(t *testing.T) {
	require.Equal(t, FormatYAML, detectFormat("a.yaml"))
	require.Equal(t, FormatYAML, detectFormat("a.YML"))
	require.Equal(t, FormatTOML, detectFormat("a.toml"))
	require.Equal(t, FormatTOML, detectFormat("rc"))
}

func TestSetLogLevelString(t *testing.T) {
	old := GetLogLevel()
	defer SetLogLevel(old)

	require.NoError(t, SetLogLevelString("debug"))
	require.Equal(t, logrus.DebugLevel, GetLogLevel())
	require.Error(t, SetLogLevelString("chatty"))
}
