package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with a scratch HOME and captured output.
// Flag variables persist between invocations, so they are reset here.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	expression = ""
	cfgFile = ""
	verbose = false
	noColor = true

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func Test_Root_EvaluatesExpressionFlag(t *testing.T) {
	out, _, err := execute(t, "-e", "2 8 +")
	assert.NoError(t, err)
	assert.Equal(t, "10\n", out)
}

func Test_Root_EvaluatesPositionalArgs(t *testing.T) {
	out, _, err := execute(t, "5 1 2 + 4 * + 3 -")
	assert.NoError(t, err)
	assert.Equal(t, "14\n", out)

	out, _, err = execute(t, "2", "8", "+")
	assert.NoError(t, err)
	assert.Equal(t, "10\n", out)
}

func Test_Root_PrintsDumps(t *testing.T) {
	out, _, err := execute(t, "-e", "1 2 ? +")
	assert.NoError(t, err)
	assert.Equal(t, "stack: 1 2\n3\n", out)

	out, _, err = execute(t, "-e", "4 ! 2 ! & @")
	assert.NoError(t, err)
	assert.Equal(t, "memory: 4 2\n2\n", out)
}

func Test_Root_ReportsEvaluationError(t *testing.T) {
	out, errOut, err := execute(t, "-e", "3 0 /")
	assert.ErrorIs(t, err, ErrEvaluation)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "division by zero")
	assert.Contains(t, errOut, "3 0 /")
	assert.Contains(t, errOut, "^")
}

func Test_Root_DumpsPrintedBeforeError(t *testing.T) {
	out, errOut, err := execute(t, "-e", "1 ? +")
	assert.ErrorIs(t, err, ErrEvaluation)
	assert.Equal(t, "stack: 1\n", out)
	assert.Contains(t, errOut, "stack underflow")
}

func Test_Root_UsesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("prompt = \"> \"\nlog_level = \"error\"\n"), 0o644))

	out, _, err := execute(t, "--config", path, "-e", "2 8 +")
	assert.NoError(t, err)
	assert.Equal(t, "10\n", out)
	assert.Equal(t, "> ", cfg.Prompt)
}

func Test_Root_RejectsMissingConfigFile(t *testing.T) {
	_, _, err := execute(t, "--config", filepath.Join(t.TempDir(), "nope.toml"), "-e", "1")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrEvaluation)
}

func Test_Version_Command(t *testing.T) {
	out, _, err := execute(t, "version")
	assert.NoError(t, err)
	assert.Contains(t, out, appName+" v")
	assert.Contains(t, out, "Go Version:")
	assert.Contains(t, out, "OS/Arch:")
}

func Test_Paint_RespectsColorToggle(t *testing.T) {
	colorEnabled = false
	assert.Equal(t, "plain", paint(errorStyle, "plain"))
}
