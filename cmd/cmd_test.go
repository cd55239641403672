package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/usdfmt/internal/output"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	root := newRootCmd()
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestFormatArgs(t *testing.T) {
	out, _, err := run(t, "", "format", "0", "0.0000001", "0.123456789", "0.1234", "1.23456789", "1.2", "123456.789")
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"$0.000000 ₫",
		"Less than $0.000001 ₫",
		"$0.123457 ₫",
		"$0.123400 ₫",
		"$1.23 ₫",
		"$1.20 ₫",
		"$123,457 ₫",
	}, "\n")+"\n", out)
}

func TestFormatStdinJSON(t *testing.T) {
	out, _, err := run(t, "1.2\n\n  123456.789  \n", "format", "-o", "json")
	require.NoError(t, err)

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "standard", decoded[0]["band"])
	assert.Equal(t, "$123,457 ₫", decoded[1]["formatted"])
}

func TestFormatInvalidUsesPlaceholder(t *testing.T) {
	out, stderr, err := run(t, "", "format", "-o", "csv", "--", "abc", "-1", "NaN", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "abc,,N/A,")
	assert.Contains(t, out, "negative value")
	assert.Contains(t, out, "2,standard,$2.00 ₫,")
	assert.Contains(t, stderr, "cannot format")
}

func TestFormatStrict(t *testing.T) {
	_, _, err := run(t, "", "format", "--strict", "--", "1", "-5")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `value "-5"`)
}

func TestFormatUnsupportedOutput(t *testing.T) {
	_, _, err := run(t, "", "format", "-o", "xml", "1")
	assert.ErrorIs(t, err, output.ErrUnsupportedFormat)
}

func TestFormatWithConfigAndPhrases(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("suffix: \" USD\"\nphrases:\n  Less than: \"Under\"\n"), 0o644))

	out, _, err := run(t, "", "--config", cfgPath, "format", "0.0000001", "1.2")
	require.NoError(t, err)
	assert.Equal(t, "Under $0.000001 USD\n$1.20 USD\n", out)

	phrasesPath := filepath.Join(dir, "phrases.yaml")
	require.NoError(t, os.WriteFile(phrasesPath, []byte("Less than: \"Moins de\"\n"), 0o644))
	out, _, err = run(t, "", "--config", cfgPath, "--phrases", phrasesPath, "format", "0.0000001")
	require.NoError(t, err)
	assert.Equal(t, "Moins de $0.000001 USD\n", out)
}

func TestFormatMissingConfig(t *testing.T) {
	_, _, err := run(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "format", "1")
	assert.Error(t, err)
}

func TestVerboseLogsDebug(t *testing.T) {
	_, stderr, err := run(t, "", "-v", "format", "1.2")
	require.NoError(t, err)
	assert.Contains(t, stderr, "in band standard")
}

func TestBands(t *testing.T) {
	out, _, err := run(t, "", "bands")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 6)
	assert.Contains(t, lines[2], "dust")
	assert.Contains(t, lines[2], `"Less than"`)
	assert.Contains(t, lines[5], "large")
	assert.Contains(t, lines[5], "true")
}
