package dotenv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine_Basic(t *testing.T) {
	tests := []struct {
		name  string
		input string
		key   string
		value string
	}{
		{"plain pair", "FOO=bar", "FOO", "bar"},
		{"export prefix", "export FOO=bar", "FOO", "bar"},
		{"underscore key", "_A=1", "_A", "1"},
		{"spaces around equals", "FOO = bar ", "FOO", "bar"},
		{"empty value", "FOO=", "FOO", ""},
		{"inline comment", "FOO=bar # trailing", "FOO", "bar"},
		{"hash inside value", "URL=http://x/#anchor", "URL", "http://x/#anchor"},
		{"single quotes literal", `X='line\nfeed'`, "X", `line\nfeed`},
		{"single quotes keep spaces", "X='a b' ", "X", "a b"},
		{"double quotes", `X="a b" `, "X", "a b"},
		{"double quote escapes", `X="line\nfeed"`, "X", "line\nfeed"},
		{"escaped quote", `X="quote: \""`, "X", `quote: "`},
		{"unknown escape kept", `X="\q"`, "X", `\q`},
		{"quoted hash preserved", `X="a # b"`, "X", "a # b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, value, ok, err := parseLine(tt.input)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, tt.key, key)
			assert.Equal(t, tt.value, value)
		})
	}
}

func TestParseLine_SkipsCommentsAndBlanks(t *testing.T) {
	for _, input := range []string{"", "   ", "# hello", "  # spaced"} {
		_, _, ok, err := parseLine(input)
		require.NoError(t, err)
		assert.False(t, ok, "input %q should be skipped", input)
	}
}

func TestParseLine_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing equals", "JUSTAKEY"},
		{"digit-leading key", "9A=1"},
		{"key with dash", "MY-KEY=1"},
		{"unterminated double quote", `X="oops`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, err := parseLine(tt.input)
			assert.Error(t, err)
		})
	}
}

func TestLoadFrom_RespectsExistingVariables(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(file, []byte("DOTENV_TEST_A=1\nDOTENV_TEST_B=2\n"), 0o644))

	os.Unsetenv("DOTENV_TEST_A")
	t.Setenv("DOTENV_TEST_B", "pre")

	n, err := LoadFrom(file)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "1", os.Getenv("DOTENV_TEST_A"))
	assert.Equal(t, "pre", os.Getenv("DOTENV_TEST_B"))
	t.Cleanup(func() { os.Unsetenv("DOTENV_TEST_A") })

	n, err = OverloadFrom(file)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "2", os.Getenv("DOTENV_TEST_B"))
}

func TestLoadFrom_LastAssignmentWins(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(file, []byte("DOTENV_TEST_DUP=first\nDOTENV_TEST_DUP=second\n"), 0o644))

	os.Unsetenv("DOTENV_TEST_DUP")
	t.Cleanup(func() { os.Unsetenv("DOTENV_TEST_DUP") })

	n, err := LoadFrom(file)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "second", os.Getenv("DOTENV_TEST_DUP"))
}

func TestLoadFrom_ParseErrorCarriesLineNumber(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(file, []byte("OK=1\n9BAD=2\n"), 0o644))

	_, err := LoadFrom(file)
	require.Error(t, err)
	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)
	assert.Equal(t, file, pe.Path)
}

func TestLoadFrom_MissingFile(t *testing.T) {
	_, err := LoadFrom(filepath.Join(t.TempDir(), "nope.env"))
	assert.Error(t, err)
}

func TestLoad_WalksUpToNearestFile(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "a", "b", "c")
	require.NoError(t, os.MkdirAll(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte("DOTENV_TEST_ROOT=1\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a", ".env"), []byte("DOTENV_TEST_NEAR=2\n"), 0o644))

	os.Unsetenv("DOTENV_TEST_ROOT")
	os.Unsetenv("DOTENV_TEST_NEAR")
	t.Cleanup(func() {
		os.Unsetenv("DOTENV_TEST_ROOT")
		os.Unsetenv("DOTENV_TEST_NEAR")
	})
	t.Chdir(sub)

	n, err := Load()
	require.NoError(t, err)

	// Only the nearest file (a/.env) applies.
	assert.Equal(t, 1, n)
	assert.Equal(t, "2", os.Getenv("DOTENV_TEST_NEAR"))
	_, rootSet := os.LookupEnv("DOTENV_TEST_ROOT")
	assert.False(t, rootSet)
}
