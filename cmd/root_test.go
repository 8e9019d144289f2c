package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mergefiles/pkg/merge"
	"mergefiles/pkg/version"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	if args == nil {
		// A nil slice makes cobra fall back to os.Args.
		args = []string{}
	}
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&out)
	err := run(root)
	return out.String(), err
}

func mergedFiles(t *testing.T, dir string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, "merged.*"))
	require.NoError(t, err)
	return matches
}

func readFile(t *testing.T, name string) string {
	t.Helper()
	data, err := os.ReadFile(name)
	require.NoError(t, err)
	return string(data)
}

func TestRootMergesWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile("a.txt", []byte("0123456789"), 0o644))
	require.NoError(t, os.WriteFile("b.txt", []byte(strings.Repeat("x", 1000)), 0o644))
	require.NoError(t, os.WriteFile("c.log", []byte("hello"), 0o644))

	out, err := execute(t, "txt", "500")
	require.NoError(t, err)

	assert.Equal(t, "File a.txt added to merged.txt\nMerge complete. Output file: merged.txt\n", out)
	assert.Equal(t, "0123456789"+merge.Delimiter("a.txt"), readFile(t, "merged.txt"))
}

func TestRootExtensionsNamedLikeCommands(t *testing.T) {
	for _, ext := range []string{"help", "version", "completion"} {
		t.Run(ext, func(t *testing.T) {
			chdir(t, t.TempDir())
			require.NoError(t, os.WriteFile("a."+ext, []byte("content"), 0o644))

			out, err := execute(t, ext, "500")
			require.NoError(t, err)

			assert.Contains(t, out, "File a."+ext+" added to merged."+ext)
			assert.Equal(t, "content"+merge.Delimiter("a."+ext), readFile(t, "merged."+ext))
		})
	}
}

func TestRootMaxSizeValues(t *testing.T) {
	tests := []struct {
		name      string
		args      []string
		wantMerge bool
	}{
		{name: "negative", args: []string{"txt", "-5"}},
		{name: "zero", args: []string{"txt", "0"}},
		{name: "negative with debug flag", args: []string{"--debug", "txt", "-5"}},
		{name: "beyond int64", args: []string{"txt", "99999999999999999999"}, wantMerge: true},
		{name: "below int64", args: []string{"txt", "-99999999999999999999"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restore := zap.ReplaceGlobals(zap.NewNop())
			t.Cleanup(restore)
			chdir(t, t.TempDir())
			require.NoError(t, os.WriteFile("a.txt", []byte("abc"), 0o644))

			_, err := execute(t, tt.args...)
			require.NoError(t, err)

			if tt.wantMerge {
				assert.Equal(t, "abc"+merge.Delimiter("a.txt"), readFile(t, "merged.txt"))
			} else {
				assert.Empty(t, readFile(t, "merged.txt"))
			}
		})
	}
}

func TestRootRejectsBadArguments(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "non-integer max_size", args: []string{"txt", "big"}, wantErr: `invalid max_size "big"`},
		{name: "float max_size", args: []string{"txt", "1.5"}, wantErr: "invalid max_size"},
		{name: "missing max_size", args: []string{"txt"}, wantErr: "accepts 2 arg(s)"},
		{name: "no arguments", args: nil, wantErr: "accepts 2 arg(s)"},
		{name: "too many arguments", args: []string{"txt", "1", "2"}, wantErr: "accepts 2 arg(s)"},
		{name: "flag after arguments", args: []string{"txt", "1", "--debug"}, wantErr: "accepts 2 arg(s)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			chdir(t, dir)

			out, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUsage)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.Contains(t, out, "Error: ")
			assert.Contains(t, out, "Usage:")
			assert.Empty(t, mergedFiles(t, dir))
		})
	}
}

func TestRootReportsMergeFailureWithoutUsage(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile("bad.txt", []byte{0xff, 0xfe}, 0o644))

	out, err := execute(t, "txt", "100")
	require.Error(t, err)
	assert.ErrorIs(t, err, merge.ErrNotText)
	assert.NotErrorIs(t, err, ErrUsage)
	assert.NotContains(t, out, "Usage:")
	assert.NotContains(t, out, "Error: ")
}

func TestRootDebugFlag(t *testing.T) {
	restore := zap.ReplaceGlobals(zap.NewNop())
	t.Cleanup(restore)
	chdir(t, t.TempDir())

	_, err := execute(t, "--debug", "md", "10")
	require.NoError(t, err)
	assert.True(t, zap.L().Core().Enabled(zapcore.DebugLevel))
	assert.FileExists(t, "merged.md")
}

func TestRootVersionFlag(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	out, err := execute(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, version.String()+"\n", out)
	assert.Empty(t, mergedFiles(t, dir))
}

// chdir mirrors testing.T.Chdir (Go 1.24+): it changes the working directory
// and restores the previous one when the test finishes.
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatalf("chdir %s: %v", prev, err)
		}
	})
}
