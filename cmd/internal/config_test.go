package internal

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps LoadConfig away from the caller's config files and RX_
// environment.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("HOME", t.TempDir())
	for _, key := range []string{"RX_OUTPUT", "RX_STRICT", "RX_VERBOSE"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	return dir
}

func newFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("rx", pflag.ContinueOnError)
	flags.String("config", "", "")
	flags.StringP("output", "o", "", "")
	flags.Bool("strict", false, "")
	flags.BoolP("verbose", "v", false, "")
	return flags
}

func TestLoadConfigDefaults(t *testing.T) {
	isolate(t)

	cfg, err := LoadConfig("", newFlags())
	require.NoError(t, err)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.False(t, cfg.Strict)
	assert.False(t, cfg.Verbose)
	assert.Empty(t, cfg.File)
}

func TestLoadConfigPrecedence(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rx.yaml"), []byte("output: pcre2\nstrict: true\n"), 0o600))

	cfg, err := LoadConfig("", newFlags())
	require.NoError(t, err)
	assert.Equal(t, "pcre2", cfg.Output)
	assert.True(t, cfg.Strict)
	assert.Equal(t, "rx.yaml", filepath.Base(cfg.File))

	t.Setenv("RX_OUTPUT", "JS")
	cfg, err = LoadConfig("", newFlags())
	require.NoError(t, err)
	assert.Equal(t, "js", cfg.Output)

	flags := newFlags()
	require.NoError(t, flags.Parse([]string{"-o", "debug", "--strict=false"}))
	cfg, err = LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Output)
	assert.False(t, cfg.Strict)
}

func TestLoadConfigExplicitFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("verbose: true\n"), 0o600))

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.Equal(t, path, cfg.File)
}

func TestLoadConfigErrors(t *testing.T) {
	isolate(t)

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.ErrorContains(t, err, "error reading config file")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("output: [unclosed\n"), 0o600))
	_, err = LoadConfig(bad, nil)
	assert.Error(t, err)
}

func TestConfigContext(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, DefaultOutput, ConfigFrom(ctx).Output)

	cfg := &Config{Output: "js", Strict: true}
	assert.Same(t, cfg, ConfigFrom(WithConfig(ctx, cfg)))
}
