package internal

import (
	"os"
	"path/filepath"
	"testing"

	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFlags() *flag.FlagSet {
	flags := flag.NewFlagSet("test", flag.ContinueOnError)
	flags.String("output-dir", "", "")
	flags.String("temp-dir", "", "")
	flags.Bool("play", true, "")
	return flags
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := LoadConfig(nil, "")
	require.NoError(t, err)
	assert.Equal(t, DefaultOutputDir(), cfg.OutputDir)
	assert.Equal(t, os.TempDir(), cfg.TempDir)
	assert.True(t, cfg.Play)
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "vpack.yaml")
	require.NoError(t, os.WriteFile(file, []byte("output_dir: /srv/packed\nplay: false\n"), 0644))

	cfg, err := LoadConfig(nil, file)
	require.NoError(t, err)
	assert.Equal(t, "/srv/packed", cfg.OutputDir)
	assert.False(t, cfg.Play)
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(nil, filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "vpack.yaml")
	require.NoError(t, os.WriteFile(file, []byte("output_dir: /from/file\ntemp_dir: /from/file\n"), 0644))
	t.Setenv("VPACK_TEMP_DIR", "/from/env")

	flags := testFlags()
	require.NoError(t, flags.Parse([]string{"--output-dir", "/from/flag"}))

	cfg, err := LoadConfig(flags, file)
	require.NoError(t, err)
	assert.Equal(t, "/from/flag", cfg.OutputDir)
	assert.Equal(t, "/from/env", cfg.TempDir)
	assert.True(t, cfg.Play)
}

func TestFlagName(t *testing.T) {
	assert.Equal(t, "output-dir", flagName(KeyOutputDir))
	assert.Equal(t, "play", flagName(KeyPlay))
}

func TestLoadConfig_Password(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "vpack.yaml")
	require.NoError(t, os.WriteFile(file, []byte("password: from-file\n"), 0644))

	cfg, err := LoadConfig(nil, file)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Password)

	t.Setenv(PasswordEnvVar, "from-env")
	cfg, err = LoadConfig(nil, file)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Password)

	flags := testFlags()
	flags.StringP("password", "p", "", "")
	require.NoError(t, flags.Parse([]string{"-p", "from-flag"}))
	cfg, err = LoadConfig(flags, file)
	require.NoError(t, err)
	assert.Equal(t, "from-flag", cfg.Password)
}
