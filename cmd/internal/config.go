package internal

import (
	"errors"
	"os"
	"path/filepath"

	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigName = "vpack"
	EnvPrefix  = "VPACK"

	KeyOutputDir = "output_dir"
	KeyTempDir   = "temp_dir"
	KeyPlay      = "play"
	KeyPassword  = "password"
)

// Config holds the settings that can come from a config file, the environment, or flags.
type Config struct {
	// OutputDir is where new containers are written.
	OutputDir string `mapstructure:"output_dir"`
	// TempDir is where containers are restored to.
	TempDir string `mapstructure:"temp_dir"`
	// Play opens restored files with the default application.
	Play bool `mapstructure:"play"`
	// Password skips the prompt when set.
	Password string `mapstructure:"password"`
}

// DefaultOutputDir is the user's Downloads directory, or the working directory if there's no home directory.
func DefaultOutputDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Downloads")
}

// LoadConfig reads configuration from flags, VPACK_* environment variables, and a vpack.yaml file, in that order of precedence.
// If configFile is empty, vpack.yaml is looked for in the working directory and $HOME/.vpack, and it's fine if there isn't one.
// Flags are bound by their name with "-" in place of "_".
func LoadConfig(flags *flag.FlagSet, configFile string) (*Config, error) {
	v := viper.New()
	v.SetDefault(KeyOutputDir, DefaultOutputDir())
	v.SetDefault(KeyTempDir, os.TempDir())
	v.SetDefault(KeyPlay, true)
	v.SetDefault(KeyPassword, "")

	if len(configFile) > 0 {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(ConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.vpack")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if len(configFile) > 0 || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	if flags != nil {
		for _, key := range []string{KeyOutputDir, KeyTempDir, KeyPlay, KeyPassword} {
			if f := flags.Lookup(flagName(key)); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, err
				}
			}
		}
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func flagName(key string) string {
	out := []byte(key)
	for i, c := range out {
		if c == '_' {
			out[i] = '-'
		}
	}
	return string(out)
}
