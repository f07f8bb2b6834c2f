package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	KeyDB       = "db"
	KeyLogLevel = "log-level"
	KeyLogFile  = "log-file"
	KeyWorkers  = "workers"
)

type Config struct {
	DBPath   string
	LogLevel string
	LogFile  string
	Workers  int
}

// Load resolves settings in viper's usual order: flags, RIPENESS_* env
// vars, config file, then defaults. cfgFile may be empty.
func Load(v *viper.Viper, flags *pflag.FlagSet, cfgFile string) (Config, error) {
	_ = godotenv.Load()

	v.SetDefault(KeyDB, DefaultDBPath())
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyWorkers, 1)

	if flags != nil {
		for _, key := range []string{KeyDB, KeyLogLevel, KeyLogFile, KeyWorkers} {
			if f := flags.Lookup(key); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, err
				}
			}
		}
	}

	v.SetEnvPrefix("RIPENESS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".ripeness"))
		}
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("config")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, err
			}
		}
	}

	return Config{
		DBPath:   v.GetString(KeyDB),
		LogLevel: v.GetString(KeyLogLevel),
		LogFile:  v.GetString(KeyLogFile),
		Workers:  v.GetInt(KeyWorkers),
	}, nil
}

func DefaultDBPath() string {
	cacheDir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "ripeness", "ripeness.db")
	}
	return filepath.Join(cacheDir, "ripeness", "ripeness.db")
}
