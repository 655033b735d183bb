package config

import (
	"errors"
	"io/fs"

	"github.com/spf13/viper"
)

type Config struct {
	BoardSize    int    `mapstructure:"BOARD_SIZE"`
	SearchDepth  int    `mapstructure:"SEARCH_DEPTH"`
	MoveBudgetMs int    `mapstructure:"MOVE_BUDGET_MS"`
	Games        int    `mapstructure:"GAMES"`
	LogLevel     string `mapstructure:"LOG_LEVEL"`
}

// Setup loads the configuration from the given file, overridable by
// environment variables of the same names. A missing file is fine: defaults
// apply.
func Setup(cfgPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(cfgPath)
	v.AutomaticEnv()

	v.SetDefault("BOARD_SIZE", 7)
	v.SetDefault("SEARCH_DEPTH", 3)
	v.SetDefault("MOVE_BUDGET_MS", 1000)
	v.SetDefault("GAMES", 2)
	v.SetDefault("LOG_LEVEL", "info")

	err := v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	var cfg Config
	err = v.Unmarshal(&cfg)
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}
