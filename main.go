package main

import (
	"flag"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"hex/config"
	"hex/experiments"
)

func main() {
	cfgPath := flag.String("config", "config.yaml", "path to the config file")
	flag.Parse()

	cfg, err := config.Setup(*cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	err = experiments.RunDepthVersusBudget(experiments.MatchOptions{
		BoardSize: cfg.BoardSize,
		Games:     cfg.Games,
		Depth:     cfg.SearchDepth,
		Budget:    time.Duration(cfg.MoveBudgetMs) * time.Millisecond,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("match run failed")
	}
}
