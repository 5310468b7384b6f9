package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config is read from the environment (and an optional .env file) first; flags override it.
type Config struct {
	Listen     string `env:"UNITDATA_LISTEN" envDefault:":8080"`
	Characters string `env:"UNITDATA_CHARACTERS"`
	Equipment  string `env:"UNITDATA_EQUIPMENT"`
	LogLevel   string `env:"UNITDATA_LOGLEVEL" envDefault:"info"`
}

func LoadConfig(envFile string, args []string) (Config, error) {
	var cfg Config

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("loading %s: %w", envFile, err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	flags := flag.NewFlagSet("unitdata-server", flag.ContinueOnError)
	flags.StringVar(&cfg.Listen, "listen", cfg.Listen, "address to listen on")
	flags.StringVar(&cfg.Characters, "characters", cfg.Characters, "character table (YAML or JSON); empty for the built-in table")
	flags.StringVar(&cfg.Equipment, "equipment", cfg.Equipment, "equipment table (YAML or JSON); empty for the built-in table")
	flags.StringVar(&cfg.LogLevel, "loglevel", cfg.LogLevel, "set to DEBUG for more logging, or WARNING or ERROR for less")
	if err := flags.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, nil
}
