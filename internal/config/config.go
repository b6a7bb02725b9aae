package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel      string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile       string `yaml:"log-file" env:"LOG_FILE" env-default:""`
	PlayerOneMark string `yaml:"player-one-mark" env:"PLAYER_ONE_MARK" env-default:"X"`
	PlayerTwoMark string `yaml:"player-two-mark" env:"PLAYER_TWO_MARK" env-default:"O"`
}

// MustLoad - load all configurations in config.yml file. The file is
// optional: without it the environment and the defaults apply.
func MustLoad(path string) *Config {
	config := &Config{}

	err := cleanenv.ReadConfig(path, config)
	if err == nil {
		return config
	}

	if !errors.Is(err, os.ErrNotExist) {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	if err = cleanenv.ReadEnv(config); err != nil {
		panic(fmt.Errorf("unable to read environment: %w", err))
	}

	return config
}
