package main

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "DUNGEON"

// Config holds runtime settings. Values come from the environment (and an
// optional .env file) and may be overridden by command-line flags.
type Config struct {
	SavePath       string `envconfig:"SAVE_PATH" default:"save.txt" validate:"required"`
	ScoresPath     string `envconfig:"SCORES_PATH" default:"scores.csv" validate:"required"`
	WorldPath      string `envconfig:"WORLD_PATH" validate:"omitempty,file"`
	ScoreboardSize int    `envconfig:"SCOREBOARD_SIZE" default:"10" validate:"min=1,max=100"`
	LogLevel       string `envconfig:"LOG_LEVEL" default:"warn" validate:"oneof=debug info warn warning error"`
	LogFormat      string `envconfig:"LOG_FORMAT" default:"text" validate:"oneof=text json"`
}

var configValidator = validator.New()

// LoadConfig reads DUNGEON_* variables. The result is not validated until
// command-line overrides have been applied; call Validate after that.
func LoadConfig() (*Config, error) {
	// .env is optional; real environment variables take precedence
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	cfg.normalize()
	return &cfg, nil
}

func (c *Config) normalize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
}

func (c *Config) Validate() error {
	c.normalize()
	if err := configValidator.Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func (c *Config) GameOptions() GameOptions {
	return GameOptions{
		WorldPath:      c.WorldPath,
		SavePath:       c.SavePath,
		ScoresPath:     c.ScoresPath,
		ScoreboardSize: c.ScoreboardSize,
	}
}
