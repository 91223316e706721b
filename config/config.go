package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("config error: %s", e.err)
}

type Config struct {
	LogLevel   string `env:"ALPHABETA_LOG_LEVEL" envDefault:"info"`
	Games      int    `env:"ALPHABETA_GAMES" envDefault:"10"`
	Seed       uint64 `env:"ALPHABETA_SEED" envDefault:"1"`
	OutputDir  string `env:"ALPHABETA_OUTPUT_DIR" envDefault:"experiments"`
	Goroutines int    `env:"ALPHABETA_GOROUTINES" envDefault:"4"`
	AgentAddr  string `env:"ALPHABETA_AGENT_ADDR" envDefault:":8080"`
	// AgentURL points experiments at a served agent, none when empty
	AgentURL   string `env:"ALPHABETA_AGENT_URL"`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return &InvalidConfig{fmt.Sprintf("unknown log level %q", c.LogLevel)}
	}
	if c.Games <= 0 {
		return &InvalidConfig{fmt.Sprintf("games must be positive, got %d", c.Games)}
	}
	if c.Goroutines <= 0 {
		return &InvalidConfig{fmt.Sprintf("goroutines must be positive, got %d", c.Goroutines)}
	}
	if c.OutputDir == "" {
		return &InvalidConfig{"output dir is empty"}
	}
	if c.AgentURL != "" && !strings.HasPrefix(c.AgentURL, "http://") && !strings.HasPrefix(c.AgentURL, "https://") {
		return &InvalidConfig{fmt.Sprintf("agent url must be http(s), got %q", c.AgentURL)}
	}
	return nil
}

// Level is the zerolog level named by LogLevel.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
