// meta/meta.go
package meta

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DEFAULT_GAME_SERVER is the public match server.
const DEFAULT_GAME_SERVER = "https://gbc2023.tenka1.klab.jp"

// DEFAULT_TOKEN is the placeholder token shipped with the sample bots.
const DEFAULT_TOKEN = "YOUR_TOKEN"

// GO_ROUTINES defines the number of goroutines evaluating candidate moves.
const GO_ROUTINES = 4

// RETRIES defines how many times an API call is attempted.
const RETRIES = 5

// RETRY_DELAY defines the pause between API attempts.
const RETRY_DELAY = 100 * time.Millisecond

// SPECIALS defines the special charges per agent in offline matches.
const SPECIALS = 2

type Config struct {
	GameServer    string        `yaml:"game_server"`
	Token         string        `yaml:"token"`
	GameID        int           `yaml:"game_id"` // 0 starts a practice match
	PracticeMode  int           `yaml:"practice_mode"`
	PracticeDelay int           `yaml:"practice_delay"`
	Goroutines    int           `yaml:"goroutines"`
	SpecialRate   *float64      `yaml:"special_rate"`
	Evaluation    string        `yaml:"evaluation"` // "owned" or "margin"
	Seed          uint64        `yaml:"seed"`       // 0 seeds from the clock
	Retries       int           `yaml:"retries"`
	RetryDelay    time.Duration `yaml:"retry_delay"`
	Specials      int           `yaml:"specials"`
	LogLevel      string        `yaml:"log_level"`
	MetricsDir    string        `yaml:"metrics_dir"` // empty disables CSV output
}

// Load reads a YAML config file, applies environment overrides and fills in
// defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	var c Config
	if path != "" {
		raw, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return c, err
		default:
			if err := yaml.Unmarshal(raw, &c); err != nil {
				return c, fmt.Errorf("%s: %w", path, err)
			}
		}
	}

	if err := c.applyEnv(os.Getenv); err != nil {
		return c, err
	}
	c.applyDefaults()
	return c, c.validate()
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv("GAME_SERVER"); v != "" {
		c.GameServer = v
	}
	if v := getenv("TOKEN"); v != "" {
		c.Token = v
	}
	if v := getenv("GAME_ID"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("GAME_ID: %w", err)
		}
		c.GameID = id
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.GameServer == "" {
		c.GameServer = DEFAULT_GAME_SERVER
	}
	if c.Token == "" {
		c.Token = DEFAULT_TOKEN
	}
	if c.Goroutines <= 0 {
		c.Goroutines = GO_ROUTINES
	}
	if c.SpecialRate == nil {
		rate := 0.1
		c.SpecialRate = &rate
	}
	if c.Evaluation == "" {
		c.Evaluation = "owned"
	}
	if c.Retries <= 0 {
		c.Retries = RETRIES
	}
	if c.RetryDelay <= 0 {
		c.RetryDelay = RETRY_DELAY
	}
	if c.Specials <= 0 {
		c.Specials = SPECIALS
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c *Config) validate() error {
	if *c.SpecialRate < 0 || *c.SpecialRate > 1 {
		return fmt.Errorf("special_rate %v not in [0, 1]", *c.SpecialRate)
	}
	if c.Evaluation != "owned" && c.Evaluation != "margin" {
		return fmt.Errorf("unknown evaluation %q", c.Evaluation)
	}
	return nil
}
