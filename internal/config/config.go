// Package config loads game options and runtime settings.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/paladin/internal/allocation"
	"github.com/KirkDiggler/paladin/internal/dice"
	"github.com/KirkDiggler/paladin/internal/entities"
	"github.com/KirkDiggler/paladin/internal/errors"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "PALADIN_"

// Store kinds
const (
	StoreFile  = "file"
	StoreRedis = "redis"
)

// Config is everything the application needs at startup
type Config struct {
	Options Options     `toml:"options"`
	Store   StoreConfig `toml:"store" envPrefix:"STORE_"`
	LogFile string      `toml:"log_file" env:"LOG_FILE"`
	Budget  int         `toml:"budget" env:"BUDGET"`
	Dice    string      `toml:"dice" env:"DICE"`
}

// StoreConfig selects where finished characters are written
type StoreConfig struct {
	Kind      string `toml:"kind" env:"KIND"`
	Dir       string `toml:"dir" env:"DIR"`
	RedisAddr string `toml:"redis_addr" env:"REDIS_ADDR"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Options: Options{
			Difficulty: 1,
			Dimensions: "80x24",
		},
		Store: StoreConfig{
			Kind: StoreFile,
			Dir:  "./entities",
		},
		LogFile: "paladin.log",
		Budget:  entities.DefaultBudget,
		Dice:    dice.DefaultNotation,
	}
}

// Load applies an optional TOML file and then environment overrides on top
// of the defaults. A missing file is only an error when path is set.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeNotFound, "config file not found").
				WithMeta("path", path)
		}
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse config file").
				WithMeta("path", path)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}

	return cfg, nil
}

// Validate checks every field the application depends on
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("options.difficulty", c.Options.Difficulty, 0, MaxOptionValue, vb)
	errors.ValidateEnum("store.kind", c.Store.Kind, []string{StoreFile, StoreRedis}, vb)
	switch c.Store.Kind {
	case StoreFile:
		errors.ValidateRequired("store.dir", c.Store.Dir, vb)
	case StoreRedis:
		errors.ValidateRequired("store.redis_addr", c.Store.RedisAddr, vb)
	}
	if c.Budget <= 0 {
		vb.InvalidField("budget", "must be positive")
	}
	count, size, err := dice.ParseNotation(c.Dice)
	if err != nil {
		vb.InvalidField("dice", errors.GetMessage(err))
	}
	if err == nil && c.Budget > 0 {
		rules := allocation.DefaultRules()
		if !rules.Reachable(c.Budget, count, count*size) {
			vb.InvalidField("budget", fmt.Sprintf("%s can never leave %d to %d points to assign",
				c.Dice, rules.AcceptAbove+1, rules.AcceptBelow-1))
		}
	}

	return vb.Build()
}
