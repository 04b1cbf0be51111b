package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/paladin/internal/config"
)

type flagValues struct {
	debug      bool
	verbose    bool
	difficulty int
	store      string
	entityDir  string
	redisAddr  string
	logFile    string
	budget     int
	dice       string
}

func bindStoreFlags(cmd *cobra.Command, v *flagValues) {
	defaults := config.Default()
	cmd.Flags().StringVar(&v.store, "store", defaults.Store.Kind, "where characters are saved: file or redis")
	cmd.Flags().StringVar(&v.entityDir, "entity-dir", defaults.Store.Dir, "directory for the file store")
	cmd.Flags().StringVar(&v.redisAddr, "redis-addr", "", "redis address for the redis store")
}

func bindPlayFlags(cmd *cobra.Command, v *flagValues) {
	defaults := config.Default()
	bindStoreFlags(cmd, v)
	cmd.Flags().BoolVar(&v.debug, "debug", false, "enable in-game debug options")
	cmd.Flags().BoolVarP(&v.verbose, "verbose", "v", false, "log at debug level")
	cmd.Flags().IntVar(&v.difficulty, "difficulty", defaults.Options.Difficulty, "game difficulty (0-5)")
	cmd.Flags().StringVar(&v.logFile, "log-file", defaults.LogFile, "log file, empty to disable logging")
	cmd.Flags().IntVar(&v.budget, "budget", defaults.Budget, "total attribute points")
	cmd.Flags().StringVar(&v.dice, "dice", defaults.Dice, "dice rolled per attribute, XdY")
}

// loadConfig layers flags the user actually set over file and environment
func loadConfig(cmd *cobra.Command, v *flagValues) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("debug") {
		cfg.Options.Debug = v.debug
	}
	if flags.Changed("verbose") {
		cfg.Options.Verbose = v.verbose
	}
	if flags.Changed("difficulty") {
		cfg.Options.Difficulty = v.difficulty
	}
	if flags.Changed("store") {
		cfg.Store.Kind = v.store
	}
	if flags.Changed("entity-dir") {
		cfg.Store.Dir = v.entityDir
	}
	if flags.Changed("redis-addr") {
		cfg.Store.RedisAddr = v.redisAddr
	}
	if flags.Changed("log-file") {
		cfg.LogFile = v.logFile
	}
	if flags.Changed("budget") {
		cfg.Budget = v.budget
	}
	if flags.Changed("dice") {
		cfg.Dice = v.dice
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
