package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/paladin/internal/app"
	"github.com/KirkDiggler/paladin/internal/ui/tcellui"
)

func newPlayCmd() *cobra.Command {
	v := &flagValues{}
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start the game",
		Long:  `Open the main menu in the current terminal.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd, v)
		},
	}
	bindPlayFlags(cmd, v)
	return cmd
}

func runPlay(cmd *cobra.Command, v *flagValues) error {
	cfg, err := loadConfig(cmd, v)
	if err != nil {
		return err
	}

	logger, err := app.NewLogger(cfg.LogFile, cfg.Options.Verbose)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	screen, err := tcellui.Open()
	if err != nil {
		return err
	}
	defer screen.Close()

	session, err := app.New(&app.Config{
		Settings: cfg,
		Terminal: screen,
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	defer session.Close()

	return session.Run(ctx)
}
