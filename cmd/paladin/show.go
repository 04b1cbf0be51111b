package main

import (
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/paladin/internal/app"
	"github.com/KirkDiggler/paladin/internal/errors"
	"github.com/KirkDiggler/paladin/internal/repositories/entity"
)

func newShowCmd() *cobra.Command {
	v := &flagValues{}
	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Print a saved character",
		Long:  `Load a saved character from the configured store and print it as YAML.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, v, args[0])
		},
	}
	bindStoreFlags(cmd, v)
	return cmd
}

func runShow(cmd *cobra.Command, v *flagValues, name string) error {
	cfg, err := loadConfig(cmd, v)
	if err != nil {
		return err
	}

	store, closeStore, err := app.NewStore(&cfg.Store)
	if err != nil {
		return err
	}
	defer closeStore()

	out, err := store.Load(cmd.Context(), entity.LoadInput{Name: name})
	if err != nil {
		return err
	}

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(out.Record); err != nil {
		return errors.Wrap(err, "failed to encode record")
	}
	return enc.Close()
}
