// Package main is the entry point for the paladin terminal game
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:          "paladin",
	Short:        "Terminal role-playing game",
	Long:         `Paladin is a terminal role-playing game. Create a character by choosing a class and rolling attributes, then save it for later.`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "TOML config file")
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newShowCmd())
}
