package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hyperdrop/internal/config"
)

var flagDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration HyperDrop would play with, as YAML.

Search order: --config, ~/.hyperdrop/configs/hyperdrop.yaml,
./configs/hyperdrop.yaml, then the built-in default.

Examples:
  hyperdrop config
  hyperdrop config --default > ~/.hyperdrop/configs/hyperdrop.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefault, "default", false, "Print the built-in default config")
}

func runConfig(cmd *cobra.Command, args []string) {
	if flagDefault {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := config.LoadHyperdrop(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
