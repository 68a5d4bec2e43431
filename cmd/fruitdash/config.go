package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit-dash/internal/config"
	"github.com/vovakirdan/fruit-dash/internal/games/fruitdash"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Resolve the configuration the way 'play' does and print it as YAML.

Search order:
  1. --config <path>
  2. ~/.fruitdash/configs/fruitdash.yaml
  3. ./configs/fruitdash.yaml
  4. built-in defaults

The --difficulty preset is applied on top. Redirect the output to a file
to start a custom configuration.

Examples:
  fruitdash config
  fruitdash config --difficulty easy > configs/fruitdash.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(_ *cobra.Command, _ []string) {
	applyGlobalFlags()

	cfg, err := fruitdash.LoadConfig()
	if err != nil {
		fail("%v", err)
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		fail("%v", err)
	}
	os.Stdout.Write(data)
}
