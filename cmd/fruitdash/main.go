// fruitdash is Red Panda Fruit Dash for the terminal: a panda runs across a
// grid eating fruit, in speed mode or growth mode.
//
// Usage:
//
//	fruitdash play [game]    - Play (no argument opens the launcher)
//	fruitdash list           - List game variants
//	fruitdash sim            - Run headless autopilot batches for balancing
//	fruitdash config         - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>            - Set tick rate (default: 60)
//	--seed <value>          - Set RNG seed for reproducible gameplay
//	--config <path>         - Custom fruitdash.yaml
//	--difficulty <preset>   - easy, normal or hard
//	--log-file <path>       - Write logs to a file
//	--log-level <level>     - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruit-dash/internal/games/fruitdash"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fruitdash",
	Short: "Red Panda Fruit Dash - eat fruit, dodge walls, in your terminal",
	Long: `Red Panda Fruit Dash is a grid arcade game for the terminal.

Guide the red panda to the fruit. In speed mode every fruit makes you
faster; in growth mode you drag a trail that you must not bite.
Power-ups slow time or pull nearby fruit toward you, and eating fruit
in quick succession triggers a turbo.

Available commands:
  play     - Play the game
  list     - Show game variants
  sim      - Run headless autopilot batches
  config   - Print the effective configuration

Examples:
  fruitdash play
  fruitdash play fruitdash_growth --no-wrap
  fruitdash sim --runs 500 --csv results.csv
  fruitdash config --difficulty hard`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom fruitdash.yaml")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// applyGlobalFlags hands --config and --difficulty to the game package.
func applyGlobalFlags() {
	fruitdash.SetConfigPath(flagConfig)
	fruitdash.SetDifficultyPreset(flagDifficulty)
}

// newLogger builds the shared logger. Output goes to --log-file when set and
// to fallback otherwise. The returned closer releases the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out := fallback
	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "fruitdash",
		Level:           level,
	})
	return logger, closer, nil
}

// fail prints err the way every command reports errors and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
