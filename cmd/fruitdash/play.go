package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fruit-dash/internal/core"
	"github.com/vovakirdan/fruit-dash/internal/games/fruitdash"
	"github.com/vovakirdan/fruit-dash/internal/platform/audio"
	"github.com/vovakirdan/fruit-dash/internal/platform/tui"
	"github.com/vovakirdan/fruit-dash/internal/registry"
)

var (
	flagMode   string
	flagNoWrap bool
	flagSound  bool
	flagVolume float64
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play Fruit Dash",
	Long: `Start playing. Without a game argument a launcher lets you pick the
variant and the difficulty.

Controls:
  Arrows/WASD  - Move
  Enter/Space  - Start a run
  Tab          - Toggle wrap (menu)
  M            - Toggle speed/growth mode (menu)
  Esc          - Back to the menu
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower panda, longer combo window, more power-ups
  normal - The configured values
  hard   - Faster panda, shorter slow-motion

Examples:
  fruitdash play
  fruitdash play fruitdash --difficulty hard
  fruitdash play --mode growth --no-wrap
  fruitdash play --sound --log-file fruitdash.log --log-level debug`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Starting mode: speed or growth (overrides the game argument)")
	playCmd.Flags().BoolVar(&flagNoWrap, "no-wrap", false, "Start with wall wrapping disabled")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound effects")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.6, "Sound volume (1 = unchanged)")
}

func runPlay(cmd *cobra.Command, args []string) {
	// The terminal belongs to Bubble Tea, so logs only go to --log-file.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	applyGlobalFlags()
	if flagNoWrap {
		fruitdash.SetWrap(false)
	}
	fruitdash.SetLogger(logger)

	// Get terminal size early for the launcher
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	var gameID string
	if len(args) == 1 {
		gameID = args[0]
	}
	if flagMode != "" {
		mode, err := fruitdash.ParseMode(flagMode)
		if err != nil {
			closeLog()
			fail("%v", err)
		}
		gameID = gameIDForMode(mode)
	}

	if gameID == "" {
		result, err := tui.RunMenu(cfg, flagDifficulty)
		if err != nil {
			closeLog()
			fail("%v", err)
		}
		if result.Quit {
			return
		}
		gameID = result.GameID
		cfg = result.Config
		fruitdash.SetDifficultyPreset(string(result.Difficulty))
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		closeLog()
		fail("unknown game %q\nRun 'fruitdash list' to see available games.", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		closeLog()
		fail("creating game: %v", err)
	}

	var player audio.Player = audio.Nop{}
	if flagSound {
		sm := audio.NewSoundManager(flagVolume)
		if err := sm.Initialize(); err != nil {
			// Continue without sound - game still works
			logger.Warn("sound disabled", "err", err)
		} else {
			player = sm
		}
	}

	logger.Info("starting", "game", gameID, "seed", cfg.Seed, "fps", cfg.TickRate)
	runErr := tui.Run(game, player, logger, cfg)

	// Close audio before potential exit
	player.Close()

	if runErr != nil {
		closeLog()
		fail("running game: %v", runErr)
	}
}

func gameIDForMode(m fruitdash.Mode) string {
	if m == fruitdash.ModeGrowth {
		return "fruitdash_growth"
	}
	return "fruitdash"
}
