package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant, or the full game when none is named.

Controls:
  Left/Right, A/D, H/L  - Move
  Down, S, J            - Soft drop
  Space                 - Hard drop
  Up, W, X, K           - Rotate clockwise
  Z                     - Rotate counter-clockwise
  P/Esc                 - Pause
  R                     - Restart
  Q/Ctrl+C              - Quit

Difficulty options:
  fixed  - Constant drop speed from the config (default)
  easy   - Slow start, longer bomb fuses, speeds up with score
  normal - Starts at 30% speed-up, speeds up with score
  hard   - Starts at 70% speed-up, short bomb fuses

Examples:
  blockfall play
  blockfall play blockfall_bombs --difficulty easy
  blockfall play --config ./my-blockfall.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := string(blockfall.VariantFull)
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'blockfall list' to see available variants.")
		os.Exit(1)
	}

	state, err := playGame(gameID, runtimeConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Final score: %d\n", state.Score)
}

// runtimeConfig sizes the screen to the terminal, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func playGame(gameID string, cfg core.RuntimeConfig) (core.GameState, error) {
	game, err := registry.Create(gameID)
	if err != nil {
		return core.GameState{}, fmt.Errorf("creating game: %w", err)
	}
	logger.Info("starting game", "variant", gameID, "fps", cfg.TickRate, "seed", cfg.Seed)
	return tui.Run(game, cfg, logger)
}
