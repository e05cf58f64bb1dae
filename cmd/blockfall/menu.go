package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from a menu",
	Long: `Start Blockfall in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
After quitting a game, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Q/Esc        - Quit

Examples:
  blockfall menu
  blockfall menu --fps 30 --difficulty normal`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = menuResult.Config

		if menuResult.Quit || menuResult.GameID == "" {
			return
		}

		if _, err := playGame(menuResult.GameID, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			os.Exit(1)
		}
	}
}
