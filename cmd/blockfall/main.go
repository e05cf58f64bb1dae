// blockfall is a falling-block puzzle for the terminal with bomb, laser and
// extruder blocks.
//
// Usage:
//
//	blockfall list              - List available variants
//	blockfall play [variant]    - Play a variant (default: blockfall)
//	blockfall menu              - Pick a variant interactively
//	blockfall config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Path to custom config YAML
//	--difficulty <name>  - Difficulty preset: fixed, easy, normal, hard
//	--log-file <path>    - Write logs to a file (default: no logging)
//	--log-level <level>  - debug, info, warn, error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/games/blockfall"
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
	err := rootCmd.Execute()
	if cerr := closeLog(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - falling blocks with bombs, lasers and extruders",
	Long: `Blockfall is a falling-block puzzle played in the terminal.

Besides the seven usual pieces, some pieces carry a special block:
  bomb      - explodes a few pieces after landing, clearing a 3x3 area
  laser     - wipes its whole row the moment it lands
  extruder  - fills a 3x3 area with random blocks

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  config   - Print the effective configuration

Examples:
  blockfall play
  blockfall play blockfall_classic
  blockfall play --difficulty hard --seed 42
  blockfall menu --log-file ./blockfall.log --log-level debug`,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: fixed, easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(configCmd)
}

// logger is shared by the game and the TUI. It discards output unless
// --log-file is set, as the terminal belongs to the game.
var logger = log.New(io.Discard)

// logFile is the handle behind --log-file, closed once the command returns.
var logFile *os.File

func closeLog() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	return err
}

// setup builds the logger and hands the global flags to the game package
// before any subcommand runs.
func setup(_ *cobra.Command, _ []string) error {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	if err := closeLog(); err != nil {
		return err
	}
	var w io.Writer = io.Discard
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		w = f
	}

	logger = log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockfall",
		Level:           level,
	})
	blockfall.SetLogger(logger)
	blockfall.SetConfigPath(flagConfig)
	blockfall.SetDifficultyPreset(flagDifficulty)
	return nil
}
