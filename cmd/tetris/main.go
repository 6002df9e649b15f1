// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris play              - Play interactively
//	tetris demo              - Watch a headless gravity-only run
//	tetris scores            - Show recorded high scores
//	tetris serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set frame rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible piece sequences
//	--db <path>     - Set database path (default: ~/.tetris/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nuno-faria/tetris/internal/storage"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - falling blocks in your terminal",
	Long: `Tetris is a terminal rendition of the classic falling-block puzzle.

Available commands:
  play     - Play interactively
  demo     - Watch a headless gravity-only run
  scores   - View high scores
  serve    - Start SSH server for remote play

Examples:
  tetris play
  tetris play --seed 42
  tetris scores --interactive
  tetris serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frame rate (0 = use config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
