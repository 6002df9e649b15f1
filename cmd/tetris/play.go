package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/nuno-faria/tetris/internal/config"
	"github.com/nuno-faria/tetris/internal/platform/tui"
	"github.com/nuno-faria/tetris/internal/storage"
	"github.com/nuno-faria/tetris/internal/tetris"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play interactively",
	Long: `Start an interactive game in the current terminal.

Controls:
  W/Up       - Rotate
  A/Left     - Move left
  D/Right    - Move right
  S/Down     - Soft drop
  Space      - Hard drop
  P          - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Examples:
  tetris play
  tetris play --seed 42
  tetris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	engine, err := loadEngineConfig(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: play requires an interactive terminal")
		os.Exit(1)
	}

	// The playfield has a fixed footprint; refuse terminals it cannot fit.
	needW, needH := tetris.ScreenSize(engine)
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		if w < needW || h < needH {
			fmt.Fprintf(os.Stderr, "Error: terminal is %dx%d, need at least %dx%d\n", w, h, needW, needH)
			os.Exit(1)
		}
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(engine, flagSeed, store)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// loadEngineConfig loads the YAML config and applies the global flags on top.
func loadEngineConfig(path string) (tetris.Config, error) {
	cfg, err := config.LoadTetris(path)
	if err != nil {
		return tetris.Config{}, err
	}

	engine := cfg.Engine()
	if flagFPS > 0 {
		engine.FPS = flagFPS
	}
	return engine, nil
}
