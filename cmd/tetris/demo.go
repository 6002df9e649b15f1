package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nuno-faria/tetris/internal/tetris"
)

var flagDemoConfig string

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Watch a headless gravity-only run",
	Long: `Run the simulation without a player: pieces spawn and fall under
gravity until the stack reaches the top. Each frame is printed to stdout
as a plain text block.

Examples:
  tetris demo
  tetris demo --seed 42 --fps 60`,
	Args: cobra.NoArgs,
	Run:  runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&flagDemoConfig, "config", "", "Path to custom game config YAML")
}

func runDemo(cmd *cobra.Command, args []string) {
	engine, err := loadEngineConfig(flagDemoConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	// A register nothing publishes to: the run degrades to pure gravity.
	score, err := tetris.Run(engine, tetris.NewRegister(), os.Stdout, seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running demo: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Final score: %d (seed %d)\n", score, seed)
}
