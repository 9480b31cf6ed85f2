// snake is a classic snake game for the terminal.
//
// Usage:
//
//	snake                    - Play in this terminal
//	snake serve              - Start SSH server for remote play
//	snake config             - Print the effective configuration as YAML
//
// Global flags:
//
//	--config <path>   - Custom config YAML (default search: ~/.termsnake/configs, ./configs)
//	--seed <value>    - Set RNG seed for reproducible gameplay
//	--log-file <path> - Write game logs to a file
//	--debug           - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig  string
	flagSeed    int64
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic game in your terminal",
	Long: `Steer the snake around the walled board, eat food to grow and
score, and avoid running into the wall.

Controls:
  Arrows / WASD / hjkl - Turn
  Q / Esc / Ctrl+C     - Quit

Examples:
  snake
  snake --seed 42
  snake --config ./my-snake.yaml
  snake serve --ssh :2222
  snake config > ~/.termsnake/configs/snake.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: discard)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
