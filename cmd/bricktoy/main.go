// bricktoy is a breakout-style physics toy: a player-steered ball and a
// bouncing brick inside four walls.
//
// Usage:
//
//	bricktoy play            - Play in the terminal
//	bricktoy window          - Play in a desktop window
//	bricktoy serve           - Start SSH server for remote play
//	bricktoy simulate        - Run headless and print the final frame
//	bricktoy stats           - Show recorded runs
//	bricktoy config          - Print the effective configuration
//	bricktoy list            - List registered games
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: config tick_rate, 60)
//	--db <path>           - Set database path (default: ~/.bricktoy/runs.db)
//	--log-level <level>   - debug, info, warn, error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/bricktoy/internal/games/bricktoy"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagLogLevel string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "bricktoy",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bricktoy",
	Short: "Brick Toy - steer a ball around a bouncing brick",
	Long: `Brick Toy is a small 2D physics toy. A brick bounces between four
walls at constant speed while you steer a ball with WASD or the arrow keys.

Available commands:
  play      - Play in the terminal
  window    - Play in a desktop window
  serve     - Start SSH server for remote play
  simulate  - Run headless with scripted input
  stats     - View recorded runs
  config    - Print the effective configuration
  list      - Show registered games

Examples:
  bricktoy play
  bricktoy play --difficulty hard --sound
  bricktoy window --scale 1.5
  bricktoy serve --ssh :2222
  bricktoy simulate --ticks 600 --hold right,up`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (ticks per second, 0 = config tick_rate)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bricktoy/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(configCmd)
}
