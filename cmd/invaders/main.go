// invaders is Space Invaders for the terminal.
//
// Usage:
//
//	invaders                 - Play (same as 'invaders play')
//	invaders play            - Play with a chosen difficulty and theme
//	invaders scores          - Show the high score and leaderboard
//	invaders profiles        - List difficulty and theme profiles
//	invaders serve           - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--data-dir <path>  - Where scores and screenshots live (default: ~/.invaders)
//	--store <backend>  - Score storage: json or sqlite (default: json)
//	--config <path>    - World tuning YAML
//	--log-file <path>  - Write logs here instead of discarding them
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/scoreboard"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDataDir string
	flagStore   string
	flagConfig  string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Space Invaders in your terminal",
	Long: `Shoot down the alien swarm before it reaches the danger line,
dodge falling asteroids and chase the high score.

Available commands:
  play      - Start the game (default)
  scores    - View the high score and leaderboard
  profiles  - List difficulty and theme profiles
  serve     - Start SSH server for remote play

Examples:
  invaders
  invaders play --difficulty hard --theme neon
  invaders scores --store sqlite
  invaders serve --ssh :2222`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir",
		config.EnvOr("INVADERS_DATA_DIR", "~/.invaders"), "Directory for scores and screenshots")
	rootCmd.PersistentFlags().StringVar(&flagStore, "store", "json",
		"Score storage backend: "+strings.Join(scoreboard.Backends(), ", "))
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom world tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// The root plays by default, so it takes play's flags too
	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(profilesCmd)
	rootCmd.AddCommand(serveCmd)
}
