// termtris is a falling-block puzzle game for ANSI terminals.
//
// Usage:
//
//	termtris                 - Play a game
//	termtris play            - Play a game
//	termtris scores          - Show high scores
//	termtris config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Game config YAML
//	--seed <value>      - RNG seed for a reproducible piece sequence
//	--db <path>         - Scores database (default: ~/.termtris/scores.db)
//	--log-file <path>   - Log file (default: ~/.termtris/termtris.log)
//	--log-level <lvl>   - debug, info, warn or error
//
// Every global flag can also be set with a TERMTRIS_* environment variable
// or a .env file in the working directory.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termtris/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termtris",
	Short: "termtris - falling blocks in your terminal",
	Long: `termtris is a falling-block puzzle game that runs in any ANSI terminal.

Running termtris without a command starts a game.

Available commands:
  play     - Play a game
  scores   - View high scores
  config   - Print the effective configuration

Examples:
  termtris
  termtris --seed 42 --no-color
  termtris scores -i
  termtris config > my-tetris.yaml`,
	PersistentPreRun: applyEnv,
	Run:              runPlay,
}

func init() {
	defaults := config.DefaultEnv()

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", defaults.DBPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", defaults.LogFile, "Path to log file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", defaults.LogLevel, "Log level: debug, info, warn, error")

	addPlayFlags(rootCmd)

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// applyEnv fills every global flag the user did not pass from the
// environment. Flags always win over TERMTRIS_* variables.
func applyEnv(cmd *cobra.Command, _ []string) {
	env := config.LoadEnv()
	flags := cmd.Flags()

	if !flags.Changed("config") {
		flagConfig = env.ConfigPath
	}
	if !flags.Changed("seed") {
		flagSeed = env.Seed
	}
	if !flags.Changed("db") {
		flagDBPath = env.DBPath
	}
	if !flags.Changed("log-file") {
		flagLogFile = env.LogFile
	}
	if !flags.Changed("log-level") {
		flagLogLevel = env.LogLevel
	}
}
