package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termtris/internal/config"
	"github.com/vovakirdan/termtris/internal/core"
	"github.com/vovakirdan/termtris/internal/platform/tui"
	"github.com/vovakirdan/termtris/internal/storage"
)

var (
	flagNoColor bool
	flagNoHelp  bool
	flagNoNext  bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game in the current terminal.

Controls:
  Left/A       - Move left
  Right/D      - Move right
  Up/S         - Rotate
  Space        - Drop
  H            - Toggle help
  N            - Toggle next piece
  C            - Toggle color
  Q/Ctrl+C     - Quit

The terminal needs at least 77 columns and 24 rows.

Examples:
  termtris play
  termtris play --seed 42
  termtris play --no-help --no-next
  termtris play --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	addPlayFlags(playCmd)
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Start with colors off")
	cmd.Flags().BoolVar(&flagNoHelp, "no-help", false, "Start with the help panel hidden")
	cmd.Flags().BoolVar(&flagNoNext, "no-next", false, "Start with the next piece hidden")
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := play(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play() error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	applyDisplayFlags(&cfg)

	logger, closeLog := openLogger()
	defer closeLog()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rc := core.DefaultConfig()
	rc.Seed = flagSeed

	stats, err := tui.Run(ctx, tui.Options{
		Config:  cfg,
		Runtime: rc,
		Store:   store,
		Logger:  logger,
	})
	if err != nil {
		if errors.Is(err, tui.ErrNotTerminal) {
			return fmt.Errorf("%w: run termtris from an interactive terminal", err)
		}
		return err
	}

	best := -1
	if store != nil {
		if hs, err := store.HighScore(); err == nil {
			best = hs
		}
	}

	fmt.Print("\r\n")
	fmt.Println(tui.RenderSummary(stats, best))
	return nil
}

// applyDisplayFlags turns off the display toggles named on the command line.
func applyDisplayFlags(cfg *config.TetrisConfig) {
	if flagNoColor {
		cfg.Display.Color = false
	}
	if flagNoHelp {
		cfg.Display.ShowHelp = false
	}
	if flagNoNext {
		cfg.Display.ShowNext = false
	}
}
