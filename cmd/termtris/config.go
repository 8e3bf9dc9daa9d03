package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/termtris/internal/config"
)

var (
	flagDefaults bool
	flagLevels   int
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a game would use, as YAML.

The output can be saved and edited, then passed back with --config or
placed in ~/.termtris/configs/tetris.yaml.

Examples:
  termtris config
  termtris config --defaults > ~/.termtris/configs/tetris.yaml
  termtris config --levels 15`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in default file instead")
	configCmd.Flags().IntVar(&flagLevels, "levels", 0, "Also list the fall interval for the first N levels")
}

func runConfig(_ *cobra.Command, _ []string) {
	if err := printConfig(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printConfig(w io.Writer) error {
	if flagDefaults {
		_, err := w.Write(config.GetDefaultYAML())
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return err
	}

	if flagLevels > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "# level  fall interval")
		for level := 1; level <= flagLevels; level++ {
			fmt.Fprintf(w, "# %5d  %v\n", level, cfg.Timing.DelayAtLevel(level))
		}
	}
	return nil
}
