// Command coinpath runs the Maximum Subarray coin-path game in the
// terminal: guess the best path, then watch Kadane's algorithm find it
// one step at a time.
package main

import (
	"fmt"
	"math/rand"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/coinpath/cmd/coinpath/ui"
	"github.com/katalvlaran/coinpath/sequence"
)

var (
	// Global flags
	tiles    int
	minValue int
	maxValue int
	seed     int64
	verbose  bool

	// Logger
	logger *zap.Logger
)

// rootCmd launches the interactive game.
var rootCmd = &cobra.Command{
	Use:   "coinpath",
	Short: "coinpath - the Maximum Subarray coin game",
	Long: `coinpath is a terminal game that teaches the Maximum Subarray problem.

Every tile either gains or loses coins. Pick the continuous stretch of
tiles with the biggest total, check your answer against the optimum, then
switch to the Learn tab and step through Kadane's algorithm decision by
decision.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := sequence.Options{
			Length:   tiles,
			MinValue: minValue,
			MaxValue: maxValue,
		}
		if seed != 0 {
			opts.Rand = rand.New(rand.NewSource(seed))
		}

		seq, err := sequence.Generate(opts)
		if err != nil {
			return fmt.Errorf("generate board: %w", err)
		}
		logger.Debug("board generated",
			zap.Int("tiles", tiles),
			zap.Int("min", minValue),
			zap.Int("max", maxValue),
			zap.Int64("seed", seed),
		)

		model, err := ui.New(seq, opts)
		if err != nil {
			return fmt.Errorf("build ui: %w", err)
		}

		if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
			return fmt.Errorf("run ui: %w", err)
		}

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&tiles, "tiles", sequence.DefaultLength, "number of tiles on the board")
	rootCmd.PersistentFlags().IntVar(&minValue, "min", sequence.DefaultMinValue, "smallest tile value")
	rootCmd.PersistentFlags().IntVar(&maxValue, "max", sequence.DefaultMaxValue, "largest tile value")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
