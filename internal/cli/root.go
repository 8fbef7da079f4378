// Package cli builds the tracker command tree.
package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"example.com/workouts/internal/config"
	"example.com/workouts/internal/domain"
)

// NewRootCommand creates the root command. Configuration comes from the
// environment and can be overridden per command with flags.
func NewRootCommand(cfg config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tracker",
		Short: "Fitness tracker summaries for running, race-walking and swimming",
		Long: `tracker turns raw sensor packages into workout summaries: distance,
mean speed and calories burned.

Run 'tracker run' to print summaries for a package feed.
Run 'tracker serve' to expose the summary API over HTTP.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&cfg.WalkingFormula, "walking-formula", cfg.WalkingFormula, "race-walking calorie formula: floor or real")

	cmd.AddCommand(newRunCommand(&cfg), newServeCommand(&cfg))
	return cmd
}

func walkingFormula(cfg *config.Config) (domain.WalkingFormula, error) {
	formula, ok := domain.ParseWalkingFormula(cfg.WalkingFormula)
	if !ok {
		return "", fmt.Errorf("invalid walking formula %q: want floor or real", cfg.WalkingFormula)
	}
	return formula, nil
}

func newLogger(cmd *cobra.Command, cfg *config.Config) *slog.Logger {
	return config.NewLogger(cmd.ErrOrStderr(), *cfg)
}
