package cli

import (
	"github.com/spf13/cobra"

	"example.com/workouts/internal/config"
	"example.com/workouts/internal/domain"
	"example.com/workouts/internal/driver"
	"example.com/workouts/internal/observability"
)

func newRunCommand(cfg *config.Config) *cobra.Command {
	var (
		packagesFile    string
		continueOnError bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Print a summary line for every sensor package",
		Long: `Print one summary line per package, in input order.

Without --packages the built-in feed is used:
  SWM [720 1 80 25 40], RUN [15000 1 75], WLK [9000 1 75 180]

A packages file is a YAML or JSON list of {type, data} entries.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			formula, err := walkingFormula(cfg)
			if err != nil {
				return err
			}

			packages := driver.DefaultPackages()
			if packagesFile != "" {
				packages, err = driver.LoadPackagesFile(packagesFile)
				if err != nil {
					return err
				}
			}

			d := driver.New(
				domain.NewDispatcher(domain.WithWalkingFormula(formula)),
				cmd.OutOrStdout(),
				driver.WithContinueOnError(continueOnError),
				driver.WithLogger(newLogger(cmd, cfg)),
				driver.WithRecorder(observability.Recorder{}),
			)
			return d.Run(cmd.Context(), packages)
		},
	}

	cmd.Flags().StringVarP(&packagesFile, "packages", "p", "", "YAML or JSON file with {type, data} packages")
	cmd.Flags().BoolVar(&continueOnError, "continue-on-error", false, "skip failing packages instead of stopping")
	return cmd
}
