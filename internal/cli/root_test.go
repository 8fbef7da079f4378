package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"example.com/workouts/internal/config"
	"example.com/workouts/internal/domain"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCommand(config.Config{WalkingFormula: "floor"})
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRunPrintsDefaultFeed(t *testing.T) {
	stdout, _, err := execute(t, "run")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	require.Len(t, lines, 3)
	require.True(t, strings.HasPrefix(lines[0], "Тип тренировки: Swimming;"))
	require.True(t, strings.HasPrefix(lines[1], "Тип тренировки: Running;"))
	require.Equal(t, "Тип тренировки: SportsWalking; Длительность: 1.000 ч.; Дистанция: 5.850 км; Ср. скорость: 5.850 км/ч; Потрачено ккал: 157.500.", lines[2])
}

func TestRunReadsPackagesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- type: RUN\n  data: [15000, 1, 75]\n"), 0o600))

	stdout, _, err := execute(t, "run", "--packages", path)
	require.NoError(t, err)
	require.Equal(t, "Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 699.750.\n", stdout)
}

func TestRunStopsOnBadPackage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "feed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("- type: ROW\n  data: [1, 1, 1]\n- type: RUN\n  data: [15000, 1, 75]\n"), 0o600))

	stdout, _, err := execute(t, "run", "-p", path)
	require.ErrorIs(t, err, domain.ErrUnknownWorkoutType)
	require.Empty(t, stdout)

	stdout, stderr, err := execute(t, "run", "-p", path, "--continue-on-error")
	require.ErrorIs(t, err, domain.ErrUnknownWorkoutType)
	require.Contains(t, stdout, "Running")
	require.Contains(t, stderr, "skipping package")
}

func TestRunRejectsUnknownFormula(t *testing.T) {
	_, _, err := execute(t, "run", "--walking-formula", "ceil")
	require.ErrorContains(t, err, "invalid walking formula")
}

func TestRunRecordsSummaryMetrics(t *testing.T) {
	before := computedTotal(t, "SportsWalking")

	_, _, err := execute(t, "run")
	require.NoError(t, err)

	require.Equal(t, before+1, computedTotal(t, "SportsWalking"))
}

func computedTotal(t *testing.T, workoutType string) float64 {
	t.Helper()

	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != "workouts_summaries_computed_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, label := range m.GetLabel() {
				if label.GetName() == "workout_type" && label.GetValue() == workoutType {
					return m.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}
