package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryMessageTemplate(t *testing.T) {
	s := Summary{WorkoutType: "Running", Duration: 1, Distance: 9.75, Speed: 9.75, Calories: 699.75}

	assert.Equal(t,
		"Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 699.750.",
		s.Message(),
	)
	assert.Equal(t, s.Message(), s.Message())
}

func TestSummaryMessageAlwaysThreeDecimals(t *testing.T) {
	s := Summary{WorkoutType: "Swimming", Duration: 0.5, Distance: 12345.6789, Speed: 0, Calories: 1234567.1}

	assert.Equal(t,
		"Тип тренировки: Swimming; Длительность: 0.500 ч.; Дистанция: 12345.679 км; Ср. скорость: 0.000 км/ч; Потрачено ккал: 1234567.100.",
		s.Message(),
	)
}

func TestWorkoutMessages(t *testing.T) {
	d := NewDispatcher()
	cases := []struct {
		pkg  Package
		want string
	}{
		{
			pkg:  Package{Code: "SWM", Data: []float64{720, 1, 80, 25, 40}},
			want: "Тип тренировки: Swimming; Длительность: 1.000 ч.; Дистанция: 0.994 км; Ср. скорость: 1.000 км/ч; Потрачено ккал: 336.000.",
		},
		{
			pkg:  Package{Code: "RUN", Data: []float64{15000, 1, 75}},
			want: "Тип тренировки: Running; Длительность: 1.000 ч.; Дистанция: 9.750 км; Ср. скорость: 9.750 км/ч; Потрачено ккал: 699.750.",
		},
		{
			pkg:  Package{Code: "WLK", Data: []float64{9000, 1, 75, 180}},
			want: "Тип тренировки: SportsWalking; Длительность: 1.000 ч.; Дистанция: 5.850 км; Ср. скорость: 5.850 км/ч; Потрачено ккал: 157.500.",
		},
	}
	for _, tc := range cases {
		t.Run(tc.pkg.Code, func(t *testing.T) {
			w, err := d.ReadPackage(tc.pkg)
			require.NoError(t, err)
			s, err := w.Summary()
			require.NoError(t, err)
			assert.Equal(t, tc.want, s.Message())
		})
	}
}

func TestSummaryMessageNonFinite(t *testing.T) {
	w := NewRunning(1000, 0, 70)
	s, err := w.Summary()
	require.NoError(t, err)

	assert.Equal(t,
		"Тип тренировки: Running; Длительность: 0.000 ч.; Дистанция: 0.650 км; Ср. скорость: inf км/ч; Потрачено ккал: nan.",
		s.Message(),
	)
}

func TestFinite(t *testing.T) {
	v := Finite(1.5)
	require.NotNil(t, v)
	assert.Equal(t, 1.5, *v)

	assert.Nil(t, Finite(math.Inf(1)))
	assert.Nil(t, Finite(math.Inf(-1)))
	assert.Nil(t, Finite(math.NaN()))
}
