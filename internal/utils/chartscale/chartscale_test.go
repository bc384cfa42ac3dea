package chartscale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertScaleShape(t *testing.T, s Scale) {
	t.Helper()
	require.NotEmpty(t, s.Ticks)
	assert.LessOrEqual(t, s.Min, s.Max)
	assert.Equal(t, s.Min, s.Ticks[0])
	assert.Equal(t, s.Max, s.Ticks[len(s.Ticks)-1])
	for i := 1; i < len(s.Ticks); i++ {
		assert.Greater(t, s.Ticks[i], s.Ticks[i-1])
	}
}

func TestNetWorthEmpty(t *testing.T) {
	s := NetWorth(nil)
	assert.Equal(t, float64(2_000_000), s.Min)
	assert.Equal(t, float64(2_500_000), s.Max)
	assert.Equal(t, []float64{2_000_000, 2_500_000}, s.Ticks)
	assertScaleShape(t, s)
}

func TestNetWorthRoundsUpWithHeadroom(t *testing.T) {
	// 3,000,000 * 1.05 = 3,150,000 -> ceil to 3,500,000.
	s := NetWorth([]float64{2_100_000, 3_000_000})
	assert.Equal(t, float64(2_000_000), s.Min)
	assert.Equal(t, float64(3_500_000), s.Max)
	assertScaleShape(t, s)
}

func TestNetWorthBelowFloor(t *testing.T) {
	s := NetWorth([]float64{100_000, 500_000})
	assert.Equal(t, float64(2_000_000), s.Min)
	assert.Equal(t, float64(2_500_000), s.Max)
	assertScaleShape(t, s)
}

func TestNetWorthTicksStepHalfMillion(t *testing.T) {
	s := NetWorth([]float64{3_000_000})
	for i := 1; i < len(s.Ticks); i++ {
		assert.Equal(t, float64(500_000), s.Ticks[i]-s.Ticks[i-1])
	}
}

func TestStackedEmpty(t *testing.T) {
	s := Stacked(nil, nil)
	assert.Equal(t, float64(-500_000), s.Min)
	assert.Equal(t, float64(500_000), s.Max)
	assert.Equal(t, []float64{-500_000, 0, 500_000}, s.Ticks)
	assertScaleShape(t, s)
}

func TestStackedIncludesZero(t *testing.T) {
	tests := []struct {
		name      string
		positives []float64
		negatives []float64
	}{
		{"all positive", []float64{800_000, 1_200_000}, nil},
		{"all negative", nil, []float64{-300_000, -700_000}},
		{"mixed", []float64{900_000}, []float64{-400_000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Stacked(tt.positives, tt.negatives)
			assert.LessOrEqual(t, s.Min, 0.0)
			assert.GreaterOrEqual(t, s.Max, 0.0)
			assertScaleShape(t, s)
		})
	}
}

func TestStackedRoundsOutward(t *testing.T) {
	s := Stacked([]float64{1_100_000}, []float64{-600_000})
	// 1,100,000 + 5% = 1,155,000 -> 1,500,000; -600,000 - 5% = -630,000 -> -1,000,000.
	assert.Equal(t, float64(-1_000_000), s.Min)
	assert.Equal(t, float64(1_500_000), s.Max)
	assertScaleShape(t, s)
}

func TestStackedDegenerateSingleValue(t *testing.T) {
	s := Stacked([]float64{1_000_000, 1_000_000}, nil)
	assert.Less(t, s.Min, s.Max)
	assert.LessOrEqual(t, s.Min, 0.0)
	assertScaleShape(t, s)
}

func TestStackedAllZero(t *testing.T) {
	s := Stacked([]float64{0}, []float64{0})
	assert.Less(t, s.Min, s.Max)
	assert.LessOrEqual(t, s.Min, 0.0)
	assert.GreaterOrEqual(t, s.Max, 0.0)
	assertScaleShape(t, s)
}
