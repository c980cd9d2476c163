package lightcurve

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	lc, err := New([]float64{0, 1, 2}, []float64{1.0, 0.9, 1.1})
	require.NoError(t, err)

	assert.Equal(t, 3, lc.Len())
	for _, w := range lc.Ivar {
		assert.Equal(t, 1.0, w)
	}
}

func TestNewWeightedValidation(t *testing.T) {
	_, err := NewWeighted(nil, nil, nil)
	assert.Error(t, err)

	_, err = NewWeighted([]float64{0, 1}, []float64{1.0}, []float64{1.0, 1.0})
	assert.Error(t, err)

	_, err = NewWeighted([]float64{0, 1}, []float64{1.0, 1.0}, []float64{1.0, -0.5})
	assert.Error(t, err)

	_, err = NewWeighted([]float64{0, 1}, []float64{1.0, 1.0}, []float64{1.0, math.NaN()})
	assert.Error(t, err)

	// Zero weights are allowed; they exclude points without removing them.
	lc, err := NewWeighted([]float64{0, 1}, []float64{1.0, 5.0}, []float64{1.0, 0.0})
	require.NoError(t, err)
	assert.Equal(t, 1.0, lc.WeightedMean())
}

func TestFromSigma(t *testing.T) {
	lc, err := FromSigma([]float64{0, 1}, []float64{1.0, 1.0}, []float64{0.5, 2.0})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, lc.Ivar[0], 1e-12)
	assert.InDelta(t, 0.25, lc.Ivar[1], 1e-12)

	_, err = FromSigma([]float64{0, 1}, []float64{1.0, 1.0}, []float64{0.5, 0.0})
	assert.Error(t, err)
}

func TestBaseline(t *testing.T) {
	// Timestamps need not be sorted.
	lc, err := New([]float64{5.0, 1.0, 3.0, 9.0}, []float64{1, 1, 1, 1})
	require.NoError(t, err)
	assert.InDelta(t, 8.0, lc.Baseline(), 1e-12)
}

func TestWeightedMean(t *testing.T) {
	lc, err := NewWeighted(
		[]float64{0, 1, 2},
		[]float64{1.0, 2.0, 3.0},
		[]float64{1.0, 2.0, 1.0},
	)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, lc.WeightedMean(), 1e-12)
	assert.InDelta(t, 4.0, lc.TotalWeight(), 1e-12)

	zero, err := NewWeighted([]float64{0}, []float64{1.0}, []float64{0.0})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(zero.WeightedMean()))
}

func TestFold(t *testing.T) {
	lc, err := New([]float64{0.25, 1.25, 2.75}, []float64{1, 1, 1})
	require.NoError(t, err)

	phases := lc.Fold(1.0)
	require.Len(t, phases, 3)
	assert.InDelta(t, 0.25, phases[0], 1e-12)
	assert.InDelta(t, 0.25, phases[1], 1e-12)
	assert.InDelta(t, 0.75, phases[2], 1e-12)
	for _, p := range phases {
		assert.GreaterOrEqual(t, p, 0.0)
		assert.Less(t, p, 1.0)
	}
}

func TestCopy(t *testing.T) {
	lc, err := New([]float64{0, 1}, []float64{1.0, 0.9})
	require.NoError(t, err)
	lc.Name = "target"

	cp := lc.Copy()
	cp.Flux[0] = 99.0
	assert.Equal(t, 1.0, lc.Flux[0])
	assert.Equal(t, "target", cp.Name)
}
