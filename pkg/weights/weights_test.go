package weights_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ML-KULeuven/amc-grad/pkg/algebra"
	"github.com/ML-KULeuven/amc-grad/pkg/weights"
)

func TestPosNegWeightsOutOfRangeDefaultsToIdentity(t *testing.T) {
	w := weights.NewPosNegWeights[float64](algebra.Real{}, 2)
	_, ok := w.Val(5)
	assert.False(t, ok, "a literal past the table's length must report not-found")
}

func TestPosNegWeightsIndependentPolarities(t *testing.T) {
	w := weights.NewPosNegWeights[float64](algebra.Real{}, 2)
	w.Add(1, 0.3)
	w.Add(-1, 0.9)

	pos, ok := w.Val(1)
	require.True(t, ok)
	neg, ok := w.Val(-1)
	require.True(t, ok)

	assert.InDelta(t, 0.3, pos, 1e-12)
	assert.InDelta(t, 0.9, neg, 1e-12, "positive and negative weights of the same variable must be independent")
}

func TestPosNegWeightsAddAccumulates(t *testing.T) {
	w := weights.NewPosNegWeights[float64](algebra.Real{}, 1)
	w.Add(1, 2.0)
	w.Add(1, 3.0)
	v, ok := w.Val(1)
	require.True(t, ok)
	assert.InDelta(t, 5.0, v, 1e-12)
}

func TestPosOnlyWeightsNegatesForNegativeLiteral(t *testing.T) {
	w := weights.NewPosOnlyWeights[float64](algebra.Real{}, 1)
	w.Add(1, 0.3)

	pos, ok := w.Val(1)
	require.True(t, ok)
	neg, ok := w.Val(-1)
	require.True(t, ok)

	assert.InDelta(t, 0.3, pos, 1e-12)
	assert.InDelta(t, 1-0.3, neg, 1e-12, "negative literal reads the ring negation of the stored entry")
}

func TestPosOnlyWeightsAddSubtractsForNegativeLiteral(t *testing.T) {
	w := weights.NewPosOnlyWeights[float64](algebra.Real{}, 1)
	w.Add(1, 1.0)
	w.Add(-1, 0.4)
	v, ok := w.Val(1)
	require.True(t, ok)
	assert.InDelta(t, 0.6, v, 1e-12)
}

func TestFromSlicesAndFromSlice(t *testing.T) {
	pn := weights.FromSlices[float64](algebra.Real{}, []float64{1, 2}, []float64{3, 4})
	v, ok := pn.Val(2)
	require.True(t, ok)
	assert.InDelta(t, 2.0, v, 1e-12)

	po := weights.FromSlice[float64](algebra.Real{}, []float64{10, 20})
	v, ok = po.Val(-2)
	require.True(t, ok)
	assert.InDelta(t, 1-20.0, v, 1e-12)
}
