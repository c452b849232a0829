package algebra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ML-KULeuven/amc-grad/pkg/algebra"
)

func TestBoolSemiring(t *testing.T) {
	b := algebra.Bool{}
	assert.True(t, b.Add(true, false))
	assert.False(t, b.Add(false, false))
	assert.True(t, b.Mul(true, true))
	assert.False(t, b.Mul(true, false))
	assert.True(t, b.IsZero(false))
	assert.True(t, b.Idempotent(), "a || a == a must hold for every bool a")
	assert.True(t, b.HasInverse(true))
	assert.False(t, b.HasInverse(false))
	assert.True(t, b.Div(true, true))
	assert.Panics(t, func() { b.Sub(true, false) })
}

func TestIntegerSemiring(t *testing.T) {
	i := algebra.Integer{}
	assert.EqualValues(t, 7, i.Add(3, 4))
	assert.EqualValues(t, 12, i.Mul(3, 4))
	assert.EqualValues(t, -1, i.Negate(1))
	assert.EqualValues(t, 3, i.Div(7, 2), "Div truncates toward zero")
}

func TestRealSemiring(t *testing.T) {
	r := algebra.Real{}
	assert.InDelta(t, 0.5, r.Mul(0.5, 1.0), 1e-12)
	assert.InDelta(t, 2.0, r.Div(1.0, 0.5), 1e-12)
	assert.True(t, r.HasInverse(2.0))
	assert.False(t, r.HasInverse(0.0))
}

func TestLogAddExp(t *testing.T) {
	// log(e^0 + e^0) == log(2)
	assert.InDelta(t, math.Log(2), algebra.LogAddExp(0, 0), 1e-9)
	// -Inf is the additive identity in log-space.
	assert.Equal(t, 5.0, algebra.LogAddExp(math.Inf(-1), 5.0))
	assert.Equal(t, 5.0, algebra.LogAddExp(5.0, math.Inf(-1)))
}

func TestLogSemiringMatchesRealUnderExp(t *testing.T) {
	l := algebra.Log{}
	r := algebra.Real{}
	a, b := 0.3, 0.6
	logA, logB := math.Log(a), math.Log(b)

	gotAdd := math.Exp(l.Add(logA, logB))
	wantAdd := r.Add(a, b)
	assert.InDelta(t, wantAdd, gotAdd, 1e-9)

	gotMul := math.Exp(l.Mul(logA, logB))
	wantMul := r.Mul(a, b)
	assert.InDelta(t, wantMul, gotMul, 1e-9)
}

func TestFuzzySemiring(t *testing.T) {
	f := algebra.Fuzzy{}
	assert.Equal(t, 0.7, f.Add(0.3, 0.7))
	assert.Equal(t, 0.3, f.Mul(0.3, 0.7))
	assert.True(t, f.Idempotent())
	assert.Equal(t, 0.3, f.Add(0.3, 0.3), "idempotent: max(a,a) == a")
	assert.False(t, f.HasInverse(0.5), "Fuzzy has no division")
	assert.Panics(t, func() { f.Sub(0.5, 0.2) })
}

func TestSignedLogXORSign(t *testing.T) {
	s := algebra.SignedLog{}
	pos := algebra.SignedLogValue{Positive: true, Log: math.Log(2)}
	neg := algebra.SignedLogValue{Positive: false, Log: math.Log(3)}

	posPos := s.Mul(pos, pos)
	require.True(t, posPos.Positive, "positive * positive must be positive")

	negNeg := s.Mul(neg, neg)
	require.True(t, negNeg.Positive, "negative * negative must be positive")

	posNeg := s.Mul(pos, neg)
	require.False(t, posNeg.Positive, "positive * negative must be negative")
}

func TestSignedLogAddCancellation(t *testing.T) {
	s := algebra.SignedLog{}
	v := algebra.SignedLogValue{Positive: true, Log: math.Log(5)}
	negV := algebra.SignedLogValue{Positive: false, Log: math.Log(5)}

	zero := s.Add(v, negV)
	assert.True(t, s.IsZero(zero), "x + (-x) must cancel to zero in signed log-space")
}

func TestSumProduct(t *testing.T) {
	r := algebra.Real{}
	assert.InDelta(t, 6.0, algebra.Sum[float64](r, []float64{1, 2, 3}), 1e-12)
	assert.InDelta(t, 6.0, algebra.Product[float64](r, []float64{1, 2, 3}), 1e-12)
	assert.InDelta(t, 0.0, algebra.Sum[float64](r, nil), 1e-12)
	assert.InDelta(t, 1.0, algebra.Product[float64](r, nil), 1e-12)
}
