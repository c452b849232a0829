// Package weights implements the literal -> semiring-value mappings that
// the AMC evaluator reads on its forward pass and accumulates into on its
// backward pass.
package weights

import "github.com/ML-KULeuven/amc-grad/pkg/algebra"

// Weights maps a literal to a semiring value. Val reports (value, true) if
// the literal is in range, and (_, false) otherwise; callers that get
// false treat the literal as carrying the semiring's multiplicative
// identity (i.e. the literal is marginalized out).
type Weights[T any] interface {
	Val(lit int) (T, bool)
	Len() int

	// Add accumulates val into the weight of lit (used only by backprop;
	// forward-pass weight tables are read-only in practice, but nothing
	// stops a caller from reusing one as a gradient accumulator too).
	Add(lit int, val T)
}

func litIndex(lit int) int {
	if lit < 0 {
		return -lit - 1
	}
	return lit - 1
}

// PosNegWeights carries independent values for each polarity of a literal:
// two parallel slices of length V, indexed by |lit|-1.
type PosNegWeights[T any] struct {
	alg      algebra.Semiring[T]
	pos, neg []T
}

// NewPosNegWeights allocates a PosNegWeights of length n, filled with the
// algebra's zero value.
func NewPosNegWeights[T any](alg algebra.Semiring[T], n int) *PosNegWeights[T] {
	pos := make([]T, n)
	neg := make([]T, n)
	for i := range pos {
		pos[i] = alg.Zero()
		neg[i] = alg.Zero()
	}
	return &PosNegWeights[T]{alg: alg, pos: pos, neg: neg}
}

// FromSlices builds a PosNegWeights directly from caller-supplied positive
// and negative weight slices (which must be the same length).
func FromSlices[T any](alg algebra.Semiring[T], pos, neg []T) *PosNegWeights[T] {
	return &PosNegWeights[T]{alg: alg, pos: pos, neg: neg}
}

func (w *PosNegWeights[T]) Val(lit int) (T, bool) {
	ix := litIndex(lit)
	src := w.pos
	if lit < 0 {
		src = w.neg
	}
	if ix < 0 || ix >= len(src) {
		var zero T
		return zero, false
	}
	return src[ix], true
}

func (w *PosNegWeights[T]) Len() int { return len(w.pos) }

// Add accumulates val into the weight of lit. For a negative literal this
// writes into the negative slice, symmetric with the positive case.
func (w *PosNegWeights[T]) Add(lit int, val T) {
	ix := litIndex(lit)
	if lit > 0 {
		w.pos[ix] = w.alg.Add(w.pos[ix], val)
	} else {
		w.neg[ix] = w.alg.Add(w.neg[ix], val)
	}
}

// Slices returns the underlying positive and negative weight slices.
func (w *PosNegWeights[T]) Slices() (pos, neg []T) { return w.pos, w.neg }

// PosOnlyWeights carries a single value per variable; the weight of a
// negative literal is the ring negation of the positive entry. Requires the
// semiring to be a Ring.
type PosOnlyWeights[T any] struct {
	alg     algebra.Ring[T]
	weights []T
}

// NewPosOnlyWeights allocates a PosOnlyWeights of length n, filled with the
// ring's zero value.
func NewPosOnlyWeights[T any](alg algebra.Ring[T], n int) *PosOnlyWeights[T] {
	ws := make([]T, n)
	for i := range ws {
		ws[i] = alg.Zero()
	}
	return &PosOnlyWeights[T]{alg: alg, weights: ws}
}

// FromSlice builds a PosOnlyWeights directly from a caller-supplied weight
// slice.
func FromSlice[T any](alg algebra.Ring[T], ws []T) *PosOnlyWeights[T] {
	return &PosOnlyWeights[T]{alg: alg, weights: ws}
}

func (w *PosOnlyWeights[T]) Val(lit int) (T, bool) {
	ix := litIndex(lit)
	if ix < 0 || ix >= len(w.weights) {
		var zero T
		return zero, false
	}
	v := w.weights[ix]
	if lit < 0 {
		v = w.alg.Negate(v)
	}
	return v, true
}

func (w *PosOnlyWeights[T]) Len() int { return len(w.weights) }

// Add accumulates val into the weight of lit: addition for a positive
// literal, subtraction for a negative one (since the stored entry always
// represents the positive polarity).
func (w *PosOnlyWeights[T]) Add(lit int, val T) {
	ix := litIndex(lit)
	if lit > 0 {
		w.weights[ix] = w.alg.Add(w.weights[ix], val)
	} else {
		w.weights[ix] = w.alg.Sub(w.weights[ix], val)
	}
}

// Slice returns the underlying weight slice.
func (w *PosOnlyWeights[T]) Slice() []T { return w.weights }
