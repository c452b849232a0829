// Package algebra defines the Semiring/Ring/Field contracts used by the AMC
// evaluator and a handful of concrete algebras: Bool, Integer, Real, Log,
// Fuzzy, SignedLog, and the higher-order Circuit algebra.
//
// Go has no operator overloading, so a semiring is not a method set on T
// itself; it is a value implementing Semiring[T] that is threaded alongside
// T through every evaluation. This keeps evaluation monomorphic per algebra
// (no per-node dynamic dispatch) while letting a single generic evaluator in
// pkg/amc work over all of them.
package algebra

// Semiring is a commutative semiring (T, +, *, 0, 1): Add and Mul are
// associative and commutative, Mul distributes over Add, Zero is absorbing
// for Mul, and One is the identity for Mul.
type Semiring[T any] interface {
	Zero() T
	One() T
	Add(a, b T) T
	Mul(a, b T) T

	// IsZero reports whether a equals Zero().
	IsZero(a T) bool

	// Idempotent reports whether Add(a, a) == a for all a.
	Idempotent() bool

	// HasInverse is a runtime predicate: does Div(a, _) have a defined
	// result for this particular a? Always false unless the algebra
	// refines Field; even then, an algebra may report false for some
	// values (e.g. Log at its Zero).
	HasInverse(a T) bool
}

// Ring adds subtraction and negation to a Semiring.
type Ring[T any] interface {
	Semiring[T]
	Sub(a, b T) T
	Negate(a T) T
}

// Field adds division to a Ring. Div is only meaningful when HasInverse(b)
// holds for the divisor b; callers that skip the check get whatever the
// concrete algebra does for an uninvertible divisor (usually a panic).
type Field[T any] interface {
	Ring[T]
	Div(a, b T) T
}

// Sum folds xs with s.Add, starting from s.Zero(). Mirrors the original's
// Sum<&'a Self> reduction over a lazy sequence; Go slices stand in for the
// lazy iterator since a slice is already materialized by the time an AMC
// node's children are known.
func Sum[T any](s Semiring[T], xs []T) T {
	acc := s.Zero()
	for _, x := range xs {
		acc = s.Add(acc, x)
	}
	return acc
}

// Product folds xs with s.Mul, starting from s.One().
func Product[T any](s Semiring[T], xs []T) T {
	acc := s.One()
	for _, x := range xs {
		acc = s.Mul(acc, x)
	}
	return acc
}
