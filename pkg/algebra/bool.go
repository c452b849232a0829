package algebra

// Bool is the Boolean semiring: + is logical OR, * is logical AND, Zero is
// false, One is true.
type Bool struct{}

var _ Field[bool] = Bool{}

func (Bool) Zero() bool { return false }
func (Bool) One() bool  { return true }
func (Bool) Add(a, b bool) bool { return a || b }
func (Bool) Mul(a, b bool) bool { return a && b }
func (Bool) IsZero(a bool) bool { return !a }

// Idempotent is true: a || a == a always holds (see DESIGN.md for why an
// earlier version of this algebra got this wrong).
func (Bool) Idempotent() bool { return true }

func (Bool) HasInverse(a bool) bool { return a }

// Negate is logical NOT, distinct from Sub which is undefined on Bool: a
// ring's negate need not agree with "one minus x" when the carrier isn't
// numeric, and callers must not conflate the two.
func (Bool) Negate(a bool) bool { return !a }

// Sub has no sound definition on the Boolean ring; calling it is a
// programming error.
func (Bool) Sub(a, b bool) bool {
	panic("algebra: subtraction is undefined for Bool")
}

// Div is defined only when both operands are true.
func (Bool) Div(a, b bool) bool {
	if a && b {
		return true
	}
	panic("algebra: division is undefined for Bool unless both operands are true")
}
