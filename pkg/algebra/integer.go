package algebra

// Integer is the ordinary (ℤ, +, ×) semiring used for plain model counting.
type Integer struct{}

var _ Field[int64] = Integer{}

func (Integer) Zero() int64 { return 0 }
func (Integer) One() int64  { return 1 }
func (Integer) Add(a, b int64) int64 { return a + b }
func (Integer) Mul(a, b int64) int64 { return a * b }
func (Integer) IsZero(a int64) bool  { return a == 0 }
func (Integer) Idempotent() bool     { return false }
func (Integer) HasInverse(a int64) bool { return a != 0 }
func (Integer) Sub(a, b int64) int64 { return a - b }
func (Integer) Negate(a int64) int64 { return -a }

// Div is truncating integer division, defined whenever b != 0.
func (Integer) Div(a, b int64) int64 { return a / b }
