package algebra

// Real is the (ℝ, +, ×) semiring used for weighted model counting.
type Real struct{}

var _ Field[float64] = Real{}

func (Real) Zero() float64 { return 0 }
func (Real) One() float64  { return 1 }
func (Real) Add(a, b float64) float64 { return a + b }
func (Real) Mul(a, b float64) float64 { return a * b }
func (Real) IsZero(a float64) bool    { return a == 0 }
func (Real) Idempotent() bool         { return false }
func (Real) HasInverse(a float64) bool { return a != 0 }
func (Real) Sub(a, b float64) float64  { return a - b }
func (Real) Negate(a float64) float64  { return 1 - a }
func (Real) Div(a, b float64) float64  { return a / b }
