package algebra

import "math"

// Log represents non-negative reals by their natural logarithm: Add is
// log-sum-exp, Mul is ordinary addition, Zero is -Inf (log 0), One is 0
// (log 1).
type Log struct{}

var _ Field[float64] = Log{}

func (Log) Zero() float64 { return math.Inf(-1) }
func (Log) One() float64  { return 0 }

func (Log) Add(a, b float64) float64 { return LogAddExp(a, b) }
func (Log) Mul(a, b float64) float64 { return a + b }
func (Log) IsZero(a float64) bool    { return a == math.Inf(-1) }
func (Log) Idempotent() bool         { return false }
func (Log) HasInverse(a float64) bool { return a != math.Inf(-1) }

// Negate computes log(1 - e^x) via log1p for numerical stability.
func (Log) Negate(a float64) float64 {
	result := math.Log1p(-math.Exp(a))
	if math.IsNaN(result) {
		panic("algebra: Log.Negate produced NaN")
	}
	return result
}

// Sub computes log(e^a - e^b), i.e. the log-space subtraction dual to Add.
func (Log) Sub(a, b float64) float64 {
	result := math.Log(math.Exp(a) - math.Exp(b))
	if math.IsNaN(result) {
		panic("algebra: Log.Sub produced NaN")
	}
	return result
}

// Div is subtraction of logs.
func (Log) Div(a, b float64) float64 {
	result := a - b
	if math.IsNaN(result) {
		panic("algebra: Log.Div produced NaN")
	}
	return result
}

// LogAddExp computes log(e^x + e^y) without overflow. Returns the other
// argument exactly when one side is -Inf, and must never produce NaN for
// finite inputs: a NaN here is a fatal invariant breach.
func LogAddExp(x, y float64) float64 {
	if x == math.Inf(-1) {
		return y
	}
	if y == math.Inf(-1) {
		return x
	}
	diff := x - y
	var result float64
	if diff > 0 {
		result = x + math.Log1p(math.Exp(-diff))
	} else {
		result = y + math.Log1p(math.Exp(diff))
	}
	if math.IsNaN(result) {
		panic("algebra: LogAddExp produced NaN")
	}
	return result
}
