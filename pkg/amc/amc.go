// Package amc implements Algebraic Model Counting: a generic forward
// evaluator plus five backpropagation variants, over any algebra satisfying
// algebra.Semiring (or its Ring/Field refinements).
package amc

import (
	"github.com/ML-KULeuven/amc-grad/pkg/algebra"
	"github.com/ML-KULeuven/amc-grad/pkg/circuit"
	"github.com/ML-KULeuven/amc-grad/pkg/weights"
)

// Forward evaluates every node of c under alg, reading literal weights from
// w, and returns the full value buffer (indexed exactly like c.Nodes). A
// Leaf whose literal has no weight entry defaults to alg.One(), so the
// literal is effectively marginalized out.
func Forward[T any](alg algebra.Semiring[T], c *circuit.Circuit, w weights.Weights[T]) []T {
	buf := make([]T, c.NbNodes())
	for i, n := range c.Nodes {
		switch n.Kind {
		case circuit.Or:
			buf[i] = algebra.Sum(alg, gather(buf, n.Children))
		case circuit.And:
			buf[i] = algebra.Product(alg, gather(buf, n.Children))
		case circuit.Leaf:
			if v, ok := w.Val(n.Lit); ok {
				buf[i] = v
			} else {
				buf[i] = alg.One()
			}
		}
	}
	return buf
}

// Eval is Forward, returning only the root's value (the last element of
// Forward's buffer). This is the entry point for plain AMC: model counting,
// weighted model counting, log-space WMC, fuzzy truth, and so on, depending
// on which algebra and weight table the caller supplies.
func Eval[T any](alg algebra.Semiring[T], c *circuit.Circuit, w weights.Weights[T]) T {
	buf := Forward(alg, c, w)
	return buf[c.Root()]
}

func gather[T any](buf []T, ixs []int) []T {
	out := make([]T, len(ixs))
	for i, j := range ixs {
		out[i] = buf[j]
	}
	return out
}
