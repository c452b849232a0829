package amc

import (
	"github.com/ML-KULeuven/amc-grad/pkg/algebra"
	"github.com/ML-KULeuven/amc-grad/pkg/circuit"
	"github.com/ML-KULeuven/amc-grad/pkg/weights"
)

// Every backprop variant below shares the same skeleton: a forward pass to
// get the node values (buf), a reverse sweep over a gradient buffer (grad)
// seeded with One() at the root, an Or rule that always just adds the
// parent gradient into every child, and a Leaf rule that hands the
// accumulated gradient off to the gradient weight table. They differ only
// in how they compute the partial derivative of an And node w.r.t. each
// child.

func initGrad[T any](alg algebra.Semiring[T], c *circuit.Circuit) []T {
	grad := make([]T, c.NbNodes())
	for i := range grad {
		grad[i] = alg.Zero()
	}
	grad[c.Root()] = alg.One()
	return grad
}

func leafGrad[T any](gw weights.Weights[T], lit int, g T) {
	ix := lit
	if ix < 0 {
		ix = -ix
	}
	if ix-1 < gw.Len() {
		gw.Add(lit, g)
	}
}

// BackpropNaive computes the And-node partial derivative in O(k^2): for
// each child j, it recomputes the product of every sibling value from
// scratch.
func BackpropNaive[T any](alg algebra.Semiring[T], c *circuit.Circuit, w, gw weights.Weights[T]) T {
	buf := Forward(alg, c, w)
	grad := initGrad(alg, c)

	for i := c.NbNodes() - 1; i >= 0; i-- {
		n := c.Nodes[i]
		switch n.Kind {
		case circuit.Or:
			for _, j := range n.Children {
				grad[j] = alg.Add(grad[j], grad[i])
			}
		case circuit.And:
			for _, j := range n.Children {
				residual := alg.One()
				for _, k := range n.Children {
					if k != j {
						residual = alg.Mul(residual, buf[k])
					}
				}
				grad[j] = alg.Add(grad[j], alg.Mul(residual, grad[i]))
			}
		case circuit.Leaf:
			leafGrad(gw, n.Lit, grad[i])
		}
	}
	return buf[c.Root()]
}

// BackpropAlg1 computes the And-node partial derivative in a single O(k)
// pass using prefix products (r) and a running suffix product (t):
// r[j] * t accumulates the product of every sibling but child j.
func BackpropAlg1[T any](alg algebra.Semiring[T], c *circuit.Circuit, w, gw weights.Weights[T]) T {
	buf := Forward(alg, c, w)
	grad := initGrad(alg, c)

	for i := c.NbNodes() - 1; i >= 0; i-- {
		n := c.Nodes[i]
		switch n.Kind {
		case circuit.Or:
			for _, j := range n.Children {
				grad[j] = alg.Add(grad[j], grad[i])
			}
		case circuit.And:
			k := len(n.Children)
			r := make([]T, k)
			t := alg.One()
			for idx, j := range n.Children {
				r[idx] = t
				t = alg.Mul(t, buf[j])
			}
			t = alg.One()
			for idx := k - 1; idx >= 0; idx-- {
				j := n.Children[idx]
				grad[j] = alg.Add(grad[j], alg.Mul(alg.Mul(r[idx], t), grad[i]))
				t = alg.Mul(t, buf[j])
			}
		case circuit.Leaf:
			leafGrad(gw, n.Lit, grad[i])
		}
	}
	return buf[c.Root()]
}

// BackpropCancel requires a Field. When the And node's value has a defined
// inverse, the derivative w.r.t. child j is V[i]/V[j] in O(1); otherwise it
// falls back to the O(k) naive per-child product.
func BackpropCancel[T any](alg algebra.Field[T], c *circuit.Circuit, w, gw weights.Weights[T]) T {
	buf := Forward[T](alg, c, w)
	grad := initGrad[T](alg, c)

	for i := c.NbNodes() - 1; i >= 0; i-- {
		n := c.Nodes[i]
		switch n.Kind {
		case circuit.Or:
			for _, j := range n.Children {
				grad[j] = alg.Add(grad[j], grad[i])
			}
		case circuit.And:
			for _, j := range n.Children {
				var residual T
				if alg.HasInverse(buf[i]) {
					residual = alg.Div(buf[i], buf[j])
				} else {
					residual = alg.One()
					for _, k := range n.Children {
						if k != j {
							residual = alg.Mul(residual, buf[k])
						}
					}
				}
				grad[j] = alg.Add(grad[j], alg.Mul(residual, grad[i]))
			}
		case circuit.Leaf:
			leafGrad(gw, n.Lit, grad[i])
		}
	}
	return buf[c.Root()]
}

// BackpropCancelOrder is BackpropCancel's default: when the And node's
// value is invertible it cancels via division as above; otherwise it
// special-cases tropical-like semirings (e.g. Fuzzy, where HasInverse is
// identically false) where at most one child is Zero: the derivative is
// non-zero only for that child, and equals the product of the rest. This
// variant works for both clean fields (reals, log-space) and semirings like
// Fuzzy that have no division but whose products have at most one zero
// factor, so it is the more generally useful default of the two
// Field-constrained variants.
func BackpropCancelOrder[T any](alg algebra.Field[T], c *circuit.Circuit, w, gw weights.Weights[T]) T {
	buf := Forward[T](alg, c, w)
	grad := initGrad[T](alg, c)

	for i := c.NbNodes() - 1; i >= 0; i-- {
		n := c.Nodes[i]
		switch n.Kind {
		case circuit.Or:
			for _, j := range n.Children {
				grad[j] = alg.Add(grad[j], grad[i])
			}
		case circuit.And:
			if alg.HasInverse(buf[i]) {
				for _, j := range n.Children {
					residual := alg.Div(buf[i], buf[j])
					grad[j] = alg.Add(grad[j], alg.Mul(residual, grad[i]))
				}
				break
			}
			nbZeros := 0
			nonZeroProd := alg.One()
			lastZero := -1
			for _, j := range n.Children {
				if alg.IsZero(buf[j]) {
					nbZeros++
					lastZero = j
					if nbZeros > 1 {
						break
					}
				} else {
					nonZeroProd = alg.Mul(nonZeroProd, buf[j])
				}
			}
			if nbZeros == 1 {
				grad[lastZero] = alg.Add(grad[lastZero], alg.Mul(nonZeroProd, grad[i]))
			}
		case circuit.Leaf:
			leafGrad(gw, n.Lit, grad[i])
		}
	}
	return buf[c.Root()]
}

// BackpropOrder relies on V[i] == V[c_j] identifying the maximiser(s) of an
// And node for semirings where Mul behaves like max/min over a tie
// structure (tropical-like semirings): gradient flows to the non-maximisers
// as buf[i]*grad[i], and to the (a single, tie-broken) maximiser as the
// product of everyone else. T must be comparable for the equality check.
func BackpropOrder[T comparable](alg algebra.Semiring[T], c *circuit.Circuit, w, gw weights.Weights[T]) T {
	buf := Forward[T](alg, c, w)
	grad := initGrad[T](alg, c)

	for i := c.NbNodes() - 1; i >= 0; i-- {
		n := c.Nodes[i]
		switch n.Kind {
		case circuit.Or:
			for _, j := range n.Children {
				grad[j] = alg.Add(grad[j], grad[i])
			}
		case circuit.And:
			nbMax := 0
			nonMaxProd := alg.One()
			lastMax := 0
			for _, j := range n.Children {
				if buf[j] == buf[i] {
					nbMax++
					lastMax = j
					if nbMax > 1 {
						nonMaxProd = buf[i]
						break
					}
				} else {
					nonMaxProd = alg.Mul(nonMaxProd, buf[j])
				}
			}
			grad[lastMax] = alg.Add(grad[lastMax], alg.Mul(nonMaxProd, grad[i]))
			for _, j := range n.Children {
				if j != lastMax {
					grad[j] = alg.Add(grad[j], alg.Mul(buf[i], grad[i]))
				}
			}
		case circuit.Leaf:
			leafGrad(gw, n.Lit, grad[i])
		}
	}
	return buf[c.Root()]
}
