package formula

import (
	"testing"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
	"github.com/stretchr/testify/require"
)

const satisfiable = 1

// solveClauses feeds clauses (one []int per clause, DIMACS-style literals)
// straight into a gini solver's low-level clause-builder API and reports
// whether the resulting CNF is satisfiable.
func solveClauses(t *testing.T, clauses [][]int, nbVars int) bool {
	t.Helper()
	g := gini.New()
	litOf := make(map[int]z.Lit, nbVars)
	for v := 1; v <= nbVars; v++ {
		litOf[v] = g.Lit()
	}
	for _, clause := range clauses {
		for _, l := range clause {
			v := l
			if v < 0 {
				v = -v
			}
			lit, ok := litOf[v]
			require.Truef(t, ok, "clause literal %d exceeds nbVars %d", l, nbVars)
			if l < 0 {
				lit = lit.Not()
			}
			g.Add(lit)
		}
		g.Add(0)
	}
	return g.Solve() == satisfiable
}

func evalRNode(n *RNode, assign []bool) bool {
	switch n.Kind {
	case KindOne:
		return true
	case KindZero:
		return false
	case KindVal:
		v := n.Lit
		neg := v < 0
		if neg {
			v = -v
		}
		val := assign[v-1]
		if neg {
			return !val
		}
		return val
	case KindSum:
		for _, c := range n.Children {
			if evalRNode(c, assign) {
				return true
			}
		}
		return false
	case KindProd:
		for _, c := range n.Children {
			if !evalRNode(c, assign) {
				return false
			}
		}
		return true
	case KindNeg:
		return !evalRNode(n.Child, assign)
	default:
		panic("formula: evalRNode hit an unrecognized Kind")
	}
}

// bruteForceSAT enumerates every assignment of n's nbVars variables and
// reports whether any satisfies n.
func bruteForceSAT(n *RNode, nbVars int) bool {
	assign := make([]bool, nbVars)
	var rec func(i int) bool
	rec = func(i int) bool {
		if i == nbVars {
			return evalRNode(n, assign)
		}
		assign[i] = false
		if rec(i + 1) {
			return true
		}
		assign[i] = true
		return rec(i + 1)
	}
	return rec(0)
}

// TestTseitinPreservesSatisfiability checks that the CNF Tseitin produces is
// satisfiable exactly when the original formula is, across a handful of
// structurally distinct formulas, by solving the CNF with an actual SAT
// solver and comparing against brute-force enumeration of the original.
func TestTseitinPreservesSatisfiability(t *testing.T) {
	cases := []struct {
		name string
		node *RNode
	}{
		{"tautology-like", Sum(Val(1), Neg(Val(1)))},
		{"contradiction-like", Prod(Val(1), Neg(Val(1)))},
		{"xor", Sum(
			Prod(Val(1), Neg(Val(2))),
			Prod(Neg(Val(1)), Val(2)),
		)},
		{"nested", Prod(
			Sum(Val(1), Val(2), Neg(Val(3))),
			Neg(Prod(Val(2), Val(3))),
			Sum(Neg(Val(1)), Val(3)),
		)},
		{"deep-negation", Neg(Neg(Neg(Sum(Val(1), Prod(Val(2), Neg(Val(3))))))),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			simplified := tc.node.Simplify()
			nbVars := tc.node.NbVars()

			want := bruteForceSAT(simplified, nbVars)

			clauses := Clauses(simplified, nbVars)
			auxVars := 0
			for _, c := range clauses {
				for _, l := range c {
					v := l
					if v < 0 {
						v = -v
					}
					if v > auxVars {
						auxVars = v
					}
				}
			}
			got := solveClauses(t, clauses, auxVars)

			require.Equal(t, want, got, "Tseitin transform changed satisfiability for %s", tc.name)
		})
	}
}
