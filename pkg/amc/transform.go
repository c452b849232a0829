package amc

import (
	"github.com/ML-KULeuven/amc-grad/pkg/algebra"
	"github.com/ML-KULeuven/amc-grad/pkg/circuit"
	"github.com/ML-KULeuven/amc-grad/pkg/weights"
)

// Specialize runs forward AMC evaluation of c under the Circuit algebra,
// substituting every literal with whatever CircuitValue litValues resolves
// it to, and returns the resulting flat circuit built in arena. This is how
// a compiled circuit gets rewritten in terms of different atoms, e.g.
// replacing a propositional variable with a sub-circuit over a different
// vocabulary, or composing two compiled circuits, without re-invoking the
// external knowledge compiler.
func Specialize(c *circuit.Circuit, arena *algebra.Arena, litValues weights.Weights[algebra.CircuitValue]) *circuit.Circuit {
	buf := Forward[algebra.CircuitValue](algebra.CircuitAlgebra{}, c, litValues)
	return algebra.Finalize(arena, buf[c.Root()])
}

// IdentitySubstitution builds a fresh Arena together with a weight table
// mapping every literal in [1, nbVars] to a freshly pushed Leaf of itself,
// the neutral starting point for Specialize. Callers that only need to
// rewrite a handful of literals can build their own weights.Weights and
// push the substituted subtrees into the same arena directly, reserving
// IdentitySubstitution for the common "leave most variables alone" case.
func IdentitySubstitution(nbVars int) (*algebra.Arena, *weights.PosNegWeights[algebra.CircuitValue]) {
	arena := algebra.NewArena()
	pos := make([]algebra.CircuitValue, nbVars)
	neg := make([]algebra.CircuitValue, nbVars)
	for i := 0; i < nbVars; i++ {
		pos[i] = algebra.NewLeafValue(arena, arena.PushLeaf(i+1))
		neg[i] = algebra.NewLeafValue(arena, arena.PushLeaf(-(i + 1)))
	}
	return arena, weights.FromSlices[algebra.CircuitValue](algebra.CircuitAlgebra{}, pos, neg)
}
