package algebra

import "github.com/ML-KULeuven/amc-grad/pkg/circuit"

// Arena is the shared, growing buffer of flat circuit nodes that backs the
// Circuit semiring. It is deliberately unsynchronized: a single AMC
// evaluation run owns one Arena exclusively.
type Arena struct {
	nodes []circuit.Node
}

// NewArena returns an Arena pre-seeded with the two reserved sentinel
// nodes used by CircuitValue's Zero/One: index 0 is an empty Or (the
// circuit's "false"), index 1 is an empty And (the circuit's "true").
func NewArena() *Arena {
	return &Arena{nodes: []circuit.Node{
		{Kind: circuit.Or},
		{Kind: circuit.And},
	}}
}

func (a *Arena) push(n circuit.Node) int {
	a.nodes = append(a.nodes, n)
	return len(a.nodes) - 1
}

// PushLeaf appends a Leaf node for lit and returns its arena index, for
// building the substitution weight tables a circuit specialization reads
// from.
func (a *Arena) PushLeaf(lit int) int {
	return a.push(circuit.Node{Kind: circuit.Leaf, Lit: lit})
}

// Take extracts the arena's node buffer as a *circuit.Circuit, leaving the
// arena empty. Once taken, the arena must not be reused.
func (a *Arena) Take() *circuit.Circuit {
	nodes := a.nodes
	a.nodes = nil
	return &circuit.Circuit{Nodes: nodes}
}

// Finalize wraps v in a trivial single-child Or node, guaranteeing it is
// the arena's last-pushed node and so satisfying a Circuit's "root is the
// last element" invariant even when v itself was pushed earlier (e.g. v is
// a bare substituted leaf), then extracts the arena.
func Finalize(a *Arena, v CircuitValue) *circuit.Circuit {
	a.push(circuit.Node{Kind: circuit.Or, Children: []int{v.ix}})
	return a.Take()
}

// CircuitValue is a handle into an Arena: an index plus a pointer to the
// arena it belongs to, used for the cross-arena identity check.
type CircuitValue struct {
	ix    int
	arena *Arena
}

// NewLeafValue wraps an existing arena index (e.g. a pre-populated Leaf
// node) as a CircuitValue handle, for seeding weight tables ahead of an
// AMC run; see pkg/amc's Specialize and IdentitySubstitution.
func NewLeafValue(a *Arena, ix int) CircuitValue {
	return CircuitValue{ix: ix, arena: a}
}

// CircuitAlgebra is the higher-order semiring whose elements are handles
// into a shared Arena: Add appends an Or node over its two operands' Arena
// indices, Mul appends an And node. Running an AMC evaluation under this
// algebra doesn't produce a value, it produces a new circuit.
type CircuitAlgebra struct{}

var _ Semiring[CircuitValue] = CircuitAlgebra{}

func (CircuitAlgebra) Zero() CircuitValue { return CircuitValue{ix: 0} }
func (CircuitAlgebra) One() CircuitValue  { return CircuitValue{ix: 1} }

func contextOf(a, b CircuitValue) *Arena {
	switch {
	case a.arena == nil && b.arena == nil:
		panic("algebra: CircuitValue has no arena context")
	case a.arena == nil:
		return b.arena
	case b.arena == nil:
		return a.arena
	case a.arena != b.arena:
		panic("algebra: CircuitValue operands belong to different arenas (context mismatch)")
	default:
		return a.arena
	}
}

func (CircuitAlgebra) Add(a, b CircuitValue) CircuitValue {
	arena := contextOf(a, b)
	ix := arena.push(circuit.Node{Kind: circuit.Or, Children: []int{a.ix, b.ix}})
	return CircuitValue{ix: ix, arena: arena}
}

func (CircuitAlgebra) Mul(a, b CircuitValue) CircuitValue {
	arena := contextOf(a, b)
	ix := arena.push(circuit.Node{Kind: circuit.And, Children: []int{a.ix, b.ix}})
	return CircuitValue{ix: ix, arena: arena}
}

func (CircuitAlgebra) IsZero(a CircuitValue) bool { return a.arena == nil && a.ix == 0 }
func (CircuitAlgebra) Idempotent() bool           { return false }
func (CircuitAlgebra) HasInverse(a CircuitValue) bool { return false }
