// Package circuit implements the flat, topologically-sorted d-DNNF circuit
// that the AMC evaluator runs over, along with a parser for the d-DNNF text
// format.
package circuit

import "fmt"

// Kind distinguishes the three node shapes a compiled circuit can contain.
type Kind int

const (
	Or Kind = iota
	And
	Leaf
)

func (k Kind) String() string {
	switch k {
	case Or:
		return "Or"
	case And:
		return "And"
	case Leaf:
		return "Leaf"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Node is one entry of a flat Circuit. Children holds indices into the
// enclosing Circuit's Nodes slice and is only meaningful for Or/And; Lit
// holds the literal value and is only meaningful for Leaf.
type Node struct {
	Kind     Kind
	Children []int
	Lit      int
}

// AddChild appends a child index to an Or or And node. It panics on a Leaf,
// mirroring the original's add_child which only accepts Or/And.
func (n *Node) AddChild(child int) {
	switch n.Kind {
	case Or, And:
		n.Children = append(n.Children, child)
	default:
		panic("circuit: AddChild called on a non-Or/And node")
	}
}

// Circuit is an ordered, topologically-sorted DAG of Or/And/Leaf nodes.
// Every node's children have strictly smaller indices than the node itself,
// the root is the last element, and evaluating Nodes in index order is
// always well-defined.
type Circuit struct {
	Nodes []Node
}

// NbNodes returns the number of nodes in the circuit.
func (c *Circuit) NbNodes() int { return len(c.Nodes) }

// Root returns the index of the root node (the last element), or -1 for an
// empty circuit.
func (c *Circuit) Root() int { return len(c.Nodes) - 1 }

// NbVars returns the maximum absolute literal value over all Leaf nodes, or
// 0 if the circuit has none.
func (c *Circuit) NbVars() int {
	max := 0
	for _, n := range c.Nodes {
		if n.Kind != Leaf {
			continue
		}
		v := n.Lit
		if v < 0 {
			v = -v
		}
		if v > max {
			max = v
		}
	}
	return max
}

// DepthWidth returns the maximum depth (longest path from a leaf, a leaf
// itself being depth 1) and, for each depth from 0 to that maximum, how
// many nodes sit at that depth. Matches the original's depth_width exactly:
// an Or/And node's depth is one more than the max depth of its children
// (that max being 0 for a childless Or/And, whose depth is therefore 1),
// and a Leaf's depth is always 1.
func (c *Circuit) DepthWidth() (int, []int) {
	depths := make([]int, len(c.Nodes))
	var widths []int
	maxDepth := 0
	for i, n := range c.Nodes {
		d := 1
		switch n.Kind {
		case Or, And:
			m := 0
			for _, j := range n.Children {
				if depths[j] > m {
					m = depths[j]
				}
			}
			d = m + 1
		}
		depths[i] = d
		if d >= len(widths) {
			grown := make([]int, d+1)
			copy(grown, widths)
			widths = grown
		}
		widths[d]++
		if d > maxDepth {
			maxDepth = d
		}
	}
	return maxDepth, widths
}

// NodeWidth returns the maximum fan-in (number of children) over all
// Or/And nodes; Leaf nodes have no children and do not count.
func (c *Circuit) NodeWidth() int {
	max := 0
	for _, n := range c.Nodes {
		if len(n.Children) > max {
			max = len(n.Children)
		}
	}
	return max
}
