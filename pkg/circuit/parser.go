package circuit

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// MalformedDDNNF reports a structural problem found while parsing a d-DNNF
// text stream: an unexpected token, or dangling (never-referenced-as-root)
// nodes left over at EOF.
type MalformedDDNNF struct {
	Line   int
	Reason string
}

func (e *MalformedDDNNF) Error() string {
	return fmt.Sprintf("malformed d-DNNF at line %d: %s", e.Line, e.Reason)
}

// litKey identifies a distinct literal value for the Leaf-node sharing map:
// one entry per (variable, polarity) pair.
type litKey struct {
	variable int
	positive bool
}

// ParseDDNNF reads a d-DNNF text stream (the external compiler's output
// format) and returns a flat, topologically-sorted Circuit.
//
// Two line shapes are recognized:
//   - introduction: "o N", "a N", "f N", "t N" (o/f introduce an Or node,
//     a/t introduce an And node; both conventions are accepted to match
//     the d4 compiler's output).
//   - edge: "P C L1 L2 ... 0", an edge from d-DNNF node P to node C guarded
//     by the conjunction of literals L1..Ln (possibly empty).
//
// Node introductions are parked until first referenced as a child, at which
// point they are materialized into the flat array; this is what keeps the
// output topologically sorted without a second pass. The d-DNNF node at
// index 1 is the root and is always materialized last.
func ParseDDNNF(r io.Reader) (*Circuit, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var nodes []Node
	pending := map[int]*Node{}  // d-DNNF index -> not-yet-placed node
	placed := map[int]int{}     // d-DNNF index -> flat index
	lits := map[litKey]int{}    // literal -> flat Leaf index

	materialize := func(ddnnfIx int) (int, error) {
		if ix, ok := placed[ddnnfIx]; ok {
			return ix, nil
		}
		n, ok := pending[ddnnfIx]
		if !ok {
			return 0, &MalformedDDNNF{Reason: fmt.Sprintf("reference to unknown node %d", ddnnfIx)}
		}
		nodes = append(nodes, *n)
		ix := len(nodes) - 1
		placed[ddnnfIx] = ix
		delete(pending, ddnnfIx)
		return ix, nil
	}

	leafIx := func(lit int) int {
		key := litKey{variable: abs(lit), positive: lit > 0}
		if ix, ok := lits[key]; ok {
			return ix
		}
		nodes = append(nodes, Node{Kind: Leaf, Lit: lit})
		ix := len(nodes) - 1
		lits[key] = ix
		return ix
	}

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)

		switch fields[0] {
		case "o", "a", "f", "t":
			if len(fields) < 2 {
				return nil, &MalformedDDNNF{Line: lineNo, Reason: "introduction line missing node index"}
			}
			ix, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, &MalformedDDNNF{Line: lineNo, Reason: "non-integer node index"}
			}
			kind := Or
			if fields[0] == "a" || fields[0] == "t" {
				kind = And
			}
			pending[ix] = &Node{Kind: kind}
		default:
			parentIx, err := strconv.Atoi(fields[0])
			if err != nil {
				return nil, &MalformedDDNNF{Line: lineNo, Reason: "malformed edge line"}
			}
			if len(fields) < 2 {
				return nil, &MalformedDDNNF{Line: lineNo, Reason: "edge line missing child index"}
			}
			childIx, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, &MalformedDDNNF{Line: lineNo, Reason: "malformed child index"}
			}

			var edgeLits []int
			for _, tok := range fields[2:] {
				v, err := strconv.Atoi(tok)
				if err != nil {
					return nil, &MalformedDDNNF{Line: lineNo, Reason: "malformed literal in edge"}
				}
				if v == 0 {
					break
				}
				edgeLits = append(edgeLits, v)
			}

			childFlatIx, err := materialize(childIx)
			if err != nil {
				return nil, err
			}

			source := childFlatIx
			if len(edgeLits) > 0 {
				and := Node{Kind: And}
				for _, l := range edgeLits {
					and.AddChild(leafIx(l))
				}
				and.AddChild(childFlatIx)
				nodes = append(nodes, and)
				source = len(nodes) - 1
			}

			parent, ok := pending[parentIx]
			if !ok {
				return nil, &MalformedDDNNF{Line: lineNo, Reason: fmt.Sprintf("edge references unintroduced parent %d", parentIx)}
			}
			parent.AddChild(source)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("circuit: reading d-DNNF: %w", err)
	}

	rootIx, err := materialize(1)
	if err != nil {
		return nil, err
	}
	if len(pending) > 0 {
		log.WithField("dangling", len(pending)).Debug("d-DNNF parse left unreferenced nodes at EOF")
		return nil, &MalformedDDNNF{Line: lineNo, Reason: fmt.Sprintf("%d dangling node(s) never referenced", len(pending))}
	}

	// A well-formed d-DNNF never has an edge into the root (nothing points
	// at index 1), so materialize(1) always appends it fresh and it is
	// already the final element. If some edge did reference it earlier,
	// the input violates the format and we reject it rather than silently
	// reordering the circuit.
	if rootIx != len(nodes)-1 {
		return nil, &MalformedDDNNF{Reason: "node 1 (the root) was referenced as a child of another node"}
	}

	return &Circuit{Nodes: nodes}, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
