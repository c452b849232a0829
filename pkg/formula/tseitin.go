package formula

// clause is a slice of literals, kept as plain ints until the final wrap
// into RNode form.
type clause []int

// Tseitin converts an arbitrary RNode tree into an equisatisfiable CNF
// RNode (a Prod of Sum-of-literal clauses), introducing fresh auxiliary
// variables numbered starting at nbVars+1.
//
// If node is already CNF, it is returned unchanged: no auxiliary variables
// are introduced and no clauses are emitted.
func Tseitin(node *RNode, nbVars int) *RNode {
	if node.IsCNF() {
		return node
	}

	nextVar := nbVars
	var clauses []clause
	rootVar := tseitinRec(node, &nextVar, &clauses)
	clauses = append(clauses, clause{rootVar})

	out := make([]*RNode, len(clauses))
	for i, c := range clauses {
		lits := make([]*RNode, len(c))
		for j, l := range c {
			lits[j] = Val(l)
		}
		out[i] = Sum(lits...)
	}
	return Prod(out...)
}

// tseitinRec post-order walks node, emitting clauses for every interior
// node and returning the variable (possibly a fresh one, possibly an
// existing literal) that represents node's truth value.
func tseitinRec(node *RNode, nextVar *int, clauses *[]clause) int {
	switch node.Kind {
	case KindVal:
		return node.Lit

	case KindSum:
		vars := make([]int, len(node.Children))
		for i, c := range node.Children {
			vars[i] = tseitinRec(c, nextVar, clauses)
		}
		*nextVar++
		y := *nextVar
		// Each child implies y.
		for _, v := range vars {
			*clauses = append(*clauses, clause{y, -v})
		}
		// y implies at least one child.
		long := append(append(clause{}, vars...), -y)
		*clauses = append(*clauses, long)
		return y

	case KindProd:
		vars := make([]int, len(node.Children))
		for i, c := range node.Children {
			vars[i] = tseitinRec(c, nextVar, clauses)
		}
		*nextVar++
		y := *nextVar
		// y implies each child.
		for _, v := range vars {
			*clauses = append(*clauses, clause{-y, v})
		}
		// all children imply y.
		long := make(clause, 0, len(vars)+1)
		for _, v := range vars {
			long = append(long, -v)
		}
		long = append(long, y)
		*clauses = append(*clauses, long)
		return y

	case KindNeg:
		x := tseitinRec(node.Child, nextVar, clauses)
		*nextVar++
		y := *nextVar
		*clauses = append(*clauses, clause{y, x})
		*clauses = append(*clauses, clause{-y, -x})
		return y

	default:
		panic("formula: Tseitin encountered One/Zero at an interior position; simplify first")
	}
}

// Clauses Tseitin-transforms node and returns its clauses as literal
// slices, one per clause, without any text I/O. Ported from the original's
// RCircuit.clauses() (original_source/src/circuit/rcircuit.rs).
func Clauses(node *RNode, nbVars int) [][]int {
	cnf := Tseitin(node, nbVars)
	out := make([][]int, len(cnf.Children))
	for i, c := range cnf.Children {
		operands := c.Operands()
		if c.IsLeaf() {
			operands = []*RNode{c}
		}
		lits := make([]int, len(operands))
		for j, l := range operands {
			lits[j], _ = l.Value()
		}
		out[i] = lits
	}
	return out
}
