package formula

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// NotCNF is returned when DIMACS emission is attempted on a formula that
// isn't in CNF.
type NotCNF struct{}

func (NotCNF) Error() string { return "formula: not a CNF" }

// ToDIMACS renders a simplified CNF RNode as DIMACS CNF text: a
// "p cnf <nbVars> <nbClauses>" header followed by one clause per line,
// each clause a space-separated list of literals terminated by " 0".
func ToDIMACS(node *RNode) (string, error) {
	if !node.IsCNF() {
		return "", NotCNF{}
	}
	var b strings.Builder
	fmt.Fprintf(&b, "p cnf %d %d\n", node.NbVars(), len(node.Children))
	for i, clause := range node.Children {
		if i > 0 {
			b.WriteByte('\n')
		}
		writeClause(&b, clause)
	}
	return b.String(), nil
}

func writeClause(b *strings.Builder, clause *RNode) {
	lits := clause.Operands()
	if clause.IsLeaf() {
		lits = []*RNode{clause}
	}
	for _, l := range lits {
		v, ok := l.Value()
		if !ok {
			panic("formula: DIMACS clause contains a non-literal child")
		}
		fmt.Fprintf(b, "%d ", v)
	}
	b.WriteString("0")
}

// FromDIMACS reads DIMACS CNF text (comment lines starting with 'c' and the
// header line starting with 'p' are skipped) and returns it as a Prod of
// Sum-of-literal RNode clauses.
func FromDIMACS(r io.Reader) (*RNode, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024)

	var clauses []*RNode
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "c") || strings.HasPrefix(line, "p") {
			continue
		}
		fields := strings.Fields(line)
		var lits []*RNode
		for _, tok := range fields {
			v, err := strconv.Atoi(tok)
			if err != nil {
				return nil, errors.Wrapf(err, "formula: malformed literal on DIMACS line %d", lineNo)
			}
			if v == 0 {
				break
			}
			lits = append(lits, Val(v))
		}
		clauses = append(clauses, Sum(lits...))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "formula: reading DIMACS input")
	}
	return Prod(clauses...), nil
}
