package formula_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/ML-KULeuven/amc-grad/pkg/formula"
)

func TestSimplifyDropsZeroFromSum(t *testing.T) {
	n := Sum(Zero, Val(1), Zero)
	got := n.Simplify()
	assert.True(t, got.Equal(Val(1)))
}

func TestSimplifySumWithOneCollapses(t *testing.T) {
	n := Sum(Val(1), One, Val(2))
	assert.True(t, n.Simplify().IsTrue())
}

func TestSimplifyProdWithZeroCollapses(t *testing.T) {
	n := Prod(Val(1), Zero, Val(2))
	assert.True(t, n.Simplify().IsFalse())
}

func TestSimplifyEmptySumIsZero(t *testing.T) {
	assert.True(t, Sum().Simplify().IsFalse())
}

func TestSimplifyEmptyProdIsOne(t *testing.T) {
	assert.True(t, Prod().Simplify().IsTrue())
}

func TestNegateCollapsesDoubleNegation(t *testing.T) {
	n := Val(1)
	assert.True(t, n.Negate().Negate().Equal(n))
}

func TestConditionSubstitutesLiterals(t *testing.T) {
	n := Sum(Val(1), Val(2))
	got := n.Condition([]int{1})
	assert.True(t, got.Simplify().IsTrue(), "conditioning on 1 must satisfy Val(1)'s disjunct")
}

func TestIsCNF(t *testing.T) {
	cnf := Prod(Sum(Val(1), Val(-2)), Val(3))
	assert.True(t, cnf.IsCNF())

	notCNF := Prod(Sum(Val(1), Prod(Val(2), Val(3))))
	assert.False(t, notCNF.IsCNF())
}

func TestNbVars(t *testing.T) {
	n := Prod(Sum(Val(1), Val(-4)), Neg(Val(2)))
	assert.Equal(t, 4, n.NbVars())
}

func TestValPanicsOnZeroLiteral(t *testing.T) {
	assert.Panics(t, func() { Val(0) })
}

func TestEqualStructural(t *testing.T) {
	a := Sum(Val(1), Prod(Val(2), Val(3)))
	b := Sum(Val(1), Prod(Val(2), Val(3)))
	require.True(t, a.Equal(b))
	require.False(t, a.Equal(Sum(Val(1), Val(2))))
}
