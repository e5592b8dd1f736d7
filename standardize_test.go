package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func standardizeSource(t *testing.T, source string) *Node {
	t.Helper()
	ast, err := Parse(source)
	require.NoError(t, err)
	return Standardize(ast)
}

func TestStandardizeLetBecomesGammaOfLambda(t *testing.T) {
	st := standardizeSource(t, "let x = 1 in x")
	require.Equal(t, "(gamma (lambda identifier:x identifier:x) integer:1)", dumpNode(st))
}

func TestStandardizeWhereFlipsBindingOrder(t *testing.T) {
	st := standardizeSource(t, "x where x = 1")
	require.Equal(t, "(gamma (lambda identifier:x identifier:x) integer:1)", dumpNode(st))
}

func TestStandardizeFcnFormCurriesIntoLambdaChain(t *testing.T) {
	st := standardizeSource(t, "let f x y = x in f")
	require.Equal(t, "(gamma (lambda identifier:f identifier:f) (lambda identifier:x (lambda identifier:y identifier:x)))", dumpNode(st))
}

func TestStandardizeMultiParamLambdaCurries(t *testing.T) {
	st := standardizeSource(t, "fn x y . x")
	require.Equal(t, "(lambda identifier:x (lambda identifier:y identifier:x))", dumpNode(st))
}

func TestStandardizeWithinCombinesTwoBindings(t *testing.T) {
	st := standardizeSource(t, "let x = 1 within y = x in y")
	require.Equal(t, "(gamma (lambda identifier:y identifier:y) (gamma (lambda identifier:x identifier:x) integer:1))", dumpNode(st))
}

func TestStandardizeAndBuildsNameTupleAndValueTau(t *testing.T) {
	st := standardizeSource(t, "let x = 1 and y = 2 in x")
	require.Equal(t,
		"(gamma (lambda (, identifier:x identifier:y) identifier:x) (tau integer:1 integer:2))",
		dumpNode(st))
}

func TestStandardizeRecWrapsYStar(t *testing.T) {
	st := standardizeSource(t, "let rec f n = n in f")
	require.Equal(t,
		"(gamma (lambda identifier:f identifier:f) (gamma identifier:Y* (lambda identifier:f identifier:n)))",
		dumpNode(st))
}

func TestStandardizeAtDesugarsToNestedGamma(t *testing.T) {
	st := standardizeSource(t, "a @ f b")
	require.Equal(t, "(gamma (gamma identifier:f identifier:a) identifier:b)", dumpNode(st))
}

func TestStandardizeLeavesLeavesAndOtherNodesUnchanged(t *testing.T) {
	st := standardizeSource(t, "1 + 2")
	require.Equal(t, "(+ integer:1 integer:2)", dumpNode(st))
}
