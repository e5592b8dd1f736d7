package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// dumpNode renders a Node as a fully-parenthesized s-expression so tree
// shape can be asserted on without hand-building *Node literals everywhere.
func dumpNode(n *Node) string {
	if n.IsLeaf() {
		return n.Label + ":" + n.Value
	}
	parts := make([]string, len(n.Children))
	for i, c := range n.Children {
		parts[i] = dumpNode(c)
	}
	return "(" + n.Label + " " + strings.Join(parts, " ") + ")"
}

func mustParse(t *testing.T, source string) *Node {
	t.Helper()
	n, err := Parse(source)
	require.NoError(t, err)
	return n
}

func TestParseSimpleLet(t *testing.T) {
	n := mustParse(t, "let x = 1 in x")
	require.Equal(t, "(let (= identifier:x integer:1) identifier:x)", dumpNode(n))
}

func TestParseFnCurriesMultipleBoundVariables(t *testing.T) {
	n := mustParse(t, "fn x y . x")
	require.Equal(t, "(lambda identifier:x identifier:y identifier:x)", dumpNode(n))
}

func TestParseWhere(t *testing.T) {
	n := mustParse(t, "x where x = 1")
	require.Equal(t, "(where identifier:x (= identifier:x integer:1))", dumpNode(n))
}

func TestParseJuxtapositionBuildsLeftAssociativeGammaChain(t *testing.T) {
	n := mustParse(t, "f x y")
	require.Equal(t, "(gamma (gamma identifier:f identifier:x) identifier:y)", dumpNode(n))
}

func TestParseComparatorsNormalizeToWordForm(t *testing.T) {
	require.Equal(t, "(gr integer:1 integer:2)", dumpNode(mustParse(t, "1 > 2")))
	require.Equal(t, "(le integer:1 integer:2)", dumpNode(mustParse(t, "1 <= 2")))
	require.Equal(t, "(eq integer:1 integer:2)", dumpNode(mustParse(t, "1 = 2")))
	require.Equal(t, "(ne integer:1 integer:2)", dumpNode(mustParse(t, "1 != 2")))
}

func TestParseLeadingMinusWrapsOnlyFirstTerm(t *testing.T) {
	n := mustParse(t, "-1 + 2")
	require.Equal(t, "(+ (neg integer:1) integer:2)", dumpNode(n))
}

func TestParseTupleAndAug(t *testing.T) {
	require.Equal(t, "(tau integer:1 integer:2 integer:3)", dumpNode(mustParse(t, "1, 2, 3")))
	require.Equal(t, "(aug identifier:nil integer:1)", dumpNode(mustParse(t, "nil aug 1")))
}

func TestParseConditional(t *testing.T) {
	n := mustParse(t, "x -> 1 | 2")
	require.Equal(t, "(-> identifier:x integer:1 integer:2)", dumpNode(n))
}

func TestParseAtInfixOperator(t *testing.T) {
	n := mustParse(t, "a @ f b")
	require.Equal(t, "(@ identifier:a identifier:f identifier:b)", dumpNode(n))
}

func TestParseRecDefinitionByLiteralIdentifierText(t *testing.T) {
	n := mustParse(t, "let rec f n = n in f")
	require.Equal(t, "(let (rec (= identifier:f identifier:n)) identifier:f)", dumpNode(n))
}

func TestParseAndSimultaneousDefinitions(t *testing.T) {
	n := mustParse(t, "let x = 1 and y = 2 in x")
	require.Equal(t, "(let (and (= identifier:x integer:1) (= identifier:y integer:2)) identifier:x)", dumpNode(n))
}

func TestParseWithin(t *testing.T) {
	n := mustParse(t, "let x = 1 within y = x in y")
	require.Equal(t, "(let (within (= identifier:x integer:1) (= identifier:y identifier:x)) identifier:y)", dumpNode(n))
}

func TestParseTupleDestructuringDefinition(t *testing.T) {
	n := mustParse(t, "let a, b = x in a")
	require.Equal(t, "(let (= (, identifier:a identifier:b) identifier:x) identifier:a)", dumpNode(n))
}

func TestParseFcnFormWithParenthesizedAndBareBoundVariables(t *testing.T) {
	n := mustParse(t, "let f x (a, b) = x in f")
	require.Equal(t, "(let (fcn_form identifier:f identifier:x (, identifier:a identifier:b) identifier:x) identifier:f)", dumpNode(n))
}

func TestParseUnaryNot(t *testing.T) {
	n := mustParse(t, "not x")
	require.Equal(t, "(not identifier:x)", dumpNode(n))
}

func TestParseRejectsTrailingGarbage(t *testing.T) {
	_, err := Parse("1 2 )")
	require.Error(t, err)
	require.IsType(t, &SyntaxError{}, err)
}

func TestParseRejectsFnWithNoBoundVariables(t *testing.T) {
	_, err := Parse("fn . x")
	require.Error(t, err)
}
