package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func lexAll(t *testing.T, source string) []Token {
	t.Helper()
	var toks []Token
	lx := NewLexer(source)
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == EndOfFile {
			break
		}
	}
	return toks
}

func TestLexerIdentifiersKeywordsAndOperators(t *testing.T) {
	toks := lexAll(t, "let Sum = Stem aug Stern in Sum")
	require.Len(t, toks, 9)
	require.Equal(t, KeywordTok, toks[0].Kind)
	require.Equal(t, "let", toks[0].Text)
	require.Equal(t, Identifier, toks[1].Kind)
	require.Equal(t, "Sum", toks[1].Text)
	require.Equal(t, OperatorTok, toks[2].Kind)
	require.Equal(t, "=", toks[2].Text)
	require.Equal(t, KeywordTok, toks[4].Kind)
	require.Equal(t, "aug", toks[4].Text)
	require.Equal(t, KeywordTok, toks[6].Kind)
	require.Equal(t, "in", toks[6].Text)
	require.Equal(t, EndOfFile, toks[len(toks)-1].Kind)
}

func TestLexerIntegersAndTrueFalseFoldToIntegerTokens(t *testing.T) {
	toks := lexAll(t, "1 23 true false")
	require.Equal(t, IntegerTok, toks[0].Kind)
	require.Equal(t, "1", toks[0].Text)
	require.Equal(t, IntegerTok, toks[1].Kind)
	require.Equal(t, "23", toks[1].Text)
	require.Equal(t, IntegerTok, toks[2].Kind)
	require.Equal(t, "1", toks[2].Text)
	require.Equal(t, IntegerTok, toks[3].Kind)
	require.Equal(t, "0", toks[3].Text)
}

func TestLexerStringEscapesAndComments(t *testing.T) {
	toks := lexAll(t, "'a\\tb\\n' // a trailing comment\n 'c'")
	require.Equal(t, StringTok, toks[0].Kind)
	require.Equal(t, "a\tb\n", toks[0].Text)
	require.Equal(t, StringTok, toks[1].Kind)
	require.Equal(t, "c", toks[1].Text)
}

func TestLexerNamedOperatorsAndDelimiters(t *testing.T) {
	toks := lexAll(t, "not x gr y")
	require.Equal(t, OperatorTok, toks[0].Kind)
	require.Equal(t, "not", toks[0].Text)
	require.Equal(t, OperatorTok, toks[2].Kind)
	require.Equal(t, "gr", toks[2].Text)

	toks = lexAll(t, "(x, y)")
	require.Equal(t, DelimiterTok, toks[0].Kind)
	require.Equal(t, "(", toks[0].Text)
	require.Equal(t, OperatorTok, toks[2].Kind)
	require.Equal(t, ",", toks[2].Text)
	require.Equal(t, DelimiterTok, toks[4].Kind)
	require.Equal(t, ")", toks[4].Text)
}

func TestLexerRejectsUnclassifiableCharacter(t *testing.T) {
	lx := NewLexer("`")
	require.Panics(t, func() { lx.Next() })
}

func TestLexerRejectsUnterminatedString(t *testing.T) {
	lx := NewLexer("'abc")
	require.Panics(t, func() { lx.Next() })
}
