package main

// TokenBuffer is a fully-materialized token stream with a cursor,
// giving the parser lookahead-1 via Peek/Consume. Materializing eagerly
// (rather than pulling from the Lexer lazily) keeps the parser's grammar
// functions simple: they only ever look at TokenBuffer, never at Lexer.
type TokenBuffer struct {
	toks []Token
	pos  int
}

// NewTokenBuffer drains lex fully into a buffer. It panics with *LexError
// if the source contains unclassifiable input.
func NewTokenBuffer(source string) *TokenBuffer {
	lx := NewLexer(source)
	toks := make([]Token, 0, 128)
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == EndOfFile {
			break
		}
	}
	return &TokenBuffer{toks: toks}
}

// Peek returns the token under the cursor without consuming it.
func (b *TokenBuffer) Peek() Token {
	return b.toks[b.pos]
}

// Consume returns the token under the cursor and advances past it. It
// never advances past EndOfFile.
func (b *TokenBuffer) Consume() Token {
	tok := b.toks[b.pos]
	if tok.Kind != EndOfFile {
		b.pos++
	}
	return tok
}

// Expect consumes the token under the cursor if it matches kind and text,
// or panics with *SyntaxError naming what was expected and what was found.
func (b *TokenBuffer) Expect(kind TokenKind, text string) Token {
	tok := b.Peek()
	if tok.Kind != kind || tok.Text != text {
		fail(&SyntaxError{Msg: "expected " + text + ", got " + tok.Text})
	}
	return b.Consume()
}
