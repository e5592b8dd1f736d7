package main

// Parser implements the RPAL grammar (spec.md §4.2) by recursive descent
// with lookahead-1 over a TokenBuffer. Every grammar function pushes
// exactly the tree its production builds onto nodeStack; buildTree pops a
// production's children (newest first) and re-reverses them into source
// order before pushing the resulting internal node — the single growing
// stack the spec describes, directly in the spirit of original_source's
// own build_tree/nodeStack pair.
type Parser struct {
	buf       *TokenBuffer
	nodeStack []*Node
}

// Parse runs the full grammar over source and returns the AST root, or an
// error if lexing or parsing fails.
func Parse(source string) (root *Node, err error) {
	err = safely(func() {
		p := &Parser{buf: NewTokenBuffer(source)}
		p.E()
		if p.buf.Peek().Kind != EndOfFile {
			fail(&SyntaxError{Msg: "end of file expected, got " + p.buf.Peek().Text})
		}
		root = p.pop()
		if len(p.nodeStack) != 0 {
			fail(&SyntaxError{Msg: "internal error: leftover parse stack"})
		}
	})
	return root, err
}

func (p *Parser) push(n *Node) { p.nodeStack = append(p.nodeStack, n) }

func (p *Parser) pop() *Node {
	last := len(p.nodeStack) - 1
	n := p.nodeStack[last]
	p.nodeStack = p.nodeStack[:last]
	return n
}

// buildTree pops n children off nodeStack (they come off newest-first) and
// pushes a new internal node with them restored to source order.
func (p *Parser) buildTree(label string, n int) {
	children := make([]*Node, n)
	for i := n - 1; i >= 0; i-- {
		children[i] = p.pop()
	}
	p.push(Internal(label, children...))
}

func (p *Parser) tok() Token { return p.buf.Peek() }

func (p *Parser) isKeyword(text string) bool {
	t := p.tok()
	return t.Kind == KeywordTok && t.Text == text
}

func (p *Parser) isOperatorText(text string) bool {
	t := p.tok()
	return t.Kind == OperatorTok && t.Text == text
}

func (p *Parser) isDelimiter(text string) bool {
	t := p.tok()
	return t.Kind == DelimiterTok && t.Text == text
}

func (p *Parser) consumeKeyword(text string) Token  { return p.buf.Expect(KeywordTok, text) }
func (p *Parser) consumeOperator(text string) Token { return p.buf.Expect(OperatorTok, text) }
func (p *Parser) consumeDelimiter(text string) Token {
	return p.buf.Expect(DelimiterTok, text)
}

func (p *Parser) consumeIdentifier() Token {
	t := p.tok()
	if t.Kind != Identifier {
		fail(&SyntaxError{Msg: "identifier expected, got " + t.Text})
	}
	return p.buf.Consume()
}

func (p *Parser) startsVb() bool {
	return p.tok().Kind == Identifier || p.isDelimiter("(")
}

func (p *Parser) startsRn() bool {
	k := p.tok().Kind
	return k == Identifier || k == IntegerTok || k == StringTok || p.isDelimiter("(")
}

// E → 'let' D 'in' E | 'fn' Vb {Vb} '.' E | Ew
func (p *Parser) E() {
	switch {
	case p.isKeyword("let"):
		p.consumeKeyword("let")
		p.D()
		p.consumeKeyword("in")
		p.E()
		p.buildTree("let", 2)
	case p.isKeyword("fn"):
		p.consumeKeyword("fn")
		n := 0
		for p.startsVb() {
			p.Vb()
			n++
		}
		if n == 0 {
			fail(&SyntaxError{Msg: "at least one bound variable expected after fn"})
		}
		p.consumeOperator(".")
		p.E()
		p.buildTree("lambda", n+1)
	default:
		p.Ew()
	}
}

// Ew → T ['where' Dr]
func (p *Parser) Ew() {
	p.T()
	if p.isKeyword("where") {
		p.consumeKeyword("where")
		p.Dr()
		p.buildTree("where", 2)
	}
}

// T → Ta {',' Ta}
func (p *Parser) T() {
	p.Ta()
	n := 1
	for p.isOperatorText(",") {
		p.consumeOperator(",")
		p.Ta()
		n++
	}
	if n >= 2 {
		p.buildTree("tau", n)
	}
}

// Ta → Tc {'aug' Tc}
func (p *Parser) Ta() {
	p.Tc()
	for p.isKeyword("aug") {
		p.consumeKeyword("aug")
		p.Tc()
		p.buildTree("aug", 2)
	}
}

// Tc → B ['->' Tc '|' Tc]
func (p *Parser) Tc() {
	p.B()
	if p.isOperatorText("->") {
		p.consumeOperator("->")
		p.Tc()
		p.consumeOperator("|")
		p.Tc()
		p.buildTree("->", 3)
	}
}

// B → Bt {'or' Bt}
func (p *Parser) B() {
	p.Bt()
	for p.isOperatorText("or") {
		p.consumeOperator("or")
		p.Bt()
		p.buildTree("or", 2)
	}
}

// Bt → Bs {'&' Bs}
func (p *Parser) Bt() {
	p.Bs()
	for p.isOperatorText("&") {
		p.consumeOperator("&")
		p.Bs()
		p.buildTree("&", 2)
	}
}

// Bs → 'not' Bp | Bp
func (p *Parser) Bs() {
	if p.isOperatorText("not") {
		p.consumeOperator("not")
		p.Bp()
		p.buildTree("not", 1)
		return
	}
	p.Bp()
}

var comparatorWord = map[string]string{
	"gr": "gr", ">": "gr",
	"ge": "ge", ">=": "ge",
	"ls": "ls", "<": "ls",
	"le": "le", "<=": "le",
	"eq": "eq", "=": "eq",
	"ne": "ne", "!=": "ne",
}

// Bp → A [op A], op normalized to its worded form.
func (p *Parser) Bp() {
	p.A()
	t := p.tok()
	if t.Kind == OperatorTok {
		if word, ok := comparatorWord[t.Text]; ok {
			p.buf.Consume()
			p.A()
			p.buildTree(word, 2)
		}
	}
}

// A → ['+'|'-'] At {('+'|'-') At}; a leading '-' wraps the first At in neg.
func (p *Parser) A() {
	neg := false
	switch {
	case p.isOperatorText("+"):
		p.consumeOperator("+")
	case p.isOperatorText("-"):
		p.consumeOperator("-")
		neg = true
	}
	p.At()
	if neg {
		p.buildTree("neg", 1)
	}
	for p.isOperatorText("+") || p.isOperatorText("-") {
		op := p.tok().Text
		p.buf.Consume()
		p.At()
		p.buildTree(op, 2)
	}
}

// At → Af {('*'|'/') Af}
func (p *Parser) At() {
	p.Af()
	for p.isOperatorText("*") || p.isOperatorText("/") {
		op := p.tok().Text
		p.buf.Consume()
		p.Af()
		p.buildTree(op, 2)
	}
}

// Af → Ap {'**' Ap}
func (p *Parser) Af() {
	p.Ap()
	for p.isOperatorText("**") {
		p.consumeOperator("**")
		p.Ap()
		p.buildTree("**", 2)
	}
}

// Ap → R {'@' identifier R}
func (p *Parser) Ap() {
	p.R()
	for p.isOperatorText("@") {
		p.consumeOperator("@")
		idTok := p.consumeIdentifier()
		p.push(Leaf("identifier", idTok.Text))
		p.R()
		p.buildTree("@", 3)
	}
}

// R → Rn {Rn}, juxtaposition builds a left-associative gamma chain.
func (p *Parser) R() {
	p.Rn()
	for p.startsRn() {
		p.Rn()
		p.buildTree("gamma", 2)
	}
}

// Rn → identifier | integer | string | '(' E ')'
// (true/false/nil/dummy reach here as plain Integer/Identifier tokens —
// see SPEC_FULL.md §4 and DESIGN.md's Open Question log.)
func (p *Parser) Rn() {
	t := p.tok()
	switch {
	case t.Kind == Identifier:
		p.buf.Consume()
		p.push(Leaf("identifier", t.Text))
	case t.Kind == IntegerTok:
		p.buf.Consume()
		p.push(Leaf("integer", t.Text))
	case t.Kind == StringTok:
		p.buf.Consume()
		p.push(Leaf("string", t.Text))
	case p.isDelimiter("("):
		p.consumeDelimiter("(")
		p.E()
		p.consumeDelimiter(")")
	default:
		fail(&SyntaxError{Msg: "identifier, integer, string or '(' expected, got " + t.Text})
	}
}

// D → Da ['within' D]
func (p *Parser) D() {
	p.Da()
	if p.isKeyword("within") {
		p.consumeKeyword("within")
		p.D()
		p.buildTree("within", 2)
	}
}

// Da → Dr {'and' Dr}
func (p *Parser) Da() {
	p.Dr()
	n := 1
	for p.isOperatorText("and") {
		p.consumeOperator("and")
		p.Dr()
		n++
	}
	if n >= 2 {
		p.buildTree("and", n)
	}
}

// Dr → 'rec' Db | Db ('rec' lexes as a plain identifier; checked by text,
// matching original_source/Parser.h's Dr()).
func (p *Parser) Dr() {
	if p.tok().Kind == Identifier && p.tok().Text == "rec" {
		p.buf.Consume()
		p.Db()
		p.buildTree("rec", 1)
		return
	}
	p.Db()
}

// Db → '(' D ')' | identifier ',' Vl '=' E | identifier Vb {Vb} '=' E
//    | identifier '=' E
func (p *Parser) Db() {
	if p.isDelimiter("(") {
		p.consumeDelimiter("(")
		p.D()
		p.consumeDelimiter(")")
		return
	}
	idTok := p.consumeIdentifier()
	p.push(Leaf("identifier", idTok.Text))

	if p.isOperatorText(",") {
		// identifier ',' Vl '=' E  ⇒  =[','[ident…], E]
		n := 1
		p.consumeOperator(",")
		first := p.consumeIdentifier()
		p.push(Leaf("identifier", first.Text))
		n++
		n = p.restOfIdentList(n)
		p.buildTree(",", n)
		p.consumeOperator("=")
		p.E()
		p.buildTree("=", 2)
		return
	}

	n := 0
	for p.startsVb() {
		p.Vb()
		n++
	}
	p.consumeOperator("=")
	p.E()
	if n == 0 {
		p.buildTree("=", 2)
	} else {
		p.buildTree("fcn_form", n+2)
	}
}

// restOfIdentList parses {',' identifier}, pushing each identifier leaf and
// returning the updated running count n.
func (p *Parser) restOfIdentList(n int) int {
	for p.isOperatorText(",") {
		p.consumeOperator(",")
		idTok := p.consumeIdentifier()
		p.push(Leaf("identifier", idTok.Text))
		n++
	}
	return n
}

// Vb → identifier | '()' | '(' identifier Vl? ')'
func (p *Parser) Vb() {
	if p.tok().Kind == Identifier {
		idTok := p.buf.Consume()
		p.push(Leaf("identifier", idTok.Text))
		return
	}
	p.consumeDelimiter("(")
	if p.isDelimiter(")") {
		p.consumeDelimiter(")")
		p.push(Leaf("()", ""))
		return
	}
	first := p.consumeIdentifier()
	p.push(Leaf("identifier", first.Text))
	if p.isOperatorText(",") {
		n := 1
		n = p.restOfIdentList(n)
		p.buildTree(",", n)
	}
	p.consumeDelimiter(")")
}
