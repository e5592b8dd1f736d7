package main

import (
	"math/big"

	"github.com/nukata/goarith"
)

// CtrlOp tags a CtrlItem the way the teacher's Step.Op tags a Scheme
// continuation step; Val carries whatever payload that op needs.
type CtrlOp int

const (
	CIdent CtrlOp = iota
	CLiteralInt
	CLiteralString
	CLambda
	CGamma
	COp
	CTau
	CBeta
)

// CtrlItem is one entry of a Control Structure, the flattener's unit of
// output — directly the teacher's Step{Op int, Val Any} reused as the
// static control-structure element instead of a live continuation frame.
type CtrlItem struct {
	Op  CtrlOp
	Val Any
}

// Any is a bare alias for interface{}, named the way the teacher names
// its own Scheme value type.
type Any = interface{}

// LambdaArg is CLambda's payload: the names a closure binds (more than
// one only when the bound variable was a tuple-destructuring pattern)
// and the index of the Control Structure its body was flattened into.
type LambdaArg struct {
	Params []string
	CS     int
}

// BetaArg is CBeta's payload: the two branches of a conditional, each
// its own Control Structure index.
type BetaArg struct {
	ThenCS int
	ElseCS int
}

// ControlStructures holds every Control Structure produced by Flatten,
// indexed by CS number; CS 0 is always the program's top level.
type ControlStructures [][]CtrlItem

// Flatten lowers a standardized tree into an indexed set of Control
// Structures per spec.md §4.4. It returns the index of root's own
// Control Structure (always 0).
func Flatten(root *Node) (ControlStructures, int) {
	css := ControlStructures{nil}
	flattenInto(root, &css, 0)
	return css, 0
}

func newCS(css *ControlStructures) int {
	idx := len(*css)
	*css = append(*css, nil)
	return idx
}

func emit(css *ControlStructures, cs int, item CtrlItem) {
	(*css)[cs] = append((*css)[cs], item)
}

func flattenInto(n *Node, css *ControlStructures, cs int) {
	if n.IsLeaf() {
		flattenLeaf(n, css, cs)
		return
	}

	switch n.Label {
	case "lambda":
		if len(n.Children) != 2 {
			fail(&FlattenError{Msg: "lambda must have exactly a bound variable and a body"})
		}
		params := boundNames(n.Children[0])
		bodyCS := newCS(css)
		flattenInto(n.Children[1], css, bodyCS)
		emit(css, cs, CtrlItem{Op: CLambda, Val: &LambdaArg{Params: params, CS: bodyCS}})

	case "gamma":
		if len(n.Children) != 2 {
			fail(&FlattenError{Msg: "gamma must have exactly a rator and a rand"})
		}
		flattenInto(n.Children[0], css, cs)
		flattenInto(n.Children[1], css, cs)
		emit(css, cs, CtrlItem{Op: CGamma})

	case "tau":
		for _, c := range n.Children {
			flattenInto(c, css, cs)
		}
		emit(css, cs, CtrlItem{Op: CTau, Val: len(n.Children)})

	case "->":
		if len(n.Children) != 3 {
			fail(&FlattenError{Msg: "conditional must have exactly a test and two branches"})
		}
		flattenInto(n.Children[0], css, cs)
		thenCS := newCS(css)
		flattenInto(n.Children[1], css, thenCS)
		elseCS := newCS(css)
		flattenInto(n.Children[2], css, elseCS)
		emit(css, cs, CtrlItem{Op: CBeta, Val: &BetaArg{ThenCS: thenCS, ElseCS: elseCS}})

	case "+", "-", "*", "/", "**", "gr", "ge", "ls", "le", "eq", "ne",
		"or", "&", "aug":
		if len(n.Children) != 2 {
			fail(&FlattenError{Msg: n.Label + " must be binary"})
		}
		flattenInto(n.Children[0], css, cs)
		flattenInto(n.Children[1], css, cs)
		emit(css, cs, CtrlItem{Op: COp, Val: n.Label})

	case "neg", "not":
		if len(n.Children) != 1 {
			fail(&FlattenError{Msg: n.Label + " must be unary"})
		}
		flattenInto(n.Children[0], css, cs)
		emit(css, cs, CtrlItem{Op: COp, Val: n.Label})

	default:
		fail(&FlattenError{Msg: "cannot flatten standardized node " + n.Label})
	}
}

func flattenLeaf(n *Node, css *ControlStructures, cs int) {
	switch n.Label {
	case "identifier":
		emit(css, cs, CtrlItem{Op: CIdent, Val: n.Value})
	case "integer":
		z := new(big.Int)
		if _, ok := z.SetString(n.Value, 10); !ok {
			fail(&FlattenError{Msg: "malformed integer literal " + n.Value})
		}
		emit(css, cs, CtrlItem{Op: CLiteralInt, Val: goarith.AsNumber(z)})
	case "string":
		emit(css, cs, CtrlItem{Op: CLiteralString, Val: n.Value})
	case "()":
		emit(css, cs, CtrlItem{Op: CIdent, Val: ""})
	default:
		fail(&FlattenError{Msg: "cannot flatten leaf " + n.Label})
	}
}

// boundNames extracts the name(s) a lambda parameter binds: a plain
// identifier binds one name, "()" binds the empty name (the dummy
// zero-argument parameter), and a ","-tuple pattern binds each of its
// identifier children at once against a matching tuple argument.
func boundNames(param *Node) []string {
	switch param.Label {
	case "identifier":
		return []string{param.Value}
	case "()":
		return []string{""}
	case ",":
		names := make([]string, len(param.Children))
		for i, c := range param.Children {
			if c.Label != "identifier" {
				fail(&FlattenError{Msg: "tuple-destructuring parameter must list identifiers"})
			}
			names[i] = c.Value
		}
		return names
	default:
		fail(&FlattenError{Msg: "invalid bound variable " + param.Label})
		return nil
	}
}
