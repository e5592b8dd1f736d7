package main

import (
	"github.com/nukata/goarith"
	"github.com/samber/lo"
)

// ValueKind discriminates the payload a Value carries, playing the role
// the teacher's Step.Op plays for Continuation entries — but here tagging
// a runtime value on the CSE machine's Stack rather than a control entry.
type ValueKind int

const (
	VInt ValueKind = iota
	VString
	VBool
	VDummy
	VTuple
	VClosure
	VEta
	VBuiltin
	VPartial // a multi-argument built-in (Conc) waiting on further arguments
	vListMarker // sentinel, only ever found inside a VTuple's own Elems
)

// Value is a tagged union over every runtime value RPAL programs can
// produce. The Stack and an Environment's slots each hold exactly one
// Value per logical item — a tuple is one Value, never several slots —
// but a tuple's own Elems field flattens its (possibly nested) members
// in place: a vListMarker counts the flattened slots that immediately
// follow it within Elems, the way original_source/CSE.h's CseNode lays
// a nested list inline in one flat vector instead of a vector of
// vectors. Embedding stays confined to one Value's Elems; it never
// spreads across the outer Stack.
type Value struct {
	Kind ValueKind

	Int     goarith.Number
	Str     string
	Bool    bool
	Elems   []*Value // VTuple: flat encoding: [marker, ...members]
	Count   int      // vListMarker: number of flattened slots that follow
	Closure *Closure
	Eta     *Closure
	Builtin string
	Partial *PartialCall
}

// PartialCall is VPartial's payload: a built-in waiting on more
// arguments, with the ones already supplied.
type PartialCall struct {
	Name string
	Args []*Value
}

// Closure is a suspended lambda: the environment it closed over, its
// bound variable (or comma-tuple of variables, for multi-arg lambdas
// produced directly by the flattener rather than via currying), and the
// control-structure index its body was flattened into.
type Closure struct {
	BoundVar []string
	CS       int
	Env      *Environment
}

func IntValue(n goarith.Number) *Value { return &Value{Kind: VInt, Int: n} }
func StringValue(s string) *Value      { return &Value{Kind: VString, Str: s} }
func BoolValue(b bool) *Value          { return &Value{Kind: VBool, Bool: b} }
func DummyValue() *Value               { return &Value{Kind: VDummy} }
func ClosureValue(c *Closure) *Value   { return &Value{Kind: VClosure, Closure: c} }
func EtaValue(c *Closure) *Value       { return &Value{Kind: VEta, Eta: c} }
func BuiltinValue(name string) *Value  { return &Value{Kind: VBuiltin, Builtin: name} }

// flatEncode returns how v contributes to a parent tuple's flattened
// Elems: itself for a scalar, its own (already flat) Elems for a nested
// tuple.
func flatEncode(v *Value) []*Value {
	if v.Kind == VTuple {
		return v.Elems
	}
	return []*Value{v}
}

// NewTuple builds a tuple Value over members, flattening any member that
// is itself a tuple into the parent's own Elems via lo.FlatMap rather
// than nesting a Value inside a Value.
func NewTuple(members ...*Value) *Value {
	flat := lo.FlatMap(members, func(v *Value, _ int) []*Value { return flatEncode(v) })
	marker := &Value{Kind: vListMarker, Count: len(flat)}
	return &Value{Kind: VTuple, Elems: append([]*Value{marker}, flat...)}
}

// Order returns the number of top-level elements tuple holds.
func Order(tuple *Value) int {
	requireTuple("Order", tuple)
	elems := tuple.Elems
	n, i := 0, 1
	for i <= elems[0].Count {
		n++
		i += elementSpan(elems, i)
	}
	return n
}

// Index returns the 1-based i-th top-level element of tuple: a nested
// sub-tuple comes back as its own VTuple Value, a scalar as itself.
func Index(tuple *Value, i int) *Value {
	requireTuple("index", tuple)
	elems := tuple.Elems
	pos, n := 1, 0
	for pos <= elems[0].Count {
		span := elementSpan(elems, pos)
		n++
		if n == i {
			if span == 1 {
				return elems[pos]
			}
			return &Value{Kind: VTuple, Elems: elems[pos : pos+span]}
		}
		pos += span
	}
	fail(&IndexError{Msg: "tuple index out of range"})
	panic("unreachable")
}

func requireTuple(op string, v *Value) {
	if v.Kind != VTuple {
		fail(&TypeError{Msg: op + " expects a tuple"})
	}
}

// elementSpan returns how many flat slots the element starting at pos
// occupies within a tuple's Elems: 1 for a scalar, 1+Count for a nested
// tuple's marker plus its own flattened interior.
func elementSpan(elems []*Value, pos int) int {
	if elems[pos].Kind == vListMarker {
		return 1 + elems[pos].Count
	}
	return 1
}
