package main

import (
	"io"

	"github.com/nukata/goarith"
)

const (
	cEnvMarker CtrlOp = 100 + iota
	cPushValue
)

// Machine is the CSE (Control-Stack-Environment) abstract machine: a
// runtime control stack of CtrlItem (seeded from a Control Structure and
// growing with env-restore markers as applications nest), a value
// Stack, and the current Environment. It is the direct analogue of the
// teacher's own Evaluate loop over a Continuation, generalized from one
// fixed built-in dispatch to the Control Structure table Flatten
// produces.
type Machine struct {
	css     ControlStructures
	control []CtrlItem
	stack   []*Value
	env     *Environment
	out     io.Writer
}

// NewMachine builds a machine ready to run Control Structure 0 of css,
// with the built-in environment rooted beneath env.
func NewMachine(css ControlStructures, env *Environment, out io.Writer) *Machine {
	return &Machine{css: css, env: env, out: out}
}

// Run drives the machine to completion and returns the single value left
// on the Stack — the value of the program as a whole.
func (m *Machine) Run() *Value {
	m.pushCS(0)
	for len(m.control) > 0 {
		item := m.popControl()
		m.step(item)
	}
	if len(m.stack) != 1 {
		fail(&TypeError{Msg: "program did not reduce to a single value"})
	}
	return m.stack[0]
}

func (m *Machine) pushCS(cs int) {
	items := m.css[cs]
	for i := len(items) - 1; i >= 0; i-- {
		m.control = append(m.control, items[i])
	}
}

func (m *Machine) popControl() CtrlItem {
	n := len(m.control) - 1
	item := m.control[n]
	m.control = m.control[:n]
	return item
}

func (m *Machine) push(v *Value) { m.stack = append(m.stack, v) }

func (m *Machine) pop() *Value {
	n := len(m.stack) - 1
	v := m.stack[n]
	m.stack = m.stack[:n]
	return v
}

func (m *Machine) step(item CtrlItem) {
	switch item.Op {
	case CIdent:
		m.push(m.lookup(item.Val.(string)))

	case CLiteralInt:
		m.push(IntValue(item.Val.(goarith.Number)))

	case CLiteralString:
		m.push(StringValue(item.Val.(string)))

	case CLambda:
		arg := item.Val.(*LambdaArg)
		m.push(ClosureValue(&Closure{BoundVar: arg.Params, CS: arg.CS, Env: m.env}))

	case CGamma:
		m.applyGamma()

	case COp:
		m.applyOp(item.Val.(string))

	case CTau:
		n := item.Val.(int)
		members := make([]*Value, n)
		for i := n - 1; i >= 0; i-- {
			members[i] = m.pop()
		}
		m.push(NewTuple(members...))

	case CBeta:
		arg := item.Val.(*BetaArg)
		cond := m.pop()
		var taken bool
		switch cond.Kind {
		case VBool:
			taken = cond.Bool
		case VInt:
			taken = mustInt(cond) != 0
		default:
			fail(&TypeError{Msg: "condition must be a boolean or integer"})
		}
		if taken {
			m.pushCS(arg.ThenCS)
		} else {
			m.pushCS(arg.ElseCS)
		}

	case cEnvMarker:
		m.env = item.Val.(*Environment)

	case cPushValue:
		m.push(item.Val.(*Value))
	}
}

func (m *Machine) lookup(name string) *Value {
	if v, ok := m.env.Lookup(name); ok {
		return v
	}
	fail(&UnboundIdentifier{Name: name})
	panic("unreachable")
}

// applyClosure binds rand against c's parameter name(s), switches into
// c's environment and body, and arranges for the previous environment
// to be restored once the body's Control Structure is fully consumed —
// the machine's own analogue of the teacher's SetNewEnvOp/RestoreEnvOp
// pair.
func (m *Machine) applyClosure(c *Closure, rand *Value) {
	var values []*Value
	if len(c.BoundVar) == 1 {
		values = []*Value{rand}
	} else {
		if rand.Kind != VTuple || Order(rand) != len(c.BoundVar) {
			fail(&TypeError{Msg: "function expects a tuple of matching width"})
		}
		values = make([]*Value, len(c.BoundVar))
		for i := range values {
			values[i] = Index(rand, i+1)
		}
	}
	m.control = append(m.control, CtrlItem{Op: cEnvMarker, Val: m.env})
	m.env = c.Env.Extend(c.BoundVar, values)
	m.pushCS(c.CS)
}

// applyGamma implements spec.md §4.5's application rule, dispatching on
// what the rator turns out to be: a closure (ordinary application), an
// eta (Y*-built recursive closure — re-apply to itself, then to rand,
// matching Y* f = f (Y* f)), a tuple (tuples double as functions from
// index to element), or a built-in.
func (m *Machine) applyGamma() {
	rand := m.pop()
	rator := m.pop()
	switch rator.Kind {
	case VClosure:
		m.applyClosure(rator.Closure, rand)

	case VEta:
		// Schedule "apply the eta's result to rand" to run once the
		// inner self-application below has fully unwound. Control pops
		// from the end, so the item appended last runs first: append
		// CGamma before cPushValue so cPushValue's push of rand happens
		// immediately before Gamma fires, not after.
		m.control = append(m.control, CtrlItem{Op: CGamma})
		m.control = append(m.control, CtrlItem{Op: cPushValue, Val: rand})
		m.applyClosure(rator.Eta, EtaValue(rator.Eta))

	case VTuple:
		if rand.Kind != VInt {
			fail(&TypeError{Msg: "a tuple applied as a function needs an integer index"})
		}
		m.push(Index(rator, mustInt(rand)))

	case VBuiltin:
		m.push(ApplyBuiltin(m, rator.Builtin, rand))

	case VPartial:
		m.push(CompletePartial(m, rator, rand))

	default:
		fail(&TypeError{Msg: "value is not applicable"})
	}
}
