package main

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/nukata/goarith"
)

// builtinNames lists every identifier spec.md §4.7 reserves, bound once
// in the root Environment so an ordinary CIdent lookup finds them.
var builtinNames = []string{
	"Print", "print",
	"Isinteger", "Isstring", "Istuple", "Isempty",
	"Order", "Conc", "Stem", "Stern", "ItoS", "Y*",
}

// RootEnvironment builds the Environment every program runs under: the
// fixed built-ins plus "dummy" and "nil", the two identifiers RPAL
// programs can reference without ever having bound them.
func RootEnvironment() *Environment {
	names := make([]string, 0, len(builtinNames)+2)
	values := make([]*Value, 0, len(builtinNames)+2)
	for _, n := range builtinNames {
		names = append(names, n)
		values = append(values, BuiltinValue(n))
	}
	names = append(names, "dummy", "nil")
	values = append(values, DummyValue(), NewTuple())
	return NewRootEnvironment().Extend(names, values)
}

// ApplyBuiltin applies a unary built-in (every one of them except Conc,
// which needs a second argument and so produces a VPartial instead of a
// result) to arg.
func ApplyBuiltin(m *Machine, name string, arg *Value) *Value {
	switch name {
	case "Print", "print":
		fmt.Fprint(m.out, Stringify(arg))
		return DummyValue()
	case "Isinteger":
		return BoolValue(arg.Kind == VInt)
	case "Isstring":
		return BoolValue(arg.Kind == VString)
	case "Istuple":
		return BoolValue(arg.Kind == VTuple)
	case "Isempty":
		requireTuple("Isempty", arg)
		return BoolValue(Order(arg) == 0)
	case "Order":
		requireTuple("Order", arg)
		return IntValue(toNumber(big.NewInt(int64(Order(arg)))))
	case "Stem":
		requireString("Stem", arg)
		if len(arg.Str) == 0 {
			return StringValue("")
		}
		return StringValue(arg.Str[:1])
	case "Stern":
		requireString("Stern", arg)
		if len(arg.Str) == 0 {
			return StringValue("")
		}
		return StringValue(arg.Str[1:])
	case "ItoS":
		if arg.Kind != VInt {
			fail(&TypeError{Msg: "ItoS expects an integer"})
		}
		return StringValue(fmt.Sprintf("%v", arg.Int))
	case "Y*":
		if arg.Kind != VClosure {
			fail(&TypeError{Msg: "Y* expects a function"})
		}
		return EtaValue(arg.Closure)
	case "Conc":
		requireString("Conc", arg)
		return &Value{Kind: VPartial, Partial: &PartialCall{Name: "Conc", Args: []*Value{arg}}}
	default:
		fail(&UnboundIdentifier{Name: name})
		panic("unreachable")
	}
}

// CompletePartial supplies the final argument a partially-applied
// built-in (currently only Conc, the one built-in with arity two) was
// waiting on.
func CompletePartial(m *Machine, partial *Value, arg *Value) *Value {
	switch partial.Partial.Name {
	case "Conc":
		requireString("Conc", arg)
		return StringValue(partial.Partial.Args[0].Str + arg.Str)
	default:
		fail(&TypeError{Msg: "unknown partial application " + partial.Partial.Name})
		panic("unreachable")
	}
}

func requireString(op string, v *Value) {
	if v.Kind != VString {
		fail(&TypeError{Msg: op + " expects a string"})
	}
}

// applyOp implements every operator the flattener emits as COp:
// arithmetic, comparison, logical, negation, and aug.
func (m *Machine) applyOp(name string) {
	switch name {
	case "not":
		a := m.pop()
		requireBool("not", a)
		m.push(BoolValue(!a.Bool))
		return
	case "neg":
		a := m.pop()
		requireInt("neg", a)
		m.push(IntValue(toNumber(new(big.Int).Neg(toBigInt(a.Int)))))
		return
	}

	b := m.pop()
	a := m.pop()

	switch name {
	case "+":
		requireInt("+", a)
		requireInt("+", b)
		m.push(IntValue(a.Int.Add(b.Int)))
	case "-":
		requireInt("-", a)
		requireInt("-", b)
		m.push(IntValue(a.Int.Sub(b.Int)))
	case "*":
		requireInt("*", a)
		requireInt("*", b)
		m.push(IntValue(a.Int.Mul(b.Int)))
	case "/":
		requireInt("/", a)
		requireInt("/", b)
		bi := toBigInt(b.Int)
		if bi.Sign() == 0 {
			fail(&TypeError{Msg: "division by zero"})
		}
		m.push(IntValue(toNumber(new(big.Int).Quo(toBigInt(a.Int), bi))))
	case "**":
		requireInt("**", a)
		requireInt("**", b)
		exp := toBigInt(b.Int)
		if exp.Sign() < 0 {
			fail(&TypeError{Msg: "** expects a non-negative exponent"})
		}
		m.push(IntValue(toNumber(new(big.Int).Exp(toBigInt(a.Int), exp, nil))))
	case "gr":
		requireInt("gr", a)
		requireInt("gr", b)
		m.push(BoolValue(a.Int.Cmp(b.Int) > 0))
	case "ge":
		requireInt("ge", a)
		requireInt("ge", b)
		m.push(BoolValue(a.Int.Cmp(b.Int) >= 0))
	case "ls":
		requireInt("ls", a)
		requireInt("ls", b)
		m.push(BoolValue(a.Int.Cmp(b.Int) < 0))
	case "le":
		requireInt("le", a)
		requireInt("le", b)
		m.push(BoolValue(a.Int.Cmp(b.Int) <= 0))
	case "eq":
		m.push(BoolValue(valuesEqual(a, b)))
	case "ne":
		m.push(BoolValue(!valuesEqual(a, b)))
	case "or":
		requireBool("or", a)
		requireBool("or", b)
		m.push(BoolValue(a.Bool || b.Bool))
	case "&":
		requireBool("&", a)
		requireBool("&", b)
		m.push(BoolValue(a.Bool && b.Bool))
	case "aug":
		requireTuple("aug", a)
		m.push(a.augment(b))
	default:
		fail(&TypeError{Msg: "unknown operator " + name})
	}
}

// augment returns a new tuple with b appended as t's new last element.
func (t *Value) augment(b *Value) *Value {
	n := Order(t)
	members := make([]*Value, n+1)
	for i := 1; i <= n; i++ {
		members[i-1] = Index(t, i)
	}
	members[n] = b
	return NewTuple(members...)
}

func requireInt(op string, v *Value) {
	if v.Kind != VInt {
		fail(&TypeError{Msg: op + " expects an integer"})
	}
}

func requireBool(op string, v *Value) {
	if v.Kind != VBool {
		fail(&TypeError{Msg: op + " expects a boolean"})
	}
}

func valuesEqual(a, b *Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case VInt:
		return a.Int.Cmp(b.Int) == 0
	case VString:
		return a.Str == b.Str
	case VBool:
		return a.Bool == b.Bool
	case VDummy:
		return true
	case VTuple:
		if Order(a) != Order(b) {
			return false
		}
		for i := 1; i <= Order(a); i++ {
			if !valuesEqual(Index(a, i), Index(b, i)) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// toBigInt and toNumber bridge goarith.Number (proven by the teacher to
// support Add/Sub/Mul/Cmp, but not division, exponentiation or
// negation) and math/big.Int, which RPAL's "/", "**" and "neg" need.
// The round trip goes through the same decimal text goarith itself
// prints through fmt's default verb (teacher's own Stringify relies on
// exactly this for numbers), so it never depends on unproven API.
func toBigInt(n goarith.Number) *big.Int {
	z := new(big.Int)
	if _, ok := z.SetString(fmt.Sprintf("%v", n), 10); !ok {
		fail(&TypeError{Msg: "malformed integer value"})
	}
	return z
}

func toNumber(z *big.Int) goarith.Number {
	return goarith.AsNumber(z)
}

func mustInt(v *Value) int {
	if v.Kind != VInt {
		fail(&TypeError{Msg: "expected an integer"})
	}
	i, err := strconv.Atoi(fmt.Sprintf("%v", v.Int))
	if err != nil {
		fail(&TypeError{Msg: "index too large"})
	}
	return i
}
