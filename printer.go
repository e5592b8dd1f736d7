package main

import (
	"fmt"
	"strconv"
	"strings"
)

// Stringify renders a runtime Value the way Print (spec.md §4.7) does:
// integers and strings print bare, booleans print as "true"/"false", an
// empty tuple prints as "nil" (original_source/CSE.h's convention for
// the empty-subtuple case, since RPAL has no separate nil literal once
// "nil" has already lexed down to a plain identifier), and a non-empty
// tuple prints its elements comma-joined and parenthesized.
func Stringify(v *Value) string {
	switch v.Kind {
	case VInt:
		return fmt.Sprintf("%v", v.Int)
	case VString:
		return v.Str
	case VBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case VDummy:
		return ""
	case VTuple:
		n := Order(v)
		if n == 0 {
			return "nil"
		}
		parts := make([]string, n)
		for i := 1; i <= n; i++ {
			parts[i-1] = Stringify(Index(v, i))
		}
		return "(" + strings.Join(parts, ", ") + ")"
	case VClosure:
		return closureString(v.Closure)
	case VEta:
		return closureString(v.Eta)
	case VBuiltin:
		return "[function " + v.Builtin + "]"
	default:
		return ""
	}
}

// closureString renders a closure as spec.md §4.7 prescribes:
// "[lambda closure: v: k]", where v is the closure's first bound
// variable name and k the Control Structure index its body flattened
// into.
func closureString(c *Closure) string {
	return "[lambda closure: " + c.BoundVar[0] + ": " + strconv.Itoa(c.CS) + "]"
}
