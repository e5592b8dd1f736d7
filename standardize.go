package main

import "strconv"

// Standardize rewrites an AST into its Standardized Tree (ST) per
// spec.md §4.3. It works post-order: children are standardized first, so
// every rewrite rule below can assume its own children are already in
// their final "=", "lambda", "gamma" shape before it fires.
func Standardize(n *Node) *Node {
	return standardize(n)
}

func standardize(n *Node) *Node {
	if n.IsLeaf() {
		return n
	}

	children := make([]*Node, len(n.Children))
	for i, c := range n.Children {
		children[i] = standardize(c)
	}

	switch n.Label {
	case "let":
		requireArity("let", children, 2)
		d := children[0]
		requireBinding("let", d)
		return Internal("gamma", Internal("lambda", d.Children[0], children[1]), d.Children[1])

	case "where":
		requireArity("where", children, 2)
		d := children[1]
		requireBinding("where", d)
		return Internal("gamma", Internal("lambda", d.Children[0], children[0]), d.Children[1])

	case "fcn_form":
		if len(children) < 3 {
			fail(&StandardizerError{Msg: "fcn_form needs a name, at least one bound variable and a body"})
		}
		name := children[0]
		params := children[1 : len(children)-1]
		body := children[len(children)-1]
		return Internal("=", name, curryLambda(params, body))

	case "lambda":
		if len(children) < 2 {
			fail(&StandardizerError{Msg: "lambda needs at least one bound variable and a body"})
		}
		params := children[:len(children)-1]
		body := children[len(children)-1]
		return curryLambda(params, body)

	case "within":
		requireArity("within", children, 2)
		inner, outer := children[0], children[1]
		requireBinding("within", inner)
		requireBinding("within", outer)
		return Internal("=", outer.Children[0],
			Internal("gamma", Internal("lambda", inner.Children[0], outer.Children[1]), inner.Children[1]))

	case "and":
		if len(children) < 2 {
			fail(&StandardizerError{Msg: "and needs at least two simultaneous definitions"})
		}
		names := make([]*Node, len(children))
		values := make([]*Node, len(children))
		for i, d := range children {
			requireBinding("and", d)
			names[i] = d.Children[0]
			values[i] = d.Children[1]
		}
		return Internal("=", Internal(",", names...), Internal("tau", values...))

	case "rec":
		requireArity("rec", children, 1)
		d := children[0]
		requireBinding("rec", d)
		name, body := d.Children[0], d.Children[1]
		return Internal("=", name, Internal("gamma", Leaf("identifier", "Y*"), Internal("lambda", name, body)))

	case "@":
		requireArity("@", children, 3)
		a, op, b := children[0], children[1], children[2]
		return Internal("gamma", Internal("gamma", op, a), b)

	default:
		return Internal(n.Label, children...)
	}
}

// curryLambda turns lambda(V1..Vn, E) into the right-nested binary form
// lambda(V1, lambda(V2, ... lambda(Vn, E))).
func curryLambda(params []*Node, body *Node) *Node {
	if len(params) == 1 {
		return Internal("lambda", params[0], body)
	}
	return Internal("lambda", params[0], curryLambda(params[1:], body))
}

func requireArity(label string, children []*Node, n int) {
	if len(children) != n {
		fail(&StandardizerError{Msg: label + " expects " + strconv.Itoa(n) + " children, got " + strconv.Itoa(len(children))})
	}
}

// requireBinding checks d looks like an "=" node: a name (or comma-tuple)
// and a value, the shape every D-production must reduce to by the time
// let/where/within/rec/and see it.
func requireBinding(context string, d *Node) {
	if d.Label != "=" || len(d.Children) != 2 {
		fail(&StandardizerError{Msg: context + " expected a binding, got " + d.Label})
	}
}

