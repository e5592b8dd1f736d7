package main

// This file wires the lexer, recursive-descent parser, standardizer,
// flattener and CSE (Control-Stack-Environment) machine together behind
// the single Evaluate entry point.

import "io"

// Evaluate parses, standardizes, flattens and executes source, writing
// whatever Print/print calls produce to out. It returns an error from
// the seven-way taxonomy in errors.go if any stage fails; a panic from
// deep inside parsing or execution never escapes Evaluate, since every
// stage runs under safely's recover-once boundary.
func Evaluate(source string, out io.Writer) error {
	return safely(func() {
		ast, err := Parse(source)
		if err != nil {
			fail(err)
		}
		st := Standardize(ast)
		css, _ := Flatten(st)
		m := NewMachine(css, RootEnvironment(), out)
		m.Run()
	})
}
