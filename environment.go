package main

import "golang.org/x/exp/slices"

// Environment is a parent-linked binding frame, the same shape as the
// teacher's own Environment: a small local table plus a pointer to the
// frame it extends, so lookups walk outward until a binding or the root
// is found. A frame binds either one name to one value (the common case,
// a lambda applied to a single argument) or several names at once (a
// lambda whose bound variable was a comma-tuple, destructured against a
// tuple argument).
type Environment struct {
	names  []string
	values []*Value
	parent *Environment
}

// NewRootEnvironment returns the empty outermost frame that built-ins are
// looked up underneath.
func NewRootEnvironment() *Environment {
	return &Environment{}
}

// Extend returns a new frame binding names to values in front of env.
func (env *Environment) Extend(names []string, values []*Value) *Environment {
	return &Environment{names: names, values: values, parent: env}
}

// Lookup walks env outward for name, returning its bound value. An
// inner frame's binding shadows an outer one of the same name, since the
// walk stops at the first match.
func (env *Environment) Lookup(name string) (*Value, bool) {
	for e := env; e != nil; e = e.parent {
		if i := slices.Index(e.names, name); i >= 0 {
			return e.values[i], true
		}
	}
	return nil, false
}
