// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandvm

// Built-in gate kinds.
//
const (
	Nand   Kind = "Nand"
	Not    Kind = "Not"
	Buffer Kind = "Buffer"
	And    Kind = "And"
	Or     Kind = "Or"
	Nor    Kind = "Nor"
	Xor    Kind = "Xor"
	Xnor   Kind = "Xnor"
	Mux    Kind = "Mux"
	// DFF is a clocked data flip flop. It is registered with no lowering
	// rule: stateful parts need a previous-tick register file that the
	// single pass engine does not have, so compiling a circuit that uses
	// one fails with an UnsupportedGateKindError.
	DFF Kind = "DFF"
)

// DefaultRegistry holds the built-in gate kinds.
//
//	Nand(a, b)        = !(a && b)
//	Not(in)           = !in
//	Buffer(in)        = in
//	And(a, b)         = a && b
//	Or(a, b)          = a || b
//	Nor(a, b)         = !(a || b)
//	Xor(a, b)         = a && !b || !a && b
//	Xnor(a, b)        = a && b || !a && !b
//	Mux(a, b, sel)    = if sel { b } else { a }
//	DFF(in)           = in(t-1), not compilable
//
var DefaultRegistry = newDefaultRegistry()

func newDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, s := range builtins {
		r.MustRegister(s)
	}
	return r
}

var builtins = []KindSpec{
	{Nand, 2,
		func(in []bool) bool { return !(in[0] && in[1]) },
		func(e *Emitter, in []Ref) Ref { return e.Nand(in[0], in[1]) }},
	{Not, 1,
		func(in []bool) bool { return !in[0] },
		func(e *Emitter, in []Ref) Ref { return e.Not(in[0]) }},
	{Buffer, 1,
		func(in []bool) bool { return in[0] },
		func(e *Emitter, in []Ref) Ref { return e.Not(e.Not(in[0])) }},
	{And, 2,
		func(in []bool) bool { return in[0] && in[1] },
		func(e *Emitter, in []Ref) Ref { return e.And(in[0], in[1]) }},
	{Or, 2,
		func(in []bool) bool { return in[0] || in[1] },
		func(e *Emitter, in []Ref) Ref { return e.Or(in[0], in[1]) }},
	{Nor, 2,
		func(in []bool) bool { return !(in[0] || in[1]) },
		func(e *Emitter, in []Ref) Ref { return e.Not(e.Or(in[0], in[1])) }},
	{Xor, 2,
		func(in []bool) bool { return in[0] && !in[1] || !in[0] && in[1] },
		func(e *Emitter, in []Ref) Ref { return e.Xor(in[0], in[1]) }},
	{Xnor, 2,
		func(in []bool) bool { return in[0] && in[1] || !in[0] && !in[1] },
		lowerXnor},
	{Mux, 3,
		func(in []bool) bool {
			if in[2] {
				return in[1]
			}
			return in[0]
		},
		lowerMux},
	{DFF, 1, nil, nil},
}

func lowerXnor(e *Emitter, in []Ref) Ref {
	a, b := in[0], in[1]
	return e.Nand(e.Or(a, b), e.Nand(a, b))
}

// out = (a && !sel) || (b && sel)
func lowerMux(e *Emitter, in []Ref) Ref {
	a, b, sel := in[0], in[1], in[2]
	w0 := e.Nand(a, e.Not(sel))
	w1 := e.Nand(b, sel)
	return e.Nand(w0, w1)
}
