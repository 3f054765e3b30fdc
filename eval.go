// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandvm

import (
	"github.com/pkg/errors"
)

// Eval evaluates the circuit directly from the truth functions of its gate
// kinds, without lowering it to NAND gates. It is much slower than running a
// compiled Program and is intended as a reference for testing.
//
func (c *Circuit) Eval(immediates []bool) (map[string]bool, error) {
	if len(immediates) != len(c.inputs) {
		return nil, errors.WithStack(&InputArityMismatchError{len(c.inputs), len(immediates)})
	}
	vals := make([]bool, len(c.gates))
	get := func(r Ref) bool {
		if r.Type == RefInput {
			return immediates[r.Index]
		}
		return vals[r.Index]
	}
	var in []bool
	for _, gi := range c.order {
		g := &c.gates[gi]
		s, ok := c.reg.Lookup(g.Kind)
		if !ok || s.Eval == nil {
			return nil, errors.WithStack(&UnsupportedGateKindError{g.Name, g.Kind})
		}
		if s.Arity != len(g.Operands) {
			return nil, errors.WithStack(&ArityMismatchError{g.Name, g.Kind, s.Arity, len(g.Operands)})
		}
		in = in[:0]
		for _, op := range g.Operands {
			in = append(in, get(op))
		}
		vals[gi] = s.Eval(in)
	}
	out := make(map[string]bool, len(c.outputs))
	for _, o := range c.outputs {
		out[o.Name] = get(o.Src)
	}
	return out, nil
}
