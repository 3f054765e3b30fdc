// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandvm

import (
	"sort"
	"strconv"

	"github.com/pkg/errors"
)

// refPending references the (not yet known) output of a gate of the source
// circuit during lowering.
const refPending RefType = 0xff

// A NandNode is a two input NAND gate in a LoweredGraph.
//
type NandNode struct {
	Name string
	A, B Ref
}

// A LoweredGraph is a circuit made exclusively of NAND gates. Gate references
// in nodes and outputs index Nodes. Nodes are in declaration order: the order
// of the source gates, then the order in which lowering rules created them.
//
type LoweredGraph struct {
	Inputs  []string
	Nodes   []NandNode
	Outputs []Output
}

// An Emitter is passed to lowering rules to create NAND nodes on behalf of a
// single gate.
//
type Emitter struct {
	g     *LoweredGraph
	name  string
	first int
}

// Nand creates a new NAND node and returns a reference to its output.
//
func (e *Emitter) Nand(a, b Ref) Ref {
	i := len(e.g.Nodes)
	e.g.Nodes = append(e.g.Nodes, NandNode{
		Name: e.name + "#" + strconv.Itoa(i-e.first),
		A:    a,
		B:    b,
	})
	return GateRef(i)
}

// Not returns Nand(a, a).
//
func (e *Emitter) Not(a Ref) Ref { return e.Nand(a, a) }

// And returns Not(Nand(a, b)).
//
func (e *Emitter) And(a, b Ref) Ref { return e.Not(e.Nand(a, b)) }

// Or returns Nand(Not(a), Not(b)).
//
func (e *Emitter) Or(a, b Ref) Ref { return e.Nand(e.Not(a), e.Not(b)) }

// Xor returns a 4 NAND exclusive or.
//
func (e *Emitter) Xor(a, b Ref) Ref {
	nab := e.Nand(a, b)
	return e.Nand(e.Nand(a, nab), e.Nand(b, nab))
}

// Lower rewrites every gate of c reachable from an output into NAND nodes
// using the lowering rules in r. If r is nil, the circuit's registry is used.
//
// Input and output names are preserved. The last node created for a gate is
// named after that gate, other nodes get a "name#n" identifier.
//
// The returned error wraps an *UnsupportedGateKindError if a gate kind has no
// lowering rule in r.
//
func Lower(c *Circuit, r *Registry) (*LoweredGraph, error) {
	if r == nil {
		r = c.reg
	}
	lg := &LoweredGraph{
		Inputs: c.Inputs(),
	}

	live := c.Live()
	sort.Ints(live)

	out := make([]Ref, len(c.gates))
	for _, gi := range live {
		g := &c.gates[gi]
		s, ok := r.Lookup(g.Kind)
		if !ok || s.Lower == nil {
			return nil, errors.WithStack(&UnsupportedGateKindError{g.Name, g.Kind})
		}
		if s.Arity != len(g.Operands) {
			return nil, errors.WithStack(&ArityMismatchError{g.Name, g.Kind, s.Arity, len(g.Operands)})
		}
		in := make([]Ref, len(g.Operands))
		for i, op := range g.Operands {
			if op.Type == RefGate {
				op.Type = refPending
			}
			in[i] = op
		}
		e := Emitter{g: lg, name: g.Name, first: len(lg.Nodes)}
		res := s.Lower(&e, in)
		if err := checkRule(g, lg, e.first, res); err != nil {
			return nil, err
		}
		if res.Type == RefGate {
			lg.Nodes[res.Index].Name = g.Name
		}
		out[gi] = res
	}

	resolve := func(r Ref) Ref {
		// chains end since the source circuit is acyclic.
		for r.Type == refPending {
			r = out[r.Index]
		}
		return r
	}
	for i := range lg.Nodes {
		n := &lg.Nodes[i]
		n.A, n.B = resolve(n.A), resolve(n.B)
	}
	lg.Outputs = make([]Output, len(c.outputs))
	for i, o := range c.outputs {
		src := o.Src
		if src.Type == RefGate {
			src.Type = refPending
		}
		lg.Outputs[i] = Output{o.Name, resolve(src)}
	}
	return lg, nil
}

// checkRule checks the nodes created by the lowering rule of gate g, starting
// at index first, and the reference res it returned. Gate references must
// point to nodes created by the rule itself, before the referencing node.
// Pending references must designate operands of g.
//
func checkRule(g *Gate, lg *LoweredGraph, first int, res Ref) error {
	valid := func(r Ref, end int) bool {
		switch r.Type {
		case RefInput:
			return r.Index >= 0 && r.Index < len(lg.Inputs)
		case RefGate:
			return r.Index >= first && r.Index < end
		case refPending:
			for _, op := range g.Operands {
				if op.Type == RefGate && op.Index == r.Index {
					return true
				}
			}
		}
		return false
	}
	for i := first; i < len(lg.Nodes); i++ {
		nd := &lg.Nodes[i]
		if !valid(nd.A, i) || !valid(nd.B, i) {
			return errors.WithStack(&InvariantError{"lowering rule for " + string(g.Kind) +
				" created node " + strconv.Quote(nd.Name) + " with an invalid operand"})
		}
	}
	if res.Type == RefGate && res.Index >= 0 && res.Index < first {
		return errors.WithStack(&InvariantError{"lowering rule for " + string(g.Kind) +
			" returned a node it did not create"})
	}
	if !valid(res, len(lg.Nodes)) {
		return errors.WithStack(&InvariantError{"lowering rule for " + string(g.Kind) +
			" returned invalid reference " + res.String()})
	}
	return nil
}
