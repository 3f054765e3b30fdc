// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandvm

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// RefType tells what a Ref points to.
//
type RefType uint8

// Reference types.
//
const (
	RefNone RefType = iota
	RefInput
	RefGate
)

// A Ref references either a circuit input (by input slot) or the output of a
// gate (by gate index in its graph).
//
type Ref struct {
	Type  RefType
	Index int
}

// InputRef returns a reference to input slot i.
//
func InputRef(i int) Ref { return Ref{RefInput, i} }

// GateRef returns a reference to the output of gate i.
//
func GateRef(i int) Ref { return Ref{RefGate, i} }

func (r Ref) String() string {
	switch r.Type {
	case RefInput:
		return "in" + strconv.Itoa(r.Index)
	case RefGate:
		return "g" + strconv.Itoa(r.Index)
	case refPending:
		return "pending" + strconv.Itoa(r.Index)
	}
	return "<nil>"
}

// A Gate is a gate in a Circuit.
//
type Gate struct {
	Name     string
	Kind     Kind
	Operands []Ref
}

// An Output exposes the value of a gate or input under a name.
//
type Output struct {
	Name string
	Src  Ref
}

// Circuit is a validated, immutable gate graph. A Circuit is obtained by
// calling Builder.Finalize.
//
type Circuit struct {
	reg     *Registry
	inputs  []string
	gates   []Gate
	outputs []Output
	names   map[string]Ref
	// gates reachable from an output, in dependency order.
	order []int
}

// Registry returns the registry the circuit was validated against.
//
func (c *Circuit) Registry() *Registry { return c.reg }

// Inputs returns the input names, indexed by input slot.
//
func (c *Circuit) Inputs() []string { return append([]string(nil), c.inputs...) }

// Gates returns the circuit's gates in declaration order.
//
func (c *Circuit) Gates() []Gate {
	gs := make([]Gate, len(c.gates))
	for i, g := range c.gates {
		g.Operands = append([]Ref(nil), g.Operands...)
		gs[i] = g
	}
	return gs
}

// Outputs returns the circuit's outputs in declaration order.
//
func (c *Circuit) Outputs() []Output { return append([]Output(nil), c.outputs...) }

// Lookup returns the reference bound to an input or gate name.
//
func (c *Circuit) Lookup(name string) (Ref, bool) {
	r, ok := c.names[name]
	return r, ok
}

// Live returns the indices of the gates reachable from an output, in an order
// where every gate comes after the gates it depends on.
//
func (c *Circuit) Live() []int { return append([]int(nil), c.order...) }

type decl struct {
	name string
	kind Kind
	ops  []string
}

// A Builder is used to incrementally declare a circuit. Operands and outputs
// reference inputs and gates by name and may reference gates declared later.
// Nothing is checked until Finalize.
//
// A half adder can be built like this:
//
//	b := nandvm.NewBuilder()
//	b.Input("a", "b")
//	b.Gate("s", nandvm.Xor, "a", "b")
//	b.Gate("c", nandvm.And, "a", "b")
//	b.Output("sum", "s")
//	b.Output("carry", "c")
//	c, err := b.Finalize()
//
type Builder struct {
	reg     *Registry
	inputs  []string
	gates   []decl
	outputs [][2]string
	tmp     int
}

// NewBuilder returns a new Builder using the DefaultRegistry.
//
func NewBuilder() *Builder {
	return NewBuilderWith(DefaultRegistry)
}

// NewBuilderWith returns a new Builder using the given registry to check gate
// arities.
//
func NewBuilderWith(r *Registry) *Builder {
	return &Builder{reg: r}
}

// Input declares circuit inputs. Input slots are assigned in declaration
// order.
//
func (b *Builder) Input(names ...string) {
	b.inputs = append(b.inputs, names...)
}

// Gate declares a gate of the given kind.
//
func (b *Builder) Gate(name string, kind Kind, operands ...string) {
	b.gates = append(b.gates, decl{name, kind, append([]string(nil), operands...)})
}

// Output exposes the input or gate named ref as a circuit output.
//
func (b *Builder) Output(name, ref string) {
	b.outputs = append(b.outputs, [2]string{name, ref})
}

// Temp declares a gate with a generated name and returns that name. Generated
// names start with "__" and do not collide with each other.
//
func (b *Builder) Temp(kind Kind, operands ...string) string {
	name := "__" + strconv.Itoa(b.tmp)
	b.tmp++
	b.Gate(name, kind, operands...)
	return name
}

// Finalize validates the declarations and returns an immutable Circuit.
//
// The returned error wraps one of *InvalidNameError, *DuplicateNameError,
// *UnknownReferenceError, *ArityMismatchError or *CyclicDependencyError.
//
func (b *Builder) Finalize() (*Circuit, error) {
	c := &Circuit{
		reg:     b.reg,
		inputs:  append([]string(nil), b.inputs...),
		gates:   make([]Gate, len(b.gates)),
		outputs: make([]Output, len(b.outputs)),
		names:   make(map[string]Ref, len(b.inputs)+len(b.gates)),
	}

	for i, n := range b.inputs {
		if !validName(n) {
			return nil, errors.WithStack(&InvalidNameError{n})
		}
		if _, ok := c.names[n]; ok {
			return nil, errors.WithStack(&DuplicateNameError{n})
		}
		c.names[n] = InputRef(i)
	}
	for i, d := range b.gates {
		if !validName(d.name) {
			return nil, errors.WithStack(&InvalidNameError{d.name})
		}
		if _, ok := c.names[d.name]; ok {
			return nil, errors.WithStack(&DuplicateNameError{d.name})
		}
		c.names[d.name] = GateRef(i)
	}

	for i, d := range b.gates {
		g := Gate{Name: d.name, Kind: d.kind, Operands: make([]Ref, len(d.ops))}
		for j, op := range d.ops {
			r, ok := c.names[op]
			if !ok {
				return nil, errors.WithStack(&UnknownReferenceError{d.name, op})
			}
			g.Operands[j] = r
		}
		// kinds missing from the registry are reported by the compiler.
		if s, ok := b.reg.Lookup(d.kind); ok && s.Arity != len(d.ops) {
			return nil, errors.WithStack(&ArityMismatchError{d.name, d.kind, s.Arity, len(d.ops)})
		}
		c.gates[i] = g
	}

	seen := make(map[string]bool, len(b.outputs))
	for i, o := range b.outputs {
		if seen[o[0]] {
			return nil, errors.WithStack(&DuplicateNameError{o[0]})
		}
		seen[o[0]] = true
		r, ok := c.names[o[1]]
		if !ok {
			return nil, errors.WithStack(&UnknownReferenceError{o[0], o[1]})
		}
		c.outputs[i] = Output{o[0], r}
	}

	if cycle := findCycle(c.gates); cycle != nil {
		return nil, errors.WithStack(&CyclicDependencyError{cycle})
	}
	c.order = liveOrder(c.gates, c.outputs)
	return c, nil
}

func validName(n string) bool {
	return n != "" && !strings.Contains(n, "#")
}

// DFS colors
const (
	white = iota
	grey
	black
)

// findCycle returns the names of the gates forming a dependency cycle, or nil
// if the gate graph is acyclic. Each gate in the returned slice depends on the
// next one. The search uses an explicit stack so that deep graphs cannot
// overflow the goroutine stack.
//
func findCycle(gates []Gate) []string {
	type frame struct {
		g  int
		op int // next operand to visit
	}
	color := make([]uint8, len(gates))
	var stack []frame

	for root := range gates {
		if color[root] != white {
			continue
		}
		color[root] = grey
		stack = append(stack[:0], frame{root, 0})
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			ops := gates[top.g].Operands
			if top.op == len(ops) {
				color[top.g] = black
				stack = stack[:len(stack)-1]
				continue
			}
			r := ops[top.op]
			top.op++
			if r.Type != RefGate {
				continue
			}
			switch color[r.Index] {
			case white:
				color[r.Index] = grey
				stack = append(stack, frame{r.Index, 0})
			case grey:
				// r.Index is on the stack.
				var cycle []string
				i := len(stack) - 1
				for stack[i].g != r.Index {
					i--
				}
				for ; i < len(stack); i++ {
					cycle = append(cycle, gates[stack[i].g].Name)
				}
				return append(cycle, gates[r.Index].Name)
			}
		}
	}
	return nil
}

// liveOrder returns the gates reachable from outputs in post order. gates
// must be acyclic.
//
func liveOrder(gates []Gate, outputs []Output) []int {
	type frame struct {
		g  int
		op int
	}
	visited := make([]bool, len(gates))
	var order []int
	var stack []frame
	for _, o := range outputs {
		if o.Src.Type != RefGate || visited[o.Src.Index] {
			continue
		}
		visited[o.Src.Index] = true
		stack = append(stack[:0], frame{o.Src.Index, 0})
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			ops := gates[top.g].Operands
			if top.op == len(ops) {
				order = append(order, top.g)
				stack = stack[:len(stack)-1]
				continue
			}
			r := ops[top.op]
			top.op++
			if r.Type == RefGate && !visited[r.Index] {
				visited[r.Index] = true
				stack = append(stack, frame{r.Index, 0})
			}
		}
	}
	return order
}
