// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandvm

import (
	"sort"
	"strconv"
	"sync"

	"github.com/pkg/errors"
)

// A Kind identifies a gate type, like "Nand" or "Xor". The set of kinds is
// open: new kinds are added by registering a KindSpec in a Registry.
//
type Kind string

// An EvalFn computes the output of a gate directly from its operand values.
// The in slice has exactly Arity elements.
//
type EvalFn func(in []bool) bool

// A LowerFn expands a gate into NAND nodes by calling e.Nand (or the helpers
// built on it) and returns the reference holding the gate's output. The in
// slice has exactly Arity elements. A LowerFn must only read its operands and
// the nodes it creates: lowering is local to a gate.
//
// For example, the And gate is lowered like this:
//
//	func(e *nandvm.Emitter, in []nandvm.Ref) nandvm.Ref {
//		return e.Not(e.Nand(in[0], in[1]))
//	}
//
type LowerFn func(e *Emitter, in []Ref) Ref

// A KindSpec is the blueprint of a gate kind.
//
type KindSpec struct {
	// Gate kind.
	Kind Kind
	// Number of operands. Must be > 0.
	Arity int
	// Truth function, used for direct evaluation of a Circuit. May be nil
	// for kinds that cannot be evaluated in a single pass.
	Eval EvalFn
	// NAND expansion. A nil Lower makes the kind unsupported by the
	// compiler.
	Lower LowerFn
}

// A Registry maps gate kinds to their KindSpec. It is safe for concurrent use.
//
type Registry struct {
	mu sync.RWMutex
	m  map[Kind]*KindSpec
}

// NewRegistry returns an empty registry.
//
func NewRegistry() *Registry {
	return &Registry{m: make(map[Kind]*KindSpec)}
}

// Register adds a new gate kind to r.
//
func (r *Registry) Register(s KindSpec) error {
	if s.Kind == "" {
		return errors.New("empty gate kind")
	}
	if s.Arity <= 0 {
		return errors.New("invalid arity " + strconv.Itoa(s.Arity) + " for gate kind " + string(s.Kind))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.m[s.Kind]; ok {
		return errors.New("gate kind " + string(s.Kind) + " already registered")
	}
	r.m[s.Kind] = &s
	return nil
}

// MustRegister is like Register but panics on error.
//
func (r *Registry) MustRegister(s KindSpec) {
	if err := r.Register(s); err != nil {
		panic(err)
	}
}

// Lookup returns the KindSpec registered for k.
//
func (r *Registry) Lookup(k Kind) (*KindSpec, bool) {
	r.mu.RLock()
	s, ok := r.m[k]
	r.mu.RUnlock()
	return s, ok
}

// Kinds returns the registered kinds in lexical order.
//
func (r *Registry) Kinds() []Kind {
	r.mu.RLock()
	ks := make([]Kind, 0, len(r.m))
	for k := range r.m {
		ks = append(ks, k)
	}
	r.mu.RUnlock()
	sort.Slice(ks, func(i, j int) bool { return ks[i] < ks[j] })
	return ks
}

// Clone returns a copy of r. Kinds registered in the copy do not affect r.
//
func (r *Registry) Clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c := &Registry{m: make(map[Kind]*KindSpec, len(r.m))}
	for k, s := range r.m {
		c.m[k] = s
	}
	return c
}
