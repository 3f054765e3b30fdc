// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandvm

import (
	"runtime"
	"sync"

	"github.com/pkg/errors"
)

// A Frame holds the working memory of one program run: a copy of the
// immediates and one register per instruction. A Frame can be reused for any
// number of runs of its program but must not be used by several goroutines at
// the same time.
//
type Frame struct {
	p    *Program
	imm  []bool
	regs []bool
}

// NewFrame returns a new execution frame for p.
//
func (p *Program) NewFrame() *Frame {
	return &Frame{
		p:    p,
		imm:  make([]bool, len(p.inputs)),
		regs: make([]bool, len(p.instrs)),
	}
}

// Program returns the program f was created for.
//
func (f *Frame) Program() *Program { return f.p }

// Exec runs the program once with the given immediates, one per input slot.
// If len(immediates) does not match the program's input count, Exec returns an
// error wrapping an *InputArityMismatchError and the frame is left untouched.
//
func (f *Frame) Exec(immediates []bool) error {
	if len(immediates) != len(f.imm) {
		return errors.WithStack(&InputArityMismatchError{len(f.imm), len(immediates)})
	}
	copy(f.imm, immediates)
	imm, regs := f.imm, f.regs
	for _, in := range f.p.instrs {
		var a, b bool
		if in.A.Type == Immediate {
			a = imm[in.A.Index]
		} else {
			a = regs[in.A.Index]
		}
		if in.B.Type == Immediate {
			b = imm[in.B.Index]
		} else {
			b = regs[in.B.Index]
		}
		regs[in.Out] = !(a && b)
	}
	return nil
}

// Get returns the value of an operand after the last call to Exec.
//
func (f *Frame) Get(o Operand) bool {
	if o.Type == Immediate {
		return f.imm[o.Index]
	}
	return f.regs[o.Index]
}

// Output returns the value of the named output after the last call to Exec.
//
func (f *Frame) Output(name string) (v bool, ok bool) {
	o, ok := f.p.outSlots[name]
	if !ok {
		return false, false
	}
	return f.Get(o), true
}

// Outputs returns the values of all outputs after the last call to Exec.
//
func (f *Frame) Outputs() map[string]bool {
	m := make(map[string]bool, len(f.p.outputs))
	for _, n := range f.p.outputs {
		m[n] = f.Get(f.p.outSlots[n])
	}
	return m
}

// Run runs the program once in a new Frame and returns the output values by
// name.
//
func (p *Program) Run(immediates []bool) (map[string]bool, error) {
	f := p.NewFrame()
	if err := f.Exec(immediates); err != nil {
		return nil, err
	}
	return f.Outputs(), nil
}

// RunBatch runs the program once per input vector and returns the outputs in
// the same order as vectors.
//
// workers is the number of goroutines used. If less or equal to 0, the value
// of GOMAXPROCS will be used. Every vector is checked before any run starts:
// on error, nothing is computed.
//
func (p *Program) RunBatch(workers int, vectors [][]bool) ([]map[string]bool, error) {
	for i, v := range vectors {
		if len(v) != len(p.inputs) {
			return nil, errors.Wrapf(&InputArityMismatchError{len(p.inputs), len(v)}, "vector %d", i)
		}
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(-1)
	}
	res := make([]map[string]bool, len(vectors))
	size := len(vectors) / workers
	if size*workers < len(vectors) {
		size++
	}

	var (
		wg   sync.WaitGroup
		errs = make([]error, workers) // one per chunk
	)
	for k, start := 0, 0; start < len(vectors); k, start = k+1, start+size {
		end := start + size
		if end > len(vectors) {
			end = len(vectors)
		}
		wg.Add(1)
		go func(err *error, start, end int) {
			defer wg.Done()
			f := p.NewFrame()
			for i := start; i < end; i++ {
				if *err = f.Exec(vectors[i]); *err != nil {
					*err = errors.Wrapf(*err, "vector %d", i)
					return
				}
				res[i] = f.Outputs()
			}
		}(&errs[k], start, end)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}
