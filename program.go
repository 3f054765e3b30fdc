// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandvm

import (
	"strconv"
	"strings"
)

// OperandType tells where an instruction operand is read from.
//
type OperandType uint8

// Operand types.
//
const (
	Immediate OperandType = iota + 1 // input slot
	Register                         // register slot
)

// An Operand is either an immediate (input slot) or a register slot.
//
type Operand struct {
	Type  OperandType
	Index int
}

// Imm returns an immediate operand for input slot i.
//
func Imm(i int) Operand { return Operand{Immediate, i} }

// Reg returns a register operand for register slot i.
//
func Reg(i int) Operand { return Operand{Register, i} }

func (o Operand) String() string {
	switch o.Type {
	case Immediate:
		return "i" + strconv.Itoa(o.Index)
	case Register:
		return "r" + strconv.Itoa(o.Index)
	}
	return "?"
}

// An Instruction stores NAND(A, B) into register Out. Register operands always
// reference a register written by a previous instruction.
//
type Instruction struct {
	Out  int
	A, B Operand
}

func (i Instruction) String() string {
	return "r" + strconv.Itoa(i.Out) + " = nand " + i.A.String() + ", " + i.B.String()
}

// A Program is a compiled circuit. It is immutable and can be run by any
// number of goroutines concurrently.
//
// Outputs that directly expose a circuit input map to an Immediate operand.
//
type Program struct {
	instrs   []Instruction
	inputs   []string
	inSlots  map[string]int
	outputs  []string
	outSlots map[string]Operand
}

// Len returns the number of instructions, which is also the number of
// registers used by the program.
//
func (p *Program) Len() int { return len(p.instrs) }

// Instructions returns a copy of the program's instructions.
//
func (p *Program) Instructions() []Instruction {
	return append([]Instruction(nil), p.instrs...)
}

// Inputs returns the input names indexed by input slot.
//
func (p *Program) Inputs() []string { return append([]string(nil), p.inputs...) }

// NumInputs returns the number of immediates expected by Run.
//
func (p *Program) NumInputs() int { return len(p.inputs) }

// InputSlot returns the slot of the named input.
//
func (p *Program) InputSlot(name string) (int, bool) {
	i, ok := p.inSlots[name]
	return i, ok
}

// Outputs returns the output names in declaration order.
//
func (p *Program) Outputs() []string { return append([]string(nil), p.outputs...) }

// OutputSlot returns the operand holding the value of the named output.
//
func (p *Program) OutputSlot(name string) (Operand, bool) {
	o, ok := p.outSlots[name]
	return o, ok
}

// Stats holds a few program statistics.
//
type Stats struct {
	Instructions int
	Inputs       int
	Outputs      int
	PassThrough  int // outputs mapped to an input
}

// Stats returns statistics about p.
//
func (p *Program) Stats() Stats {
	s := Stats{
		Instructions: len(p.instrs),
		Inputs:       len(p.inputs),
		Outputs:      len(p.outputs),
	}
	for _, o := range p.outSlots {
		if o.Type == Immediate {
			s.PassThrough++
		}
	}
	return s
}

// String returns a listing of the program.
//
func (p *Program) String() string {
	var b strings.Builder
	for i, n := range p.inputs {
		b.WriteString("; i" + strconv.Itoa(i) + " = " + n + "\n")
	}
	for _, in := range p.instrs {
		b.WriteString(in.String())
		b.WriteByte('\n')
	}
	for _, n := range p.outputs {
		b.WriteString("; " + n + " = " + p.outSlots[n].String() + "\n")
	}
	return b.String()
}
