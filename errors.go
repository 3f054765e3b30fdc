// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandvm

import (
	"strconv"
	"strings"
)

// DuplicateNameError is returned by Finalize when an input, gate or output
// name is declared more than once. Inputs and gates share a namespace.
//
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return "duplicate name " + strconv.Quote(e.Name)
}

// InvalidNameError is returned by Finalize for an empty input or gate name,
// or one containing '#', which is reserved for the nodes created by lowering.
//
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	return "invalid name " + strconv.Quote(e.Name)
}

// UnknownReferenceError is returned by Finalize when a gate operand or an
// output refers to a name that is neither a declared input nor a declared gate.
//
type UnknownReferenceError struct {
	From string // gate or output name holding the reference
	Ref  string
}

func (e *UnknownReferenceError) Error() string {
	return e.From + ": unknown reference " + strconv.Quote(e.Ref)
}

// ArityMismatchError is returned by Finalize when a gate has the wrong number
// of operands for its kind.
//
type ArityMismatchError struct {
	Gate string
	Kind Kind
	Want int
	Got  int
}

func (e *ArityMismatchError) Error() string {
	return e.Gate + ": " + string(e.Kind) + " expects " + strconv.Itoa(e.Want) +
		" operands, got " + strconv.Itoa(e.Got)
}

// CyclicDependencyError is returned by Finalize when a gate depends on its own
// output. Cycle lists one witness cycle by gate name, the first gate being
// repeated at the end.
//
type CyclicDependencyError struct {
	Cycle []string
}

func (e *CyclicDependencyError) Error() string {
	return "cyclic dependency: " + strings.Join(e.Cycle, " -> ")
}

// UnsupportedGateKindError is returned by Lower (and Compile) for a gate whose
// kind has no registered lowering rule.
//
type UnsupportedGateKindError struct {
	Gate string
	Kind Kind
}

func (e *UnsupportedGateKindError) Error() string {
	return e.Gate + ": no lowering rule for gate kind " + strconv.Quote(string(e.Kind))
}

// InputArityMismatchError is returned when the number of immediates supplied
// to a run does not match the number of inputs of the program.
//
type InputArityMismatchError struct {
	Want int
	Got  int
}

func (e *InputArityMismatchError) Error() string {
	return "expected " + strconv.Itoa(e.Want) + " immediates, got " + strconv.Itoa(e.Got)
}

// InvariantError reports a broken internal invariant, such as a cycle found
// by the scheduler in a graph that should have been validated upstream. It is
// never caused by a well formed Circuit.
//
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string {
	return "internal invariant violation: " + e.Msg
}
