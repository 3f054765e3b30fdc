// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwlib provides a library of reusable circuit fragments for nandvm.
//
// Each fragment declares its gates in a nandvm.Builder under a caller chosen
// name prefix and returns the names of its outputs, which can be wired into
// other fragments or exposed as circuit outputs. Buses are passed by name and
// their bits are named with nandvm.BusName.
//
package hwlib

import (
	"strconv"

	"github.com/db47h/nandvm"
)

// bit name within a fragment
func pin(prefix, name string) string { return prefix + "." + name }

// make a bus of pin names
func bus(bits int, name string) []string {
	b := make([]string, bits)
	for i := range b {
		b[i] = nandvm.BusName(name, i)
	}
	return b
}

// Bus returns the names of the bits of the named bus.
//
func Bus(name string, bits int) []string { return bus(bits, name) }

// GateN declares a N-bits logic gate of the given two input kind.
//
//	Inputs: a[bits], b[bits]
//	Outputs: out[bits]
//	Function: for i := range out { out[i] = kind(a[i], b[i]) }
//
func GateN(b *nandvm.Builder, name string, kind nandvm.Kind, a, bb []string) []string {
	if len(a) != len(bb) {
		panic("GateN " + name + ": bus width mismatch: " + strconv.Itoa(len(a)) + " != " + strconv.Itoa(len(bb)))
	}
	out := bus(len(a), name)
	for i := range a {
		b.Gate(out[i], kind, a[i], bb[i])
	}
	return out
}

// NotN declares a N-bits NOT gate.
//
//	Inputs: in[bits]
//	Outputs: out[bits]
//	Function: for i := range out { out[i] = !in[i] }
//
func NotN(b *nandvm.Builder, name string, in []string) []string {
	out := bus(len(in), name)
	for i := range in {
		b.Gate(out[i], nandvm.Not, in[i])
	}
	return out
}

func nWay(b *nandvm.Builder, name string, kind nandvm.Kind, in []string) string {
	switch len(in) {
	case 0:
		panic(name + ": no inputs")
	case 1:
		b.Gate(name, nandvm.Buffer, in[0])
		return name
	}
	// balanced tree
	cur := in
	for lvl := 0; len(cur) > 1; lvl++ {
		var next []string
		for i := 0; i+1 < len(cur); i += 2 {
			n := pin(name, strconv.Itoa(lvl)+"_"+strconv.Itoa(i/2))
			if len(cur) == 2 {
				n = name
			}
			b.Gate(n, kind, cur[i], cur[i+1])
			next = append(next, n)
		}
		if len(cur)%2 != 0 {
			next = append(next, cur[len(cur)-1])
		}
		cur = next
	}
	return name
}

// OrNWay declares a N-Way OR gate.
//
//	Inputs: in[n]
//	Outputs: out
//	Function: out = in[0] || in[1] || in[2] || ... || in[n-1]
//
func OrNWay(b *nandvm.Builder, name string, in []string) string {
	return nWay(b, name, nandvm.Or, in)
}

// AndNWay declares a N-Way AND gate.
//
//	Inputs: in[n]
//	Outputs: out
//	Function: out = in[0] && in[1] && in[2] && ... && in[n-1]
//
func AndNWay(b *nandvm.Builder, name string, in []string) string {
	return nWay(b, name, nandvm.And, in)
}
