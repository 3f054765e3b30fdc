// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/nandvm"
)

// HalfAdder declares a half adder.
//
//	Inputs: a, b
//	Outputs: s, c
//	Function: s = lsb(a + b)
//	          c = msb(a + b)
//
func HalfAdder(b *nandvm.Builder, name, x, y string) (s, c string) {
	s, c = pin(name, "s"), pin(name, "c")
	b.Gate(s, nandvm.Xor, x, y)
	b.Gate(c, nandvm.And, x, y)
	return s, c
}

// FullAdder declares a 3 bit adder.
//
//	Inputs: a, b, cin
//	Outputs: s, cout
//	Function: s = lsb(a + b + cin)
//	          cout = msb(a + b + cin)
//
func FullAdder(b *nandvm.Builder, name, x, y, cin string) (s, cout string) {
	s0, c0 := HalfAdder(b, pin(name, "h0"), x, y)
	s, c1 := HalfAdder(b, pin(name, "h1"), s0, cin)
	cout = pin(name, "cout")
	b.Gate(cout, nandvm.Or, c0, c1)
	return s, cout
}

// AdderN declares a N-bits ripple carry adder.
//
//	Inputs: a[bits], b[bits]
//	Outputs: out[bits], c
//	Function: out = lsb(a + b), c = carry out
//
func AdderN(b *nandvm.Builder, name string, x, y []string) (out []string, c string) {
	if len(x) != len(y) || len(x) == 0 {
		panic("AdderN " + name + ": invalid bus widths")
	}
	out = make([]string, len(x))
	out[0], c = HalfAdder(b, pin(name, "0"), x[0], y[0])
	for i := 1; i < len(x); i++ {
		out[i], c = FullAdder(b, pin(name, nandvm.BusName("fa", i)), x[i], y[i], c)
	}
	return out, c
}

// IncN declares a N-bits incrementer.
//
//	Inputs: in[bits]
//	Outputs: out[bits]
//	Function: out = lsb(in + 1)
//
func IncN(b *nandvm.Builder, name string, in []string) []string {
	out := make([]string, len(in))
	out[0] = pin(name, "0")
	b.Gate(out[0], nandvm.Not, in[0])
	c := in[0]
	for i := 1; i < len(in); i++ {
		out[i], c = HalfAdder(b, pin(name, nandvm.BusName("ha", i)), in[i], c)
	}
	return out
}
