// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwlib

import (
	"github.com/db47h/nandvm"
)

// DMux declares a demultiplexer.
//
//	Inputs: in, sel
//	Outputs: a, b
//	Function: if sel == 0 { a = in; b = 0 } else { a = 0; b = in }
//
func DMux(b *nandvm.Builder, name, in, sel string) (x, y string) {
	nsel := pin(name, "notSel")
	b.Gate(nsel, nandvm.Not, sel)
	x, y = pin(name, "a"), pin(name, "b")
	b.Gate(x, nandvm.And, in, nsel)
	b.Gate(y, nandvm.And, in, sel)
	return x, y
}

// MuxN declares a N-bits Mux.
//
//	Inputs: a[bits], b[bits], sel
//	Outputs: out[bits]
//	Function: for i := range out { if sel == 0 { out[i] = a[i] } else { out[i] = b[i] } }
//
func MuxN(b *nandvm.Builder, name string, x, y []string, sel string) []string {
	if len(x) != len(y) {
		panic("MuxN " + name + ": bus width mismatch")
	}
	out := bus(len(x), name)
	for i := range x {
		b.Gate(out[i], nandvm.Mux, x[i], y[i], sel)
	}
	return out
}

// Mux4Way declares a 4 way N-bits Mux.
//
//	Inputs: a[bits], b[bits], c[bits], d[bits], sel[2]
//	Outputs: out[bits]
//	Function: out = [a, b, c, d][sel]
//
func Mux4Way(b *nandvm.Builder, name string, in [4][]string, sel [2]string) []string {
	lo := MuxN(b, pin(name, "lo"), in[0], in[1], sel[0])
	hi := MuxN(b, pin(name, "hi"), in[2], in[3], sel[0])
	return MuxN(b, name, lo, hi, sel[1])
}
