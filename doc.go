/*
Package nandvm compiles logic circuits into a flat list of NAND instructions
and runs them.

A circuit is declared with a Builder: named inputs, gates of any registered
kind (And, Or, Xor, Mux, ...) referencing inputs and other gates by name, and
named outputs. Finalize validates the declarations and returns an immutable
Circuit.

Compile lowers every gate to NAND gates, then orders them so that each
instruction only reads inputs (immediates) or registers written by a previous
instruction. The resulting Program is run in a single pass per input vector:
there is no settle loop and no state is kept between runs. Since a Program is
read-only, independent runs can execute concurrently, each in its own Frame.

	b := nandvm.NewBuilder()
	b.Input("a", "b")
	b.Gate("s", nandvm.Xor, "a", "b")
	b.Gate("c", nandvm.And, "a", "b")
	b.Output("sum", "s")
	b.Output("carry", "c")
	c, err := b.Finalize()
	if err != nil {
		// ...
	}
	p, err := nandvm.Compile(c)
	if err != nil {
		// ...
	}
	out, err := p.Run([]bool{true, true}) // map[carry:true sum:false]

New gate kinds are added by registering a KindSpec with a lowering rule in a
Registry. Circuits with feedback loops (latches, flip flops) are rejected.

*/
package nandvm
