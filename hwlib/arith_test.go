package hwlib_test

import (
	"testing"
	"testing/quick"

	"github.com/db47h/nandvm"
	hl "github.com/db47h/nandvm/hwlib"
	"github.com/db47h/nandvm/hwtest"
	"github.com/stretchr/testify/require"
)

func TestHalfAdder(t *testing.T) {
	b := nandvm.NewBuilder()
	b.Input("a", "b")
	s, c := hl.HalfAdder(b, "ha", "a", "b")
	b.Output("s", s)
	b.Output("c", c)
	circuit, err := b.Finalize()
	require.NoError(t, err)
	p := hwtest.CompareCircuit(t, circuit)

	for _, d := range []struct{ a, b, s, c bool }{
		{false, false, false, false},
		{false, true, true, false},
		{true, false, true, false},
		{true, true, false, true},
	} {
		out, err := p.Run([]bool{d.a, d.b})
		require.NoError(t, err)
		require.Equal(t, map[string]bool{"s": d.s, "c": d.c}, out, "a=%v, b=%v", d.a, d.b)
	}
}

func TestFullAdder(t *testing.T) {
	b := nandvm.NewBuilder()
	b.Input("a", "b", "cin")
	s, c := hl.FullAdder(b, "fa", "a", "b", "cin")
	b.Output("s", s)
	b.Output("cout", c)
	circuit, err := b.Finalize()
	require.NoError(t, err)
	p := hwtest.CompareCircuit(t, circuit)

	for i := 0; i < 8; i++ {
		in := []bool{i&4 != 0, i&2 != 0, i&1 != 0}
		n := 0
		for _, v := range in {
			if v {
				n++
			}
		}
		out, err := p.Run(in)
		require.NoError(t, err)
		require.Equal(t, n&1 != 0, out["s"], "%v", in)
		require.Equal(t, n&2 != 0, out["cout"], "%v", in)
	}
}

func TestAdderN(t *testing.T) {
	const bits = 16
	b := nandvm.NewBuilder()
	b.Input(nandvm.IO("a[16], b[16]")...)
	out, c := hl.AdderN(b, "add", hl.Bus("a", bits), hl.Bus("b", bits))
	for i, o := range out {
		b.Output(nandvm.BusName("out", i), o)
	}
	b.Output("c", c)
	circuit, err := b.Finalize()
	require.NoError(t, err)
	p := hwtest.CompareCircuit(t, circuit)

	f := func(x, y uint16) bool {
		imm := make([]bool, p.NumInputs())
		require.NoError(t, p.SetInt64(imm, "a", bits, int64(x)))
		require.NoError(t, p.SetInt64(imm, "b", bits, int64(y)))
		out, err := p.Run(imm)
		require.NoError(t, err)
		sum := uint32(x) + uint32(y)
		return uint16(nandvm.Int64(out, "out")) == uint16(sum) && out["c"] == (sum > 0xffff)
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestIncN(t *testing.T) {
	const bits = 8
	b := nandvm.NewBuilder()
	b.Input(nandvm.IO("in[8]")...)
	for i, o := range hl.IncN(b, "inc", hl.Bus("in", bits)) {
		b.Output(nandvm.BusName("out", i), o)
	}
	circuit, err := b.Finalize()
	require.NoError(t, err)
	p := hwtest.CompareCircuit(t, circuit)

	imm := make([]bool, bits)
	for v := 0; v < 256; v++ {
		require.NoError(t, p.SetInt64(imm, "in", bits, int64(v)))
		out, err := p.Run(imm)
		require.NoError(t, err)
		require.Equal(t, int64((v+1)&0xff), nandvm.Int64(out, "out"))
	}
}
