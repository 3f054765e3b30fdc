package hwlib_test

import (
	"testing"
	"testing/quick"

	"github.com/db47h/nandvm"
	hl "github.com/db47h/nandvm/hwlib"
	"github.com/db47h/nandvm/hwtest"
	"github.com/stretchr/testify/require"
)

func Test_gateN(t *testing.T) {
	const bits = 16
	td := []struct {
		kind nandvm.Kind
		ctrl func(a, b uint16) uint16
	}{
		{nandvm.And, func(a, b uint16) uint16 { return a & b }},
		{nandvm.Nand, func(a, b uint16) uint16 { return ^(a & b) }},
		{nandvm.Or, func(a, b uint16) uint16 { return a | b }},
		{nandvm.Nor, func(a, b uint16) uint16 { return ^(a | b) }},
		{nandvm.Xor, func(a, b uint16) uint16 { return a ^ b }},
		{nandvm.Xnor, func(a, b uint16) uint16 { return ^(a ^ b) }},
	}
	for _, d := range td {
		d := d
		t.Run(string(d.kind), func(t *testing.T) {
			b := nandvm.NewBuilder()
			b.Input(nandvm.IO("a[16], b[16]")...)
			for i, o := range hl.GateN(b, "g", d.kind, hl.Bus("a", bits), hl.Bus("b", bits)) {
				b.Output(nandvm.BusName("out", i), o)
			}
			c, err := b.Finalize()
			require.NoError(t, err)
			p, err := nandvm.Compile(c)
			require.NoError(t, err)

			f := func(x, y uint16) bool {
				imm := make([]bool, p.NumInputs())
				require.NoError(t, p.SetInt64(imm, "a", bits, int64(x)))
				require.NoError(t, p.SetInt64(imm, "b", bits, int64(y)))
				out, err := p.Run(imm)
				require.NoError(t, err)
				return uint16(nandvm.Int64(out, "out")) == d.ctrl(x, y)
			}
			require.NoError(t, quick.Check(f, nil))
		})
	}
}

func TestNotN(t *testing.T) {
	b := nandvm.NewBuilder()
	b.Input(nandvm.IO("in[4]")...)
	for i, o := range hl.NotN(b, "not", hl.Bus("in", 4)) {
		b.Output(nandvm.BusName("out", i), o)
	}
	c, err := b.Finalize()
	require.NoError(t, err)
	p := hwtest.CompareCircuit(t, c)

	imm := make([]bool, 4)
	require.NoError(t, p.SetInt64(imm, "in", 4, 0x5))
	out, err := p.Run(imm)
	require.NoError(t, err)
	require.Equal(t, int64(0xa), nandvm.Int64(out, "out"))
}

func TestNWay(t *testing.T) {
	for _, ways := range []int{1, 2, 3, 5, 8} {
		b := nandvm.NewBuilder()
		in := hl.Bus("in", ways)
		b.Input(in...)
		b.Output("or", hl.OrNWay(b, "or", in))
		b.Output("and", hl.AndNWay(b, "and", in))
		c, err := b.Finalize()
		require.NoError(t, err)
		p := hwtest.CompareCircuit(t, c)

		all := int64(1)<<uint(ways) - 1
		imm := make([]bool, ways)
		for v := int64(0); v <= all; v++ {
			require.NoError(t, p.SetInt64(imm, "in", ways, v))
			out, err := p.Run(imm)
			require.NoError(t, err)
			require.Equal(t, v != 0, out["or"], "ways=%d, in=%b", ways, v)
			require.Equal(t, v == all, out["and"], "ways=%d, in=%b", ways, v)
		}
	}
}
