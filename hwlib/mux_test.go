package hwlib_test

import (
	"testing"

	"github.com/db47h/nandvm"
	hl "github.com/db47h/nandvm/hwlib"
	"github.com/db47h/nandvm/hwtest"
	"github.com/stretchr/testify/require"
)

func TestDMux(t *testing.T) {
	b := nandvm.NewBuilder()
	b.Input("in", "sel")
	x, y := hl.DMux(b, "dmux", "in", "sel")
	b.Output("a", x)
	b.Output("b", y)
	c, err := b.Finalize()
	require.NoError(t, err)
	p := hwtest.CompareCircuit(t, c)

	for _, d := range []struct{ in, sel, a, b bool }{
		{false, false, false, false},
		{false, true, false, false},
		{true, false, true, false},
		{true, true, false, true},
	} {
		out, err := p.Run([]bool{d.in, d.sel})
		require.NoError(t, err)
		require.Equal(t, map[string]bool{"a": d.a, "b": d.b}, out)
	}
}

func TestMux4Way(t *testing.T) {
	const bits = 4
	b := nandvm.NewBuilder()
	b.Input(nandvm.IO("a[4], b[4], c[4], d[4], sel[2]")...)
	out := hl.Mux4Way(b, "mux",
		[4][]string{hl.Bus("a", bits), hl.Bus("b", bits), hl.Bus("c", bits), hl.Bus("d", bits)},
		[2]string{"sel[0]", "sel[1]"})
	for i, o := range out {
		b.Output(nandvm.BusName("out", i), o)
	}
	c, err := b.Finalize()
	require.NoError(t, err)
	p, err := nandvm.Compile(c)
	require.NoError(t, err)

	vals := []int64{3, 5, 9, 14}
	imm := make([]bool, p.NumInputs())
	for i, n := range []string{"a", "b", "c", "d"} {
		require.NoError(t, p.SetInt64(imm, n, bits, vals[i]))
	}
	for sel := int64(0); sel < 4; sel++ {
		require.NoError(t, p.SetInt64(imm, "sel", 2, sel))
		res, err := p.Run(imm)
		require.NoError(t, err)
		require.Equal(t, vals[sel], nandvm.Int64(res, "out"), "sel=%d", sel)
	}
}
