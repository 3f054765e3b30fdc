package nandvm_test

import (
	"testing"

	"github.com/db47h/nandvm"
	"github.com/stretchr/testify/require"
)

func TestParseIO(t *testing.T) {
	data := []struct {
		in  string
		out []string
		err string
	}{
		{"", nil, ""},
		{"a", []string{"a"}, ""},
		{" a, b ,c", []string{"a", "b", "c"}, ""},
		{"in[2], sel", []string{"in[0]", "in[1]", "sel"}, ""},
		{"x, bus[ 3 ]", []string{"x", "bus[0]", "bus[1]", "bus[2]"}, ""},
		{"a,,b", nil, `in "a,,b": empty name`},
		{"a, 1b", nil, `in "a, 1b": invalid name "1b"`},
		{"a[2", nil, `in "a[2": missing close bracket`},
		{"a[0]", nil, `in "a[0]": invalid bus size for a`},
		{"a[x]", nil, `in "a[x]": invalid bus size for a`},
		{"[2]", nil, `in "[2]": invalid bus name ""`},
	}
	for _, d := range data {
		out, err := nandvm.ParseIO(d.in)
		if d.err != "" {
			require.EqualError(t, err, d.err)
			continue
		}
		require.NoError(t, err, d.in)
		require.Equal(t, d.out, out, d.in)
	}
	require.Panics(t, func() { nandvm.IO("a,,") })
}

func TestBusInt64(t *testing.T) {
	b := nandvm.NewBuilder()
	b.Input(nandvm.IO("in[8]")...)
	for i := 0; i < 8; i++ {
		b.Output(nandvm.BusName("out", i), nandvm.BusName("in", i))
	}
	p := mustCompile(t, b)

	imm := make([]bool, 8)
	require.NoError(t, p.SetInt64(imm, "in", 8, 0xa5))
	out, err := p.Run(imm)
	require.NoError(t, err)
	require.Equal(t, int64(0xa5), nandvm.Int64(out, "out"))

	require.Error(t, p.SetInt64(imm, "in", 9, 0))
	require.Error(t, p.SetInt64(imm[:4], "in", 8, 0))
}
