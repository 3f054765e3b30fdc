package hwtest_test

import (
	"testing"

	"github.com/db47h/nandvm"
	"github.com/db47h/nandvm/hwtest"
	"github.com/stretchr/testify/require"
)

func TestCompareCircuit(t *testing.T) {
	b := nandvm.NewBuilder()
	b.Input("a", "b")
	b.Gate("notA", nandvm.Nand, "a", "a")
	b.Gate("notB", nandvm.Nand, "b", "b")
	b.Gate("or", nandvm.Nand, "notA", "notB")
	b.Output("out", "or")
	c, err := b.Finalize()
	require.NoError(t, err)
	hwtest.CompareCircuit(t, c)
}

func TestComparePrograms(t *testing.T) {
	build := func(gates func(b *nandvm.Builder)) *nandvm.Program {
		b := nandvm.NewBuilder()
		b.Input("a", "b")
		gates(b)
		b.Output("out", "out")
		c, err := b.Finalize()
		require.NoError(t, err)
		p, err := nandvm.Compile(c)
		require.NoError(t, err)
		return p
	}
	builtin := build(func(b *nandvm.Builder) { b.Gate("out", nandvm.Or, "a", "b") })
	custom := build(func(b *nandvm.Builder) {
		b.Gate("notA", nandvm.Not, "a")
		b.Gate("notB", nandvm.Not, "b")
		b.Gate("out", nandvm.Nand, "notA", "notB")
	})
	hwtest.ComparePrograms(t, builtin, custom)
}

func TestTruthTable(t *testing.T) {
	b := nandvm.NewBuilder()
	b.Input("a", "b")
	b.Gate("x", nandvm.Xor, "a", "b")
	b.Output("out", "x")
	c, err := b.Finalize()
	require.NoError(t, err)
	p, err := nandvm.Compile(c)
	require.NoError(t, err)

	tt, err := hwtest.TruthTable(p, "out")
	require.NoError(t, err)
	require.Equal(t, []bool{false, true, true, false}, tt)

	_, err = hwtest.TruthTable(p, "nope")
	require.Error(t, err)
}

func TestVectors(t *testing.T) {
	vs := hwtest.Vectors(2, nil)
	require.Equal(t, [][]bool{{false, false}, {false, true}, {true, false}, {true, true}}, vs)
	require.Len(t, hwtest.Vectors(0, nil), 1)
}
