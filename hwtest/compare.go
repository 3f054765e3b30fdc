// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwtest provides utility functions for testing circuits.
//
package hwtest

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/db47h/nandvm"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

// maxExhaustive is the maximum input count for which all input combinations
// are tested. Larger circuits get 1<<maxExhaustive random vectors.
const maxExhaustive = 12

// Vectors returns input vectors for n inputs: every combination if n <=
// maxExhaustive, else all false, all true and random vectors. In a vector,
// input 0 is the most significant bit of the combination number.
//
func Vectors(n int, rnd *rand.Rand) [][]bool {
	if n <= maxExhaustive {
		tot := 1 << uint(n)
		vs := make([][]bool, tot)
		for i := range vs {
			v := make([]bool, n)
			for bit := range v {
				v[n-bit-1] = i&(1<<uint(bit)) != 0
			}
			vs[i] = v
		}
		return vs
	}
	vs := make([][]bool, 0, 2+1<<maxExhaustive)
	zero, one := make([]bool, n), make([]bool, n)
	for i := range one {
		one[i] = true
	}
	vs = append(vs, zero, one)
	for i := 0; i < 1<<maxExhaustive; i++ {
		v := make([]bool, n)
		for j := range v {
			v[j] = rnd.Int63()&(1<<62) != 0
		}
		vs = append(vs, v)
	}
	return vs
}

func newRand(t testing.TB) *rand.Rand {
	seed := time.Now().UnixNano()
	t.Logf("random seed: %d", seed)
	return rand.New(rand.NewSource(seed))
}

func errString(names []string, in []bool, out string, ex, got bool) string {
	var b strings.Builder
	for i, n := range names {
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s=%v", n, in[i])
	}
	return fmt.Sprintf("\nExpected %s => %s=%v\nGot %v", b.String(), out, ex, got)
}

// CompareCircuit compiles c and checks that the compiled program gives the
// same outputs as the direct evaluation of c.
//
func CompareCircuit(t testing.TB, c *nandvm.Circuit, opts ...nandvm.CompileOption) *nandvm.Program {
	t.Helper()

	p, err := nandvm.Compile(c, opts...)
	require.NoError(t, err)

	start := time.Now()
	names := c.Inputs()
	vs := Vectors(len(names), newRand(t))
	f := p.NewFrame()
	for _, v := range vs {
		ex, err := c.Eval(v)
		require.NoError(t, err)
		require.NoError(t, f.Exec(v))
		for _, o := range p.Outputs() {
			got, _ := f.Output(o)
			if got != ex[o] {
				t.Fatal(errString(names, v, o, ex[o], got))
			}
		}
	}
	t.Logf("%d instructions. %d runs in %v", p.Len(), len(vs), time.Since(start))
	return p
}

// ComparePrograms checks that two programs with the same inputs and outputs
// compute the same function.
//
func ComparePrograms(t testing.TB, p1, p2 *nandvm.Program) {
	t.Helper()

	require.Equal(t, p1.Inputs(), p2.Inputs(), "input mismatch")
	o1, o2 := p1.Outputs(), p2.Outputs()
	sort.Strings(o1)
	sort.Strings(o2)
	require.Equal(t, o1, o2, "output mismatch")

	names := p1.Inputs()
	f1, f2 := p1.NewFrame(), p2.NewFrame()
	for _, v := range Vectors(len(names), newRand(t)) {
		require.NoError(t, f1.Exec(v))
		require.NoError(t, f2.Exec(v))
		for _, o := range o1 {
			ex, _ := f1.Output(o)
			got, _ := f2.Output(o)
			if ex != got {
				t.Fatal(errString(names, v, o, ex, got))
			}
		}
	}
}

// TruthTable returns the values of the named output for every input vector
// returned by Vectors, in the same order. p must have at most 12 inputs.
//
func TruthTable(p *nandvm.Program, output string) ([]bool, error) {
	if p.NumInputs() > maxExhaustive {
		return nil, errors.Errorf("too many inputs for a truth table: %d", p.NumInputs())
	}
	vs := Vectors(p.NumInputs(), nil)
	res, err := p.RunBatch(0, vs)
	if err != nil {
		return nil, err
	}
	tt := make([]bool, len(res))
	for i, r := range res {
		v, ok := r[output]
		if !ok {
			return nil, errors.Errorf("unknown output %q", output)
		}
		tt[i] = v
	}
	return tt, nil
}
