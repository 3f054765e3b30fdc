// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandvm

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/pkg/errors"
)

// BusName returns the name of bit i of the named bus, that is "name[i]".
//
func BusName(name string, i int) string {
	return name + "[" + strconv.Itoa(i) + "]"
}

// ParseIO parses an input or output specification like "a, b, bus[2]" and
// returns the individual names, expanding bus declarations:
//
//	ParseIO("in[2], sel") // returns []string{"in[0]", "in[1]", "sel"}
//
func ParseIO(spec string) ([]string, error) {
	var out []string
	for _, f := range strings.Split(spec, ",") {
		f = strings.TrimSpace(f)
		if f == "" {
			if strings.TrimSpace(spec) == "" {
				return nil, nil
			}
			return nil, parseError(spec, "empty name")
		}
		i := strings.IndexByte(f, '[')
		if i < 0 {
			if !isIdent(f) {
				return nil, parseError(spec, "invalid name "+strconv.Quote(f))
			}
			out = append(out, f)
			continue
		}
		name := strings.TrimSpace(f[:i])
		if !isIdent(name) {
			return nil, parseError(spec, "invalid bus name "+strconv.Quote(name))
		}
		if !strings.HasSuffix(f, "]") {
			return nil, parseError(spec, "missing close bracket")
		}
		n, err := strconv.Atoi(strings.TrimSpace(f[i+1 : len(f)-1]))
		if err != nil || n <= 0 {
			return nil, parseError(spec, "invalid bus size for "+name)
		}
		for j := 0; j < n; j++ {
			out = append(out, BusName(name, j))
		}
	}
	return out, nil
}

// IO is like ParseIO but panics on error.
//
func IO(spec string) []string {
	names, err := ParseIO(spec)
	if err != nil {
		panic(err)
	}
	return names
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if !(unicode.IsLetter(r) || r == '_' || i > 0 && unicode.IsDigit(r)) {
			return false
		}
	}
	return true
}

func parseError(in string, msg string) error {
	return errors.Errorf("in %q: %s", in, msg)
}

// Immediates returns an immediates slice for p from input values given by
// name. Every input must be given a value.
//
func (p *Program) Immediates(values map[string]bool) ([]bool, error) {
	imm := make([]bool, len(p.inputs))
	for n, v := range values {
		i, ok := p.inSlots[n]
		if !ok {
			return nil, errors.Errorf("unknown input %q", n)
		}
		imm[i] = v
	}
	if len(values) != len(p.inputs) {
		for _, n := range p.inputs {
			if _, ok := values[n]; !ok {
				return nil, errors.Errorf("no value for input %q", n)
			}
		}
	}
	return imm, nil
}

// SetInt64 sets the immediates for the input bus of the given width to v. Bit
// 0 is the lsb.
//
func (p *Program) SetInt64(immediates []bool, bus string, bits int, v int64) error {
	for i := 0; i < bits; i++ {
		n := BusName(bus, i)
		s, ok := p.inSlots[n]
		if !ok {
			return errors.Errorf("unknown input %q", n)
		}
		if s >= len(immediates) {
			return errors.WithStack(&InputArityMismatchError{len(p.inputs), len(immediates)})
		}
		immediates[s] = v&(1<<uint(i)) != 0
	}
	return nil
}

// Int64 returns the value of the named bus in outputs as an int64. Bit 0 is
// the lsb. Bits are read until a bus bit is missing from outputs.
//
func Int64(outputs map[string]bool, bus string) int64 {
	var v int64
	for i := 0; i < 64; i++ {
		b, ok := outputs[BusName(bus, i)]
		if !ok {
			break
		}
		if b {
			v |= 1 << uint(i)
		}
	}
	return v
}
