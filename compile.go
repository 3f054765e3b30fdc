// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package nandvm

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type compileConfig struct {
	log zerolog.Logger
	reg *Registry
}

// A CompileOption configures Compile.
//
type CompileOption func(*compileConfig)

// WithLogger sets the logger used to report compilation statistics. By
// default nothing is logged.
//
func WithLogger(l zerolog.Logger) CompileOption {
	return func(c *compileConfig) { c.log = l }
}

// WithRegistry sets the registry providing the lowering rules. It defaults to
// the registry the circuit was built with.
//
func WithRegistry(r *Registry) CompileOption {
	return func(c *compileConfig) { c.reg = r }
}

// Compile lowers c to NAND gates and schedules the result into a Program.
//
// The returned error wraps an *UnsupportedGateKindError if a gate kind has no
// lowering rule, or an *InvariantError if lowering produced an unschedulable
// graph. No Program is returned on error.
//
func Compile(c *Circuit, opts ...CompileOption) (*Program, error) {
	cfg := compileConfig{log: zerolog.Nop(), reg: c.reg}
	for _, o := range opts {
		o(&cfg)
	}
	log := cfg.log

	lg, err := Lower(c, cfg.reg)
	if err != nil {
		return nil, errors.Wrap(err, "lowering failed")
	}
	log.Debug().
		Int("nbGates", len(c.gates)).
		Int("nbLive", len(c.order)).
		Int("nbNand", len(lg.Nodes)).
		Msg("lowered circuit")

	p, err := Schedule(lg)
	if err != nil {
		return nil, errors.Wrap(err, "scheduling failed")
	}
	stats := p.Stats()
	log.Info().
		Int("nbInstructions", stats.Instructions).
		Int("nbInput", stats.Inputs).
		Int("nbOutput", stats.Outputs).
		Int("nbPassThrough", stats.PassThrough).
		Msg("compiled")
	return p, nil
}
