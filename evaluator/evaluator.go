/*
Copyright © 2021 ConsenSys Software Inc.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package evaluator implements the two-pass circuit evaluator (spec §4.4):
// given sample values for a Generator's declared input and witness wires, it
// replays the instruction queue in insertion order and produces a concrete
// field-element assignment for every wire.
//
// Grounded on the sequential shape of
// e4654cbe_vocdoni-gnark-tiny-prover-g16__constraint-solver.go.go's solver
// (values/solved arrays indexed by wire id, solveWithHint, the "not all
// wires instantiated" postcondition check) — simplified to the spec's
// single-threaded, strict-insertion-order replay; gnark's level-parallel
// scheduler has no analogue here since the spec names no such levels.
package evaluator

import (
	"math/big"

	"github.com/rs/zerolog"

	"github.com/wireforge/r1cs/circuit"
	"github.com/wireforge/r1cs/instr"
)

// Evaluator owns the dense, id-indexed assignment array and replays a
// Generator's instruction queue to fill it in.
type Evaluator struct {
	gen    *circuit.Generator
	values []*big.Int
	solved []bool
	logger zerolog.Logger
}

type evalConfig struct {
	logger zerolog.Logger
}

// Option configures an Evaluator at construction time.
type Option func(*evalConfig)

// WithLogger overrides the default (disabled) logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *evalConfig) { c.logger = l }
}

// New creates an Evaluator for gen and pre-assigns the one-wire to 1
// (spec §4.4 step 1: "A[one-wire.id] := 1"), plus the reserved zero-wire
// sentinel (id 0, never allocated by the generator) to 0, so that any
// instruction referencing circuit.Generator.ZeroWire() resolves correctly
// without it ever having consumed a real wire id.
func New(gen *circuit.Generator, opts ...Option) *Evaluator {
	cfg := evalConfig{logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	n := gen.NbWires() + 1
	e := &Evaluator{
		gen:    gen,
		values: make([]*big.Int, n),
		solved: make([]bool, n),
		logger: cfg.logger,
	}
	_ = e.assign(0, big.NewInt(0))
	_ = e.assign(gen.OneWire().ID(), big.NewInt(1))
	return e
}

func (e *Evaluator) assign(id int, v *big.Int) error {
	if id >= len(e.solved) {
		return errWireNotAssigned(id)
	}
	if e.solved[id] {
		return errWireAlreadyAssigned(id)
	}
	e.values[id] = v
	e.solved[id] = true
	return nil
}

// Assign writes the sample value for a declared input or witness wire
// (spec §4.4 step 2: "Client-provided sample-input routine writes A[id] for
// each declared input and witness wire").
func (e *Evaluator) Assign(w circuit.Wire, v *big.Int) error {
	return e.assign(w.ID(), new(big.Int).Set(v))
}

// Value returns w's assigned value, or ErrWireNotAssigned if Run (or an
// earlier Assign) hasn't reached it yet.
func (e *Evaluator) Value(w circuit.Wire) (*big.Int, error) {
	id := w.ID()
	if id >= len(e.solved) || !e.solved[id] {
		return nil, errWireNotAssigned(id)
	}
	return e.values[id], nil
}

// Run replays gen's instruction queue in insertion order (spec §4.4 step 3):
// every basic op reads its already-assigned inputs and writes its
// not-yet-assigned outputs; hint instructions run the same way but are
// never emitted by the serializer. After the walk, every allocated id must
// be assigned (step 4) or Run fails.
func (e *Evaluator) Run() error {
	for _, in := range e.gen.Queue() {
		if in.Op.IsLabel() {
			continue
		}

		inputs := make([]*big.Int, len(in.Inputs))
		for i, id := range in.Inputs {
			if id >= len(e.solved) || !e.solved[id] {
				return errWireNotAssigned(id)
			}
			inputs[i] = e.values[id]
		}

		var outputs []*big.Int
		if in.Op == instr.OpHint {
			fn, ok := e.gen.HintFn(in.Hint)
			if !ok {
				return errMissingHintFunction(int(in.Hint))
			}
			outputs = fn(inputs)
		} else {
			var err error
			outputs, err = in.Compute(inputs)
			if err != nil {
				return err
			}
		}

		for i, id := range in.Outputs {
			if err := e.assign(id, outputs[i]); err != nil {
				return err
			}
		}

		e.logger.Trace().
			Str("op", in.Op.String()).
			Ints("inputs", in.Inputs).
			Ints("outputs", in.Outputs).
			Msg("evaluator: instruction replayed")
	}

	for id := 1; id < len(e.solved); id++ {
		if !e.solved[id] {
			return errIncompleteAssignment(id)
		}
	}
	return nil
}
