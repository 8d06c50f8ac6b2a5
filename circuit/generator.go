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

package circuit

import (
	"math/big"

	"github.com/wireforge/r1cs/field"
	"github.com/wireforge/r1cs/instr"
)

// Generator is the sole allocator of wire ids and the owner of the
// insertion-ordered, deduplicating evaluation queue (spec §4.3).
type Generator struct {
	cfg Config

	currentWireID int
	queue         []*instr.Instruction
	cseIndex      map[string]*instr.Instruction

	constants map[string]Wire // field-element hex -> cached constant wire

	oneWire  Wire
	zeroWire Wire

	inputs    []Wire
	witnesses []Wire
	outputs   []Wire

	numMulGates int

	hints map[instr.HintID]instr.HintFn
}

// New constructs a Generator, declares the canonical one-wire as the first
// input (spec §3 "id 1 is always the canonical one-wire, declared as the
// first input"), and installs it as the ambient generator (spec §4.3).
func New(opts ...Option) *Generator {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Generator{
		cfg:       cfg,
		cseIndex:  map[string]*instr.Instruction{},
		constants: map[string]Wire{},
		hints:     map[instr.HintID]instr.HintFn{},
	}
	for id, fn := range instr.DefaultHints {
		g.hints[id] = fn
	}

	g.oneWire = g.createInputWire("one")
	g.constants[big.NewInt(1).Text(16)] = Wire{kind: KindConstant, id: g.oneWire.id, value: big.NewInt(1), boolean: true}
	g.zeroWire = g.CreateConstant(big.NewInt(0))

	SetActive(g)

	cfg.Logger.Debug().Msg("circuit: generator initialized")
	return g
}

// Close removes g from the ambient registry. Clients that build multiple
// independent circuits in the same process (or across goroutines in
// multi-generator mode) should call Close once done with g.
func (g *Generator) Close() {
	ClearActive(g)
	g.cfg.Logger.Debug().
		Int("wires", g.currentWireID).
		Int("constraints", g.numMulGates).
		Msg("circuit: generator closed")
}

// OneWire returns the canonical constant-1 wire (id 1).
func (g *Generator) OneWire() Wire { return g.oneWire }

// ZeroWire returns the canonical constant-0 wire. It never allocates an id
// at all — it carries the reserved sentinel id 0 (spec §3 Generator
// invariant: "wire id 0 does not exist [as an allocated id]; ... the
// zero-wire ... never allocates a new id"), which the evaluator
// pre-populates to the field zero.
func (g *Generator) ZeroWire() Wire { return g.zeroWire }

// NbWires returns currentWireId, the highest allocated id. Ids are allocated
// from 1 upwards, so this is also the number of allocated wires.
func (g *Generator) NbWires() int { return g.currentWireID }

// NumMulGates returns the running constraint tally (spec §3 "Basic op ...
// contributes a known number of multiplication gates").
func (g *Generator) NumMulGates() int { return g.numMulGates }

// Inputs, Witnesses, Outputs return the declared wire lists in declaration
// order.
func (g *Generator) Inputs() []Wire    { return append([]Wire(nil), g.inputs...) }
func (g *Generator) Witnesses() []Wire { return append([]Wire(nil), g.witnesses...) }
func (g *Generator) Outputs() []Wire   { return append([]Wire(nil), g.outputs...) }

// Queue exposes the instruction queue in insertion order, read-only, for
// the evaluator and serializer.
func (g *Generator) Queue() []*instr.Instruction { return g.queue }

func (g *Generator) allocID() int {
	g.currentWireID++
	return g.currentWireID
}

func (g *Generator) newVariable() Wire {
	return Wire{kind: KindVariable, id: g.allocID()}
}

// emitDedup deduplicates probe (Op/Inputs/Coeff/NbBits already set, Outputs
// nil) against the CSE index (spec §3 "Attempting to insert a duplicate
// basic op returns the prior op's output wires"; spec §4.2 "Output ids are
// not part of identity"). On a hit, no new id is allocated and the prior
// instruction's outputs are returned. On a miss, nbOutputs fresh ids are
// allocated, probe is queued, and the new ids are returned.
func (g *Generator) emitDedup(probe *instr.Instruction, nbOutputs int) []int {
	key := probe.Key()
	if prior, ok := g.cseIndex[key]; ok {
		return prior.Outputs
	}
	outputs := make([]int, nbOutputs)
	for i := range outputs {
		outputs[i] = g.allocID()
	}
	probe.Outputs = outputs
	g.cseIndex[key] = probe
	g.queue = append(g.queue, probe)
	g.numMulGates += probe.GateCost()
	return outputs
}

func (g *Generator) createInputWire(desc string) Wire {
	id := g.allocID()
	g.queue = append(g.queue, &instr.Instruction{Op: instr.OpInputLabel, Outputs: []int{id}, Description: desc})
	w := Wire{kind: KindVariable, id: id}
	g.inputs = append(g.inputs, w)
	return w
}

// CreateInput allocates a new public-input wire (spec §4.3 "createInput").
func (g *Generator) CreateInput(desc string) Wire {
	w := g.createInputWire(desc)
	g.cfg.Logger.Trace().Int("id", w.id).Str("desc", desc).Msg("circuit: input declared")
	return w
}

// CreateProverWitness allocates a new private-witness wire (spec §4.3
// "createProverWitness").
func (g *Generator) CreateProverWitness(desc string) Wire {
	id := g.allocID()
	g.queue = append(g.queue, &instr.Instruction{Op: instr.OpWitnessLabel, Outputs: []int{id}, Description: desc})
	w := Wire{kind: KindVariable, id: id}
	g.witnesses = append(g.witnesses, w)
	g.cfg.Logger.Trace().Int("id", id).Str("desc", desc).Msg("circuit: witness declared")
	return w
}

// MakeOutput marks w as a circuit output (spec §4.3 "makeOutput"). If w is
// a prover-witness or input wire, a fresh variable is introduced via
// mul(w, one) to avoid role overloading (kept per the spec's recorded Open
// Question, for bit-exact .arith compatibility); a linear combination is
// packed first; an already-plain variable is used directly.
func (g *Generator) MakeOutput(w Wire) Wire {
	if w.IsLinearCombination() {
		w = g.PackIfNeeded(w)
	} else if g.isRoleOverloaded(w) {
		g.cfg.Logger.Warn().Int("id", w.id).Msg("circuit: makeOutput on an input/witness wire forces a redundant constraint")
		w = g.Mul(w, g.oneWire)
	}
	g.queue = append(g.queue, &instr.Instruction{Op: instr.OpOutputLabel, Inputs: []int{w.ID()}})
	g.outputs = append(g.outputs, w)
	return w
}

func (g *Generator) isRoleOverloaded(w Wire) bool {
	for _, in := range g.inputs {
		if in.id == w.id {
			return true
		}
	}
	for _, wi := range g.witnesses {
		if wi.id == w.id {
			return true
		}
	}
	return false
}

// AddAssertion emits assert(w1,w2,w3) (w1*w2 == w3), or verifies it eagerly
// at construction time when all three operands are constants (spec §4.3
// "addAssertion").
func (g *Generator) AddAssertion(w1, w2, w3 Wire) error {
	if w1.IsConstant() && w2.IsConstant() && w3.IsConstant() {
		lhs := field.Mul(w1.value, w2.value)
		if !field.Equal(lhs, w3.value) {
			return errConstAssertConflict(w1.value, w2.value, w3.value)
		}
		return nil
	}
	w1 = g.PackIfNeeded(w1)
	w2 = g.PackIfNeeded(w2)
	w3 = g.PackIfNeeded(w3)
	g.emitDedup(&instr.Instruction{Op: instr.OpAssert, Inputs: []int{w1.ID(), w2.ID(), w3.ID()}}, 0)
	return nil
}

// SpecifyProverWitnessComputation appends a hint instruction that the
// evaluator runs outside the R1CS (spec §4.3,§9): it never contributes a
// gate and the serializer never emits it.
func (g *Generator) SpecifyProverWitnessComputation(hint instr.HintID, inputs []Wire, nbOutputs int) []Wire {
	ids := make([]int, len(inputs))
	for i, w := range inputs {
		ids[i] = g.PackIfNeeded(w).ID()
	}
	outputs := make([]Wire, nbOutputs)
	outIDs := make([]int, nbOutputs)
	for i := range outputs {
		outputs[i] = g.newVariable()
		outIDs[i] = outputs[i].id
	}
	g.queue = append(g.queue, &instr.Instruction{Op: instr.OpHint, Hint: hint, Inputs: ids, Outputs: outIDs})
	return outputs
}

// RegisterHint installs a custom hint function under id, overriding or
// extending instr.DefaultHints for this generator only.
func (g *Generator) RegisterHint(id instr.HintID, fn instr.HintFn) {
	g.hints[id] = fn
}

func (g *Generator) hintFn(id instr.HintID) (instr.HintFn, bool) {
	fn, ok := g.hints[id]
	return fn, ok
}

// HintFn exposes the generator's hint table to the evaluator package
// without making g.hints part of the public struct.
func (g *Generator) HintFn(id instr.HintID) (instr.HintFn, bool) {
	return g.hintFn(id)
}
