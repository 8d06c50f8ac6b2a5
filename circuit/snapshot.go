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

	"github.com/fxamacker/cbor/v2"

	"github.com/wireforge/r1cs/instr"
)

// snapshotInstruction is instr.Instruction's CBOR-friendly shadow: Coeff
// travels as raw bytes since cbor has no native big.Int support.
type snapshotInstruction struct {
	Op          instr.Opcode
	Inputs      []int
	Outputs     []int
	Description string
	Coeff       []byte
	NbBits      int
	Hint        instr.HintID
}

type snapshotEnvelope struct {
	FieldPrime    []byte
	CurrentWireID int
	Queue         []snapshotInstruction
	Inputs        []int
	Witnesses     []int
	Outputs       []int
}

// Snapshot CBOR-encodes g's instruction queue and wire bookkeeping into the
// circuit-definition cache's binary form, so a client can persist a
// compiled circuit shape across process runs without replaying its build
// routine. Grounded on gnark's R1CS.WriteTo
// (9526eafe_omarofo-gnark__...-r1cs.go.go): a single cbor.Marshal of the
// whole struct, no custom wire format.
func (g *Generator) Snapshot() ([]byte, error) {
	env := snapshotEnvelope{
		FieldPrime:    g.cfg.FieldPrime.Bytes(),
		CurrentWireID: g.currentWireID,
		Queue:         make([]snapshotInstruction, len(g.queue)),
		Inputs:        wireIDs(g.inputs),
		Witnesses:     wireIDs(g.witnesses),
		Outputs:       wireIDs(g.outputs),
	}
	for i, in := range g.queue {
		var coeff []byte
		if in.Coeff != nil {
			coeff = in.Coeff.Bytes()
		}
		env.Queue[i] = snapshotInstruction{
			Op:          in.Op,
			Inputs:      in.Inputs,
			Outputs:     in.Outputs,
			Description: in.Description,
			Coeff:       coeff,
			NbBits:      in.NbBits,
			Hint:        in.Hint,
		}
	}
	return cbor.Marshal(env)
}

func wireIDs(ws []Wire) []int {
	ids := make([]int, len(ws))
	for i, w := range ws {
		ids[i] = w.id
	}
	return ids
}

// RestoreSnapshot reconstructs a Generator from data previously produced by
// Snapshot, without re-running the client's build routine. The CSE index is
// rebuilt from the restored queue so further construction on the restored
// generator still deduplicates correctly against it; the constant cache
// (Generator.constants) is left empty — CreateConstant falls through to the
// same CSE index on a cache miss and finds the restored const-mul there, so
// no duplicate const-mul is emitted.
func RestoreSnapshot(data []byte, opts ...Option) (*Generator, error) {
	var env snapshotEnvelope
	if err := cbor.Unmarshal(data, &env); err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(env.FieldPrime) > 0 {
		cfg.FieldPrime = new(big.Int).SetBytes(env.FieldPrime)
	}

	g := &Generator{
		cfg:           cfg,
		currentWireID: env.CurrentWireID,
		cseIndex:      map[string]*instr.Instruction{},
		constants:     map[string]Wire{},
		hints:         map[instr.HintID]instr.HintFn{},
	}
	for id, fn := range instr.DefaultHints {
		g.hints[id] = fn
	}

	g.queue = make([]*instr.Instruction, len(env.Queue))
	for i, si := range env.Queue {
		var coeff *big.Int
		if si.Coeff != nil {
			coeff = new(big.Int).SetBytes(si.Coeff)
		}
		in := &instr.Instruction{
			Op:          si.Op,
			Inputs:      si.Inputs,
			Outputs:     si.Outputs,
			Description: si.Description,
			Coeff:       coeff,
			NbBits:      si.NbBits,
			Hint:        si.Hint,
		}
		g.queue[i] = in
		if len(in.Outputs) > 0 {
			g.cseIndex[in.Key()] = in
		}
		g.numMulGates += in.GateCost()
	}

	g.oneWire = Wire{kind: KindVariable, id: 1}
	g.zeroWire = g.CreateConstant(big.NewInt(0))

	g.inputs = wiresFromIDs(env.Inputs)
	g.witnesses = wiresFromIDs(env.Witnesses)
	g.outputs = wiresFromIDs(env.Outputs)

	SetActive(g)
	return g, nil
}

func wiresFromIDs(ids []int) []Wire {
	ws := make([]Wire, len(ids))
	for i, id := range ids {
		ws[i] = Wire{kind: KindVariable, id: id}
	}
	return ws
}
