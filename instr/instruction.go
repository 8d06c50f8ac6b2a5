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

package instr

import (
	"math/big"
	"strconv"
	"strings"
)

// HintID identifies a witness-only computation run by the evaluator outside
// the R1CS (spec §3 "Witness-computation op", §9 "Witness-outside-circuit").
// Grounded on gnark's constraint/solver.HintID table
// (61955856_amit0365-gnark__constraint-bls12-381-solver.go.go).
type HintID uint8

const (
	// HintInverseOrZero computes m = x^-1 if x != 0 else 0, the same value
	// as the zerop primitive's m output (spec §4.1 "Equality-to-constant").
	// OpZerop itself computes m in Compute and does not use this hint.
	HintInverseOrZero HintID = iota
)

// Instruction is a single node in the generator's evaluation queue: either a
// basic op (emitted into the .arith file), a label op (serializer-only
// marker), or a hint (evaluator-only witness computation).
type Instruction struct {
	Op     Opcode
	Inputs []int
	Outputs []int

	// Description is an optional human-readable annotation carried through
	// to the .arith file as a trailing comment (spec §6, input declarations).
	Description string

	// Coeff holds the scalar for OpConstMul.
	Coeff *big.Int

	// NbBits holds the split width for OpSplit.
	NbBits int

	// Hint holds the witness-function identifier for OpHint.
	Hint HintID
}

// GateCost returns the number of multiplication gates this instruction
// contributes to the constraint tally (spec §3, §4.2).
func (in *Instruction) GateCost() int {
	if in.Op == OpSplit {
		return in.NbBits
	}
	c, ok := gateCost[in.Op]
	if !ok {
		return 0
	}
	return c
}

// DoneWithinCircuit reports whether this instruction is emitted into the
// R1CS (spec §3: hints report false; everything else, true).
func (in *Instruction) DoneWithinCircuit() bool {
	return in.Op != OpHint
}

// Key returns the structural-equality key used by the generator's CSE
// index: opcode plus the input-id sequence, with commutative ops' two
// operands sorted into a canonical order so swapped-operand duplicates
// collide (spec §4.2 "Equality (for queue deduplication)").
//
// Output ids are deliberately excluded: CSE identifies an instruction by
// what it consumes, not what it (would) produce.
func (in *Instruction) Key() string {
	inputs := in.Inputs
	if in.Op.Commutative() && len(inputs) == 2 && inputs[0] > inputs[1] {
		inputs = []int{inputs[1], inputs[0]}
	}
	var b strings.Builder
	b.WriteString(in.Op.String())
	for _, id := range inputs {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(id))
	}
	if in.Op == OpConstMul && in.Coeff != nil {
		b.WriteByte(':')
		b.WriteString(in.Coeff.Text(16))
	}
	if in.Op == OpSplit {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(in.NbBits))
	}
	if in.Op == OpHint {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(int(in.Hint)))
	}
	return b.String()
}
