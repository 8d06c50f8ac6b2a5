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

// Package instr defines the closed set of R1CS-emittable primitive
// operations (spec §4.2): their opcodes, input/output shapes,
// multiplication-gate costs, and the structural equality used for the
// generator's common-subexpression elimination.
package instr

// Opcode identifies a primitive operation.
type Opcode uint8

const (
	OpMul Opcode = iota
	OpConstMul
	OpAdd
	OpOr
	OpXor
	OpZerop
	OpSplit
	OpPack
	OpAssert

	// Label opcodes never reach the serializer as gates; they mark a wire's
	// role for the .arith/.in emitters (spec §3 "Label op").
	OpInputLabel
	OpWitnessLabel
	OpOutputLabel

	// OpHint is a witness-computation instruction (spec §3 "Witness-
	// computation op"): it is replayed by the evaluator but never emitted
	// into the .arith file. See HintID in instruction.go.
	OpHint
)

func (op Opcode) String() string {
	switch op {
	case OpMul:
		return "mul"
	case OpConstMul:
		return "const-mul"
	case OpAdd:
		return "add"
	case OpOr:
		return "or"
	case OpXor:
		return "xor"
	case OpZerop:
		return "zerop"
	case OpSplit:
		return "split"
	case OpPack:
		return "pack"
	case OpAssert:
		return "assert"
	case OpInputLabel:
		return "input"
	case OpWitnessLabel:
		return "nizkinput"
	case OpOutputLabel:
		return "output"
	case OpHint:
		return "hint"
	default:
		return "unknown"
	}
}

// IsLabel reports whether op is a label op (never emitted as a gate).
func (op Opcode) IsLabel() bool {
	switch op {
	case OpInputLabel, OpWitnessLabel, OpOutputLabel:
		return true
	default:
		return false
	}
}

// Commutative reports whether op treats its two operands as an unordered
// pair for CSE purposes (spec §4.2 table, "Commutative" column).
func (op Opcode) Commutative() bool {
	switch op {
	case OpMul, OpAdd, OpOr, OpXor:
		return true
	default:
		return false
	}
}
