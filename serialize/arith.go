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

// Package serialize emits the bit-exact text formats of spec §6: the
// arithmetic-circuit (.arith) file and the witness (.in) file.
package serialize

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/wireforge/r1cs/circuit"
	"github.com/wireforge/r1cs/instr"
)

// WriteArith writes gen's .arith file (spec §6 "Arithmetic-circuit file"):
// a "total" header followed by one line per in-circuit instruction, in
// queue order. Hint instructions (doneWithinCircuit == false) are skipped.
func WriteArith(w io.Writer, gen *circuit.Generator) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "total %d\n", gen.NbWires()); err != nil {
		return err
	}
	for _, in := range gen.Queue() {
		if !in.DoneWithinCircuit() {
			continue
		}
		if err := writeArithLine(bw, in); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeArithLine(w io.Writer, in *instr.Instruction) error {
	switch in.Op {
	case instr.OpInputLabel:
		if in.Description != "" {
			_, err := fmt.Fprintf(w, "input %d # %s\n", in.Outputs[0], in.Description)
			return err
		}
		_, err := fmt.Fprintf(w, "input %d\n", in.Outputs[0])
		return err
	case instr.OpWitnessLabel:
		if in.Description != "" {
			_, err := fmt.Fprintf(w, "nizkinput %d # %s\n", in.Outputs[0], in.Description)
			return err
		}
		_, err := fmt.Fprintf(w, "nizkinput %d\n", in.Outputs[0])
		return err
	case instr.OpOutputLabel:
		_, err := fmt.Fprintf(w, "output %d\n", in.Inputs[0])
		return err
	case instr.OpConstMul:
		_, err := fmt.Fprintf(w, "const-mul-%s in 1 %d out 1 %d\n", in.Coeff.Text(16), in.Inputs[0], in.Outputs[0])
		return err
	case instr.OpSplit:
		_, err := fmt.Fprintf(w, "split in 1 %d out %d %s\n", in.Inputs[0], len(in.Outputs), joinInts(in.Outputs))
		return err
	case instr.OpPack:
		_, err := fmt.Fprintf(w, "pack in %d %s out 1 %d\n", len(in.Inputs), joinInts(in.Inputs), in.Outputs[0])
		return err
	case instr.OpMul, instr.OpAdd, instr.OpOr, instr.OpXor, instr.OpZerop, instr.OpAssert:
		_, err := fmt.Fprintf(w, "%s in %d %s out %d %s\n",
			in.Op.String(), len(in.Inputs), joinInts(in.Inputs), len(in.Outputs), joinInts(in.Outputs))
		return err
	default:
		return fmt.Errorf("serialize: opcode %s has no .arith rendering", in.Op)
	}
}

func joinInts(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, " ")
}
