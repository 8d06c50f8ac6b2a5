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

	"github.com/wireforge/r1cs/field"
)

// HintFn computes a witness-only value from already-assigned inputs. Each
// circuit.Generator owns a table of these, and the evaluator looks hints up
// in its generator's table (spec §9 "Witness-outside-circuit": "Model as an
// enum discriminant on the instruction, not as two separate queues").
type HintFn func(inputs []*big.Int) []*big.Int

// DefaultHints is the built-in hint table. Every Generator starts with a
// copy of it, which Generator.RegisterHint can override or extend for that
// generator; Compute's OpHint case uses this table directly.
var DefaultHints = map[HintID]HintFn{
	HintInverseOrZero: func(inputs []*big.Int) []*big.Int {
		x := inputs[0]
		if field.IsZero(x) {
			return []*big.Int{big.NewInt(0)}
		}
		return []*big.Int{field.Inverse(x)}
	},
}

// CheckInputs validates that in's already-assigned input values satisfy the
// opcode's preconditions (spec §4.2 "checkInputs enforces boolean-valued
// wires carry values in {0,1}").
func (in *Instruction) CheckInputs(values []*big.Int) error {
	switch in.Op {
	case OpOr, OpXor, OpPack:
		for _, v := range values {
			if !field.IsBoolean(v) {
				return errNotBoolean(in.Op.String(), v.Text(16))
			}
		}
	}
	return nil
}

// Compute evaluates in given its already-assigned input values, returning
// the output values in output order (spec §4.2 "Compute" column).
func (in *Instruction) Compute(values []*big.Int) ([]*big.Int, error) {
	if err := in.CheckInputs(values); err != nil {
		return nil, err
	}
	switch in.Op {
	case OpMul:
		return []*big.Int{field.Mul(values[0], values[1])}, nil
	case OpConstMul:
		return []*big.Int{field.Mul(in.Coeff, values[0])}, nil
	case OpAdd:
		return []*big.Int{field.Add(values[0], values[1])}, nil
	case OpOr:
		if values[0].Sign() != 0 || values[1].Sign() != 0 {
			return []*big.Int{big.NewInt(1)}, nil
		}
		return []*big.Int{big.NewInt(0)}, nil
	case OpXor:
		a := values[0].Sign() != 0
		b := values[1].Sign() != 0
		if a != b {
			return []*big.Int{big.NewInt(1)}, nil
		}
		return []*big.Int{big.NewInt(0)}, nil
	case OpZerop:
		x := values[0]
		if field.IsZero(x) {
			return []*big.Int{big.NewInt(0), big.NewInt(0)}, nil
		}
		return []*big.Int{field.Inverse(x), big.NewInt(1)}, nil
	case OpSplit:
		bits, err := field.Decompose(values[0], in.NbBits)
		if err != nil {
			return nil, errSplitOverflow(in.NbBits, values[0].Text(16))
		}
		return bits, nil
	case OpPack:
		return []*big.Int{field.Recompose(values)}, nil
	case OpAssert:
		lhs := field.Mul(values[0], values[1])
		if !field.Equal(lhs, values[2]) {
			return nil, errAssertFailed(values[0].Text(16), values[1].Text(16), values[2].Text(16))
		}
		return nil, nil
	case OpHint:
		fn, ok := DefaultHints[in.Hint]
		if !ok {
			return nil, errUnknownHint(in.Hint)
		}
		return fn(values), nil
	default:
		return nil, errUnknownOpcode(in.Op)
	}
}
