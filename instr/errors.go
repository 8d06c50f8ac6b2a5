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
	"errors"
	"fmt"
)

// Sentinel errors per failure mode (spec §7.2 EvaluationInvariant, §7.3
// ConfigurationError), following the teacher/pack's plain errors.New +
// fmt.Errorf("%w", ...) convention so callers can errors.Is against a
// specific cause instead of type-asserting a custom error struct.
var (
	// ErrNotBoolean: an opcode that requires boolean-valued operands (or,
	// xor, pack) was given a non-{0,1} value.
	ErrNotBoolean = errors.New("instr: boolean-only opcode given a non-boolean input")

	// ErrSplitOverflow: split's input did not fit in the requested bit
	// width (spec §4.1 "fail if a ≥ 2ⁿ").
	ErrSplitOverflow = errors.New("instr: split input overflowed the requested bit width")

	// ErrAssertFailed: an assert op's w1*w2 != w3 at evaluation time (spec
	// §4.4 "assert ops verify at evaluation time; failure is fatal").
	ErrAssertFailed = errors.New("instr: assertion failed")

	// ErrUnknownHint: the instruction references a HintID with no
	// registered function.
	ErrUnknownHint = errors.New("instr: no hint function registered for this hint id")

	// ErrUnknownOpcode should never occur for well-formed instructions; it
	// guards against a future opcode added to the enum without a Compute
	// case.
	ErrUnknownOpcode = errors.New("instr: no compute rule for this opcode")
)

func errNotBoolean(opcode string, value string) error {
	return fmt.Errorf("%s requires boolean inputs, got 0x%s: %w", opcode, value, ErrNotBoolean)
}

func errSplitOverflow(nbBits int, value string) error {
	return fmt.Errorf("split into %d bits overflowed by value 0x%s: %w", nbBits, value, ErrSplitOverflow)
}

func errAssertFailed(a, b, c string) error {
	return fmt.Errorf("0x%s * 0x%s != 0x%s: %w", a, b, c, ErrAssertFailed)
}

func errUnknownHint(hint HintID) error {
	return fmt.Errorf("hint id %d: %w", hint, ErrUnknownHint)
}

func errUnknownOpcode(opcode Opcode) error {
	return fmt.Errorf("opcode %q: %w", opcode.String(), ErrUnknownOpcode)
}
