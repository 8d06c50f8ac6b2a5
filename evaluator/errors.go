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

package evaluator

import (
	"errors"
	"fmt"
)

// Sentinel errors per failure mode (spec §7.2 EvaluationInvariant), following
// the teacher/pack's plain errors.New + fmt.Errorf("%w", ...) convention so
// callers can errors.Is against a specific cause instead of type-asserting a
// custom error struct.
var (
	// ErrWireNotAssigned: Value or Run read a wire id that hasn't been
	// assigned yet (either out of range, or not yet reached by Run).
	ErrWireNotAssigned = errors.New("evaluator: wire has no assigned value")

	// ErrWireAlreadyAssigned: Assign (or an internal assign) targeted a
	// wire id that already carries a value.
	ErrWireAlreadyAssigned = errors.New("evaluator: wire is already assigned")

	// ErrIncompleteAssignment: Run finished replaying the instruction
	// queue but some allocated wire id was never assigned (spec §4.4
	// step 4 postcondition).
	ErrIncompleteAssignment = errors.New("evaluator: wire was never assigned a value")

	// ErrMissingHintFunction: Run hit a hint instruction whose HintID has
	// no registered function.
	ErrMissingHintFunction = errors.New("evaluator: no hint function registered for this hint id")
)

func errWireNotAssigned(id int) error {
	return fmt.Errorf("wire %d: %w", id, ErrWireNotAssigned)
}

func errWireAlreadyAssigned(id int) error {
	return fmt.Errorf("wire %d: %w", id, ErrWireAlreadyAssigned)
}

func errIncompleteAssignment(id int) error {
	return fmt.Errorf("wire %d: %w", id, ErrIncompleteAssignment)
}

func errMissingHintFunction(hintID int) error {
	return fmt.Errorf("hint id %d: %w", hintID, ErrMissingHintFunction)
}
