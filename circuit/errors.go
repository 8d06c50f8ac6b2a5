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
	"errors"
	"fmt"
	"math/big"
)

// Sentinel errors per failure mode (spec §7.1 ConstructionInvariant, §7.3
// ConfigurationError), following the teacher/pack's plain errors.New +
// fmt.Errorf("%w", ...) convention so callers can errors.Is against a
// specific cause instead of type-asserting a custom error struct.
var (
	// ErrConstAssertConflict: addAssertion was called with three
	// compile-time constants whose product does not match (spec §7.1,
	// §8 "Constant assertion conflict").
	ErrConstAssertConflict = errors.New("circuit: constant assertion conflict")

	// ErrNoActiveGenerator: no ambient generator is installed for the
	// calling goroutine. Active reports this case as ok=false; no function
	// in this package returns this error.
	ErrNoActiveGenerator = errors.New("circuit: no active generator for this goroutine (did you call circuit.New or Close it already?)")

	// ErrOutputOfNonExistentWire: a wire id greater than currentWireId (the
	// highest allocated id). MakeOutput and AddAssertion do not check ids
	// and never return this error.
	ErrOutputOfNonExistentWire = errors.New("circuit: wire id does not exist")
)

func errConstAssertConflict(a, b, c *big.Int) error {
	return fmt.Errorf("%s * %s != %s: %w", a, b, c, ErrConstAssertConflict)
}

func errOutputOfNonExistentWire(id, nbIDs int) error {
	return fmt.Errorf("wire id %d does not exist (only %d allocated): %w", id, nbIDs, ErrOutputOfNonExistentWire)
}
