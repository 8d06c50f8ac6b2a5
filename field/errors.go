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

package field

import (
	"errors"
	"fmt"
)

// ErrBitWidth is returned (wrapped) by Decompose when the value does not fit
// in the requested number of bits.
var ErrBitWidth = errors.New("field: value does not fit in requested bit width")

func errBitWidth(v fmt.Stringer, nbBits int) error {
	return fmt.Errorf("value %s does not fit in %d bits: %w", v, nbBits, ErrBitWidth)
}
