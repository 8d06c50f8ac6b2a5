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

package serialize

import (
	"bufio"
	"fmt"
	"io"

	"github.com/wireforge/r1cs/circuit"
	"github.com/wireforge/r1cs/evaluator"
)

// WriteWitness writes gen's .in file (spec §6 "Witness file"): one line per
// declared input and witness wire, "<id> <hex-value>", values already
// reduced modulo p by the evaluator.
func WriteWitness(w io.Writer, gen *circuit.Generator, ev *evaluator.Evaluator) error {
	bw := bufio.NewWriter(w)
	for _, in := range append(append([]circuit.Wire{}, gen.Inputs()...), gen.Witnesses()...) {
		v, err := ev.Value(in)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(bw, "%d %s\n", in.ID(), v.Text(16)); err != nil {
			return err
		}
	}
	return bw.Flush()
}
