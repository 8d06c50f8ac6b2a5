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

// Command gen renders instr/gatecost_gen.go from the opcode table below,
// the way gnark's internal/generators renders its per-curve R1CS file from a
// bavard text/template (see
// internal/generators/backend/template/representations/r1cs.go in the
// upstream gnark tree). Run manually with `go run ./gen` after editing the
// opcodes slice; the rendered file is committed, not generated at build
// time.
package main

import (
	"log"

	"github.com/consensys/bavard"
)

type opcodeEntry struct {
	Name        string
	GateCost    int
	Commutative bool
}

// opcodes mirrors spec.md §4.2's opcode table. It is the single source of
// truth for gate costs; instr's compute/checkInputs switch and this table
// must never drift apart.
var opcodes = []opcodeEntry{
	{Name: "OpMul", GateCost: 1, Commutative: true},
	{Name: "OpConstMul", GateCost: 0, Commutative: false},
	{Name: "OpAdd", GateCost: 0, Commutative: true},
	{Name: "OpOr", GateCost: 1, Commutative: true},
	{Name: "OpXor", GateCost: 1, Commutative: true},
	{Name: "OpZerop", GateCost: 2, Commutative: false},
	{Name: "OpSplit", GateCost: -1, Commutative: false}, // -1: cost is n, the split width, resolved per-instruction
	{Name: "OpPack", GateCost: 0, Commutative: false},
	{Name: "OpAssert", GateCost: 1, Commutative: false},
}

const gateCostTemplate = `
// gateCost maps each fixed-cost opcode to its multiplication-gate count
// (spec.md §4.2). OpSplit is variable cost (the split width) and is not in
// this table; see Instruction.GateCost.
var gateCost = map[Opcode]int{
{{- range .Opcodes}}{{- if ge .GateCost 0}}
	{{.Name}}: {{.GateCost}},
{{- end}}{{- end}}
}
`

func main() {
	bavardOpts := []bavard.Option{
		bavard.Apache2("wireforge authors", 2024),
		bavard.Package("instr", "instr defines the closed set of R1CS-emittable primitive operations"),
		bavard.GeneratedBy("gen/main.go"),
	}

	data := struct{ Opcodes []opcodeEntry }{Opcodes: opcodes}

	if err := bavard.GenerateFromString("instr/gatecost_gen.go", []string{gateCostTemplate}, data, bavardOpts...); err != nil {
		log.Fatalf("gen: %v", err)
	}
}
