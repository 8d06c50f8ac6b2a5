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
	"math/big"

	"github.com/wireforge/r1cs/instr"
)

// And returns a·b (spec §4.1 "On BitWire operands: a AND b = a·b (mul gate,
// output boolean)"). a and b must already be boolean.
func (g *Generator) And(a, b Wire) Wire {
	out := g.Mul(a, b)
	out.boolean = true
	return out
}

// Or returns a | b via the "or" primitive (1 gate). a and b must be boolean.
func (g *Generator) Or(a, b Wire) Wire {
	a = g.PackIfNeeded(a)
	b = g.PackIfNeeded(b)
	probe := &instr.Instruction{Op: instr.OpOr, Inputs: []int{a.ID(), b.ID()}}
	outs := g.emitDedup(probe, 1)
	return Wire{kind: KindBitWire, id: outs[0], boolean: true}
}

// Xor returns a ^ b via the "xor" primitive (1 gate). a and b must be boolean.
func (g *Generator) Xor(a, b Wire) Wire {
	a = g.PackIfNeeded(a)
	b = g.PackIfNeeded(b)
	probe := &instr.Instruction{Op: instr.OpXor, Inputs: []int{a.ID(), b.ID()}}
	outs := g.emitDedup(probe, 1)
	return Wire{kind: KindBitWire, id: outs[0], boolean: true}
}

// Not returns 1 - a (spec §4.1 "NOT a = 1 - a"). No gate: it is a linear
// combination.
func (g *Generator) Not(a Wire) Wire {
	w := g.Sub(g.oneWire, a)
	if a.IsBoolean() {
		if lc, ok := withBoolean(w); ok {
			return lc
		}
	}
	return w
}

// withBoolean upgrades an Add/Sub result to its boolean-tagged Kind; Not
// calls it only when the operand it was derived from was itself
// known-boolean (1-a is always a linear combination here, since the
// one-wire is a variable wire, not a folded constant).
func withBoolean(w Wire) (Wire, bool) {
	if w.kind == KindLinearCombination {
		w.kind = KindLinearCombinationBitWire
		w.boolean = true
		return w, true
	}
	return w, false
}

// Split constrains a = Σ 2ⁱ·bᵢ and returns the n little-endian bit wires
// (spec §4.1 "Bit split"). Each returned wire is a KindBitWire: boolean
// by construction, no separate assertion needed.
func (g *Generator) Split(a Wire, n int) []Wire {
	a = g.PackIfNeeded(a)
	probe := &instr.Instruction{Op: instr.OpSplit, Inputs: []int{a.ID()}, NbBits: n}
	outs := g.emitDedup(probe, n)
	bits := make([]Wire, n)
	for i, id := range outs {
		bits[i] = Wire{kind: KindBitWire, id: id, boolean: true}
	}
	return bits
}

// Pack returns Σ 2ⁱ·bits[i] (spec §4.1 "Packing"), the inverse of Split
// (spec §8 invariant 7: pack(split(w,n)) == w mod 2ⁿ). Emits the "pack"
// primitive (zero gates — §4.2's gate cost for pack is 0, since its value
// is a linear combination of its inputs — but it is still a real queued
// instruction so the serializer can emit the §6 "pack in <n> <id…> out 1
// <id>" line). Every input must already be boolean.
func (g *Generator) Pack(bits []Wire) Wire {
	ids := make([]int, len(bits))
	for i, b := range bits {
		ids[i] = g.PackIfNeeded(b).ID()
	}
	probe := &instr.Instruction{Op: instr.OpPack, Inputs: ids}
	outs := g.emitDedup(probe, 1)
	return Wire{kind: KindVariable, id: outs[0]}
}

// Zerop returns (m, y): y is 1 iff x != 0, m is x⁻¹ if x != 0 else 0 (spec
// §4.1 "Equality-to-constant", §4.2 "zerop"). A single zerop instruction
// carries both multiplication gates (the constraints x·m=y, x·(1-y)=0 it
// stands for); the values of m and y are computed by instr.Compute
// (instr/compute.go), not by a separate hint call.
func (g *Generator) Zerop(x Wire) (m, y Wire) {
	x = g.PackIfNeeded(x)
	probe := &instr.Instruction{Op: instr.OpZerop, Inputs: []int{x.ID()}}
	outs := g.emitDedup(probe, 2)
	return Wire{kind: KindVariable, id: outs[0]}, Wire{kind: KindBitWire, id: outs[1], boolean: true}
}

// IsZero returns the non-zero indicator's complement: 1 iff x == 0.
func (g *Generator) IsZero(x Wire) Wire {
	_, y := g.Zerop(x)
	return g.Not(y)
}

// IsEqualTo returns 1 iff a == c (spec §4.1 "Equality-to-constant":
// "isEqualTo(c) ... computed as NOT zerop(a - c)").
func (g *Generator) IsEqualTo(a Wire, c *big.Int) Wire {
	return g.IsZero(g.Sub(a, g.CreateConstant(c)))
}

// Select implements the MUX gadget cond·t + (1-cond)·f (spec §4.1
// "Selection (MUX)"). cond must be boolean.
func (g *Generator) Select(cond, t, f Wire) Wire {
	return g.Add(g.Mul(cond, t), g.Mul(g.Not(cond), f))
}

// AssertZero asserts w == 0 (lowers to assert(w, one, zero)).
func (g *Generator) AssertZero(w Wire) error {
	return g.AddAssertion(w, g.oneWire, g.zeroWire)
}

// AssertOne asserts w == 1 (lowers to assert(w, one, one)).
func (g *Generator) AssertOne(w Wire) error {
	return g.AddAssertion(w, g.oneWire, g.oneWire)
}

// AssertEq asserts w == v (lowers to assert(w, one, v)).
func (g *Generator) AssertEq(w Wire, v Wire) error {
	return g.AddAssertion(w, g.oneWire, v)
}

// AssertBoolean asserts w ∈ {0,1} (lowers to assert(w, w, w): a value
// satisfies x² = x iff it is 0 or 1). A no-op if w is already known boolean.
func (g *Generator) AssertBoolean(w Wire) error {
	if w.IsBoolean() {
		return nil
	}
	return g.AddAssertion(w, w, w)
}
