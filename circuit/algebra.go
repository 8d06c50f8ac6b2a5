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

	"github.com/wireforge/r1cs/field"
	"github.com/wireforge/r1cs/instr"
)

var bigOne = big.NewInt(1)

// linExp returns w's value as Σ terms[i].Coeff*A[terms[i].WireID] + offset
// (spec §4.1). Constant wires contribute no terms, only an offset; a plain
// Variable/BitWire contributes itself with coefficient 1.
func linExp(w Wire) ([]Term, *big.Int) {
	switch w.kind {
	case KindConstant:
		return nil, new(big.Int).Set(w.value)
	case KindLinearCombination, KindLinearCombinationBitWire:
		return append([]Term(nil), w.terms...), new(big.Int).Set(w.offset)
	default: // Variable, BitWire
		return []Term{{Coeff: new(big.Int).Set(bigOne), WireID: w.id}}, big.NewInt(0)
	}
}

// fromLinExp builds the Wire for a linear combination, folding to a
// constant when there are no symbolic terms left (spec §4.1: constant
// results always fold).
func (g *Generator) fromLinExp(terms []Term, offset *big.Int) Wire {
	if len(terms) == 0 {
		return g.CreateConstant(offset)
	}
	return Wire{kind: KindLinearCombination, terms: terms, offset: field.Reduce(offset)}
}

// Add returns a + b (spec §4.1 "Arithmetic"): both-constant folds in the
// field; otherwise the result stays a symbolic linear combination — no
// instruction is emitted until something forces PackIfNeeded.
func (g *Generator) Add(a, b Wire) Wire {
	if a.IsConstant() && b.IsConstant() {
		return g.CreateConstant(field.Add(a.value, b.value))
	}
	ta, oa := linExp(a)
	tb, ob := linExp(b)
	return g.fromLinExp(append(ta, tb...), field.Add(oa, ob))
}

// Sub returns a - b.
func (g *Generator) Sub(a, b Wire) Wire {
	return g.Add(a, g.Neg(b))
}

// Neg returns -a.
func (g *Generator) Neg(a Wire) Wire {
	if a.IsConstant() {
		return g.CreateConstant(field.Neg(a.value))
	}
	terms, offset := linExp(a)
	negTerms := make([]Term, len(terms))
	for i, t := range terms {
		negTerms[i] = Term{Coeff: field.Neg(t.Coeff), WireID: t.WireID}
	}
	return g.fromLinExp(negTerms, field.Neg(offset))
}

// CreateConstant returns the cached wire for c, materializing it via
// const-mul(one, c) the first time c is seen (spec §4.3 "createConstant":
// "internally oneWire.mul(c), which const-folds if c is already cached and
// otherwise emits a const-mul"). c == 0 and c == 1 are both special-cased to
// fold without allocating a new id at all (spec §3 Generator invariant: "the
// zero-wire is obtained as one · 0 (constant-folded) and never allocates a
// new id") — 1 reuses the one-wire's own id, 0 uses the reserved sentinel
// id 0 ("wire id 0 does not exist" as an allocated wire, but the evaluator
// pre-populates it to the field zero the same way it pre-populates id 1 to
// one, so it is always safe to reference directly as an instruction input).
func (g *Generator) CreateConstant(c *big.Int) Wire {
	c = field.Reduce(c)
	key := c.Text(16)
	if w, ok := g.constants[key]; ok {
		return w
	}
	if c.Sign() == 0 {
		w := Wire{kind: KindConstant, id: 0, value: big.NewInt(0), boolean: true}
		g.constants[key] = w
		return w
	}
	if c.Cmp(bigOne) == 0 {
		w := Wire{kind: KindConstant, id: g.oneWire.id, value: new(big.Int).Set(c), boolean: true}
		g.constants[key] = w
		return w
	}
	probe := &instr.Instruction{Op: instr.OpConstMul, Inputs: []int{g.oneWire.id}, Coeff: c}
	outs := g.emitDedup(probe, 1)
	w := Wire{kind: KindConstant, id: outs[0], value: c, boolean: field.IsBoolean(c)}
	g.constants[key] = w
	return w
}

// MulConst returns c * a (spec §4.1: "Multiplication by a constant is
// const-mul (no gate)"). Constants fold in the field; linear combinations
// scale symbolically; a plain wire emits (or reuses) one const-mul
// instruction.
func (g *Generator) MulConst(a Wire, c *big.Int) Wire {
	c = field.Reduce(c)
	if a.IsConstant() {
		return g.CreateConstant(field.Mul(a.value, c))
	}
	if a.IsLinearCombination() {
		scaled := make([]Term, len(a.terms))
		for i, t := range a.terms {
			scaled[i] = Term{Coeff: field.Mul(t.Coeff, c), WireID: t.WireID}
		}
		return g.fromLinExp(scaled, field.Mul(a.offset, c))
	}
	if c.Sign() == 0 {
		return g.CreateConstant(big.NewInt(0))
	}
	if c.Cmp(bigOne) == 0 {
		return a
	}
	probe := &instr.Instruction{Op: instr.OpConstMul, Inputs: []int{a.ID()}, Coeff: c}
	outs := g.emitDedup(probe, 1)
	return Wire{kind: KindVariable, id: outs[0]}
}

// Mul returns a * b (spec §4.1 "Symbolic multiplication -> pack both
// operands (if linear-combination) via multiply-by-one, then emit mul").
func (g *Generator) Mul(a, b Wire) Wire {
	if a.IsConstant() && b.IsConstant() {
		return g.CreateConstant(field.Mul(a.value, b.value))
	}
	if a.IsConstant() {
		return g.MulConst(b, a.value)
	}
	if b.IsConstant() {
		return g.MulConst(a, b.value)
	}
	a = g.PackIfNeeded(a)
	b = g.PackIfNeeded(b)
	probe := &instr.Instruction{Op: instr.OpMul, Inputs: []int{a.ID(), b.ID()}}
	outs := g.emitDedup(probe, 1)
	return Wire{kind: KindVariable, id: outs[0]}
}

// PackIfNeeded materializes a linear combination into a single variable
// wire (spec §4.1 "packIfNeeded"; §9 "packed into a new variable via a
// multiply-by-one constraint"). Already single-wire values (Variable,
// BitWire, Constant) are returned unchanged — idempotent (spec §8
// invariant 8).
//
// Implementation: each weighted term is first reduced to a concrete wire
// (const-mul if its coefficient isn't 1 — zero gates), the concrete wires
// are folded pairwise via "add" instructions (zero gates each — the §8 dot-
// product scenario's "2-op add chain"), and the single remaining wire is
// finally wrapped in one mul-by-one constraint (1 gate — the scenario's
// "pack-multiply").
func (g *Generator) PackIfNeeded(w Wire) Wire {
	if !w.IsLinearCombination() {
		return w
	}
	terms := append([]Term(nil), w.terms...)
	if w.offset.Sign() != 0 {
		cw := g.CreateConstant(w.offset)
		terms = append(terms, Term{Coeff: new(big.Int).Set(bigOne), WireID: cw.id})
	}
	if len(terms) == 0 {
		return g.CreateConstant(big.NewInt(0))
	}

	concrete := make([]int, len(terms))
	for i, t := range terms {
		if t.Coeff.Cmp(bigOne) == 0 {
			concrete[i] = t.WireID
			continue
		}
		scaled := g.MulConst(Wire{kind: KindVariable, id: t.WireID}, t.Coeff)
		concrete[i] = scaled.id
	}

	sum := concrete[0]
	for i := 1; i < len(concrete); i++ {
		probe := &instr.Instruction{Op: instr.OpAdd, Inputs: []int{sum, concrete[i]}}
		outs := g.emitDedup(probe, 1)
		sum = outs[0]
	}

	packProbe := &instr.Instruction{Op: instr.OpMul, Inputs: []int{sum, g.oneWire.id}}
	outs := g.emitDedup(packProbe, 1)

	kind, boolean := KindVariable, false
	if w.kind == KindLinearCombinationBitWire {
		kind, boolean = KindBitWire, true
	}
	return Wire{kind: kind, id: outs[0], boolean: boolean}
}
