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

// Package circuit implements the wire algebra and the Generator that owns
// the instruction queue (spec §3, §4.1, §4.3). Wire and Generator share a
// package, the way gnark's frontend package keeps Variable and
// ConstraintSystem together, because every non-trivial Wire operation needs
// to allocate ids and append instructions on its owning Generator — keeping
// them apart would just move the coupling into an import cycle.
package circuit

import "math/big"

// Kind tags which of the spec's Wire variants (§3 table) a Wire is. All
// variants behave as a Wire for the public algebra in algebra.go; Kind only
// changes lowering policy.
type Kind uint8

const (
	// KindVariable is an ordinary circuit wire backed by an id.
	KindVariable Kind = iota
	// KindConstant is a known compile-time value; never allocates an id of
	// its own beyond the cached one-wire scaling.
	KindConstant
	// KindLinearCombination is a formal Σaᵢ·xᵢ + b kept symbolic until a
	// gate needs a single wire.
	KindLinearCombination
	// KindBitWire is a Variable additionally known to be boolean.
	KindBitWire
	// KindLinearCombinationBitWire is a boolean-valued linear combination.
	KindLinearCombinationBitWire
)

// Term is one aᵢ·xᵢ summand of a linear combination: coefficient aᵢ times
// the wire id xᵢ.
type Term struct {
	Coeff  *big.Int
	WireID int
}

// Wire is a handle to a field-valued quantity in the circuit (spec §3).
// The zero Wire is not valid; construct one via a Generator method.
type Wire struct {
	kind Kind

	// id is the wire's id. A KindLinearCombination wire may have id == 0,
	// meaning "not yet materialized" — it stays symbolic until packed. A
	// KindConstant wire may also legitimately have id == 0: that is the
	// reserved zero-wire sentinel (spec §3: "the zero-wire ... never
	// allocates a new id"), never produced by Generator.allocID and
	// pre-populated by the evaluator the same way the one-wire's id is.
	// Every other KindConstant wire is backed by a real allocated id (the
	// cached one-wire scaling that created it, or the one-wire's own id for
	// the constant 1) — "never allocates a new id" for those refers to
	// repeat lookups being served from the cache.
	id int

	// value holds the folded constant for KindConstant wires.
	value *big.Int

	// terms + offset describe a KindLinearCombination(BitWire): the wire's
	// value is Σ terms[i].Coeff * A[terms[i].WireID] + offset.
	terms  []Term
	offset *big.Int

	// boolean remembers whether this wire is already known to be in {0,1},
	// so redundant AssertBoolean calls are skipped (spec §3 "BitWire ...
	// Remembers boolean status to skip redundant bit assertions").
	boolean bool
}

// ID returns the wire's allocated id. It panics if called on a
// LinearCombination wire that has not been packed yet — callers that might
// hold an unpacked linear combination should go through Generator.PackIfNeeded
// first.
func (w Wire) ID() int {
	if w.id == 0 && w.IsLinearCombination() {
		panic("circuit: ID() called on an unpacked linear combination wire")
	}
	return w.id
}

// Kind reports the wire's variant.
func (w Wire) Kind() Kind { return w.kind }

// IsConstant reports whether w is a compile-time-known value.
func (w Wire) IsConstant() bool { return w.kind == KindConstant }

// IsLinearCombination reports whether w is still a symbolic linear
// combination (not yet packed into a single wire id).
func (w Wire) IsLinearCombination() bool {
	return w.kind == KindLinearCombination || w.kind == KindLinearCombinationBitWire
}

// IsBoolean reports whether w is already known to carry a {0,1} value.
func (w Wire) IsBoolean() bool { return w.boolean }

// ConstantValue returns w's folded value and true if w is a constant wire.
func (w Wire) ConstantValue() (*big.Int, bool) {
	if w.kind != KindConstant {
		return nil, false
	}
	return w.value, true
}
