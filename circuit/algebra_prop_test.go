package circuit_test

import (
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/wireforge/r1cs/circuit"
	"github.com/wireforge/r1cs/evaluator"
)

// Property-based algebra tests (spec §8 "Universal invariants"), grounded on
// gnark's own use of gopter for field-arithmetic properties.

func TestPropertySplitPackRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("pack(split(w,16)) == w mod 2^16", prop.ForAll(
		func(v int64) bool {
			g := circuit.New()
			defer g.Close()

			w := g.CreateInput("w")
			bits := g.Split(w, 16)
			packed := g.MakeOutput(g.Pack(bits))

			ev := evaluator.New(g)
			if err := ev.Assign(w, big.NewInt(v)); err != nil {
				return false
			}
			if err := ev.Run(); err != nil {
				return false
			}
			got, err := ev.Value(packed)
			if err != nil {
				return false
			}
			return got.Cmp(big.NewInt(v)) == 0
		},
		gen.Int64Range(0, 65535),
	))

	properties.TestingRun(t)
}

func TestPropertyCommutativeOpsDedupRegardlessOfOrder(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("mul(a,b) and mul(b,a) share one output wire", prop.ForAll(
		func(swapped bool) bool {
			g := circuit.New()
			defer g.Close()

			a := g.CreateInput("a")
			b := g.CreateInput("b")

			var first, second circuit.Wire
			if swapped {
				first = g.Mul(b, a)
				second = g.Mul(a, b)
			} else {
				first = g.Mul(a, b)
				second = g.Mul(b, a)
			}
			return first.ID() == second.ID() && g.NumMulGates() == 1
		},
		gen.Bool(),
	))

	properties.Property("or(a,b) and or(b,a) share one output wire", prop.ForAll(
		func(swapped bool) bool {
			g := circuit.New()
			defer g.Close()

			a := g.And(g.CreateInput("a"), g.CreateInput("a"))
			b := g.And(g.CreateInput("b"), g.CreateInput("b"))

			var first, second circuit.Wire
			if swapped {
				first = g.Or(b, a)
				second = g.Or(a, b)
			} else {
				first = g.Or(a, b)
				second = g.Or(b, a)
			}
			return first.ID() == second.ID()
		},
		gen.Bool(),
	))

	properties.TestingRun(t)
}

func TestPropertyPackIfNeededIdempotentAcrossArity(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	properties := gopter.NewProperties(parameters)

	properties.Property("packing a random-arity linear combination twice yields the same wire", prop.ForAll(
		func(coeffs []int64) bool {
			if len(coeffs) == 0 {
				return true
			}
			g := circuit.New()
			defer g.Close()

			var lc circuit.Wire
			for i, c := range coeffs {
				in := g.CreateInput("x")
				term := g.MulConst(in, big.NewInt(c))
				if i == 0 {
					lc = term
				} else {
					lc = g.Add(lc, term)
				}
			}
			if !lc.IsLinearCombination() {
				return true
			}
			first := g.PackIfNeeded(lc)
			second := g.PackIfNeeded(first)
			return first.ID() == second.ID() && !second.IsLinearCombination()
		},
		gen.SliceOfN(4, gen.Int64Range(1, 9)),
	))

	properties.TestingRun(t)
}
