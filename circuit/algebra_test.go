package circuit

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPackIfNeededIdempotent(t *testing.T) {
	gen := New()
	defer gen.Close()

	a := gen.CreateInput("a")
	b := gen.CreateInput("b")
	lc := gen.Add(a, b)
	require.True(t, lc.IsLinearCombination())

	packed1 := gen.PackIfNeeded(lc)
	packed2 := gen.PackIfNeeded(packed1)
	require.Equal(t, packed1.id, packed2.id)
	require.False(t, packed2.IsLinearCombination())
}

func TestDependencyOrderWithinQueue(t *testing.T) {
	gen := New()
	defer gen.Close()

	a := gen.CreateInput("a")
	b := gen.CreateInput("b")
	gen.Mul(a, b)

	for _, in := range gen.Queue() {
		maxInput := 0
		for _, id := range in.Inputs {
			if id > maxInput {
				maxInput = id
			}
		}
		for _, id := range in.Outputs {
			require.Greater(t, id, maxInput, "every output id must exceed every input id")
		}
	}
}

func TestCreateConstantCachesByValue(t *testing.T) {
	gen := New()
	defer gen.Close()

	before := gen.NumMulGates()
	c1 := gen.CreateConstant(big.NewInt(42))
	afterFirst := gen.NbWires()
	c2 := gen.CreateConstant(big.NewInt(42))

	require.Equal(t, c1.id, c2.id)
	require.Equal(t, afterFirst, gen.NbWires(), "second lookup must not allocate a new id")
	require.Equal(t, before, gen.NumMulGates(), "const-mul is zero-gate")
}
