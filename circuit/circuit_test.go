package circuit_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wireforge/r1cs/circuit"
	"github.com/wireforge/r1cs/evaluator"
)

func TestConstantAssertionConflictFailsAtConstruction(t *testing.T) {
	gen := circuit.New()
	defer gen.Close()

	two := gen.CreateConstant(big.NewInt(2))
	three := gen.CreateConstant(big.NewInt(3))
	seven := gen.CreateConstant(big.NewInt(7))

	err := gen.AddAssertion(two, three, seven)
	require.Error(t, err)
	require.ErrorIs(t, err, circuit.ErrConstAssertConflict)
}

func TestConstantAssertionAgreesEagerly(t *testing.T) {
	gen := circuit.New()
	defer gen.Close()

	two := gen.CreateConstant(big.NewInt(2))
	three := gen.CreateConstant(big.NewInt(3))
	six := gen.CreateConstant(big.NewInt(6))

	require.NoError(t, gen.AddAssertion(two, three, six))
}

func TestSplitPackRoundTrip(t *testing.T) {
	gen := circuit.New()
	defer gen.Close()

	w := gen.CreateInput("w")
	bits := gen.Split(w, 32)
	for _, b := range bits {
		require.True(t, b.IsBoolean())
	}
	packed := gen.Pack(bits)
	out := gen.MakeOutput(packed)

	ev := evaluator.New(gen)
	v, ok := new(big.Int).SetString("DEADBEEF", 16)
	require.True(t, ok)
	require.NoError(t, ev.Assign(w, v))
	require.NoError(t, ev.Run())

	got, err := ev.Value(out)
	require.NoError(t, err)
	require.Equal(t, v, got)
}

func TestIsEqualTo(t *testing.T) {
	gen := circuit.New()
	defer gen.Close()

	w := gen.CreateInput("w")
	eq7 := gen.MakeOutput(gen.IsEqualTo(w, big.NewInt(7)))

	for _, tc := range []struct {
		in   int64
		want int64
	}{
		{7, 1}, {0, 0}, {6, 0}, {8, 0},
	} {
		gen2 := circuit.New()
		w2 := gen2.CreateInput("w")
		eq := gen2.MakeOutput(gen2.IsEqualTo(w2, big.NewInt(7)))
		ev := evaluator.New(gen2)
		require.NoError(t, ev.Assign(w2, big.NewInt(tc.in)))
		require.NoError(t, ev.Run())
		got, err := ev.Value(eq)
		require.NoError(t, err)
		require.Equal(t, big.NewInt(tc.want).String(), got.String(), "isEqualTo(%d,7)", tc.in)
		gen2.Close()
	}
	_ = eq7
	_ = w
}

func TestMakeOutputOnInputWireWarnsAndWraps(t *testing.T) {
	gen := circuit.New()
	defer gen.Close()

	w := gen.CreateInput("w")
	before := gen.NumMulGates()
	out := gen.MakeOutput(w)

	require.NotEqual(t, w.ID(), out.ID(), "role-overloaded input must be rewrapped through a fresh wire")
	require.Equal(t, before+1, gen.NumMulGates(), "the redundant mul-by-one costs one gate")
}

func TestDuplicateMulReturnsSameOutput(t *testing.T) {
	gen := circuit.New()
	defer gen.Close()

	a := gen.CreateInput("a")
	b := gen.CreateInput("b")

	m1 := gen.Mul(a, b)
	m2 := gen.Mul(a, b)
	require.Equal(t, m1.ID(), m2.ID())

	mulGates := 0
	for _, in := range gen.Queue() {
		if in.DoneWithinCircuit() && in.GateCost() > 0 {
			mulGates += in.GateCost()
		}
	}
	require.Equal(t, 1, mulGates)
}
