package evaluator_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wireforge/r1cs/circuit"
	"github.com/wireforge/r1cs/evaluator"
)

func TestRunProducesExpectedOutput(t *testing.T) {
	gen := circuit.New()
	defer gen.Close()

	a := gen.CreateInput("a")
	b := gen.CreateInput("b")
	out := gen.MakeOutput(gen.Mul(a, b))

	ev := evaluator.New(gen)
	require.NoError(t, ev.Assign(a, big.NewInt(6)))
	require.NoError(t, ev.Assign(b, big.NewInt(7)))
	require.NoError(t, ev.Run())

	got, err := ev.Value(out)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(42), got)
}

func TestRunFailsWithoutAllInputsAssigned(t *testing.T) {
	gen := circuit.New()
	defer gen.Close()

	a := gen.CreateInput("a")
	b := gen.CreateInput("b")
	gen.MakeOutput(gen.Mul(a, b))

	ev := evaluator.New(gen)
	require.NoError(t, ev.Assign(a, big.NewInt(6)))

	err := ev.Run()
	require.Error(t, err)
	require.ErrorIs(t, err, evaluator.ErrWireNotAssigned)
}

func TestAssignTwiceFails(t *testing.T) {
	gen := circuit.New()
	defer gen.Close()

	a := gen.CreateInput("a")
	ev := evaluator.New(gen)

	require.NoError(t, ev.Assign(a, big.NewInt(1)))
	err := ev.Assign(a, big.NewInt(2))
	require.Error(t, err)
	require.ErrorIs(t, err, evaluator.ErrWireAlreadyAssigned)
}

func TestRunPropagatesAssertFailure(t *testing.T) {
	gen := circuit.New()
	defer gen.Close()

	a := gen.CreateInput("a")
	require.NoError(t, gen.AssertOne(a))

	ev := evaluator.New(gen)
	require.NoError(t, ev.Assign(a, big.NewInt(0)))
	require.Error(t, ev.Run())
}

func TestValueBeforeRunFails(t *testing.T) {
	gen := circuit.New()
	defer gen.Close()

	a := gen.CreateInput("a")
	out := gen.MakeOutput(a)

	ev := evaluator.New(gen)
	_, err := ev.Value(out)
	require.Error(t, err)
}

func TestOneWireIsPreAssigned(t *testing.T) {
	gen := circuit.New()
	defer gen.Close()

	ev := evaluator.New(gen)
	v, err := ev.Value(gen.OneWire())
	require.NoError(t, err)
	require.Equal(t, big.NewInt(1), v)
}
