package instr_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wireforge/r1cs/instr"
)

func TestKeyIsOrderInsensitiveForCommutativeOps(t *testing.T) {
	a := &instr.Instruction{Op: instr.OpMul, Inputs: []int{3, 7}}
	b := &instr.Instruction{Op: instr.OpMul, Inputs: []int{7, 3}}
	require.Equal(t, a.Key(), b.Key())
}

func TestKeyDistinguishesConstMulCoefficient(t *testing.T) {
	a := &instr.Instruction{Op: instr.OpConstMul, Inputs: []int{1}, Coeff: big.NewInt(2)}
	b := &instr.Instruction{Op: instr.OpConstMul, Inputs: []int{1}, Coeff: big.NewInt(3)}
	require.NotEqual(t, a.Key(), b.Key())
}

func TestKeyIgnoresOutputs(t *testing.T) {
	a := &instr.Instruction{Op: instr.OpAdd, Inputs: []int{1, 2}, Outputs: []int{3}}
	b := &instr.Instruction{Op: instr.OpAdd, Inputs: []int{1, 2}, Outputs: []int{99}}
	require.Equal(t, a.Key(), b.Key())
}

func TestGateCostTable(t *testing.T) {
	require.Equal(t, 1, (&instr.Instruction{Op: instr.OpMul}).GateCost())
	require.Equal(t, 0, (&instr.Instruction{Op: instr.OpAdd}).GateCost())
	require.Equal(t, 0, (&instr.Instruction{Op: instr.OpConstMul}).GateCost())
	require.Equal(t, 2, (&instr.Instruction{Op: instr.OpZerop}).GateCost())
	require.Equal(t, 5, (&instr.Instruction{Op: instr.OpSplit, NbBits: 5}).GateCost())
}

func TestDoneWithinCircuit(t *testing.T) {
	require.True(t, (&instr.Instruction{Op: instr.OpMul}).DoneWithinCircuit())
	require.False(t, (&instr.Instruction{Op: instr.OpHint}).DoneWithinCircuit())
}

func TestComputeMul(t *testing.T) {
	in := &instr.Instruction{Op: instr.OpMul}
	out, err := in.Compute([]*big.Int{big.NewInt(6), big.NewInt(7)})
	require.NoError(t, err)
	require.Equal(t, big.NewInt(42), out[0])
}

func TestComputeAssertFailure(t *testing.T) {
	in := &instr.Instruction{Op: instr.OpAssert}
	_, err := in.Compute([]*big.Int{big.NewInt(2), big.NewInt(3), big.NewInt(7)})
	require.Error(t, err)
	require.ErrorIs(t, err, instr.ErrAssertFailed)
}

func TestComputeZerop(t *testing.T) {
	in := &instr.Instruction{Op: instr.OpZerop}

	out, err := in.Compute([]*big.Int{big.NewInt(0)})
	require.NoError(t, err)
	require.Equal(t, []*big.Int{big.NewInt(0), big.NewInt(0)}, out)

	out, err = in.Compute([]*big.Int{big.NewInt(5)})
	require.NoError(t, err)
	require.Equal(t, big.NewInt(1), out[1])
}

func TestComputeRejectsNonBooleanOr(t *testing.T) {
	in := &instr.Instruction{Op: instr.OpOr}
	_, err := in.Compute([]*big.Int{big.NewInt(2), big.NewInt(0)})
	require.Error(t, err)
	require.ErrorIs(t, err, instr.ErrNotBoolean)
}
