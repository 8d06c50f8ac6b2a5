package serialize_test

import (
	"bytes"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wireforge/r1cs/circuit"
	"github.com/wireforge/r1cs/instr"
	"github.com/wireforge/r1cs/serialize"
)

func TestWriteArithHeaderAndLines(t *testing.T) {
	gen := circuit.New()
	defer gen.Close()

	a := gen.CreateInput("a")
	b := gen.CreateInput("b")
	gen.MakeOutput(gen.Mul(a, b))

	var buf bytes.Buffer
	require.NoError(t, serialize.WriteArith(&buf, gen))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.True(t, strings.HasPrefix(lines[0], "total "))
	require.Contains(t, buf.String(), "input ")
	require.Contains(t, buf.String(), "mul in 2")
	require.Contains(t, buf.String(), "output ")
}

func TestWriteArithSkipsHints(t *testing.T) {
	gen := circuit.New()
	defer gen.Close()

	w := gen.CreateInput("w")
	gen.Split(w, 4)
	gen.SpecifyProverWitnessComputation(instr.HintInverseOrZero, []circuit.Wire{w}, 1)

	var buf bytes.Buffer
	require.NoError(t, serialize.WriteArith(&buf, gen))
	require.NotContains(t, buf.String(), "hint")
}

func TestWriteArithConstMulLine(t *testing.T) {
	gen := circuit.New()
	defer gen.Close()

	a := gen.CreateInput("a")
	gen.MakeOutput(gen.MulConst(a, big.NewInt(3)))

	var buf bytes.Buffer
	require.NoError(t, serialize.WriteArith(&buf, gen))
	require.Contains(t, buf.String(), "const-mul-3 in 1")
}
