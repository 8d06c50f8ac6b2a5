package serialize_test

import (
	"bytes"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wireforge/r1cs/circuit"
	"github.com/wireforge/r1cs/evaluator"
	"github.com/wireforge/r1cs/serialize"
)

func TestWriteWitnessOneLinePerInputAndWitness(t *testing.T) {
	gen := circuit.New()
	defer gen.Close()

	a := gen.CreateInput("a")
	w := gen.CreateProverWitness("w")
	gen.MakeOutput(gen.Mul(a, w))

	ev := evaluator.New(gen)
	require.NoError(t, ev.Assign(a, big.NewInt(5)))
	require.NoError(t, ev.Assign(w, big.NewInt(9)))
	require.NoError(t, ev.Run())

	var buf bytes.Buffer
	require.NoError(t, serialize.WriteWitness(&buf, gen, ev))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// The one-wire is the first declared input, so it gets the first line.
	require.Len(t, lines, 3)

	fields := strings.Fields(lines[1])
	require.Len(t, fields, 2)
	require.Equal(t, "5", hexToDecimal(t, fields[1]))

	fields = strings.Fields(lines[2])
	require.Equal(t, "9", hexToDecimal(t, fields[1]))
}

func hexToDecimal(t *testing.T, hex string) string {
	t.Helper()
	v, ok := new(big.Int).SetString(hex, 16)
	require.True(t, ok, "value %q must be valid hex", hex)
	return v.String()
}
