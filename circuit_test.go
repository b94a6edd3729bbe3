package bristol

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// d = (a + b) * b, the canonical two-gate arithmetic circuit. Wire names use
// inputX/outputX so they match what deserialization from bristol format would
// produce, since the format itself carries no names.
func sampleCircuit() *BristolCircuit {
	return &BristolCircuit{
		WireCount: 4,
		Info: CircuitInfo{
			InputNameToWireIndex:  map[string]int{"input0": 0, "input1": 1},
			Constants:             map[string]ConstantInfo{},
			OutputNameToWireIndex: map[string]int{"output0": 3},
		},
		Gates: []Gate{
			{Inputs: []int{0, 1}, Outputs: []int{2}, Op: "AAdd"},
			{Inputs: []int{2, 1}, Outputs: []int{3}, Op: "AMul"},
		},
	}
}

const sampleText = "2 4\n" +
	"2 1 1\n" +
	"1 1\n" +
	"\n" +
	"2 1 0 1 2 AAdd\n" +
	"2 1 2 1 3 AMul\n"

func TestWriteBristol(t *testing.T) {
	text, err := sampleCircuit().GetBristolString()
	require.NoError(t, err)
	require.Equal(t, sampleText, text)
}

func TestReadBristol(t *testing.T) {
	circuit, err := FromInfoAndBristolString(sampleCircuit().Info, sampleText)
	require.NoError(t, err)
	require.Equal(t, sampleCircuit(), circuit)
}

func TestReadBristolMessyWhitespace(t *testing.T) {
	text := `

		2 4

		2 1 1
		1 1

		2 1 0 1 2 AAdd

		2 1 2 1 3 AMul

	`
	circuit, err := FromInfoAndBristolString(sampleCircuit().Info, text)
	require.NoError(t, err)
	require.Equal(t, sampleCircuit(), circuit)
}

func TestReadBristolWidths(t *testing.T) {
	text := "0 96\n" +
		"2 32 32\n" +
		"1 32\n"
	info := CircuitInfo{
		InputNameToWireIndex:  map[string]int{"a": 0, "b": 32},
		Constants:             map[string]ConstantInfo{},
		OutputNameToWireIndex: map[string]int{"c": 64},
	}

	circuit, err := FromInfoAndBristolString(info, text)
	require.NoError(t, err)
	require.Equal(t, &IOWidths{Inputs: []int{32, 32}, Outputs: []int{32}}, circuit.IOWidths)

	out, err := circuit.GetBristolString()
	require.NoError(t, err)
	require.Equal(t, "0 96\n2 32 32\n1 32\n\n", out)
}

func TestWidthNormalization(t *testing.T) {
	// all-ones widths collapse to the widthless form on read
	c := sampleCircuit()
	c.IOWidths = &IOWidths{Inputs: []int{1, 1}, Outputs: []int{1}}

	text, err := c.GetBristolString()
	require.NoError(t, err)
	require.Equal(t, sampleText, text)

	back, err := FromInfoAndBristolString(c.Info, text)
	require.NoError(t, err)
	require.Nil(t, back.IOWidths)
}

func TestInputCountMismatch(t *testing.T) {
	info := sampleCircuit().Info
	delete(info.InputNameToWireIndex, "input1")

	_, err := FromInfoAndBristolString(info, sampleText)
	require.ErrorIs(t, err, ErrInconsistency)
	require.NotErrorIs(t, err, ErrParsing)
}

func TestOutputCountMismatch(t *testing.T) {
	info := sampleCircuit().Info
	info.OutputNameToWireIndex["output1"] = 2

	_, err := FromInfoAndBristolString(info, sampleText)
	require.ErrorIs(t, err, ErrInconsistency)
}

func TestGateMissingOpLabel(t *testing.T) {
	// 5 tokens instead of 6: the op label is part of the strict positional
	// grammar, not optional
	text := "1 3\n" +
		"2 1 1\n" +
		"1 1\n" +
		"\n" +
		"2 1 0 1 2\n"
	info := sampleCircuit().Info
	info.OutputNameToWireIndex = map[string]int{"output0": 2}

	_, err := FromInfoAndBristolString(info, text)
	require.ErrorIs(t, err, ErrParsing)
	require.Contains(t, err.Error(), "expected: 6")
}

func TestPortLineWrongTokenCount(t *testing.T) {
	text := "0 2\n" +
		"2 1\n" +
		"0\n"
	info := CircuitInfo{
		InputNameToWireIndex:  map[string]int{"a": 0, "b": 1},
		OutputNameToWireIndex: map[string]int{},
	}

	_, err := FromInfoAndBristolString(info, text)
	require.ErrorIs(t, err, ErrParsing)
}

func TestZeroWidthRejected(t *testing.T) {
	text := "0 1\n" +
		"1 0\n" +
		"0\n"
	info := CircuitInfo{
		InputNameToWireIndex:  map[string]int{"a": 0},
		OutputNameToWireIndex: map[string]int{},
	}

	_, err := FromInfoAndBristolString(info, text)
	require.ErrorIs(t, err, ErrParsing)
}

func TestTrailingContent(t *testing.T) {
	_, err := FromInfoAndBristolString(sampleCircuit().Info, sampleText+"\n  \nstray\n")
	require.ErrorIs(t, err, ErrParsing)

	// blank trailing lines are fine
	circuit, err := FromInfoAndBristolString(sampleCircuit().Info, sampleText+"\n \n\t\n")
	require.NoError(t, err)
	require.Equal(t, sampleCircuit(), circuit)
}

func TestEmptyCircuit(t *testing.T) {
	empty := &BristolCircuit{
		WireCount: 0,
		Info: CircuitInfo{
			InputNameToWireIndex:  map[string]int{},
			Constants:             map[string]ConstantInfo{},
			OutputNameToWireIndex: map[string]int{},
		},
		Gates: []Gate{},
	}

	text, err := empty.GetBristolString()
	require.NoError(t, err)
	require.Equal(t, "0 0\n0\n0\n\n", text)

	back, err := FromInfoAndBristolString(empty.Info, text)
	require.NoError(t, err)
	require.Equal(t, empty, back)
}

func TestHugeGateCountHeader(t *testing.T) {
	// a header declaring 2^62 gates must surface the truncation as an error,
	// not allocate for the declared count
	info := CircuitInfo{
		InputNameToWireIndex:  map[string]int{},
		OutputNameToWireIndex: map[string]int{},
	}
	_, err := FromInfoAndBristolString(info, "4611686018427387904 0\n0\n0\n")
	require.Error(t, err)
	require.ErrorIs(t, err, io.EOF)
}

func TestTruncatedStream(t *testing.T) {
	// header claims two gates but the stream ends after one
	text := "2 4\n2 1 1\n1 1\n\n2 1 0 1 2 AAdd\n"
	_, err := FromInfoAndBristolString(sampleCircuit().Info, text)
	require.Error(t, err)
	require.ErrorIs(t, err, io.EOF)
}

func TestMalformedInteger(t *testing.T) {
	_, err := FromInfoAndBristolString(sampleCircuit().Info, strings.Replace(sampleText, "2 4", "x 4", 1))
	require.ErrorIs(t, err, ErrParsing)

	var numErr *strconv.NumError
	require.True(t, errors.As(err, &numErr))
}

func TestNegativeWireRejected(t *testing.T) {
	_, err := FromInfoAndBristolString(sampleCircuit().Info, strings.Replace(sampleText, "2 1 0 1 2 AAdd", "2 1 -1 1 2 AAdd", 1))
	require.ErrorIs(t, err, ErrParsing)
}

func TestReadDoesNotBoundMetadataIndices(t *testing.T) {
	// The engine only cross-checks arity; a metadata wire index past
	// wire_count is accepted on read and left to Validate.
	info := sampleCircuit().Info
	info.OutputNameToWireIndex["output0"] = 40

	circuit, err := FromInfoAndBristolString(info, sampleText)
	require.NoError(t, err)
	require.Error(t, circuit.Validate())
}

func TestFromRawToRaw(t *testing.T) {
	raw, err := sampleCircuit().ToRaw()
	require.NoError(t, err)
	require.Equal(t, sampleText, raw.Bristol)

	circuit, err := FromRaw(raw)
	require.NoError(t, err)
	require.Equal(t, sampleCircuit(), circuit)
}

func TestToRawCopiesInfo(t *testing.T) {
	c := sampleCircuit()
	raw, err := c.ToRaw()
	require.NoError(t, err)

	raw.Info.InputNameToWireIndex["input0"] = 99
	require.Equal(t, 0, c.Info.InputNameToWireIndex["input0"])
}

func TestGetStats(t *testing.T) {
	stats := sampleCircuit().GetStats()
	require.Equal(t, 2, stats.NbGates)
	require.Equal(t, 4, stats.NbWires)
	require.Equal(t, 2, stats.NbInputs)
	require.Equal(t, 1, stats.NbOutputs)
	require.Equal(t, map[string]int{"AAdd": 1, "AMul": 1}, stats.NbGatesByOp)
}

func TestGateString(t *testing.T) {
	g := Gate{Inputs: []int{7}, Outputs: []int{8, 9}, Op: "ADiv"}
	require.Equal(t, "1 2 7 8 9 ADiv", g.String())
}
