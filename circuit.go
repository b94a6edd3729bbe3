package bristol

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/consensys/gnark/logger"
)

// BristolCircuit is the structured form of a circuit: the total wire count,
// the naming metadata, optional per-port bit widths, and the ordered gate
// list.
//
// IOWidths being nil means every input and output port is exactly one wire,
// the canonical case for arithmetic circuits. Boolean circuits record a width
// per port.
type BristolCircuit struct {
	WireCount int         `json:"wire_count" cbor:"wire_count"`
	Info      CircuitInfo `json:"info" cbor:"info"`
	IOWidths  *IOWidths   `json:"io_widths,omitempty" cbor:"io_widths,omitempty"`
	Gates     []Gate      `json:"gates" cbor:"gates"`
}

// IOWidths holds per-port bit widths, one entry per named input and output.
type IOWidths struct {
	Inputs  []int `json:"inputs" cbor:"inputs"`
	Outputs []int `json:"outputs" cbor:"outputs"`
}

// ReadInfoAndBristol parses a circuit from its Bristol text, cross-checking
// the declared input/output port counts against the caller-supplied metadata.
//
// The metadata cannot be derived from the text, which carries no names; it is
// trusted for wire indices and only checked for arity.
func ReadInfoAndBristol(info CircuitInfo, r io.Reader) (*BristolCircuit, error) {
	br := bufio.NewReader(r)

	line, err := readBristolLine(br)
	if err != nil {
		return nil, err
	}
	gateCount, wireCount, err := line.circuitSizes()
	if err != nil {
		return nil, err
	}

	line, err = readBristolLine(br)
	if err != nil {
		return nil, err
	}
	inputWidths, err := line.portWidths()
	if err != nil {
		return nil, err
	}
	if len(inputWidths) != len(info.InputNameToWireIndex) {
		return nil, inconsistencyErrorf("input count mismatch (bristol: %d, info: %d)",
			len(inputWidths), len(info.InputNameToWireIndex))
	}

	line, err = readBristolLine(br)
	if err != nil {
		return nil, err
	}
	outputWidths, err := line.portWidths()
	if err != nil {
		return nil, err
	}
	if len(outputWidths) != len(info.OutputNameToWireIndex) {
		return nil, inconsistencyErrorf("output count mismatch (bristol: %d, info: %d)",
			len(outputWidths), len(info.OutputNameToWireIndex))
	}

	// the declared count is untrusted; cap the prealloc hint and let append
	// grow as the bounded reads consume the stream
	gates := make([]Gate, 0, min(gateCount, maxPrealloc))
	for i := 0; i < gateCount; i++ {
		line, err = readBristolLine(br)
		if err != nil {
			return nil, err
		}
		gate, err := line.gate()
		if err != nil {
			return nil, fmt.Errorf("gate %d: %w", i, err)
		}
		gates = append(gates, gate)
	}

	for {
		rest, err := br.ReadString('\n')
		if strings.TrimSpace(rest) != "" {
			return nil, parsingErrorf("unexpected non-whitespace line after gates")
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading line: %w", err)
		}
	}

	circuit := &BristolCircuit{
		WireCount: wireCount,
		Info:      info.Clone(),
		IOWidths:  normalizeWidths(inputWidths, outputWidths),
		Gates:     gates,
	}

	log := logger.Logger()
	log.Debug().
		Int("nbGates", len(circuit.Gates)).
		Int("nbWires", circuit.WireCount).
		Msg("parsed bristol circuit")

	return circuit, nil
}

// normalizeWidths drops the width vectors when every port is one wire, so the
// widthless arithmetic form stays canonical.
func normalizeWidths(inputs, outputs []int) *IOWidths {
	for _, w := range inputs {
		if w != 1 {
			return &IOWidths{Inputs: inputs, Outputs: outputs}
		}
	}
	for _, w := range outputs {
		if w != 1 {
			return &IOWidths{Inputs: inputs, Outputs: outputs}
		}
	}
	return nil
}

// WriteBristol renders the circuit to w in Bristol text form. The writer is
// total for any in-memory circuit; only stream failures are reported.
func (c *BristolCircuit) WriteBristol(w io.Writer) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%d %d\n", len(c.Gates), c.WireCount)
	writePortLine(bw, len(c.Info.InputNameToWireIndex), c.inputWidths())
	writePortLine(bw, len(c.Info.OutputNameToWireIndex), c.outputWidths())
	fmt.Fprintln(bw)

	for _, gate := range c.Gates {
		fmt.Fprintln(bw, gate)
	}

	return bw.Flush()
}

func (c *BristolCircuit) inputWidths() []int {
	if c.IOWidths != nil {
		return c.IOWidths.Inputs
	}
	return nil
}

func (c *BristolCircuit) outputWidths() []int {
	if c.IOWidths != nil {
		return c.IOWidths.Outputs
	}
	return nil
}

// writePortLine emits "<count> <w0> <w1> ...", defaulting each width to 1
// when no width vector is stored.
func writePortLine(w io.Writer, count int, widths []int) {
	fmt.Fprintf(w, "%d", count)
	for i := 0; i < count; i++ {
		if i < len(widths) {
			fmt.Fprintf(w, " %d", widths[i])
		} else {
			fmt.Fprint(w, " 1")
		}
	}
	fmt.Fprintln(w)
}

// FromInfoAndBristolString is a string-buffered convenience over
// ReadInfoAndBristol.
func FromInfoAndBristolString(info CircuitInfo, input string) (*BristolCircuit, error) {
	return ReadInfoAndBristol(info, strings.NewReader(input))
}

// GetBristolString renders the circuit to a string.
func (c *BristolCircuit) GetBristolString() (string, error) {
	var buf bytes.Buffer
	if err := c.WriteBristol(&buf); err != nil {
		return "", err
	}
	if !utf8.Valid(buf.Bytes()) {
		return "", parsingErrorf("generated bristol data was not valid utf8")
	}
	return buf.String(), nil
}
