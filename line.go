package bristol

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"
)

// bristolLine is one logical line of the text format, split into
// whitespace-delimited tokens.
type bristolLine []string

// readBristolLine returns the next non-blank line from r as tokens. Lines that
// are empty after trimming are skipped. A stream failure, including EOF before
// any non-blank line, is propagated from the underlying reader.
func readBristolLine(r *bufio.Reader) (bristolLine, error) {
	for {
		line, err := r.ReadString('\n')
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return bristolLine(strings.Fields(trimmed)), nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading line: %w", err)
		}
	}
}

// field returns the token at index parsed as a non-negative integer.
func (l bristolLine) field(index int) (int, error) {
	s, err := l.fieldStr(index)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: failed to convert field at index %d: %w", ErrParsing, index, err)
	}
	if v < 0 {
		return 0, parsingErrorf("field at index %d is negative", index)
	}
	return v, nil
}

// fieldStr returns the raw token at index.
func (l bristolLine) fieldStr(index int) (string, error) {
	if index < 0 || index >= len(l) {
		return "", parsingErrorf("index %d out of bounds", index)
	}
	return l[index], nil
}

// circuitSizes parses the header line: gate count then wire count.
func (l bristolLine) circuitSizes() (gateCount, wireCount int, err error) {
	if gateCount, err = l.field(0); err != nil {
		return 0, 0, err
	}
	if wireCount, err = l.field(1); err != nil {
		return 0, 0, err
	}
	return gateCount, wireCount, nil
}

// portWidths parses an input or output port line: the port count followed by
// one positive bit width per port.
func (l bristolLine) portWidths() ([]int, error) {
	count, err := l.field(0)
	if err != nil {
		return nil, err
	}
	if len(l) != count+1 {
		return nil, parsingErrorf("expected %d fields, got %d", count+1, len(l))
	}
	widths := make([]int, count)
	for i := range widths {
		w, err := l.field(i + 1)
		if err != nil {
			return nil, err
		}
		if w == 0 {
			return nil, parsingErrorf("width at index %d must be positive", i+1)
		}
		widths[i] = w
	}
	return widths, nil
}

// gate parses a gate line. The grammar is strictly positional: input arity,
// output arity, the input wires, the output wires, then exactly one operation
// label token.
func (l bristolLine) gate() (Gate, error) {
	inputLen, err := l.field(0)
	if err != nil {
		return Gate{}, err
	}
	outputLen, err := l.field(1)
	if err != nil {
		return Gate{}, err
	}

	expected := inputLen + outputLen + 3
	if len(l) != expected {
		return Gate{}, parsingErrorf("inconsistent field count (actual: %d, expected: %d)", len(l), expected)
	}

	inputs := make([]int, inputLen)
	for i := range inputs {
		if inputs[i], err = l.field(i + 2); err != nil {
			return Gate{}, err
		}
	}

	outputs := make([]int, outputLen)
	for i := range outputs {
		if outputs[i], err = l.field(i + 2 + inputLen); err != nil {
			return Gate{}, err
		}
	}

	op, err := l.fieldStr(inputLen + outputLen + 2)
	if err != nil {
		return Gate{}, err
	}

	return Gate{Inputs: inputs, Outputs: outputs, Op: op}, nil
}
