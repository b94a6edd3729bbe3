package bristol

import (
	"strconv"
	"strings"
)

// Gate is a single computation node: ordered input wire indices, ordered
// output wire indices, and an operation label. The label is not interpreted
// here; operation semantics belong to whichever engine consumes the circuit.
type Gate struct {
	Inputs  []int  `json:"inputs" cbor:"inputs"`
	Outputs []int  `json:"outputs" cbor:"outputs"`
	Op      string `json:"op" cbor:"op"`
}

// String renders the gate as one Bristol line:
// input arity, output arity, input wires, output wires, operation label.
func (g Gate) String() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(len(g.Inputs)))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(len(g.Outputs)))
	for _, in := range g.Inputs {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(in))
	}
	for _, out := range g.Outputs {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(out))
	}
	sb.WriteByte(' ')
	sb.WriteString(g.Op)
	return sb.String()
}
