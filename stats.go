package bristol

// Stats summarizes a circuit's shape.
type Stats struct {
	// number of gates in the circuit
	NbGates int
	// total wire count declared by the circuit
	NbWires int
	// number of named inputs and outputs
	NbInputs  int
	NbOutputs int
	// gate count per operation label
	NbGatesByOp map[string]int
}

func (c *BristolCircuit) GetStats() Stats {
	r := Stats{
		NbGates:     len(c.Gates),
		NbWires:     c.WireCount,
		NbInputs:    len(c.Info.InputNameToWireIndex),
		NbOutputs:   len(c.Info.OutputNameToWireIndex),
		NbGatesByOp: make(map[string]int),
	}
	for _, gate := range c.Gates {
		r.NbGatesByOp[gate.Op]++
	}
	return r
}
