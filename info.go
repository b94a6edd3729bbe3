package bristol

// CircuitInfo maps symbolic input/output names to wire indices, and constant
// names to their value and wire index. The Bristol text format carries no
// names, so this metadata travels out of band and is supplied by the caller
// when reading.
//
// Keys are unique and case-sensitive; insertion order carries no meaning.
type CircuitInfo struct {
	InputNameToWireIndex  map[string]int          `json:"input_name_to_wire_index" cbor:"input_name_to_wire_index"`
	Constants             map[string]ConstantInfo `json:"constants" cbor:"constants"`
	OutputNameToWireIndex map[string]int          `json:"output_name_to_wire_index" cbor:"output_name_to_wire_index"`
}

// ConstantInfo records a constant's decimal string value and the wire that
// carries it.
type ConstantInfo struct {
	Value     string `json:"value" cbor:"value"`
	WireIndex int    `json:"wire_index" cbor:"wire_index"`
}

// Clone returns a deep copy. The conversion engine never mutates a
// CircuitInfo, but callers holding both a circuit and its raw form should not
// share map storage between them.
func (info CircuitInfo) Clone() CircuitInfo {
	res := CircuitInfo{
		InputNameToWireIndex:  make(map[string]int, len(info.InputNameToWireIndex)),
		Constants:             make(map[string]ConstantInfo, len(info.Constants)),
		OutputNameToWireIndex: make(map[string]int, len(info.OutputNameToWireIndex)),
	}
	for name, idx := range info.InputNameToWireIndex {
		res.InputNameToWireIndex[name] = idx
	}
	for name, c := range info.Constants {
		res.Constants[name] = c
	}
	for name, idx := range info.OutputNameToWireIndex {
		res.OutputNameToWireIndex[name] = idx
	}
	return res
}
