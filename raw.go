package bristol

// RawCircuit pairs naming metadata with an already-rendered Bristol text
// body. It is a transport convenience for callers that store or transmit the
// text without re-parsing it; conversion to and from the structured form is
// lossless up to width normalization.
type RawCircuit struct {
	Bristol string      `json:"bristol" cbor:"bristol"`
	Info    CircuitInfo `json:"info" cbor:"info"`
}

// FromRaw parses the raw body using the raw metadata.
func FromRaw(raw RawCircuit) (*BristolCircuit, error) {
	return FromInfoAndBristolString(raw.Info, raw.Bristol)
}

// ToRaw renders the circuit and pairs the text with a copy of its metadata.
func (c *BristolCircuit) ToRaw() (RawCircuit, error) {
	text, err := c.GetBristolString()
	if err != nil {
		return RawCircuit{}, err
	}
	return RawCircuit{Bristol: text, Info: c.Info.Clone()}, nil
}
