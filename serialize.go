package bristol

import (
	"fmt"
	"io"
	"math"

	"github.com/fxamacker/cbor/v2"

	"github.com/zkcircuits/bristol/utils"
)

// magic header marking the binary circuit encoding
const serializeMagic = 0x62726973746f6c31

// prealloc hint cap for counts read from untrusted input
const maxPrealloc = 1024

var (
	cborEnc cbor.EncMode
	cborDec cbor.DecMode
)

func init() {
	var err error
	cborEnc, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	cborDec, err = cbor.DecOptions{
		MaxArrayElements: 134217728,
		MaxMapPairs:      134217728,
	}.DecMode()
	if err != nil {
		panic(err)
	}
}

// Serialize converts the circuit into a compact byte encoding for storage or
// transmission. The gate structure is packed as little-endian counts and
// wires; the naming metadata rides along as an embedded CBOR blob.
func (c *BristolCircuit) Serialize() ([]byte, error) {
	o := utils.OutputBuf{}
	o.AppendUint64(serializeMagic)
	o.AppendUint64(uint64(c.WireCount))

	if c.IOWidths == nil {
		o.AppendUint64(0)
	} else {
		o.AppendUint64(1)
		o.AppendUint64(uint64(len(c.IOWidths.Inputs)))
		for _, w := range c.IOWidths.Inputs {
			o.AppendUint64(uint64(w))
		}
		o.AppendUint64(uint64(len(c.IOWidths.Outputs)))
		for _, w := range c.IOWidths.Outputs {
			o.AppendUint64(uint64(w))
		}
	}

	infoBytes, err := cborEnc.Marshal(c.Info)
	if err != nil {
		return nil, fmt.Errorf("encoding info: %w", err)
	}
	o.AppendBytes(infoBytes)

	o.AppendUint64(uint64(len(c.Gates)))
	for _, gate := range c.Gates {
		o.AppendUint64(uint64(len(gate.Inputs)))
		for _, in := range gate.Inputs {
			o.AppendUint64(uint64(in))
		}
		o.AppendUint64(uint64(len(gate.Outputs)))
		for _, out := range gate.Outputs {
			o.AppendUint64(uint64(out))
		}
		o.AppendBytes([]byte(gate.Op))
	}

	return o.Bytes(), nil
}

// DeserializeCircuit is the inverse of Serialize. A malformed or truncated
// buffer fails with ErrParsing.
func DeserializeCircuit(buf []byte) (*BristolCircuit, error) {
	in := utils.NewInputBuf(buf)

	magic, err := in.ReadUint64()
	if err != nil {
		return nil, parsingErrorf("reading header: %v", err)
	}
	if magic != serializeMagic {
		return nil, parsingErrorf("invalid header")
	}

	wc, err := in.ReadUint64()
	if err != nil {
		return nil, parsingErrorf("reading wire count: %v", err)
	}
	wireCount, err := safeInt(wc)
	if err != nil {
		return nil, parsingErrorf("reading wire count: %v", err)
	}

	c := &BristolCircuit{WireCount: wireCount}

	hasWidths, err := in.ReadUint64()
	if err != nil {
		return nil, parsingErrorf("reading widths flag: %v", err)
	}
	switch hasWidths {
	case 0:
	case 1:
		widths := &IOWidths{}
		if widths.Inputs, err = readUint64Slice(in); err != nil {
			return nil, parsingErrorf("reading input widths: %v", err)
		}
		if widths.Outputs, err = readUint64Slice(in); err != nil {
			return nil, parsingErrorf("reading output widths: %v", err)
		}
		c.IOWidths = widths
	default:
		return nil, parsingErrorf("invalid widths flag %d", hasWidths)
	}

	infoBytes, err := in.ReadBytes()
	if err != nil {
		return nil, parsingErrorf("reading info: %v", err)
	}
	if err := cborDec.Unmarshal(infoBytes, &c.Info); err != nil {
		return nil, parsingErrorf("decoding info: %v", err)
	}

	gateCount, err := in.ReadUint64()
	if err != nil {
		return nil, parsingErrorf("reading gate count: %v", err)
	}
	c.Gates = make([]Gate, 0, int(min(gateCount, maxPrealloc)))
	for i := uint64(0); i < gateCount; i++ {
		var gate Gate
		if gate.Inputs, err = readUint64Slice(in); err != nil {
			return nil, parsingErrorf("gate %d inputs: %v", i, err)
		}
		if gate.Outputs, err = readUint64Slice(in); err != nil {
			return nil, parsingErrorf("gate %d outputs: %v", i, err)
		}
		op, err := in.ReadBytes()
		if err != nil {
			return nil, parsingErrorf("gate %d op: %v", i, err)
		}
		gate.Op = string(op)
		c.Gates = append(c.Gates, gate)
	}

	if !in.IsEnd() {
		return nil, parsingErrorf("unexpected trailing bytes")
	}

	return c, nil
}

func readUint64Slice(in *utils.InputBuf) ([]int, error) {
	n, err := in.ReadUint64()
	if err != nil {
		return nil, err
	}
	s := make([]int, 0, int(min(n, maxPrealloc)))
	for j := uint64(0); j < n; j++ {
		x, err := in.ReadUint64()
		if err != nil {
			return nil, err
		}
		v, err := safeInt(x)
		if err != nil {
			return nil, err
		}
		s = append(s, v)
	}
	return s, nil
}

// safeInt rejects values that would wrap to a negative int.
func safeInt(x uint64) (int, error) {
	if x > math.MaxInt {
		return 0, fmt.Errorf("value %d overflows int", x)
	}
	return int(x), nil
}

// WriteCBOR encodes the raw circuit as deterministic CBOR, the interchange
// form used for metadata persistence.
func (raw RawCircuit) WriteCBOR(w io.Writer) error {
	return cborEnc.NewEncoder(w).Encode(raw)
}

// ReadRawCircuitCBOR decodes a raw circuit written by WriteCBOR.
func ReadRawCircuitCBOR(r io.Reader) (RawCircuit, error) {
	var raw RawCircuit
	if err := cborDec.NewDecoder(r).Decode(&raw); err != nil {
		return RawCircuit{}, fmt.Errorf("decoding raw circuit: %w", err)
	}
	return raw, nil
}
