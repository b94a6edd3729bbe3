package utils

import (
	"encoding/binary"
	"fmt"
)

// OutputBuf accumulates a little-endian binary encoding.
type OutputBuf struct {
	buf []byte
}

func (o *OutputBuf) AppendUint64(x uint64) {
	o.buf = binary.LittleEndian.AppendUint64(o.buf, x)
}

// AppendBytes writes a uint64 length prefix followed by the raw bytes.
func (o *OutputBuf) AppendBytes(b []byte) {
	o.AppendUint64(uint64(len(b)))
	o.buf = append(o.buf, b...)
}

func (o *OutputBuf) Bytes() []byte {
	return o.buf
}

// InputBuf consumes a buffer written by OutputBuf. Reads are bounds-checked
// so a truncated buffer surfaces as an error instead of a panic.
type InputBuf struct {
	buf []byte
}

func NewInputBuf(buf []byte) *InputBuf {
	return &InputBuf{buf: buf}
}

func (i *InputBuf) ReadUint64() (uint64, error) {
	if len(i.buf) < 8 {
		return 0, fmt.Errorf("expected 8 bytes, %d remaining", len(i.buf))
	}
	x := binary.LittleEndian.Uint64(i.buf[:8])
	i.buf = i.buf[8:]
	return x, nil
}

func (i *InputBuf) ReadBytes() ([]byte, error) {
	n, err := i.ReadUint64()
	if err != nil {
		return nil, err
	}
	if uint64(len(i.buf)) < n {
		return nil, fmt.Errorf("expected %d bytes, %d remaining", n, len(i.buf))
	}
	b := i.buf[:n]
	i.buf = i.buf[n:]
	return b, nil
}

// IsEnd reports whether the whole buffer has been consumed.
func (i *InputBuf) IsEnd() bool {
	return len(i.buf) == 0
}
