package test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/zkcircuits/bristol"
)

type Assert struct {
	t *testing.T
}

func NewAssert(t *testing.T) *Assert {
	return &Assert{t: t}
}

// RoundTripSucceeded renders the circuit to Bristol text and parses it back
// with the same metadata, requiring a structural match. The codecs read nil
// slices and maps back as their empty forms, so nil and empty are treated as
// equal here.
func (a *Assert) RoundTripSucceeded(c *bristol.BristolCircuit) {
	text, err := c.GetBristolString()
	if err != nil {
		a.t.Fatal(err)
	}
	back, err := bristol.FromInfoAndBristolString(c.Info, text)
	if err != nil {
		a.t.Fatal(err)
	}
	if diff := cmp.Diff(c, back, cmpopts.EquateEmpty()); diff != "" {
		a.t.Fatalf("text round trip mismatch (-want +got):\n%s", diff)
	}
}

// SerializeRoundTripSucceeded does the same over the binary encoding.
func (a *Assert) SerializeRoundTripSucceeded(c *bristol.BristolCircuit) {
	buf, err := c.Serialize()
	if err != nil {
		a.t.Fatal(err)
	}
	back, err := bristol.DeserializeCircuit(buf)
	if err != nil {
		a.t.Fatal(err)
	}
	if diff := cmp.Diff(c, back, cmpopts.EquateEmpty()); diff != "" {
		a.t.Fatalf("binary round trip mismatch (-want +got):\n%s", diff)
	}
}

// ReadFailed parses text with the given metadata and requires failure with
// the given error kind.
func (a *Assert) ReadFailed(info bristol.CircuitInfo, text string, wantErr error) {
	_, err := bristol.FromInfoAndBristolString(info, text)
	if err == nil {
		a.t.Fatal("should fail")
	}
	if !errors.Is(err, wantErr) {
		a.t.Fatalf("wrong error kind: %v", err)
	}
}
