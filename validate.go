package bristol

import "fmt"

// Validate checks structural integrity beyond what the read path guarantees:
// every gate wire and every metadata wire index must lie in [0, WireCount),
// every gate must carry an operation label, and stored width vectors must
// match the metadata arities.
//
// The read path deliberately does not call this; it only cross-checks
// arities. Callers that cannot trust their metadata sources run it
// separately.
func (c *BristolCircuit) Validate() error {
	for i, gate := range c.Gates {
		if gate.Op == "" {
			return fmt.Errorf("gate %d has no operation label", i)
		}
		for j, in := range gate.Inputs {
			if in < 0 || in >= c.WireCount {
				return fmt.Errorf("gate %d input %d wire %d is out of bound", i, j, in)
			}
		}
		for j, out := range gate.Outputs {
			if out < 0 || out >= c.WireCount {
				return fmt.Errorf("gate %d output %d wire %d is out of bound", i, j, out)
			}
		}
	}

	for name, idx := range c.Info.InputNameToWireIndex {
		if idx < 0 || idx >= c.WireCount {
			return fmt.Errorf("input %q wire %d is out of bound", name, idx)
		}
	}
	for name, idx := range c.Info.OutputNameToWireIndex {
		if idx < 0 || idx >= c.WireCount {
			return fmt.Errorf("output %q wire %d is out of bound", name, idx)
		}
	}
	for name, constant := range c.Info.Constants {
		if constant.WireIndex < 0 || constant.WireIndex >= c.WireCount {
			return fmt.Errorf("constant %q wire %d is out of bound", name, constant.WireIndex)
		}
	}

	if c.IOWidths != nil {
		if len(c.IOWidths.Inputs) != len(c.Info.InputNameToWireIndex) {
			return fmt.Errorf("input widths length %d does not match input count %d",
				len(c.IOWidths.Inputs), len(c.Info.InputNameToWireIndex))
		}
		if len(c.IOWidths.Outputs) != len(c.Info.OutputNameToWireIndex) {
			return fmt.Errorf("output widths length %d does not match output count %d",
				len(c.IOWidths.Outputs), len(c.Info.OutputNameToWireIndex))
		}
		for i, w := range c.IOWidths.Inputs {
			if w <= 0 {
				return fmt.Errorf("input %d width %d is not positive", i, w)
			}
		}
		for i, w := range c.IOWidths.Outputs {
			if w <= 0 {
				return fmt.Errorf("output %d width %d is not positive", i, w)
			}
		}
	}

	return nil
}
