package test

import (
	"fmt"
	"math/big"
	"math/rand"

	"github.com/zkcircuits/bristol"
	"github.com/zkcircuits/bristol/agate"
)

type randomCircuitConfig struct {
	seed      int
	inputs    randRange
	outputs   randRange
	gates     randRange
	constants randRange
	// percent chance that the circuit carries per-port bit widths
	widePercent int
	// constant values are sampled uniformly below this bound
	field *big.Int
}

type randRange struct {
	l int
	r int
}

func (rr *randRange) sample(r *rand.Rand) int {
	return r.Intn(rr.r-rr.l+1) + rr.l
}

// randomCircuit generates a structurally valid circuit: inputs and constants
// occupy the low wires, every gate reads existing wires and appends its
// outputs, and the named outputs point at gate results.
func randomCircuit(conf *randomCircuitConfig) *bristol.BristolCircuit {
	r := rand.New(rand.NewSource(int64(conf.seed)))

	nIn := conf.inputs.sample(r)
	nOut := conf.outputs.sample(r)
	nGates := conf.gates.sample(r)
	nConst := conf.constants.sample(r)

	info := bristol.CircuitInfo{
		InputNameToWireIndex:  make(map[string]int),
		Constants:             make(map[string]bristol.ConstantInfo),
		OutputNameToWireIndex: make(map[string]int),
	}

	wires := 0
	for i := 0; i < nIn; i++ {
		info.InputNameToWireIndex[fmt.Sprintf("input%d", i)] = wires
		wires++
	}
	for i := 0; i < nConst; i++ {
		info.Constants[fmt.Sprintf("const%d", i)] = bristol.ConstantInfo{
			Value:     new(big.Int).Rand(r, conf.field).String(),
			WireIndex: wires,
		}
		wires++
	}

	ops := agate.List()
	gates := make([]bristol.Gate, 0, nGates)
	for i := 0; i < nGates; i++ {
		nGateIn := r.Intn(3)
		if wires == 0 {
			nGateIn = 0
		}
		inputs := make([]int, nGateIn)
		for j := range inputs {
			inputs[j] = r.Intn(wires)
		}
		outputs := []int{wires}
		wires++
		gates = append(gates, bristol.Gate{
			Inputs:  inputs,
			Outputs: outputs,
			Op:      ops[r.Intn(len(ops))],
		})
	}

	for i := 0; i < nOut; i++ {
		idx := 0
		if wires > 0 {
			idx = r.Intn(wires)
		}
		info.OutputNameToWireIndex[fmt.Sprintf("output%d", i)] = idx
	}

	c := &bristol.BristolCircuit{
		WireCount: wires,
		Info:      info,
		Gates:     gates,
	}

	if nIn+nOut > 0 && r.Intn(100) < conf.widePercent {
		c.IOWidths = randomWidths(r, nIn, nOut)
	}

	return c
}

// randomWidths samples per-port widths with at least one entry above 1, so
// the result survives the all-ones normalization.
func randomWidths(r *rand.Rand, nIn, nOut int) *bristol.IOWidths {
	widths := &bristol.IOWidths{
		Inputs:  make([]int, nIn),
		Outputs: make([]int, nOut),
	}
	for {
		wide := false
		for i := range widths.Inputs {
			widths.Inputs[i] = 1 + r.Intn(64)
			wide = wide || widths.Inputs[i] > 1
		}
		for i := range widths.Outputs {
			widths.Outputs[i] = 1 + r.Intn(64)
			wide = wide || widths.Outputs[i] > 1
		}
		if wide {
			return widths
		}
	}
}
