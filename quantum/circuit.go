package quantum

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// Gate types placed on a circuit.
const (
	GateH       = "h"
	GateX       = "x"
	GateZ       = "z"
	GateT       = "t"
	GateRY      = "ry"
	GateCX      = "cx"
	GateMeasure = "measure"
)

// Gate is one operation in a circuit's timeline. Control is -1 for
// single-qubit gates. CondBit, when >= 0, makes the gate classically
// conditioned: it applies only if that classical bit measured 1.
type Gate struct {
	Type    string
	Target  int
	Control int
	Theta   float64 // RY rotation angle
	CBit    int     // classical bit receiving a measurement
	CondBit int
}

// Circuit holds an ordered gate list over a fixed qubit register.
type Circuit struct {
	NumQubits int
	Gates     []Gate
}

// NewCircuit returns an empty circuit over n qubits.
func NewCircuit(n int) *Circuit {
	return &Circuit{NumQubits: n}
}

func (c *Circuit) add(g Gate) *Circuit {
	c.Gates = append(c.Gates, g)
	return c
}

// H appends a Hadamard gate.
func (c *Circuit) H(q int) *Circuit { return c.add(Gate{Type: GateH, Target: q, Control: -1, CondBit: -1}) }

// X appends a Pauli-X gate.
func (c *Circuit) X(q int) *Circuit { return c.add(Gate{Type: GateX, Target: q, Control: -1, CondBit: -1}) }

// Z appends a Pauli-Z gate.
func (c *Circuit) Z(q int) *Circuit { return c.add(Gate{Type: GateZ, Target: q, Control: -1, CondBit: -1}) }

// T appends a T gate.
func (c *Circuit) T(q int) *Circuit { return c.add(Gate{Type: GateT, Target: q, Control: -1, CondBit: -1}) }

// RY appends a Y-axis rotation.
func (c *Circuit) RY(theta float64, q int) *Circuit {
	return c.add(Gate{Type: GateRY, Target: q, Control: -1, Theta: theta, CondBit: -1})
}

// CX appends a controlled-X gate.
func (c *Circuit) CX(control, target int) *Circuit {
	return c.add(Gate{Type: GateCX, Target: target, Control: control, CondBit: -1})
}

// Measure appends a Z measurement of q into classical bit cbit.
func (c *Circuit) Measure(q, cbit int) *Circuit {
	return c.add(Gate{Type: GateMeasure, Target: q, Control: -1, CBit: cbit, CondBit: -1})
}

// XIf appends an X gate applied only when classical bit cond measured 1.
func (c *Circuit) XIf(cond, q int) *Circuit {
	return c.add(Gate{Type: GateX, Target: q, Control: -1, CondBit: cond})
}

// ZIf appends a Z gate applied only when classical bit cond measured 1.
func (c *Circuit) ZIf(cond, q int) *Circuit {
	return c.add(Gate{Type: GateZ, Target: q, Control: -1, CondBit: cond})
}

// NumCbits returns the classical register size derived from the gates.
func (c *Circuit) NumCbits() int {
	maxBit := -1
	for _, g := range c.Gates {
		if g.Type == GateMeasure && g.CBit > maxBit {
			maxBit = g.CBit
		}
		if g.CondBit > maxBit {
			maxBit = g.CondBit
		}
	}
	return maxBit + 1
}

// Run executes the circuit against a fresh |0...0> state and returns the
// final state plus the classical register.
func (c *Circuit) Run(rng *rand.Rand) (*State, []int) {
	s := NewState(c.NumQubits)
	cbits := make([]int, c.NumCbits())

	for _, g := range c.Gates {
		if g.CondBit >= 0 && cbits[g.CondBit] != 1 {
			continue
		}
		switch g.Type {
		case GateH:
			s.H(g.Target)
		case GateX:
			s.X(g.Target)
		case GateZ:
			s.Z(g.Target)
		case GateT:
			s.T(g.Target)
		case GateRY:
			s.RY(g.Theta, g.Target)
		case GateCX:
			s.CX(g.Control, g.Target)
		case GateMeasure:
			cbits[g.CBit] = s.Measure(g.Target, rng)
		default:
			panic("quantum: unknown gate " + g.Type)
		}
	}
	return s, cbits
}

// Sample runs the circuit shots times and tallies the classical registers.
// Keys list classical bits in index order (c0 first).
func (c *Circuit) Sample(shots int, rng *rand.Rand) map[string]int {
	counts := make(map[string]int)
	for range shots {
		_, cbits := c.Run(rng)
		counts[Bitstring(cbits)]++
	}
	return counts
}

// Bitstring renders classical bits in index order.
func Bitstring(bits []int) string {
	var sb strings.Builder
	for _, b := range bits {
		if b == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// ToQASM emits the circuit as OPENQASM 2.0.
func (c *Circuit) ToQASM() string {
	var sb strings.Builder
	sb.WriteString("OPENQASM 2.0;\n")
	sb.WriteString("include \"qelib1.inc\";\n\n")
	fmt.Fprintf(&sb, "qreg q[%d];\n", c.NumQubits)
	if n := c.NumCbits(); n > 0 {
		fmt.Fprintf(&sb, "creg c[%d];\n", n)
	}
	sb.WriteString("\n")

	for _, g := range c.Gates {
		if g.CondBit >= 0 {
			fmt.Fprintf(&sb, "if (c[%d]==1) ", g.CondBit)
		}
		switch g.Type {
		case GateMeasure:
			fmt.Fprintf(&sb, "measure q[%d] -> c[%d];\n", g.Target, g.CBit)
		case GateCX:
			fmt.Fprintf(&sb, "cx q[%d], q[%d];\n", g.Control, g.Target)
		case GateRY:
			fmt.Fprintf(&sb, "ry(%g) q[%d];\n", g.Theta, g.Target)
		default:
			fmt.Fprintf(&sb, "%s q[%d];\n", g.Type, g.Target)
		}
	}
	return sb.String()
}
