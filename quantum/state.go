package quantum

import (
	"fmt"
	"math"
	"math/cmplx"
	"math/rand/v2"
)

// State is a dense statevector over n qubits. Qubit 0 is the most
// significant bit of the amplitude index, so the amplitude of |q0 q1 q2>
// lives at index q0<<2 | q1<<1 | q2 for n=3.
type State struct {
	n    int
	amps []complex128
}

// NewState returns the n-qubit state |0...0>.
func NewState(n int) *State {
	if n < 1 || n > 24 {
		panic(fmt.Sprintf("quantum: unsupported qubit count %d", n))
	}
	amps := make([]complex128, 1<<n)
	amps[0] = 1
	return &State{n: n, amps: amps}
}

// NumQubits returns the number of qubits.
func (s *State) NumQubits() int { return s.n }

// Amplitudes returns a copy of the statevector.
func (s *State) Amplitudes() []complex128 {
	out := make([]complex128, len(s.amps))
	copy(out, s.amps)
	return out
}

// mask returns the index bit selecting qubit q.
func (s *State) mask(q int) int {
	if q < 0 || q >= s.n {
		panic(fmt.Sprintf("quantum: qubit %d out of range [0,%d)", q, s.n))
	}
	return 1 << (s.n - 1 - q)
}

// apply1 applies a 2x2 unitary to qubit q.
func (s *State) apply1(q int, m [2][2]complex128) {
	bit := s.mask(q)
	for i := range s.amps {
		if i&bit != 0 {
			continue
		}
		j := i | bit
		a0, a1 := s.amps[i], s.amps[j]
		s.amps[i] = m[0][0]*a0 + m[0][1]*a1
		s.amps[j] = m[1][0]*a0 + m[1][1]*a1
	}
}

// H applies the Hadamard gate to qubit q.
func (s *State) H(q int) {
	inv := complex(1/math.Sqrt2, 0)
	s.apply1(q, [2][2]complex128{{inv, inv}, {inv, -inv}})
}

// X applies the Pauli-X (NOT) gate to qubit q.
func (s *State) X(q int) {
	s.apply1(q, [2][2]complex128{{0, 1}, {1, 0}})
}

// Z applies the Pauli-Z gate to qubit q.
func (s *State) Z(q int) {
	s.apply1(q, [2][2]complex128{{1, 0}, {0, -1}})
}

// T applies the T gate (π/8 phase) to qubit q.
func (s *State) T(q int) {
	phase := cmplx.Exp(complex(0, math.Pi/4))
	s.apply1(q, [2][2]complex128{{1, 0}, {0, phase}})
}

// RY applies a rotation of theta radians about the Y axis to qubit q.
func (s *State) RY(theta float64, q int) {
	c := complex(math.Cos(theta/2), 0)
	sn := complex(math.Sin(theta/2), 0)
	s.apply1(q, [2][2]complex128{{c, -sn}, {sn, c}})
}

// CX applies a controlled-X gate.
func (s *State) CX(control, target int) {
	cbit, tbit := s.mask(control), s.mask(target)
	if cbit == tbit {
		panic("quantum: CX control equals target")
	}
	for i := range s.amps {
		if i&cbit != 0 && i&tbit == 0 {
			j := i | tbit
			s.amps[i], s.amps[j] = s.amps[j], s.amps[i]
		}
	}
}

// Prob1 returns the probability of measuring qubit q as 1.
func (s *State) Prob1(q int) float64 {
	bit := s.mask(q)
	p := 0.0
	for i, a := range s.amps {
		if i&bit != 0 {
			p += real(a)*real(a) + imag(a)*imag(a)
		}
	}
	return p
}

// Measure performs a projective Z measurement of qubit q, collapsing and
// renormalizing the state. The outcome is drawn from rng.
func (s *State) Measure(q int, rng *rand.Rand) int {
	bit := s.mask(q)
	p1 := s.Prob1(q)

	outcome := 0
	if rng.Float64() < p1 {
		outcome = 1
	}

	p := p1
	if outcome == 0 {
		p = 1 - p1
	}
	norm := complex(1/math.Sqrt(p), 0)

	for i := range s.amps {
		if (i&bit != 0) == (outcome == 1) {
			s.amps[i] *= norm
		} else {
			s.amps[i] = 0
		}
	}
	return outcome
}
