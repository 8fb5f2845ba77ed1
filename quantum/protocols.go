package quantum

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

// ErrBadMessage means a superdense-coding message is not two bits.
var ErrBadMessage = errors.New("message must be two bits (00, 01, 10, 11)")

// SuperdenseCircuit builds the superdense coding circuit: Alice and Bob
// share a Bell pair, Alice encodes a 2-bit message on her qubit with Z/X,
// Bob decodes in the Bell basis and measures.
func SuperdenseCircuit(message string) (*Circuit, error) {
	if len(message) != 2 || (message[0] != '0' && message[0] != '1') ||
		(message[1] != '0' && message[1] != '1') {
		return nil, fmt.Errorf("%w: got %q", ErrBadMessage, message)
	}

	c := NewCircuit(2)
	c.H(0).CX(0, 1)

	if message[0] == '1' {
		c.Z(0)
	}
	if message[1] == '1' {
		c.X(0)
	}

	c.CX(0, 1).H(0)
	c.Measure(0, 0).Measure(1, 1)
	return c, nil
}

// Superdense runs the protocol and returns the measurement counts plus the
// message Bob decodes (the most frequent outcome). For an exact simulator
// the counts always collapse to the sent message.
func Superdense(message string, shots int, rng *rand.Rand) (map[string]int, string, error) {
	c, err := SuperdenseCircuit(message)
	if err != nil {
		return nil, "", err
	}

	counts := c.Sample(shots, rng)

	received, best := "", -1
	for outcome, n := range counts {
		if n > best {
			received, best = outcome, n
		}
	}
	return counts, received, nil
}

// TeleportCircuit builds teleportation of |psi> = T·H|0> from qubit 0 to
// qubit 2: Bell pair on qubits 1 and 2, Bell measurement of qubits 0 and 1
// into classical bits 0 and 1, then X/Z corrections on Bob's qubit
// conditioned on the classical bits.
func TeleportCircuit() *Circuit {
	c := NewCircuit(3)

	// Message state on qubit 0.
	c.H(0).T(0)

	// Entangle Alice's qubit 1 with Bob's qubit 2.
	c.H(1).CX(1, 2)

	// Bell measurement on Alice's side.
	c.CX(0, 1).H(0)
	c.Measure(0, 0).Measure(1, 1)

	// Bob's corrections from Alice's two classical bits.
	c.XIf(1, 2)
	c.ZIf(0, 2)

	return c
}

// Teleport runs the protocol once and returns Bob's qubit amplitudes after
// correction, plus Alice's measurement record. For every measurement record
// the returned pair equals T·H|0> up to global phase.
func Teleport(rng *rand.Rand) (alpha, beta complex128, record []int) {
	c := TeleportCircuit()
	s, cbits := c.Run(rng)

	// Qubits 0 and 1 are collapsed to the measurement record; Bob's
	// amplitudes sit at the two indices matching that record.
	base := cbits[0]<<2 | cbits[1]<<1
	amps := s.Amplitudes()
	return amps[base], amps[base|1], cbits
}

// bellPair returns the two-qubit state (|00> + |11>)/sqrt(2).
func bellPair() *State {
	s := NewState(2)
	s.H(0)
	s.CX(0, 1)
	return s
}

// Correlation returns the exact expectation <sigma_a ⊗ sigma_b> on a Bell
// pair, where sigma_theta = cos(theta) Z + sin(theta) X. Measuring
// sigma_theta is a Z measurement after rotating by RY(-theta). For the
// Bell pair this equals cos(a-b).
func Correlation(a, b float64) float64 {
	s := bellPair()
	s.RY(-a, 0)
	s.RY(-b, 1)

	e := 0.0
	for i, amp := range s.Amplitudes() {
		p := real(amp)*real(amp) + imag(amp)*imag(amp)
		sign := 1.0
		if (i>>1)&1 != (i & 1) {
			sign = -1.0
		}
		e += sign * p
	}
	return e
}

// Canonical CHSH measurement angles: Alice 0 and π/2, Bob π/4 and -π/4.
const (
	AngleA0 = 0.0
	AngleA1 = math.Pi / 2
	AngleB0 = math.Pi / 4
	AngleB1 = -math.Pi / 4
)

// CHSH returns the exact CHSH value
// S = E(a0,b0) + E(a0,b1) + E(a1,b0) - E(a1,b1)
// at the canonical angles, which is 2*sqrt(2) — above the classical bound 2.
func CHSH() float64 {
	return Correlation(AngleA0, AngleB0) +
		Correlation(AngleA0, AngleB1) +
		Correlation(AngleA1, AngleB0) -
		Correlation(AngleA1, AngleB1)
}

// SampleCorrelation estimates Correlation(a, b) from measurement shots.
func SampleCorrelation(a, b float64, shots int, rng *rand.Rand) float64 {
	c := NewCircuit(2)
	c.H(0).CX(0, 1)
	c.RY(-a, 0).RY(-b, 1)
	c.Measure(0, 0).Measure(1, 1)

	sum := 0
	for range shots {
		_, cbits := c.Run(rng)
		if cbits[0] == cbits[1] {
			sum++
		} else {
			sum--
		}
	}
	return float64(sum) / float64(shots)
}

// SampleCHSH estimates the CHSH value from shots per angle pair.
func SampleCHSH(shots int, rng *rand.Rand) float64 {
	return SampleCorrelation(AngleA0, AngleB0, shots, rng) +
		SampleCorrelation(AngleA0, AngleB1, shots, rng) +
		SampleCorrelation(AngleA1, AngleB0, shots, rng) -
		SampleCorrelation(AngleA1, AngleB1, shots, rng)
}
