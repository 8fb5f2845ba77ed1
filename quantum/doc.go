// Package quantum is a small dense statevector simulator backing the
// course's protocol demonstrations: superdense coding, quantum
// teleportation, and a CHSH Bell-inequality test.
//
// The simulator is exact and single-threaded. Measurement outcomes are
// drawn from an injected random source, so every demo and test is
// reproducible from a seed.
package quantum
