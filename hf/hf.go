// Package hf implements the restricted and unrestricted Hartree-Fock
// self-consistent-field iteration: Fock build, density update, DIIS
// extrapolation, and convergence testing.
package hf

import (
	"github.com/quantumgo/hartreefock/linalg"
)

// Error is the package's sentinel error type.
type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrNotConverged is returned (not panicked) by Solve when the SCF
	// iteration exhausts MaxIter without meeting both convergence
	// thresholds; the caller still receives the last iterate and trace.
	ErrNotConverged = Error("hf: SCF did not converge within the iteration limit")
)

const (
	ErrNumericalBlowup     = Error("hf: SCF energy diverged")
	ErrDecompositionFailed = Error("hf: Fock matrix diagonalization failed")
)

// Kind selects the SCF variant.
type Kind int

const (
	RHF Kind = iota
	UHF
)

// Config holds the SCF knobs.
type Config struct {
	Kind          Kind
	EThreshold    float64
	RMSThreshold  float64
	MaxIter       int
	DIISIterStart int
	DIISDimMax    int
	NAlpha        int
	NBeta         int
}

// DefaultConfig returns the package's documented default thresholds.
func DefaultConfig(kind Kind, nAlpha, nBeta int) Config {
	return Config{
		Kind:          kind,
		EThreshold:    1e-6,
		RMSThreshold:  1e-12,
		MaxIter:       40,
		DIISIterStart: 2,
		DIISDimMax:    6,
		NAlpha:        nAlpha,
		NBeta:         nBeta,
	}
}

// Trace records one SCF iteration's diagnostics.
type Trace struct {
	Iter   int
	E      float64
	DeltaE float64
	DRms   float64
}

// Result is the outcome of Solve: the final MO coefficients, orbital
// energies, density, Fock matrix, total energy, and the full iteration
// trace.
type Result struct {
	Converged  bool
	Energy     float64
	Iterations []Trace

	// RHF fields.
	C   *linalg.Dense
	Eps []float64
	D   *linalg.Symmetric
	F   *linalg.Symmetric

	// UHF fields (both populated only when Config.Kind == UHF).
	CAlpha, CBeta     *linalg.Dense
	EpsAlpha, EpsBeta []float64
	DAlpha, DBeta     *linalg.Symmetric
	FAlpha, FBeta     *linalg.Symmetric
}
