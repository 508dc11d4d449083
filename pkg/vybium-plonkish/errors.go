package vybiumplonkish

import (
	"github.com/vybium/vybium-plonkish/internal/vybium-plonkish/circuit"
)

// ErrorCode classifies the fatal build-time and layout-time errors.
type ErrorCode = circuit.ErrorCode

const (
	// ErrUnknown represents an unclassified error
	ErrUnknown = circuit.ErrUnknown

	// ErrBuilderClosed: constraint system mutated after freeze
	ErrBuilderClosed = circuit.ErrBuilderClosed

	// ErrDegreeExceeded: gate polynomial over the configured maximum degree
	ErrDegreeExceeded = circuit.ErrDegreeExceeded

	// ErrRegionOverflow: assignment beyond the 2^k table rows
	ErrRegionOverflow = circuit.ErrRegionOverflow

	// ErrInconsistentAssignment: same cell written with conflicting values
	ErrInconsistentAssignment = circuit.ErrInconsistentAssignment

	// ErrEqualityNotEnabled: copy constraint on a column without equality
	ErrEqualityNotEnabled = circuit.ErrEqualityNotEnabled

	// ErrInvalidInstance: instance reference outside the public inputs
	ErrInvalidInstance = circuit.ErrInvalidInstance

	// ErrInvalidConfig: invalid engine configuration
	ErrInvalidConfig = circuit.ErrInvalidConfig

	// ErrSynthesis: error returned by circuit synthesis code
	ErrSynthesis = circuit.ErrSynthesis
)

// Error is the structured error type returned by the builder, layouter and
// mock prover.
type Error = circuit.Error

// CodeOf extracts the ErrorCode from an error chain, ErrUnknown if none.
func CodeOf(err error) ErrorCode {
	return circuit.CodeOf(err)
}
