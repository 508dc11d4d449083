package circuit

import "fmt"

// ErrorCode classifies the fatal errors raised while building a constraint
// system or laying out a witness. Check-time findings (unsatisfied gates,
// copy mismatches) are not errors; they are accumulated as violations.
type ErrorCode int

const (
	// ErrUnknown represents an unclassified error
	ErrUnknown ErrorCode = iota

	// ErrBuilderClosed is raised when the constraint system is mutated
	// after it has been frozen
	ErrBuilderClosed

	// ErrDegreeExceeded is raised when a gate polynomial's degree is over
	// the configured maximum
	ErrDegreeExceeded

	// ErrRegionOverflow is raised when an assignment lands beyond the
	// 2^k table rows
	ErrRegionOverflow

	// ErrInconsistentAssignment is raised when the same cell is written
	// twice with differing known values
	ErrInconsistentAssignment

	// ErrEqualityNotEnabled is raised when a column participates in a copy
	// constraint without equality enabled at configure time
	ErrEqualityNotEnabled

	// ErrInvalidInstance is raised when a referenced instance row is
	// outside the supplied public-input vector
	ErrInvalidInstance

	// ErrInvalidConfig represents an invalid engine configuration
	ErrInvalidConfig

	// ErrSynthesis wraps an error returned by circuit synthesis code
	ErrSynthesis
)

// Error is the structured error type shared by the builder, the layouter
// and the mock prover.
type Error struct {
	Code    ErrorCode
	Message string
	Cause   error
}

// Errorf builds an Error with a formatted message.
func Errorf(code ErrorCode, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds an Error around a cause.
func Wrap(code ErrorCode, cause error, message string) *Error {
	return &Error{Code: code, Message: message, Cause: cause}
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("vybium-plonkish error [%d]: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("vybium-plonkish error [%d]: %s", e.Code, e.Message)
}

// Unwrap returns the cause of the error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// CodeOf extracts the ErrorCode from an error chain, ErrUnknown if none.
func CodeOf(err error) ErrorCode {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Code
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return ErrUnknown
		}
		err = u.Unwrap()
	}
	return ErrUnknown
}
