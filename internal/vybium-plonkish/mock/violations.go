// Package mock checks a fully assigned circuit for satisfiability: every
// enabled gate at every row, then every copy-constraint class. It is a
// diagnostic tool, so it never stops at the first finding; all violations
// are enumerated in a stable order.
package mock

import (
	"fmt"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
	"github.com/vybium/vybium-plonkish/internal/vybium-plonkish/circuit"
)

// Violation is one failed constraint found by Verify. Violations are
// findings, not errors: the scan always completes and reports them all.
type Violation interface {
	fmt.Stringer

	violation()
}

// UnsatisfiedGate reports a gate polynomial that evaluated to a known
// non-zero value at a row where the gate was active.
type UnsatisfiedGate struct {
	Gate      string
	PolyIndex int
	Row       int
	Got       field.Element
}

func (v UnsatisfiedGate) violation() {}

func (v UnsatisfiedGate) String() string {
	return fmt.Sprintf("gate %q (poly %d) unsatisfied at row %d: got %d",
		v.Gate, v.PolyIndex, v.Row, v.Got.Value())
}

// CopyMismatch reports two cells of the same copy-constraint class that
// resolved to different known values.
type CopyMismatch struct {
	A, B        circuit.Cell
	Left, Right field.Element
}

func (v CopyMismatch) violation() {}

func (v CopyMismatch) String() string {
	return fmt.Sprintf("copy constraint violated: %s = %d but %s = %d",
		v.A, v.Left.Value(), v.B, v.Right.Value())
}
