package vybiumplonkish

import (
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"

	"github.com/vybium/vybium-plonkish/internal/vybium-plonkish/circuit"
	"github.com/vybium/vybium-plonkish/internal/vybium-plonkish/layout"
	"github.com/vybium/vybium-plonkish/internal/vybium-plonkish/mock"
)

// FieldElement is an element of the finite field the table is built over.
// Field arithmetic itself is an external collaborator.
type FieldElement = field.Element

// Value is a table cell value, Known or Unknown.
type Value = circuit.Value

// Column identifies a declared table column.
type Column = circuit.Column

// ColumnKind distinguishes advice, instance and fixed columns.
type ColumnKind = circuit.ColumnKind

// Selector is a per-row gate toggle.
type Selector = circuit.Selector

// Rotation is a signed row offset in a gate query.
type Rotation = circuit.Rotation

// Cell addresses one table cell.
type Cell = circuit.Cell

// Expression is a gate polynomial over column queries.
type Expression = circuit.Expression

// ConstraintSystem is the circuit shape builder.
type ConstraintSystem = circuit.ConstraintSystem

// VirtualCells is the query interface inside CreateGate.
type VirtualCells = circuit.VirtualCells

// Layouter drives region assignment.
type Layouter = layout.Layouter

// Region is a locally indexed block of rows during assignment.
type Region = layout.Region

// AssignedCell is the handle returned by every assignment.
type AssignedCell = layout.AssignedCell

// Circuit is the caller-facing circuit contract.
type Circuit = mock.Circuit

// Config carries the engine parameters.
type Config = mock.Config

// MockProver checks an assigned circuit for satisfiability.
type MockProver = mock.MockProver

// Violation is one failed gate or copy constraint.
type Violation = mock.Violation

// UnsatisfiedGate reports a failed gate polynomial.
type UnsatisfiedGate = mock.UnsatisfiedGate

// CopyMismatch reports a failed copy constraint.
type CopyMismatch = mock.CopyMismatch

// Column kinds.
const (
	Advice   = circuit.Advice
	Instance = circuit.Instance
	Fixed    = circuit.Fixed
)

// Common rotations.
const (
	RotCur  = circuit.RotCur
	RotNext = circuit.RotNext
	RotPrev = circuit.RotPrev
)

// DefaultMaxDegree is the gate degree limit used by DefaultConfig.
const DefaultMaxDegree = circuit.DefaultMaxDegree

// DefaultConfig returns a configuration suitable for small circuits.
func DefaultConfig() Config {
	return mock.DefaultConfig()
}

// Run configures and synthesizes a circuit and returns a mock prover over
// the frozen constraint system and witness table.
func Run(cfg Config, circ Circuit, instance [][]field.Element) (*MockProver, error) {
	return mock.Run(cfg, circ, instance)
}

// NewConstraintSystem creates a standalone builder, for callers driving
// configure/synthesize themselves rather than through Run.
func NewConstraintSystem(maxDegree int) *ConstraintSystem {
	return circuit.NewConstraintSystem(maxDegree)
}

// Known wraps a field element into a known Value.
func Known(e field.Element) Value { return circuit.Known(e) }

// KnownUint64 wraps a small integer into a known Value.
func KnownUint64(v uint64) Value { return circuit.KnownUint64(v) }

// Unknown returns the not-yet-assigned Value.
func Unknown() Value { return circuit.Unknown() }

// Expression combinators.
var (
	Sum      = circuit.Sum
	Sub      = circuit.Sub
	Product  = circuit.Product
	Neg      = circuit.Neg
	Scale    = circuit.Scale
	Constant = circuit.Constant
)
