// Package layout places circuit regions into the global witness table and
// tracks the copy constraints declared between cells.
package layout

import (
	"github.com/vybium/vybium-plonkish/internal/vybium-plonkish/circuit"
)

// Assignment is the global witness table for a circuit of size 2^k rows:
// advice and fixed cell values, selector bits, and the copy-constraint set.
// It is built incrementally by the Layouter and frozen before checking.
type Assignment struct {
	k    int
	rows int

	advice [][]circuit.Value // [column][row]
	fixed  [][]circuit.Value

	adviceWritten [][]bool
	fixedWritten  [][]bool

	selectors [][]bool // [selector][row]

	copies *cellSet

	frozen bool
}

// NewAssignment creates an empty table shaped for the given frozen
// constraint system and size exponent k.
func NewAssignment(cs *circuit.ConstraintSystem, k int) (*Assignment, error) {
	if k <= 0 || k > 30 {
		return nil, circuit.Errorf(circuit.ErrInvalidConfig, "circuit size exponent k=%d out of range", k)
	}
	rows := 1 << k

	asg := &Assignment{
		k:         k,
		rows:      rows,
		advice:    makeValueColumns(cs.NumAdviceColumns(), rows),
		fixed:     makeValueColumns(cs.NumFixedColumns(), rows),
		selectors: makeBitColumns(cs.NumSelectors(), rows),
		copies:    newCellSet(),
	}
	asg.adviceWritten = makeBitColumns(cs.NumAdviceColumns(), rows)
	asg.fixedWritten = makeBitColumns(cs.NumFixedColumns(), rows)
	return asg, nil
}

func makeValueColumns(cols, rows int) [][]circuit.Value {
	out := make([][]circuit.Value, cols)
	for i := range out {
		out[i] = make([]circuit.Value, rows)
	}
	return out
}

func makeBitColumns(cols, rows int) [][]bool {
	out := make([][]bool, cols)
	for i := range out {
		out[i] = make([]bool, rows)
	}
	return out
}

// K returns the size exponent.
func (a *Assignment) K() int { return a.k }

// Rows returns the table height, 2^k.
func (a *Assignment) Rows() int { return a.rows }

// Freeze closes the table. Further writes fail with ErrBuilderClosed.
func (a *Assignment) Freeze() { a.frozen = true }

// setCell writes a value into an advice or fixed cell, enforcing write
// consistency: two Known writes must agree, an Unknown write never clears
// an already Known value.
func (a *Assignment) setCell(cell circuit.Cell, val circuit.Value) error {
	if a.frozen {
		return circuit.Errorf(circuit.ErrBuilderClosed, "write to %s after freeze", cell)
	}
	if cell.Row < 0 || cell.Row >= a.rows {
		return circuit.Errorf(circuit.ErrRegionOverflow,
			"cell %s outside table of 2^%d rows", cell, a.k)
	}

	var column []circuit.Value
	var written []bool
	switch cell.Column.Kind {
	case circuit.Advice:
		column = a.advice[cell.Column.Index]
		written = a.adviceWritten[cell.Column.Index]
	case circuit.Fixed:
		column = a.fixed[cell.Column.Index]
		written = a.fixedWritten[cell.Column.Index]
	default:
		return circuit.Errorf(circuit.ErrInvalidConfig,
			"cannot assign into %s column", cell.Column.Kind)
	}

	if written[cell.Row] {
		prev := column[cell.Row]
		if prev.IsKnown() && val.IsKnown() && !prev.Equal(val) {
			return circuit.Errorf(circuit.ErrInconsistentAssignment,
				"cell %s rewritten: had %s, got %s", cell, prev, val)
		}
		if prev.IsKnown() && !val.IsKnown() {
			return nil
		}
	}

	column[cell.Row] = val
	written[cell.Row] = true
	return nil
}

// CellValue returns the value at an advice or fixed cell; Unknown if the
// cell was never written. Instance cells have no table storage; their
// values are supplied by the caller at check time.
func (a *Assignment) CellValue(cell circuit.Cell) circuit.Value {
	if cell.Row < 0 || cell.Row >= a.rows {
		return circuit.Unknown()
	}
	switch cell.Column.Kind {
	case circuit.Advice:
		return a.advice[cell.Column.Index][cell.Row]
	case circuit.Fixed:
		return a.fixed[cell.Column.Index][cell.Row]
	default:
		return circuit.Unknown()
	}
}

// enableSelector flips a selector bit on. Selector activation is never
// undone.
func (a *Assignment) enableSelector(sel circuit.Selector, row int) error {
	if a.frozen {
		return circuit.Errorf(circuit.ErrBuilderClosed, "selector enabled after freeze")
	}
	if row < 0 || row >= a.rows {
		return circuit.Errorf(circuit.ErrRegionOverflow,
			"%s enabled at row %d outside table of 2^%d rows", sel, row, a.k)
	}
	a.selectors[sel.Index][row] = true
	return nil
}

// SelectorEnabled reports whether a selector is on at a row.
func (a *Assignment) SelectorEnabled(sel circuit.Selector, row int) bool {
	if row < 0 || row >= a.rows {
		return false
	}
	return a.selectors[sel.Index][row]
}

// CopyClasses returns the copy-constraint equivalence classes, each a list
// of cells in first-seen order; class order follows the first cell seen.
func (a *Assignment) CopyClasses() [][]circuit.Cell {
	return a.copies.classes()
}

// union records a copy constraint between two cells.
func (a *Assignment) union(x, y circuit.Cell) error {
	if a.frozen {
		return circuit.Errorf(circuit.ErrBuilderClosed, "copy constraint added after freeze")
	}
	a.copies.union(x, y)
	return nil
}
