package circuit

import "fmt"

// ColumnKind distinguishes the three column classes of the table.
type ColumnKind int

const (
	// Advice columns hold prover-chosen witness values.
	Advice ColumnKind = iota

	// Instance columns hold public inputs the verifier also knows.
	Instance

	// Fixed columns hold circuit constants set at configure time.
	Fixed
)

// String returns the lowercase kind name.
func (k ColumnKind) String() string {
	switch k {
	case Advice:
		return "advice"
	case Instance:
		return "instance"
	case Fixed:
		return "fixed"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Column identifies a declared column by kind and per-kind index.
// Columns are compared by value; they carry no table state.
type Column struct {
	Kind  ColumnKind
	Index int
}

// String returns e.g. "advice[2]".
func (c Column) String() string {
	return fmt.Sprintf("%s[%d]", c.Kind, c.Index)
}

// Selector identifies a per-row gate toggle. Selectors are materialized as
// boolean rows alongside the fixed columns and default to disabled.
type Selector struct {
	Index int
}

// String returns e.g. "selector[0]".
func (s Selector) String() string {
	return fmt.Sprintf("selector[%d]", s.Index)
}

// Rotation is a signed row offset used when a gate reads a neighboring row.
type Rotation int

const (
	// RotCur queries the current row.
	RotCur Rotation = 0

	// RotNext queries the next row.
	RotNext Rotation = 1

	// RotPrev queries the previous row.
	RotPrev Rotation = -1
)

// Cell addresses one table cell by column and absolute row.
type Cell struct {
	Column Column
	Row    int
}

// String returns e.g. "advice[0]@3".
func (c Cell) String() string {
	return fmt.Sprintf("%s@%d", c.Column, c.Row)
}
