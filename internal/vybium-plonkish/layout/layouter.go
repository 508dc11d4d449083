package layout

import (
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
	"github.com/vybium/vybium-plonkish/internal/vybium-plonkish/circuit"
)

// AssignedCell is the handle returned for every assignment: the absolute
// cell address plus a cached copy of the written value for convenience
// chaining. It owns no table state.
type AssignedCell struct {
	Cell  circuit.Cell
	Value circuit.Value
}

// RegionInfo records where a region ended up in the global table.
type RegionInfo struct {
	Name  string
	Start int
	Rows  int
}

// Layouter drives region assignment: it places each region into the next
// unused contiguous block of absolute rows, in call order. Placement
// depends only on the sequence of calls and the local rows they touch,
// never on witness values, so a shape-only pass and a witness-bearing pass
// of the same circuit produce the identical layout.
type Layouter struct {
	cs  *circuit.ConstraintSystem
	asg *Assignment

	// instance holds the public-input vectors per instance column, or nil
	// during shape-only synthesis.
	instance [][]field.Element

	nextRow int
	regions []RegionInfo
}

// NewLayouter creates a layouter over a frozen constraint system and an
// empty assignment. The instance vectors may be nil, in which case values
// copied from instance columns come out Unknown.
func NewLayouter(cs *circuit.ConstraintSystem, asg *Assignment, instance [][]field.Element) (*Layouter, error) {
	if !cs.Frozen() {
		return nil, circuit.Errorf(circuit.ErrInvalidConfig,
			"layouter requires a frozen constraint system")
	}
	if instance != nil && len(instance) != cs.NumInstanceColumns() {
		return nil, circuit.Errorf(circuit.ErrInvalidInstance,
			"got %d instance vectors for %d instance columns",
			len(instance), cs.NumInstanceColumns())
	}
	return &Layouter{cs: cs, asg: asg, instance: instance}, nil
}

// Regions returns the placed regions in assignment order.
func (l *Layouter) Regions() []RegionInfo { return l.regions }

// AssignRegion runs body against a fresh region placed at the next free
// absolute row. The block's height is the highest local row the body
// touches, plus one.
func (l *Layouter) AssignRegion(name string, body func(r *Region) error) error {
	region := &Region{layouter: l, base: l.nextRow, maxOffset: -1}
	if err := body(region); err != nil {
		return err
	}
	rows := region.maxOffset + 1
	l.regions = append(l.regions, RegionInfo{Name: name, Start: region.base, Rows: rows})
	l.nextRow += rows
	return nil
}

// ConstrainEqual records a copy constraint between two previously assigned
// cells. Both columns must have equality enabled.
func (l *Layouter) ConstrainEqual(a, b circuit.Cell) error {
	for _, cell := range []circuit.Cell{a, b} {
		if !l.cs.EqualityEnabled(cell.Column) {
			return circuit.Errorf(circuit.ErrEqualityNotEnabled,
				"column %s used in a copy constraint without equality enabled", cell.Column)
		}
	}
	return l.asg.union(a, b)
}

// ConstrainInstance binds a cell to an instance column row: the cell must
// equal the public input supplied for that row at check time.
func (l *Layouter) ConstrainInstance(cell circuit.Cell, instCol circuit.Column, row int) error {
	if instCol.Kind != circuit.Instance {
		return circuit.Errorf(circuit.ErrInvalidInstance,
			"%s is not an instance column", instCol)
	}
	return l.ConstrainEqual(cell, circuit.Cell{Column: instCol, Row: row})
}

// instanceValue reads a public input, Unknown when no vectors were given.
func (l *Layouter) instanceValue(col circuit.Column, row int) (circuit.Value, error) {
	if l.instance == nil {
		return circuit.Unknown(), nil
	}
	vec := l.instance[col.Index]
	if row < 0 || row >= len(vec) {
		return circuit.Unknown(), circuit.Errorf(circuit.ErrInvalidInstance,
			"instance row %d outside supplied vector of length %d for %s", row, len(vec), col)
	}
	return circuit.Known(vec[row]), nil
}

// Region is a logical sub-table with its own 0-based row numbering, handed
// to an AssignRegion body. Local offsets become absolute rows against the
// region's base.
type Region struct {
	layouter  *Layouter
	base      int
	maxOffset int
}

func (r *Region) touch(offset int) {
	if offset > r.maxOffset {
		r.maxOffset = offset
	}
}

// AssignAdvice writes a witness value into an advice cell at a local row.
// Assigning Unknown is legal; it marks the cell for a later witness pass.
func (r *Region) AssignAdvice(col circuit.Column, offset int, val circuit.Value) (AssignedCell, error) {
	if col.Kind != circuit.Advice {
		return AssignedCell{}, circuit.Errorf(circuit.ErrInvalidConfig,
			"AssignAdvice on %s column", col.Kind)
	}
	cell := circuit.Cell{Column: col, Row: r.base + offset}
	if err := r.layouter.asg.setCell(cell, val); err != nil {
		return AssignedCell{}, err
	}
	r.touch(offset)
	return AssignedCell{Cell: cell, Value: val}, nil
}

// AssignFixed writes a circuit constant into a fixed cell at a local row.
func (r *Region) AssignFixed(col circuit.Column, offset int, val field.Element) (AssignedCell, error) {
	if col.Kind != circuit.Fixed {
		return AssignedCell{}, circuit.Errorf(circuit.ErrInvalidConfig,
			"AssignFixed on %s column", col.Kind)
	}
	cell := circuit.Cell{Column: col, Row: r.base + offset}
	known := circuit.Known(val)
	if err := r.layouter.asg.setCell(cell, known); err != nil {
		return AssignedCell{}, err
	}
	r.touch(offset)
	return AssignedCell{Cell: cell, Value: known}, nil
}

// AssignAdviceFromInstance copies a public input into an advice cell and
// records the copy constraint binding the two.
func (r *Region) AssignAdviceFromInstance(instCol circuit.Column, instRow int, target circuit.Column, offset int) (AssignedCell, error) {
	if instCol.Kind != circuit.Instance {
		return AssignedCell{}, circuit.Errorf(circuit.ErrInvalidInstance,
			"%s is not an instance column", instCol)
	}
	val, err := r.layouter.instanceValue(instCol, instRow)
	if err != nil {
		return AssignedCell{}, err
	}

	assigned, err := r.AssignAdvice(target, offset, val)
	if err != nil {
		return AssignedCell{}, err
	}
	if err := r.layouter.ConstrainInstance(assigned.Cell, instCol, instRow); err != nil {
		return AssignedCell{}, err
	}
	return assigned, nil
}

// CopyAdvice propagates a previously assigned cell's value into a new
// advice cell and records a copy constraint between the two.
func (r *Region) CopyAdvice(source AssignedCell, target circuit.Column, offset int) (AssignedCell, error) {
	assigned, err := r.AssignAdvice(target, offset, source.Value)
	if err != nil {
		return AssignedCell{}, err
	}
	if err := r.layouter.ConstrainEqual(source.Cell, assigned.Cell); err != nil {
		return AssignedCell{}, err
	}
	return assigned, nil
}

// EnableSelector turns a selector on at a local row.
func (r *Region) EnableSelector(sel circuit.Selector, offset int) error {
	if err := r.layouter.asg.enableSelector(sel, r.base+offset); err != nil {
		return err
	}
	r.touch(offset)
	return nil
}
