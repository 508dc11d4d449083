package circuit

// DefaultMaxDegree is the maximum gate polynomial degree supported when no
// explicit limit is configured. A proving backend consuming the frozen
// system is expected to support at least this degree.
const DefaultMaxDegree = 5

// Gate is a named bundle of polynomial expressions, each required to equal
// zero at every row where the gate is active.
type Gate struct {
	Name  string
	Polys []Expression

	// Queries collects every (column, rotation) read by any of the gate's
	// polynomials; its rotation extremes decide which boundary rows the
	// checker must skip.
	Queries QuerySet
}

// ConstraintSystem is the frozen-at-end circuit shape: columns, selectors,
// equality capabilities and gates. It is built once, before any assignment,
// and consumed read-only afterwards.
type ConstraintSystem struct {
	maxDegree int

	numAdvice   int
	numInstance int
	numFixed    int
	numSelector int

	equality map[Column]bool
	gates    []Gate

	frozen bool
}

// NewConstraintSystem creates an empty constraint system builder with the
// given maximum supported gate degree (DefaultMaxDegree if non-positive).
func NewConstraintSystem(maxDegree int) *ConstraintSystem {
	if maxDegree <= 0 {
		maxDegree = DefaultMaxDegree
	}
	return &ConstraintSystem{
		maxDegree: maxDegree,
		equality:  make(map[Column]bool),
	}
}

// AdviceColumn declares a new advice column.
func (cs *ConstraintSystem) AdviceColumn() (Column, error) {
	if cs.frozen {
		return Column{}, Errorf(ErrBuilderClosed, "advice column declared after freeze")
	}
	col := Column{Kind: Advice, Index: cs.numAdvice}
	cs.numAdvice++
	return col, nil
}

// InstanceColumn declares a new instance (public input) column.
func (cs *ConstraintSystem) InstanceColumn() (Column, error) {
	if cs.frozen {
		return Column{}, Errorf(ErrBuilderClosed, "instance column declared after freeze")
	}
	col := Column{Kind: Instance, Index: cs.numInstance}
	cs.numInstance++
	return col, nil
}

// FixedColumn declares a new fixed (circuit constant) column.
func (cs *ConstraintSystem) FixedColumn() (Column, error) {
	if cs.frozen {
		return Column{}, Errorf(ErrBuilderClosed, "fixed column declared after freeze")
	}
	col := Column{Kind: Fixed, Index: cs.numFixed}
	cs.numFixed++
	return col, nil
}

// Selector declares a new selector.
func (cs *ConstraintSystem) Selector() (Selector, error) {
	if cs.frozen {
		return Selector{}, Errorf(ErrBuilderClosed, "selector declared after freeze")
	}
	sel := Selector{Index: cs.numSelector}
	cs.numSelector++
	return sel, nil
}

// EnableEquality marks a column as eligible to participate in copy
// constraints. This is a build-time capability of the column, not a
// per-cell property.
func (cs *ConstraintSystem) EnableEquality(col Column) error {
	if cs.frozen {
		return Errorf(ErrBuilderClosed, "equality enabled after freeze")
	}
	cs.equality[col] = true
	return nil
}

// EqualityEnabled reports whether a column may appear in copy constraints.
func (cs *ConstraintSystem) EqualityEnabled(col Column) bool {
	return cs.equality[col]
}

// CreateGate declares a named gate. The build callback receives a
// VirtualCells handle for requesting (column, rotation) query terms and
// returns the gate's polynomial expressions, each required to equal zero
// wherever the gate is active.
//
// The degree of every returned expression (selector factor included) must
// not exceed the configured maximum, otherwise ErrDegreeExceeded.
func (cs *ConstraintSystem) CreateGate(name string, build func(v *VirtualCells) []Expression) error {
	if cs.frozen {
		return Errorf(ErrBuilderClosed, "gate %q created after freeze", name)
	}

	v := &VirtualCells{}
	polys := build(v)

	gate := Gate{Name: name, Polys: polys}
	for _, poly := range polys {
		if d := poly.Degree(); d > cs.maxDegree {
			return Errorf(ErrDegreeExceeded,
				"gate %q has degree %d, configured maximum is %d", name, d, cs.maxDegree)
		}
		poly.CollectQueries(&gate.Queries)
	}

	cs.gates = append(cs.gates, gate)
	return nil
}

// Freeze closes the builder. Further mutation fails with ErrBuilderClosed.
func (cs *ConstraintSystem) Freeze() {
	cs.frozen = true
}

// Frozen reports whether the builder has been closed.
func (cs *ConstraintSystem) Frozen() bool { return cs.frozen }

// MaxDegree returns the configured maximum gate degree.
func (cs *ConstraintSystem) MaxDegree() int { return cs.maxDegree }

// Gates returns the declared gates in declaration order.
func (cs *ConstraintSystem) Gates() []Gate { return cs.gates }

// NumAdviceColumns returns the number of declared advice columns.
func (cs *ConstraintSystem) NumAdviceColumns() int { return cs.numAdvice }

// NumInstanceColumns returns the number of declared instance columns.
func (cs *ConstraintSystem) NumInstanceColumns() int { return cs.numInstance }

// NumFixedColumns returns the number of declared fixed columns.
func (cs *ConstraintSystem) NumFixedColumns() int { return cs.numFixed }

// NumSelectors returns the number of declared selectors.
func (cs *ConstraintSystem) NumSelectors() int { return cs.numSelector }

// VirtualCells is the query interface handed to a gate's build callback.
type VirtualCells struct{}

// QueryAdvice requests an advice column value at a rotation.
func (v *VirtualCells) QueryAdvice(col Column, rot Rotation) Expression {
	return queryExpr{col: col, rot: rot}
}

// QueryInstance requests an instance column value at a rotation.
func (v *VirtualCells) QueryInstance(col Column, rot Rotation) Expression {
	return queryExpr{col: col, rot: rot}
}

// QueryFixed requests a fixed column value at a rotation.
func (v *VirtualCells) QueryFixed(col Column, rot Rotation) Expression {
	return queryExpr{col: col, rot: rot}
}

// QuerySelector requests a selector at the current row.
func (v *VirtualCells) QuerySelector(sel Selector) Expression {
	return selectorExpr{sel: sel}
}
