package circuit

import (
	"fmt"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
)

// Expression is a polynomial over column queries at row offsets. A gate's
// expressions are implicitly constrained to equal zero wherever the gate
// is active.
//
// EvalLookup resolves a (column, rotation) query relative to the row the
// expression is being evaluated at; selector queries are resolved
// separately since selectors are booleans, not field cells.
type Expression interface {
	// Degree returns the total polynomial degree of the expression.
	// Queries and selector queries count as degree 1, constants as 0.
	Degree() int

	// Eval evaluates the expression through the given lookup callbacks.
	Eval(lookup EvalLookup) Value

	// CollectQueries appends every (column, rotation) query in the
	// expression tree to the given query set.
	CollectQueries(qs *QuerySet)

	// String renders the expression for diagnostics.
	String() string
}

// EvalLookup supplies cell and selector values during evaluation.
type EvalLookup struct {
	// Query returns the value of a column at a rotation from the
	// evaluation row.
	Query func(col Column, rot Rotation) Value

	// QuerySelector returns whether a selector is enabled at the
	// evaluation row.
	QuerySelector func(sel Selector) bool
}

// QuerySet records which cells a gate reads, and the extreme rotations,
// so the checker can exclude boundary rows where a query would leave the
// table.
type QuerySet struct {
	Queries []ColumnQuery
	MinRot  Rotation
	MaxRot  Rotation
}

// ColumnQuery is a single (column, rotation) term.
type ColumnQuery struct {
	Column   Column
	Rotation Rotation
}

func (qs *QuerySet) add(col Column, rot Rotation) {
	for _, q := range qs.Queries {
		if q.Column == col && q.Rotation == rot {
			return
		}
	}
	qs.Queries = append(qs.Queries, ColumnQuery{Column: col, Rotation: rot})
	if rot < qs.MinRot {
		qs.MinRot = rot
	}
	if rot > qs.MaxRot {
		qs.MaxRot = rot
	}
}

// queryExpr reads a column at a rotation.
type queryExpr struct {
	col Column
	rot Rotation
}

func (e queryExpr) Degree() int { return 1 }

func (e queryExpr) Eval(lookup EvalLookup) Value {
	return lookup.Query(e.col, e.rot)
}

func (e queryExpr) CollectQueries(qs *QuerySet) {
	qs.add(e.col, e.rot)
}

func (e queryExpr) String() string {
	if e.rot == 0 {
		return e.col.String()
	}
	return fmt.Sprintf("%s[%+d]", e.col, int(e.rot))
}

// selectorExpr reads a selector at the current row. It evaluates to one or
// zero and gates the rest of the product it appears in.
type selectorExpr struct {
	sel Selector
}

func (e selectorExpr) Degree() int { return 1 }

func (e selectorExpr) Eval(lookup EvalLookup) Value {
	if lookup.QuerySelector(e.sel) {
		return Known(field.One)
	}
	return Known(field.Zero)
}

func (e selectorExpr) CollectQueries(qs *QuerySet) {}

func (e selectorExpr) String() string { return e.sel.String() }

// constExpr is a field constant.
type constExpr struct {
	value field.Element
}

func (e constExpr) Degree() int { return 0 }

func (e constExpr) Eval(lookup EvalLookup) Value {
	return Known(e.value)
}

func (e constExpr) CollectQueries(qs *QuerySet) {}

func (e constExpr) String() string { return fmt.Sprintf("%d", e.value.Value()) }

type sumExpr struct {
	left, right Expression
}

func (e sumExpr) Degree() int {
	return maxInt(e.left.Degree(), e.right.Degree())
}

func (e sumExpr) Eval(lookup EvalLookup) Value {
	return e.left.Eval(lookup).Add(e.right.Eval(lookup))
}

func (e sumExpr) CollectQueries(qs *QuerySet) {
	e.left.CollectQueries(qs)
	e.right.CollectQueries(qs)
}

func (e sumExpr) String() string {
	return fmt.Sprintf("(%s + %s)", e.left, e.right)
}

type productExpr struct {
	left, right Expression
}

func (e productExpr) Degree() int {
	return e.left.Degree() + e.right.Degree()
}

func (e productExpr) Eval(lookup EvalLookup) Value {
	return e.left.Eval(lookup).Mul(e.right.Eval(lookup))
}

func (e productExpr) CollectQueries(qs *QuerySet) {
	e.left.CollectQueries(qs)
	e.right.CollectQueries(qs)
}

func (e productExpr) String() string {
	return fmt.Sprintf("%s * %s", e.left, e.right)
}

type negExpr struct {
	inner Expression
}

func (e negExpr) Degree() int { return e.inner.Degree() }

func (e negExpr) Eval(lookup EvalLookup) Value {
	return e.inner.Eval(lookup).Neg()
}

func (e negExpr) CollectQueries(qs *QuerySet) {
	e.inner.CollectQueries(qs)
}

func (e negExpr) String() string { return fmt.Sprintf("-%s", e.inner) }

type scaledExpr struct {
	inner Expression
	scale field.Element
}

func (e scaledExpr) Degree() int { return e.inner.Degree() }

func (e scaledExpr) Eval(lookup EvalLookup) Value {
	return e.inner.Eval(lookup).Mul(Known(e.scale))
}

func (e scaledExpr) CollectQueries(qs *QuerySet) {
	e.inner.CollectQueries(qs)
}

func (e scaledExpr) String() string {
	return fmt.Sprintf("%d * %s", e.scale.Value(), e.inner)
}

// Constant lifts a field element into an Expression.
func Constant(v field.Element) Expression {
	return constExpr{value: v}
}

// Sum returns left + right.
func Sum(left, right Expression) Expression {
	return sumExpr{left: left, right: right}
}

// Sub returns left - right.
func Sub(left, right Expression) Expression {
	return sumExpr{left: left, right: negExpr{inner: right}}
}

// Product returns left * right.
func Product(left, right Expression) Expression {
	return productExpr{left: left, right: right}
}

// Neg returns -inner.
func Neg(inner Expression) Expression {
	return negExpr{inner: inner}
}

// Scale returns scale * inner without raising the degree.
func Scale(inner Expression, scale field.Element) Expression {
	return scaledExpr{inner: inner, scale: scale}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
