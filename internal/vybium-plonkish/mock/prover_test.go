package mock

import (
	"testing"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
	"github.com/vybium/vybium-plonkish/internal/vybium-plonkish/circuit"
	"github.com/vybium/vybium-plonkish/internal/vybium-plonkish/layout"
)

// fiboCircuit is a single-advice-column Fibonacci chain: the gate reads
// three consecutive rows, the two seeds come from the instance column and
// the last entry is bound back to it.
type fiboCircuit struct {
	nrows int

	advice   circuit.Column
	selector circuit.Selector
	instance circuit.Column
}

func (fc *fiboCircuit) Configure(cs *circuit.ConstraintSystem) error {
	var err error
	if fc.advice, err = cs.AdviceColumn(); err != nil {
		return err
	}
	if fc.instance, err = cs.InstanceColumn(); err != nil {
		return err
	}
	if fc.selector, err = cs.Selector(); err != nil {
		return err
	}
	if err := cs.EnableEquality(fc.advice); err != nil {
		return err
	}
	if err := cs.EnableEquality(fc.instance); err != nil {
		return err
	}

	return cs.CreateGate("add", func(v *circuit.VirtualCells) []circuit.Expression {
		s := v.QuerySelector(fc.selector)
		a := v.QueryAdvice(fc.advice, circuit.RotCur)
		b := v.QueryAdvice(fc.advice, circuit.RotNext)
		c := v.QueryAdvice(fc.advice, circuit.Rotation(2))
		return []circuit.Expression{
			circuit.Product(s, circuit.Sub(circuit.Sum(a, b), c)),
		}
	})
}

func (fc *fiboCircuit) Synthesize(ly *layout.Layouter) error {
	var last layout.AssignedCell

	err := ly.AssignRegion("fibonacci table", func(r *layout.Region) error {
		aCell, err := r.AssignAdviceFromInstance(fc.instance, 0, fc.advice, 0)
		if err != nil {
			return err
		}
		bCell, err := r.AssignAdviceFromInstance(fc.instance, 1, fc.advice, 1)
		if err != nil {
			return err
		}

		for row := 0; row < fc.nrows-2; row++ {
			if err := r.EnableSelector(fc.selector, row); err != nil {
				return err
			}
			cCell, err := r.AssignAdvice(fc.advice, row+2, aCell.Value.Add(bCell.Value))
			if err != nil {
				return err
			}
			aCell = bCell
			bCell = cCell
		}

		last = bCell
		return nil
	})
	if err != nil {
		return err
	}

	return ly.ConstrainInstance(last.Cell, fc.instance, 2)
}

func fiboInstance(last uint64) [][]field.Element {
	return [][]field.Element{{field.New(1), field.New(1), field.New(last)}}
}

func TestMockProverFibonacci(t *testing.T) {
	cfg := DefaultConfig()

	t.Run("ConsistentWitnessSatisfied", func(t *testing.T) {
		// F[10] = 55 for seeds F[1] = F[2] = 1.
		prover, err := Run(cfg, &fiboCircuit{nrows: 10}, fiboInstance(55))
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		if violations := prover.Verify(); len(violations) != 0 {
			t.Errorf("expected satisfied circuit, got %d violations: %v", len(violations), violations)
		}
		if err := prover.Satisfied(); err != nil {
			t.Errorf("Satisfied returned %v", err)
		}
	})

	t.Run("TamperedOutputSingleCopyViolation", func(t *testing.T) {
		prover, err := Run(cfg, &fiboCircuit{nrows: 10}, fiboInstance(56))
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}

		violations := prover.Verify()
		if len(violations) != 1 {
			t.Fatalf("expected exactly one violation, got %d: %v", len(violations), violations)
		}
		mismatch, ok := violations[0].(CopyMismatch)
		if !ok {
			t.Fatalf("expected a CopyMismatch, got %T", violations[0])
		}

		// The mismatch must involve the instance binding at row 2 and no
		// gate may be reported: the witness itself is internally consistent.
		bound := mismatch.A.Column.Kind == circuit.Instance && mismatch.A.Row == 2 ||
			mismatch.B.Column.Kind == circuit.Instance && mismatch.B.Row == 2
		if !bound {
			t.Errorf("mismatch does not name instance row 2: %s", mismatch)
		}
	})

	t.Run("BrokenWitnessNamesGateAndRow", func(t *testing.T) {
		prover, err := Run(cfg, &brokenRowCircuit{nrows: 10, breakRow: 5}, fiboInstance(55))
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}

		// The corrupted entry at row 5 sits in the windows starting at rows
		// 3, 4 and 5; the chain continues from the true value, so the bound
		// output still matches and no copy mismatch is reported.
		violations := prover.Verify()
		wantRows := []int{3, 4, 5}
		if len(violations) != len(wantRows) {
			t.Fatalf("got %d violations, want %d: %v", len(violations), len(wantRows), violations)
		}
		for i, v := range violations {
			g, ok := v.(UnsatisfiedGate)
			if !ok {
				t.Fatalf("violation %d is %T, want UnsatisfiedGate", i, v)
			}
			if g.Row != wantRows[i] || g.Gate != "add" {
				t.Errorf("violation %d = %s, want gate \"add\" at row %d", i, g, wantRows[i])
			}
		}
	})

	t.Run("ShapeOnlyRunIsVacuous", func(t *testing.T) {
		prover, err := Run(cfg, &fiboCircuit{nrows: 10}, nil)
		if err != nil {
			t.Fatalf("shape-only Run failed: %v", err)
		}
		if violations := prover.Verify(); len(violations) != 0 {
			t.Errorf("shape-only run reported %d violations: %v", len(violations), violations)
		}
	})

	t.Run("InstanceBindingBeyondVector", func(t *testing.T) {
		short := [][]field.Element{{field.New(1), field.New(1)}}
		_, err := Run(cfg, &fiboCircuit{nrows: 10}, short)
		if circuit.CodeOf(err) != circuit.ErrInvalidInstance {
			t.Errorf("got %v, want ErrInvalidInstance", err)
		}
	})

	t.Run("TableTooSmall", func(t *testing.T) {
		_, err := Run(Config{K: 3, MaxDegree: circuit.DefaultMaxDegree},
			&fiboCircuit{nrows: 20}, fiboInstance(6765))
		if circuit.CodeOf(err) != circuit.ErrRegionOverflow {
			t.Errorf("got %v, want ErrRegionOverflow", err)
		}
	})
}

// brokenRowCircuit is fiboCircuit with one stored table entry corrupted.
// The chain continues from the true value, so only the windows covering
// the corrupted cell fail.
type brokenRowCircuit struct {
	nrows    int
	breakRow int

	inner fiboCircuit
}

func (bc *brokenRowCircuit) Configure(cs *circuit.ConstraintSystem) error {
	bc.inner.nrows = bc.nrows
	return bc.inner.Configure(cs)
}

func (bc *brokenRowCircuit) Synthesize(ly *layout.Layouter) error {
	fc := &bc.inner
	var last layout.AssignedCell

	err := ly.AssignRegion("fibonacci table", func(r *layout.Region) error {
		aCell, err := r.AssignAdviceFromInstance(fc.instance, 0, fc.advice, 0)
		if err != nil {
			return err
		}
		bCell, err := r.AssignAdviceFromInstance(fc.instance, 1, fc.advice, 1)
		if err != nil {
			return err
		}

		for row := 0; row < fc.nrows-2; row++ {
			if err := r.EnableSelector(fc.selector, row); err != nil {
				return err
			}
			trueVal := aCell.Value.Add(bCell.Value)
			stored := trueVal
			if row+2 == bc.breakRow {
				stored = trueVal.Add(circuit.KnownUint64(1))
			}
			cCell, err := r.AssignAdvice(fc.advice, row+2, stored)
			if err != nil {
				return err
			}
			cCell.Value = trueVal
			aCell = bCell
			bCell = cCell
		}

		last = bCell
		return nil
	})
	if err != nil {
		return err
	}

	return ly.ConstrainInstance(last.Cell, fc.instance, 2)
}

// saturatedCircuit enables a failing gate on every row of the table, so
// the row scan spans several parallel chunks and every chunk contributes
// violations.
type saturatedCircuit struct {
	rows int

	advice   circuit.Column
	selector circuit.Selector
}

func (sc *saturatedCircuit) Configure(cs *circuit.ConstraintSystem) error {
	var err error
	if sc.advice, err = cs.AdviceColumn(); err != nil {
		return err
	}
	if sc.selector, err = cs.Selector(); err != nil {
		return err
	}
	return cs.CreateGate("nonzero", func(v *circuit.VirtualCells) []circuit.Expression {
		s := v.QuerySelector(sc.selector)
		a := v.QueryAdvice(sc.advice, circuit.RotCur)
		return []circuit.Expression{circuit.Product(s, a)}
	})
}

func (sc *saturatedCircuit) Synthesize(ly *layout.Layouter) error {
	return ly.AssignRegion("all rows", func(r *layout.Region) error {
		for row := 0; row < sc.rows; row++ {
			if err := r.EnableSelector(sc.selector, row); err != nil {
				return err
			}
			if _, err := r.AssignAdvice(sc.advice, row, circuit.KnownUint64(1)); err != nil {
				return err
			}
		}
		return nil
	})
}

func TestViolationOrderAcrossChunks(t *testing.T) {
	// K=10 gives 1024 rows, four 256-row chunks. The merged result must
	// read exactly like a serial row-major scan.
	const k = 10
	rows := 1 << k

	prover, err := Run(Config{K: k, MaxDegree: circuit.DefaultMaxDegree},
		&saturatedCircuit{rows: rows}, nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	violations := prover.Verify()
	if len(violations) != rows {
		t.Fatalf("got %d violations, want one per row (%d)", len(violations), rows)
	}
	for i, v := range violations {
		g, ok := v.(UnsatisfiedGate)
		if !ok {
			t.Fatalf("violation %d is %T, want UnsatisfiedGate", i, v)
		}
		if g.Row != i || g.Gate != "nonzero" {
			t.Fatalf("violation %d = %s, want gate \"nonzero\" at row %d", i, g, i)
		}
	}
}

func TestDegreeRejectedBeforeCheck(t *testing.T) {
	_, err := Run(Config{K: 4, MaxDegree: 2}, &cubicCircuit{}, nil)
	if circuit.CodeOf(err) != circuit.ErrDegreeExceeded {
		t.Errorf("got %v, want ErrDegreeExceeded at configure time", err)
	}
}

// cubicCircuit declares a selector-gated cubic gate of degree 4.
type cubicCircuit struct{}

func (cc *cubicCircuit) Configure(cs *circuit.ConstraintSystem) error {
	col, err := cs.AdviceColumn()
	if err != nil {
		return err
	}
	sel, err := cs.Selector()
	if err != nil {
		return err
	}
	return cs.CreateGate("cubic", func(v *circuit.VirtualCells) []circuit.Expression {
		s := v.QuerySelector(sel)
		a := v.QueryAdvice(col, circuit.RotCur)
		return []circuit.Expression{
			circuit.Product(s, circuit.Product(a, circuit.Product(a, a))),
		}
	})
}

func (cc *cubicCircuit) Synthesize(ly *layout.Layouter) error { return nil }
