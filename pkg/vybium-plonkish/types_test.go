package vybiumplonkish

import (
	"testing"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
)

// squareCircuit constrains an advice cell to be the square of the first
// public input, using only the re-exported API surface.
type squareCircuit struct {
	x        Column
	instance Column
	selector Selector
}

func (sc *squareCircuit) Configure(cs *ConstraintSystem) error {
	var err error
	if sc.x, err = cs.AdviceColumn(); err != nil {
		return err
	}
	if sc.instance, err = cs.InstanceColumn(); err != nil {
		return err
	}
	if sc.selector, err = cs.Selector(); err != nil {
		return err
	}
	if err := cs.EnableEquality(sc.x); err != nil {
		return err
	}
	if err := cs.EnableEquality(sc.instance); err != nil {
		return err
	}
	return cs.CreateGate("square", func(v *VirtualCells) []Expression {
		s := v.QuerySelector(sc.selector)
		x := v.QueryAdvice(sc.x, RotCur)
		y := v.QueryAdvice(sc.x, RotNext)
		return []Expression{Product(s, Sub(Product(x, x), y))}
	})
}

func (sc *squareCircuit) Synthesize(ly *Layouter) error {
	var out AssignedCell
	err := ly.AssignRegion("square", func(r *Region) error {
		xCell, err := r.AssignAdviceFromInstance(sc.instance, 0, sc.x, 0)
		if err != nil {
			return err
		}
		if err := r.EnableSelector(sc.selector, 0); err != nil {
			return err
		}
		out, err = r.AssignAdvice(sc.x, 1, xCell.Value.Mul(xCell.Value))
		return err
	})
	if err != nil {
		return err
	}
	return ly.ConstrainInstance(out.Cell, sc.instance, 1)
}

func TestPublicAPI(t *testing.T) {
	t.Run("SatisfiedCircuit", func(t *testing.T) {
		instance := [][]FieldElement{{field.New(7), field.New(49)}}
		prover, err := Run(DefaultConfig(), &squareCircuit{}, instance)
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		if err := prover.Satisfied(); err != nil {
			t.Errorf("Satisfied returned %v", err)
		}
	})

	t.Run("WrongClaimReported", func(t *testing.T) {
		instance := [][]FieldElement{{field.New(7), field.New(50)}}
		prover, err := Run(DefaultConfig(), &squareCircuit{}, instance)
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		if len(prover.Verify()) == 0 {
			t.Error("expected violations for a wrong public output")
		}
	})
}

func TestValueConstructors(t *testing.T) {
	if !Known(field.New(3)).IsKnown() {
		t.Error("Known value reported as unknown")
	}
	if Unknown().IsKnown() {
		t.Error("Unknown value reported as known")
	}
	if got := KnownUint64(3).Add(KnownUint64(4)); !got.Equal(KnownUint64(7)) {
		t.Errorf("3 + 4 = %s, want 7", got)
	}
}

func TestColumnKinds(t *testing.T) {
	for _, kind := range []ColumnKind{Advice, Instance, Fixed} {
		if kind.String() == "" {
			t.Errorf("kind %d has empty name", kind)
		}
	}
}
