package mock

import (
	"fmt"
	"sync"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
	"github.com/vybium/vybium-plonkish/internal/vybium-plonkish/circuit"
	"github.com/vybium/vybium-plonkish/internal/vybium-plonkish/layout"
)

// rowChunkSize is the number of rows each goroutine scans during Verify.
const rowChunkSize = 256

// Circuit is the caller-facing circuit contract: declare the constraint
// system shape once, then assign the witness through the layouter. Both
// methods must be replayable; placement may not depend on witness values.
type Circuit interface {
	// Configure declares columns, selectors and gates.
	Configure(cs *circuit.ConstraintSystem) error

	// Synthesize assigns regions into the table.
	Synthesize(ly *layout.Layouter) error
}

// Config carries the engine parameters for a mock-prover run.
type Config struct {
	// K is the circuit size exponent; the table has 2^K rows.
	K int

	// MaxDegree is the maximum supported gate polynomial degree.
	MaxDegree int
}

// DefaultConfig returns a configuration suitable for the example circuits.
func DefaultConfig() Config {
	return Config{K: 4, MaxDegree: circuit.DefaultMaxDegree}
}

// Validate checks the configuration parameters.
func (c Config) Validate() error {
	if c.K <= 0 || c.K > 30 {
		return circuit.Errorf(circuit.ErrInvalidConfig, "size exponent K=%d out of range (0, 30]", c.K)
	}
	if c.MaxDegree <= 0 {
		return circuit.Errorf(circuit.ErrInvalidConfig, "maximum gate degree must be positive, got %d", c.MaxDegree)
	}
	return nil
}

// MockProver holds the frozen constraint system, witness table and public
// inputs of one circuit run, ready for satisfiability checking.
type MockProver struct {
	cfg Config
	cs  *circuit.ConstraintSystem
	asg *layout.Assignment

	// instance holds one public-input vector per instance column; nil for
	// a shape-only run.
	instance [][]field.Element

	regions []layout.RegionInfo
}

// Run configures and synthesizes the circuit against the given public
// inputs and returns a prover over the frozen structures. Build-time and
// layout-time errors abort the run; satisfiability findings do not appear
// here, they come from Verify.
//
// Passing nil instance vectors performs a shape-only run: values copied
// from instance columns come out Unknown and instance bindings are checked
// vacuously.
func Run(cfg Config, circ Circuit, instance [][]field.Element) (*MockProver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cs := circuit.NewConstraintSystem(cfg.MaxDegree)
	if err := circ.Configure(cs); err != nil {
		return nil, fmt.Errorf("configure failed: %w", err)
	}
	cs.Freeze()

	asg, err := layout.NewAssignment(cs, cfg.K)
	if err != nil {
		return nil, err
	}

	ly, err := layout.NewLayouter(cs, asg, instance)
	if err != nil {
		return nil, err
	}
	if err := circ.Synthesize(ly); err != nil {
		return nil, fmt.Errorf("synthesize failed: %w", err)
	}
	asg.Freeze()

	p := &MockProver{cfg: cfg, cs: cs, asg: asg, instance: instance, regions: ly.Regions()}
	if err := p.validateInstanceReferences(); err != nil {
		return nil, err
	}
	return p, nil
}

// validateInstanceReferences checks that every instance cell bound through
// a copy constraint lies within the supplied public-input vectors.
func (p *MockProver) validateInstanceReferences() error {
	if p.instance == nil {
		return nil
	}
	for _, class := range p.asg.CopyClasses() {
		for _, cell := range class {
			if cell.Column.Kind != circuit.Instance {
				continue
			}
			vec := p.instance[cell.Column.Index]
			if cell.Row < 0 || cell.Row >= len(vec) {
				return circuit.Errorf(circuit.ErrInvalidInstance,
					"cell %s bound beyond public-input vector of length %d", cell, len(vec))
			}
		}
	}
	return nil
}

// ConstraintSystem returns the frozen constraint system.
func (p *MockProver) ConstraintSystem() *circuit.ConstraintSystem { return p.cs }

// Assignment returns the frozen witness table.
func (p *MockProver) Assignment() *layout.Assignment { return p.asg }

// Regions returns the placed regions in synthesis order.
func (p *MockProver) Regions() []layout.RegionInfo { return p.regions }

// cellValue resolves a cell for checking: advice and fixed cells from the
// table, instance cells from the public-input vectors.
func (p *MockProver) cellValue(cell circuit.Cell) circuit.Value {
	if cell.Column.Kind == circuit.Instance {
		if p.instance == nil {
			return circuit.Unknown()
		}
		vec := p.instance[cell.Column.Index]
		if cell.Row < 0 || cell.Row >= len(vec) {
			return circuit.Unknown()
		}
		return circuit.Known(vec[cell.Row])
	}
	return p.asg.CellValue(cell)
}

// Verify evaluates every gate at every row and every copy-constraint
// class, returning all violations found. The order is stable: row-major
// over gates in declaration order, then copy mismatches in class order. An
// empty result means the circuit is satisfied.
func (p *MockProver) Verify() []Violation {
	violations := p.verifyGates()
	return append(violations, p.verifyCopies()...)
}

// Satisfied returns nil when Verify finds nothing, otherwise an error
// listing every violation.
func (p *MockProver) Satisfied() error {
	violations := p.Verify()
	if len(violations) == 0 {
		return nil
	}
	msg := fmt.Sprintf("%d constraint violation(s):", len(violations))
	for _, v := range violations {
		msg += "\n  " + v.String()
	}
	return circuit.Errorf(circuit.ErrUnknown, "%s", msg)
}

// verifyGates scans all rows. Rows are partitioned into contiguous chunks
// checked in parallel; per-chunk findings are concatenated in chunk order,
// so the reported order is identical to a serial scan.
func (p *MockProver) verifyGates() []Violation {
	rows := p.asg.Rows()
	numChunks := (rows + rowChunkSize - 1) / rowChunkSize
	chunkFindings := make([][]Violation, numChunks)

	var wg sync.WaitGroup
	for chunk := 0; chunk < numChunks; chunk++ {
		start := chunk * rowChunkSize
		end := start + rowChunkSize
		if end > rows {
			end = rows
		}

		wg.Add(1)
		go func(chunk, start, end int) {
			defer wg.Done()
			chunkFindings[chunk] = p.verifyGateRows(start, end)
		}(chunk, start, end)
	}
	wg.Wait()

	var out []Violation
	for _, findings := range chunkFindings {
		out = append(out, findings...)
	}
	return out
}

// verifyGateRows checks every gate on rows [start, end).
func (p *MockProver) verifyGateRows(start, end int) []Violation {
	rows := p.asg.Rows()
	gates := p.cs.Gates()

	var out []Violation
	for row := start; row < end; row++ {
		for _, gate := range gates {
			// A rotation that would read before row 0 or past the last
			// row disables the gate at this row rather than erroring.
			if row+int(gate.Queries.MinRot) < 0 || row+int(gate.Queries.MaxRot) >= rows {
				continue
			}

			lookup := circuit.EvalLookup{
				Query: func(col circuit.Column, rot circuit.Rotation) circuit.Value {
					return p.cellValue(circuit.Cell{Column: col, Row: row + int(rot)})
				},
				QuerySelector: func(sel circuit.Selector) bool {
					return p.asg.SelectorEnabled(sel, row)
				},
			}

			for i, poly := range gate.Polys {
				result := poly.Eval(lookup)
				got, known := result.Get()
				if !known {
					// An Unknown operand leaves the row indeterminate,
					// which matches a shape-only pass. Not a failure.
					continue
				}
				if !got.IsZero() {
					out = append(out, UnsatisfiedGate{
						Gate:      gate.Name,
						PolyIndex: i,
						Row:       row,
						Got:       got,
					})
				}
			}
		}
	}
	return out
}

// verifyCopies checks that every copy-constraint class with two or more
// known members resolves to a single value. Classes holding only Unknown
// cells are vacuously satisfied.
func (p *MockProver) verifyCopies() []Violation {
	var out []Violation
	for _, class := range p.asg.CopyClasses() {
		var (
			refCell  circuit.Cell
			refValue field.Element
			haveRef  bool
		)
		for _, cell := range class {
			val, known := p.cellValue(cell).Get()
			if !known {
				continue
			}
			if !haveRef {
				refCell, refValue, haveRef = cell, val, true
				continue
			}
			if !refValue.Equal(val) {
				out = append(out, CopyMismatch{
					A:    refCell,
					B:    cell,
					Left: refValue, Right: val,
				})
			}
		}
	}
	return out
}
