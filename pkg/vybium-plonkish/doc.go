// Package vybiumplonkish provides a minimal PLONKish arithmetization and
// constraint-satisfaction engine.
//
// A circuit declares columns (advice, instance, fixed), selectors and
// polynomial gates over a table of field values, assigns its witness into
// rows through regions, links cells with copy constraints, binds cells to
// public inputs, and is then checked for satisfiability by a mock prover.
// Proof generation itself (polynomial commitment, Fiat-Shamir, FRI or
// pairing backends) is the job of an external proving backend consuming
// the same frozen structures.
//
// # Features
//
//   - Constraint system builder with advice/instance/fixed columns,
//     selectors and named polynomial gates with degree checking
//   - Region-based witness assignment with deterministic row placement
//   - Copy constraints resolved through an index-based union-find
//   - Public-input binding surfaced as ordinary copy constraints
//   - Mock prover enumerating every violated gate and copy constraint
//   - Shape-only synthesis with Unknown values for layout analysis
//
// # Quick Start
//
// Running a circuit against the mock prover:
//
//	cfg := vybiumplonkish.DefaultConfig()
//	prover, err := vybiumplonkish.Run(cfg, circuit, publicInputs)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if err := prover.Satisfied(); err != nil {
//		log.Fatal(err)
//	}
//
// Enumerating individual violations instead:
//
//	for _, v := range prover.Verify() {
//		fmt.Println(v)
//	}
//
// # Defining a circuit
//
// A circuit implements Configure and Synthesize:
//
//	func (c *myCircuit) Configure(cs *vybiumplonkish.ConstraintSystem) error {
//		col, _ := cs.AdviceColumn()
//		sel, _ := cs.Selector()
//		_ = cs.EnableEquality(col)
//		return cs.CreateGate("add", func(v *vybiumplonkish.VirtualCells) []vybiumplonkish.Expression {
//			s := v.QuerySelector(sel)
//			a := v.QueryAdvice(col, vybiumplonkish.RotCur)
//			b := v.QueryAdvice(col, vybiumplonkish.RotNext)
//			c := v.QueryAdvice(col, vybiumplonkish.Rotation(2))
//			return []vybiumplonkish.Expression{
//				vybiumplonkish.Product(s, vybiumplonkish.Sub(vybiumplonkish.Sum(a, b), c)),
//			}
//		})
//	}
//
// # Architecture
//
// - pkg/vybium-plonkish/: Public API (this package)
// - internal/vybium-plonkish/circuit/: columns, expressions, builder
// - internal/vybium-plonkish/layout/: regions, table, copy constraints
// - internal/vybium-plonkish/mock/: satisfiability checker
//
// The public API re-exports the stable types; implementation details in
// internal/ can be refactored without breaking it.
//
// # References
//
// - PLONK Paper: https://eprint.iacr.org/2019/953
//
// # License
//
// See LICENSE file in the repository root.
package vybiumplonkish
