// plonkish-viz renders the assigned witness table of the two-column
// Fibonacci circuit as an HTML heatmap: one cell per (column, row), colored
// by the assigned field value. Unassigned cells are left out.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"

	plonkish "github.com/vybium/vybium-plonkish/pkg/vybium-plonkish"
)

// vizCircuit is the two-column Fibonacci packing from examples/03, small
// enough to make a readable table rendering.
type vizCircuit struct {
	nrows int

	a, b     plonkish.Column
	selector plonkish.Selector
	instance plonkish.Column
}

func (vc *vizCircuit) Configure(cs *plonkish.ConstraintSystem) error {
	var err error
	if vc.a, err = cs.AdviceColumn(); err != nil {
		return err
	}
	if vc.b, err = cs.AdviceColumn(); err != nil {
		return err
	}
	if vc.instance, err = cs.InstanceColumn(); err != nil {
		return err
	}
	if vc.selector, err = cs.Selector(); err != nil {
		return err
	}

	for _, col := range []plonkish.Column{vc.a, vc.b, vc.instance} {
		if err := cs.EnableEquality(col); err != nil {
			return err
		}
	}

	return cs.CreateGate("add", func(v *plonkish.VirtualCells) []plonkish.Expression {
		s := v.QuerySelector(vc.selector)
		a := v.QueryAdvice(vc.a, plonkish.RotCur)
		b := v.QueryAdvice(vc.b, plonkish.RotCur)
		c := v.QueryAdvice(vc.a, plonkish.RotNext)
		d := v.QueryAdvice(vc.b, plonkish.RotNext)
		return []plonkish.Expression{
			plonkish.Product(s, plonkish.Sub(plonkish.Sum(a, b), c)),
			plonkish.Product(s, plonkish.Sub(plonkish.Sum(b, c), d)),
		}
	})
}

func (vc *vizCircuit) Synthesize(ly *plonkish.Layouter) error {
	var last plonkish.AssignedCell

	err := ly.AssignRegion("fibonacci table", func(r *plonkish.Region) error {
		aCell, err := r.AssignAdviceFromInstance(vc.instance, 0, vc.a, 0)
		if err != nil {
			return err
		}
		bCell, err := r.AssignAdviceFromInstance(vc.instance, 1, vc.b, 0)
		if err != nil {
			return err
		}

		for row := 0; row < vc.nrows; row++ {
			if row < vc.nrows-1 {
				if err := r.EnableSelector(vc.selector, row); err != nil {
					return err
				}
			}
			if row == 0 {
				continue
			}
			aCell, err = r.AssignAdvice(vc.a, row, aCell.Value.Add(bCell.Value))
			if err != nil {
				return err
			}
			bCell, err = r.AssignAdvice(vc.b, row, aCell.Value.Add(bCell.Value))
			if err != nil {
				return err
			}
		}

		last = bCell
		return nil
	})
	if err != nil {
		return err
	}

	return ly.ConstrainInstance(last.Cell, vc.instance, 2)
}

func main() {
	outPath := flag.String("out", "plonkish_table.html", "output HTML file")
	nrows := flag.Int("nrows", 5, "number of recurrence rows to render")
	flag.Parse()

	n := *nrows
	circ := &vizCircuit{nrows: n}

	// Public inputs for the rendered run: seeds 1, 1 and whichever entry
	// the chosen length lands on.
	seq := fibonacci(2 * n)
	publicInput := []field.Element{field.New(1), field.New(1), field.New(seq[2*n-1])}

	prover, err := plonkish.Run(plonkish.DefaultConfig(), circ, [][]field.Element{publicInput})
	if err != nil {
		log.Fatalf("Run failed: %v", err)
	}
	if err := prover.Satisfied(); err != nil {
		log.Fatalf("Circuit unsatisfied: %v", err)
	}

	page := components.NewPage().SetPageTitle("PLONKish Witness Table")
	page.AddCharts(tableHeatMap(prover, n))

	f, err := os.Create(*outPath)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", *outPath, err)
	}
	defer f.Close()

	if err := page.Render(f); err != nil {
		log.Fatalf("Failed to render chart: %v", err)
	}
	fmt.Printf("✓ Wrote %s\n", *outPath)
}

// tableHeatMap plots assigned cells as (column, row, value) heatmap points.
func tableHeatMap(prover *plonkish.MockProver, nrows int) *charts.HeatMap {
	cs := prover.ConstraintSystem()
	asg := prover.Assignment()

	columns := make([]string, 0, cs.NumAdviceColumns())
	data := make([]opts.HeatMapData, 0, nrows*cs.NumAdviceColumns())
	maxVal := uint64(1)

	for i := 0; i < cs.NumAdviceColumns(); i++ {
		col := plonkish.Column{Kind: plonkish.Advice, Index: i}
		columns = append(columns, col.String())

		for row := 0; row < nrows; row++ {
			val, known := asg.CellValue(plonkish.Cell{Column: col, Row: row}).Get()
			if !known {
				continue
			}
			data = append(data, opts.HeatMapData{Value: [3]interface{}{i, row, val.Value()}})
			if val.Value() > maxVal {
				maxVal = val.Value()
			}
		}
	}

	rows := make([]string, nrows)
	for r := range rows {
		rows[r] = fmt.Sprintf("row %d", r)
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Assigned witness table",
			Subtitle: "advice columns × absolute rows",
		}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: columns}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: rows}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxVal),
			InRange:    &opts.VisualMapInRange{Color: []string{"#0ea5e9", "#22c55e", "#ef4444"}},
		}),
	)
	hm.AddSeries("values", data)
	return hm
}

// fibonacci returns the first n entries, 1-indexed F[1] = F[2] = 1.
func fibonacci(n int) []uint64 {
	seq := make([]uint64, n)
	for i := range seq {
		if i < 2 {
			seq[i] = 1
			continue
		}
		seq[i] = seq[i-1] + seq[i-2]
	}
	return seq
}
