package mock

import (
	"encoding/binary"
	"hash"

	"golang.org/x/crypto/sha3"

	"github.com/vybium/vybium-plonkish/internal/vybium-plonkish/circuit"
)

// Fingerprint returns a SHA3-256 digest over a canonical serialization of
// the frozen constraint system and witness table. Two runs of the same
// circuit with the same inputs produce the same fingerprint; this is the
// observable form of layout determinism, and what a proving backend would
// bind into its transcript.
func (p *MockProver) Fingerprint() [32]byte {
	h := sha3.New256()

	p.writeSystem(h)
	p.writeTable(h)

	var out [32]byte
	copy(out[:], h.Sum(nil))
	return out
}

func (p *MockProver) writeSystem(h hash.Hash) {
	writeUint(h, uint64(p.cs.MaxDegree()))
	writeUint(h, uint64(p.cs.NumAdviceColumns()))
	writeUint(h, uint64(p.cs.NumInstanceColumns()))
	writeUint(h, uint64(p.cs.NumFixedColumns()))
	writeUint(h, uint64(p.cs.NumSelectors()))

	// Equality capabilities, in fixed column order per kind.
	kinds := []circuit.ColumnKind{circuit.Advice, circuit.Instance, circuit.Fixed}
	counts := []int{p.cs.NumAdviceColumns(), p.cs.NumInstanceColumns(), p.cs.NumFixedColumns()}
	for ki, kind := range kinds {
		for i := 0; i < counts[ki]; i++ {
			if p.cs.EqualityEnabled(circuit.Column{Kind: kind, Index: i}) {
				writeUint(h, uint64(kind))
				writeUint(h, uint64(i))
			}
		}
	}

	for _, gate := range p.cs.Gates() {
		h.Write([]byte(gate.Name))
		writeUint(h, uint64(len(gate.Polys)))
		for _, poly := range gate.Polys {
			h.Write([]byte(poly.String()))
		}
	}
}

func (p *MockProver) writeTable(h hash.Hash) {
	rows := p.asg.Rows()
	writeUint(h, uint64(p.asg.K()))

	for i := 0; i < p.cs.NumAdviceColumns(); i++ {
		writeColumn(h, p, circuit.Column{Kind: circuit.Advice, Index: i}, rows)
	}
	for i := 0; i < p.cs.NumFixedColumns(); i++ {
		writeColumn(h, p, circuit.Column{Kind: circuit.Fixed, Index: i}, rows)
	}

	for i := 0; i < p.cs.NumSelectors(); i++ {
		sel := circuit.Selector{Index: i}
		for row := 0; row < rows; row++ {
			if p.asg.SelectorEnabled(sel, row) {
				writeUint(h, uint64(row))
			}
		}
		h.Write([]byte{0xff})
	}

	for _, class := range p.asg.CopyClasses() {
		for _, cell := range class {
			writeUint(h, uint64(cell.Column.Kind))
			writeUint(h, uint64(cell.Column.Index))
			writeUint(h, uint64(cell.Row))
		}
		h.Write([]byte{0xfe})
	}
}

func writeColumn(h hash.Hash, p *MockProver, col circuit.Column, rows int) {
	for row := 0; row < rows; row++ {
		val, known := p.asg.CellValue(circuit.Cell{Column: col, Row: row}).Get()
		if !known {
			h.Write([]byte{0})
			continue
		}
		h.Write([]byte{1})
		writeUint(h, val.Value())
	}
}

func writeUint(h hash.Hash, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	h.Write(buf[:])
}
