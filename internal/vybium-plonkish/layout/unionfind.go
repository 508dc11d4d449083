package layout

import (
	"github.com/vybium/vybium-plonkish/internal/vybium-plonkish/circuit"
)

// cellSet is an index-based union-find over the cells that have appeared
// in a copy constraint. Cells are interned into a growable id array the
// first time they are seen, so find/union work on plain ints rather than a
// reference graph.
type cellSet struct {
	ids    map[circuit.Cell]int
	cells  []circuit.Cell
	parent []int
	rank   []int
}

func newCellSet() *cellSet {
	return &cellSet{ids: make(map[circuit.Cell]int)}
}

// intern returns the id for a cell, allocating one on first sight.
func (s *cellSet) intern(cell circuit.Cell) int {
	if id, ok := s.ids[cell]; ok {
		return id
	}
	id := len(s.cells)
	s.ids[cell] = id
	s.cells = append(s.cells, cell)
	s.parent = append(s.parent, id)
	s.rank = append(s.rank, 0)
	return id
}

// find returns the class representative with path compression.
func (s *cellSet) find(id int) int {
	for s.parent[id] != id {
		s.parent[id] = s.parent[s.parent[id]]
		id = s.parent[id]
	}
	return id
}

// union merges the classes of two cells, by rank.
func (s *cellSet) union(x, y circuit.Cell) {
	rx := s.find(s.intern(x))
	ry := s.find(s.intern(y))
	if rx == ry {
		return
	}
	if s.rank[rx] < s.rank[ry] {
		rx, ry = ry, rx
	}
	s.parent[ry] = rx
	if s.rank[rx] == s.rank[ry] {
		s.rank[rx]++
	}
}

// classes lists the equivalence classes. Members appear in interning order
// and classes in order of their first-interned member, so the output is
// deterministic across runs.
func (s *cellSet) classes() [][]circuit.Cell {
	members := make(map[int][]int)
	order := make([]int, 0)
	for id := range s.cells {
		root := s.find(id)
		if _, seen := members[root]; !seen {
			order = append(order, root)
		}
		members[root] = append(members[root], id)
	}

	out := make([][]circuit.Cell, 0, len(order))
	for _, root := range order {
		class := make([]circuit.Cell, 0, len(members[root]))
		for _, id := range members[root] {
			class = append(class, s.cells[id])
		}
		out = append(out, class)
	}
	return out
}
