package model

// LiveSet holds every currently-alive cell. It is the entire simulation state
// and never contains the same coordinate twice.
type LiveSet struct {
	cells map[Cell]struct{}
}

// NewLiveSet creates a set seeded with the given cells, dropping duplicates
func NewLiveSet(cells ...Cell) LiveSet {
	s := LiveSet{cells: make(map[Cell]struct{}, len(cells))}
	for _, c := range cells {
		s.cells[c] = struct{}{}
	}
	return s
}

func newLiveSetWithCapacity(n int) LiveSet {
	return LiveSet{cells: make(map[Cell]struct{}, n)}
}

// Add inserts c and reports whether it was not already alive
func (s *LiveSet) Add(c Cell) bool {
	if s.cells == nil {
		s.cells = make(map[Cell]struct{})
	}
	if _, ok := s.cells[c]; ok {
		return false
	}
	s.cells[c] = struct{}{}
	return true
}

// Remove deletes c and reports whether it was alive
func (s *LiveSet) Remove(c Cell) bool {
	if _, ok := s.cells[c]; !ok {
		return false
	}
	delete(s.cells, c)
	return true
}

// Toggle flips the state of c and returns its new state
func (s *LiveSet) Toggle(c Cell) bool {
	if s.Remove(c) {
		return false
	}
	s.Add(c)
	return true
}

// Contains reports whether c is alive
func (s LiveSet) Contains(c Cell) bool {
	_, ok := s.cells[c]
	return ok
}

// Len returns the number of live cells
func (s LiveSet) Len() int {
	return len(s.cells)
}

// Clear kills every cell, keeping the allocated storage
func (s *LiveSet) Clear() {
	clear(s.cells)
}

// Clone returns an independent copy
func (s LiveSet) Clone() LiveSet {
	out := newLiveSetWithCapacity(len(s.cells))
	for c := range s.cells {
		out.cells[c] = struct{}{}
	}
	return out
}

// Equal reports whether both sets hold the same cells
func (s LiveSet) Equal(other LiveSet) bool {
	if len(s.cells) != len(other.cells) {
		return false
	}
	for c := range s.cells {
		if _, ok := other.cells[c]; !ok {
			return false
		}
	}
	return true
}

// Each calls fn for every live cell in unspecified order
func (s LiveSet) Each(fn func(Cell)) {
	for c := range s.cells {
		fn(c)
	}
}

// Sorted returns the live cells ordered by Cell.Compare
func (s LiveSet) Sorted() []Cell {
	out := make([]Cell, 0, len(s.cells))
	for c := range s.cells {
		out = append(out, c)
	}
	SortCells(out)
	return out
}
