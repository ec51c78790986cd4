package model

import (
	"github.com/sheikhrachel/go-gol/rules"
)

// CountNeighbors maps every cell adjacent to at least one live cell to its
// number of live neighbors. A live cell only gets an entry when another live
// cell is next to it; consumers treat a missing entry as 0.
func CountNeighbors(live LiveSet) map[Cell]int {
	counts := make(map[Cell]int, live.Len()*8)
	countInto(live, counts)
	return counts
}

func countInto(live LiveSet, counts map[Cell]int) {
	for c := range live.cells {
		for _, n := range Neighbors(c) {
			counts[n]++
		}
	}
}

// Candidates returns every live cell together with all of their neighbors.
// A cell outside this set has no live neighbors and cannot be alive next tick.
func Candidates(live LiveSet) LiveSet {
	cands := newLiveSetWithCapacity(live.Len() * 9)
	candidatesInto(live, cands)
	return cands
}

func candidatesInto(live LiveSet, cands LiveSet) {
	for c := range live.cells {
		cands.cells[c] = struct{}{}
		for _, n := range Neighbors(c) {
			cands.cells[n] = struct{}{}
		}
	}
}

// NextGeneration applies B3/S23 to the candidates of live and returns the
// resulting live set. The input is not modified.
func NextGeneration(live LiveSet) LiveSet {
	return survivors(Candidates(live), CountNeighbors(live), live)
}

func survivors(cands LiveSet, counts map[Cell]int, live LiveSet) LiveSet {
	next := newLiveSetWithCapacity(live.Len())
	for c := range cands.cells {
		if rules.ApplyConwayRules(counts[c], live.Contains(c)) {
			next.cells[c] = struct{}{}
		}
	}
	return next
}

// Stepper advances a live set one generation at a time, optionally reusing
// per-tick scratch storage from a pool
type Stepper struct {
	pool *ScratchPool
}

// NewStepper creates a stepper. A nil pool allocates fresh scratch each tick.
func NewStepper(pool *ScratchPool) *Stepper {
	return &Stepper{pool: pool}
}

// Step returns the generation after live. The result always matches NextGeneration(live).
func (s *Stepper) Step(live LiveSet) LiveSet {
	if s == nil || s.pool == nil {
		return NextGeneration(live)
	}

	scratch := s.pool.Get()
	defer ScratchToPool(scratch, s.pool)

	countInto(live, scratch.counts)
	candidatesInto(live, scratch.candidates)
	return survivors(scratch.candidates, scratch.counts, live)
}
