package model

import "sync"

// Scratch is the per-tick working storage of a Stepper
type Scratch struct {
	counts     map[Cell]int
	candidates LiveSet
}

// ScratchToPool returns scratch storage to the pool for reuse
func ScratchToPool(scratch *Scratch, pool *ScratchPool) {
	if pool == nil || scratch == nil {
		return
	}

	pool.Put(scratch)
}

// ScratchPool for memory efficiency
type ScratchPool struct {
	pool sync.Pool
}

func NewScratchPool() *ScratchPool {
	return &ScratchPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Scratch{
					counts:     make(map[Cell]int),
					candidates: newLiveSetWithCapacity(0),
				}
			},
		},
	}
}

// Get retrieves empty scratch storage from the pool
func (p *ScratchPool) Get() *Scratch {
	return p.pool.Get().(*Scratch)
}

// Put returns scratch storage to the pool, clearing its state
func (p *ScratchPool) Put(s *Scratch) {
	// clear keeps the map buckets allocated
	clear(s.counts)
	s.candidates.Clear()
	p.pool.Put(s)
}
