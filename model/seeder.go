package model

import "math/rand/v2"

// Seeder scatters random life with a deterministic source
type Seeder struct {
	r *rand.Rand
}

// NewSeeder creates a Seeder; equal seeds produce equal boards
func NewSeeder(seed int64) *Seeder {
	return &Seeder{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Randomize makes each cell inside area alive with the given probability.
// Cells already alive stay alive.
func (s *Seeder) Randomize(live *LiveSet, area Bounds, density float64) {
	if area.Empty || density <= 0 {
		return
	}
	for y := area.MinY; y <= area.MaxY; y++ {
		for x := area.MinX; x <= area.MaxX; x++ {
			if s.r.Float64() < density {
				live.Add(Cell{X: x, Y: y})
			}
		}
	}
}

// InjectRandomLife adds up to count random cells inside area to break stagnation
func (s *Seeder) InjectRandomLife(live *LiveSet, area Bounds, count int) {
	if area.Empty {
		return
	}
	for range count {
		live.Add(Cell{
			X: area.MinX + s.r.IntN(area.Width()),
			Y: area.MinY + s.r.IntN(area.Height()),
		})
	}
}
