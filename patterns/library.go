package patterns

import (
	"slices"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol/model"
)

// Offset is a position relative to a pattern's anchor
type Offset struct {
	DX int
	DY int
}

// Pattern is a named list of offsets
type Pattern struct {
	Name    string
	Offsets []Offset
}

// Library is a read-only catalog of patterns. It is safe for concurrent use
// because nothing mutates it after construction.
type Library struct {
	patterns map[string][]Offset
	names    []string
}

// NewLibrary builds a catalog from the given patterns. Offsets are copied so
// later changes to the arguments do not leak into the library.
func NewLibrary(patterns ...Pattern) (*Library, error) {
	lib := &Library{patterns: make(map[string][]Offset, len(patterns))}
	for _, p := range patterns {
		if p.Name == "" {
			return nil, errors.New("[NewLibrary] pattern name must not be empty")
		}
		if _, dup := lib.patterns[p.Name]; dup {
			return nil, errors.Errorf("[NewLibrary] duplicate pattern name: %q", p.Name)
		}
		lib.patterns[p.Name] = slices.Clone(p.Offsets)
		lib.names = append(lib.names, p.Name)
	}
	slices.Sort(lib.names)
	return lib, nil
}

// DefaultLibrary returns a library holding the built-in catalog
func DefaultLibrary() *Library {
	lib, err := NewLibrary(Classic()...)
	if err != nil {
		// the built-in catalog has unique, non-empty names
		panic(err)
	}
	return lib
}

// Names returns the catalog names in sorted order
func (l *Library) Names() []string {
	return slices.Clone(l.names)
}

// Lookup returns a copy of the offsets of the named pattern
func (l *Library) Lookup(name string) ([]Offset, bool) {
	offsets, ok := l.patterns[name]
	if !ok {
		return nil, false
	}
	return slices.Clone(offsets), true
}

// Cells translates the named pattern by (originX, originY). The result keeps
// the catalog order and may contain the same cell as an existing board.
func (l *Library) Cells(name string, originX, originY int) ([]model.Cell, bool) {
	offsets, ok := l.patterns[name]
	if !ok {
		return nil, false
	}
	cells := make([]model.Cell, len(offsets))
	for i, off := range offsets {
		cells[i] = model.Cell{X: originX + off.DX, Y: originY + off.DY}
	}
	return cells, true
}

// Placer stamps library patterns onto live sets
type Placer struct {
	lib *Library
}

// NewPlacer creates a placer backed by lib
func NewPlacer(lib *Library) *Placer {
	return &Placer{lib: lib}
}

// Library returns the catalog the placer reads from
func (p *Placer) Library() *Library {
	return p.lib
}

// Place adds the named pattern to live with its anchor at (originX, originY).
// Cells that are already alive stay alive. An unknown name leaves live
// unchanged and returns false.
func (p *Placer) Place(name string, originX, originY int, live *model.LiveSet) bool {
	cells, ok := p.lib.Cells(name, originX, originY)
	if !ok {
		return false
	}
	for _, c := range cells {
		live.Add(c)
	}
	return true
}
