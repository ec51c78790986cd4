package model

// Bounds is an inclusive rectangle on the plane
type Bounds struct {
	MinX, MaxX, MinY, MaxY int
	Empty                  bool
}

// NewBounds returns the rectangle of the given size with its top-left corner at (x, y)
func NewBounds(x, y, width, height int) Bounds {
	if width <= 0 || height <= 0 {
		return Bounds{Empty: true}
	}
	return Bounds{MinX: x, MaxX: x + width - 1, MinY: y, MaxY: y + height - 1}
}

// Width of the rectangle, 0 when empty
func (b Bounds) Width() int {
	if b.Empty {
		return 0
	}
	return b.MaxX - b.MinX + 1
}

// Height of the rectangle, 0 when empty
func (b Bounds) Height() int {
	if b.Empty {
		return 0
	}
	return b.MaxY - b.MinY + 1
}

// Area returns the number of cells inside the rectangle
func (b Bounds) Area() int {
	return b.Width() * b.Height()
}

// Contains reports whether c lies inside the rectangle
func (b Bounds) Contains(c Cell) bool {
	return !b.Empty && c.X >= b.MinX && c.X <= b.MaxX && c.Y >= b.MinY && c.Y <= b.MaxY
}

// Bounds calculates the bounding box of living cells
func (s LiveSet) Bounds() Bounds {
	b := Bounds{Empty: true}
	for c := range s.cells {
		if b.Empty {
			b = Bounds{MinX: c.X, MaxX: c.X, MinY: c.Y, MaxY: c.Y}
			continue
		}
		b.MinX = min(b.MinX, c.X)
		b.MaxX = max(b.MaxX, c.X)
		b.MinY = min(b.MinY, c.Y)
		b.MaxY = max(b.MaxY, c.Y)
	}
	return b
}
