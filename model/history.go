package model

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
)

// historySize is how many recent generation hashes are kept for cycle detection
const historySize = 5

// History remembers hashes of recent generations
type History struct {
	hashes []string
}

// Hash returns an MD5 hash of the live set. Cells are hashed in sorted order
// so equal sets always hash the same.
func Hash(live LiveSet) string {
	h := md5.New()
	buf := make([]byte, 16)
	for _, c := range live.Sorted() {
		binary.LittleEndian.PutUint64(buf[:8], uint64(c.X))
		binary.LittleEndian.PutUint64(buf[8:], uint64(c.Y))
		h.Write(buf)
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Update adds the live set to history and maintains size
func (h *History) Update(live LiveSet) {
	h.hashes = append(h.hashes, Hash(live))

	if len(h.hashes) > historySize {
		h.hashes = h.hashes[1:]
	}
}

// Reset forgets all recorded generations
func (h *History) Reset() {
	h.hashes = nil
}

// Len returns the number of recorded generations
func (h *History) Len() int {
	return len(h.hashes)
}

// IsStagnant checks if live repeats one of the last three recorded generations,
// which catches still lifes and oscillators of period 2 and 3
func (h *History) IsStagnant(live LiveSet) bool {
	if len(h.hashes) < 3 {
		return false
	}

	current := Hash(live)
	for back := 1; back <= 3; back++ {
		if h.hashes[len(h.hashes)-back] == current {
			return true
		}
	}
	return false
}
