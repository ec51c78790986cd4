package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	macosClearCmd = "clear"
)

// TerminalRenderer draws a fixed viewport of the unbounded plane
type TerminalRenderer struct {
	Out      io.Writer
	Viewport Bounds
}

// NewTerminalRenderer creates a renderer writing to stdout
func NewTerminalRenderer(viewport Bounds) *TerminalRenderer {
	return &TerminalRenderer{Out: os.Stdout, Viewport: viewport}
}

// Frame renders the part of live inside the viewport, one text row per grid row
func (r *TerminalRenderer) Frame(live LiveSet) string {
	var sb strings.Builder
	v := r.Viewport
	if v.Empty {
		return ""
	}
	sb.Grow(v.Height() * (v.Width()*len(gridPosBlock) + 1))
	for y := v.MinY; y <= v.MaxY; y++ {
		for x := v.MinX; x <= v.MaxX; x++ {
			if live.Contains(Cell{X: x, Y: y}) {
				sb.WriteString(gridPosBlock)
			} else {
				sb.WriteString(gridPosEmpty)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Display renders the live set to the terminal
func (r *TerminalRenderer) Display(live LiveSet) {
	fmt.Fprint(r.Out, r.Frame(live))
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = r.Out
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(r.Out, "Error clearing terminal:", err)
	}
}
