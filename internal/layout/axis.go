package layout

import (
	"fmt"
	"strings"
)

// Axis selects which dimension is measured.
type Axis uint8

const (
	Vertical   Axis = iota // Heights; stacked by Column
	Horizontal             // Widths; stacked by Row
)

// String returns "height" or "width".
func (a Axis) String() string {
	if a == Horizontal {
		return "width"
	}
	return "height"
}

// ParseAxis accepts height/vertical/h and width/horizontal/w.
func ParseAxis(s string) (Axis, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "height", "vertical", "h", "y":
		return Vertical, nil
	case "width", "horizontal", "w", "x":
		return Horizontal, nil
	}
	return Vertical, fmt.Errorf("unknown axis %q", s)
}

// StackKind returns the container kind that stacks children along a.
func (a Axis) StackKind() Kind {
	if a == Horizontal {
		return Row
	}
	return Column
}

// Hint returns the minimum hint for a.
func (a Axis) Hint(h Hints) float64 {
	if a == Horizontal {
		return h.MinimumWidth
	}
	return h.MinimumHeight
}

// Margins returns the sum of the two margins lying on a.
func (a Axis) Margins(e Edges) float64 {
	if a == Horizontal {
		return e.Horizontal()
	}
	return e.Vertical()
}

// Size represents a width/height pair.
type Size struct {
	Width, Height float64
}

// Get returns the component of s along a.
func (s Size) Get(a Axis) float64 {
	if a == Horizontal {
		return s.Width
	}
	return s.Height
}
