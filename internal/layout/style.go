package layout

import (
	"fmt"
	"strings"
)

// Kind identifies how an item arranges its children.
type Kind uint8

const (
	Plain  Kind = iota // Grouping node with no stacking axis
	Column             // Children stacked top-to-bottom
	Row                // Children placed left-to-right
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Column:
		return "column"
	case Row:
		return "row"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseKind converts a kind name into a Kind. Besides the lowercase names
// returned by String, the QtQuick type names Item, ColumnLayout and
// RowLayout are accepted. Matching is case-insensitive.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "plain", "item":
		return Plain, nil
	case "column", "columnlayout":
		return Column, nil
	case "row", "rowlayout":
		return Row, nil
	}
	return Plain, fmt.Errorf("unknown item kind %q", s)
}

// Hints holds explicit minimum sizes for an item.
// A value of 0 means the hint is not set and the size comes from children.
type Hints struct {
	MinimumWidth  float64
	MinimumHeight float64
}

// IsSet reports whether the hint along axis overrides measurement.
func (h Hints) IsSet(axis Axis) bool {
	return axis.Hint(h) > 0
}

// Style contains every property a measurement reads from one item.
type Style struct {
	Kind    Kind
	Spacing float64 // Gap between consecutive children
	Margins Edges
	Hints   Hints
}

// ColumnStyle returns a Style for a column stack with the given spacing.
func ColumnStyle(spacing float64) Style {
	return Style{Kind: Column, Spacing: spacing}
}

// RowStyle returns a Style for a row stack with the given spacing.
func RowStyle(spacing float64) Style {
	return Style{Kind: Row, Spacing: spacing}
}

// FixedStyle returns a plain Style with both minimum hints set.
func FixedStyle(width, height float64) Style {
	return Style{Hints: Hints{MinimumWidth: width, MinimumHeight: height}}
}
