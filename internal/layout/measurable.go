package layout

// Measurable is the interface for anything that can be measured.
// The measurer works entirely with this interface and never mutates it,
// so UI frameworks can expose their own item trees directly.
type Measurable interface {
	// MeasureStyle returns the kind, spacing, margins and hints of this item.
	MeasureStyle() Style

	// MeasureChildren returns the children in visual order.
	MeasureChildren() []Measurable
}
