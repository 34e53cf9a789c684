package layout

import (
	"math"
	"os"

	"github.com/charmbracelet/log"
)

// Measurer computes minimum sizes of Measurable trees.
// It holds only configuration and is safe to share between goroutines as
// long as the trees it reads are not mutated during a call.
type Measurer struct {
	caps         Capabilities
	logger       *log.Logger
	emptySpacing EmptySpacingPolicy
	validate     bool
}

// NewMeasurer creates a Measurer with the given options.
func NewMeasurer(opts ...Option) (*Measurer, error) {
	m := &Measurer{
		caps:   AllCapabilities(),
		logger: log.NewWithOptions(os.Stderr, log.Options{Prefix: "minsize"}),
	}
	for _, opt := range opts {
		if err := opt(m); err != nil {
			return nil, err
		}
	}
	return m, nil
}

var defaultMeasurer, _ = NewMeasurer()

// MinimumHeight measures item with the default Measurer.
// Returns 0 if item is nil.
func MinimumHeight(item Measurable) float64 {
	h, _ := defaultMeasurer.MeasureMinimumHeight(item)
	return h
}

// MinimumWidth measures item with the default Measurer.
// Returns 0 if item is nil.
func MinimumWidth(item Measurable) float64 {
	w, _ := defaultMeasurer.MeasureMinimumWidth(item)
	return w
}

// MeasureMinimumHeight returns the minimum height of item.
func (m *Measurer) MeasureMinimumHeight(item Measurable) (float64, error) {
	return m.Measure(item, Vertical)
}

// MeasureMinimumWidth returns the minimum width of item.
func (m *Measurer) MeasureMinimumWidth(item Measurable) (float64, error) {
	return m.Measure(item, Horizontal)
}

// MeasureSize returns the minimum width and height of item.
func (m *Measurer) MeasureSize(item Measurable) (Size, error) {
	w, err := m.Measure(item, Horizontal)
	if err != nil {
		return Size{}, err
	}
	h, err := m.Measure(item, Vertical)
	if err != nil {
		return Size{}, err
	}
	return Size{Width: w, Height: h}, nil
}

// Measure returns the minimum size of item along axis.
//
// A positive hint on item is returned as is. A stack along axis sums the
// direct hints of its children, spacing × (count − 1) and its margins on
// that axis. Any other item sums the recursive measurement of its children.
func (m *Measurer) Measure(item Measurable, axis Axis) (float64, error) {
	m.CheckCapabilities(axis)
	if isNil(item) {
		return 0, &ItemError{Path: rootPath, Err: ErrNilItem}
	}
	if m.validate {
		if err := Validate(item); err != nil {
			return 0, err
		}
	}
	return m.measure(item, axis, rootPath)
}

// CheckCapabilities logs one warning for each axis whose stacking
// container is missing from the host environment.
func (m *Measurer) CheckCapabilities(axes ...Axis) {
	for _, axis := range axes {
		stack := axis.StackKind()
		if !m.caps.HasStack(stack) {
			m.logger.Warn("layout stack definition is missing", "kind", stack)
		}
	}
}

// Unchecked returns a copy of m that skips the capability check. Callers
// measuring many nodes of one tree run CheckCapabilities once and then
// measure through the copy.
func (m *Measurer) Unchecked() *Measurer {
	c := *m
	c.caps = AllCapabilities()
	return &c
}

func (m *Measurer) measure(item Measurable, axis Axis, path string) (float64, error) {
	style := item.MeasureStyle()
	if hint := axis.Hint(style.Hints); hint > 0 {
		return hint, nil
	}

	children := item.MeasureChildren()
	var total float64

	if style.Kind == axis.StackKind() {
		for i, child := range children {
			if isNil(child) {
				return 0, &ItemError{Path: childPath(path, i), Err: ErrNilItem}
			}
			// Only the child's own hint counts here, not its measured size.
			total += axis.Hint(child.MeasureStyle().Hints)
		}
		return total + m.spacing(style.Spacing, len(children)) + axis.Margins(style.Margins), nil
	}

	for i, child := range children {
		if isNil(child) {
			return 0, &ItemError{Path: childPath(path, i), Err: ErrNilItem}
		}
		size, err := m.measure(child, axis, childPath(path, i))
		if err != nil {
			return 0, err
		}
		total += size
	}
	return total, nil
}

// spacing returns the gap contribution of count children.
func (m *Measurer) spacing(spacing float64, count int) float64 {
	if count == 0 && m.emptySpacing == EmptySpacingClamp {
		return 0
	}
	return spacing * float64(count-1)
}

// Bound clamps value into [lo, hi]. lo is applied first, so when lo > hi
// the result is hi.
func Bound(lo, value, hi float64) float64 {
	return math.Min(math.Max(lo, value), hi)
}
