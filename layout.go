// layout.go re-exports measurement types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package minsize

import "github.com/grindlemire/go-minsize/internal/layout"

// Kind identifies how an item arranges its children.
type Kind = layout.Kind

const (
	Plain  = layout.Plain
	Column = layout.Column
	Row    = layout.Row
)

// Axis selects which dimension is measured.
type Axis = layout.Axis

const (
	Vertical   = layout.Vertical
	Horizontal = layout.Horizontal
)

// EmptySpacingPolicy decides what a stack with no children contributes for spacing.
type EmptySpacingPolicy = layout.EmptySpacingPolicy

const (
	EmptySpacingLiteral = layout.EmptySpacingLiteral
	EmptySpacingClamp   = layout.EmptySpacingClamp
)

// Style holds the measurement properties of one item.
type Style = layout.Style

// Hints holds explicit minimum sizes.
type Hints = layout.Hints

// Edges represents margins on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Size represents a width/height pair.
type Size = layout.Size

// Measurable is the interface items must implement to be measured.
type Measurable = layout.Measurable

// Node is a ready-made Measurable tree node.
type Node = layout.Node

// Measurer computes minimum sizes.
type Measurer = layout.Measurer

// Option configures a Measurer.
type Option = layout.Option

// Capabilities reports which stacking containers the host provides.
type Capabilities = layout.Capabilities

// StaticCapabilities is a fixed Capabilities answer.
type StaticCapabilities = layout.StaticCapabilities

// CapabilitiesFunc adapts a function to Capabilities.
type CapabilitiesFunc = layout.CapabilitiesFunc

// ItemError locates a problem inside a tree.
type ItemError = layout.ItemError

var (
	ErrNilItem       = layout.ErrNilItem
	ErrCycle         = layout.ErrCycle
	ErrNegativeHint  = layout.ErrNegativeHint
	ErrInvalidNumber = layout.ErrInvalidNumber
	ErrUnknownKind   = layout.ErrUnknownKind
	ErrTooDeep       = layout.ErrTooDeep
)

// MaxDepth is the deepest nesting Validate accepts.
const MaxDepth = layout.MaxDepth

// NewNode creates a node with the given name and style.
func NewNode(name string, style Style) *Node {
	return layout.NewNode(name, style)
}

// NewMeasurer creates a Measurer with the given options.
func NewMeasurer(opts ...Option) (*Measurer, error) {
	return layout.NewMeasurer(opts...)
}

// MinimumHeight measures item with default settings.
func MinimumHeight(item Measurable) float64 {
	return layout.MinimumHeight(item)
}

// MinimumWidth measures item with default settings.
func MinimumWidth(item Measurable) float64 {
	return layout.MinimumWidth(item)
}

// Bound clamps value into [lo, hi], applying lo first.
func Bound(lo, value, hi float64) float64 {
	return layout.Bound(lo, value, hi)
}

// Validate reports every malformed item in the tree rooted at root.
func Validate(root Measurable) error {
	return layout.Validate(root)
}

// ParseKind converts a kind name into a Kind.
func ParseKind(s string) (Kind, error) {
	return layout.ParseKind(s)
}

// ParseAxis converts "height" or "width" into an Axis.
func ParseAxis(s string) (Axis, error) {
	return layout.ParseAxis(s)
}

// AllCapabilities reports every stack kind as available.
func AllCapabilities() Capabilities {
	return layout.AllCapabilities()
}

// ColumnStyle returns a Style for a column stack.
func ColumnStyle(spacing float64) Style {
	return layout.ColumnStyle(spacing)
}

// RowStyle returns a Style for a row stack.
func RowStyle(spacing float64) Style {
	return layout.RowStyle(spacing)
}

// FixedStyle returns a plain Style with both minimum hints set.
func FixedStyle(width, height float64) Style {
	return layout.FixedStyle(width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical and horizontal values.
func EdgeSymmetric(v, h float64) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l float64) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}

// Measurer options.
var (
	WithCapabilities = layout.WithCapabilities
	WithLogger       = layout.WithLogger
	WithEmptySpacing = layout.WithEmptySpacing
	WithValidation   = layout.WithValidation
)
