package layout

// Capabilities reports which stacking containers the host environment
// provides. A measurer only uses it to decide whether to warn.
type Capabilities interface {
	HasStack(kind Kind) bool
}

// StaticCapabilities is a fixed Capabilities answer.
type StaticCapabilities struct {
	Column bool
	Row    bool
}

// HasStack implements Capabilities. Plain is always available.
func (c StaticCapabilities) HasStack(kind Kind) bool {
	switch kind {
	case Column:
		return c.Column
	case Row:
		return c.Row
	default:
		return true
	}
}

// AllCapabilities reports every stack kind as available.
func AllCapabilities() Capabilities {
	return StaticCapabilities{Column: true, Row: true}
}

// CapabilitiesFunc adapts a function to Capabilities.
type CapabilitiesFunc func(kind Kind) bool

// HasStack implements Capabilities.
func (f CapabilitiesFunc) HasStack(kind Kind) bool { return f(kind) }
