package layout

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// EmptySpacingPolicy decides what a stack with no children contributes for spacing.
type EmptySpacingPolicy uint8

const (
	// EmptySpacingLiteral keeps spacing × (count − 1), so an empty stack
	// contributes −spacing.
	EmptySpacingLiteral EmptySpacingPolicy = iota
	// EmptySpacingClamp makes an empty stack contribute no spacing.
	EmptySpacingClamp
)

// String returns "literal" or "clamp".
func (p EmptySpacingPolicy) String() string {
	switch p {
	case EmptySpacingLiteral:
		return "literal"
	case EmptySpacingClamp:
		return "clamp"
	default:
		return fmt.Sprintf("policy(%d)", uint8(p))
	}
}

// Option is a functional option for configuring a Measurer.
type Option func(*Measurer) error

// WithCapabilities sets the capability provider consulted before each measurement.
// Default is AllCapabilities.
func WithCapabilities(c Capabilities) Option {
	return func(m *Measurer) error {
		if c == nil {
			return fmt.Errorf("capabilities must not be nil")
		}
		m.caps = c
		return nil
	}
}

// WithLogger sets the logger that receives the missing-capability warning.
func WithLogger(logger *log.Logger) Option {
	return func(m *Measurer) error {
		if logger == nil {
			return fmt.Errorf("logger must not be nil")
		}
		m.logger = logger
		return nil
	}
}

// WithEmptySpacing sets how stacks without children treat spacing.
// Default is EmptySpacingLiteral.
func WithEmptySpacing(p EmptySpacingPolicy) Option {
	return func(m *Measurer) error {
		if p > EmptySpacingClamp {
			return fmt.Errorf("unknown empty spacing policy %d", p)
		}
		m.emptySpacing = p
		return nil
	}
}

// WithValidation makes every measurement run Validate on the tree first.
// Malformed trees then fail with an error instead of misbehaving.
func WithValidation(enabled bool) Option {
	return func(m *Measurer) error {
		m.validate = enabled
		return nil
	}
}
