package layout

import (
	"errors"
	"strconv"
)

var (
	// ErrNilItem is reported for a nil root or a nil child.
	ErrNilItem = errors.New("nil item")
	// ErrCycle is reported when an item is its own ancestor.
	ErrCycle = errors.New("item is its own ancestor")
	// ErrNegativeHint is reported for a minimum hint below zero.
	ErrNegativeHint = errors.New("negative minimum size hint")
	// ErrInvalidNumber is reported for NaN or infinite hints, spacing or margins.
	ErrInvalidNumber = errors.New("invalid number")
	// ErrUnknownKind is reported for a Kind outside Plain, Column and Row.
	ErrUnknownKind = errors.New("unknown item kind")
	// ErrTooDeep is reported when nesting exceeds MaxDepth.
	ErrTooDeep = errors.New("tree too deep")
)

const rootPath = "root"

// ItemError locates a problem inside a tree.
type ItemError struct {
	// Path is the child index path from the root, e.g. "root/0/2".
	Path string
	Err  error
}

func (e *ItemError) Error() string {
	return "malformed item " + e.Path + ": " + e.Err.Error()
}

func (e *ItemError) Unwrap() error {
	return e.Err
}

func childPath(parent string, index int) string {
	return parent + "/" + strconv.Itoa(index)
}

// isNil reports whether item is nil, including a nil *Node inside the interface.
func isNil(item Measurable) bool {
	if item == nil {
		return true
	}
	n, ok := item.(*Node)
	return ok && n == nil
}
