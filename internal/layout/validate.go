package layout

import (
	"errors"
	"fmt"
	"math"
	"reflect"
)

// MaxDepth is the deepest nesting Validate accepts. It also bounds cycles
// through items that cannot be compared, such as map-backed types.
const MaxDepth = 4096

// Validate checks that the tree rooted at root can be measured.
// Every problem found is returned, joined, each wrapped in an *ItemError.
// Subtrees shared between different parents are allowed; only an item that
// appears on its own ancestor path is a cycle.
func Validate(root Measurable) error {
	v := &validator{onPath: make(map[Measurable]bool)}
	v.visit(root, rootPath, 0)
	return errors.Join(v.errs...)
}

type validator struct {
	onPath map[Measurable]bool
	errs   []error
}

func (v *validator) fail(path string, err error) {
	v.errs = append(v.errs, &ItemError{Path: path, Err: err})
}

func (v *validator) visit(item Measurable, path string, depth int) {
	if isNil(item) {
		v.fail(path, ErrNilItem)
		return
	}
	if depth > MaxDepth {
		v.fail(path, fmt.Errorf("deeper than %d levels: %w", MaxDepth, ErrTooDeep))
		return
	}
	if !hashable(item) {
		// No identity to track; MaxDepth stops cycles.
		v.checkStyle(item.MeasureStyle(), path)
		for i, child := range item.MeasureChildren() {
			v.visit(child, childPath(path, i), depth+1)
		}
		return
	}
	if v.onPath[item] {
		v.fail(path, ErrCycle)
		return
	}
	v.onPath[item] = true
	defer delete(v.onPath, item)

	v.checkStyle(item.MeasureStyle(), path)
	for i, child := range item.MeasureChildren() {
		v.visit(child, childPath(path, i), depth+1)
	}
}

func (v *validator) checkStyle(s Style, path string) {
	numbers := []struct {
		name  string
		value float64
	}{
		{"minimum width", s.Hints.MinimumWidth},
		{"minimum height", s.Hints.MinimumHeight},
		{"spacing", s.Spacing},
		{"top margin", s.Margins.Top},
		{"right margin", s.Margins.Right},
		{"bottom margin", s.Margins.Bottom},
		{"left margin", s.Margins.Left},
	}
	for _, n := range numbers {
		if math.IsNaN(n.value) || math.IsInf(n.value, 0) {
			v.fail(path, fmt.Errorf("%s %v: %w", n.name, n.value, ErrInvalidNumber))
		}
	}
	if s.Hints.MinimumWidth < 0 {
		v.fail(path, fmt.Errorf("minimum width %v: %w", s.Hints.MinimumWidth, ErrNegativeHint))
	}
	if s.Hints.MinimumHeight < 0 {
		v.fail(path, fmt.Errorf("minimum height %v: %w", s.Hints.MinimumHeight, ErrNegativeHint))
	}
	if s.Kind > Row {
		v.fail(path, fmt.Errorf("%v: %w", s.Kind, ErrUnknownKind))
	}
}

// hashable reports whether item can be used as a map key.
func hashable(item Measurable) bool {
	if _, ok := item.(*Node); ok {
		return true
	}
	return reflect.ValueOf(item).Comparable()
}
