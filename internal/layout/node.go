package layout

import "slices"

// Node represents an item in a measurement tree.
type Node struct {
	// Name identifies the node in reports and errors. It is not used by measurement.
	Name     string
	Style    Style
	Children []*Node

	parent *Node // Back-pointer, set by AddChild
}

// NewNode creates a new node with the given name and style.
func NewNode(name string, style Style) *Node {
	return &Node{Name: name, Style: style}
}

// AddChild appends children in visual order.
func (n *Node) AddChild(children ...*Node) {
	for _, child := range children {
		if child != nil {
			child.parent = n
		}
		n.Children = append(n.Children, child)
	}
}

// RemoveChild removes a child by pointer, keeping the order of the rest.
// Returns true if the child was found and removed.
func (n *Node) RemoveChild(child *Node) bool {
	i := slices.Index(n.Children, child)
	if i < 0 {
		return false
	}
	n.Children = slices.Delete(n.Children, i, i+1)
	if child != nil {
		child.parent = nil
	}
	return true
}

// Parent returns the node this one was added to, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Walk visits n and its descendants in pre-order. depth is 0 for n.
// Returning false from fn skips the node's children.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(*Node, int) bool, depth int) {
	if n == nil || !fn(n, depth) {
		return
	}
	for _, child := range n.Children {
		child.walk(fn, depth+1)
	}
}

// MeasureStyle implements Measurable.
func (n *Node) MeasureStyle() Style { return n.Style }

// MeasureChildren implements Measurable. A nil child stays a nil interface
// so validation can see it.
func (n *Node) MeasureChildren() []Measurable {
	result := make([]Measurable, len(n.Children))
	for i, child := range n.Children {
		if child != nil {
			result[i] = child
		}
	}
	return result
}
