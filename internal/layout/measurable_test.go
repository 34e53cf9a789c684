package layout

// testNode is a minimal Measurable implementation, independent of Node,
// for exercising the measurer through the interface alone.
type testNode struct {
	style    Style
	children []*testNode
}

func newTestNode(style Style, children ...*testNode) *testNode {
	return &testNode{style: style, children: children}
}

func (n *testNode) MeasureStyle() Style { return n.style }

func (n *testNode) MeasureChildren() []Measurable {
	result := make([]Measurable, len(n.children))
	for i, child := range n.children {
		result[i] = child
	}
	return result
}

// hinted returns a plain leaf with the given minimum height and width.
func hinted(height, width float64) *testNode {
	return newTestNode(Style{Hints: Hints{MinimumHeight: height, MinimumWidth: width}})
}
