package layout

import "testing"

func TestNewNode(t *testing.T) {
	node := NewNode("header", ColumnStyle(4))

	if node.Name != "header" {
		t.Errorf("NewNode Name = %q, want header", node.Name)
	}
	if node.Style.Kind != Column || node.Style.Spacing != 4 {
		t.Errorf("NewNode Style = %+v, want column with spacing 4", node.Style)
	}
	if len(node.Children) != 0 {
		t.Errorf("NewNode should have no children, got %d", len(node.Children))
	}
	if node.Parent() != nil {
		t.Error("NewNode should have no parent")
	}
}

func TestNode_AddChild(t *testing.T) {
	parent := NewNode("parent", Style{})
	child1 := NewNode("a", Style{})
	child2 := NewNode("b", Style{})

	parent.AddChild(child1, child2)

	if len(parent.Children) != 2 {
		t.Fatalf("AddChild: len(Children) = %d, want 2", len(parent.Children))
	}
	if parent.Children[0] != child1 || parent.Children[1] != child2 {
		t.Error("AddChild: children out of order")
	}
	if child1.Parent() != parent || child2.Parent() != parent {
		t.Error("AddChild: parent not set")
	}
}

func TestNode_RemoveChild(t *testing.T) {
	type tc struct {
		remove      int // index into the three children, -1 for a stranger
		expectFound bool
		expectNames []string
	}

	tests := map[string]tc{
		"remove first keeps order": {
			remove:      0,
			expectFound: true,
			expectNames: []string{"b", "c"},
		},
		"remove middle keeps order": {
			remove:      1,
			expectFound: true,
			expectNames: []string{"a", "c"},
		},
		"remove non-existent child": {
			remove:      -1,
			expectFound: false,
			expectNames: []string{"a", "b", "c"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			parent := NewNode("parent", Style{})
			a, b, c := NewNode("a", Style{}), NewNode("b", Style{}), NewNode("c", Style{})
			parent.AddChild(a, b, c)

			target := NewNode("stranger", Style{})
			if tt.remove >= 0 {
				target = parent.Children[tt.remove]
			}

			if found := parent.RemoveChild(target); found != tt.expectFound {
				t.Errorf("RemoveChild = %v, want %v", found, tt.expectFound)
			}
			if tt.expectFound && target.Parent() != nil {
				t.Error("removed child should have no parent")
			}

			var names []string
			for _, child := range parent.Children {
				names = append(names, child.Name)
			}
			if len(names) != len(tt.expectNames) {
				t.Fatalf("children = %v, want %v", names, tt.expectNames)
			}
			for i := range names {
				if names[i] != tt.expectNames[i] {
					t.Errorf("children = %v, want %v", names, tt.expectNames)
					break
				}
			}
		})
	}
}

func TestNode_Walk(t *testing.T) {
	root := NewNode("root", Style{})
	left := NewNode("left", Style{})
	left.AddChild(NewNode("left.0", Style{}))
	root.AddChild(left, NewNode("right", Style{}))

	var visited []string
	var depths []int
	root.Walk(func(n *Node, depth int) bool {
		visited = append(visited, n.Name)
		depths = append(depths, depth)
		return true
	})

	want := []string{"root", "left", "left.0", "right"}
	wantDepths := []int{0, 1, 2, 1}
	for i := range want {
		if i >= len(visited) || visited[i] != want[i] || depths[i] != wantDepths[i] {
			t.Fatalf("Walk visited %v at %v, want %v at %v", visited, depths, want, wantDepths)
		}
	}

	var pruned []string
	root.Walk(func(n *Node, depth int) bool {
		pruned = append(pruned, n.Name)
		return n.Name != "left"
	})
	if len(pruned) != 3 {
		t.Errorf("Walk with pruning visited %v, want root, left, right", pruned)
	}
}

func TestNode_MeasureChildren(t *testing.T) {
	root := NewNode("root", Style{})
	root.AddChild(NewNode("a", Style{}), nil)

	children := root.MeasureChildren()
	if len(children) != 2 {
		t.Fatalf("MeasureChildren len = %d, want 2", len(children))
	}
	if children[0] == nil {
		t.Error("first child should be set")
	}
	if children[1] != nil {
		t.Error("nil child should stay a nil interface")
	}
}
