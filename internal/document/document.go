package document

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/grindlemire/go-minsize/internal/layout"
	"gopkg.in/yaml.v3"
)

// item is the on-disk form of a layout.Node.
type item struct {
	Name          string    `yaml:"name,omitempty"`
	Kind          kindField `yaml:"kind,omitempty"`
	Spacing       float64   `yaml:"spacing,omitempty"`
	Margins       margins   `yaml:"margins,omitempty"`
	MinimumWidth  float64   `yaml:"minimumWidth,omitempty"`
	MinimumHeight float64   `yaml:"minimumHeight,omitempty"`
	Children      []*item   `yaml:"children,omitempty"`
}

type kindField struct {
	layout.Kind
}

func (k *kindField) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	kind, err := layout.ParseKind(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	k.Kind = kind
	return nil
}

func (k kindField) MarshalYAML() (any, error) {
	return k.Kind.String(), nil
}

func (k kindField) IsZero() bool {
	return k.Kind == layout.Plain
}

type margins struct {
	Top    float64 `yaml:"top,omitempty"`
	Right  float64 `yaml:"right,omitempty"`
	Bottom float64 `yaml:"bottom,omitempty"`
	Left   float64 `yaml:"left,omitempty"`
}

// UnmarshalYAML accepts either a mapping of sides or one number for all sides.
func (m *margins) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var all float64
		if err := value.Decode(&all); err != nil {
			return fmt.Errorf("line %d: margins: %w", value.Line, err)
		}
		*m = margins{Top: all, Right: all, Bottom: all, Left: all}
		return nil
	}
	type plain margins
	return value.Decode((*plain)(m))
}

func (m margins) IsZero() bool {
	return m == margins{}
}

// Decode reads one tree from r.
func Decode(r io.Reader) (*layout.Node, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var root item
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty document")
		}
		return nil, fmt.Errorf("decoding tree: %w", err)
	}
	return root.toNode("root"), nil
}

// Load reads one tree from the file at path.
func Load(path string) (*layout.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening tree: %w", err)
	}
	defer f.Close()

	node, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return node, nil
}

// Encode writes the tree rooted at root to w.
func Encode(w io.Writer, root *layout.Node) error {
	if root == nil {
		return fmt.Errorf("encoding tree: nil root")
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(fromNode(root)); err != nil {
		return fmt.Errorf("encoding tree: %w", err)
	}
	return enc.Close()
}

func (it *item) toNode(path string) *layout.Node {
	name := it.Name
	if name == "" {
		name = path
	}
	node := layout.NewNode(name, layout.Style{
		Kind:    it.Kind.Kind,
		Spacing: it.Spacing,
		Margins: layout.EdgeTRBL(it.Margins.Top, it.Margins.Right, it.Margins.Bottom, it.Margins.Left),
		Hints: layout.Hints{
			MinimumWidth:  it.MinimumWidth,
			MinimumHeight: it.MinimumHeight,
		},
	})
	for i, child := range it.Children {
		if child == nil {
			// A bare "-" entry; keep it so validation reports the spot.
			node.AddChild(nil)
			continue
		}
		node.AddChild(child.toNode(path + "/" + strconv.Itoa(i)))
	}
	return node
}

func fromNode(n *layout.Node) *item {
	if n == nil {
		return nil
	}
	s := n.Style
	it := &item{
		Name:          n.Name,
		Kind:          kindField{s.Kind},
		Spacing:       s.Spacing,
		Margins:       margins{Top: s.Margins.Top, Right: s.Margins.Right, Bottom: s.Margins.Bottom, Left: s.Margins.Left},
		MinimumWidth:  s.Hints.MinimumWidth,
		MinimumHeight: s.Hints.MinimumHeight,
	}
	for _, child := range n.Children {
		it.Children = append(it.Children, fromNode(child))
	}
	return it
}
