// Package report renders measured trees for terminals.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/grindlemire/go-minsize/internal/layout"
)

// Options controls report rendering.
type Options struct {
	// Plain disables colors and text attributes.
	Plain bool
}

type styles struct {
	name   lipgloss.Style
	kind   map[layout.Kind]lipgloss.Style
	value  lipgloss.Style
	hint   lipgloss.Style
	guide  lipgloss.Style
	header lipgloss.Style
}

func newStyles(w io.Writer, plain bool) styles {
	if plain {
		s := lipgloss.NewStyle()
		return styles{
			name:   s,
			kind:   map[layout.Kind]lipgloss.Style{},
			value:  s,
			hint:   s,
			guide:  s,
			header: s,
		}
	}
	r := lipgloss.NewRenderer(w)
	return styles{
		name: r.NewStyle().Bold(true),
		kind: map[layout.Kind]lipgloss.Style{
			layout.Plain:  r.NewStyle().Foreground(lipgloss.Color("245")),
			layout.Column: r.NewStyle().Foreground(lipgloss.Color("39")),
			layout.Row:    r.NewStyle().Foreground(lipgloss.Color("170")),
		},
		value:  r.NewStyle().Foreground(lipgloss.Color("252")),
		hint:   r.NewStyle().Foreground(lipgloss.Color("214")),
		guide:  r.NewStyle().Foreground(lipgloss.Color("240")),
		header: r.NewStyle().Bold(true).Underline(true),
	}
}

type row struct {
	prefix string
	node   *layout.Node
	size   layout.Size
}

// Render writes an indented tree of root with the minimum width and height
// of every node. Values coming straight from a node's own hint are marked
// with "*".
func Render(w io.Writer, root *layout.Node, m *layout.Measurer, opts Options) error {
	if root == nil {
		return fmt.Errorf("render: nil root")
	}
	if err := layout.Validate(root); err != nil {
		return fmt.Errorf("render: %w", err)
	}

	m.CheckCapabilities(layout.Horizontal, layout.Vertical)
	unchecked := m.Unchecked()

	var rows []row
	var measureErr error
	collect(root, "", "", func(prefix string, n *layout.Node) bool {
		size, err := unchecked.MeasureSize(n)
		if err != nil {
			measureErr = fmt.Errorf("measuring %s: %w", n.Name, err)
			return false
		}
		rows = append(rows, row{prefix: prefix, node: n, size: size})
		return true
	})
	if measureErr != nil {
		return measureErr
	}

	st := newStyles(w, opts.Plain)
	labelWidth := 0
	for _, r := range rows {
		labelWidth = max(labelWidth, lipgloss.Width(r.prefix+r.node.Name))
	}

	var b strings.Builder
	total := rows[0].size
	fmt.Fprintf(&b, "%s\n", st.header.Render(fmt.Sprintf("minimum size %s x %s", format(total.Width), format(total.Height))))
	for _, r := range rows {
		label := r.prefix + r.node.Name
		pad := strings.Repeat(" ", labelWidth-lipgloss.Width(label))
		kindStyle, ok := st.kind[r.node.Style.Kind]
		if !ok {
			kindStyle = lipgloss.NewStyle()
		}
		fmt.Fprintf(&b, "%s%s%s  %s  %s  %s\n",
			st.guide.Render(r.prefix),
			st.name.Render(r.node.Name),
			pad,
			kindStyle.Render(fmt.Sprintf("%-6s", r.node.Style.Kind)),
			st.cell("w", r.size.Width, r.node.Style.Hints.IsSet(layout.Horizontal)),
			st.cell("h", r.size.Height, r.node.Style.Hints.IsSet(layout.Vertical)),
		)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (s styles) cell(label string, v float64, fromHint bool) string {
	text := label + "=" + format(v)
	if fromHint {
		return s.hint.Render(text + "*")
	}
	return s.value.Render(text)
}

// collect walks the tree in pre-order building box-drawing prefixes.
// Nil children are skipped.
func collect(n *layout.Node, prefix, childPrefix string, visit func(string, *layout.Node) bool) {
	if !visit(prefix, n) {
		return
	}
	var children []*layout.Node
	for _, c := range n.Children {
		if c != nil {
			children = append(children, c)
		}
	}
	for i, c := range children {
		if i == len(children)-1 {
			collect(c, childPrefix+"└─ ", childPrefix+"   ", visit)
		} else {
			collect(c, childPrefix+"├─ ", childPrefix+"│  ", visit)
		}
	}
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
