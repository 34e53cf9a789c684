package report

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/grindlemire/go-minsize/internal/layout"
)

func newMeasurer(t *testing.T) *layout.Measurer {
	t.Helper()
	m, err := layout.NewMeasurer(layout.WithLogger(log.New(io.Discard)))
	if err != nil {
		t.Fatal(err)
	}
	return m
}

func sampleTree() *layout.Node {
	root := layout.NewNode("root", layout.Style{Kind: layout.Column, Spacing: 5, Margins: layout.EdgeTRBL(2, 0, 3, 0)})
	root.AddChild(
		layout.NewNode("a", layout.FixedStyle(4, 10)),
		layout.NewNode("b", layout.FixedStyle(6, 20)),
	)
	return root
}

func TestRender_Plain(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, sampleTree(), newMeasurer(t), Options{Plain: true}); err != nil {
		t.Fatalf("Render: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	want := [][]string{
		{"minimum", "size", "10", "x", "40"},
		{"root", "column", "w=10", "h=40"},
		{"├─", "a", "plain", "w=4*", "h=10*"},
		{"└─", "b", "plain", "w=6*", "h=20*"},
	}
	if len(lines) != len(want) {
		t.Fatalf("Render produced %d lines, want %d:\n%s", len(lines), len(want), buf.String())
	}
	for i, line := range lines {
		got := strings.Fields(line)
		if strings.Join(got, " ") != strings.Join(want[i], " ") {
			t.Errorf("line %d = %q, want fields %v", i, line, want[i])
		}
	}
}

func TestRender_NestedPrefixes(t *testing.T) {
	root := layout.NewNode("root", layout.Style{})
	inner := layout.NewNode("inner", layout.RowStyle(1))
	inner.AddChild(layout.NewNode("x", layout.FixedStyle(2, 2)))
	root.AddChild(inner, layout.NewNode("last", layout.Style{}))

	var buf bytes.Buffer
	if err := Render(&buf, root, newMeasurer(t), Options{Plain: true}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"├─ inner", "│  └─ x", "└─ last"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRender_Errors(t *testing.T) {
	m := newMeasurer(t)

	if err := Render(io.Discard, nil, m, Options{}); err == nil {
		t.Error("Render(nil) should fail")
	}

	loop := layout.NewNode("loop", layout.Style{})
	loop.AddChild(loop)
	if err := Render(io.Discard, loop, m, Options{}); !errors.Is(err, layout.ErrCycle) {
		t.Errorf("Render(cycle) = %v, want ErrCycle", err)
	}
}

func TestRender_WarnsOncePerReport(t *testing.T) {
	var logs bytes.Buffer
	m, err := layout.NewMeasurer(
		layout.WithLogger(log.New(&logs)),
		layout.WithCapabilities(layout.StaticCapabilities{Row: true}),
	)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := Render(&buf, sampleTree(), m, Options{Plain: true}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(buf.String(), "minimum size 10 x 40") {
		t.Errorf("report should still measure the tree:\n%s", buf.String())
	}
	if n := strings.Count(logs.String(), "layout stack definition is missing"); n != 1 {
		t.Errorf("warned %d times for a three-node tree, want 1:\n%s", n, logs.String())
	}
	if !strings.Contains(logs.String(), "kind=column") {
		t.Errorf("warning should name the missing column stack: %q", logs.String())
	}
}
