package layout

import "testing"

func TestParseKind(t *testing.T) {
	type tc struct {
		input   string
		want    Kind
		wantErr bool
	}

	tests := map[string]tc{
		"empty is plain": {input: "", want: Plain},
		"plain":          {input: "plain", want: Plain},
		"qml item":       {input: "Item", want: Plain},
		"column":         {input: "column", want: Column},
		"qml column":     {input: "ColumnLayout", want: Column},
		"row mixed case": {input: " Row ", want: Row},
		"qml row":        {input: "RowLayout", want: Row},
		"unknown":        {input: "grid", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseKind(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKind(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParseKind(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestKind_StringRoundTrip(t *testing.T) {
	for _, k := range []Kind{Plain, Column, Row} {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
	if got := Kind(9).String(); got != "kind(9)" {
		t.Errorf("Kind(9).String() = %q", got)
	}
}

func TestAxis(t *testing.T) {
	hints := Hints{MinimumWidth: 3, MinimumHeight: 4}
	margins := EdgeTRBL(1, 2, 3, 4)

	if Vertical.StackKind() != Column || Horizontal.StackKind() != Row {
		t.Error("StackKind mismatch")
	}
	if Vertical.Hint(hints) != 4 || Horizontal.Hint(hints) != 3 {
		t.Error("Hint mismatch")
	}
	if Vertical.Margins(margins) != 4 || Horizontal.Margins(margins) != 6 {
		t.Error("Margins mismatch")
	}
	if !hints.IsSet(Vertical) || (Hints{}).IsSet(Horizontal) {
		t.Error("IsSet mismatch")
	}

	for _, s := range []string{"height", "H", "vertical"} {
		if a, err := ParseAxis(s); err != nil || a != Vertical {
			t.Errorf("ParseAxis(%q) = %v, %v", s, a, err)
		}
	}
	for _, s := range []string{"width", "w", "Horizontal"} {
		if a, err := ParseAxis(s); err != nil || a != Horizontal {
			t.Errorf("ParseAxis(%q) = %v, %v", s, a, err)
		}
	}
	if _, err := ParseAxis("depth"); err == nil {
		t.Error("ParseAxis(depth) should fail")
	}
}

func TestEdges(t *testing.T) {
	e := EdgeTRBL(1, 2, 3, 4)
	if e.Vertical() != 4 || e.Horizontal() != 6 {
		t.Errorf("EdgeTRBL sums = %v/%v, want 4/6", e.Vertical(), e.Horizontal())
	}
	if EdgeAll(2) != (Edges{2, 2, 2, 2}) {
		t.Error("EdgeAll mismatch")
	}
	if EdgeSymmetric(1, 5) != (Edges{Top: 1, Right: 5, Bottom: 1, Left: 5}) {
		t.Error("EdgeSymmetric mismatch")
	}
	if !(Edges{}).IsZero() || e.IsZero() {
		t.Error("IsZero mismatch")
	}
}
