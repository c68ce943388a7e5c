package layout

import "testing"

func TestCalculateChildrenAreasColumnSplitsHeight(t *testing.T) {
	areas := CalculateChildrenAreas(DefaultStyle(), NewRect(0, 0, 80, 24), 2)
	want := []Rect{
		{X: 0, Y: 0, Width: 80, Height: 12},
		{X: 0, Y: 12, Width: 80, Height: 12},
	}
	assertAreas(t, areas, want)
}

func TestCalculateChildrenAreasRowWithGap(t *testing.T) {
	style := DefaultStyle().Row().WithGap(2)
	areas := CalculateChildrenAreas(style, NewRect(0, 0, 80, 10), 3)
	want := []Rect{
		{X: 0, Y: 0, Width: 25, Height: 10},
		{X: 27, Y: 0, Width: 25, Height: 10},
		{X: 54, Y: 0, Width: 25, Height: 10},
	}
	assertAreas(t, areas, want)
}

func TestCalculateChildrenAreasBorderOverlap(t *testing.T) {
	style := DefaultStyle().Row().WithBorder(BorderRounded)
	areas := CalculateChildrenAreas(style, NewRect(0, 0, 20, 10), 2)
	want := []Rect{
		{X: 1, Y: 1, Width: 9, Height: 8},
		{X: 9, Y: 1, Width: 10, Height: 8},
	}
	assertAreas(t, areas, want)
}

func TestCalculateChildrenAreasPaddingAndRoundingBias(t *testing.T) {
	style := DefaultStyle().WithPaddingAll(1)
	areas := CalculateChildrenAreas(style, NewRect(0, 0, 10, 10), 3)
	want := []Rect{
		{X: 1, Y: 1, Width: 8, Height: 2},
		{X: 1, Y: 3, Width: 8, Height: 2},
		{X: 1, Y: 5, Width: 8, Height: 2},
	}
	assertAreas(t, areas, want)
}

func TestCalculateChildrenAreasZeroChildren(t *testing.T) {
	if areas := CalculateChildrenAreas(DefaultStyle(), NewRect(0, 0, 10, 10), 0); len(areas) != 0 {
		t.Fatalf("expected no areas, got %#v", areas)
	}
}

func TestCalculateChildrenAreasSaturatesToZero(t *testing.T) {
	style := DefaultStyle().WithPaddingAll(10).WithBorder(BorderPlain).WithGap(4)
	areas := CalculateChildrenAreas(style, NewRect(0, 0, 5, 5), 3)
	if len(areas) != 3 {
		t.Fatalf("expected 3 areas, got %d", len(areas))
	}
	for i, a := range areas {
		if a.Width < 0 || a.Height < 0 {
			t.Fatalf("area %d has negative size: %#v", i, a)
		}
		if !a.IsEmpty() {
			t.Fatalf("expected area %d to be empty, got %#v", i, a)
		}
	}
}

func TestCalculateChildrenAreasStayWithinContent(t *testing.T) {
	parents := []Rect{
		NewRect(0, 0, 80, 24),
		NewRect(3, 2, 17, 9),
		NewRect(0, 0, 5, 3),
		NewRect(10, 10, 1, 1),
	}
	styles := []Style{
		DefaultStyle(),
		DefaultStyle().Row(),
		DefaultStyle().Row().WithGap(3).WithBorder(BorderDouble),
		DefaultStyle().WithGap(7).WithPadding(EdgeTRBL(1, 2, 0, 1)),
		DefaultStyle().Row().WithGap(50),
	}
	for _, parent := range parents {
		for _, style := range styles {
			content := style.Shrink(style.ShrinkBorder(parent))
			for n := 1; n <= 7; n++ {
				areas := CalculateChildrenAreas(style, parent, n)
				if len(areas) != n {
					t.Fatalf("expected %d areas, got %d", n, len(areas))
				}
				first, last := areas[0], areas[n-1]
				if style.Direction == Row {
					if first.X < content.X || last.Right() > content.Right() {
						t.Fatalf("row span %d..%d exceeds content %#v (style %+v, n=%d)", first.X, last.Right(), content, style, n)
					}
				} else {
					if first.Y < content.Y || last.Bottom() > content.Bottom() {
						t.Fatalf("column span %d..%d exceeds content %#v (style %+v, n=%d)", first.Y, last.Bottom(), content, style, n)
					}
				}
			}
		}
	}
}

func TestCalculateChildrenAreasRowColumnDuality(t *testing.T) {
	parent := NewRect(2, 5, 41, 13)
	for _, base := range []Style{
		DefaultStyle(),
		DefaultStyle().WithGap(2),
		DefaultStyle().WithGap(1).WithBorder(BorderThick),
	} {
		for n := 1; n <= 5; n++ {
			rows := CalculateChildrenAreas(base.Row(), parent, n)
			cols := CalculateChildrenAreas(base.Column(), parent.Transpose(), n)
			for i := range rows {
				if rows[i] != cols[i].Transpose() {
					t.Fatalf("n=%d child %d: row %#v is not transpose of column %#v", n, i, rows[i], cols[i])
				}
			}
		}
	}
}

func TestStyleBuildersAreValues(t *testing.T) {
	base := DefaultStyle()
	row := base.Row().WithGap(-3).WithPaddingAll(1)
	if base.Direction != Column || base.Gap != 0 {
		t.Fatalf("builders must not mutate the receiver, got %+v", base)
	}
	if row.Gap != 0 {
		t.Fatalf("expected negative gap clamped to 0, got %d", row.Gap)
	}
	if row != DefaultStyle().Row().WithPadding(EdgeAll(1)) {
		t.Fatalf("expected equal styles to compare equal")
	}
	if row.WithBorder(BorderDouble).WithoutBorder() != row {
		t.Fatalf("expected WithoutBorder to restore the borderless style")
	}
}

func TestRectContainsEdges(t *testing.T) {
	r := NewRect(2, 3, 4, 5)
	cases := []struct {
		x, y int
		want bool
	}{
		{2, 3, true},
		{5, 7, true},
		{6, 3, false},
		{2, 8, false},
		{1, 3, false},
	}
	for _, tc := range cases {
		if got := r.Contains(tc.x, tc.y); got != tc.want {
			t.Fatalf("Contains(%d,%d) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func assertAreas(t *testing.T, got, want []Rect) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d areas, got %d: %#v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("area %d: expected %#v, got %#v", i, want[i], got[i])
		}
	}
}
