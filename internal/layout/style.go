package layout

// FlexDirection selects the axis children are distributed along.
type FlexDirection int

const (
	// Column stacks children top to bottom. It is the zero value.
	Column FlexDirection = iota
	// Row places children left to right.
	Row
)

func (d FlexDirection) String() string {
	if d == Row {
		return "row"
	}
	return "column"
}

// BorderType picks the glyph set used when a border is drawn.
type BorderType int

const (
	BorderPlain BorderType = iota
	BorderRounded
	BorderDouble
	BorderThick
)

func (t BorderType) String() string {
	switch t {
	case BorderRounded:
		return "rounded"
	case BorderDouble:
		return "double"
	case BorderThick:
		return "thick"
	default:
		return "plain"
	}
}

// Border describes whether a node draws a frame around its area.
type Border struct {
	Show bool
	Type BorderType
}

// Style is the per-node layout description. It is a plain value: copy it
// freely and compare with ==.
//
// Containers use Direction, Gap, Padding and Border to place children.
// Widget leaves may use Padding to inset their own rendering.
type Style struct {
	Direction FlexDirection
	Gap       int
	Padding   Edges
	Border    Border
}

// DefaultStyle returns the zero Style: a borderless column.
func DefaultStyle() Style {
	return Style{}
}

// Row returns a copy of s laid out horizontally.
func (s Style) Row() Style {
	s.Direction = Row
	return s
}

// Column returns a copy of s laid out vertically.
func (s Style) Column() Style {
	s.Direction = Column
	return s
}

// WithGap returns a copy of s with the given gap. Negative values become zero.
func (s Style) WithGap(gap int) Style {
	s.Gap = max(gap, 0)
	return s
}

// WithPadding returns a copy of s with the given padding.
func (s Style) WithPadding(p Edges) Style {
	s.Padding = Edges{
		Top:    max(p.Top, 0),
		Right:  max(p.Right, 0),
		Bottom: max(p.Bottom, 0),
		Left:   max(p.Left, 0),
	}
	return s
}

// WithPaddingAll returns a copy of s padded by n on every side.
func (s Style) WithPaddingAll(n int) Style {
	return s.WithPadding(EdgeAll(n))
}

// WithBorder returns a copy of s that shows a border of type t.
func (s Style) WithBorder(t BorderType) Style {
	s.Border = Border{Show: true, Type: t}
	return s
}

// WithoutBorder returns a copy of s with the border hidden.
func (s Style) WithoutBorder() Style {
	s.Border = Border{}
	return s
}

// Shrink insets area by the style's padding.
func (s Style) Shrink(area Rect) Rect {
	return area.Inset(s.Padding)
}

// ShrinkBorder insets area by one cell per side when the border is shown.
func (s Style) ShrinkBorder(area Rect) Rect {
	if !s.Border.Show {
		return area
	}
	return area.Inset(EdgeAll(1))
}
