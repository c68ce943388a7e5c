// Package canvas holds the cell grid nodes draw into during a frame.
package canvas

import (
	"strings"

	"github.com/atomicstack/scenetui/internal/layout"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

type cell struct {
	r     rune
	style int // index into Frame.styles; 0 means unstyled
	cont  bool
}

var blank = cell{r: ' '}

// Frame is a fixed-size grid of cells. Each Print call registers its style
// once, so contiguous output from one call renders as a single styled run.
type Frame struct {
	width, height int
	cells         []cell
	styles        []*lipgloss.Style
}

// New allocates a blank frame.
func New(width, height int) *Frame {
	f := &Frame{}
	f.Resize(width, height)
	return f
}

// Resize changes the frame dimensions and clears it.
func (f *Frame) Resize(width, height int) {
	f.width, f.height = max(width, 0), max(height, 0)
	if n := f.width * f.height; cap(f.cells) >= n {
		f.cells = f.cells[:n]
	} else {
		f.cells = make([]cell, n)
	}
	f.Clear()
}

// Clear blanks every cell and forgets registered styles.
func (f *Frame) Clear() {
	for i := range f.cells {
		f.cells[i] = blank
	}
	f.styles = f.styles[:0]
	f.styles = append(f.styles, nil)
}

func (f *Frame) Width() int  { return f.width }
func (f *Frame) Height() int { return f.height }

// Bounds returns the frame as a rectangle at the origin.
func (f *Frame) Bounds() layout.Rect {
	return layout.NewRect(0, 0, f.width, f.height)
}

func (f *Frame) registerStyle(style *lipgloss.Style) int {
	if style == nil {
		return 0
	}
	f.styles = append(f.styles, style)
	return len(f.styles) - 1
}

// Print writes s starting at (x, y), clipped to clip and the frame bounds.
// ANSI sequences in s are stripped; wide runes take two cells. It returns the
// number of columns consumed, including clipped ones.
func (f *Frame) Print(clip layout.Rect, x, y int, s string, style *lipgloss.Style) int {
	s = ansi.Strip(s)
	if y < clip.Y || y >= clip.Bottom() || y < 0 || y >= f.height {
		return ansi.StringWidth(s)
	}
	right := min(clip.Right(), f.width)
	idx := f.registerStyle(style)
	col := x
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			if r >= 0x20 {
				continue
			}
			r, w = ' ', 1
		}
		if col >= clip.X && col >= 0 && col+w <= right {
			i := y*f.width + col
			f.cells[i] = cell{r: r, style: idx}
			if w == 2 {
				f.cells[i+1] = cell{style: idx, cont: true}
			}
		} else if w == 2 && col+1 == right && col >= clip.X && col >= 0 {
			// Half of a wide rune would spill past the clip edge.
			f.cells[y*f.width+col] = cell{r: ' ', style: idx}
		}
		col += w
	}
	return col - x
}

// Fill sets every cell of area (clipped to the frame) to r.
func (f *Frame) Fill(area layout.Rect, r rune, style *lipgloss.Style) {
	idx := f.registerStyle(style)
	for y := max(area.Y, 0); y < min(area.Bottom(), f.height); y++ {
		for x := max(area.X, 0); x < min(area.Right(), f.width); x++ {
			f.cells[y*f.width+x] = cell{r: r, style: idx}
		}
	}
}

// DrawBorder outlines area with the glyphs of border. Areas smaller than
// 2x2 are left untouched.
func (f *Frame) DrawBorder(area layout.Rect, border lipgloss.Border, style *lipgloss.Style) {
	if area.Width < 2 || area.Height < 2 {
		return
	}
	left, top := area.X, area.Y
	right, bottom := area.Right()-1, area.Bottom()-1
	bounds := f.Bounds()

	horizontal := strings.Repeat(firstGlyph(border.Top), area.Width-2)
	f.Print(bounds, left+1, top, horizontal, style)
	horizontal = strings.Repeat(firstGlyph(border.Bottom), area.Width-2)
	f.Print(bounds, left+1, bottom, horizontal, style)
	for y := top + 1; y < bottom; y++ {
		f.Print(bounds, left, y, firstGlyph(border.Left), style)
		f.Print(bounds, right, y, firstGlyph(border.Right), style)
	}
	f.Print(bounds, left, top, firstGlyph(border.TopLeft), style)
	f.Print(bounds, right, top, firstGlyph(border.TopRight), style)
	f.Print(bounds, left, bottom, firstGlyph(border.BottomLeft), style)
	f.Print(bounds, right, bottom, firstGlyph(border.BottomRight), style)
}

func firstGlyph(s string) string {
	for _, r := range s {
		return string(r)
	}
	return " "
}

// Line returns row y without styling. Out-of-range rows are empty.
func (f *Frame) Line(y int) string {
	if y < 0 || y >= f.height {
		return ""
	}
	var b strings.Builder
	for _, c := range f.cells[y*f.width : (y+1)*f.width] {
		if !c.cont {
			b.WriteRune(c.r)
		}
	}
	return b.String()
}

// Plain returns every row without styling, joined by newlines.
func (f *Frame) Plain() string {
	lines := make([]string, f.height)
	for y := range lines {
		lines[y] = f.Line(y)
	}
	return strings.Join(lines, "\n")
}

// String renders the frame with each styled run passed through its
// lipgloss style.
func (f *Frame) String() string {
	var b strings.Builder
	var run strings.Builder
	for y := 0; y < f.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		current := -1
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if style := f.styles[current]; style != nil {
				b.WriteString(style.Render(run.String()))
			} else {
				b.WriteString(run.String())
			}
			run.Reset()
		}
		for _, c := range f.cells[y*f.width : (y+1)*f.width] {
			if c.cont {
				continue
			}
			if c.style != current {
				flush()
				current = c.style
			}
			run.WriteRune(c.r)
		}
		flush()
	}
	return b.String()
}
