package widget

import (
	"strings"

	"github.com/atomicstack/scenetui/internal/canvas"
	"github.com/atomicstack/scenetui/internal/layout"
	"github.com/atomicstack/scenetui/internal/theme"
	"github.com/charmbracelet/x/ansi"
)

type Alignment int

const (
	AlignLeft Alignment = iota
	AlignRight
)

// Table draws rows with columns padded to the widest cell.
type Table struct {
	header     []string
	rows       [][]string
	alignments []Alignment
}

// NewTable returns a table with an optional header row.
func NewTable(header []string, rows [][]string, alignments ...Alignment) Table {
	return Table{header: header, rows: rows, alignments: alignments}
}

func (t Table) lines() []string {
	all := make([][]string, 0, len(t.rows)+1)
	if len(t.header) > 0 {
		all = append(all, t.header)
	}
	all = append(all, t.rows...)
	return FormatRows(all, t.alignments)
}

func (t Table) Render(f *canvas.Frame, area layout.Rect, style layout.Style) {
	inner := style.Shrink(area)
	styles := theme.Default()
	for i, line := range t.lines() {
		if i >= inner.Height {
			break
		}
		lineStyle := styles.Text
		if i == 0 && len(t.header) > 0 {
			lineStyle = styles.TableHeader
		}
		f.Print(inner, inner.X, inner.Y+i, line, lineStyle)
	}
}

func (t Table) ContentSize(area layout.Rect) (int, int) {
	lines := t.lines()
	width := 0
	for _, line := range lines {
		width = max(width, ansi.StringWidth(line))
	}
	return width, len(lines)
}

// FormatRows returns the rows padded according to the widest entry in each
// column. Rows may be ragged; missing cells are treated as empty.
func FormatRows(rows [][]string, alignments []Alignment) []string {
	if len(rows) == 0 {
		return nil
	}
	colCount := 0
	for _, row := range rows {
		colCount = max(colCount, len(row))
	}
	widths := make([]int, colCount)
	for _, row := range rows {
		for c, cell := range row {
			widths[c] = max(widths[c], ansi.StringWidth(cell))
		}
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for c, cell := range row {
			if c > 0 {
				b.WriteString("  ")
			}
			pad := strings.Repeat(" ", max(widths[c]-ansi.StringWidth(cell), 0))
			if c < len(alignments) && alignments[c] == AlignRight {
				b.WriteString(pad)
				b.WriteString(cell)
			} else {
				b.WriteString(cell)
				b.WriteString(pad)
			}
		}
		out[i] = b.String()
	}
	return out
}
