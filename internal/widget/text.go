package widget

import (
	"strings"

	"github.com/atomicstack/scenetui/internal/canvas"
	"github.com/atomicstack/scenetui/internal/layout"
	"github.com/atomicstack/scenetui/internal/theme"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
)

// Text displays a block of text, word-wrapped to the available width.
type Text struct {
	content string
	style   *lipgloss.Style
	noWrap  bool
}

// NewText returns a wrapping text widget drawn in the theme's text style.
func NewText(content string) Text {
	return Text{content: content, style: theme.Default().Text}
}

// Content returns the raw text.
func (t Text) Content() string {
	return t.content
}

// WithContent returns a copy showing content.
func (t Text) WithContent(content string) Text {
	t.content = content
	return t
}

// WithStyle returns a copy drawn in style. A nil style draws unstyled.
func (t Text) WithStyle(style *lipgloss.Style) Text {
	t.style = style
	return t
}

// NoWrap returns a copy that truncates long lines instead of wrapping.
func (t Text) NoWrap() Text {
	t.noWrap = true
	return t
}

func (t Text) lines(width int) []string {
	if width <= 0 || t.content == "" {
		return nil
	}
	body := t.content
	if !t.noWrap {
		body = wordwrap.String(body, width)
	}
	lines := strings.Split(body, "\n")
	for i, line := range lines {
		// wordwrap leaves words longer than the limit intact.
		lines[i] = truncate.String(line, uint(width))
	}
	return lines
}

func (t Text) Render(f *canvas.Frame, area layout.Rect, style layout.Style) {
	inner := style.Shrink(area)
	for i, line := range t.lines(inner.Width) {
		if i >= inner.Height {
			break
		}
		f.Print(inner, inner.X, inner.Y+i, line, t.style)
	}
}

func (t Text) NodeStyleHint() (layout.Style, bool) {
	return layout.DefaultStyle().Column(), true
}

// ContentSize reports the extent of the wrapped text.
func (t Text) ContentSize(area layout.Rect) (int, int) {
	lines := t.lines(area.Width)
	width := 0
	for _, line := range lines {
		width = max(width, ansi.StringWidth(line))
	}
	return width, len(lines)
}
