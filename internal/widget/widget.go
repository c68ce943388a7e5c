// Package widget defines the capability a leaf node uses to draw and measure
// itself, along with a few stock widgets.
package widget

import (
	"github.com/atomicstack/scenetui/internal/canvas"
	"github.com/atomicstack/scenetui/internal/layout"
)

// Widget draws itself into area. style is the owning node's style; widgets
// use its padding to inset their content.
type Widget interface {
	Render(f *canvas.Frame, area layout.Rect, style layout.Style)
}

// StyleHinter is implemented by widgets that suggest a node style when the
// caller supplies none.
type StyleHinter interface {
	NodeStyleHint() (layout.Style, bool)
}

// ContentSizer is implemented by widgets whose drawn content is smaller than
// the area they are given. Widgets without it fill their area.
type ContentSizer interface {
	ContentSize(area layout.Rect) (width, height int)
}

// StyleHint returns the widget's suggested style, if any.
func StyleHint(w Widget) (layout.Style, bool) {
	if h, ok := w.(StyleHinter); ok {
		return h.NodeStyleHint()
	}
	return layout.Style{}, false
}

// EffectiveStyle returns the widget's hint or the default style.
func EffectiveStyle(w Widget) layout.Style {
	if style, ok := StyleHint(w); ok {
		return style
	}
	return layout.DefaultStyle()
}

// ContentSize measures w within area, clamped to the area's size.
func ContentSize(w Widget, area layout.Rect) (int, int) {
	s, ok := w.(ContentSizer)
	if !ok {
		return area.Width, area.Height
	}
	width, height := s.ContentSize(area)
	return clamp(width, area.Width), clamp(height, area.Height)
}

func clamp(v, limit int) int {
	return max(min(v, limit), 0)
}
