package widget

import (
	"time"

	"github.com/atomicstack/scenetui/internal/canvas"
	"github.com/atomicstack/scenetui/internal/layout"
	"github.com/atomicstack/scenetui/internal/theme"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/x/ansi"
)

// Spinner animates a bubbles spinner frame set next to a label. The frame is
// derived from wall-clock time, so the owning loop's redraw cadence drives
// the animation without extra commands.
type Spinner struct {
	kind  spinner.Spinner
	label string
	start time.Time
	clock func() time.Time
}

// NewSpinner starts a dot spinner now.
func NewSpinner(label string) Spinner {
	return Spinner{kind: spinner.Dot, label: label, start: time.Now(), clock: time.Now}
}

// WithKind returns a copy using another bubbles frame set, e.g. spinner.Line.
func (s Spinner) WithKind(kind spinner.Spinner) Spinner {
	s.kind = kind
	return s
}

// WithClock returns a copy that reads time from clock.
func (s Spinner) WithClock(start time.Time, clock func() time.Time) Spinner {
	s.start, s.clock = start, clock
	return s
}

// FrameAt returns the glyph shown at instant t.
func (s Spinner) FrameAt(t time.Time) string {
	frames := s.kind.Frames
	if len(frames) == 0 {
		return ""
	}
	if s.kind.FPS <= 0 || t.Before(s.start) {
		return frames[0]
	}
	return frames[int(t.Sub(s.start)/s.kind.FPS)%len(frames)]
}

func (s Spinner) text() string {
	now := time.Now
	if s.clock != nil {
		now = s.clock
	}
	frame := s.FrameAt(now())
	if s.label == "" {
		return frame
	}
	return frame + " " + s.label
}

func (s Spinner) Render(f *canvas.Frame, area layout.Rect, style layout.Style) {
	inner := style.Shrink(area)
	f.Print(inner, inner.X, inner.Y, s.text(), theme.Default().Spinner)
}

func (s Spinner) NodeStyleHint() (layout.Style, bool) {
	return layout.DefaultStyle().Row(), true
}

func (s Spinner) ContentSize(area layout.Rect) (int, int) {
	return ansi.StringWidth(s.text()), 1
}
