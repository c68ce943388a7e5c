package canvas

import (
	"strings"
	"testing"

	"github.com/atomicstack/scenetui/internal/layout"
	"github.com/charmbracelet/lipgloss"
)

func TestPrintClipsToArea(t *testing.T) {
	f := New(10, 2)
	f.Print(layout.NewRect(2, 0, 4, 1), 1, 0, "abcdefgh", nil)
	if got := f.Line(0); got != "  bcde    " {
		t.Fatalf("unexpected line %q", got)
	}
	if got := f.Line(1); got != strings.Repeat(" ", 10) {
		t.Fatalf("expected row outside clip untouched, got %q", got)
	}
}

func TestPrintStripsANSI(t *testing.T) {
	f := New(6, 1)
	f.Print(f.Bounds(), 0, 0, "\x1b[31mred\x1b[0m", nil)
	if got := f.Line(0); got != "red   " {
		t.Fatalf("unexpected line %q", got)
	}
}

func TestPrintWideRunes(t *testing.T) {
	f := New(5, 1)
	n := f.Print(f.Bounds(), 0, 0, "日本語", nil)
	if n != 6 {
		t.Fatalf("expected 6 columns consumed, got %d", n)
	}
	if got := f.Line(0); got != "日本 " {
		t.Fatalf("unexpected line %q", got)
	}
}

func TestDrawBorderUsesGlyphs(t *testing.T) {
	f := New(4, 3)
	f.DrawBorder(f.Bounds(), lipgloss.NormalBorder(), nil)
	want := []string{"┌──┐", "│  │", "└──┘"}
	for y, line := range want {
		if got := f.Line(y); got != line {
			t.Fatalf("row %d: expected %q, got %q", y, line, got)
		}
	}
}

func TestDrawBorderIgnoresTinyAreas(t *testing.T) {
	f := New(3, 3)
	f.DrawBorder(layout.NewRect(0, 0, 1, 3), lipgloss.NormalBorder(), nil)
	if strings.TrimSpace(f.Plain()) != "" {
		t.Fatalf("expected nothing drawn, got %q", f.Plain())
	}
}

func TestResizeClearsContent(t *testing.T) {
	f := New(3, 1)
	f.Fill(f.Bounds(), 'x', nil)
	f.Resize(2, 2)
	if got := f.Plain(); got != "  \n  " {
		t.Fatalf("expected blank frame, got %q", got)
	}
}

func TestStringKeepsTextOfStyledRuns(t *testing.T) {
	style := lipgloss.NewStyle().Bold(true)
	f := New(5, 1)
	f.Print(f.Bounds(), 0, 0, "ab", &style)
	f.Print(f.Bounds(), 2, 0, "cd", nil)
	if !strings.Contains(f.String(), "cd") || !strings.Contains(f.String(), "ab") {
		t.Fatalf("expected styled output to keep text, got %q", f.String())
	}
}
