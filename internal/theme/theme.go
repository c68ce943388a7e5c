package theme

import (
	"github.com/atomicstack/scenetui/internal/layout"
	"github.com/charmbracelet/lipgloss"
)

// Styles describes reusable Lip Gloss styles shared by the renderer and the
// bundled widgets.
type Styles struct {
	Border       *lipgloss.Style
	Text         *lipgloss.Style
	Item         *lipgloss.Style
	SelectedItem *lipgloss.Style
	Placeholder  *lipgloss.Style
	TableHeader  *lipgloss.Style
	Spinner      *lipgloss.Style
}

var defaultStyles = Styles{
	Border: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	),
	Text: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	Placeholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
	),
	TableHeader: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Spinner: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
	),
}

// Default exposes the standard style set.
func Default() *Styles {
	return &defaultStyles
}

// BorderGlyphs maps a layout border type onto its Lip Gloss glyph set.
func BorderGlyphs(t layout.BorderType) lipgloss.Border {
	switch t {
	case layout.BorderRounded:
		return lipgloss.RoundedBorder()
	case layout.BorderDouble:
		return lipgloss.DoubleBorder()
	case layout.BorderThick:
		return lipgloss.ThickBorder()
	default:
		return lipgloss.NormalBorder()
	}
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
