package widget

import (
	"fmt"
	"strings"

	"github.com/atomicstack/scenetui/internal/canvas"
	"github.com/atomicstack/scenetui/internal/layout"
	"github.com/atomicstack/scenetui/internal/theme"
	"github.com/charmbracelet/x/ansi"
	"github.com/lithammer/fuzzysearch/fuzzy"
)

const (
	listIndicator         = "  "
	listSelectedIndicator = "› "
)

// Item is one entry of a List.
type Item struct {
	ID    string
	Label string
}

// List shows items narrowed by a fuzzy filter, with one highlighted row.
// Cursor indexes the filtered items.
type List struct {
	full   []Item
	items  []Item
	filter string
	cursor int
}

// NewList returns an unfiltered list with the cursor on the first item.
func NewList(items []Item) List {
	l := List{full: cloneItems(items)}
	l.items = FilterItems(l.full, "")
	return l
}

// Items returns the filtered items in display order.
func (l List) Items() []Item {
	return cloneItems(l.items)
}

// Filter returns the active query.
func (l List) Filter() string {
	return l.filter
}

// Cursor returns the highlighted index into Items.
func (l List) Cursor() int {
	return l.cursor
}

// WithFilter returns a copy narrowed to query. The cursor moves to the best
// match.
func (l List) WithFilter(query string) List {
	l.filter = query
	l.items = FilterItems(l.full, query)
	l.cursor = max(BestMatchIndex(l.items, query), 0)
	return l
}

// WithCursor returns a copy with the cursor clamped into range.
func (l List) WithCursor(cursor int) List {
	l.cursor = l.clampCursor(cursor)
	return l
}

// MoveCursor returns a copy with the cursor moved by delta.
func (l List) MoveCursor(delta int) List {
	return l.WithCursor(l.cursor + delta)
}

func (l List) clampCursor(cursor int) int {
	if len(l.items) == 0 || cursor < 0 {
		return 0
	}
	return min(cursor, len(l.items)-1)
}

// Selected returns the highlighted item.
func (l List) Selected() (Item, bool) {
	if len(l.items) == 0 {
		return Item{}, false
	}
	return l.items[l.cursor], true
}

func (l List) emptyMessage() string {
	if strings.TrimSpace(l.filter) != "" {
		return fmt.Sprintf("No matches for %q", l.filter)
	}
	return "(no entries)"
}

// viewportOffset keeps the cursor inside a window of height rows.
func (l List) viewportOffset(height int) int {
	if height <= 0 || l.cursor < height {
		return 0
	}
	return l.cursor - height + 1
}

func (l List) Render(f *canvas.Frame, area layout.Rect, style layout.Style) {
	inner := style.Shrink(area)
	if inner.IsEmpty() {
		return
	}
	styles := theme.Default()
	if len(l.items) == 0 {
		f.Print(inner, inner.X, inner.Y, l.emptyMessage(), styles.Placeholder)
		return
	}
	offset := l.viewportOffset(inner.Height)
	for row := 0; row < inner.Height && offset+row < len(l.items); row++ {
		idx := offset + row
		prefix, lineStyle := listIndicator, styles.Item
		if idx == l.cursor {
			prefix, lineStyle = listSelectedIndicator, styles.SelectedItem
		}
		f.Print(inner, inner.X, inner.Y+row, prefix+l.items[idx].Label, lineStyle)
	}
}

func (l List) ContentSize(area layout.Rect) (int, int) {
	if len(l.items) == 0 {
		return ansi.StringWidth(l.emptyMessage()), 1
	}
	width := 0
	for _, item := range l.items {
		width = max(width, ansi.StringWidth(listIndicator+item.Label))
	}
	return width, len(l.items)
}

// FilterItems returns the items matching query, in their original order.
// Fuzzy matching on labels is tried first, then a substring match on labels
// and IDs.
func FilterItems(items []Item, query string) []Item {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return cloneItems(items)
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) > 0 {
		matches := make(map[int]struct{}, len(ranks))
		for _, rank := range ranks {
			matches[rank.OriginalIndex] = struct{}{}
		}
		filtered := make([]Item, 0, len(matches))
		for idx, item := range items {
			if _, ok := matches[idx]; ok {
				filtered = append(filtered, item)
			}
		}
		return filtered
	}
	lower := strings.ToLower(trimmed)
	filtered := make([]Item, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Label), lower) || strings.Contains(strings.ToLower(item.ID), lower) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

// BestMatchIndex picks the item the cursor should land on for query:
// exact match, then label prefix, then the closest fuzzy match.
func BestMatchIndex(items []Item, query string) int {
	if len(items) == 0 {
		return -1
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return 0
	}
	for i, item := range items {
		if strings.EqualFold(item.Label, trimmed) || strings.EqualFold(item.ID, trimmed) {
			return i
		}
	}
	lower := strings.ToLower(trimmed)
	for i, item := range items {
		if strings.HasPrefix(strings.ToLower(item.Label), lower) {
			return i
		}
	}
	labels := make([]string, len(items))
	for i, item := range items {
		labels[i] = item.Label
	}
	ranks := fuzzy.RankFindNormalizedFold(trimmed, labels)
	if len(ranks) == 0 {
		return 0
	}
	best := ranks[0]
	for _, rank := range ranks[1:] {
		if rank.Distance < best.Distance ||
			(rank.Distance == best.Distance && rank.OriginalIndex < best.OriginalIndex) {
			best = rank
		}
	}
	return best.OriginalIndex
}

func cloneItems(items []Item) []Item {
	dup := make([]Item, len(items))
	copy(dup, items)
	return dup
}
