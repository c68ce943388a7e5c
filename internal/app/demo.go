package app

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/atomicstack/scenetui/internal/event"
	"github.com/atomicstack/scenetui/internal/layout"
	"github.com/atomicstack/scenetui/internal/logging"
	"github.com/atomicstack/scenetui/internal/ui"
	"github.com/atomicstack/scenetui/internal/widget"
)

var fruits = []struct {
	name, colour, kcal string
}{
	{"apple", "red", "52"},
	{"banana", "yellow", "89"},
	{"cherry", "red", "50"},
	{"damson", "purple", "46"},
	{"elderberry", "black", "73"},
	{"fig", "purple", "74"},
	{"grape", "green", "69"},
}

// Run bootstraps the terminal, builds the demo scene and serves it until the
// user quits or ctx is cancelled.
func Run(ctx context.Context, cfg Config) error {
	session := Start(ctx, cfg)
	d := newDemo(session.Document())
	if err := d.build(); err != nil {
		session.Quit()
		_ = session.Wait()
		return fmt.Errorf("build scene: %w", err)
	}
	for in := range session.Document().Events() {
		if key, ok := in.(event.Key); ok && d.handleKey(key) {
			session.Quit()
		}
	}
	return session.Wait()
}

// demo owns the mutable widget state. Keys arrive on the Run goroutine and
// listeners on the loop goroutine, so access goes through mu.
type demo struct {
	doc *ui.Document

	mu     sync.Mutex
	list   widget.List
	status string
}

func newDemo(doc *ui.Document) *demo {
	items := make([]widget.Item, 0, len(fruits))
	for _, f := range fruits {
		items = append(items, widget.Item{ID: f.name, Label: f.name})
	}
	return &demo{doc: doc, list: widget.NewList(items), status: "type to filter, scroll or click the list, q to quit"}
}

func (d *demo) build() error {
	root := d.doc.Root()
	if err := root.Restyle(layout.DefaultStyle().WithBorder(layout.BorderRounded)); err != nil {
		return err
	}

	top, err := root.AddContainer("top", layout.DefaultStyle().Row().WithPadding(layout.EdgeTRBL(0, 1, 0, 1)))
	if err != nil {
		return err
	}
	if _, err := top.AddWidget("title", widget.NewText("scenetui demo").NoWrap()); err != nil {
		return err
	}
	if _, err := top.AddWidget("spinner", widget.NewSpinner("live")); err != nil {
		return err
	}

	body, err := root.AddContainer("body", layout.DefaultStyle().Row().WithGap(1))
	if err != nil {
		return err
	}
	boxed := layout.DefaultStyle().WithBorder(layout.BorderPlain).WithPaddingAll(1)
	list, err := body.AddWidgetStyled("list", d.snapshot(), boxed)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(fruits))
	for _, f := range fruits {
		rows = append(rows, []string{f.name, f.colour, f.kcal})
	}
	table := widget.NewTable([]string{"fruit", "colour", "kcal"}, rows, widget.AlignLeft, widget.AlignLeft, widget.AlignRight)
	stats, err := body.AddWidgetStyled("stats", table, boxed)
	if err != nil {
		return err
	}

	if _, err := root.AddWidgetStyled("status", widget.NewText(d.status), layout.DefaultStyle().WithPadding(layout.EdgeTRBL(0, 1, 0, 1))); err != nil {
		return err
	}

	if _, err := list.On(event.Click, func(event.Context) { d.selectCurrent() }); err != nil {
		return err
	}
	scroll := func(ctx event.Context) { d.moveCursor(-ctx.ScrollDelta) }
	if _, err := list.On(event.ScrollUp, scroll); err != nil {
		return err
	}
	if _, err := list.On(event.ScrollDown, scroll); err != nil {
		return err
	}
	_, err = stats.On(event.Hover, func(ctx event.Context) {
		d.setStatus(fmt.Sprintf("table at %d,%d", ctx.X, ctx.Y))
	})
	return err
}

// handleKey applies a key press and reports whether the user asked to quit.
func (d *demo) handleKey(key event.Key) bool {
	d.mu.Lock()
	filter := d.list.Filter()
	d.mu.Unlock()

	switch key.Name {
	case "ctrl+c":
		return true
	case "q":
		if filter == "" {
			return true
		}
	case "up":
		d.moveCursor(-1)
		return false
	case "down":
		d.moveCursor(1)
		return false
	case "enter":
		d.selectCurrent()
		return false
	case "esc":
		d.setFilter("")
		return false
	case "backspace":
		if filter != "" {
			runes := []rune(filter)
			d.setFilter(string(runes[:len(runes)-1]))
		}
		return false
	}
	if len(key.Runes) > 0 && key.Modifiers == 0 {
		d.setFilter(filter + string(key.Runes))
	}
	return false
}

func (d *demo) snapshot() widget.List {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.list
}

func (d *demo) setFilter(query string) {
	d.mu.Lock()
	d.list = d.list.WithFilter(query)
	list := d.list
	d.mu.Unlock()
	d.send(d.doc.UpdateWidget("list", list))
	if query == "" {
		d.setStatus("filter cleared")
		return
	}
	d.setStatus(fmt.Sprintf("filter %q: %d match(es)", query, len(list.Items())))
}

func (d *demo) moveCursor(delta int) {
	d.mu.Lock()
	d.list = d.list.MoveCursor(delta)
	list := d.list
	d.mu.Unlock()
	d.send(d.doc.UpdateWidget("list", list))
}

func (d *demo) selectCurrent() {
	item, ok := d.snapshot().Selected()
	if !ok {
		d.setStatus("nothing to select")
		return
	}
	d.setStatus("selected " + strings.TrimSpace(item.Label))
}

func (d *demo) setStatus(text string) {
	d.mu.Lock()
	d.status = text
	d.mu.Unlock()
	d.send(d.doc.UpdateWidget("status", widget.NewText(text)))
}

func (d *demo) currentStatus() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.status
}

// send logs submissions the loop could not take. The next change resends
// the whole widget, so nothing is retried here.
func (d *demo) send(err error) {
	if err != nil {
		logging.Error(err)
	}
}
