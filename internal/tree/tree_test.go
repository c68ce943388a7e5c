package tree

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/atomicstack/scenetui/internal/canvas"
	"github.com/atomicstack/scenetui/internal/event"
	"github.com/atomicstack/scenetui/internal/layout"
	"github.com/atomicstack/scenetui/internal/logging"
	"github.com/atomicstack/scenetui/internal/widget"
)

// box fills its area with a rune and optionally reports a smaller content
// size.
type box struct {
	r        rune
	contentW int
	contentH int
}

func (b box) Render(f *canvas.Frame, area layout.Rect, style layout.Style) {
	f.Fill(area, b.r, nil)
}

type sizedBox struct{ box }

func (b sizedBox) ContentSize(layout.Rect) (int, int) {
	return b.contentW, b.contentH
}

func TestAddWidgetUnderMissingParentIsNoOp(t *testing.T) {
	tr := New()
	if err := tr.AddContainer(RootID, "col", layout.DefaultStyle()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := tr.AddWidget("nope", "a", box{r: 'a'}, nil)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(tr.Root().Children) != 1 || len(tr.Find("col").Children) != 0 {
		t.Fatalf("expected tree unchanged")
	}
	if tr.Find("a") != nil {
		t.Fatalf("expected no node a")
	}
}

func TestAddWidgetUsesStyleHintUnlessOverridden(t *testing.T) {
	tr := New()
	_ = tr.AddWidget(RootID, "spin", widget.NewSpinner("x"), nil)
	if got := tr.Find("spin").Style.Direction; got != layout.Row {
		t.Fatalf("expected spinner hint (row), got %s", got)
	}
	_ = tr.AddWidget(RootID, "plain", box{}, nil)
	if got := tr.Find("plain").Style; got != layout.DefaultStyle() {
		t.Fatalf("expected default style, got %+v", got)
	}
	override := layout.DefaultStyle().WithPaddingAll(2)
	_ = tr.AddWidget(RootID, "padded", widget.NewSpinner("x"), &override)
	if got := tr.Find("padded").Style; got != override {
		t.Fatalf("expected explicit style, got %+v", got)
	}
}

func TestContainerWidgetSplitIsPreserved(t *testing.T) {
	tr := New()
	_ = tr.AddWidget(RootID, "leaf", box{}, nil)
	if err := tr.AddContainer("leaf", "child", layout.DefaultStyle()); !errors.Is(err, ErrWidgetParent) {
		t.Fatalf("expected ErrWidgetParent, got %v", err)
	}
	_ = tr.AddContainer(RootID, "col", layout.DefaultStyle())
	_ = tr.AddWidget("col", "x", box{}, nil)
	if err := tr.UpdateWidget("col", box{}); !errors.Is(err, ErrHasChildren) {
		t.Fatalf("expected ErrHasChildren, got %v", err)
	}
	if err := tr.UpdateWidget("missing", box{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateStyleReplacesInPlace(t *testing.T) {
	tr := New()
	_ = tr.AddContainer(RootID, "c", layout.DefaultStyle())
	style := layout.DefaultStyle().Row().WithGap(1)
	if err := tr.UpdateStyle("c", style); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.Find("c").Style != style {
		t.Fatalf("expected style replaced")
	}
	if err := tr.UpdateStyle("missing", style); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRemoveChildRootClearsButKeepsRoot(t *testing.T) {
	tr := New()
	_ = tr.AddContainer(RootID, "col", layout.DefaultStyle())
	_ = tr.AddWidget("col", "a", box{}, nil)
	_ = tr.AddEventListener(RootID, event.Click, func(event.Context) {}, event.NextListenerID())
	_ = tr.AddEventListener("a", event.Click, func(event.Context) {}, event.NextListenerID())

	if err := tr.RemoveChild(RootID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	root := tr.Root()
	if root.ID != RootID || len(root.Children) != 0 || root.Widget != nil {
		t.Fatalf("expected empty root, got %+v", root)
	}
	if len(root.ListenerIDs(event.Click)) != 0 {
		t.Fatalf("expected root listeners cleared")
	}
	if tr.ListenerCount() != 0 {
		t.Fatalf("expected registry released, got %d", tr.ListenerCount())
	}
}

func TestRemoveChildOnlySearchesDirectChildren(t *testing.T) {
	tr := New()
	_ = tr.AddContainer(RootID, "col", layout.DefaultStyle())
	_ = tr.AddWidget("col", "deep", box{}, nil)

	if err := tr.RemoveChild("deep"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected direct-child removal to miss, got %v", err)
	}
	if tr.Find("deep") == nil {
		t.Fatalf("expected deep node to survive RemoveChild")
	}

	if err := tr.Remove("deep"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.Find("deep") != nil {
		t.Fatalf("expected Remove to delete nested node")
	}
	if err := tr.Remove("deep"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected second removal to miss, got %v", err)
	}
}

func TestRemoveChildKeepsSiblingOrder(t *testing.T) {
	tr := New()
	for _, id := range []string{"a", "b", "c"} {
		_ = tr.AddWidget(RootID, id, box{}, nil)
	}
	if err := tr.RemoveChild("b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var ids []string
	for _, child := range tr.Root().Children {
		ids = append(ids, child.ID)
	}
	if strings.Join(ids, ",") != "a,c" {
		t.Fatalf("unexpected children %v", ids)
	}
}

func TestLayoutSplitsColumnBetweenWidgets(t *testing.T) {
	tr := New()
	_ = tr.AddContainer(RootID, "col", layout.DefaultStyle().Column())
	_ = tr.AddWidget("col", "a", widget.NewText("a"), nil)
	_ = tr.AddWidget("col", "b", widget.NewText("b"), nil)

	tr.Layout(layout.NewRect(0, 0, 80, 24))

	col := tr.Find("col")
	a, b := tr.Find("a"), tr.Find("b")
	half := col.Area.Height / 2
	if diff := a.Area.Height - half; diff < -1 || diff > 1 {
		t.Fatalf("expected a to take half of %d, got %d", col.Area.Height, a.Area.Height)
	}
	if diff := b.Area.Height - half; diff < -1 || diff > 1 {
		t.Fatalf("expected b to take half of %d, got %d", col.Area.Height, b.Area.Height)
	}
	if a.Area.Y >= b.Area.Y {
		t.Fatalf("expected a above b, got a=%+v b=%+v", a.Area, b.Area)
	}
	if a.Area.Width != 80 || b.Area.Width != 80 {
		t.Fatalf("expected full width, got %d and %d", a.Area.Width, b.Area.Width)
	}
}

func TestLayoutContentAreaFromWidgetMeasurement(t *testing.T) {
	tr := New()
	padded := layout.DefaultStyle().WithPadding(layout.EdgeTRBL(1, 0, 0, 2))
	_ = tr.AddWidget(RootID, "w", sizedBox{box{contentW: 3, contentH: 1}}, &padded)
	_ = tr.AddContainer(RootID, "c", layout.DefaultStyle())
	tr.Layout(layout.NewRect(0, 0, 10, 10))

	w := tr.Find("w")
	want := layout.NewRect(0, 0, 5, 2)
	if w.ContentArea != want {
		t.Fatalf("expected content area %+v, got %+v", want, w.ContentArea)
	}
	if c := tr.Find("c"); c.ContentArea != c.Area {
		t.Fatalf("expected container content area to equal area")
	}
}

func TestFindWidgetAt(t *testing.T) {
	tr := New()
	_ = tr.AddContainer(RootID, "row", layout.DefaultStyle().Row())
	_ = tr.AddContainer("row", "left", layout.DefaultStyle())
	_ = tr.AddWidget("left", "btn", sizedBox{box{contentW: 4, contentH: 1}}, nil)
	_ = tr.AddWidget("row", "fill", box{}, nil)
	tr.Layout(layout.NewRect(0, 0, 20, 10))

	cases := []struct {
		name string
		x, y int
		want string
		ok   bool
	}{
		{"inside content", 1, 0, "btn", true},
		{"outside content falls back to container", 8, 5, "left", true},
		{"fill widget", 15, 3, "fill", true},
		{"outside root", 25, 3, "", false},
		{"negative", -1, 0, "", false},
	}
	for _, tc := range cases {
		id, ok := tr.FindWidgetAt(tc.x, tc.y)
		if ok != tc.ok || id != tc.want {
			t.Fatalf("%s: expected (%q,%v), got (%q,%v)", tc.name, tc.want, tc.ok, id, ok)
		}
	}
}

func TestDuplicateIDsResolveToFirstPreOrderMatch(t *testing.T) {
	tr := New()
	_ = tr.AddContainer(RootID, "dup", layout.DefaultStyle())
	_ = tr.AddContainer(RootID, "dup", layout.DefaultStyle().Row())
	_ = tr.AddWidget("dup", "child", box{}, nil)
	if got := len(tr.Root().Children[0].Children); got != 1 {
		t.Fatalf("expected child under the first dup, got %d", got)
	}
}

func TestListenerRemovalIsGlobal(t *testing.T) {
	tr := New()
	_ = tr.AddContainer(RootID, "a", layout.DefaultStyle())
	_ = tr.AddContainer(RootID, "b", layout.DefaultStyle())

	calls := 0
	id := event.NextListenerID()
	listener := func(event.Context) { calls++ }
	_ = tr.AddEventListener("a", event.Click, listener, id)
	_ = tr.AddEventListener("b", event.Click, listener, id)
	if tr.ListenerCount() != 1 {
		t.Fatalf("expected one shared registration, got %d", tr.ListenerCount())
	}

	tr.TriggerEvent(tr.Find("a"), event.Context{Type: event.Click, TargetID: "a"})
	tr.TriggerEvent(tr.Find("b"), event.Context{Type: event.Click, TargetID: "b"})
	if calls != 2 {
		t.Fatalf("expected 2 calls before removal, got %d", calls)
	}

	tr.RemoveEventListener(id)
	tr.TriggerEvent(tr.Find("a"), event.Context{Type: event.Click, TargetID: "a"})
	tr.TriggerEvent(tr.Find("b"), event.Context{Type: event.Click, TargetID: "b"})
	if calls != 2 {
		t.Fatalf("expected no calls after removal, got %d", calls)
	}
	if len(tr.Find("a").ListenerIDs(event.Click)) != 0 || len(tr.Find("b").ListenerIDs(event.Click)) != 0 {
		t.Fatalf("expected node references dropped")
	}
}

func TestTriggerEventOrderAndTypeFiltering(t *testing.T) {
	tr := New()
	var order []string
	_ = tr.AddEventListener(RootID, event.Click, func(event.Context) { order = append(order, "first") }, event.NextListenerID())
	_ = tr.AddEventListener(RootID, event.Hover, func(event.Context) { order = append(order, "hover") }, event.NextListenerID())
	_ = tr.AddEventListener(RootID, event.Click, func(event.Context) { order = append(order, "second") }, event.NextListenerID())

	fired := tr.TriggerEvent(tr.Root(), event.Context{Type: event.Click})
	if fired != 2 || strings.Join(order, ",") != "first,second" {
		t.Fatalf("expected click listeners in order, got %v (fired %d)", order, fired)
	}
}

func TestTriggerEventSurvivesPanickingListener(t *testing.T) {
	var logged bytes.Buffer
	logging.SetOutput(&logged)
	t.Cleanup(func() { logging.SetOutput(nil) })

	tr := New()
	ran := false
	_ = tr.AddEventListener(RootID, event.Click, func(event.Context) { panic("boom") }, event.NextListenerID())
	_ = tr.AddEventListener(RootID, event.Click, func(event.Context) { ran = true }, event.NextListenerID())

	fired := tr.TriggerEvent(tr.Root(), event.Context{Type: event.Click})
	if !ran || fired != 1 {
		t.Fatalf("expected second listener to run after a panic, ran=%v fired=%d", ran, fired)
	}
	if !strings.Contains(logged.String(), "panic: boom") {
		t.Fatalf("expected panic to be logged, got %q", logged.String())
	}
}

func TestAddEventListenerMissingTarget(t *testing.T) {
	tr := New()
	if err := tr.AddEventListener("ghost", event.Click, func(event.Context) {}, event.NextListenerID()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if tr.ListenerCount() != 0 {
		t.Fatalf("expected no registration for a missing target")
	}
}

func TestRemovingSubtreeReleasesOnlyUnsharedListeners(t *testing.T) {
	tr := New()
	_ = tr.AddContainer(RootID, "keep", layout.DefaultStyle())
	_ = tr.AddContainer(RootID, "drop", layout.DefaultStyle())
	shared := event.NextListenerID()
	private := event.NextListenerID()
	_ = tr.AddEventListener("keep", event.Click, func(event.Context) {}, shared)
	_ = tr.AddEventListener("drop", event.Click, func(event.Context) {}, shared)
	_ = tr.AddEventListener("drop", event.Hover, func(event.Context) {}, private)

	if err := tr.Remove("drop"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tr.ListenerCount() != 1 {
		t.Fatalf("expected only the shared listener to remain, got %d", tr.ListenerCount())
	}
	if fired := tr.TriggerEvent(tr.Find("keep"), event.Context{Type: event.Click}); fired != 1 {
		t.Fatalf("expected shared listener to still fire, got %d", fired)
	}
}

func TestRenderPaintsParentBeforeChildren(t *testing.T) {
	tr := New()
	_ = tr.UpdateStyle(RootID, layout.DefaultStyle().WithBorder(layout.BorderPlain))
	_ = tr.AddWidget(RootID, "fill", box{r: '#'}, nil)
	tr.Layout(layout.NewRect(0, 0, 4, 3))

	f := canvas.New(4, 3)
	tr.Render(f)
	want := []string{"┌──┐", "│##│", "└──┘"}
	for y, line := range want {
		if got := f.Line(y); got != line {
			t.Fatalf("row %d: expected %q, got %q", y, line, got)
		}
	}
}

func TestPathToNode(t *testing.T) {
	tr := New()
	_ = tr.AddContainer(RootID, "a", layout.DefaultStyle())
	_ = tr.AddContainer("a", "b", layout.DefaultStyle())
	path := tr.Path("b")
	if len(path) != 3 || path[0].ID != RootID || path[2].ID != "b" {
		t.Fatalf("unexpected path %v", path)
	}
	if tr.Path("ghost") != nil {
		t.Fatalf("expected nil path for missing node")
	}
}
