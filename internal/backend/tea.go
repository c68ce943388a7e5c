package backend

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/atomicstack/scenetui/internal/canvas"
	"github.com/atomicstack/scenetui/internal/event"
	"github.com/atomicstack/scenetui/internal/logging/events"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// MouseMode selects which pointer events the terminal reports.
type MouseMode int

const (
	// MouseAll reports presses, releases, wheel and every motion.
	MouseAll MouseMode = iota
	// MouseCell reports motion only while a button is held.
	MouseCell
	// MouseOff disables mouse reporting.
	MouseOff
)

var mouseModeNames = map[MouseMode]string{
	MouseAll:  "all",
	MouseCell: "cell",
	MouseOff:  "off",
}

func (m MouseMode) String() string {
	if name, ok := mouseModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("mouse(%d)", int(m))
}

// ParseMouseMode accepts "all", "cell" or "off".
func ParseMouseMode(s string) (MouseMode, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for mode, name := range mouseModeNames {
		if name == needle {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("unknown mouse mode %q (want all, cell or off)", s)
}

// DefaultInputCapacity bounds the raw input buffer between Bubble Tea and
// the owning loop.
const DefaultInputCapacity = 100

// TeaOptions configures a Tea backend.
type TeaOptions struct {
	AltScreen     bool
	Mouse         MouseMode
	InputCapacity int
	// Input and Output default to the process's stdin and stdout.
	Input  io.Reader
	Output io.Writer
}

// Tea drives the terminal through a Bubble Tea program: the program owns raw
// mode, the alternate screen, mouse reporting and restoring the terminal on
// exit. Decoded input is buffered for Poll; frames are presented through the
// program's View.
type Tea struct {
	program *tea.Program
	inputs  chan event.Input
	fd      int

	mu     sync.Mutex
	width  int
	height int
	sized  bool
}

// NewTea builds the program without starting it. Call Run to take over the
// terminal.
func NewTea(ctx context.Context, opts TeaOptions) *Tea {
	capacity := opts.InputCapacity
	if capacity <= 0 {
		capacity = DefaultInputCapacity
	}
	t := &Tea{
		inputs: make(chan event.Input, capacity),
		fd:     int(os.Stdout.Fd()),
	}

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	switch opts.Mouse {
	case MouseAll:
		progOpts = append(progOpts, tea.WithMouseAllMotion())
	case MouseCell:
		progOpts = append(progOpts, tea.WithMouseCellMotion())
	}
	if opts.Input != nil {
		progOpts = append(progOpts, tea.WithInput(opts.Input))
	}
	if opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Output))
		if f, ok := opts.Output.(*os.File); ok {
			t.fd = int(f.Fd())
		}
	}
	t.program = tea.NewProgram(&teaModel{backend: t}, progOpts...)
	return t
}

// Run blocks until the program exits. Cancellation of the context passed to
// NewTea is a normal exit.
func (t *Tea) Run() error {
	_, err := t.program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// Quit asks the program to restore the terminal and exit.
func (t *Tea) Quit() {
	t.program.Quit()
}

// Size implements Terminal. Until the program reports a window size, the
// output descriptor is queried directly.
func (t *Tea) Size() (int, int, error) {
	t.mu.Lock()
	if t.sized {
		w, h := t.width, t.height
		t.mu.Unlock()
		return w, h, nil
	}
	t.mu.Unlock()
	w, h, err := term.GetSize(t.fd)
	if err != nil {
		return 0, 0, fmt.Errorf("query terminal size: %w", err)
	}
	return w, h, nil
}

// Draw implements Terminal. It blocks until the program accepts the frame,
// or returns at once after the program has exited.
func (t *Tea) Draw(f *canvas.Frame) error {
	t.program.Send(frameMsg(f.String()))
	return nil
}

// Poll implements InputSource.
func (t *Tea) Poll() (event.Input, bool, error) {
	select {
	case in := <-t.inputs:
		return in, true, nil
	default:
		return nil, false, nil
	}
}

func (t *Tea) push(in event.Input) {
	select {
	case t.inputs <- in:
	default:
		events.Loop.EventDropped(fmt.Sprintf("%T", in))
	}
}

func (t *Tea) setSize(width, height int) {
	t.mu.Lock()
	t.width, t.height, t.sized = width, height, true
	t.mu.Unlock()
}

type frameMsg string

// teaModel is the Bubble Tea side of the backend. It holds no UI state of
// its own: it decodes input for the loop and shows the latest frame.
type teaModel struct {
	backend *Tea
	view    string
}

func (m *teaModel) Init() tea.Cmd {
	return nil
}

func (m *teaModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		m.view = string(msg)
	case tea.WindowSizeMsg:
		m.backend.setSize(msg.Width, msg.Height)
		m.backend.push(event.Resize{Width: msg.Width, Height: msg.Height})
	case tea.KeyMsg:
		m.backend.push(convertKey(msg))
	case tea.MouseMsg:
		m.backend.push(convertMouse(msg))
	}
	return m, nil
}

func (m *teaModel) View() string {
	return m.view
}

func convertKey(msg tea.KeyMsg) event.Key {
	key := event.Key{Name: msg.String()}
	if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
		key.Runes = append([]rune(nil), msg.Runes...)
	}
	if msg.Alt {
		key.Modifiers |= event.ModAlt
	}
	if strings.HasPrefix(strings.TrimPrefix(key.Name, "alt+"), "ctrl+") {
		key.Modifiers |= event.ModCtrl
	}
	if strings.Contains(key.Name, "shift+") {
		key.Modifiers |= event.ModShift
	}
	return key
}

func convertMouse(msg tea.MouseMsg) event.Mouse {
	m := event.Mouse{X: msg.X, Y: msg.Y}
	if msg.Shift {
		m.Modifiers |= event.ModShift
	}
	if msg.Alt {
		m.Modifiers |= event.ModAlt
	}
	if msg.Ctrl {
		m.Modifiers |= event.ModCtrl
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.Kind = event.MouseScrollUp
		return m
	case tea.MouseButtonWheelDown:
		m.Kind = event.MouseScrollDown
		return m
	case tea.MouseButtonWheelLeft:
		m.Kind = event.MouseScrollLeft
		return m
	case tea.MouseButtonWheelRight:
		m.Kind = event.MouseScrollRight
		return m
	case tea.MouseButtonLeft:
		m.Button = event.ButtonLeft
	case tea.MouseButtonMiddle:
		m.Button = event.ButtonMiddle
	case tea.MouseButtonRight:
		m.Button = event.ButtonRight
	}

	switch msg.Action {
	case tea.MouseActionPress:
		m.Kind = event.MouseDown
	case tea.MouseActionRelease:
		m.Kind = event.MouseUp
	default:
		if msg.Button == tea.MouseButtonNone {
			m.Kind = event.MouseMoved
		} else {
			m.Kind = event.MouseDrag
		}
	}
	return m
}
