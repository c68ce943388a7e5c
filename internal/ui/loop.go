package ui

import (
	"fmt"
	"time"

	"github.com/atomicstack/scenetui/internal/backend"
	"github.com/atomicstack/scenetui/internal/canvas"
	"github.com/atomicstack/scenetui/internal/dispatcher"
	"github.com/atomicstack/scenetui/internal/event"
	"github.com/atomicstack/scenetui/internal/logging"
	"github.com/atomicstack/scenetui/internal/logging/events"
	"github.com/atomicstack/scenetui/internal/tree"
	"github.com/atomicstack/scenetui/internal/ui/command"
)

const (
	// DefaultFrameInterval paces the loop at roughly 60 frames a second.
	DefaultFrameInterval = 16 * time.Millisecond
	// DefaultEventCapacity bounds the raw input channel handed to callers.
	DefaultEventCapacity = 100
)

// Options configures a Loop. Zero values select the defaults, except
// FrameInterval where a negative value disables pacing.
type Options struct {
	FrameInterval time.Duration
	QueueSize     int
	EventCapacity int
	Bubbling      bool
}

func (o Options) withDefaults() Options {
	if o.FrameInterval == 0 {
		o.FrameInterval = DefaultFrameInterval
	}
	if o.QueueSize <= 0 {
		o.QueueSize = command.DefaultCapacity
	}
	if o.EventCapacity <= 0 {
		o.EventCapacity = DefaultEventCapacity
	}
	return o
}

// Loop is the single owner of the tree.
type Loop struct {
	tree       *tree.Tree
	dispatcher *dispatcher.Dispatcher
	bus        *command.Bus
	terminal   backend.Terminal
	input      backend.InputSource
	throttle   *backend.Throttle
	out        chan event.Input
	frame      *canvas.Frame

	frames  uint64
	stopped bool
}

// New builds a loop drawing to terminal and reading input, and the Document
// that controls it. Nothing runs until Run or Step is called.
func New(terminal backend.Terminal, input backend.InputSource, opts Options) (*Loop, *Document) {
	opts = opts.withDefaults()
	t := tree.New()
	var dispatchOpts []dispatcher.Option
	if opts.Bubbling {
		dispatchOpts = append(dispatchOpts, dispatcher.WithBubbling())
	}
	l := &Loop{
		tree:       t,
		dispatcher: dispatcher.New(t, dispatchOpts...),
		bus:        command.New(opts.QueueSize),
		terminal:   terminal,
		input:      input,
		throttle:   backend.NewThrottle(opts.FrameInterval),
		out:        make(chan event.Input, opts.EventCapacity),
		frame:      canvas.New(0, 0),
	}
	return l, newDocument(l.bus, l.out)
}

// Run iterates until the Document is closed. The Events channel is closed
// before Run returns.
func (l *Loop) Run() error {
	events.Loop.Started(l.throttle.Interval().String(), cap(l.out))
	for {
		l.throttle.Wait()
		if !l.Step() {
			return nil
		}
	}
}

// Step runs one iteration without pacing. It reports false once the
// Document has been closed and the queued commands are applied.
func (l *Loop) Step() bool {
	if l.stopped {
		return false
	}
	if !l.drainCommands() {
		l.stop()
		return false
	}
	l.pollInput()
	l.renderFrame()
	l.frames++
	return true
}

// Tree exposes the loop's tree. Only the loop goroutine may touch it.
func (l *Loop) Tree() *tree.Tree {
	return l.tree
}

// Frames reports how many iterations have completed.
func (l *Loop) Frames() uint64 {
	return l.frames
}

func (l *Loop) stop() {
	l.stopped = true
	close(l.out)
	events.Loop.Stopped(l.frames)
}

func (l *Loop) drainCommands() bool {
	for {
		select {
		case cmd, ok := <-l.bus.Commands():
			if !ok {
				return false
			}
			if err := cmd.Apply(l.tree); err == nil {
				events.Command.Applied(cmd.Name(), cmd.Target())
			}
		default:
			return true
		}
	}
}

func (l *Loop) pollInput() {
	if l.input == nil {
		return
	}
	for {
		in, ok, err := l.input.Poll()
		if err != nil {
			events.Loop.InputError(err)
			logging.Error(fmt.Errorf("poll input: %w", err))
			return
		}
		if !ok {
			return
		}
		l.forward(in)
		if _, isMouse := in.(event.Mouse); isMouse {
			l.dispatcher.Handle(in)
		}
	}
}

// forward hands in to the caller without blocking. A caller that does not
// keep up loses events.
func (l *Loop) forward(in event.Input) {
	select {
	case l.out <- in:
	default:
		events.Loop.EventDropped(fmt.Sprintf("%T", in))
	}
}

func (l *Loop) renderFrame() {
	if l.terminal == nil {
		return
	}
	width, height, err := l.terminal.Size()
	if err != nil {
		l.frameError("size", err)
		return
	}
	if width != l.frame.Width() || height != l.frame.Height() {
		l.frame.Resize(width, height)
	} else {
		l.frame.Clear()
	}
	l.tree.Layout(l.frame.Bounds())
	l.tree.Render(l.frame)
	if err := l.terminal.Draw(l.frame); err != nil {
		l.frameError("draw", err)
	}
}

func (l *Loop) frameError(stage string, err error) {
	events.Loop.FrameError(stage, err)
	logging.Error(fmt.Errorf("%s: %w", stage, err))
}
