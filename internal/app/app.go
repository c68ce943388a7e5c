package app

import (
	"context"
	"time"

	"github.com/atomicstack/scenetui/internal/backend"
	"github.com/atomicstack/scenetui/internal/ui"
	"golang.org/x/sync/errgroup"
)

// Config describes user-provided application options.
type Config struct {
	FrameInterval time.Duration
	QueueSize     int
	Mouse         backend.MouseMode
	AltScreen     bool
	Bubbling      bool
}

// Session is a running terminal UI: a Bubble Tea program owning the
// terminal and the loop owning the scene.
type Session struct {
	doc   *ui.Document
	group *errgroup.Group
}

// Start takes over the terminal and starts the loop. Cancelling ctx
// restores the terminal and stops both.
func Start(ctx context.Context, cfg Config) *Session {
	terminal := backend.NewTea(ctx, backend.TeaOptions{
		AltScreen: cfg.AltScreen,
		Mouse:     cfg.Mouse,
	})
	loop, doc := ui.New(terminal, terminal, ui.Options{
		FrameInterval: cfg.FrameInterval,
		QueueSize:     cfg.QueueSize,
		Bubbling:      cfg.Bubbling,
	})

	group := new(errgroup.Group)
	group.Go(func() error {
		// The program exiting on its own (context cancelled) ends the loop.
		defer doc.Close()
		return terminal.Run()
	})
	group.Go(func() error {
		defer terminal.Quit()
		return loop.Run()
	})
	return &Session{doc: doc, group: group}
}

// Document returns the handle used to build and mutate the scene.
func (s *Session) Document() *ui.Document {
	return s.doc
}

// Quit stops the loop and, through it, the terminal program.
func (s *Session) Quit() {
	s.doc.Close()
}

// Wait blocks until the terminal is restored and the loop has stopped.
func (s *Session) Wait() error {
	return s.group.Wait()
}
