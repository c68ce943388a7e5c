// Package ui runs the scene graph. A Loop owns the tree on one goroutine;
// everything else talks to it through a Document.
//
// Each iteration of the loop:
//   - drains every queued command and applies it to the tree, in order;
//   - polls the input source until it has nothing pending, forwarding each
//     raw event to the Document's Events channel and dispatching mouse events
//     to the node under the pointer;
//   - queries the terminal size, lays the tree out, renders a frame and hands
//     it to the terminal;
//   - waits out the rest of the frame interval.
//
// Commands naming unknown nodes are dropped and traced. Terminal failures are
// logged and the loop carries on with the next frame. The loop stops only
// when the Document is closed, after applying whatever was already queued.
//
// Listeners run on the loop goroutine, between frames. They may submit
// commands through the Document; those take effect on the next iteration.
package ui
