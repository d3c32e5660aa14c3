package ebitenhost

import "github.com/phanxgames/knobs"

type eventKind uint8

const (
	eventPointer eventKind = iota
	eventChars
	eventKey
)

// syntheticEvent represents a single injected input event. Pointer events
// use screen coordinates, identical to real mouse input. Char and key
// events keep the pointer where it was.
type syntheticEvent struct {
	kind    eventKind
	x, y    float64
	pressed bool
	button  knobs.MouseButton
	mods    KeyModifiers
	chars   []rune
	key     Key
}

// InjectPress queues a pointer press event at the given screen coordinates
// (left button). The event is consumed on the next Update.
func (c *Context) InjectPress(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticEvent{
		x: x, y: y,
		pressed: true,
		button:  knobs.MouseButtonLeft,
	})
}

// InjectMove queues a pointer move event at the given screen coordinates
// with the button held down. Use this between InjectPress and InjectRelease
// to simulate a drag.
func (c *Context) InjectMove(x, y float64) {
	c.InjectPress(x, y)
}

// InjectHover queues a pointer move with no button held.
func (c *Context) InjectHover(x, y float64) {
	c.InjectRelease(x, y)
}

// InjectRelease queues a pointer release event at the given screen coordinates.
func (c *Context) InjectRelease(x, y float64) {
	c.injectQueue = append(c.injectQueue, syntheticEvent{
		x: x, y: y,
		pressed: false,
		button:  knobs.MouseButtonLeft,
	})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same screen coordinates. Consumes two frames.
func (c *Context) InjectClick(x, y float64) {
	c.InjectPress(x, y)
	c.InjectRelease(x, y)
}

// InjectClickWithModifiers queues a click with modifier keys held on the
// press frame, e.g. ModCtrl to open a drag field for typing.
func (c *Context) InjectClickWithModifiers(x, y float64, mods KeyModifiers) {
	c.injectQueue = append(c.injectQueue, syntheticEvent{
		x: x, y: y,
		pressed: true,
		button:  knobs.MouseButtonLeft,
		mods:    mods,
	})
	c.InjectRelease(x, y)
}

// InjectDoubleClick queues two clicks at the same point. Consumes four
// frames, well inside the default double-click time.
func (c *Context) InjectDoubleClick(x, y float64) {
	c.InjectClick(x, y)
	c.InjectClick(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and
// release at (toX, toY). The total sequence consumes `frames` frames.
// Minimum frames is 2 (press + release).
func (c *Context) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	c.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		c.InjectMove(x, y)
	}
	c.InjectRelease(toX, toY)
}

// injectTurn queues a vertical drag on a knob: press at p, move up by
// pixels in equal parts, and release where the last move ended, so every
// pixel of the motion reaches the knob while it is held. frames >= 3.
func (c *Context) injectTurn(p knobs.Vec2, pixels float64, frames int) {
	c.InjectPress(p.X, p.Y)
	moves := frames - 2
	for i := 1; i <= moves; i++ {
		c.InjectMove(p.X, p.Y-pixels*float64(i)/float64(moves))
	}
	c.InjectRelease(p.X, p.Y-pixels)
}

// InjectChars queues typed text as one frame of character input.
func (c *Context) InjectChars(s string) {
	c.injectQueue = append(c.injectQueue, syntheticEvent{
		kind:  eventChars,
		chars: []rune(s),
	})
}

// InjectKey queues one frame with key just pressed.
func (c *Context) InjectKey(k Key) {
	c.injectQueue = append(c.injectQueue, syntheticEvent{
		kind: eventKey,
		key:  k,
	})
}

// Pending returns the number of queued synthetic events.
func (c *Context) Pending() int { return len(c.injectQueue) }

// processInjectedInput pops one event from the inject queue and turns it
// into this frame's input. Returns true if an event was consumed (real
// input should be skipped).
func (c *Context) processInjectedInput() bool {
	if len(c.injectQueue) == 0 {
		return false
	}
	evt := c.injectQueue[0]
	copy(c.injectQueue, c.injectQueue[1:])
	c.injectQueue = c.injectQueue[:len(c.injectQueue)-1]

	in := &c.in
	in.mods = evt.mods
	in.chars = in.chars[:0]
	in.keys = in.keys[:0]
	switch evt.kind {
	case eventPointer:
		in.x, in.y = evt.x, evt.y
		in.buttons = [numButtons]bool{}
		in.buttons[evt.button] = evt.pressed
	case eventChars:
		in.chars = append(in.chars, evt.chars...)
	case eventKey:
		in.keys = append(in.keys, evt.key)
	}
	return true
}
