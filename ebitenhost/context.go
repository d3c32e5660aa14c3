package ebitenhost

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/knobs"
)

// Context is an immediate-mode UI host on Ebitengine. It implements
// knobs.Host.
//
// Call Update at the start of the game's Update, issue widgets, and call
// Draw from the game's Draw. A Context must only be used from the goroutine
// that runs the game loop.
type Context struct {
	cfg  Config
	font *ttfFont

	source inputSource
	in     inputFrame
	frame  uint64
	now    time.Duration

	mouse   knobs.Vec2
	buttons [numButtons]buttonState
	mods    KeyModifiers
	chars   []rune
	keys    []Key

	// Item tracking. activeID survives across frames until release.
	activeID   string
	activeSeen bool
	lastItem   itemState
	seenIDs    map[string]struct{} // debug only
	itemRects  map[string]knobs.Rect

	// Layout.
	origin     knobs.Vec2
	cursor     knobs.Vec2 // relative to origin
	lineStartX float64
	itemWidths []float64
	columns    *columnState

	// Text entry.
	editID  string
	editBuf []rune

	// Per-frame output.
	recorder knobs.Recorder
	fields   []fieldFrame
	texts    []textItem

	injectQueue  []syntheticEvent
	testRunner   *TestRunner
	pendingShots []string
	shots        []Shot
}

var _ knobs.Host = (*Context)(nil)

type itemState struct {
	id      string
	rect    knobs.Rect
	hovered bool
	active  bool
}

type columnState struct {
	startX, startY float64
	width          float64
	count, index   int
	maxY           float64
}

// NewContext creates a host with the given configuration. Zero config fields
// use DefaultConfig values. It fails only if the font cannot be parsed.
func NewContext(cfg Config) (*Context, error) {
	cfg = cfg.withDefaults()
	font, err := loadFont(cfg.FontData, cfg.FontSize)
	if err != nil {
		return nil, err
	}
	c := &Context{
		cfg:    cfg,
		font:   font,
		source: &ebitenSource{},
		origin: knobs.Vec2{X: cfg.Padding, Y: cfg.Padding},

		itemRects: make(map[string]knobs.Rect),
	}
	if cfg.Debug {
		c.seenIDs = make(map[string]struct{})
	}
	return c, nil
}

// Config returns the effective configuration.
func (c *Context) Config() Config { return c.cfg }

// Update reads this frame's input and starts a new frame. Injected events
// take priority: while the inject queue is non-empty, one event is consumed
// per frame and real input is ignored.
func (c *Context) Update() {
	if c.testRunner != nil {
		c.testRunner.step(c)
	}
	if !c.processInjectedInput() {
		prev := c.in
		c.source.poll(&prev, &c.in)
	}
	c.beginFrame()
}

// tps returns the tick rate used to advance frame time.
func tps() int {
	if n := ebiten.TPS(); n > 0 {
		return n
	}
	return ebiten.DefaultTPS
}

func (c *Context) beginFrame() {
	c.frame++
	c.now = time.Duration(c.frame) * time.Second / time.Duration(tps())

	c.mouse = knobs.Vec2{X: c.in.x, Y: c.in.y}
	for i := range c.buttons {
		c.buttons[i].update(c.in.buttons[i], c.mouse, c.now, &c.cfg)
	}
	c.mods = c.in.mods
	c.chars = append(c.chars[:0], c.in.chars...)
	c.keys = append(c.keys[:0], c.in.keys...)

	// An active item that was not submitted last frame is gone.
	if c.activeID != "" && !c.activeSeen {
		c.activeID = ""
	}
	c.activeSeen = false
	c.lastItem = itemState{}
	clear(c.seenIDs)
	clear(c.itemRects)

	c.cursor = knobs.Vec2{}
	c.lineStartX = 0
	c.itemWidths = c.itemWidths[:0]
	c.columns = nil

	c.recorder.Reset()
	c.fields = c.fields[:0]
	c.texts = c.texts[:0]
}

// Frame returns the number of frames started so far.
func (c *Context) Frame() uint64 { return c.frame }

// MousePos returns the pointer position for this frame.
func (c *Context) MousePos() knobs.Vec2 { return c.mouse }

// DrawList implements knobs.Host. Commands are rasterized by Draw.
func (c *Context) DrawList() knobs.DrawList { return &c.recorder }

// Recorder exposes the commands recorded so far this frame.
func (c *Context) Recorder() *knobs.Recorder { return &c.recorder }

// ItemRect returns the screen rect of an item submitted this frame. Until
// the next Update it still answers for the frame just drawn.
func (c *Context) ItemRect(id string) (knobs.Rect, bool) {
	r, ok := c.itemRects[id]
	return r, ok
}

// --- Layout ---

// CursorScreenPos implements knobs.Layout.
func (c *Context) CursorScreenPos() knobs.Vec2 { return c.origin.Add(c.cursor) }

// SetCursorScreenPos moves the cursor to an absolute screen position. The
// next rows keep starting at the new x.
func (c *Context) SetCursorScreenPos(pos knobs.Vec2) {
	c.cursor = pos.Sub(c.origin)
	c.lineStartX = c.cursor.X
}

// CursorPos implements knobs.Layout.
func (c *Context) CursorPos() knobs.Vec2 { return c.cursor }

// SetCursorPos implements knobs.Layout.
func (c *Context) SetCursorPos(pos knobs.Vec2) { c.cursor = pos }

// PushItemWidth implements knobs.Layout.
func (c *Context) PushItemWidth(width float64) {
	c.itemWidths = append(c.itemWidths, width)
}

// PopItemWidth implements knobs.Layout. Panics without a matching push.
func (c *Context) PopItemWidth() {
	if len(c.itemWidths) == 0 {
		panic("ebitenhost: PopItemWidth without PushItemWidth")
	}
	c.itemWidths = c.itemWidths[:len(c.itemWidths)-1]
}

// itemWidth returns the pushed item width or a default of ten characters.
func (c *Context) itemWidth() float64 {
	if n := len(c.itemWidths); n > 0 {
		return c.itemWidths[n-1]
	}
	return c.cfg.FontSize * 10
}

// placeItem reserves size at the cursor and moves the cursor to the start
// of the next row. Returns the item rect in screen coordinates.
func (c *Context) placeItem(size knobs.Vec2) knobs.Rect {
	pos := c.CursorScreenPos()
	c.cursor = knobs.Vec2{X: c.lineStartX, Y: c.cursor.Y + size.Y + c.cfg.ItemSpacing}
	return knobs.Rect{X: pos.X, Y: pos.Y, Width: size.X, Height: size.Y}
}

// Columns splits the following items into count columns of the given
// width, starting at the cursor. Use NextColumn to move right and
// EndColumns to continue below the tallest column.
func (c *Context) Columns(count int, width float64) {
	if count < 1 {
		panic(fmt.Sprintf("ebitenhost: Columns(%d): count must be positive", count))
	}
	c.columns = &columnState{
		startX: c.cursor.X,
		startY: c.cursor.Y,
		width:  width,
		count:  count,
		maxY:   c.cursor.Y,
	}
	c.lineStartX = c.cursor.X
}

// NextColumn moves the cursor to the top of the next column, wrapping to a
// new row of columns after the last one.
func (c *Context) NextColumn() {
	col := c.columns
	if col == nil {
		panic("ebitenhost: NextColumn without Columns")
	}
	col.maxY = max(col.maxY, c.cursor.Y)
	col.index++
	if col.index == col.count {
		col.index = 0
		col.startY = col.maxY
	}
	c.lineStartX = col.startX + float64(col.index)*col.width
	c.cursor = knobs.Vec2{X: c.lineStartX, Y: col.startY}
}

// EndColumns closes the column set and moves below its tallest column.
func (c *Context) EndColumns() {
	col := c.columns
	if col == nil {
		panic("ebitenhost: EndColumns without Columns")
	}
	col.maxY = max(col.maxY, c.cursor.Y)
	c.lineStartX = col.startX
	c.cursor = knobs.Vec2{X: col.startX, Y: col.maxY}
	c.columns = nil
}

// --- Interaction ---

// buttonBehavior runs the hover/active state machine for an item occupying
// r. clicked is true on the frame the left button is released over the
// item that was pressed.
func (c *Context) buttonBehavior(id string, r knobs.Rect) (hovered, held, clicked bool) {
	c.debugCheckID(id)
	left := &c.buttons[knobs.MouseButtonLeft]

	hovered = r.Contains(c.mouse.X, c.mouse.Y) && (c.activeID == "" || c.activeID == id)
	if hovered && left.pressed {
		c.activeID = id
	}
	if c.activeID == id {
		c.activeSeen = true
		if !left.down {
			clicked = hovered
			c.activeID = ""
		}
	}
	held = c.activeID == id
	c.lastItem = itemState{id: id, rect: r, hovered: hovered, active: held}
	c.itemRects[id] = r
	return hovered, held, clicked
}

// InvisibleButton implements knobs.Interaction.
func (c *Context) InvisibleButton(id string, size knobs.Vec2) bool {
	r := c.placeItem(size)
	_, _, clicked := c.buttonBehavior(id, r)
	return clicked
}

// IsItemActive implements knobs.Interaction.
func (c *Context) IsItemActive() bool { return c.lastItem.active }

// IsItemHovered implements knobs.Interaction.
func (c *Context) IsItemHovered() bool { return c.lastItem.hovered }

// ActiveID returns the id of the item holding the pointer, or "".
func (c *Context) ActiveID() string { return c.activeID }

// MouseDragDelta implements knobs.Interaction. A negative threshold uses
// Config.DragThreshold.
func (c *Context) MouseDragDelta(button knobs.MouseButton, threshold float64) knobs.Vec2 {
	if int(button) >= numButtons {
		return knobs.Vec2{}
	}
	if threshold < 0 {
		threshold = c.cfg.DragThreshold
	}
	return c.buttons[button].dragDelta(c.mouse, threshold)
}

// ResetMouseDragDelta implements knobs.Interaction.
func (c *Context) ResetMouseDragDelta(button knobs.MouseButton) {
	if int(button) >= numButtons {
		return
	}
	c.buttons[button].dragStart = c.mouse
}

// IsMouseDoubleClicked implements knobs.Interaction.
func (c *Context) IsMouseDoubleClicked(button knobs.MouseButton) bool {
	if int(button) >= numButtons {
		return false
	}
	return c.buttons[button].doubleClicked
}

// IsMouseDown reports whether button is held this frame.
func (c *Context) IsMouseDown(button knobs.MouseButton) bool {
	if int(button) >= numButtons {
		return false
	}
	return c.buttons[button].down
}

func (c *Context) keyPressed(k Key) bool {
	for _, p := range c.keys {
		if p == k {
			return true
		}
	}
	return false
}
