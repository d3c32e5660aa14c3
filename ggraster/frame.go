package ggraster

import (
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/knobs"
)

// Config controls an offscreen frame. Zero fields fall back to
// DefaultConfig values, except Background (transparent) and Padding (none).
type Config struct {
	Width, Height int

	// FontData is TTF/OTF data for labels. Nil uses Go Regular.
	FontData []byte
	FontSize float64

	Padding      float64
	ItemSpacing  float64
	FramePadding float64

	Background knobs.Color
	Text       knobs.Color
	Field      knobs.Color
}

// DefaultConfig returns a 256x256 transparent frame with 14px Go Regular.
func DefaultConfig() Config {
	return Config{
		Width:        256,
		Height:       256,
		FontSize:     14,
		Padding:      8,
		ItemSpacing:  4,
		FramePadding: 3,
		Text:         knobs.Color{R: 0.9, G: 0.9, B: 0.9, A: 1},
		Field:        knobs.Color{R: 0.2, G: 0.22, B: 0.27, A: 1},
	}
}

func (cfg Config) withDefaults() Config {
	def := DefaultConfig()
	if cfg.Width <= 0 {
		cfg.Width = def.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = def.Height
	}
	if cfg.FontSize <= 0 {
		cfg.FontSize = def.FontSize
	}
	if cfg.Padding < 0 {
		cfg.Padding = 0
	}
	if cfg.ItemSpacing <= 0 {
		cfg.ItemSpacing = def.ItemSpacing
	}
	if cfg.FramePadding <= 0 {
		cfg.FramePadding = def.FramePadding
	}
	if cfg.Text == (knobs.Color{}) {
		cfg.Text = def.Text
	}
	if cfg.Field == (knobs.Color{}) {
		cfg.Field = def.Field
	}
	return cfg
}

// Frame is a knobs.Host without live input. Widgets draw immediately into an
// offscreen gg context, so a Frame renders exactly one frame: build it, issue
// the widgets, then read the Image or save a PNG.
//
// Items report hovered or active only when marked with SetHovered or
// SetActive. Drag deltas are always zero and there are no double-clicks, so
// values are never changed by a Frame.
type Frame struct {
	cfg    Config
	dc     *gg.Context
	canvas *Canvas
	source *text.FontSource
	face   text.Face
	ascent float64
	lh     float64

	hovered map[string]bool
	active  map[string]bool

	origin     knobs.Vec2
	cursor     knobs.Vec2 // relative to origin
	lineStartX float64
	itemWidths []float64
	lastItem   itemState

	texts []string
}

var _ knobs.Host = (*Frame)(nil)

type itemState struct {
	id      string
	hovered bool
	active  bool
}

// NewFrame creates an offscreen frame cleared to cfg.Background.
func NewFrame(cfg Config) (*Frame, error) {
	cfg = cfg.withDefaults()
	data := cfg.FontData
	if data == nil {
		data = goregular.TTF
	}
	source, err := text.NewFontSource(data)
	if err != nil {
		return nil, fmt.Errorf("ggraster: failed to parse font data: %w", err)
	}
	face := source.Face(cfg.FontSize)
	m := face.Metrics()

	dc := gg.NewContext(cfg.Width, cfg.Height)
	bg := cfg.Background
	dc.ClearWithColor(gg.RGBA2(bg.R, bg.G, bg.B, bg.A))
	dc.SetFont(face)

	return &Frame{
		cfg:     cfg,
		dc:      dc,
		canvas:  NewCanvas(dc),
		source:  source,
		face:    face,
		ascent:  m.Ascent,
		lh:      m.LineHeight(),
		hovered: make(map[string]bool),
		active:  make(map[string]bool),
		origin:  knobs.Vec2{X: cfg.Padding, Y: cfg.Padding},
	}, nil
}

// Close releases the font source and the drawing context.
func (f *Frame) Close() error {
	err := f.dc.Close()
	if cerr := f.source.Close(); err == nil {
		err = cerr
	}
	return err
}

// Config returns the effective configuration.
func (f *Frame) Config() Config { return f.cfg }

// SetHovered marks the item with the given id as hovered.
func (f *Frame) SetHovered(id string, on bool) { f.hovered[id] = on }

// SetActive marks the item with the given id as active (held).
func (f *Frame) SetActive(id string, on bool) { f.active[id] = on }

// DrawList implements knobs.Host.
func (f *Frame) DrawList() knobs.DrawList { return f.canvas }

// Canvas returns the frame's draw list.
func (f *Frame) Canvas() *Canvas { return f.canvas }

// Err returns the first rendering failure of this frame.
func (f *Frame) Err() error { return f.canvas.Err() }

// Image returns a copy of the rendered pixels.
func (f *Frame) Image() image.Image { return f.dc.Image() }

// SavePNG writes the rendered frame to path.
func (f *Frame) SavePNG(path string) error {
	if err := f.Err(); err != nil {
		return err
	}
	if err := f.dc.SavePNG(path); err != nil {
		return fmt.Errorf("ggraster: failed to save %s: %w", path, err)
	}
	return nil
}

// EncodePNG writes the rendered frame to w as PNG.
func (f *Frame) EncodePNG(w io.Writer) error {
	if err := f.Err(); err != nil {
		return err
	}
	if err := f.dc.EncodePNG(w); err != nil {
		return fmt.Errorf("ggraster: failed to encode png: %w", err)
	}
	return nil
}

// Texts returns the strings drawn so far, in order.
func (f *Frame) Texts() []string { return f.texts }

// --- Interaction ---

// InvisibleButton implements knobs.Interaction. It reserves the region and
// never reports a click.
func (f *Frame) InvisibleButton(id string, size knobs.Vec2) bool {
	f.placeItem(size)
	f.lastItem = itemState{id: id, hovered: f.hovered[id], active: f.active[id]}
	return false
}

// IsItemActive implements knobs.Interaction.
func (f *Frame) IsItemActive() bool { return f.lastItem.active }

// IsItemHovered implements knobs.Interaction.
func (f *Frame) IsItemHovered() bool { return f.lastItem.hovered }

// MouseDragDelta implements knobs.Interaction. Always zero.
func (f *Frame) MouseDragDelta(knobs.MouseButton, float64) knobs.Vec2 { return knobs.Vec2{} }

// ResetMouseDragDelta implements knobs.Interaction.
func (f *Frame) ResetMouseDragDelta(knobs.MouseButton) {}

// IsMouseDoubleClicked implements knobs.Interaction. Always false.
func (f *Frame) IsMouseDoubleClicked(knobs.MouseButton) bool { return false }

// --- Layout ---

// CursorScreenPos implements knobs.Layout.
func (f *Frame) CursorScreenPos() knobs.Vec2 { return f.origin.Add(f.cursor) }

// SetCursorScreenPos moves the cursor to an absolute position. The next rows
// keep starting at the new x.
func (f *Frame) SetCursorScreenPos(pos knobs.Vec2) {
	f.cursor = pos.Sub(f.origin)
	f.lineStartX = f.cursor.X
}

// CursorPos implements knobs.Layout.
func (f *Frame) CursorPos() knobs.Vec2 { return f.cursor }

// SetCursorPos implements knobs.Layout.
func (f *Frame) SetCursorPos(pos knobs.Vec2) { f.cursor = pos }

// PushItemWidth implements knobs.Layout.
func (f *Frame) PushItemWidth(width float64) {
	f.itemWidths = append(f.itemWidths, width)
}

// PopItemWidth implements knobs.Layout. Panics without a matching push.
func (f *Frame) PopItemWidth() {
	if len(f.itemWidths) == 0 {
		panic("ggraster: PopItemWidth without PushItemWidth")
	}
	f.itemWidths = f.itemWidths[:len(f.itemWidths)-1]
}

func (f *Frame) itemWidth() float64 {
	if n := len(f.itemWidths); n > 0 {
		return f.itemWidths[n-1]
	}
	return f.cfg.FontSize * 10
}

// placeItem reserves size at the cursor and moves to the next row.
func (f *Frame) placeItem(size knobs.Vec2) knobs.Rect {
	pos := f.CursorScreenPos()
	f.cursor = knobs.Vec2{X: f.lineStartX, Y: f.cursor.Y + size.Y + f.cfg.ItemSpacing}
	return knobs.Rect{X: pos.X, Y: pos.Y, Width: size.X, Height: size.Y}
}

// CalcTextSize implements knobs.Layout. Text is never wrapped.
func (f *Frame) CalcTextSize(s string, wrapWidth float64) knobs.Vec2 {
	w, h := f.dc.MeasureString(s)
	return knobs.Vec2{X: w, Y: max(h, f.lh)}
}

// TextLineHeight implements knobs.Layout.
func (f *Frame) TextLineHeight() float64 { return f.lh }

// Text implements knobs.Layout.
func (f *Frame) Text(s string) {
	r := f.placeItem(f.CalcTextSize(s, 0))
	f.drawString(s, r.X, r.Y)
}

// DragFloat implements knobs.Layout. It draws the field with the formatted
// value and never changes v.
func (f *Frame) DragFloat(id string, v *float64, speed, min, max float64, format string) bool {
	r := f.placeItem(knobs.Vec2{X: f.itemWidth(), Y: f.lh + 2*f.cfg.FramePadding})
	f.lastItem = itemState{id: id, hovered: f.hovered[id], active: f.active[id]}

	col := f.cfg.Field
	f.dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	f.dc.SetRGBA(col.R, col.G, col.B, col.A)
	f.canvas.check("fill field", f.dc.Fill())

	label := fmt.Sprintf(format, *v)
	if vis := knobs.VisibleLabel(id); vis != "" {
		label = vis + " " + label
	}
	w, _ := f.dc.MeasureString(label)
	f.drawString(label, r.X+(r.Width-w)*0.5, r.Y+f.cfg.FramePadding)
	return false
}

// drawString draws s with its top-left corner at (x, y).
func (f *Frame) drawString(s string, x, y float64) {
	col := f.cfg.Text
	f.dc.SetRGBA(col.R, col.G, col.B, col.A)
	f.dc.DrawString(s, x, y+f.ascent)
	f.texts = append(f.texts, s)
}
