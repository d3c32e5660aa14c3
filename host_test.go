package knobs

import "fmt"

// fakeHost is a scripted Host. Input fields describe the frame; the rest
// record what the code under test asked for.
type fakeHost struct {
	Recorder

	active      bool
	hovered     bool
	delta       Vec2
	doubleClick bool
	lineHeight  float64
	charWidth   float64

	cursor      Vec2 // window-relative
	origin      Vec2 // window position on screen
	itemWidths  []float64
	texts       []string
	textPos     []Vec2
	buttons     []string
	buttonSizes []Vec2
	resets      int
	thresholds  []float64
	drags       []dragCall
	dragResult  float64
	dragChanges bool
	calls       []string
}

type dragCall struct {
	id     string
	value  float64
	speed  float64
	min    float64
	max    float64
	format string
	width  float64
}

var _ Host = (*fakeHost)(nil)

func newFakeHost() *fakeHost {
	return &fakeHost{lineHeight: 16, charWidth: 7}
}

func (h *fakeHost) DrawList() DrawList { return &h.Recorder }

func (h *fakeHost) InvisibleButton(id string, size Vec2) bool {
	h.calls = append(h.calls, "button:"+id)
	h.buttons = append(h.buttons, id)
	h.buttonSizes = append(h.buttonSizes, size)
	h.cursor.Y += size.Y
	return false
}

func (h *fakeHost) IsItemActive() bool  { return h.active }
func (h *fakeHost) IsItemHovered() bool { return h.hovered }

func (h *fakeHost) MouseDragDelta(button MouseButton, threshold float64) Vec2 {
	h.thresholds = append(h.thresholds, threshold)
	return h.delta
}

func (h *fakeHost) ResetMouseDragDelta(button MouseButton) {
	h.resets++
	h.delta = Vec2{}
}

func (h *fakeHost) IsMouseDoubleClicked(button MouseButton) bool { return h.doubleClick }

func (h *fakeHost) CursorScreenPos() Vec2 { return h.origin.Add(h.cursor) }
func (h *fakeHost) CursorPos() Vec2       { return h.cursor }
func (h *fakeHost) SetCursorPos(pos Vec2) { h.cursor = pos }

func (h *fakeHost) CalcTextSize(text string, wrapWidth float64) Vec2 {
	return Vec2{float64(len(text)) * h.charWidth, h.lineHeight}
}

func (h *fakeHost) Text(text string) {
	h.calls = append(h.calls, "text:"+text)
	h.texts = append(h.texts, text)
	h.textPos = append(h.textPos, h.cursor)
	h.cursor = Vec2{0, h.cursor.Y + h.lineHeight}
}

func (h *fakeHost) TextLineHeight() float64 { return h.lineHeight }

func (h *fakeHost) PushItemWidth(width float64) {
	h.calls = append(h.calls, fmt.Sprintf("push:%g", width))
	h.itemWidths = append(h.itemWidths, width)
}

func (h *fakeHost) PopItemWidth() {
	h.calls = append(h.calls, "pop")
	h.itemWidths = h.itemWidths[:len(h.itemWidths)-1]
}

func (h *fakeHost) DragFloat(id string, v *float64, speed, min, max float64, format string) bool {
	h.calls = append(h.calls, "drag:"+id)
	var width float64
	if n := len(h.itemWidths); n > 0 {
		width = h.itemWidths[n-1]
	}
	h.drags = append(h.drags, dragCall{id, *v, speed, min, max, format, width})
	if h.dragChanges {
		*v = h.dragResult
	}
	return h.dragChanges
}
