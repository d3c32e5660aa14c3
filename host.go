package knobs

// DrawList receives the draw primitives a knob emits. Implementations
// rasterize them (ebitenhost, ggraster) or record them (Recorder).
type DrawList interface {
	// AddCircle draws a circle outline (filled=false) or disc. segments is the
	// polygon resolution; <= 0 lets the backend choose.
	AddCircle(center Vec2, radius float64, col Color, segments int, filled bool)
	AddLine(p0, p1 Vec2, col Color, thickness float64)
	// AddBezierCubic strokes a cubic Bezier flattened into segments lines.
	AddBezierCubic(p0, c1, c2, p3 Vec2, col Color, thickness float64, segments int)
}

// Interaction is the per-frame input surface a knob polls. All "item" queries
// refer to the most recently registered region.
type Interaction interface {
	// InvisibleButton registers an interactive hit region of the given size
	// at the current cursor and advances the cursor past it. Returns true
	// when the region was clicked this frame.
	InvisibleButton(id string, size Vec2) bool
	IsItemActive() bool
	IsItemHovered() bool
	// MouseDragDelta returns the pointer motion accumulated since the button
	// was pressed or the last reset. Motion shorter than threshold reads as
	// zero.
	MouseDragDelta(button MouseButton, threshold float64) Vec2
	ResetMouseDragDelta(button MouseButton)
	IsMouseDoubleClicked(button MouseButton) bool
}

// Layout is the cursor, text, and widget surface used by the title label and
// the drag field that accompany a knob.
type Layout interface {
	CursorScreenPos() Vec2
	// CursorPos is window-relative; SetCursorPos uses the same space.
	CursorPos() Vec2
	SetCursorPos(pos Vec2)
	CalcTextSize(text string, wrapWidth float64) Vec2
	Text(text string)
	TextLineHeight() float64
	PushItemWidth(width float64)
	PopItemWidth()
	// DragFloat draws a numeric field bound to v that can be dragged or
	// edited as text. Returns true when v changed.
	DragFloat(id string, v *float64, speed, min, max float64, format string) bool
}

// Host is the full capability set an immediate-mode backend supplies.
type Host interface {
	Interaction
	Layout
	DrawList() DrawList
}
