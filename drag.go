package knobs

import "strings"

// VisibleLabel returns the displayed part of a widget id. Everything from
// "###" on identifies the widget but is not drawn.
func VisibleLabel(id string) string {
	if i := strings.Index(id, "###"); i >= 0 {
		return id[:i]
	}
	return id
}

// KnobTitle draws label horizontally centered within width at the current
// cursor. The cursor x is restored afterwards while y advances past the
// label, so the next item lines up under it.
func KnobTitle(l Layout, label string, width float64) {
	size := l.CalcTextSize(label, width)
	old := l.CursorPos()
	l.SetCursorPos(Vec2{old.X + (width-size.X)*0.5, old.Y})
	l.Text(label)
	l.SetCursorPos(Vec2{old.X, l.CursorPos().Y})
}

// dragFieldID derives the drag field id from the knob id. The "###" prefix
// keeps the label out of the rendered field.
func dragFieldID(id string) string {
	return "###" + id + "_KNOB_DRAG_CONTROL_"
}

// KnobWithDrag lays out a centered title, a knob four text lines wide, and a
// numeric drag field of the same width bound to the same value. format is a
// fmt verb string such as "%.2fdB". The returned knob is ready for a style
// function.
func KnobWithDrag(h Host, id, title string, value *float64, min, max, def float64, format string) (*Knob, error) {
	width := h.TextLineHeight() * 4
	if err := validate(value, min, max, width*0.5); err != nil {
		return nil, err
	}
	h.PushItemWidth(width)
	defer h.PopItemWidth()

	KnobTitle(h, title, width)

	k, err := NewKnob(h, id, value, min, max, def, width*0.5)
	if err != nil {
		return nil, err
	}

	if h.DragFloat(dragFieldID(id), value, (max-min)/1000, min, max, format) {
		k.ValueChanged = true
	}
	return k, nil
}
