package knobs

import (
	"errors"
	"math"
)

const (
	// dragThreshold is the pixel dead zone passed to MouseDragDelta.
	dragThreshold = 0.0001
	// dragSteps is the number of pixels of vertical drag that sweep the full
	// range.
	dragSteps = 200
	// arcThicknessEpsilon keeps zero-size arcs from producing degenerate
	// strokes.
	arcThicknessEpsilon = 0.0001
)

var (
	// ErrNilValue is returned when a knob is bound to a nil value.
	ErrNilValue = errors.New("knobs: value pointer is nil")
	// ErrInvalidValue is returned when the bound value is NaN.
	ErrInvalidValue = errors.New("knobs: value is NaN")
	// ErrEmptyRange is returned when min == max or a bound is NaN or
	// infinite.
	ErrEmptyRange = errors.New("knobs: min and max must differ and be finite")
	// ErrInvalidRadius is returned when the radius is not a positive finite
	// number.
	ErrInvalidRadius = errors.New("knobs: radius must be positive")
)

// Knob is the per-frame state of one rotary control. Build one with NewKnob
// at the point in the frame where the control should appear, hand it to a
// style function, and drop it. Nothing in a Knob outlives the frame except
// the value it points to.
type Knob struct {
	ID string

	// Value is borrowed from the caller for the frame. Only one Knob may
	// hold a given value per frame.
	Value   *float64
	Min     float64
	Max     float64
	Default float64
	Radius  float64

	ScreenPos Vec2
	Center    Vec2

	ValueChanged bool
	IsActive     bool
	IsHovered    bool

	// T is the normalized value position. Not clamped.
	T        float64
	Angle    float64
	AngleCos float64
	AngleSin float64

	dl DrawList
}

// NewKnob registers a 2*radius square hit region at the host cursor, applies
// this frame's drag or double-click to *value, and returns the knob state for
// drawing. Preconditions are checked up front; on error nothing is
// registered with the host.
func NewKnob(h Host, id string, value *float64, min, max, def, radius float64) (*Knob, error) {
	if err := validate(value, min, max, radius); err != nil {
		return nil, err
	}

	screenPos := h.CursorScreenPos()
	changed := Control(h, id, value, min, max, def, radius)

	t := normalize(*value, min, max)
	angle := angleAt(t)
	return &Knob{
		ID:           id,
		Value:        value,
		Min:          min,
		Max:          max,
		Default:      def,
		Radius:       radius,
		ScreenPos:    screenPos,
		Center:       Vec2{screenPos.X + radius, screenPos.Y + radius},
		ValueChanged: changed,
		IsActive:     h.IsItemActive(),
		IsHovered:    h.IsItemHovered(),
		T:            t,
		Angle:        angle,
		AngleCos:     math.Cos(angle),
		AngleSin:     math.Sin(angle),
		dl:           h.DrawList(),
	}, nil
}

func validate(value *float64, min, max, radius float64) error {
	if value == nil {
		return ErrNilValue
	}
	if math.IsNaN(*value) {
		return ErrInvalidValue
	}
	if min == max || math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return ErrEmptyRange
	}
	if !(radius > 0) || math.IsInf(radius, 0) {
		return ErrInvalidRadius
	}
	return nil
}

// Control registers the knob hit region and applies one frame of interaction
// to *value. It returns true when the value changed.
//
// A double-click on the active knob resets the value to def and ignores any
// drag that frame. Otherwise vertical drag changes the value by
// (max-min)/200 per pixel, dragging up increases it, and the result is
// clamped to [min, max]. The host drag accumulator is reset after each
// applied step, so deltas are incremental across frames.
func Control(h Interaction, id string, value *float64, min, max, def, radius float64) bool {
	h.InvisibleButton(id, Vec2{radius * 2, radius * 2})

	active := h.IsItemActive()
	delta := h.MouseDragDelta(MouseButtonLeft, dragThreshold)

	switch {
	case active && h.IsMouseDoubleClicked(MouseButtonLeft):
		*value = def
		return true
	case active && delta.Y != 0:
		step := (max - min) / dragSteps
		*value -= delta.Y * step
		if *value < min {
			*value = min
		}
		if *value > max {
			*value = max
		}
		h.ResetMouseDragDelta(MouseButtonLeft)
		return true
	}
	return false
}

// UpdateAndGetAngle runs Control and returns the angle of the updated value
// along with whether it changed.
func UpdateAndGetAngle(h Interaction, id string, value *float64, min, max, def, radius float64) (angle float64, changed bool) {
	changed = Control(h, id, value, min, max, def, radius)
	return angleAt(normalize(*value, min, max)), changed
}

func normalize(v, min, max float64) float64 {
	return (v - min) / (max - min)
}

func angleAt(t float64) float64 {
	return AngleMin + (AngleMax-AngleMin)*t
}

// color picks the state color for this frame.
func (k *Knob) color(c ColorSet) Color {
	return c.Pick(k.IsActive, k.IsHovered)
}

// DrawDot draws a circle of radius size*Radius whose center sits at
// radius*Radius from the knob center in direction angle.
func (k *Knob) DrawDot(size, radius, angle float64, c ColorSet, filled bool, segments int) {
	k.dl.AddCircle(k.Center.Polar(radius*k.Radius, angle), size*k.Radius, k.color(c), segments, filled)
}

// DrawTick draws a radial line between start*Radius and end*Radius from the
// center at the given angle, width*Radius thick.
func (k *Knob) DrawTick(start, end, width, angle float64, c ColorSet) {
	k.dl.AddLine(
		k.Center.Polar(end*k.Radius, angle),
		k.Center.Polar(start*k.Radius, angle),
		k.color(c),
		width*k.Radius,
	)
}

// DrawCircle draws a circle of radius size*Radius at the knob center.
func (k *Knob) DrawCircle(size float64, c ColorSet, filled bool, segments int) {
	k.dl.AddCircle(k.Center, size*k.Radius, k.color(c), segments, filled)
}

// DrawArc strokes an arc of radius radius*Radius from startAngle to
// endAngle. The stroke is size*Radius*0.5 thick. See DrawArc for the
// bezierCount and overlap behavior.
func (k *Knob) DrawArc(radius, size, startAngle, endAngle float64, c ColorSet, segments, bezierCount int) {
	DrawArc(k.dl, k.Center, radius*k.Radius, startAngle, endAngle,
		size*k.Radius*0.5+arcThicknessEpsilon, k.color(c), segments, bezierCount)
}
