package ggraster

import (
	"fmt"
	"image"

	"github.com/phanxgames/knobs"
)

// renderID is the knob id used by RenderStyle.
const renderID = "render"

// RenderStyle draws a single knob of the given style, sized to fill a
// size x size transparent image, with value in [min, max]. The knob is drawn
// idle: neither hovered nor active.
func RenderStyle(style knobs.Style, p knobs.Palette, value, min, max float64, size int) (image.Image, error) {
	if size <= 0 {
		return nil, fmt.Errorf("ggraster: invalid image size %d", size)
	}
	f, err := NewFrame(Config{Width: size, Height: size})
	if err != nil {
		return nil, err
	}
	defer f.Close()

	k, err := f.Knob(renderID, &value, min, max, min, float64(size)*0.5)
	if err != nil {
		return nil, err
	}
	style.Draw(k, p)
	if err := f.Err(); err != nil {
		return nil, err
	}
	return f.Image(), nil
}

// Knob places a knob at the cursor. It is knobs.NewKnob with errors
// prefixed for this package.
func (f *Frame) Knob(id string, value *float64, min, max, def, radius float64) (*knobs.Knob, error) {
	k, err := knobs.NewKnob(f, id, value, min, max, def, radius)
	if err != nil {
		return nil, fmt.Errorf("ggraster: knob %q: %w", id, err)
	}
	return k, nil
}
