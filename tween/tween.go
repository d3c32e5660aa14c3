// Package tween eases knob values and colors over time with gween.
package tween

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/knobs"
)

// Group animates up to 4 float64 fields simultaneously. Create one via
// Value, Color, or ToDefault and call Update(dt) each frame; the group writes
// the current values through the pointers it was built with.
//
// A tweened knob value is an ordinary write: the knob sees the new value on
// its next frame.
type Group struct {
	tweens [4]*gween.Tween
	count  int
	fields [4]*float64
	Done   bool
}

// Update advances all tweens by dt seconds and writes the values.
func (g *Group) Update(dt float32) {
	if g.Done {
		return
	}
	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// Stop ends the group, leaving the fields at their current values.
func (g *Group) Stop() { g.Done = true }

// Value animates *v to the target over duration seconds.
func Value(v *float64, to float64, duration float32, fn ease.TweenFunc) *Group {
	g := &Group{count: 1}
	g.tweens[0] = gween.New(float32(*v), float32(to), duration, fn)
	g.fields[0] = v
	return g
}

// Color animates all four components of *c to the target color.
func Color(c *knobs.Color, to knobs.Color, duration float32, fn ease.TweenFunc) *Group {
	g := &Group{count: 4}
	g.tweens[0] = gween.New(float32(c.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(c.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(c.B), float32(to.B), duration, fn)
	g.tweens[3] = gween.New(float32(c.A), float32(to.A), duration, fn)
	g.fields[0] = &c.R
	g.fields[1] = &c.G
	g.fields[2] = &c.B
	g.fields[3] = &c.A
	return g
}

// ToDefault animates the knob's value back to its default.
func ToDefault(k *knobs.Knob, duration float32, fn ease.TweenFunc) *Group {
	return Value(k.Value, k.Default, duration, fn)
}
