package knobs

import (
	"fmt"
	"strings"
)

// wiperThreshold hides the progress arc near the minimum, where it would
// collapse to a zero-length arc.
const wiperThreshold = 0.01

// DrawWiperKnob draws a filled center, a full track arc, and a progress arc
// from the minimum angle to the current angle.
func DrawWiperKnob(k *Knob, circle, wiper, track ColorSet) {
	k.DrawCircle(0.7, circle, true, 32)
	k.DrawArc(0.8, 0.41, AngleMin, AngleMax, track, 16, 2)
	if k.T > wiperThreshold {
		k.DrawArc(0.8, 0.43, AngleMin, k.Angle, wiper, 16, 2)
	}
}

// DrawWiperOnlyKnob draws the track and progress arcs without a center.
func DrawWiperOnlyKnob(k *Knob, wiper, track ColorSet) {
	k.DrawArc(0.8, 0.41, AngleMin, AngleMax, track, 32, 2)
	if k.T > wiperThreshold {
		k.DrawArc(0.8, 0.43, AngleMin, k.Angle, wiper, 16, 2)
	}
}

// DrawWiperDotKnob draws a smaller center, a track arc, and a dot riding the
// track at the current angle.
func DrawWiperDotKnob(k *Knob, circle, dot, track ColorSet) {
	k.DrawCircle(0.6, circle, true, 32)
	k.DrawArc(0.85, 0.41, AngleMin, AngleMax, track, 16, 2)
	k.DrawDot(0.1, 0.85, k.Angle, dot, true, 12)
}

// DrawTickKnob draws a center with a radial tick at the current angle.
func DrawTickKnob(k *Knob, circle, tick ColorSet) {
	k.DrawCircle(0.7, circle, true, 32)
	k.DrawTick(0.4, 0.7, 0.08, k.Angle, tick)
}

// DrawDotKnob draws a large center with a dot marker at the current angle.
func DrawDotKnob(k *Knob, circle, dot ColorSet) {
	k.DrawCircle(0.85, circle, true, 32)
	k.DrawDot(0.12, 0.6, k.Angle, dot, true, 12)
}

// DrawSpaceKnob draws a center that shrinks as the value grows and three
// offset orbit arcs that lengthen with it.
func DrawSpaceKnob(k *Knob, circle, wiper ColorSet) {
	k.DrawCircle(0.3-k.T*0.1, circle, true, 16)
	if k.T > wiperThreshold {
		k.DrawArc(0.4, 0.15, AngleMin-1, k.Angle-1, wiper, 16, 2)
		k.DrawArc(0.6, 0.15, AngleMin+1, k.Angle+1, wiper, 16, 2)
		k.DrawArc(0.8, 0.15, AngleMin+3, k.Angle+3, wiper, 16, 2)
	}
}

// DrawSteppedKnob draws steps evenly spaced ticks across the sweep, a center,
// and a dot marker. steps below 2 is treated as 2.
func DrawSteppedKnob(k *Knob, steps int, circle, dot, step ColorSet) {
	if steps < 2 {
		Logger().Warn("knobs: stepped knob needs at least 2 steps", "id", k.ID, "steps", steps)
		steps = 2
	}
	for n := 0; n < steps; n++ {
		a := float64(n) / float64(steps-1)
		angle := AngleMin + (AngleMax-AngleMin)*a
		k.DrawTick(0.7, 0.9, 0.04, angle, step)
	}
	k.DrawCircle(0.6, circle, true, 32)
	k.DrawDot(0.12, 0.4, k.Angle, dot, true, 12)
}

// Style selects one of the built-in knob faces at runtime.
type Style uint8

const (
	StyleWiper Style = iota
	StyleWiperOnly
	StyleWiperDot
	StyleTick
	StyleDot
	StyleSpace
	StyleStepped
)

var styleNames = [...]string{
	StyleWiper:     "wiper",
	StyleWiperOnly: "wiper-only",
	StyleWiperDot:  "wiper-dot",
	StyleTick:      "tick",
	StyleDot:       "dot",
	StyleSpace:     "space",
	StyleStepped:   "stepped",
}

// Styles lists every built-in style in declaration order.
func Styles() []Style {
	out := make([]Style, len(styleNames))
	for i := range styleNames {
		out[i] = Style(i)
	}
	return out
}

func (s Style) String() string {
	if int(s) < len(styleNames) {
		return styleNames[s]
	}
	return fmt.Sprintf("Style(%d)", s)
}

// ParseStyle returns the style with the given name (case-insensitive).
func ParseStyle(name string) (Style, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range styleNames {
		if n == name {
			return Style(i), nil
		}
	}
	return 0, fmt.Errorf("knobs: unknown style %q", name)
}

// Palette assigns color roles for Style.Draw. Circle fills the knob body,
// Accent colors the wiper, dot, or tick, and Track colors the background arc
// and step ticks. Steps is only used by StyleStepped.
type Palette struct {
	Circle ColorSet
	Accent ColorSet
	Track  ColorSet
	Steps  int
}

// Draw renders k with the style's draw function using the palette roles.
func (s Style) Draw(k *Knob, p Palette) {
	switch s {
	case StyleWiper:
		DrawWiperKnob(k, p.Circle, p.Accent, p.Track)
	case StyleWiperOnly:
		DrawWiperOnlyKnob(k, p.Accent, p.Track)
	case StyleWiperDot:
		DrawWiperDotKnob(k, p.Circle, p.Accent, p.Track)
	case StyleTick:
		DrawTickKnob(k, p.Circle, p.Accent)
	case StyleDot:
		DrawDotKnob(k, p.Circle, p.Accent)
	case StyleSpace:
		DrawSpaceKnob(k, p.Circle, p.Accent)
	case StyleStepped:
		DrawSteppedKnob(k, p.Steps, p.Circle, p.Accent, p.Track)
	default:
		Logger().Warn("knobs: unknown style", "style", int(s))
	}
}
