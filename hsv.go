package knobs

import colorful "github.com/lucasb-eyer/go-colorful"

// HSVToRGB converts a hue/saturation/value color to RGB. h, s, and v are
// clamped to [0, 1] and a hue of 1 wraps to 0. Alpha passes through.
func HSVToRGB(h, s, v, a float64) Color {
	h, s, v = clamp01(h), clamp01(s), clamp01(v)
	if h == 1 {
		h = 0
	}
	c := colorful.Hsv(h*360, s, v)
	return Color{c.R, c.G, c.B, a}
}
