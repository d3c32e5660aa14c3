package knobs

import (
	"image/color"
	"math"
)

// Fixed angular sweep shared by every knob: 270 degrees starting at the
// bottom-left. Angles are radians, 0 along +X, increasing clockwise on screen.
const (
	AngleMin = math.Pi * 0.75
	AngleMax = math.Pi * 2.25
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication happens in the backends at submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is opaque white.
var ColorWhite = Color{1, 1, 1, 1}

// RGBA converts c to a premultiplied 8-bit color.
func (c Color) RGBA() color.RGBA {
	a := clamp01(c.A)
	return color.RGBA{
		R: uint8(clamp01(c.R)*a*255 + 0.5),
		G: uint8(clamp01(c.G)*a*255 + 0.5),
		B: uint8(clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// NRGBA converts c to a straight-alpha 8-bit color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp01(c.R)*255 + 0.5),
		G: uint8(clamp01(c.G)*255 + 0.5),
		B: uint8(clamp01(c.B)*255 + 0.5),
		A: uint8(clamp01(c.A)*255 + 0.5),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions, offsets, sizes, and directions.
// Screen space: origin top-left, Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// Add returns v+o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v*f.
func (v Vec2) Scale(f float64) Vec2 { return Vec2{v.X * f, v.Y * f} }

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Cross returns the z component of the 3D cross product v × o.
func (v Vec2) Cross(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }

// Perp returns v rotated by +90 degrees: (-Y, X).
func (v Vec2) Perp() Vec2 { return Vec2{-v.Y, v.X} }

// Len returns the length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Polar returns the point at distance r from v in direction angle.
func (v Vec2) Polar(r, angle float64) Vec2 {
	return Vec2{v.X + math.Cos(angle)*r, v.Y + math.Sin(angle)*r}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width*0.5, r.Y + r.Height*0.5}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// ColorSet holds the colors used for each interaction state of a knob.
type ColorSet struct {
	Base    Color
	Hovered Color
	Active  Color
}

// NewColorSet returns a ColorSet from its three state colors.
func NewColorSet(base, hovered, active Color) ColorSet {
	return ColorSet{Base: base, Hovered: hovered, Active: active}
}

// SolidColorSet returns a ColorSet that uses c for every state.
func SolidColorSet(c Color) ColorSet {
	return ColorSet{Base: c, Hovered: c, Active: c}
}

// Pick returns the color for the given interaction state. Active wins over
// hovered.
func (cs ColorSet) Pick(active, hovered bool) Color {
	if active {
		return cs.Active
	}
	if hovered {
		return cs.Hovered
	}
	return cs.Base
}
