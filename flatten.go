package knobs

import (
	"math"

	"honnef.co/go/curve"
)

// DefaultFlattenTolerance is the maximum distance in pixels between a curve
// and its polyline when FlattenCubic picks the segment count itself.
const DefaultFlattenTolerance = 0.25

// FlattenCubic appends the polyline approximation of the cubic Bezier
// p0,c1,c2,p3 to dst and returns the extended slice. With segments > 0 the
// curve is sampled at segments+1 uniform parameter values, which is what an
// immediate-mode draw list does with an explicit segment count. With
// segments <= 0 the segment count adapts to DefaultFlattenTolerance.
func FlattenCubic(dst []Vec2, p0, c1, c2, p3 Vec2, segments int) []Vec2 {
	cb := curve.CubicBez{
		P0: curve.Pt(p0.X, p0.Y),
		P1: curve.Pt(c1.X, c1.Y),
		P2: curve.Pt(c2.X, c2.Y),
		P3: curve.Pt(p3.X, p3.Y),
	}
	if segments > 0 {
		dst = append(dst, p0)
		for i := 1; i < segments; i++ {
			pt := cb.Eval(float64(i) / float64(segments))
			dst = append(dst, Vec2{pt.X, pt.Y})
		}
		return append(dst, p3)
	}
	for el := range curve.Flatten(cb.PathElements(DefaultFlattenTolerance), DefaultFlattenTolerance) {
		switch el.Kind {
		case curve.MoveToKind, curve.LineToKind:
			dst = append(dst, Vec2{el.P0.X, el.P0.Y})
		}
	}
	return dst
}

// autoCircleSegments picks a polygon resolution for a circle of the given
// radius so the sagitta stays under DefaultFlattenTolerance.
func autoCircleSegments(radius float64) int {
	if radius <= DefaultFlattenTolerance {
		return 8
	}
	n := int(math.Ceil(math.Pi / math.Acos(1-DefaultFlattenTolerance/radius)))
	return min(max(n, 8), 512)
}

// CirclePoints appends the vertices of a regular polygon approximating the
// circle to dst. The first vertex sits at angle 0 and the polygon is not
// closed. segments <= 0 picks a count from the radius.
func CirclePoints(dst []Vec2, center Vec2, radius float64, segments int) []Vec2 {
	if segments <= 0 {
		segments = autoCircleSegments(radius)
	}
	if segments < 3 {
		segments = 3
	}
	step := 2 * math.Pi / float64(segments)
	for i := 0; i < segments; i++ {
		dst = append(dst, center.Polar(radius, float64(i)*step))
	}
	return dst
}
