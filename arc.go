package knobs

import "math"

// BezierArcControlPoints returns the two cubic Bezier control points that
// approximate the circular arc from start to end around center. start and end
// must lie on the same circle.
//
// The span between start and end must be strictly between 0 and π: at exactly
// 0 or π the cross product of the radii is zero and the result is NaN or Inf.
// This is not checked.
func BezierArcControlPoints(center, start, end Vec2) (c1, c2 Vec2) {
	a := start.Sub(center)
	b := end.Sub(center)
	q1 := a.Dot(a)
	q2 := q1 + a.Dot(b)
	k2 := (4.0 / 3.0) * (math.Sqrt(2*q1*q2) - q2) / a.Cross(b)

	c1 = start.Add(a.Perp().Scale(k2))
	c2 = end.Sub(b.Perp().Scale(k2))
	return c1, c2
}

// DrawSingleBezierArc strokes the arc from startAngle to endAngle as one cubic
// Bezier curve. Accurate for spans up to roughly a semicircle.
func DrawSingleBezierArc(dl DrawList, center Vec2, radius, startAngle, endAngle, thickness float64, col Color, segments int) {
	start := center.Polar(radius, startAngle)
	end := center.Polar(radius, endAngle)
	c1, c2 := BezierArcControlPoints(center, start, end)
	dl.AddBezierCubic(start, c1, c2, end, col, thickness, segments)
}

// arcOverlap is the angular padding added at sub-arc joints to hide seams.
func arcOverlap(radius, thickness float64) float64 {
	return thickness * radius * 0.00001 * math.Pi
}

// DrawArc strokes the arc from startAngle to endAngle split into bezierCount
// equal Bezier sub-arcs. bezierCount <= 1 draws a single unsplit arc.
//
// Adjacent sub-arcs overlap slightly so the joints do not show gaps. The
// overlap is a heuristic and only looks right with opaque colors; translucent
// arcs show darker seams where sub-arcs overlap.
func DrawArc(dl DrawList, center Vec2, radius, startAngle, endAngle, thickness float64, col Color, segments, bezierCount int) {
	overlap := arcOverlap(radius, thickness)
	delta := endAngle - startAngle
	step := 1.0
	if bezierCount > 1 {
		step = 1.0 / float64(bezierCount)
	}
	mid := startAngle + overlap
	for i := 1; i < bezierCount; i++ {
		mid2 := delta*step + mid
		DrawSingleBezierArc(dl, center, radius, mid-overlap, mid2+overlap, thickness, col, segments)
		mid = mid2
	}
	DrawSingleBezierArc(dl, center, radius, mid-overlap, endAngle, thickness, col, segments)
}
