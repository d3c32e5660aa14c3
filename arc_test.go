package knobs

import (
	"math"
	"testing"
)

func TestBezierArcControlPointsQuarterCircle(t *testing.T) {
	// Quarter circle of radius 1: the classic kappa constant.
	const kappa = 0.5522847498307936
	c1, c2 := BezierArcControlPoints(Vec2{}, Vec2{1, 0}, Vec2{0, 1})
	want1 := Vec2{1, kappa}
	want2 := Vec2{kappa, 1}
	if !vecNear(c1, want1, 1e-9) {
		t.Errorf("c1 = %v, want %v", c1, want1)
	}
	if !vecNear(c2, want2, 1e-9) {
		t.Errorf("c2 = %v, want %v", c2, want2)
	}
}

func TestBezierArcControlPointsTranslated(t *testing.T) {
	center := Vec2{40, -12}
	c1, c2 := BezierArcControlPoints(center, center.Polar(5, 0.2), center.Polar(5, 1.4))
	o1, o2 := BezierArcControlPoints(Vec2{}, Vec2{}.Polar(5, 0.2), Vec2{}.Polar(5, 1.4))
	if !vecNear(c1, o1.Add(center), 1e-9) || !vecNear(c2, o2.Add(center), 1e-9) {
		t.Errorf("control points not translation invariant: %v %v vs %v %v", c1, c2, o1, o2)
	}
}

func TestBezierArcControlPointsDegenerate(t *testing.T) {
	// Zero and half-turn spans are outside the contract and yield NaN/Inf.
	tests := []struct {
		name       string
		start, end Vec2
	}{
		{"zero span", Vec2{1, 0}, Vec2{1, 0}},
		{"half turn", Vec2{1, 0}, Vec2{-1, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c1, _ := BezierArcControlPoints(Vec2{}, tt.start, tt.end)
			if !math.IsNaN(c1.X) && !math.IsInf(c1.X, 0) && !math.IsNaN(c1.Y) && !math.IsInf(c1.Y, 0) {
				t.Errorf("expected NaN or Inf control point, got %v", c1)
			}
		})
	}
}

// maxRadialError flattens the arc approximation and returns the largest
// distance between a sampled point and the true circle.
func maxRadialError(center Vec2, radius, start, end float64) float64 {
	p0 := center.Polar(radius, start)
	p3 := center.Polar(radius, end)
	c1, c2 := BezierArcControlPoints(center, p0, p3)
	var worst float64
	for _, p := range FlattenCubic(nil, p0, c1, c2, p3, 256) {
		worst = math.Max(worst, math.Abs(p.Sub(center).Len()-radius))
	}
	return worst
}

func TestBezierArcChordErrorShrinksWithSpan(t *testing.T) {
	center := Vec2{100, 80}
	const radius = 50.0
	prev := math.Inf(1)
	for _, span := range []float64{2.5, 2.0, 1.5, 1.0, 0.5, 0.1} {
		err := maxRadialError(center, radius, 0.3, 0.3+span)
		if err > radius*0.01 {
			t.Errorf("span %v: radial error %v exceeds 1%% of radius", span, err)
		}
		if err > prev {
			t.Errorf("span %v: radial error %v grew from %v", span, err, prev)
		}
		prev = err
	}
}

func TestBezierArcEndpointsOnCircle(t *testing.T) {
	center := Vec2{3, 4}
	for _, span := range []float64{0.2, 1, 2.5, -1.2} {
		p0 := center.Polar(10, 1)
		p3 := center.Polar(10, 1+span)
		c1, c2 := BezierArcControlPoints(center, p0, p3)
		// Control arms are tangent: perpendicular to the radius.
		if d := c1.Sub(p0).Dot(p0.Sub(center)); math.Abs(d) > 1e-9 {
			t.Errorf("span %v: first arm not tangent (dot %v)", span, d)
		}
		if d := c2.Sub(p3).Dot(p3.Sub(center)); math.Abs(d) > 1e-9 {
			t.Errorf("span %v: second arm not tangent (dot %v)", span, d)
		}
	}
}

// bezierAngles returns the start and end angle of each recorded Bezier
// around center.
func bezierAngles(cmds []DrawCommand, center Vec2) [][2]float64 {
	var out [][2]float64
	for _, c := range cmds {
		if c.Type != CommandBezier {
			continue
		}
		a := c.Points[0].Sub(center)
		b := c.Points[3].Sub(center)
		out = append(out, [2]float64{math.Atan2(a.Y, a.X), math.Atan2(b.Y, b.X)})
	}
	return out
}

func angleNear(a, b, tol float64) bool {
	d := math.Mod(a-b, 2*math.Pi)
	if d > math.Pi {
		d -= 2 * math.Pi
	}
	if d < -math.Pi {
		d += 2 * math.Pi
	}
	return math.Abs(d) <= tol
}

func TestDrawArcSingleBezier(t *testing.T) {
	for _, count := range []int{0, 1} {
		var r Recorder
		center := Vec2{50, 50}
		DrawArc(&r, center, 20, 0.5, 2.0, 3, ColorWhite, 16, count)
		if len(r.Commands) != 1 {
			t.Fatalf("bezierCount %d: got %d commands, want 1", count, len(r.Commands))
		}
		got := bezierAngles(r.Commands, center)[0]
		if !angleNear(got[0], 0.5, 1e-9) || !angleNear(got[1], 2.0, 1e-9) {
			t.Errorf("bezierCount %d: arc spans %v, want [0.5 2.0]", count, got)
		}
		cmd := r.Commands[0]
		if cmd.Thickness != 3 || cmd.Segments != 16 || cmd.Color != ColorWhite {
			t.Errorf("bezierCount %d: unexpected stroke params %+v", count, cmd)
		}
	}
}

func TestDrawArcPartitions(t *testing.T) {
	center := Vec2{0, 0}
	const (
		radius    = 40.0
		thickness = 4.0
		start     = AngleMin
		end       = AngleMax
	)
	overlap := arcOverlap(radius, thickness)
	for _, k := range []int{2, 3, 5} {
		var r Recorder
		DrawArc(&r, center, radius, start, end, thickness, ColorWhite, 16, k)
		if len(r.Commands) != k {
			t.Fatalf("k=%d: got %d commands", k, len(r.Commands))
		}
		spans := bezierAngles(r.Commands, center)
		step := (end - start) / float64(k)
		for i, s := range spans {
			wantStart := start + float64(i)*step
			wantEnd := wantStart + step
			if i < k-1 {
				wantEnd += 2 * overlap
			}
			if !angleNear(s[0], wantStart, 1e-9) {
				t.Errorf("k=%d sub-arc %d starts at %v, want %v", k, i, s[0], wantStart)
			}
			if !angleNear(s[1], wantEnd, 1e-9) {
				t.Errorf("k=%d sub-arc %d ends at %v, want %v", k, i, s[1], wantEnd)
			}
		}
	}
}

func TestArcOverlap(t *testing.T) {
	got := arcOverlap(10, 2)
	want := 2 * 10 * 1e-5 * math.Pi
	if math.Abs(got-want) > 1e-15 {
		t.Errorf("arcOverlap = %v, want %v", got, want)
	}
}

func vecNear(a, b Vec2, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol
}
