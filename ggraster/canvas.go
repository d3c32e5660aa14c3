package ggraster

import (
	"fmt"

	"github.com/gogpu/gg"

	"github.com/phanxgames/knobs"
)

// outlineWidth is the stroke width of unfilled circles.
const outlineWidth = 1

// Canvas is a knobs.DrawList that rasterizes every primitive straight into a
// gg context. Rendering failures do not interrupt the frame: the first one is
// kept and reported by Err.
type Canvas struct {
	dc  *gg.Context
	pts []knobs.Vec2
	err error
}

var _ knobs.DrawList = (*Canvas)(nil)

// NewCanvas returns a Canvas drawing into dc.
func NewCanvas(dc *gg.Context) *Canvas {
	return &Canvas{dc: dc}
}

// Context returns the underlying gg context.
func (c *Canvas) Context() *gg.Context { return c.dc }

// Err returns the first fill or stroke failure since the canvas was created.
func (c *Canvas) Err() error { return c.err }

// AddCircle implements knobs.DrawList.
func (c *Canvas) AddCircle(center knobs.Vec2, radius float64, col knobs.Color, segments int, filled bool) {
	c.pts = knobs.CirclePoints(c.pts[:0], center, radius, segments)
	c.polyline(c.pts)
	c.dc.ClosePath()
	c.setColor(col)
	if filled {
		c.check("fill circle", c.dc.Fill())
		return
	}
	c.dc.SetLineWidth(outlineWidth)
	c.dc.SetLineJoin(gg.LineJoinRound)
	c.check("stroke circle", c.dc.Stroke())
}

// AddLine implements knobs.DrawList.
func (c *Canvas) AddLine(p0, p1 knobs.Vec2, col knobs.Color, thickness float64) {
	c.dc.MoveTo(p0.X, p0.Y)
	c.dc.LineTo(p1.X, p1.Y)
	c.stroke("stroke line", col, thickness)
}

// AddBezierCubic implements knobs.DrawList.
func (c *Canvas) AddBezierCubic(p0, c1, c2, p3 knobs.Vec2, col knobs.Color, thickness float64, segments int) {
	c.pts = knobs.FlattenCubic(c.pts[:0], p0, c1, c2, p3, segments)
	c.polyline(c.pts)
	c.stroke("stroke bezier", col, thickness)
}

func (c *Canvas) polyline(pts []knobs.Vec2) {
	for i, p := range pts {
		if i == 0 {
			c.dc.MoveTo(p.X, p.Y)
		} else {
			c.dc.LineTo(p.X, p.Y)
		}
	}
}

func (c *Canvas) stroke(op string, col knobs.Color, thickness float64) {
	c.setColor(col)
	c.dc.SetLineWidth(thickness)
	c.dc.SetLineCap(gg.LineCapRound)
	c.dc.SetLineJoin(gg.LineJoinRound)
	c.check(op, c.dc.Stroke())
}

func (c *Canvas) setColor(col knobs.Color) {
	c.dc.SetRGBA(col.R, col.G, col.B, col.A)
}

func (c *Canvas) check(op string, err error) {
	if err == nil {
		return
	}
	knobs.Logger().Warn("ggraster: draw failed", "op", op, "error", err)
	if c.err == nil {
		c.err = fmt.Errorf("ggraster: %s: %w", op, err)
	}
}
