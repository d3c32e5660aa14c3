package ebitenhost

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/phanxgames/knobs"
)

// outlineWidth is the stroke width of unfilled circles.
const outlineWidth = 1

// Draw renders the frame: drag field backgrounds, the recorded knob
// geometry, then text. Queued screenshots are captured afterwards.
func (c *Context) Draw(screen *ebiten.Image) {
	start := time.Now()

	for i := range c.fields {
		f := &c.fields[i]
		vector.FillRect(screen,
			float32(f.rect.X), float32(f.rect.Y),
			float32(f.rect.Width), float32(f.rect.Height),
			f.color.RGBA(), false)
	}

	var pts []knobs.Vec2
	for i := range c.recorder.Commands {
		pts = drawCommand(screen, &c.recorder.Commands[i], pts[:0])
	}
	c.drawTexts(screen)

	c.flushScreenshots(screen)
	c.debugLog(time.Since(start))
}

// drawCommand rasterizes one recorded command. pts is scratch space for
// flattened geometry and is returned for reuse.
func drawCommand(dst *ebiten.Image, cmd *knobs.DrawCommand, pts []knobs.Vec2) []knobs.Vec2 {
	drawOp := &vector.DrawPathOptions{AntiAlias: true}
	drawOp.ColorScale.ScaleWithColor(cmd.Color.RGBA())

	var path vector.Path
	switch cmd.Type {
	case knobs.CommandCircle:
		pts = knobs.CirclePoints(pts, cmd.Points[0], cmd.Radius, cmd.Segments)
		appendPolyline(&path, pts)
		path.Close()
		if cmd.Filled {
			vector.FillPath(dst, &path, nil, drawOp)
			return pts
		}
		vector.StrokePath(dst, &path, &vector.StrokeOptions{
			Width:    outlineWidth,
			LineJoin: vector.LineJoinRound,
		}, drawOp)

	case knobs.CommandLine:
		path.MoveTo(float32(cmd.Points[0].X), float32(cmd.Points[0].Y))
		path.LineTo(float32(cmd.Points[1].X), float32(cmd.Points[1].Y))
		vector.StrokePath(dst, &path, &vector.StrokeOptions{
			Width: float32(cmd.Thickness),
		}, drawOp)

	case knobs.CommandBezier:
		p := cmd.Points
		pts = knobs.FlattenCubic(pts, p[0], p[1], p[2], p[3], cmd.Segments)
		appendPolyline(&path, pts)
		vector.StrokePath(dst, &path, &vector.StrokeOptions{
			Width:    float32(cmd.Thickness),
			LineJoin: vector.LineJoinRound,
		}, drawOp)
	}
	return pts
}

func appendPolyline(path *vector.Path, pts []knobs.Vec2) {
	for i, p := range pts {
		if i == 0 {
			path.MoveTo(float32(p.X), float32(p.Y))
		} else {
			path.LineTo(float32(p.X), float32(p.Y))
		}
	}
}
