// Package knobs renders rotary knob controls for immediate-mode GUIs.
//
// A knob maps a bounded float64 onto a fixed 270 degree sweep, updates the
// value from vertical mouse drag (double-click resets it to its default), and
// draws one of several faces built from circles, ticks, dots, and arcs
// approximated with cubic Beziers.
//
// # Hosts
//
// The package never talks to a window system directly. It consumes the
// [Host] capability set: hit regions and pointer queries ([Interaction]),
// cursor and text layout ([Layout]), and a [DrawList] for circles, lines,
// and cubic Beziers. Two hosts ship with the module:
//
//   - ebitenhost: an interactive host on [Ebitengine].
//   - ggraster: an offscreen host on [gg] for rendering knob images.
//
// Package tween eases values and colors over time for callers that want
// animated resets or palettes; the core itself keeps no animation state.
//
// # Quick start
//
// Knobs are rebuilt every frame. The caller owns the value:
//
//	var gain float64
//
//	func (g *Game) Update() error {
//		g.ui.Update()
//		k, err := knobs.KnobWithDrag(g.ui, "gain", "Gain", &gain, -6, 6, 0, "%.2fdB")
//		if err != nil {
//			return err
//		}
//		knobs.DrawWiperKnob(k, body, highlight, track)
//		return nil
//	}
//
// Styles can also be picked at runtime through [Style] and [Palette]:
//
//	style, _ := knobs.ParseStyle("wiper-dot")
//	style.Draw(k, knobs.Palette{Circle: body, Accent: highlight, Track: track})
//
// # Geometry
//
// Angles are radians with 0 along +X, increasing clockwise on screen. Every
// knob sweeps from [AngleMin] (0.75π) to [AngleMax] (2.25π). Draw helpers on
// [Knob] take sizes and radii as fractions of the knob radius, so faces scale
// with the control.
//
// Arcs are drawn by [DrawArc], which splits the sweep into several cubic
// Beziers ([BezierArcControlPoints]) and overlaps them slightly at the joints.
// The overlap is tuned for opaque colors.
//
// [Ebitengine]: https://ebitengine.org
// [gg]: https://github.com/gogpu/gg
package knobs
