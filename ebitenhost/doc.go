// Package ebitenhost is an interactive knobs.Host on Ebitengine.
//
// A [Context] tracks the pointer, hit regions, and an active item across
// frames, lays widgets out top to bottom (optionally in columns), and
// records knob geometry for [Context.Draw]. Drag fields accept horizontal
// drags and typed numbers.
//
// For automated runs, input can be injected (InjectClick, InjectDrag,
// InjectChars, ...) or scripted from JSON with [LoadTestScript]; scripts may
// also capture screenshots.
//
//	ui, err := ebitenhost.NewContext(ebitenhost.DefaultConfig())
//	...
//	func (g *Game) Update() error {
//		g.ui.Update()
//		k, err := knobs.KnobWithDrag(g.ui, "gain", "Gain", &g.gain, -6, 6, 0, "%.2fdB")
//		if err != nil {
//			return err
//		}
//		knobs.DrawWiperKnob(k, body, accent, track)
//		return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) { g.ui.Draw(screen) }
package ebitenhost
