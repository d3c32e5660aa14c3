package ebitenhost

import (
	"time"

	"github.com/phanxgames/knobs"
)

// debugLog logs per-frame draw stats. Only active with Config.Debug.
func (c *Context) debugLog(drawTime time.Duration) {
	if !c.cfg.Debug {
		return
	}
	stats := c.recorder.Stats()
	knobs.Logger().Debug("ebitenhost: frame",
		"frame", c.frame,
		"circles", stats.Circles,
		"lines", stats.Lines,
		"beziers", stats.Beziers,
		"fields", len(c.fields),
		"texts", len(c.texts),
		"draw", drawTime,
	)
}

// debugCheckID warns when an item id is submitted twice in one frame. Two
// items sharing an id share hover and active state.
func (c *Context) debugCheckID(id string) {
	if c.seenIDs == nil {
		return
	}
	if _, dup := c.seenIDs[id]; dup {
		knobs.Logger().Warn("ebitenhost: duplicate item id", "id", id, "frame", c.frame)
		return
	}
	c.seenIDs[id] = struct{}{}
}
