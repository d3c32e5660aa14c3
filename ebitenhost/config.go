package ebitenhost

import (
	"time"

	"github.com/phanxgames/knobs"
)

// Config holds the tunables of a Context. Zero fields fall back to the
// values from DefaultConfig.
type Config struct {
	// DragThreshold is the dead zone in pixels used when a widget asks for a
	// drag delta with a negative threshold.
	DragThreshold float64
	// DoubleClickTime is the longest gap between two presses that still
	// counts as a double-click.
	DoubleClickTime time.Duration
	// DoubleClickDistance is how far in pixels the second press may land
	// from the first.
	DoubleClickDistance float64

	// FontData is a TTF/OTF font. Nil uses Go Regular.
	FontData []byte
	FontSize float64

	// Padding offsets the layout origin from the top-left of the screen.
	Padding float64
	// ItemSpacing is the vertical gap added after every item.
	ItemSpacing float64
	// FramePadding is the inner padding of drag fields.
	FramePadding float64

	Theme Theme

	// Debug enables per-frame stats and duplicate id checks. Output goes
	// through knobs.Logger at debug/warn level.
	Debug bool
	// ScreenshotDir is the directory where Screenshot writes PNG files.
	ScreenshotDir string
}

// Theme colors the parts of the UI that the host draws itself.
type Theme struct {
	Text         knobs.Color
	Frame        knobs.Color
	FrameHovered knobs.Color
	FrameActive  knobs.Color
}

// DefaultTheme returns a dark theme close to Dear ImGui's defaults.
func DefaultTheme() Theme {
	return Theme{
		Text:         knobs.Color{R: 1, G: 1, B: 1, A: 1},
		Frame:        knobs.Color{R: 0.16, G: 0.29, B: 0.48, A: 0.54},
		FrameHovered: knobs.Color{R: 0.26, G: 0.59, B: 0.98, A: 0.40},
		FrameActive:  knobs.Color{R: 0.26, G: 0.59, B: 0.98, A: 0.67},
	}
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		DragThreshold:       4,
		DoubleClickTime:     300 * time.Millisecond,
		DoubleClickDistance: 6,
		FontSize:            14,
		Padding:             8,
		ItemSpacing:         4,
		FramePadding:        3,
		Theme:               DefaultTheme(),
		ScreenshotDir:       "screenshots",
	}
}

// withDefaults fills every zero field from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.DragThreshold == 0 {
		c.DragThreshold = d.DragThreshold
	}
	if c.DoubleClickTime == 0 {
		c.DoubleClickTime = d.DoubleClickTime
	}
	if c.DoubleClickDistance == 0 {
		c.DoubleClickDistance = d.DoubleClickDistance
	}
	if c.FontSize == 0 {
		c.FontSize = d.FontSize
	}
	if c.Padding == 0 {
		c.Padding = d.Padding
	}
	if c.ItemSpacing == 0 {
		c.ItemSpacing = d.ItemSpacing
	}
	if c.FramePadding == 0 {
		c.FramePadding = d.FramePadding
	}
	if c.Theme == (Theme{}) {
		c.Theme = d.Theme
	}
	if c.ScreenshotDir == "" {
		c.ScreenshotDir = d.ScreenshotDir
	}
	return c
}
