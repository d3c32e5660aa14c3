package ebitenhost

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/knobs"
)

// Shot is a screenshot written by Draw.
type Shot struct {
	Label string
	Frame uint64
	// Stats counts the knob geometry drawn in the captured frame.
	Stats knobs.RecorderStats
	Path  string
}

// fileName is <stamp>_f<frame>_<label>_<commands>cmd.png, so shots of one
// script run sort by frame and show at a glance whether anything was drawn.
func (s Shot) fileName(stamp string) string {
	return fmt.Sprintf("%s_f%06d_%s_%dcmd.png", stamp, s.Frame, sanitizeLabel(s.Label), s.Stats.Total())
}

// Screenshot queues a labeled capture of the current frame. It is taken at
// the end of the next Draw and written to Config.ScreenshotDir.
func (c *Context) Screenshot(label string) {
	c.pendingShots = append(c.pendingShots, label)
}

// Shots returns the screenshots written so far, oldest first.
func (c *Context) Shots() []Shot { return c.shots }

// flushScreenshots captures screen once for all queued labels. Called at
// the end of Draw, before the recorder is reset by the next Update.
func (c *Context) flushScreenshots(screen *ebiten.Image) {
	if len(c.pendingShots) == 0 {
		return
	}
	c.saveShots(screenRGBA(screen))
}

// saveShots writes img once per queued label.
func (c *Context) saveShots(img image.Image) {
	defer func() { c.pendingShots = c.pendingShots[:0] }()

	dir := c.cfg.ScreenshotDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		knobs.Logger().Error("ebitenhost: screenshot", "dir", dir, "err", err)
		return
	}
	stamp := time.Now().Format("20060102_150405")
	stats := c.recorder.Stats()
	for _, label := range c.pendingShots {
		shot := Shot{Label: label, Frame: c.frame, Stats: stats}
		shot.Path = filepath.Join(dir, shot.fileName(stamp))
		if err := writePNG(shot.Path, img); err != nil {
			knobs.Logger().Error("ebitenhost: screenshot", "label", label, "err", err)
			continue
		}
		c.shots = append(c.shots, shot)
		knobs.Logger().Debug("ebitenhost: screenshot written",
			"path", shot.Path,
			"frame", shot.Frame,
			"commands", stats.Total(),
		)
	}
}

// screenRGBA copies the screen pixels. Ebitengine hands out premultiplied
// RGBA, which is image.RGBA's layout; the PNG encoder unpremultiplies.
func screenRGBA(screen *ebiten.Image) *image.RGBA {
	b := screen.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	screen.ReadPixels(img.Pix)
	return img
}

// Screenshots favor encode speed; a scripted run may take dozens.
var shotEncoder = png.Encoder{CompressionLevel: png.BestSpeed}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ebitenhost: create %s: %w", path, err)
	}
	if err := shotEncoder.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("ebitenhost: encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel keeps ASCII letters, digits, '-' and '.', replaces every
// other rune with '_', and names an empty label "unlabeled".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	return strings.Map(func(r rune) rune {
		if r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r)) || r == '-' || r == '.' {
			return r
		}
		return '_'
	}, label)
}
