package ebitenhost

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/knobs"
)

// ttfFont wraps Ebitengine's text/v2 for TrueType font rendering.
type ttfFont struct {
	face *text.GoTextFace
	lh   float64 // cached line height
}

// loadFont loads a TrueType font from raw TTF/OTF data at the given size.
// Nil data loads Go Regular.
func loadFont(ttfData []byte, size float64) (*ttfFont, error) {
	if ttfData == nil {
		ttfData = goregular.TTF
	}
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("ebitenhost: failed to parse TTF data: %w", err)
	}
	face := &text.GoTextFace{
		Source: source,
		Size:   size,
	}
	m := face.Metrics()
	return &ttfFont{
		face: face,
		lh:   m.HAscent + m.HDescent + m.HLineGap,
	}, nil
}

// measure returns the width and height of the rendered text.
func (f *ttfFont) measure(s string) (width, height float64) {
	return text.Measure(s, f.face, f.lh)
}

// textItem is a string queued for Draw.
type textItem struct {
	pos   knobs.Vec2
	s     string
	color knobs.Color
}

// CalcTextSize implements knobs.Layout. Text is never wrapped; wrapWidth is
// accepted for interface compatibility.
func (c *Context) CalcTextSize(s string, wrapWidth float64) knobs.Vec2 {
	w, h := c.font.measure(s)
	return knobs.Vec2{X: w, Y: max(h, c.font.lh)}
}

// TextLineHeight implements knobs.Layout.
func (c *Context) TextLineHeight() float64 { return c.font.lh }

// Text implements knobs.Layout. It draws s at the cursor in the theme text
// color and advances to the next row.
func (c *Context) Text(s string) {
	size := c.CalcTextSize(s, 0)
	r := c.placeItem(size)
	c.texts = append(c.texts, textItem{
		pos:   knobs.Vec2{X: r.X, Y: r.Y},
		s:     s,
		color: c.cfg.Theme.Text,
	})
}

// Texts returns the strings queued this frame, in order.
func (c *Context) Texts() []string {
	out := make([]string, len(c.texts))
	for i, t := range c.texts {
		out[i] = t.s
	}
	return out
}

func (c *Context) drawTexts(dst *ebiten.Image) {
	for i := range c.texts {
		t := &c.texts[i]
		op := &text.DrawOptions{}
		op.GeoM.Translate(t.pos.X, t.pos.Y)
		op.ColorScale.ScaleWithColor(t.color.RGBA())
		op.LineSpacing = c.font.lh
		text.Draw(dst, t.s, c.font.face, op)
	}
}
