package ebitenhost

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/phanxgames/knobs"
)

// fieldFrame is a drag field background queued for Draw.
type fieldFrame struct {
	rect  knobs.Rect
	color knobs.Color
}

// DragFloat implements knobs.Layout. Dragging horizontally changes *v by
// speed per pixel, clamped to [min, max]. A double-click or ctrl+click
// switches the field to text entry: Enter parses and commits the typed
// number, Escape or a click elsewhere cancels. Returns true when *v
// changed this frame.
func (c *Context) DragFloat(id string, v *float64, speed, min, max float64, format string) bool {
	height := c.font.lh + 2*c.cfg.FramePadding
	r := c.placeItem(knobs.Vec2{X: c.itemWidth(), Y: height})
	hovered, held, _ := c.buttonBehavior(id, r)
	left := &c.buttons[knobs.MouseButtonLeft]

	if c.editID == id {
		return c.editField(id, r, v, min, max, hovered)
	}

	if hovered && (left.doubleClicked || (left.pressed && c.mods&ModCtrl != 0)) {
		c.beginEdit(id, *v)
		// The press that opened the editor is not a drag.
		c.activeID = ""
		c.lastItem.active = false
		c.queueField(r, c.cfg.Theme.FrameActive)
		c.queueFieldText(r, string(c.editBuf)+"|")
		return false
	}

	var changed bool
	if held {
		if d := c.MouseDragDelta(knobs.MouseButtonLeft, -1); d.X != 0 {
			nv := clampRange(*v+d.X*speed, min, max)
			changed = nv != *v
			*v = nv
			c.ResetMouseDragDelta(knobs.MouseButtonLeft)
		}
	}

	col := c.cfg.Theme.Frame
	switch {
	case held:
		col = c.cfg.Theme.FrameActive
	case hovered:
		col = c.cfg.Theme.FrameHovered
	}
	c.queueField(r, col)
	label := fmt.Sprintf(format, *v)
	if vis := knobs.VisibleLabel(id); vis != "" {
		label = vis + " " + label
	}
	c.queueFieldText(r, label)
	return changed
}

func (c *Context) beginEdit(id string, v float64) {
	c.editID = id
	c.editBuf = append(c.editBuf[:0], []rune(strconv.FormatFloat(v, 'f', -1, 64))...)
}

func (c *Context) endEdit() {
	c.editID = ""
	c.editBuf = c.editBuf[:0]
}

// editField runs one frame of text entry for the field being edited.
func (c *Context) editField(id string, r knobs.Rect, v *float64, min, max float64, hovered bool) bool {
	left := &c.buttons[knobs.MouseButtonLeft]
	var changed bool

	switch {
	case c.keyPressed(KeyEscape) || (left.pressed && !hovered):
		c.endEdit()
	case c.keyPressed(KeyEnter):
		s := string(c.editBuf)
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			knobs.Logger().Warn("ebitenhost: ignoring invalid number", "id", id, "input", s)
		} else {
			nv := clampRange(f, min, max)
			changed = nv != *v
			*v = nv
		}
		c.endEdit()
	default:
		for _, ch := range c.chars {
			if acceptNumberRune(ch) {
				c.editBuf = append(c.editBuf, ch)
			}
		}
		if c.keyPressed(KeyBackspace) && len(c.editBuf) > 0 {
			c.editBuf = c.editBuf[:len(c.editBuf)-1]
		}
	}

	// No drag while the editor owns the field.
	if c.activeID == id {
		c.activeID = ""
		c.lastItem.active = false
	}

	if c.editID == id {
		c.queueField(r, c.cfg.Theme.FrameActive)
		c.queueFieldText(r, string(c.editBuf)+"|")
	} else {
		c.queueField(r, c.cfg.Theme.Frame)
	}
	return changed
}

// Editing reports whether the field with the given id is in text entry.
func (c *Context) Editing(id string) bool { return c.editID == id }

func acceptNumberRune(r rune) bool {
	return unicode.IsDigit(r) || strings.ContainsRune(".-+eE", r)
}

func clampRange(v, min, max float64) float64 {
	if min > max {
		min, max = max, min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func (c *Context) queueField(r knobs.Rect, col knobs.Color) {
	c.fields = append(c.fields, fieldFrame{rect: r, color: col})
}

// queueFieldText centers s inside r.
func (c *Context) queueFieldText(r knobs.Rect, s string) {
	size := c.CalcTextSize(s, 0)
	c.texts = append(c.texts, textItem{
		pos: knobs.Vec2{
			X: r.X + (r.Width-size.X)*0.5,
			Y: r.Y + (r.Height-size.Y)*0.5,
		},
		s:     s,
		color: c.cfg.Theme.Text,
	})
}
