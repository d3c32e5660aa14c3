package ebitenhost

import (
	"math"
	"testing"
)

const (
	fieldX = 20.0
	fieldY = 12.0
)

// runField runs one frame with a single drag field at the layout origin.
// The field spans x in [8, 148] with the default font size.
func runField(c *Context, v *float64) bool {
	c.Update()
	return c.DragFloat("###f", v, 0.1, -10, 10, "%.1f")
}

func drain(c *Context, v *float64) (changed bool) {
	for c.Pending() > 0 {
		if runField(c, v) {
			changed = true
		}
	}
	return changed
}

func TestDragFloatHorizontalDrag(t *testing.T) {
	tests := []struct {
		name string
		toX  float64
		want float64
	}{
		{"right", fieldX + 50, 5},
		{"left", fieldX - 10, -1},
		{"inside dead zone", fieldX + 2, 0},
		{"clamps", fieldX + 120, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext(t)
			v := 0.0
			c.InjectPress(fieldX, fieldY)
			c.InjectMove(tt.toX, fieldY)
			c.InjectRelease(tt.toX, fieldY)
			changed := drain(c, &v)
			if math.Abs(v-tt.want) > 1e-9 {
				t.Errorf("value = %v, want %v", v, tt.want)
			}
			if changed != (tt.want != 0) {
				t.Errorf("changed = %v", changed)
			}
		})
	}
}

func TestDragFloatCtrlClickTextEntry(t *testing.T) {
	c := newTestContext(t)
	v := 0.0
	c.InjectClickWithModifiers(fieldX, fieldY, ModCtrl)
	drain(c, &v)
	if !c.Editing("###f") {
		t.Fatal("ctrl+click should enter text entry")
	}

	c.InjectKey(KeyBackspace)
	c.InjectChars("-4.25x")
	drain(c, &v)
	if got := string(c.editBuf); got != "-4.25" {
		t.Fatalf("edit buffer = %q, want -4.25", got)
	}

	c.InjectKey(KeyEnter)
	if !drain(c, &v) {
		t.Error("commit should report a change")
	}
	if v != -4.25 {
		t.Errorf("value = %v, want -4.25", v)
	}
	if c.Editing("###f") {
		t.Error("still editing after Enter")
	}
}

func TestDragFloatDoubleClickTextEntry(t *testing.T) {
	c := newTestContext(t)
	v := 1.5
	c.InjectDoubleClick(fieldX, fieldY)
	drain(c, &v)
	if !c.Editing("###f") {
		t.Fatal("double-click should enter text entry")
	}
	if got := string(c.editBuf); got != "1.5" {
		t.Errorf("edit buffer = %q, want 1.5", got)
	}
	if v != 1.5 {
		t.Errorf("value changed by the double-click: %v", v)
	}
}

func TestDragFloatTextEntryOutcomes(t *testing.T) {
	tests := []struct {
		name   string
		typed  string
		finish func(c *Context)
		want   float64
	}{
		{"commit clamps", "99", func(c *Context) { c.InjectKey(KeyEnter) }, 10},
		{"escape cancels", "7", func(c *Context) { c.InjectKey(KeyEscape) }, 2},
		{"click away cancels", "7", func(c *Context) { c.InjectClick(400, 400) }, 2},
		{"invalid keeps value", "--", func(c *Context) { c.InjectKey(KeyEnter) }, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestContext(t)
			v := 2.0
			c.InjectClickWithModifiers(fieldX, fieldY, ModCtrl)
			c.InjectKey(KeyBackspace)
			c.InjectChars(tt.typed)
			drain(c, &v)
			tt.finish(c)
			drain(c, &v)
			if v != tt.want {
				t.Errorf("value = %v, want %v", v, tt.want)
			}
			if c.Editing("###f") {
				t.Error("text entry not closed")
			}
		})
	}
}

func TestDragFloatLabel(t *testing.T) {
	c := newTestContext(t)
	v := 0.25
	c.Update()
	c.DragFloat("Gain###g", &v, 0.1, 0, 1, "%.2f")
	if got := c.Texts(); len(got) != 1 || got[0] != "Gain 0.25" {
		t.Errorf("texts = %q, want [\"Gain 0.25\"]", got)
	}
	if len(c.fields) != 1 {
		t.Fatalf("fields = %d, want 1", len(c.fields))
	}
	if w := c.fields[0].rect.Width; w != c.Config().FontSize*10 {
		t.Errorf("default field width = %v", w)
	}
}

func TestClampRange(t *testing.T) {
	tests := []struct {
		v, min, max, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{11, 10, 0, 10},
	}
	for _, tt := range tests {
		if got := clampRange(tt.v, tt.min, tt.max); got != tt.want {
			t.Errorf("clampRange(%v, %v, %v) = %v, want %v", tt.v, tt.min, tt.max, got, tt.want)
		}
	}
}
