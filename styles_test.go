package knobs

import (
	"bytes"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var (
	testCircle = SolidColorSet(Color{0.2, 0.2, 0.2, 1})
	testAccent = SolidColorSet(Color{1, 0.5, 0, 1})
	testTrack  = SolidColorSet(Color{0.4, 0.4, 0.4, 1})
)

func knobAt(t *testing.T, value float64) (*fakeHost, *Knob) {
	t.Helper()
	h := newFakeHost()
	v := value
	k, err := NewKnob(h, "k", &v, 0, 1, 0, 30)
	if err != nil {
		t.Fatal(err)
	}
	return h, k
}

func TestStyleCommandCounts(t *testing.T) {
	palette := Palette{Circle: testCircle, Accent: testAccent, Track: testTrack, Steps: 5}
	tests := []struct {
		style Style
		value float64
		want  RecorderStats
	}{
		{StyleWiper, 0.5, RecorderStats{Circles: 1, Beziers: 4}},
		{StyleWiper, 0, RecorderStats{Circles: 1, Beziers: 2}},
		{StyleWiperOnly, 0.5, RecorderStats{Beziers: 4}},
		{StyleWiperOnly, 0.005, RecorderStats{Beziers: 2}},
		{StyleWiperDot, 0.5, RecorderStats{Circles: 2, Beziers: 2}},
		{StyleTick, 0.5, RecorderStats{Circles: 1, Lines: 1}},
		{StyleDot, 0.5, RecorderStats{Circles: 2}},
		{StyleSpace, 0.5, RecorderStats{Circles: 1, Beziers: 6}},
		{StyleSpace, 0, RecorderStats{Circles: 1}},
		{StyleStepped, 0.5, RecorderStats{Circles: 2, Lines: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.style.String(), func(t *testing.T) {
			h, k := knobAt(t, tt.value)
			tt.style.Draw(k, palette)
			if diff := cmp.Diff(tt.want, h.Stats()); diff != "" {
				t.Errorf("value %v: stats mismatch (-want +got):\n%s", tt.value, diff)
			}
		})
	}
}

func TestWiperProgressArcEndsAtAngle(t *testing.T) {
	h, k := knobAt(t, 0.6)
	DrawWiperKnob(k, testCircle, testAccent, testTrack)

	// circle, two track halves, two wiper halves
	last := h.Commands[len(h.Commands)-1]
	if last.Color != testAccent.Base {
		t.Fatalf("last command color = %v, want accent", last.Color)
	}
	end := last.Points[3].Sub(k.Center)
	if !angleNear(math.Atan2(end.Y, end.X), k.Angle, 1e-9) {
		t.Errorf("wiper ends at %v, want %v", math.Atan2(end.Y, end.X), k.Angle)
	}
	if math.Abs(end.Len()-0.8*k.Radius) > 1e-9 {
		t.Errorf("wiper radius = %v, want %v", end.Len(), 0.8*k.Radius)
	}
}

func TestSteppedTickAngles(t *testing.T) {
	h, k := knobAt(t, 0.5)
	DrawSteppedKnob(k, 5, testCircle, testAccent, testTrack)

	var got []float64
	for _, c := range h.Commands {
		if c.Type != CommandLine {
			continue
		}
		d := c.Points[0].Sub(k.Center)
		if math.Abs(d.Len()-0.9*k.Radius) > 1e-9 {
			t.Errorf("tick outer radius = %v, want %v", d.Len(), 0.9*k.Radius)
		}
		got = append(got, math.Atan2(d.Y, d.X))
	}
	if len(got) != 5 {
		t.Fatalf("got %d ticks, want 5", len(got))
	}
	for n, a := range got {
		want := AngleMin + float64(n)*(AngleMax-AngleMin)/4
		if !angleNear(a, want, 1e-9) {
			t.Errorf("tick %d at %v, want %v", n, a, want)
		}
	}
}

func TestSteppedClampsSteps(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)

	for _, steps := range []int{-1, 0, 1} {
		h, k := knobAt(t, 0.5)
		DrawSteppedKnob(k, steps, testCircle, testAccent, testTrack)
		if got := h.Stats().Lines; got != 2 {
			t.Errorf("steps=%d: %d ticks, want 2", steps, got)
		}
	}
	if !strings.Contains(buf.String(), "at least 2 steps") {
		t.Errorf("expected a warning, log was %q", buf.String())
	}
}

func TestSpaceKnobCenterShrinks(t *testing.T) {
	tests := []struct {
		value float64
		want  float64
	}{
		{0, 0.3},
		{0.5, 0.25},
		{1, 0.2},
	}
	for _, tt := range tests {
		h, k := knobAt(t, tt.value)
		DrawSpaceKnob(k, testCircle, testAccent)
		if got := h.Commands[0].Radius; math.Abs(got-tt.want*k.Radius) > 1e-9 {
			t.Errorf("value %v: center radius = %v, want %v", tt.value, got, tt.want*k.Radius)
		}
	}
}

func TestParseStyle(t *testing.T) {
	for _, s := range Styles() {
		got, err := ParseStyle(strings.ToUpper(s.String()))
		if err != nil {
			t.Errorf("ParseStyle(%q): %v", s, err)
			continue
		}
		if got != s {
			t.Errorf("ParseStyle(%q) = %v", s, got)
		}
	}
	if _, err := ParseStyle("knurled"); err == nil {
		t.Error("expected error for unknown style")
	}
}

func TestStyleString(t *testing.T) {
	if got := StyleWiperDot.String(); got != "wiper-dot" {
		t.Errorf("String() = %q, want wiper-dot", got)
	}
	if got := Style(42).String(); got != "Style(42)" {
		t.Errorf("String() = %q, want Style(42)", got)
	}
	if n := len(Styles()); n != 7 {
		t.Errorf("len(Styles()) = %d, want 7", n)
	}
}

func TestUnknownStyleDrawsNothing(t *testing.T) {
	h, k := knobAt(t, 0.5)
	Style(99).Draw(k, Palette{})
	if len(h.Commands) != 0 {
		t.Errorf("unknown style recorded %d commands", len(h.Commands))
	}
}
