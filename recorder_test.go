package knobs

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRecorderReplay(t *testing.T) {
	var src Recorder
	src.AddCircle(Vec2{1, 2}, 3, ColorWhite, 12, true)
	src.AddLine(Vec2{0, 0}, Vec2{4, 4}, ColorWhite, 2)
	src.AddBezierCubic(Vec2{0, 0}, Vec2{1, 1}, Vec2{2, 1}, Vec2{3, 0}, ColorWhite, 1.5, 16)

	var dst Recorder
	src.Replay(&dst)
	if diff := cmp.Diff(src.Commands, dst.Commands); diff != "" {
		t.Errorf("replay mismatch (-src +dst):\n%s", diff)
	}
}

func TestRecorderStatsAndReset(t *testing.T) {
	var r Recorder
	r.AddCircle(Vec2{}, 1, ColorWhite, 0, false)
	r.AddCircle(Vec2{}, 2, ColorWhite, 0, true)
	r.AddLine(Vec2{}, Vec2{1, 0}, ColorWhite, 1)

	want := RecorderStats{Circles: 2, Lines: 1}
	if diff := cmp.Diff(want, r.Stats()); diff != "" {
		t.Errorf("stats mismatch (-want +got):\n%s", diff)
	}
	if r.Stats().Total() != 3 {
		t.Errorf("Total() = %d, want 3", r.Stats().Total())
	}

	r.Reset()
	if len(r.Commands) != 0 {
		t.Errorf("Reset left %d commands", len(r.Commands))
	}
}

func TestCommandTypeString(t *testing.T) {
	tests := []struct {
		typ  CommandType
		want string
	}{
		{CommandCircle, "circle"},
		{CommandLine, "line"},
		{CommandBezier, "bezier"},
		{CommandType(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.typ.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", tt.typ, got, tt.want)
		}
	}
}
