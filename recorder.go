package knobs

// CommandType identifies the primitive stored in a DrawCommand.
type CommandType uint8

const (
	CommandCircle CommandType = iota // AddCircle
	CommandLine                      // AddLine
	CommandBezier                    // AddBezierCubic
)

// String returns the primitive name.
func (t CommandType) String() string {
	switch t {
	case CommandCircle:
		return "circle"
	case CommandLine:
		return "line"
	case CommandBezier:
		return "bezier"
	default:
		return "unknown"
	}
}

// DrawCommand is one recorded draw-list call.
//
// Points holds the center (circle), the two endpoints (line), or
// p0, c1, c2, p3 (bezier). Unused entries are zero.
type DrawCommand struct {
	Type      CommandType
	Points    [4]Vec2
	Radius    float64
	Color     Color
	Thickness float64
	Segments  int
	Filled    bool
}

// RecorderStats counts recorded commands by type.
type RecorderStats struct {
	Circles int
	Lines   int
	Beziers int
}

// Total returns the number of recorded commands.
func (s RecorderStats) Total() int {
	return s.Circles + s.Lines + s.Beziers
}

// Recorder is a DrawList that stores every call in order. Backends record a
// frame and rasterize it later; tests inspect Commands directly.
type Recorder struct {
	Commands []DrawCommand
}

var _ DrawList = (*Recorder)(nil)

// AddCircle implements DrawList.
func (r *Recorder) AddCircle(center Vec2, radius float64, col Color, segments int, filled bool) {
	r.Commands = append(r.Commands, DrawCommand{
		Type:     CommandCircle,
		Points:   [4]Vec2{center},
		Radius:   radius,
		Color:    col,
		Segments: segments,
		Filled:   filled,
	})
}

// AddLine implements DrawList.
func (r *Recorder) AddLine(p0, p1 Vec2, col Color, thickness float64) {
	r.Commands = append(r.Commands, DrawCommand{
		Type:      CommandLine,
		Points:    [4]Vec2{p0, p1},
		Color:     col,
		Thickness: thickness,
	})
}

// AddBezierCubic implements DrawList.
func (r *Recorder) AddBezierCubic(p0, c1, c2, p3 Vec2, col Color, thickness float64, segments int) {
	r.Commands = append(r.Commands, DrawCommand{
		Type:      CommandBezier,
		Points:    [4]Vec2{p0, c1, c2, p3},
		Color:     col,
		Thickness: thickness,
		Segments:  segments,
	})
}

// Reset drops all recorded commands, keeping the backing array.
func (r *Recorder) Reset() {
	r.Commands = r.Commands[:0]
}

// Replay issues every recorded command to dst in recording order.
func (r *Recorder) Replay(dst DrawList) {
	for i := range r.Commands {
		cmd := &r.Commands[i]
		switch cmd.Type {
		case CommandCircle:
			dst.AddCircle(cmd.Points[0], cmd.Radius, cmd.Color, cmd.Segments, cmd.Filled)
		case CommandLine:
			dst.AddLine(cmd.Points[0], cmd.Points[1], cmd.Color, cmd.Thickness)
		case CommandBezier:
			dst.AddBezierCubic(cmd.Points[0], cmd.Points[1], cmd.Points[2], cmd.Points[3],
				cmd.Color, cmd.Thickness, cmd.Segments)
		}
	}
}

// Stats counts the recorded commands by type.
func (r *Recorder) Stats() RecorderStats {
	var s RecorderStats
	for i := range r.Commands {
		switch r.Commands[i].Type {
		case CommandCircle:
			s.Circles++
		case CommandLine:
			s.Lines++
		case CommandBezier:
			s.Beziers++
		}
	}
	return s
}
