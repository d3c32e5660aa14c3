package ebitenhost

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/knobs"
)

const numButtons = 3

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt key
	ModMeta                           // Meta/Command key
)

// Key identifies the editing keys the host reacts to.
type Key uint8

const (
	KeyEnter Key = iota + 1
	KeyEscape
	KeyBackspace
)

var keyNames = map[string]Key{
	"enter":     KeyEnter,
	"escape":    KeyEscape,
	"backspace": KeyBackspace,
}

// inputFrame is the raw input of one frame, from ebiten or the inject queue.
type inputFrame struct {
	x, y    float64
	buttons [numButtons]bool
	mods    KeyModifiers
	chars   []rune
	keys    []Key
}

// inputSource produces the input for a frame. prev is the previous frame,
// for sources that only know about changes.
type inputSource interface {
	poll(prev *inputFrame, dst *inputFrame)
}

// ebitenSource polls the live Ebitengine input state.
type ebitenSource struct {
	touchIDs []ebiten.TouchID
}

// Key repeat timing, in ticks.
const (
	keyRepeatDelay    = 30
	keyRepeatInterval = 3
)

func (s *ebitenSource) poll(prev *inputFrame, dst *inputFrame) {
	mx, my := ebiten.CursorPosition()
	dst.x, dst.y = float64(mx), float64(my)
	dst.buttons[knobs.MouseButtonLeft] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	dst.buttons[knobs.MouseButtonRight] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	dst.buttons[knobs.MouseButtonMiddle] = ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)

	// The first touch acts as the left button when the mouse is idle.
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	if len(s.touchIDs) > 0 && !dst.buttons[knobs.MouseButtonLeft] {
		tx, ty := ebiten.TouchPosition(s.touchIDs[0])
		dst.x, dst.y = float64(tx), float64(ty)
		dst.buttons[knobs.MouseButtonLeft] = true
	}

	dst.mods = readModifiers()
	dst.chars = ebiten.AppendInputChars(dst.chars[:0])
	dst.keys = dst.keys[:0]
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeyNumpadEnter) {
		dst.keys = append(dst.keys, KeyEnter)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		dst.keys = append(dst.keys, KeyEscape)
	}
	if repeatingKeyPressed(ebiten.KeyBackspace) {
		dst.keys = append(dst.keys, KeyBackspace)
	}
}

// repeatingKeyPressed reports a press on the first tick and then at the
// repeat interval while the key is held.
func repeatingKeyPressed(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= keyRepeatDelay && (d-keyRepeatDelay)%keyRepeatInterval == 0
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

// buttonState tracks one mouse button across frames.
type buttonState struct {
	down     bool
	pressed  bool // went down this frame
	released bool // went up this frame

	doubleClicked bool

	pressPos  knobs.Vec2 // where the button went down
	dragStart knobs.Vec2 // origin of the drag delta, moved by resets
	maxDistSq float64    // furthest squared distance from pressPos since press

	lastPress    time.Duration
	lastPressPos knobs.Vec2
	armed        bool // lastPress may pair with the next press
}

// update runs the press/release state machine for one frame.
func (b *buttonState) update(down bool, pos knobs.Vec2, now time.Duration, cfg *Config) {
	b.pressed = down && !b.down
	b.released = !down && b.down
	b.doubleClicked = false
	b.down = down

	if b.pressed {
		d := pos.Sub(b.lastPressPos)
		if b.armed && now-b.lastPress <= cfg.DoubleClickTime && d.Len() <= cfg.DoubleClickDistance {
			b.doubleClicked = true
			// A third press starts a new pair.
			b.armed = false
		} else {
			b.armed = true
			b.lastPress = now
			b.lastPressPos = pos
		}
		b.pressPos = pos
		b.dragStart = pos
		b.maxDistSq = 0
	}
	if b.down {
		d := pos.Sub(b.pressPos)
		b.maxDistSq = max(b.maxDistSq, d.Dot(d))
	}
}

// dragDelta returns the motion since the press or the last reset once the
// pointer has moved further than threshold from the press position.
func (b *buttonState) dragDelta(pos knobs.Vec2, threshold float64) knobs.Vec2 {
	if !b.down || b.maxDistSq < threshold*threshold {
		return knobs.Vec2{}
	}
	return pos.Sub(b.dragStart)
}
