package game

// Control is a canonical game action a physical key maps to.
type Control int

const (
	ControlNone Control = iota
	ControlUp
	ControlDown
	ControlLeft
	ControlRight
	ControlActivate
	ControlPause
	ControlFire
)

// KeyMap maps KeyboardEvent.key names to controls. WASD and the arrow keys
// both steer the tank.
var KeyMap = map[string]Control{
	"ArrowUp":    ControlUp,
	"w":          ControlUp,
	"W":          ControlUp,
	"ArrowDown":  ControlDown,
	"s":          ControlDown,
	"S":          ControlDown,
	"ArrowLeft":  ControlLeft,
	"a":          ControlLeft,
	"A":          ControlLeft,
	"ArrowRight": ControlRight,
	"d":          ControlRight,
	"D":          ControlRight,
	"e":          ControlActivate,
	"E":          ControlActivate,
	"p":          ControlPause,
	"P":          ControlPause,
	"Escape":     ControlPause,
	" ":          ControlFire,
}

// TranslateKey converts a key name to its control.
func TranslateKey(key string) Control {
	return KeyMap[key]
}

// InputState is written by input event handlers and read once per tick.
// Later writes overwrite earlier ones; nothing is queued except the
// one-shot click and activation triggers.
type InputState struct {
	Up, Down, Left, Right bool
	PointerX, PointerY    float64
	Firing                bool

	clicked  bool
	activate bool
}

// SetControl records a press or release of a movement or fire control.
// It returns false for controls that are not held states.
func (in *InputState) SetControl(c Control, down bool) bool {
	switch c {
	case ControlUp:
		in.Up = down
	case ControlDown:
		in.Down = down
	case ControlLeft:
		in.Left = down
	case ControlRight:
		in.Right = down
	case ControlFire:
		in.SetFiring(down)
	case ControlActivate:
		if down {
			in.activate = true
		}
	default:
		return false
	}
	return true
}

// SetPointer records the cursor position in world coordinates.
func (in *InputState) SetPointer(x, y float64) {
	in.PointerX = x
	in.PointerY = y
}

// SetFiring records the fire button state. A press also queues one shot so
// that short clicks between ticks still fire.
func (in *InputState) SetFiring(down bool) {
	if down && !in.Firing {
		in.clicked = true
	}
	in.Firing = down
}

// RequestActivation queues a power-up re-activation for the next tick.
func (in *InputState) RequestActivation() {
	in.activate = true
}

// Direction returns the raw movement axes, each in {-1, 0, 1}.
func (in *InputState) Direction() (dx, dy float64) {
	if in.Up {
		dy--
	}
	if in.Down {
		dy++
	}
	if in.Left {
		dx--
	}
	if in.Right {
		dx++
	}
	return dx, dy
}

// Reset releases every control.
func (in *InputState) Reset() {
	*in = InputState{PointerX: in.PointerX, PointerY: in.PointerY}
}

// frameInput is the input as sampled for one tick.
type frameInput struct {
	InputState
	Fire     bool
	Activate bool
}

// sample copies the state for a tick and clears the one-shot triggers.
func (in *InputState) sample() frameInput {
	f := frameInput{
		InputState: *in,
		Fire:       in.Firing || in.clicked,
		Activate:   in.activate,
	}
	in.clicked = false
	in.activate = false
	return f
}
