package entity

import "math"

// Jump animation
const (
	JumpStep   = 0.07 // Radians of arch per tick
	JumpHeight = 30   // Peak lift in pixels
)

// Dog is the actor that starts a round. It sits at a fixed anchor and
// performs a single hop; landing releases the magpies.
type Dog struct {
	X, Y int
	W, H int

	phase   float64
	jumping bool
	started bool
}

func NewDog(x, y, w, h int) *Dog {
	return &Dog{X: x, Y: y, W: w, H: h}
}

// BeginJump starts the hop from the ground.
func (d *Dog) BeginJump() {
	d.started = true
	d.jumping = true
	d.phase = 0
}

// Tick advances the hop. It returns true on the single tick the dog lands.
func (d *Dog) Tick() bool {
	if !d.jumping {
		return false
	}
	d.phase += JumpStep
	if d.phase >= math.Pi {
		d.jumping = false
		return true
	}
	return false
}

// RenderOffset is the vertical sprite offset for the current tick.
func (d *Dog) RenderOffset() int {
	if !d.jumping {
		return 0
	}
	return -int(math.Round(JumpHeight * math.Abs(math.Sin(d.phase))))
}

// HitTest reports whether (x, y) falls inside a width×height box anchored
// at the dog's position. Edges count as inside.
func (d *Dog) HitTest(x, y, width, height int) bool {
	return d.X <= x && x <= d.X+width &&
		d.Y <= y && y <= d.Y+height
}

// Clicked is HitTest against the dog's own sprite box.
func (d *Dog) Clicked(x, y int) bool {
	return d.HitTest(x, y, d.W, d.H)
}

func (d *Dog) Jumping() bool { return d.jumping }

func (d *Dog) Started() bool { return d.started }

func (d *Dog) Phase() float64 { return d.phase }
