package entity

import "image"

// Magpie tuning
const (
	MagpieRadius = 32  // Body radius used for bounds and hit tests
	GroundBand   = 150 // Strip above the bottom edge magpies never enter
	EscapeStep   = 12  // Upward pixels per tick while escaping
	EscapeTicks  = 30  // Ticks an escaping magpie stays off the board
)

// Rand is the subset of *math/rand.Rand the entities draw from.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// Magpie is a bouncing target. A hit sends it flying off the top of the
// screen; it then reappears somewhere inside the field.
type Magpie struct {
	X, Y   float64
	VX, VY float64

	Escaping    bool
	EscapeTicks int
}

// SpawnMagpie places a magpie on the left edge at a random height,
// heading right.
func SpawnMagpie(rng Rand, speed float64, screenHeight, radius int) *Magpie {
	return &Magpie{
		X:  float64(radius),
		Y:  float64(randInt(rng, radius, screenHeight-GroundBand-radius)),
		VX: speed * uniform(rng, 0.9, 1.2),
		VY: uniform(rng, -2, 2),
	}
}

// Tick advances the magpie by one frame.
func (m *Magpie) Tick(rng Rand, speed float64, width, height, radius int) {
	if m.Escaping {
		m.Y -= EscapeStep
		m.EscapeTicks--
		if m.Y < float64(-radius) || m.EscapeTicks <= 0 {
			m.Respawn(rng, speed, width, height)
		}
		return
	}
	m.moveAndBounce(rng, speed, width, height, radius)
}

func (m *Magpie) moveAndBounce(rng Rand, speed float64, width, height, radius int) {
	m.X += m.VX
	m.Y += m.VY

	r := float64(radius)
	bounced := false
	if m.X < r || m.X > float64(width)-r {
		m.VX = -m.VX
		bounced = true
	}
	if m.Y < r || m.Y > float64(height-GroundBand)-r {
		m.VY = -m.VY
		bounced = true
	}
	if !bounced {
		return
	}

	// A zero component would pin the magpie to one axis for good
	if m.VX == 0 {
		m.VX = speed * randSign(rng)
	}
	if m.VY == 0 {
		m.VY = speed * randSign(rng)
	}
}

// Respawn drops the magpie back into the field on a diagonal course.
func (m *Magpie) Respawn(rng Rand, speed float64, width, height int) {
	m.X = float64(randInt(rng, 100, width-100))
	m.Y = float64(randInt(rng, 200, height-200))
	m.VX = speed * randSign(rng)
	m.VY = speed * randSign(rng)
	m.Escaping = false
	m.EscapeTicks = 0
}

// CheckHit reports whether a shot at (x, y) lands on the magpie and starts
// its escape when it does. An escaping magpie cannot be hit again.
func (m *Magpie) CheckHit(x, y, radius int) bool {
	if m.Escaping {
		return false
	}
	dx := float64(x) - m.X
	dy := float64(y) - m.Y
	if dx*dx+dy*dy > float64(radius*radius) {
		return false
	}
	m.Escaping = true
	m.EscapeTicks = EscapeTicks
	return true
}

// Position returns the centre truncated to whole pixels.
func (m *Magpie) Position() image.Point {
	return image.Pt(int(m.X), int(m.Y))
}

// randInt returns an integer in [lo, hi]. An empty range collapses to lo.
func randInt(rng Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.Intn(hi-lo+1)
}

func uniform(rng Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}

func randSign(rng Rand) float64 {
	if rng.Float64() < 0.5 {
		return 1
	}
	return -1
}
