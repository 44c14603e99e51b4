package gamemode

import (
	"image"

	"chasse/internal/entity"
)

// Screen selects which scene a frontend draws.
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenRound
)

// Button is a menu entry as it should be drawn this frame.
type Button struct {
	Label string
	Rect  image.Rectangle
	Hover bool
}

// Status is the in-round panel.
type Status struct {
	Label         string
	Score         int
	Goal          int
	Ammo          int
	TimeRemaining int
}

// Frame describes everything a frontend needs to draw one tick. It holds
// no references into live round state.
type Frame struct {
	Screen  Screen
	Pointer image.Point

	// Menu
	Buttons    []Button
	LastResult *Result

	// Round
	Dog     image.Rectangle
	Magpies []image.Point
	Prompt  bool
	Status  *Status
	Outcome Outcome
}

func menuFrame(pointer image.Point, last *Result) Frame {
	f := Frame{Screen: ScreenMenu, Pointer: pointer}
	for i, p := range profiles {
		rect := buttonRect(i)
		f.Buttons = append(f.Buttons, Button{
			Label: p.Label,
			Rect:  rect,
			Hover: pointer.In(rect),
		})
	}
	if last != nil {
		r := *last
		f.LastResult = &r
	}
	return f
}

func roundFrame(r *Round, pointer image.Point) Frame {
	d := r.Dog()
	top := d.Y + d.RenderOffset()
	f := Frame{
		Screen:  ScreenRound,
		Pointer: pointer,
		Dog:     image.Rect(d.X, top, d.X+d.W, top+d.H),
		Prompt:  !d.Started(),
		Outcome: r.Outcome(),
	}
	if !r.Released() {
		return f
	}

	for _, m := range r.Magpies() {
		if !m.Escaping {
			f.Magpies = append(f.Magpies, m.Position())
		}
	}
	p := r.Profile()
	f.Status = &Status{
		Label:         p.Label,
		Score:         r.Score(),
		Goal:          p.Goal,
		Ammo:          r.Ammo(),
		TimeRemaining: r.TimeRemaining(),
	}
	return f
}

// MagpieRadius is re-exported for frontends that size sprites from frames.
const MagpieRadius = entity.MagpieRadius
