package main

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"chasse/internal/gamemode"
)

var mouseButtons = []struct {
	key ebiten.MouseButton
	btn gamemode.MouseButton
}{
	{ebiten.MouseButtonLeft, gamemode.ButtonLeft},
	{ebiten.MouseButtonRight, gamemode.ButtonRight},
	{ebiten.MouseButtonMiddle, gamemode.ButtonMiddle},
}

// Input turns ebiten's polled state into the session's event queue.
type Input struct {
	pointer image.Point
	touches []ebiten.TouchID
}

func NewInput() *Input {
	return &Input{pointer: image.Pt(-1, -1)}
}

// Poll collects this tick's events in logical coordinates.
func (in *Input) Poll() []gamemode.Event {
	var pressed []gamemode.MouseButton
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b.key) {
			pressed = append(pressed, b.btn)
		}
	}

	var taps []image.Point
	in.touches = inpututil.AppendJustPressedTouchIDs(in.touches[:0])
	for _, id := range in.touches {
		taps = append(taps, image.Pt(ebiten.TouchPosition(id)))
	}

	events := pointerEvents(in.pointer, image.Pt(ebiten.CursorPosition()), pressed, taps)
	in.pointer = image.Pt(ebiten.CursorPosition())
	if ebiten.IsWindowBeingClosed() {
		events = append(events, gamemode.Quit())
	}
	return events
}

// pointerEvents orders one tick's input: a move when the cursor changed,
// then presses at the cursor, then touches as left clicks at their own
// positions.
func pointerEvents(prev, cur image.Point, pressed []gamemode.MouseButton, taps []image.Point) []gamemode.Event {
	var events []gamemode.Event
	if cur != prev {
		events = append(events, gamemode.PointerMove(cur.X, cur.Y))
	}
	for _, b := range pressed {
		events = append(events, gamemode.PointerDown(cur.X, cur.Y, b))
	}
	for _, t := range taps {
		events = append(events, gamemode.PointerDown(t.X, t.Y, gamemode.ButtonLeft))
	}
	return events
}
