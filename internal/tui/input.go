package tui

import (
	"image"

	"github.com/gdamore/tcell/v2"

	"chasse/internal/gamemode"
)

var mouseButtons = []struct {
	mask tcell.ButtonMask
	btn  gamemode.MouseButton
}{
	{tcell.Button1, gamemode.ButtonLeft},
	{tcell.Button2, gamemode.ButtonRight},
	{tcell.Button3, gamemode.ButtonMiddle},
}

// Input translates tcell events into session events. Terminals report
// button state rather than presses, so a press is a button that was up on
// the previous mouse event.
type Input struct {
	held    tcell.ButtonMask
	pointer image.Point
}

func NewInput() *Input {
	return &Input{pointer: image.Pt(-1, -1)}
}

// Translate converts one event for a screen of w×h cells.
func (in *Input) Translate(ev tcell.Event, w, h int) []gamemode.Event {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if isQuitKey(ev) {
			return []gamemode.Event{gamemode.Quit()}
		}

	case *tcell.EventMouse:
		if w <= 0 || h <= 0 {
			return nil
		}
		x, y := ev.Position()
		p := grid{w: w, h: h}.logical(x, y)

		var events []gamemode.Event
		if p != in.pointer {
			in.pointer = p
			events = append(events, gamemode.PointerMove(p.X, p.Y))
		}
		buttons := ev.Buttons()
		for _, b := range mouseButtons {
			if buttons&b.mask != 0 && in.held&b.mask == 0 {
				events = append(events, gamemode.PointerDown(p.X, p.Y, b.btn))
			}
		}
		in.held = buttons
		return events
	}
	return nil
}

func isQuitKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
