package gamemode

// EventKind tags an input event.
type EventKind int

const (
	EventQuit EventKind = iota
	EventPointerMove
	EventPointerDown
)

// MouseButton identifies the pressed pointer button.
type MouseButton int

const (
	ButtonLeft MouseButton = iota
	ButtonRight
	ButtonMiddle
)

// Event is one queued input event in logical screen coordinates.
type Event struct {
	Kind   EventKind
	X, Y   int
	Button MouseButton
}

func Quit() Event { return Event{Kind: EventQuit} }

func PointerMove(x, y int) Event { return Event{Kind: EventPointerMove, X: x, Y: y} }

func PointerDown(x, y int, b MouseButton) Event {
	return Event{Kind: EventPointerDown, X: x, Y: y, Button: b}
}
