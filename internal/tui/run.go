package tui

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"chasse/internal/gamemode"
)

// Run drives the session on screen until the player quits. Input is read
// on its own goroutine and queued until the next tick.
func Run(screen tcell.Screen, session *gamemode.Session, tps int) error {
	if tps <= 0 {
		return fmt.Errorf("tps %d must be positive", tps)
	}

	view := NewView(screen)
	input := NewInput()

	eventChan := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-quit:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	var pending []gamemode.Event
	for session.Running() {
		select {
		case ev := <-eventChan:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			w, h := screen.Size()
			pending = append(pending, input.Translate(ev, w, h)...)

		case <-ticker.C:
			frame := step(session, pending)
			pending = pending[:0]
			view.Draw(frame)
		}
	}
	return nil
}

// step ticks the session, turning a panic into an aborted round.
func step(session *gamemode.Session, events []gamemode.Event) (frame gamemode.Frame) {
	defer func() {
		if r := recover(); r != nil {
			session.Abort(fmt.Errorf("tick: %v", r))
			frame = session.Frame()
		}
	}()
	return session.Tick(events)
}
