package tui

import (
	"math/rand"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"chasse/internal/gamemode"
)

func TestRunStopsOnQuitKey(t *testing.T) {
	screen := newSimScreen(t, 80, 30)
	session := gamemode.NewSession(gamemode.WithRand(rand.New(rand.NewSource(1))))

	done := make(chan error, 1)
	go func() { done <- Run(screen, session, 60) }()
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Expected clean exit, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Expected Run to return after Escape")
	}
	if session.Running() {
		t.Error("Expected session stopped")
	}
}

func TestRunRejectsZeroTPS(t *testing.T) {
	screen := newSimScreen(t, 80, 30)
	if err := Run(screen, gamemode.NewSession(), 0); err == nil {
		t.Error("Expected an error for zero ticks per second")
	}
}

func TestStepRecoversIntoMenu(t *testing.T) {
	session := gamemode.NewSession(gamemode.WithRand(panicRand{}))
	if _, err := session.Select("Easy"); err != nil {
		t.Fatal(err)
	}
	session.Round().Click(gamemode.DogX+10, gamemode.DogY+10)
	for i := 0; i < 50; i++ {
		if f := step(session, nil); f.Screen == gamemode.ScreenMenu {
			return
		}
	}
	t.Fatal("Expected the panicking round to be aborted back to the menu")
}

// panicRand fails the first time the round asks for randomness.
type panicRand struct{}

func (panicRand) Intn(int) int     { panic("rng exhausted") }
func (panicRand) Float64() float64 { panic("rng exhausted") }
