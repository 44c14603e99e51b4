package tui

import (
	"image"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"chasse/internal/gamemode"
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Expected simulation screen to init, got %v", err)
	}
	screen.SetSize(w, h)
	t.Cleanup(screen.Fini)
	return screen
}

func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var sb strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		sb.WriteRune(r)
	}
	return sb.String()
}

func TestViewMenu(t *testing.T) {
	screen := newSimScreen(t, 80, 30)
	v := NewView(screen)

	v.Draw(gamemode.Frame{
		Screen: gamemode.ScreenMenu,
		Buttons: []gamemode.Button{
			{Label: "Easy", Rect: image.Rect(280, 200, 520, 260)},
			{Label: "Medium", Rect: image.Rect(280, 280, 520, 340), Hover: true},
		},
		LastResult: &gamemode.Result{Label: "Hard", Win: true, Score: 10},
	})

	if row := rowText(screen, 3); !strings.Contains(row, "Chasse Express") {
		t.Errorf("Expected title on row 3, got %q", row)
	}
	if row := rowText(screen, 11); !strings.Contains(row, "Easy") {
		t.Errorf("Expected Easy button on row 11, got %q", row)
	}
	if row := rowText(screen, 15); !strings.Contains(row, "Medium") {
		t.Errorf("Expected Medium button on row 15, got %q", row)
	}
	if row := rowText(screen, 22); !strings.Contains(row, "Last round: Hard won with 10 birds") {
		t.Errorf("Expected last result on row 22, got %q", row)
	}

	_, _, plain, _ := screen.GetContent(30, 11)
	_, _, hover, _ := screen.GetContent(30, 15)
	if _, _, attrs := plain.Decompose(); attrs&tcell.AttrReverse != 0 {
		t.Error("Expected idle button not reversed")
	}
	if _, _, attrs := hover.Decompose(); attrs&tcell.AttrReverse == 0 {
		t.Error("Expected hovered button reversed")
	}
}

func TestViewRound(t *testing.T) {
	screen := newSimScreen(t, 80, 30)
	v := NewView(screen)

	v.Draw(gamemode.Frame{
		Screen:  gamemode.ScreenRound,
		Pointer: image.Pt(405, 105),
		Dog:     image.Rect(gamemode.DogX, gamemode.DogY, gamemode.DogX+gamemode.DogW, gamemode.DogY+gamemode.DogH),
		Magpies: []image.Point{{X: 400, Y: 200}},
		Status:  &gamemode.Status{Label: "Easy", Score: 2, Goal: 5, Ammo: 8, TimeRemaining: 21},
		Outcome: gamemode.OutcomeWin,
	})

	if row := rowText(screen, 0); !strings.HasPrefix(row, " Level: Easy  birds 2/5  ammo 8  21s ") {
		t.Errorf("Expected status line on row 0, got %q", row)
	}
	if row := rowText(screen, 10); !strings.Contains(row, "<▓>") {
		t.Errorf("Expected magpie on row 10, got %q", row)
	}
	if r, _, _, _ := screen.GetContent(40, 5); r != '+' {
		t.Errorf("Expected crosshair at (40, 5), got %q", r)
	}
	if row := rowText(screen, 14); !strings.Contains(row, "You win!") {
		t.Errorf("Expected win banner on row 14, got %q", row)
	}
	if row := rowText(screen, 16); !strings.Contains(row, "Click to return to the menu") {
		t.Errorf("Expected return hint on row 16, got %q", row)
	}
	if row := rowText(screen, 15); strings.Contains(row, "Click the dog") {
		t.Error("Expected no start prompt once the dog has jumped")
	}
}

func TestViewPrompt(t *testing.T) {
	screen := newSimScreen(t, 80, 30)
	NewView(screen).Draw(gamemode.Frame{Screen: gamemode.ScreenRound, Prompt: true})

	if row := rowText(screen, 15); !strings.Contains(row, "Click the dog to start!") {
		t.Errorf("Expected prompt on row 15, got %q", row)
	}
}

func TestGridMapping(t *testing.T) {
	g := grid{w: 80, h: 30}
	for _, p := range []image.Point{{0, 0}, {399, 299}, {799, 599}, {123, 456}} {
		c := g.cell(p)
		if back := g.cell(g.logical(c.X, c.Y)); back != c {
			t.Errorf("Expected cell %v to round-trip, got %v", c, back)
		}
	}

	tiny := g.rect(image.Rect(400, 300, 401, 301))
	if tiny.Dx() < 1 || tiny.Dy() < 1 {
		t.Errorf("Expected at least one cell, got %v", tiny)
	}
	full := g.rect(image.Rect(0, 0, gamemode.ScreenWidth, gamemode.ScreenHeight))
	if full != image.Rect(0, 0, 80, 30) {
		t.Errorf("Expected the whole grid, got %v", full)
	}
}
