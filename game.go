package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"chasse/internal/gamemode"
	"chasse/internal/render"
)

// Game adapts the session to ebiten's Update/Draw/Layout loop.
type Game struct {
	session  *gamemode.Session
	renderer *render.Renderer
	input    *Input

	frame  gamemode.Frame
	fault  error
	hidden bool
}

func NewGame(session *gamemode.Session, renderer *render.Renderer) *Game {
	return &Game{
		session:  session,
		renderer: renderer,
		input:    NewInput(),
		frame:    session.Frame(),
	}
}

// Update: Logic (TPS)
func (g *Game) Update() error {
	// A fault raised while drawing the previous frame ends the round here.
	if g.fault != nil {
		g.session.Abort(g.fault)
		g.fault = nil
	}

	g.tick(g.input.Poll())
	if !g.session.Running() {
		return ebiten.Termination
	}

	g.syncCursor()
	return nil
}

func (g *Game) tick(events []gamemode.Event) {
	defer func() {
		if r := recover(); r != nil {
			g.session.Abort(fmt.Errorf("update: %v", r))
			g.frame = g.session.Frame()
		}
	}()
	g.frame = g.session.Tick(events)
}

// syncCursor hides the system cursor while the crosshair is shown.
func (g *Game) syncCursor() {
	hide := g.frame.Screen == gamemode.ScreenRound
	if hide == g.hidden {
		return
	}
	g.hidden = hide
	if hide {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	} else {
		ebiten.SetCursorMode(ebiten.CursorModeVisible)
	}
}

// Draw: Rendering (VSync)
func (g *Game) Draw(screen *ebiten.Image) {
	defer func() {
		if r := recover(); r != nil {
			g.fault = fmt.Errorf("draw: %v", r)
		}
	}()
	g.renderer.Draw(screen, g.frame)
}

// Layout: fixed logical screen, ebiten scales it to the window
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return gamemode.ScreenWidth, gamemode.ScreenHeight
}
