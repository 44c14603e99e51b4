// Package tui plays the game in a terminal: tcell for the screen and
// mouse, the beep speaker for sound.
package tui

import (
	"fmt"
	"image"

	"github.com/gdamore/tcell/v2"

	"chasse/internal/gamemode"
)

var (
	styleSky     = tcell.StyleDefault.Background(tcell.NewRGBColor(100, 180, 255)).Foreground(tcell.ColorWhite)
	styleTree    = tcell.StyleDefault.Background(tcell.NewRGBColor(46, 139, 58)).Foreground(tcell.NewRGBColor(107, 69, 35))
	styleDog     = tcell.StyleDefault.Background(tcell.NewRGBColor(200, 138, 60)).Foreground(tcell.ColorBlack)
	styleMagpie  = tcell.StyleDefault.Background(tcell.NewRGBColor(25, 25, 25)).Foreground(tcell.NewRGBColor(240, 240, 240)).Bold(true)
	styleCross   = tcell.StyleDefault.Background(tcell.NewRGBColor(100, 180, 255)).Foreground(tcell.ColorRed).Bold(true)
	stylePanel   = tcell.StyleDefault.Background(tcell.NewRGBColor(245, 248, 255)).Foreground(tcell.NewRGBColor(30, 30, 30))
	styleTitle   = tcell.StyleDefault.Background(tcell.NewRGBColor(100, 180, 255)).Foreground(tcell.NewRGBColor(255, 140, 0)).Bold(true)
	styleBanner  = tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite).Bold(true)
	buttonStyles = map[string]tcell.Style{
		"Easy":   tcell.StyleDefault.Background(tcell.NewRGBColor(120, 220, 120)).Foreground(tcell.ColorWhite).Bold(true),
		"Medium": tcell.StyleDefault.Background(tcell.NewRGBColor(220, 200, 80)).Foreground(tcell.ColorWhite).Bold(true),
		"Hard":   tcell.StyleDefault.Background(tcell.NewRGBColor(220, 80, 80)).Foreground(tcell.ColorWhite).Bold(true),
	}
)

// View draws frames onto a terminal, scaling the logical screen to
// whatever cell grid the terminal has.
type View struct {
	screen tcell.Screen
}

func NewView(screen tcell.Screen) *View {
	return &View{screen: screen}
}

// Draw paints one frame and shows it.
func (v *View) Draw(f gamemode.Frame) {
	v.screen.Clear()
	w, h := v.screen.Size()
	if w <= 0 || h <= 0 {
		return
	}
	g := grid{w: w, h: h}

	v.fill(g.rect(image.Rect(0, 0, gamemode.ScreenWidth, gamemode.ScreenHeight)), ' ', styleSky)
	for _, x := range []int{gamemode.LeftTreeX, gamemode.RightTreeX} {
		v.fill(g.rect(image.Rect(x, gamemode.TreeY, x+gamemode.TreeW, gamemode.TreeY+gamemode.TreeH)), '♣', styleTree)
	}

	switch f.Screen {
	case gamemode.ScreenMenu:
		v.drawMenu(g, f)
	case gamemode.ScreenRound:
		v.drawRound(g, f)
	}
	v.screen.Show()
}

func (v *View) drawMenu(g grid, f gamemode.Frame) {
	home := image.Rect(gamemode.DogX, gamemode.DogY, gamemode.DogX+gamemode.DogW, gamemode.DogY+gamemode.DogH)
	v.drawDog(g, home)

	v.centered(g.row(60), "Chasse Express", styleTitle)
	for _, b := range f.Buttons {
		r := g.rect(b.Rect)
		st, ok := buttonStyles[b.Label]
		if !ok {
			st = stylePanel
		}
		if b.Hover {
			st = st.Reverse(true)
		}
		v.fill(r, ' ', st)
		v.centeredIn(r, b.Label, st)
	}
	if f.LastResult != nil {
		v.centered(g.row(440), resultLine(*f.LastResult), styleSky)
	}
}

func (v *View) drawRound(g grid, f gamemode.Frame) {
	v.drawDog(g, f.Dog)
	if f.Prompt {
		v.centered(g.row(gamemode.ScreenHeight/2), "Click the dog to start!", styleSky)
	}
	for _, m := range f.Magpies {
		c := g.cell(m)
		v.put(c.X-1, c.Y, "<▓>", styleMagpie)
	}
	if f.Status != nil {
		v.put(0, 0, " "+statusLine(*f.Status)+" ", stylePanel)
	}
	if f.Outcome != gamemode.OutcomeNone {
		msg := "Game over!"
		if f.Outcome == gamemode.OutcomeWin {
			msg = "You win!"
		}
		y := g.row(gamemode.ScreenHeight / 2)
		v.centered(y-1, " "+msg+" ", styleBanner)
		v.centered(y+1, " Click to return to the menu ", styleBanner)
	}
	c := g.cell(f.Pointer)
	v.put(c.X, c.Y, "+", styleCross)
}

func (v *View) drawDog(g grid, box image.Rectangle) {
	r := g.rect(box)
	v.fill(r, ' ', styleDog)
	v.centeredIn(r, "DOG", styleDog)
}

func statusLine(s gamemode.Status) string {
	return fmt.Sprintf("Level: %s  birds %d/%d  ammo %d  %ds", s.Label, s.Score, s.Goal, s.Ammo, s.TimeRemaining)
}

func resultLine(res gamemode.Result) string {
	verdict := "lost"
	if res.Win {
		verdict = "won"
	}
	return fmt.Sprintf("Last round: %s %s with %d birds", res.Label, verdict, res.Score)
}

func (v *View) fill(r image.Rectangle, ch rune, st tcell.Style) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			v.screen.SetContent(x, y, ch, nil, st)
		}
	}
}

func (v *View) put(x, y int, s string, st tcell.Style) {
	for _, ch := range s {
		v.screen.SetContent(x, y, ch, nil, st)
		x++
	}
}

func (v *View) centered(y int, s string, st tcell.Style) {
	w, _ := v.screen.Size()
	v.put((w-len([]rune(s)))/2, y, s, st)
}

func (v *View) centeredIn(r image.Rectangle, s string, st tcell.Style) {
	x := r.Min.X + (r.Dx()-len([]rune(s)))/2
	v.put(x, r.Min.Y+r.Dy()/2, s, st)
}

// grid maps logical screen coordinates onto a w×h cell grid.
type grid struct {
	w, h int
}

func (g grid) cell(p image.Point) image.Point {
	return image.Pt(p.X*g.w/gamemode.ScreenWidth, p.Y*g.h/gamemode.ScreenHeight)
}

func (g grid) row(y int) int {
	return y * g.h / gamemode.ScreenHeight
}

// rect covers every cell the logical rectangle touches, at least one.
func (g grid) rect(r image.Rectangle) image.Rectangle {
	lo := g.cell(r.Min)
	hi := image.Pt(
		(r.Max.X*g.w+gamemode.ScreenWidth-1)/gamemode.ScreenWidth,
		(r.Max.Y*g.h+gamemode.ScreenHeight-1)/gamemode.ScreenHeight,
	)
	hi.X = clampInt(hi.X, lo.X+1, g.w)
	hi.Y = clampInt(hi.Y, lo.Y+1, g.h)
	return image.Rectangle{Min: lo, Max: hi}
}

// logical is the centre of a cell in logical coordinates.
func (g grid) logical(x, y int) image.Point {
	return image.Pt(
		(2*x+1)*gamemode.ScreenWidth/(2*g.w),
		(2*y+1)*gamemode.ScreenHeight/(2*g.h),
	)
}

func clampInt(v, lo, hi int) int {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}
