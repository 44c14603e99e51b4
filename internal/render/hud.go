package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chasse/internal/gamemode"
)

const title = "Chasse Express"

var titleStops = []color.RGBA{
	{255, 140, 0, 0xff},
	{34, 139, 34, 0xff},
	{72, 61, 139, 0xff},
	{30, 144, 255, 0xff},
}

// Button fills per difficulty label
var buttonColors = map[string]color.RGBA{
	"Easy":   {120, 220, 120, 0xff},
	"Medium": {220, 200, 80, 0xff},
	"Hard":   {220, 80, 80, 0xff},
}

var (
	colText       = color.RGBA{30, 30, 30, 0xff}
	colPanel      = color.NRGBA{245, 248, 255, 230}
	colPanelRim   = color.NRGBA{200, 200, 220, 180}
	colShadow     = color.NRGBA{0, 0, 0, 40}
	colButtonRim  = color.NRGBA{200, 200, 220, 120}
	colButtonOver = color.NRGBA{255, 255, 255, 180}
)

// Status panel spacing
const (
	panelX, panelY = 10, 10
	padX, padY     = 24, 14
	sectionGap     = 32
	iconGap        = 10
	panelRadius    = 24
)

// gradient spreads the title stops across n glyphs.
func gradient(n int) []color.RGBA {
	out := make([]color.RGBA, n)
	last := len(titleStops) - 1
	for i := range out {
		pos := float64(i) / float64(max(n-1, 1)) * float64(last)
		i0 := int(pos)
		i1 := min(i0+1, last)
		t := pos - float64(i0)
		c0, c1 := titleStops[i0], titleStops[i1]
		out[i] = color.RGBA{
			R: lerp(c0.R, c1.R, t),
			G: lerp(c0.G, c1.G, t),
			B: lerp(c0.B, c1.B, t),
			A: 0xff,
		}
	}
	return out
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// drawOutlined draws str with a drop shadow and an eight-way outline.
func drawOutlined(dst *ebiten.Image, str string, face text.Face, x, y float64, main, outline, shadow color.Color) {
	const outlineOff, shadowOff = 2, 4
	drawText(dst, str, face, x+shadowOff, y+shadowOff, shadow)
	for _, dx := range []float64{-outlineOff, 0, outlineOff} {
		for _, dy := range []float64{-outlineOff, 0, outlineOff} {
			if dx != 0 || dy != 0 {
				drawText(dst, str, face, x+dx, y+dy, outline)
			}
		}
	}
	drawText(dst, str, face, x, y, main)
}

func drawText(dst *ebiten.Image, str string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, str, face, op)
}

// drawCentered draws str horizontally centred with its top at y.
func drawCentered(dst *ebiten.Image, str string, face text.Face, y float64, clr color.Color) {
	w, _ := text.Measure(str, face, 0)
	drawText(dst, str, face, (gamemode.ScreenWidth-w)/2, y, clr)
}

func (r *Renderer) drawTitle(dst *ebiten.Image) {
	face := r.face(r.fonts.Title, 96)
	colors := gradient(len([]rune(title)))

	w, _ := text.Measure(title, face, 0)
	x := (gamemode.ScreenWidth - w) / 2
	for i, ch := range []rune(title) {
		s := string(ch)
		drawOutlined(dst, s, face, x, 60, colors[i], color.White, color.Black)
		x += text.Advance(s, face)
	}
}

func (r *Renderer) drawButton(dst *ebiten.Image, b gamemode.Button) {
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	const radius = 22

	fill, ok := buttonColors[b.Label]
	if !ok {
		fill = color.RGBA{160, 160, 160, 0xff}
	}
	fillRoundRect(dst, x, y, w, h, radius, color.NRGBA{fill.R, fill.G, fill.B, 170})
	strokeRoundRect(dst, x, y, w, h, radius, 3, colButtonRim)
	if b.Hover {
		strokeRoundRect(dst, x, y, w, h, radius, 4, colButtonOver)
	}

	face := r.face(r.fonts.Label, 44)
	tw, th := text.Measure(b.Label, face, 0)
	drawText(dst, b.Label, face, float64(x)+(float64(w)-tw)/2, float64(y)+(float64(h)-th)/2, color.White)
}

func (r *Renderer) drawLastResult(dst *ebiten.Image, res gamemode.Result) {
	drawCentered(dst, resultLine(res), r.face(r.fonts.Label, 28), 440, color.White)
}

func resultLine(res gamemode.Result) string {
	verdict := "lost"
	if res.Win {
		verdict = "won"
	}
	return fmt.Sprintf("Last round: %s %s with %d birds", res.Label, verdict, res.Score)
}

// statusTexts is the panel content left to right: level, birds, ammo, time.
func statusTexts(s gamemode.Status) [4]string {
	return [4]string{
		"Level: " + s.Label,
		fmt.Sprintf("%d/%d", s.Score, s.Goal),
		fmt.Sprintf("%d", s.Ammo),
		fmt.Sprintf("%ds", s.TimeRemaining),
	}
}

var statusIcons = [4]string{"", "bird.png", "ammo.png", "timer.png"}

func (r *Renderer) drawStatus(dst *ebiten.Image, s gamemode.Status) {
	stat := r.face(r.fonts.Stat, 28)
	label := r.face(r.fonts.Label, 28)
	texts := statusTexts(s)

	m := stat.Metrics()
	iconSize := m.HAscent + m.HDescent

	type group struct {
		icon  *ebiten.Image
		face  text.Face
		str   string
		width float64
	}
	groups := make([]group, len(texts))
	total := 2*padX + sectionGap*float64(len(texts)-1)
	for i, str := range texts {
		g := group{face: stat, str: str}
		if i == 0 {
			g.face = label
		}
		g.width, _ = text.Measure(str, g.face, 0)
		if statusIcons[i] != "" {
			g.icon = r.icon(statusIcons[i], int(iconSize))
			g.width += iconSize + iconGap
		}
		groups[i] = g
		total += g.width
	}
	height := iconSize + 2*padY

	fillRoundRect(dst, panelX+2, panelY+10, float32(total), float32(height), panelRadius, colShadow)
	fillRoundRect(dst, panelX, panelY, float32(total), float32(height), panelRadius, colPanel)
	strokeRoundRect(dst, panelX, panelY, float32(total), float32(height), panelRadius, 2, colPanelRim)

	x := float64(panelX + padX)
	mid := float64(panelY) + height/2
	for i, g := range groups {
		if g.icon != nil {
			b := g.icon.Bounds()
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(iconSize/float64(b.Dx()), iconSize/float64(b.Dy()))
			op.GeoM.Translate(x, mid-iconSize/2)
			op.Filter = ebiten.FilterLinear
			dst.DrawImage(g.icon, op)
			x += iconSize + iconGap
		}
		clr := colText
		if i == 0 {
			clr = color.RGBA{0, 0, 0, 0xff}
		}
		tw, th := text.Measure(g.str, g.face, 0)
		drawText(dst, g.str, g.face, x, mid-th/2, clr)
		x += tw + sectionGap
	}
}

func (r *Renderer) drawPrompt(dst *ebiten.Image) {
	drawCentered(dst, "Click the dog to start!", r.face(r.fonts.Label, 36), gamemode.ScreenHeight/2, color.White)
}

func (r *Renderer) drawBanner(dst *ebiten.Image, o gamemode.Outcome) {
	msg := "Game over!"
	if o == gamemode.OutcomeWin {
		msg = "You win!"
	}
	vector.DrawFilledRect(dst, 0, gamemode.ScreenHeight/2-60, gamemode.ScreenWidth, 140, color.NRGBA{0, 0, 0, 90}, false)
	drawCentered(dst, msg, r.face(r.fonts.Title, 64), gamemode.ScreenHeight/2-40, color.White)
	drawCentered(dst, "Click to return to the menu", r.face(r.fonts.Label, 36), gamemode.ScreenHeight/2+30, color.White)
}
