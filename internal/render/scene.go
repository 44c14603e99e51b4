package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chasse/internal/gamemode"
)

var (
	colSky       = color.RGBA{100, 180, 255, 0xff}
	colOutline   = color.RGBA{0, 0, 0, 0xff}
	colBlack     = color.RGBA{25, 25, 25, 0xff}
	colWhite     = color.RGBA{240, 240, 240, 0xff}
	colBlue      = color.RGBA{50, 110, 210, 0xff}
	colBeak      = color.RGBA{60, 60, 60, 0xff}
	colCrosshair = color.NRGBA{255, 0, 0, 140}

	colBark   = color.RGBA{0x6b, 0x45, 0x23, 0xff}
	colLeaves = color.RGBA{0x2e, 0x8b, 0x3a, 0xff}
	colFur    = color.RGBA{0xc8, 0x8a, 0x3c, 0xff}
	colCream  = color.RGBA{0xf5, 0xeb, 0xdc, 0xff}
)

const outlineW = 3

func (r *Renderer) drawBackground(dst *ebiten.Image) {
	bg := r.image("background.jpg")
	if bg == nil {
		dst.Fill(colSky)
		return
	}
	op := &ebiten.DrawImageOptions{}
	b := bg.Bounds()
	op.GeoM.Scale(float64(gamemode.ScreenWidth)/float64(b.Dx()), float64(gamemode.ScreenHeight)/float64(b.Dy()))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(bg, op)
}

func (r *Renderer) drawTrees(dst *ebiten.Image) {
	for _, x := range []int{gamemode.LeftTreeX, gamemode.RightTreeX} {
		box := image.Rect(x, gamemode.TreeY, x+gamemode.TreeW, gamemode.TreeY+gamemode.TreeH)
		if !r.drawSprite(dst, "tree.png", box) {
			drawTreeShape(dst, box)
		}
	}
}

func (r *Renderer) drawDog(dst *ebiten.Image, box image.Rectangle) {
	if !r.drawSprite(dst, "sheltie.png", box) {
		drawDogShape(dst, box)
	}
}

// drawSprite blits a named image at the box origin. It reports false when
// the image is unavailable.
func (r *Renderer) drawSprite(dst *ebiten.Image, name string, box image.Rectangle) bool {
	img := r.image(name)
	if img == nil {
		return false
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(box.Min.X), float64(box.Min.Y))
	dst.DrawImage(img, op)
	return true
}

// drawTreeShape is the stand-in for tree.png: a trunk under three canopy blobs.
func drawTreeShape(dst *ebiten.Image, box image.Rectangle) {
	x, y := float32(box.Min.X), float32(box.Min.Y)
	w, h := float32(box.Dx()), float32(box.Dy())

	vector.DrawFilledRect(dst, x+w/2-12, y+h*0.45, 24, h*0.55, colBark, true)
	vector.DrawFilledCircle(dst, x+w*0.30, y+h*0.35, w*0.28, colLeaves, true)
	vector.DrawFilledCircle(dst, x+w*0.70, y+h*0.35, w*0.28, colLeaves, true)
	vector.DrawFilledCircle(dst, x+w*0.50, y+h*0.20, w*0.32, colLeaves, true)
}

// drawDogShape is the stand-in for sheltie.png, sitting in its hit box.
func drawDogShape(dst *ebiten.Image, box image.Rectangle) {
	x, y := float32(box.Min.X), float32(box.Min.Y)
	w, h := float32(box.Dx()), float32(box.Dy())

	// Body and legs
	fillEllipse(dst, x+w*0.15, y+h*0.45, w*0.60, h*0.35, colFur)
	fillEllipse(dst, x+w*0.30, y+h*0.55, w*0.25, h*0.22, colCream)
	for _, lx := range []float32{0.22, 0.35, 0.55, 0.65} {
		vector.DrawFilledRect(dst, x+w*lx, y+h*0.72, 12, h*0.26, colFur, true)
	}
	vector.StrokeLine(dst, x+w*0.17, y+h*0.55, x+w*0.02, y+h*0.40, 10, colFur, true)

	// Head and ears
	hx, hy := x+w*0.78, y+h*0.35
	vector.DrawFilledCircle(dst, hx, hy, h*0.17, colFur, true)
	vector.DrawFilledCircle(dst, hx-10, hy-h*0.15, 9, colFur, true)
	vector.DrawFilledCircle(dst, hx+10, hy-h*0.15, 9, colFur, true)
	fillEllipse(dst, hx, hy, w*0.18, h*0.10, colCream)

	// Eye and nose
	vector.DrawFilledCircle(dst, hx+4, hy-4, 4, colOutline, true)
	vector.DrawFilledCircle(dst, hx+w*0.17, hy+h*0.05, 5, colOutline, true)
}

// drawMagpie draws an outlined magpie centred on (x, y), facing right.
func drawMagpie(dst *ebiten.Image, x, y float32) {
	// Body
	fillEllipse(dst, x-28, y-12, 56, 24, colBlack)
	strokeEllipse(dst, x-28, y-12, 56, 24, outlineW, colOutline)
	fillEllipse(dst, x-10, y-10, 30, 18, colWhite)

	// Tail
	tail := []point{{x - 28, y}, {x - 60, y - 6}, {x - 55, y + 6}}
	fillPolygon(dst, tail, colBlue)
	strokePolygon(dst, tail, outlineW, colOutline)

	// Wing
	fillEllipse(dst, x-10, y-14, 32, 18, colBlue)
	strokeEllipse(dst, x-10, y-14, 32, 18, outlineW, colOutline)

	// Head
	vector.DrawFilledCircle(dst, x+22, y-6, 13, colBlack, true)
	vector.StrokeCircle(dst, x+22, y-6, 13, outlineW, colOutline, true)

	// Beak
	beak := []point{{x + 34, y - 8}, {x + 44, y - 12}, {x + 36, y - 2}}
	fillPolygon(dst, beak, colBeak)
	strokePolygon(dst, beak, outlineW, colOutline)

	// Eye
	vector.DrawFilledCircle(dst, x+28, y-10, 4, colWhite, true)
	vector.DrawFilledCircle(dst, x+28, y-10, 2, colBlack, true)
}

func drawCrosshair(dst *ebiten.Image, p image.Point) {
	x, y := float32(p.X), float32(p.Y)
	vector.StrokeCircle(dst, x, y, 20, 5, colCrosshair, true)
	vector.StrokeLine(dst, x-22, y, x+22, y, 5, colCrosshair, true)
	vector.StrokeLine(dst, x, y-22, x, y+22, 5, colCrosshair, true)
	vector.StrokeCircle(dst, x, y, 5, 2, colCrosshair, true)
}
