package render

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// point is a vertex in logical screen space.
type point struct {
	X, Y float32
}

var whitePixel = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// fillPolygon fills a convex polygon as a triangle fan.
func fillPolygon(dst *ebiten.Image, pts []point, clr color.Color) {
	if len(pts) < 3 {
		return
	}
	r, g, b, a := straight(clr)
	vs := make([]ebiten.Vertex, len(pts))
	for i, p := range pts {
		vs[i] = ebiten.Vertex{
			DstX: p.X, DstY: p.Y,
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		}
	}
	is := make([]uint16, 0, 3*(len(pts)-2))
	for i := 1; i < len(pts)-1; i++ {
		is = append(is, 0, uint16(i), uint16(i+1))
	}
	dst.DrawTriangles(vs, is, whitePixel, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// strokePolygon outlines a closed polygon.
func strokePolygon(dst *ebiten.Image, pts []point, width float32, clr color.Color) {
	for i, p := range pts {
		q := pts[(i+1)%len(pts)]
		vector.StrokeLine(dst, p.X, p.Y, q.X, q.Y, width, clr, true)
	}
}

// straight converts a color into non-premultiplied float components.
func straight(clr color.Color) (r, g, b, a float32) {
	n := color.NRGBAModel.Convert(clr).(color.NRGBA)
	return float32(n.R) / 0xff, float32(n.G) / 0xff, float32(n.B) / 0xff, float32(n.A) / 0xff
}

// ellipsePoints approximates the ellipse inscribed in the box (x, y, w, h).
func ellipsePoints(x, y, w, h float32) []point {
	const segments = 32
	cx, cy := x+w/2, y+h/2
	pts := make([]point, segments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / segments
		pts[i] = point{
			X: cx + w/2*float32(math.Cos(a)),
			Y: cy + h/2*float32(math.Sin(a)),
		}
	}
	return pts
}

// roundRectPoints traces a rectangle with corners of radius r, clockwise
// from the top-left arc.
func roundRectPoints(x, y, w, h, r float32) []point {
	r = min(r, w/2, h/2)
	const steps = 6
	corners := []struct {
		cx, cy float32
		start  float64
	}{
		{x + r, y + r, math.Pi},
		{x + w - r, y + r, 1.5 * math.Pi},
		{x + w - r, y + h - r, 0},
		{x + r, y + h - r, 0.5 * math.Pi},
	}
	pts := make([]point, 0, len(corners)*(steps+1))
	for _, c := range corners {
		for i := 0; i <= steps; i++ {
			a := c.start + 0.5*math.Pi*float64(i)/steps
			pts = append(pts, point{
				X: c.cx + r*float32(math.Cos(a)),
				Y: c.cy + r*float32(math.Sin(a)),
			})
		}
	}
	return pts
}

func fillEllipse(dst *ebiten.Image, x, y, w, h float32, clr color.Color) {
	fillPolygon(dst, ellipsePoints(x, y, w, h), clr)
}

func strokeEllipse(dst *ebiten.Image, x, y, w, h, width float32, clr color.Color) {
	strokePolygon(dst, ellipsePoints(x, y, w, h), width, clr)
}

func fillRoundRect(dst *ebiten.Image, x, y, w, h, r float32, clr color.Color) {
	fillPolygon(dst, roundRectPoints(x, y, w, h, r), clr)
}

func strokeRoundRect(dst *ebiten.Image, x, y, w, h, r, width float32, clr color.Color) {
	strokePolygon(dst, roundRectPoints(x, y, w, h, r), width, clr)
}
