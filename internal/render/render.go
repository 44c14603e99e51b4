// Package render draws session frames with ebiten.
package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font"

	"chasse/internal/assets"
	"chasse/internal/gamemode"
)

// Fonts lists preferred font names per role.
type Fonts struct {
	Title []string
	Stat  []string
	Label []string
}

// Renderer turns a gamemode.Frame into draw calls. Images and faces come
// from the loader and are converted to GPU-side resources on first use.
type Renderer struct {
	loader *assets.Loader
	fonts  Fonts

	images map[string]*ebiten.Image
	faces  map[font.Face]*text.GoXFace
}

func New(loader *assets.Loader, fonts Fonts) *Renderer {
	return &Renderer{
		loader: loader,
		fonts:  fonts,
		images: make(map[string]*ebiten.Image),
		faces:  make(map[font.Face]*text.GoXFace),
	}
}

// Draw renders one frame onto the logical screen.
func (r *Renderer) Draw(screen *ebiten.Image, f gamemode.Frame) {
	r.drawBackground(screen)
	r.drawTrees(screen)
	r.drawDog(screen, dogBox(f))

	switch f.Screen {
	case gamemode.ScreenMenu:
		r.drawTitle(screen)
		for _, b := range f.Buttons {
			r.drawButton(screen, b)
		}
		if f.LastResult != nil {
			r.drawLastResult(screen, *f.LastResult)
		}

	case gamemode.ScreenRound:
		if f.Prompt {
			r.drawPrompt(screen)
		}
		for _, m := range f.Magpies {
			drawMagpie(screen, float32(m.X), float32(m.Y))
		}
		if f.Status != nil {
			r.drawStatus(screen, *f.Status)
		}
		if f.Outcome != gamemode.OutcomeNone {
			r.drawBanner(screen, f.Outcome)
		}
		drawCrosshair(screen, f.Pointer)
	}
}

// dogBox is the dog's sprite box; the menu shows it resting at home.
func dogBox(f gamemode.Frame) image.Rectangle {
	if f.Screen == gamemode.ScreenRound {
		return f.Dog
	}
	return image.Rect(gamemode.DogX, gamemode.DogY, gamemode.DogX+gamemode.DogW, gamemode.DogY+gamemode.DogH)
}

// image returns the named picture as an ebiten image, or nil when the
// loader has none.
func (r *Renderer) image(name string) *ebiten.Image {
	if img, ok := r.images[name]; ok {
		return img
	}
	var out *ebiten.Image
	if src, err := r.loader.Image(name); err == nil {
		out = ebiten.NewImageFromImage(src)
	}
	r.images[name] = out
	return out
}

func (r *Renderer) icon(name string, size int) *ebiten.Image {
	key := "icon:" + name
	if img, ok := r.images[key]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(r.loader.Icon(name, size))
	r.images[key] = img
	return img
}

func (r *Renderer) face(names []string, size float64) text.Face {
	src := r.loader.Font(names, size)
	if f, ok := r.faces[src]; ok {
		return f
	}
	f := text.NewGoXFace(src)
	r.faces[src] = f
	return f
}

// Deallocate releases the GPU images. Fonts stay with the loader.
func (r *Renderer) Deallocate() {
	for k, img := range r.images {
		if img != nil {
			img.Deallocate()
		}
		delete(r.images, k)
	}
}
