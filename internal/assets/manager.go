package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"io/fs"
	"log"
	"os"
	"path"
	"strings"

	"github.com/hajimehoshi/bitmapfont/v3"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
)

// ErrNotFound is returned when an asset file does not exist.
var ErrNotFound = errors.New("asset not found")

// Asset tree layout
const (
	imageDir = "images"
	audioDir = "audio"
	fontDir  = "fonts"
)

type fontKey struct {
	names string
	size  float64
}

// Loader resolves art, fonts and sounds by logical name and caches every
// answer, misses included. Nothing it fails to load is fatal: callers get
// an error or a stand-in.
type Loader struct {
	fsys   fs.FS
	logger *log.Logger

	images  map[string]image.Image
	icons   map[string]image.Image
	sounds  map[string][]byte
	fonts   map[fontKey]font.Face
	missing map[string]error
}

// Dir opens an asset tree on disk.
func Dir(root string) fs.FS {
	return os.DirFS(root)
}

func NewLoader(fsys fs.FS, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.Default()
	}
	return &Loader{
		fsys:    fsys,
		logger:  logger,
		images:  make(map[string]image.Image),
		icons:   make(map[string]image.Image),
		sounds:  make(map[string][]byte),
		fonts:   make(map[fontKey]font.Face),
		missing: make(map[string]error),
	}
}

// Image decodes images/<name>.
func (l *Loader) Image(name string) (image.Image, error) {
	if img, ok := l.images[name]; ok {
		return img, nil
	}
	p := path.Join(imageDir, name)
	if err, ok := l.missing[p]; ok {
		return nil, err
	}

	data, err := l.read(p)
	if err != nil {
		return nil, l.miss(p, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, l.miss(p, fmt.Errorf("decode %s: %w", p, err))
	}
	l.images[name] = img
	return img, nil
}

// Icon is Image with a placeholder tile when the file is unusable.
func (l *Loader) Icon(name string, fallbackSize int) image.Image {
	if img, ok := l.icons[name]; ok {
		return img
	}
	img, err := l.Image(name)
	if err != nil {
		img = placeholderIcon(fallbackSize)
	}
	l.icons[name] = img
	return img
}

// Sound returns the raw bytes of audio/<name>.
func (l *Loader) Sound(name string) ([]byte, error) {
	if data, ok := l.sounds[name]; ok {
		return data, nil
	}
	p := path.Join(audioDir, name)
	if err, ok := l.missing[p]; ok {
		return nil, err
	}
	data, err := l.read(p)
	if err != nil {
		return nil, l.miss(p, err)
	}
	l.sounds[name] = data
	return data, nil
}

// Font returns the first of names found under fonts/ (trying a -Regular
// variant of each), or the built-in bitmap face when none parse.
func (l *Loader) Font(names []string, size float64) font.Face {
	key := fontKey{names: strings.Join(names, ","), size: size}
	if f, ok := l.fonts[key]; ok {
		return f
	}

	face := l.openFace(names, size)
	if face == nil {
		face = bitmapfont.Face
	}
	l.fonts[key] = face
	return face
}

func (l *Loader) openFace(names []string, size float64) font.Face {
	for _, name := range names {
		for _, suffix := range []string{"", "-Regular"} {
			for _, ext := range []string{".ttf", ".otf"} {
				data, err := l.read(path.Join(fontDir, name+suffix+ext))
				if err != nil {
					continue
				}
				face, err := parseFace(data, size)
				if err != nil {
					l.logger.Printf("assets: font %s%s%s: %v", name, suffix, ext, err)
					continue
				}
				return face
			}
		}
	}
	return nil
}

func parseFace(data []byte, size float64) (font.Face, error) {
	tt, err := opentype.Parse(data)
	if err != nil {
		return nil, err
	}
	const dpi = 72
	return opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
}

// Close releases parsed font faces. The loader is unusable afterwards.
func (l *Loader) Close() error {
	var errs []error
	for k, f := range l.fonts {
		if f != bitmapfont.Face {
			errs = append(errs, f.Close())
		}
		delete(l.fonts, k)
	}
	return errors.Join(errs...)
}

func (l *Loader) read(p string) ([]byte, error) {
	if l.fsys == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, p)
	}
	data, err := fs.ReadFile(l.fsys, p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, p)
	}
	return data, err
}

// miss remembers a failed load so it is logged once rather than per frame.
func (l *Loader) miss(p string, err error) error {
	l.missing[p] = err
	l.logger.Printf("assets: %v, using fallback", err)
	return err
}

// placeholderIcon draws a grey rounded tile with a darker rim.
func placeholderIcon(size int) image.Image {
	if size <= 0 {
		size = 32
	}
	fill := color.NRGBA{180, 180, 180, 200}
	rim := color.NRGBA{120, 120, 120, 220}
	const radius, border = 6, 2

	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if !inRoundedRect(x, y, size, radius) {
				continue
			}
			c := fill
			if !inInner(x, y, size, radius, border) {
				c = rim
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func inRoundedRect(x, y, size, r int) bool {
	cx, cy := x, y
	switch {
	case x < r:
		cx = r
	case x >= size-r:
		cx = size - r - 1
	}
	switch {
	case y < r:
		cy = r
	case y >= size-r:
		cy = size - r - 1
	}
	dx, dy := x-cx, y-cy
	return dx*dx+dy*dy <= r*r
}

// inInner reports whether (x, y) lies inside the rim.
func inInner(x, y, size, r, border int) bool {
	inner := size - 2*border
	return inRoundedRect(x-border, y-border, inner, max(0, r-border))
}
