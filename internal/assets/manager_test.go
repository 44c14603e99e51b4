package assets

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"log"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/hajimehoshi/bitmapfont/v3"
	"golang.org/x/image/font/gofont/goregular"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(1, 1, color.RGBA{255, 0, 0, 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func newTestLoader(t *testing.T, files fstest.MapFS) (*Loader, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return NewLoader(files, log.New(&buf, "", 0)), &buf
}

func TestImageLoadsAndCaches(t *testing.T) {
	files := fstest.MapFS{"images/tree.png": {Data: pngBytes(t, 4, 6)}}
	l, _ := newTestLoader(t, files)

	img, err := l.Image("tree.png")
	if err != nil {
		t.Fatalf("Expected tree.png to load, got %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 6 {
		t.Errorf("Expected 4x6 image, got %v", b)
	}

	delete(files, "images/tree.png")
	again, err := l.Image("tree.png")
	if err != nil || again != img {
		t.Errorf("Expected cached image on second load, got %v, %v", again, err)
	}
}

func TestMissingImageIsLoggedOnce(t *testing.T) {
	l, logs := newTestLoader(t, fstest.MapFS{})

	for i := 0; i < 3; i++ {
		if _, err := l.Image("sheltie.png"); !errors.Is(err, ErrNotFound) {
			t.Fatalf("Expected ErrNotFound, got %v", err)
		}
	}
	if n := strings.Count(logs.String(), "sheltie.png"); n != 1 {
		t.Errorf("Expected one log line for the miss, got %d: %q", n, logs.String())
	}
}

func TestCorruptImageReportsDecodeError(t *testing.T) {
	l, _ := newTestLoader(t, fstest.MapFS{"images/bird.png": {Data: []byte("not a png")}})
	_, err := l.Image("bird.png")
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("Expected a decode error, got %v", err)
	}
}

func TestIconFallback(t *testing.T) {
	l, _ := newTestLoader(t, fstest.MapFS{"images/ammo.png": {Data: pngBytes(t, 8, 8)}})

	if b := l.Icon("ammo.png", 32).Bounds(); b.Dx() != 8 {
		t.Errorf("Expected real icon, got bounds %v", b)
	}

	ph := l.Icon("timer.png", 24)
	if b := ph.Bounds(); b.Dx() != 24 || b.Dy() != 24 {
		t.Fatalf("Expected 24x24 placeholder, got %v", b)
	}
	if _, _, _, a := ph.At(0, 0).RGBA(); a != 0 {
		t.Error("Expected transparent rounded corner")
	}
	if _, _, _, a := ph.At(12, 12).RGBA(); a == 0 {
		t.Error("Expected opaque centre")
	}
	rimR, _, _, _ := ph.At(12, 0).RGBA()
	midR, _, _, _ := ph.At(12, 12).RGBA()
	if rimR >= midR {
		t.Errorf("Expected darker rim than fill, got rim %d fill %d", rimR, midR)
	}
	if l.Icon("timer.png", 24) != ph {
		t.Error("Expected placeholder cached")
	}
}

func TestSound(t *testing.T) {
	l, _ := newTestLoader(t, fstest.MapFS{"audio/barking.mp3": {Data: []byte{1, 2, 3}}})

	data, err := l.Sound("barking.mp3")
	if err != nil || len(data) != 3 {
		t.Errorf("Expected 3 bytes, got %v, %v", data, err)
	}
	if _, err := l.Sound("ambiance.mp3"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestFontDiscovery(t *testing.T) {
	l, _ := newTestLoader(t, fstest.MapFS{"fonts/Montserrat-Regular.ttf": {Data: goregular.TTF}})
	defer l.Close()

	face := l.Font([]string{"Nope", "Montserrat"}, 28)
	if face == bitmapfont.Face {
		t.Fatal("Expected Montserrat-Regular.ttf to be found")
	}
	if h := face.Metrics().Height.Ceil(); h < 28 {
		t.Errorf("Expected line height at least 28, got %d", h)
	}
	if l.Font([]string{"Nope", "Montserrat"}, 28) != face {
		t.Error("Expected face cached by name list and size")
	}
	if l.Font([]string{"Nope", "Montserrat"}, 44) == face {
		t.Error("Expected a different face per size")
	}
}

func TestFontFallsBackToBitmap(t *testing.T) {
	l, logs := newTestLoader(t, fstest.MapFS{"fonts/Broken.ttf": {Data: []byte("junk")}})

	if face := l.Font([]string{"Broken", "Consolas"}, 28); face != bitmapfont.Face {
		t.Errorf("Expected bitmap fallback, got %T", face)
	}
	if !strings.Contains(logs.String(), "Broken.ttf") {
		t.Errorf("Expected parse failure logged, got %q", logs.String())
	}
	if err := l.Close(); err != nil {
		t.Errorf("Expected clean close, got %v", err)
	}
}

func TestNilFSNeverFails(t *testing.T) {
	l := NewLoader(nil, log.New(&bytes.Buffer{}, "", 0))
	if _, err := l.Image("x.png"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if l.Icon("x.png", 16) == nil || l.Font(nil, 12) == nil {
		t.Error("Expected stand-ins without an asset tree")
	}
}
