package sound

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"testing/fstest"

	"chasse/internal/assets"
	"chasse/internal/gamemode"
)

func TestResolveFallsBackToSynth(t *testing.T) {
	var logs bytes.Buffer
	logger := log.New(&logs, "", 0)
	loader := assets.NewLoader(fstest.MapFS{}, logger)

	for _, name := range []string{gamemode.SoundBark, gamemode.MusicAmbiance} {
		pcm, err := resolve(loader, name, 44100, logger)
		if err != nil {
			t.Fatalf("%s: unexpected error %v", name, err)
		}
		if len(pcm) == 0 || len(pcm)%4 != 0 {
			t.Errorf("%s: expected whole stereo frames, got %d bytes", name, len(pcm))
		}
	}
}

func TestResolveUnknownName(t *testing.T) {
	logger := log.New(&bytes.Buffer{}, "", 0)
	if _, err := resolve(nil, "trumpet", 44100, logger); err == nil {
		t.Error("Expected an error for a sound with no file and no stand-in")
	}
}

func TestResolveCorruptMP3(t *testing.T) {
	var logs bytes.Buffer
	logger := log.New(&logs, "", 0)
	loader := assets.NewLoader(fstest.MapFS{
		"audio/barking.mp3": {Data: []byte("definitely not mpeg")},
	}, logger)

	pcm, err := resolve(loader, gamemode.SoundBark, 44100, logger)
	if err != nil || len(pcm) == 0 {
		t.Fatalf("Expected synthesized bark, got %d bytes, %v", len(pcm), err)
	}
	if !strings.Contains(logs.String(), "barking.mp3") {
		t.Errorf("Expected decode failure logged, got %q", logs.String())
	}
}

func TestNilContextIsSilent(t *testing.T) {
	m := NewMixer(nil, nil, 0.5, log.New(&bytes.Buffer{}, "", 0))
	m.PlayOnce(gamemode.SoundBark)
	m.PlayLoop(gamemode.MusicAmbiance)
	m.StopLoop()
	m.Close()
	if len(m.pcm) != 0 {
		t.Error("Expected nothing decoded without an audio context")
	}
}
