package tui

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"chasse/internal/gamemode"
	"chasse/internal/synth"
)

func drain(s *Speaker, n int) [][2]float64 {
	buf := make([][2]float64, n)
	s.mixer.Stream(buf)
	return buf
}

func TestSpeakerMixesOneShotsAndLoop(t *testing.T) {
	s := newSpeaker(nil, 1, log.New(&bytes.Buffer{}, "", 0))

	s.PlayOnce(gamemode.SoundBark)
	s.PlayLoop(gamemode.MusicAmbiance)
	if n := s.mixer.Len(); n != 2 {
		t.Fatalf("Expected 2 streamers in the mix, got %d", n)
	}

	s.PlayLoop(gamemode.MusicAmbiance)
	drain(s, 512)
	if n := s.mixer.Len(); n != 2 {
		t.Errorf("Expected the replaced loop dropped, got %d streamers", n)
	}

	s.StopLoop()
	drain(s, 512)
	if n := s.mixer.Len(); n != 1 {
		t.Errorf("Expected only the bark left after StopLoop, got %d", n)
	}

	s.Close()
	if n := s.mixer.Len(); n != 0 {
		t.Errorf("Expected Close to clear the mix, got %d", n)
	}
}

func TestSpeakerMutedAtZeroVolume(t *testing.T) {
	s := newSpeaker(nil, 0, log.New(&bytes.Buffer{}, "", 0))
	s.PlayOnce(gamemode.SoundBark)

	for i, smp := range drain(s, 4096) {
		if smp[0] != 0 || smp[1] != 0 {
			t.Fatalf("Expected silence at volume 0, got %v at %d", smp, i)
		}
	}
}

func TestSpeakerUnknownSound(t *testing.T) {
	var logs bytes.Buffer
	s := newSpeaker(nil, 1, log.New(&logs, "", 0))

	s.PlayOnce("meow")
	if n := s.mixer.Len(); n != 0 {
		t.Errorf("Expected nothing mixed, got %d", n)
	}
	if !strings.Contains(logs.String(), "meow") {
		t.Errorf("Expected the miss logged, got %q", logs.String())
	}
}

func TestLoadBufferFallsBackToSynth(t *testing.T) {
	b, err := loadBuffer(nil, gamemode.SoundBark, log.New(&bytes.Buffer{}, "", 0))
	if err != nil {
		t.Fatal(err)
	}
	want := synth.Buffer(sampleRate, synth.Bark(sampleRate)).Len()
	if b.Len() != want {
		t.Errorf("Expected %d synthesized samples, got %d", want, b.Len())
	}
	if b.Format().SampleRate != sampleRate {
		t.Errorf("Expected %d Hz, got %d", sampleRate, b.Format().SampleRate)
	}
}
