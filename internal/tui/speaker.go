package tui

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"

	"chasse/internal/assets"
	"chasse/internal/gamemode"
	"chasse/internal/synth"
)

const sampleRate = synth.SampleRate

// Stand-ins for each named sound when its mp3 is missing
var fallbacks = map[string]func(beep.SampleRate) beep.Streamer{
	gamemode.SoundBark:     synth.Bark,
	gamemode.MusicAmbiance: synth.Ambiance,
}

var _ gamemode.AudioSink = (*Speaker)(nil)

// Speaker plays named sounds through the beep speaker. Every sound is
// mixed into one beep.Mixer that the speaker drains.
type Speaker struct {
	mu     sync.Mutex
	loader *assets.Loader
	logger *log.Logger
	volume float64

	mixer   *beep.Mixer
	loop    *beep.Ctrl
	buffers map[string]*beep.Buffer

	lock, unlock func()
	closeDevice  func()
}

// NewSpeaker opens the audio device. On error the caller should fall back
// to running silent.
func NewSpeaker(loader *assets.Loader, volume float64, logger *log.Logger) (*Speaker, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}
	s := newSpeaker(loader, volume, logger)
	s.lock, s.unlock, s.closeDevice = speaker.Lock, speaker.Unlock, speaker.Close
	speaker.Play(s.mixer)
	return s, nil
}

// newSpeaker builds a speaker whose mixer is not attached to any device.
func newSpeaker(loader *assets.Loader, volume float64, logger *log.Logger) *Speaker {
	if logger == nil {
		logger = log.Default()
	}
	return &Speaker{
		loader:      loader,
		logger:      logger,
		volume:      volume,
		mixer:       &beep.Mixer{},
		buffers:     make(map[string]*beep.Buffer),
		lock:        func() {},
		unlock:      func() {},
		closeDevice: func() {},
	}
}

func (s *Speaker) PlayOnce(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf, err := s.buffer(name)
	if err != nil {
		s.logger.Printf("tui: %v", err)
		return
	}
	s.add(buf.Streamer(0, buf.Len()))
}

func (s *Speaker) PlayLoop(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLoop()
	buf, err := s.buffer(name)
	if err != nil {
		s.logger.Printf("tui: %v", err)
		return
	}
	s.loop = &beep.Ctrl{Streamer: beep.Loop(-1, buf.Streamer(0, buf.Len()))}
	s.add(s.loop)
}

func (s *Speaker) StopLoop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLoop()
}

// stopLoop detaches the loop's source; the mixer drops it on its next read.
func (s *Speaker) stopLoop() {
	if s.loop == nil {
		return
	}
	s.lock()
	s.loop.Streamer = nil
	s.unlock()
	s.loop = nil
}

func (s *Speaker) add(st beep.Streamer) {
	vol := &effects.Volume{Streamer: st, Base: 2}
	if s.volume <= 0 {
		vol.Silent = true
	} else {
		vol.Volume = math.Log2(s.volume)
	}
	s.lock()
	s.mixer.Add(vol)
	s.unlock()
}

// Close silences everything and releases the device.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loop = nil
	s.lock()
	s.mixer.Clear()
	s.unlock()
	s.closeDevice()
}

func (s *Speaker) buffer(name string) (*beep.Buffer, error) {
	if b, ok := s.buffers[name]; ok {
		return b, nil
	}
	b, err := loadBuffer(s.loader, name, s.logger)
	if err != nil {
		return nil, err
	}
	s.buffers[name] = b
	return b, nil
}

// loadBuffer decodes audio/<name>.mp3 into memory at the speaker's rate,
// or synthesizes the stand-in when the file is missing or unreadable.
func loadBuffer(loader *assets.Loader, name string, logger *log.Logger) (*beep.Buffer, error) {
	if loader != nil {
		if data, err := loader.Sound(name + ".mp3"); err == nil {
			b, err := decodeMP3(data)
			if err == nil {
				return b, nil
			}
			logger.Printf("tui: %s.mp3: %v, using synthesized sound", name, err)
		}
	}

	gen, ok := fallbacks[name]
	if !ok {
		return nil, fmt.Errorf("no sound named %q", name)
	}
	return synth.Buffer(sampleRate, gen(sampleRate)), nil
}

func decodeMP3(data []byte) (*beep.Buffer, error) {
	st, format, err := mp3.Decode(io.NopCloser(bytes.NewReader(data)))
	if err != nil {
		return nil, err
	}
	defer st.Close()

	var src beep.Streamer = st
	if format.SampleRate != sampleRate {
		src = beep.Resample(4, format.SampleRate, sampleRate, st)
	}
	b := beep.NewBuffer(beep.Format{SampleRate: sampleRate, NumChannels: 2, Precision: 2})
	b.Append(src)
	if err := st.Err(); err != nil {
		return nil, err
	}
	return b, nil
}
