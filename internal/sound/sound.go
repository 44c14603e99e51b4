package sound

import (
	"bytes"
	"fmt"
	"io"
	"log"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"

	"chasse/internal/assets"
	"chasse/internal/gamemode"
	"chasse/internal/synth"
)

// Stand-ins for each named sound when its mp3 is missing
var fallbacks = map[string]func(beep.SampleRate) beep.Streamer{
	gamemode.SoundBark:     synth.Bark,
	gamemode.MusicAmbiance: synth.Ambiance,
}

var _ gamemode.AudioSink = (*Mixer)(nil)

// Mixer plays named sounds through an ebiten audio context. A nil context
// turns every call into a no-op.
type Mixer struct {
	ctx    *audio.Context
	loader *assets.Loader
	logger *log.Logger
	volume float64

	pcm      map[string][]byte
	oneShots []*audio.Player
	loop     *audio.Player
}

func NewMixer(ctx *audio.Context, loader *assets.Loader, volume float64, logger *log.Logger) *Mixer {
	if logger == nil {
		logger = log.Default()
	}
	return &Mixer{
		ctx:    ctx,
		loader: loader,
		logger: logger,
		volume: volume,
		pcm:    make(map[string][]byte),
	}
}

// PlayOnce fires a sound and forgets about it.
func (m *Mixer) PlayOnce(name string) {
	if m.ctx == nil {
		return
	}
	pcm, err := m.load(name)
	if err != nil {
		m.logger.Printf("sound: %v", err)
		return
	}

	m.prune()
	p := m.ctx.NewPlayerFromBytes(pcm)
	p.SetVolume(m.volume)
	p.Play()
	m.oneShots = append(m.oneShots, p)
}

// PlayLoop replaces the current background loop.
func (m *Mixer) PlayLoop(name string) {
	if m.ctx == nil {
		return
	}
	m.StopLoop()

	pcm, err := m.load(name)
	if err != nil {
		m.logger.Printf("sound: %v", err)
		return
	}
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	p, err := m.ctx.NewPlayer(loop)
	if err != nil {
		m.logger.Printf("sound: loop %s: %v", name, err)
		return
	}
	p.SetVolume(m.volume)
	p.Play()
	m.loop = p
}

func (m *Mixer) StopLoop() {
	if m.loop == nil {
		return
	}
	if err := m.loop.Close(); err != nil {
		m.logger.Printf("sound: stop loop: %v", err)
	}
	m.loop = nil
}

// Close silences everything still playing.
func (m *Mixer) Close() {
	m.StopLoop()
	for _, p := range m.oneShots {
		p.Close()
	}
	m.oneShots = nil
}

// prune drops finished one-shots
func (m *Mixer) prune() {
	live := m.oneShots[:0]
	for _, p := range m.oneShots {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		p.Close()
	}
	m.oneShots = live
}

func (m *Mixer) load(name string) ([]byte, error) {
	if pcm, ok := m.pcm[name]; ok {
		return pcm, nil
	}
	pcm, err := resolve(m.loader, name, m.ctx.SampleRate(), m.logger)
	if err != nil {
		return nil, err
	}
	m.pcm[name] = pcm
	return pcm, nil
}

// resolve returns 16-bit stereo PCM for name: the decoded audio/<name>.mp3
// when it is usable, otherwise the synthesized stand-in.
func resolve(loader *assets.Loader, name string, sampleRate int, logger *log.Logger) ([]byte, error) {
	if loader != nil {
		if data, err := loader.Sound(name + ".mp3"); err == nil {
			pcm, err := decodeMP3(data, sampleRate)
			if err == nil {
				return pcm, nil
			}
			logger.Printf("sound: %s.mp3: %v, using synthesized sound", name, err)
		}
	}

	gen, ok := fallbacks[name]
	if !ok {
		return nil, fmt.Errorf("no sound named %q", name)
	}
	return synth.PCM16(gen(beep.SampleRate(sampleRate))), nil
}

func decodeMP3(data []byte, sampleRate int) ([]byte, error) {
	s, err := mp3.DecodeWithSampleRate(sampleRate, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return io.ReadAll(s)
}
