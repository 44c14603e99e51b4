// Package synth builds the stand-in sounds used when the audio assets are
// missing: a two-part bark and a slow looping pad.
package synth

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate shared by both frontends
const SampleRate = beep.SampleRate(44100)

// Bark timings
const (
	woofLength = 180 * time.Millisecond
	woofGap    = 80 * time.Millisecond
	woofAttack = 10 * time.Millisecond
)

// Pad timings
const (
	chordLength  = 2 * time.Second
	chordAttack  = 400 * time.Millisecond
	chordRelease = 600 * time.Millisecond
)

// Bark returns a finite two-woof streamer.
func Bark(sr beep.SampleRate) beep.Streamer {
	return beep.Seq(
		woof(sr, 420),
		silence(sr.N(woofGap)),
		woof(sr, 360),
	)
}

func woof(sr beep.SampleRate, freq float64) beep.Streamer {
	n := sr.N(woofLength)
	body := beep.Mix(
		newVolume(newSweep(sr, freq, freq*0.55), 0.6),
		newVolume(newNoise(), 0.2),
	)
	return newEnvelope(body, n, sr.N(woofAttack), n/2)
}

// Ambiance returns one finite cycle of the pad; callers loop it.
func Ambiance(sr beep.SampleRate) beep.Streamer {
	chords := [][]float64{
		{220.00, 261.63, 329.63}, // Am
		{174.61, 220.00, 261.63}, // F
		{196.00, 246.94, 293.66}, // G
		{220.00, 261.63, 329.63},
	}
	var parts []beep.Streamer
	for _, c := range chords {
		parts = append(parts, chord(sr, c))
	}
	return beep.Seq(parts...)
}

func chord(sr beep.SampleRate, freqs []float64) beep.Streamer {
	var voices []beep.Streamer
	for _, f := range freqs {
		tone, err := generators.SineTone(sr, f)
		if err != nil {
			continue
		}
		voices = append(voices, newVolume(tone, 0.12))
	}
	n := sr.N(chordLength)
	return newEnvelope(beep.Mix(voices...), n, sr.N(chordAttack), sr.N(chordRelease))
}

// PCM16 drains s into 16-bit little-endian stereo bytes. s must be finite.
func PCM16(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			for _, v := range smp {
				q := int16(clamp(v) * math.MaxInt16)
				out = append(out, byte(q), byte(q>>8))
			}
		}
		if !ok {
			return out
		}
	}
}

// Buffer drains s into a seekable beep buffer.
func Buffer(sr beep.SampleRate, s beep.Streamer) *beep.Buffer {
	b := beep.NewBuffer(beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2})
	b.Append(s)
	return b
}

func clamp(v float64) float64 {
	return max(-1, min(1, v))
}

func silence(n int) beep.Streamer {
	return beep.Take(n, beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		clear(samples)
		return len(samples), true
	}))
}

// math.Log2(0) is -Inf, so a zero volume is expressed as Silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// sweep is a sine gliding exponentially from one pitch towards another
type sweep struct {
	rate     float64
	from, to float64
	phase    float64
	pos      int
	length   int
}

func newSweep(sr beep.SampleRate, from, to float64) beep.Streamer {
	return &sweep{rate: float64(sr), from: from, to: to, length: sr.N(woofLength)}
}

func (s *sweep) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		t := min(1, float64(s.pos)/float64(s.length))
		freq := s.from * math.Pow(s.to/s.from, t)
		v := math.Sin(2 * math.Pi * s.phase)
		samples[i][0], samples[i][1] = v, v
		s.phase += freq / s.rate
		s.phase -= math.Floor(s.phase)
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

func newNoise() beep.Streamer {
	rng := rand.New(rand.NewSource(1))
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := rng.Float64()*2 - 1
			samples[i][0], samples[i][1] = v, v
		}
		return len(samples), true
	})
}

// envelope cuts a stream to total samples with linear attack and release
type envelope struct {
	streamer beep.Streamer
	pos      int
	total    int
	attack   int
	release  int
}

func newEnvelope(s beep.Streamer, total, attack, release int) beep.Streamer {
	return &envelope{streamer: s, total: total, attack: attack, release: release}
}

func (e *envelope) Stream(samples [][2]float64) (int, bool) {
	if e.pos >= e.total {
		return 0, false
	}
	if left := e.total - e.pos; len(samples) > left {
		samples = samples[:left]
	}
	n, ok := e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if e.attack > 0 && e.pos < e.attack {
			gain = float64(e.pos) / float64(e.attack)
		}
		if tail := e.total - e.pos; e.release > 0 && tail < e.release {
			gain = min(gain, float64(tail)/float64(e.release))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		e.pos++
	}
	if !ok {
		e.pos = e.total
	}
	return n, n > 0
}

func (e *envelope) Err() error { return e.streamer.Err() }
