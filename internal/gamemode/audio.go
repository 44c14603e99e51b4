package gamemode

// Sound names understood by every AudioSink.
const (
	SoundBark     = "barking"
	MusicAmbiance = "ambiance"
)

// AudioSink plays sounds fire-and-forget. Implementations log their own
// failures; the round never waits on audio.
type AudioSink interface {
	PlayOnce(name string)
	PlayLoop(name string)
	StopLoop()
}

type silentSink struct{}

func (silentSink) PlayOnce(string) {}
func (silentSink) PlayLoop(string) {}
func (silentSink) StopLoop() {}
