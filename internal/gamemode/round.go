package gamemode

import (
	"chasse/internal/entity"
)

// Phase is the round's position in its lifecycle.
type Phase int

const (
	PhaseWaitingForStart Phase = iota // Dog on the ground, waiting for a click
	PhaseJumping                      // Dog mid-hop
	PhaseActive                       // Magpies loose, clock running
	PhaseOver                         // Outcome decided
)

func (p Phase) String() string {
	switch p {
	case PhaseWaitingForStart:
		return "waiting"
	case PhaseJumping:
		return "jumping"
	case PhaseActive:
		return "active"
	case PhaseOver:
		return "over"
	}
	return "unknown"
}

// Outcome of a finished round.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLose
)

// Result is what a finished round reports back to the session.
type Result struct {
	Label string
	Win   bool
	Score int
}

// Round is one play-through at a fixed difficulty.
type Round struct {
	profile Profile
	clock   Clock
	rng     entity.Rand
	audio   AudioSink

	dog     *entity.Dog
	magpies []*entity.Magpie

	phase    Phase
	outcome  Outcome
	score    int
	ammo     int
	timeLeft int
	origin   int64
}

// NewRound builds a round waiting for the dog to be clicked.
func NewRound(p Profile, clock Clock, rng entity.Rand, audio AudioSink) *Round {
	p = p.normalized()
	if audio == nil {
		audio = silentSink{}
	}
	return &Round{
		profile:  p,
		clock:    clock,
		rng:      rng,
		audio:    audio,
		dog:      entity.NewDog(DogX, DogY, DogW, DogH),
		ammo:     p.Ammo,
		timeLeft: p.RoundSeconds,
	}
}

// Tick advances the dog, then the magpies, then settles the outcome.
func (r *Round) Tick() {
	if r.dog.Tick() {
		r.release()
	}

	if r.phase == PhaseActive || r.phase == PhaseOver {
		for _, m := range r.magpies {
			m.Tick(r.rng, r.profile.Speed, ScreenWidth, ScreenHeight, entity.MagpieRadius)
		}
	}

	if r.phase != PhaseActive {
		return
	}
	r.timeLeft = r.remaining()

	switch {
	case r.score >= r.profile.Goal:
		r.finish(OutcomeWin)
	case r.ammo <= 0 || r.timeLeft <= 0:
		r.finish(OutcomeLose)
	}
}

// Click handles a pointer press in logical coordinates.
func (r *Round) Click(x, y int) {
	switch r.phase {
	case PhaseWaitingForStart:
		if !r.dog.Clicked(x, y) {
			return
		}
		r.audio.PlayOnce(SoundBark)
		r.audio.PlayLoop(MusicAmbiance)
		r.dog.BeginJump()
		r.phase = PhaseJumping

	case PhaseActive:
		r.shoot(x, y)
	}
}

func (r *Round) shoot(x, y int) {
	if r.ammo <= 0 {
		return
	}
	for _, m := range r.magpies {
		if m.CheckHit(x, y, entity.MagpieRadius) {
			r.score++
			break
		}
	}
	r.ammo--
}

// release lets the magpies out and starts the countdown.
func (r *Round) release() {
	r.magpies = make([]*entity.Magpie, 0, r.profile.TargetCount)
	for i := 0; i < r.profile.TargetCount; i++ {
		r.magpies = append(r.magpies, entity.SpawnMagpie(r.rng, r.profile.Speed, ScreenHeight, entity.MagpieRadius))
	}
	r.origin = r.clock.Ticks()
	r.timeLeft = r.profile.RoundSeconds
	r.phase = PhaseActive
}

func (r *Round) remaining() int {
	elapsed := int((r.clock.Ticks() - r.origin) / 1000)
	return max(0, r.profile.RoundSeconds-elapsed)
}

// finish records the outcome. timeLeft is not recomputed once Over.
func (r *Round) finish(o Outcome) {
	r.phase = PhaseOver
	r.outcome = o
}

// Result reports the outcome; done is false until the round is over.
func (r *Round) Result() (win bool, score int, done bool) {
	return r.outcome == OutcomeWin, r.score, r.phase == PhaseOver
}

func (r *Round) Profile() Profile { return r.profile }

func (r *Round) Phase() Phase { return r.phase }

func (r *Round) Outcome() Outcome { return r.outcome }

func (r *Round) Score() int { return r.score }

func (r *Round) Ammo() int { return r.ammo }

func (r *Round) TimeRemaining() int { return r.timeLeft }

func (r *Round) Dog() *entity.Dog { return r.dog }

// Magpies returns the live roster in hit-test order.
func (r *Round) Magpies() []*entity.Magpie { return r.magpies }

// Released reports whether the magpies are on the board.
func (r *Round) Released() bool {
	return r.phase == PhaseActive || r.phase == PhaseOver
}
