package gamemode

import (
	"image"
	"log"
	"math/rand"
	"time"

	"chasse/internal/entity"
)

// Session owns the menu and at most one round. It is driven by a single
// loop calling Tick once per frame.
type Session struct {
	clock  Clock
	rng    entity.Rand
	audio  AudioSink
	logger *log.Logger

	round   *Round
	running bool
	pointer image.Point
	last    *Result
}

type Option func(*Session)

func WithClock(c Clock) Option { return func(s *Session) { s.clock = c } }

func WithRand(r entity.Rand) Option { return func(s *Session) { s.rng = r } }

func WithAudio(a AudioSink) Option {
	return func(s *Session) {
		if a != nil {
			s.audio = a
		}
	}
}

func WithLogger(l *log.Logger) Option { return func(s *Session) { s.logger = l } }

// NewSession creates a session sitting in the menu.
func NewSession(opts ...Option) *Session {
	s := &Session{
		audio:   silentSink{},
		logger:  log.Default(),
		running: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.clock == nil {
		s.clock = NewSystemClock()
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s
}

// Start (re)enters the menu and marks the loop as running.
func (s *Session) Start() {
	if s.round != nil {
		s.audio.StopLoop()
	}
	s.round = nil
	s.running = true
}

// Select builds a round for the given difficulty. Unknown labels leave
// the session in the menu.
func (s *Session) Select(label string) (*Round, error) {
	p, err := Lookup(label)
	if err != nil {
		s.logger.Printf("session: %v, staying in menu", err)
		s.round = nil
		return nil, err
	}
	s.round = NewRound(p, s.clock, s.rng, s.audio)
	return s.round, nil
}

// Tick runs one frame: the round advances first, then queued events are
// applied in order.
func (s *Session) Tick(events []Event) Frame {
	if !s.running {
		return s.Frame()
	}
	if s.round != nil {
		s.round.Tick()
	}
	for _, ev := range events {
		s.handle(ev)
		if !s.running {
			break
		}
	}
	return s.Frame()
}

func (s *Session) handle(ev Event) {
	switch ev.Kind {
	case EventQuit:
		s.audio.StopLoop()
		s.running = false

	case EventPointerMove:
		s.pointer = image.Pt(ev.X, ev.Y)

	case EventPointerDown:
		s.pointer = image.Pt(ev.X, ev.Y)
		switch {
		case s.round == nil:
			s.menuClick(ev)
		case s.round.Phase() == PhaseOver:
			s.endRound()
		default:
			s.round.Click(ev.X, ev.Y)
		}
	}
}

func (s *Session) menuClick(ev Event) {
	if ev.Button != ButtonLeft {
		return
	}
	for i, p := range profiles {
		if s.pointer.In(buttonRect(i)) {
			s.Select(p.Label)
			return
		}
	}
}

func (s *Session) endRound() {
	win, score, _ := s.round.Result()
	s.last = &Result{Label: s.round.Profile().Label, Win: win, Score: score}
	s.audio.StopLoop()
	s.round = nil
}

// Abort drops the current round and returns to the menu. Frontends call
// it when a collaborator fails mid-frame.
func (s *Session) Abort(err error) {
	s.logger.Printf("session: round aborted: %v", err)
	s.audio.StopLoop()
	s.round = nil
}

// Frame describes the current state without advancing it.
func (s *Session) Frame() Frame {
	if s.round == nil {
		return menuFrame(s.pointer, s.last)
	}
	return roundFrame(s.round, s.pointer)
}

func (s *Session) Running() bool { return s.running }

// Round is the live round, nil while in the menu.
func (s *Session) Round() *Round { return s.round }

// LastResult is the outcome of the most recently dismissed round.
func (s *Session) LastResult() (Result, bool) {
	if s.last == nil {
		return Result{}, false
	}
	return *s.last, true
}
