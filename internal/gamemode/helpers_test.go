package gamemode

import (
	"math/rand"
	"testing"
)

// fakeClock is a hand-driven millisecond source
type fakeClock struct {
	ms int64
}

func (c *fakeClock) Ticks() int64 { return c.ms }
func (c *fakeClock) Advance(ms int64) { c.ms += ms }
func (c *fakeClock) AdvanceSeconds(n int) { c.ms += int64(n) * 1000 }

// recordingSink keeps every audio call in order
type recordingSink struct {
	calls []string
}

func (s *recordingSink) PlayOnce(name string) { s.calls = append(s.calls, "once:"+name) }
func (s *recordingSink) PlayLoop(name string) { s.calls = append(s.calls, "loop:"+name) }
func (s *recordingSink) StopLoop() { s.calls = append(s.calls, "stop") }

func newTestRound(t *testing.T, p Profile) (*Round, *fakeClock, *recordingSink) {
	t.Helper()
	clock := &fakeClock{ms: 5000}
	sink := &recordingSink{}
	return NewRound(p, clock, rand.New(rand.NewSource(42)), sink), clock, sink
}

// activate clicks the dog and ticks until the magpies are out, returning
// the number of ticks the hop took.
func activate(t *testing.T, r *Round) int {
	t.Helper()
	r.Click(DogX+DogW/2, DogY+DogH/2)
	if r.Phase() != PhaseJumping {
		t.Fatalf("Expected jumping after clicking the dog, got %v", r.Phase())
	}
	for i := 1; i <= 100; i++ {
		r.Tick()
		if r.Phase() == PhaseActive {
			return i
		}
	}
	t.Fatal("dog never landed")
	return 0
}

// hitFirst waits for the first magpie to be shootable and shoots it.
func hitFirst(t *testing.T, r *Round) {
	t.Helper()
	m := r.Magpies()[0]
	for i := 0; m.Escaping; i++ {
		if i > 100 {
			t.Fatal("magpie never came back")
		}
		r.Tick()
	}
	p := m.Position()
	score := r.Score()
	r.Click(p.X, p.Y)
	if r.Score() != score+1 {
		t.Fatalf("Expected shot at %v to score, score stayed %d", p, r.Score())
	}
}

func missShot(r *Round) {
	r.Click(ScreenWidth-1, ScreenHeight-1)
}

func mustLookup(t *testing.T, label string) Profile {
	t.Helper()
	p, err := Lookup(label)
	if err != nil {
		t.Fatal(err)
	}
	return p
}
