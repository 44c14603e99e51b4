package gamemode

import (
	"errors"
	"testing"
)

func TestLookupKnownLabels(t *testing.T) {
	for _, label := range []string{"Easy", "Medium", "Hard"} {
		p, err := Lookup(label)
		if err != nil {
			t.Fatalf("Lookup(%q): unexpected error %v", label, err)
		}
		if p.TargetCount < 1 {
			t.Errorf("%s: expected TargetCount >= 1, got %d", label, p.TargetCount)
		}
		if p.Label != label {
			t.Errorf("Expected label %q, got %q", label, p.Label)
		}
		if p.Speed < 1 || p.RoundSeconds < 5 || p.Ammo < 0 || p.Goal < 0 {
			t.Errorf("%s: profile out of range: %+v", label, p)
		}
	}
}

func TestLookupUnknownLabel(t *testing.T) {
	for _, label := range []string{"", "easy", "Facile", "Impossible"} {
		if _, err := Lookup(label); !errors.Is(err, ErrUnknownDifficulty) {
			t.Errorf("Lookup(%q): expected ErrUnknownDifficulty, got %v", label, err)
		}
	}
}

func TestEasyProfileValues(t *testing.T) {
	p, _ := Lookup("Easy")
	want := Profile{Label: "Easy", TargetCount: 1, Speed: 3, Ammo: 10, Goal: 5, RoundSeconds: 30}
	if p != want {
		t.Errorf("Expected %+v, got %+v", want, p)
	}
}

func TestProfilesIsACopy(t *testing.T) {
	ps := Profiles()
	ps[0].Ammo = 999
	if p, _ := Lookup("Easy"); p.Ammo == 999 {
		t.Error("Expected Profiles to return a copy of the table")
	}
	if len(ps) != 3 {
		t.Errorf("Expected 3 profiles, got %d", len(ps))
	}
}

func TestNormalizedClamps(t *testing.T) {
	p := Profile{TargetCount: 0, Speed: 0.5, Ammo: -1, Goal: -3, RoundSeconds: 2}.normalized()
	if p.TargetCount != 1 || p.Speed != 1 || p.Ammo != 0 || p.Goal != 0 || p.RoundSeconds != 5 {
		t.Errorf("Expected clamped profile, got %+v", p)
	}
}
