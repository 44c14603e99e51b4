package gamemode

import (
	"errors"
	"fmt"
)

// ErrUnknownDifficulty is returned when a label is not in the table.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Profile is one difficulty tier.
type Profile struct {
	Label        string
	TargetCount  int
	Speed        float64
	Ammo         int
	Goal         int
	RoundSeconds int
}

var profiles = []Profile{
	{Label: "Easy", TargetCount: 1, Speed: 3, Ammo: 10, Goal: 5, RoundSeconds: 30},
	{Label: "Medium", TargetCount: 2, Speed: 5, Ammo: 15, Goal: 10, RoundSeconds: 30},
	{Label: "Hard", TargetCount: 4, Speed: 8, Ammo: 10, Goal: 10, RoundSeconds: 30},
}

// Profiles returns the difficulty tiers in menu order.
func Profiles() []Profile {
	out := make([]Profile, len(profiles))
	copy(out, profiles)
	return out
}

// Lookup finds a profile by label.
func Lookup(label string) (Profile, error) {
	for _, p := range profiles {
		if p.Label == label {
			return p, nil
		}
	}
	return Profile{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, label)
}

// normalized clamps a profile into the ranges a round can play with.
func (p Profile) normalized() Profile {
	p.TargetCount = max(1, p.TargetCount)
	p.Speed = max(1, p.Speed)
	p.Ammo = max(0, p.Ammo)
	p.Goal = max(0, p.Goal)
	p.RoundSeconds = max(5, p.RoundSeconds)
	return p
}
