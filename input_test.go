package main

import (
	"image"
	"reflect"
	"testing"

	"chasse/internal/gamemode"
)

func TestPointerEvents(t *testing.T) {
	tests := []struct {
		name      string
		prev, cur image.Point
		pressed   []gamemode.MouseButton
		taps      []image.Point
		want      []gamemode.Event
	}{
		{
			name: "idle",
			prev: image.Pt(10, 10), cur: image.Pt(10, 10),
		},
		{
			name: "move only",
			prev: image.Pt(10, 10), cur: image.Pt(12, 14),
			want: []gamemode.Event{gamemode.PointerMove(12, 14)},
		},
		{
			name: "click in place",
			prev: image.Pt(300, 250), cur: image.Pt(300, 250),
			pressed: []gamemode.MouseButton{gamemode.ButtonLeft},
			want:    []gamemode.Event{gamemode.PointerDown(300, 250, gamemode.ButtonLeft)},
		},
		{
			name: "move then two buttons",
			prev: image.Pt(0, 0), cur: image.Pt(5, 6),
			pressed: []gamemode.MouseButton{gamemode.ButtonLeft, gamemode.ButtonRight},
			want: []gamemode.Event{
				gamemode.PointerMove(5, 6),
				gamemode.PointerDown(5, 6, gamemode.ButtonLeft),
				gamemode.PointerDown(5, 6, gamemode.ButtonRight),
			},
		},
		{
			name: "touch",
			prev: image.Pt(1, 1), cur: image.Pt(1, 1),
			taps: []image.Point{image.Pt(400, 300)},
			want: []gamemode.Event{gamemode.PointerDown(400, 300, gamemode.ButtonLeft)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pointerEvents(tt.prev, tt.cur, tt.pressed, tt.taps)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}
