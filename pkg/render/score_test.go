package render

import (
	"testing"

	"github.com/faiface/pixel"
	"github.com/google/go-cmp/cmp"

	"github.com/supermuesli/scoreboard/pkg/glyph"
)

type placed struct {
	Digit, X, Y int
}

func placements(cmds []Drawable) []placed {
	out := make([]placed, len(cmds))
	for i, c := range cmds {
		out[i] = placed{c.Digit, c.X, c.Y}
	}
	return out
}

func TestDrawScore(t *testing.T) {
	const x, y = 100, 20

	tests := []struct {
		name  string
		score int
		want  []placed
	}{
		{"zero", 0, []placed{{0, x, y}}},
		{"negative clamps to zero", -5, []placed{{0, x, y}}},
		{"two digits", 42, []placed{{2, x, y}, {4, x - 8, y}}},
		{"trailing zeros", 100, []placed{{0, x, y}, {0, x - 8, y}, {1, x - 16, y}}},
		{"all digits", 1234567890, []placed{
			{0, x, y}, {9, x - 8, y}, {8, x - 16, y}, {7, x - 24, y}, {6, x - 32, y},
			{5, x - 40, y}, {4, x - 48, y}, {3, x - 56, y}, {2, x - 64, y}, {1, x - 72, y},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DrawScore(tt.score, x, y)
			if diff := cmp.Diff(tt.want, placements(got)); diff != "" {
				t.Errorf("DrawScore(%d) mismatch (-want +got):\n%s", tt.score, diff)
			}
		})
	}
}

func TestDrawScoreGlyphs(t *testing.T) {
	for _, cmd := range DrawScore(9876543210, 0, 0) {
		want := glyph.Digit(cmd.Digit).Image()
		if diff := cmp.Diff(want.Pix, cmd.Glyph.Image().Pix); diff != "" {
			t.Errorf("digit %d carries the wrong glyph (-want +got):\n%s", cmd.Digit, diff)
		}
	}
}

func TestDrawScoreNegativeMatchesZero(t *testing.T) {
	neg, zero := DrawScore(-5, 3, 4), DrawScore(0, 3, 4)
	if diff := cmp.Diff(placements(zero), placements(neg)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDrawableMatrix(t *testing.T) {
	d := Drawable{Glyph: glyph.Digit(3), X: 10, Y: 5}

	// a 8x7 glyph with its top-left at (10, 5) on a 50 high screen is centred
	// at (14, 50-5-3.5)
	got := d.Matrix(50).Project(pixel.ZV)
	want := pixel.V(14, 41.5)
	if got != want {
		t.Errorf("expected centre %v, got %v", want, got)
	}
}
