package render

import (
	"strconv"

	"github.com/faiface/pixel"

	"github.com/supermuesli/scoreboard/pkg/glyph"
)

// DigitWidth is the horizontal advance between two digits of a score.
const DigitWidth = glyph.DigitWidth

// Drawable is a glyph placed on screen. X and Y locate the glyph's top-left
// pixel, with y growing downward.
type Drawable struct {
	Digit int
	Glyph glyph.Glyph
	X, Y  int
}

// Matrix places the glyph for pixel, whose sprites are centred on the matrix
// origin and whose y axis grows upward. screenHeight is the height of the
// target in the same units as X and Y.
func (d Drawable) Matrix(screenHeight float64) pixel.Matrix {
	w, h := float64(d.Glyph.Width()), float64(d.Glyph.Height())
	return pixel.IM.Moved(pixel.V(float64(d.X)+w/2, screenHeight-float64(d.Y)-h/2))
}

// DrawScore lays out score as a row of digit glyphs growing leftward from
// (x, y), the least significant digit first. Negative scores draw as zero.
func DrawScore(score, x, y int) []Drawable {
	if score < 0 {
		score = 0
	}
	s := strconv.Itoa(score)

	cmds := make([]Drawable, 0, len(s))
	for position := 0; position < len(s); position++ {
		digit := int(s[len(s)-1-position] - '0')
		cmds = append(cmds, Drawable{
			Digit: digit,
			Glyph: glyph.Digit(digit),
			X:     x - position*DigitWidth,
			Y:     y,
		})
	}
	return cmds
}
