package glyph

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"sync"
)

const (
	DigitWidth  = 8
	DigitHeight = 7
	DigitCount  = 10
)

//go:embed data/number_sprites.txt
var numberSprites []byte

// loadDigits parses the embedded asset on first use only.
var loadDigits = sync.OnceValues(func() ([]Glyph, error) {
	return DecodeDigits(bytes.NewReader(numberSprites))
})

// DecodeDigits reads a digit sheet. The sheet stores digits from 9 down to 0,
// so the result is reversed: index i holds the glyph for digit i.
func DecodeDigits(r io.Reader) ([]Glyph, error) {
	blocks, err := decodeBlocks(r)
	if err != nil {
		return nil, err
	}
	if len(blocks) != DigitCount {
		return nil, &ParseError{
			Block:  -1,
			Reason: fmt.Sprintf("found %d digit glyphs, expected %d", len(blocks), DigitCount),
		}
	}

	digits := make([]Glyph, DigitCount)
	for i, b := range blocks {
		if w, h := b.glyph.Width(), b.glyph.Height(); w != DigitWidth || h != DigitHeight {
			return nil, &ParseError{
				Block:  i,
				Line:   b.line,
				Reason: fmt.Sprintf("glyph is %dx%d, expected %dx%d", w, h, DigitWidth, DigitHeight),
			}
		}
		digits[DigitCount-1-i] = b.glyph
	}
	return digits, nil
}

// Load parses the bundled digit sheet if that has not happened yet and reports
// whether it is well formed. Call it once at startup and abort on error.
func Load() error {
	_, err := loadDigits()
	return err
}

// Digit returns a copy of the glyph for digit d. It panics if d is not in
// 0-9 or if the bundled sheet is malformed.
func Digit(d int) Glyph {
	digits, err := loadDigits()
	if err != nil {
		panic(err)
	}
	if d < 0 || d >= len(digits) {
		panic(fmt.Sprintf("glyph: digit %d out of range", d))
	}
	return digits[d].Clone()
}
