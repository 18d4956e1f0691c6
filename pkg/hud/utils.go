package hud

import (
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
)

func loadTTF(data []byte, size float64) (font.Face, error) {
	font, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}

	return truetype.NewFace(font, &truetype.Options{
		Size:              size,
		GlyphCacheEntries: 1,
	}), nil
}

// captionFace returns the caption font, falling back to the built-in bitmap
// face if the TrueType data cannot be parsed.
func captionFace(size float64) font.Face {
	face, err := loadTTF(gomono.TTF, size)
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}
