package render

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"
)

// Rasterize composites cmds onto dst, clipped to its bounds. Transparent glyph
// pixels leave dst untouched.
func Rasterize(dst draw.Image, cmds []Drawable) {
	for _, cmd := range cmds {
		src := cmd.Glyph.Image()
		r := src.Bounds().Add(image.Pt(cmd.X, cmd.Y))
		draw.Draw(dst, r, src, image.Point{}, draw.Over)
	}
}

// ScoreImage renders score on a black background just large enough to hold
// it, each glyph pixel enlarged to scale x scale.
func ScoreImage(score, scale int) *image.RGBA {
	if scale < 1 {
		scale = 1
	}
	cmds := DrawScore(score, 0, 0)
	n := len(cmds)

	// shift so the most significant digit starts at x=0
	for i := range cmds {
		cmds[i].X += (n - 1) * DigitWidth
	}
	img := image.NewRGBA(image.Rect(0, 0, n*DigitWidth, cmds[0].Glyph.Height()))
	draw.Draw(img, img.Bounds(), image.NewUniform(colornames.Black), image.Point{}, draw.Src)
	Rasterize(img, cmds)

	if scale == 1 {
		return img
	}
	scaled := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx()*scale, img.Bounds().Dy()*scale))
	draw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)
	return scaled
}

// SavePNG writes img to path.
func SavePNG(path string, img image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return file.Close()
}
