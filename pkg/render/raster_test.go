package render

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/colornames"

	"github.com/supermuesli/scoreboard/pkg/glyph"
)

func TestRasterize(t *testing.T) {
	bg := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	img := image.NewRGBA(image.Rect(0, 0, 40, 10))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = bg.R, bg.G, bg.B, bg.A
	}

	cmds := DrawScore(7, 30, 2)
	Rasterize(img, cmds)

	g := glyph.Digit(7)
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			want := bg
			if g.At(col, row).A != 0 {
				want = colornames.White
			}
			if got := img.RGBAAt(30+col, 2+row); got != want {
				t.Errorf("pixel (%d,%d): expected %v got %v", 30+col, 2+row, want, got)
			}
		}
	}
	if got := img.RGBAAt(0, 0); got != bg {
		t.Errorf("pixel outside the glyph changed to %v", got)
	}
}

func TestRasterizeClips(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	// digits fall partly and wholly outside the image
	Rasterize(img, DrawScore(123, 0, -3))
}

func TestScoreImage(t *testing.T) {
	img := ScoreImage(42, 3)
	if got, want := img.Bounds(), image.Rect(0, 0, 2*8*3, 7*3); got != want {
		t.Fatalf("expected bounds %v, got %v", want, got)
	}

	four := glyph.Digit(4)
	two := glyph.Digit(2)
	for row := 0; row < glyph.DigitHeight; row++ {
		for col := 0; col < glyph.DigitWidth; col++ {
			if lit := img.RGBAAt(col*3+1, row*3+1) == colornames.White; lit != (four.At(col, row).A != 0) {
				t.Errorf("digit 4 pixel (%d,%d) wrong", col, row)
			}
			if lit := img.RGBAAt((8+col)*3+1, row*3+1) == colornames.White; lit != (two.At(col, row).A != 0) {
				t.Errorf("digit 2 pixel (%d,%d) wrong", col, row)
			}
		}
	}
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "score.png")
	want := ScoreImage(905, 1)
	if err := SavePNG(path, want); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if got.Bounds() != want.Bounds() {
		t.Fatalf("expected bounds %v, got %v", want.Bounds(), got.Bounds())
	}
	for y := 0; y < want.Bounds().Dy(); y++ {
		for x := 0; x < want.Bounds().Dx(); x++ {
			r1, g1, b1, a1 := want.At(x, y).RGBA()
			r2, g2, b2, a2 := got.At(x, y).RGBA()
			if r1 != r2 || g1 != g2 || b1 != b2 || a1 != a2 {
				t.Fatalf("pixel (%d,%d) differs after round trip", x, y)
			}
		}
	}
}

func TestSavePNGBadPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "score.png")
	if err := SavePNG(path, ScoreImage(1, 1)); err == nil {
		t.Error("expected an error for a missing directory")
	}
}
