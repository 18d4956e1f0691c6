// Package hud shows scores in a pixelgl window.
package hud

import (
	"fmt"
	"image"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"

	"github.com/supermuesli/scoreboard/pkg/config"
	"github.com/supermuesli/scoreboard/pkg/glyph"
	"github.com/supermuesli/scoreboard/pkg/render"
)

// Scoreboard shows a score in a window using the digit sprites.
type Scoreboard struct {
	Win *pixelgl.Window

	// ticks at the configured frame rate
	FPS <-chan time.Time

	title  string
	width  float64
	height float64
	scale  float64

	// anchor of the least significant digit, in glyph pixels
	anchorX int
	anchorY int

	// one sprite per digit, built once so pixel can cache the textures
	sprites [glyph.DigitCount]*pixel.Sprite
	caption *text.Text

	score        int
	snapshotPath string
}

// NewScoreboard opens a window as described by cfg. glyph.Load should have
// succeeded before this is called.
func NewScoreboard(cfg config.Config) (*Scoreboard, error) {
	wcfg := pixelgl.WindowConfig{
		Title:  "scoreboard",
		Bounds: pixel.R(0, 0, cfg.Width, cfg.Height),
		VSync:  true,
	}

	win, err := pixelgl.NewWindow(wcfg)
	if err != nil {
		return nil, err
	}

	// keep glyph pixels sharp when scaled
	win.Canvas().SetSmooth(false)

	sb := &Scoreboard{
		Win:          win,
		FPS:          time.Tick(time.Second / time.Duration(cfg.FPS)),
		title:        wcfg.Title,
		width:        cfg.Width,
		height:       cfg.Height,
		scale:        cfg.Scale,
		anchorX:      cfg.AnchorX,
		anchorY:      cfg.AnchorY,
		snapshotPath: cfg.SnapshotPath,
	}

	if sb.anchorX < 0 {
		sb.anchorX = int(sb.virtualWidth()) - render.DigitWidth - 2
	}

	for d := range sb.sprites {
		pic := glyph.Digit(d).Picture()
		sb.sprites[d] = pixel.NewSprite(pic, pic.Bounds())
	}

	atlas := text.NewAtlas(captionFace(4*cfg.Scale), text.ASCII)
	sb.caption = text.New(pixel.V(20, cfg.Height-float64(cfg.AnchorY)*cfg.Scale-4*cfg.Scale), atlas)
	sb.caption.Color = colornames.White
	fmt.Fprint(sb.caption, cfg.Caption)

	return sb, nil
}

func (sb *Scoreboard) virtualWidth() float64  { return sb.width / sb.scale }
func (sb *Scoreboard) virtualHeight() float64 { return sb.height / sb.scale }

// Score returns the score currently shown.
func (sb *Scoreboard) Score() int {
	return sb.score
}

// SetScore changes the score shown on the next Draw.
func (sb *Scoreboard) SetScore(score int) {
	sb.score = score
}

// Snapshot renders the current score to an image the size of the window.
func (sb *Scoreboard) Snapshot() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(sb.virtualWidth()), int(sb.virtualHeight())))
	draw.Draw(img, img.Bounds(), image.NewUniform(colornames.Black), image.Point{}, draw.Src)
	render.Rasterize(img, render.DrawScore(sb.score, sb.anchorX, sb.anchorY))
	return img
}

// Poll handles user input
func (sb *Scoreboard) Poll() error {
	if sb.Win.JustPressed(pixelgl.KeyUp) || sb.Win.Repeated(pixelgl.KeyUp) {
		sb.score++
	}
	if sb.Win.JustPressed(pixelgl.KeyDown) || sb.Win.Repeated(pixelgl.KeyDown) {
		sb.score--
	}
	if sb.Win.JustPressed(pixelgl.KeyPageUp) {
		sb.score *= 10
	}

	// reset score at keypress R
	if sb.Win.JustPressed(pixelgl.KeyR) {
		sb.score = 0
	}

	// save a snapshot at keypress S
	if sb.Win.JustPressed(pixelgl.KeyS) {
		if err := render.SavePNG(sb.snapshotPath, sb.Snapshot()); err != nil {
			return err
		}
	}

	if sb.Win.JustPressed(pixelgl.KeyEscape) {
		sb.Win.SetClosed(true)
	}
	return nil
}

// Draw renders the scoreboard onto the window
func (sb *Scoreboard) Draw() {
	sb.Win.Clear(colornames.Black)

	for _, cmd := range render.DrawScore(sb.score, sb.anchorX, sb.anchorY) {
		m := cmd.Matrix(sb.virtualHeight()).Scaled(pixel.ZV, sb.scale)
		sb.sprites[cmd.Digit].Draw(sb.Win, m)
	}
	sb.caption.Draw(sb.Win, pixel.IM)

	// update window
	sb.Win.Update()
}
