// scoreboard shows a score drawn with pixel digit sprites.
//
// Interactive:
//
//      ./scoreboard
//
// Up/Down change the score, PageUp multiplies it by ten, R resets it, S saves
// a PNG snapshot and Escape quits. Settings come from SCOREBOARD_* variables,
// optionally kept in .env.local or .env.
//
// Headless:
//
//      ./scoreboard -png score.png -score 1234 -scale 4
//
package main

import (
	"flag"
	"log"

	"github.com/faiface/pixel/pixelgl"
	"github.com/kbinani/screenshot"

	"github.com/supermuesli/scoreboard/pkg/config"
	"github.com/supermuesli/scoreboard/pkg/glyph"
	"github.com/supermuesli/scoreboard/pkg/hud"
	"github.com/supermuesli/scoreboard/pkg/render"
)

var (
	pngName = flag.String("png", "", "render -score to this PNG file and exit")
	score   = flag.Int("score", 0, "score to show")
	scale   = flag.Int("scale", 4, "PNG pixels per glyph pixel")
	envName = flag.String("env", "", "dotenv file to load instead of .env.local/.env")
)

func run(cfg config.Config) {
	// get display dimensions
	if cfg.Width == 0 || cfg.Height == 0 {
		bounds := screenshot.GetDisplayBounds(0)
		cfg.Width = float64(bounds.Dx()) * 0.5
		cfg.Height = float64(bounds.Dy()) * 0.2
	}

	sb, err := hud.NewScoreboard(cfg)
	if err != nil {
		log.Fatalf("opening window: %v", err)
	}
	sb.SetScore(*score)

	// render loop
	for !sb.Win.Closed() {
		if err := sb.Poll(); err != nil {
			log.Printf("snapshot: %v", err)
		}
		sb.Draw()

		// manually enforce FPS
		<-sb.FPS
	}
}

func main() {
	flag.Parse()

	if err := glyph.Load(); err != nil {
		log.Fatalf("loading digit sprites: %v", err)
	}

	if *pngName != "" {
		if err := render.SavePNG(*pngName, render.ScoreImage(*score, *scale)); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", *pngName)
		return
	}

	var paths []string
	if *envName != "" {
		paths = append(paths, *envName)
	}
	cfg, err := config.Load(paths...)
	if err != nil {
		log.Fatal(err)
	}

	pixelgl.Run(func() { run(cfg) })
}
