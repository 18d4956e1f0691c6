package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by Load.
const (
	EnvWidth    = "SCOREBOARD_WIDTH"
	EnvHeight   = "SCOREBOARD_HEIGHT"
	EnvScale    = "SCOREBOARD_SCALE"
	EnvAnchorX  = "SCOREBOARD_ANCHOR_X"
	EnvAnchorY  = "SCOREBOARD_ANCHOR_Y"
	EnvCaption  = "SCOREBOARD_CAPTION"
	EnvFPS      = "SCOREBOARD_FPS"
	EnvSnapshot = "SCOREBOARD_SNAPSHOT"
)

// Config controls the scoreboard window.
type Config struct {
	// Width and Height of the window in screen pixels. Zero means size from
	// the primary display.
	Width, Height float64

	// Scale is the number of screen pixels per glyph pixel.
	Scale float64

	// AnchorX and AnchorY place the least significant digit, in glyph pixels
	// from the top-left of the window. A negative AnchorX means "against the
	// right edge".
	AnchorX, AnchorY int

	Caption      string
	FPS          int
	SnapshotPath string
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Scale:        4,
		AnchorX:      -1,
		AnchorY:      2,
		Caption:      "SCORE",
		FPS:          60,
		SnapshotPath: "score.png",
	}
}

// Load reads the first of paths that exist (".env.local" then ".env" when none
// are given) into the environment and builds a Config from it. Variables that
// are already set take precedence over file contents.
func Load(paths ...string) (Config, error) {
	if len(paths) == 0 {
		paths = []string{".env.local", ".env"}
	}
	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return Config{}, fmt.Errorf("config: loading %s: %w", path, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from the process environment.
func FromEnv() (Config, error) {
	cfg := Default()

	var err error
	if cfg.Width, err = envFloat(EnvWidth, cfg.Width); err != nil {
		return Config{}, err
	}
	if cfg.Height, err = envFloat(EnvHeight, cfg.Height); err != nil {
		return Config{}, err
	}
	if cfg.Scale, err = envFloat(EnvScale, cfg.Scale); err != nil {
		return Config{}, err
	}
	if cfg.AnchorX, err = envInt(EnvAnchorX, cfg.AnchorX); err != nil {
		return Config{}, err
	}
	if cfg.AnchorY, err = envInt(EnvAnchorY, cfg.AnchorY); err != nil {
		return Config{}, err
	}
	if cfg.FPS, err = envInt(EnvFPS, cfg.FPS); err != nil {
		return Config{}, err
	}
	if v := os.Getenv(EnvCaption); v != "" {
		cfg.Caption = v
	}
	if v := os.Getenv(EnvSnapshot); v != "" {
		cfg.SnapshotPath = v
	}

	if cfg.Scale <= 0 {
		return Config{}, fmt.Errorf("config: %s must be positive, got %v", EnvScale, cfg.Scale)
	}
	if cfg.FPS <= 0 {
		return Config{}, fmt.Errorf("config: %s must be positive, got %d", EnvFPS, cfg.FPS)
	}
	return cfg, nil
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return n, nil
}

func envFloat(key string, def float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("config: %s: %w", key, err)
	}
	return f, nil
}
