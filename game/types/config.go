package types

import (
	"errors"
	"fmt"
	"time"
)

// Config holds everything one game session needs to know about its
// dimensions, timing and assets.
type Config struct {
	GridSize     int
	CellSize     int
	BorderPad    int
	TickInterval time.Duration
	FPS          int

	SpritePath         string
	MusicPath          string
	EatSoundPath       string
	CollisionSoundPath string
	Mute               bool

	Seed     uint64
	LogLevel string
}

// DefaultConfig returns the classic 25x25 layout ticking at 5Hz.
func DefaultConfig() Config {
	return Config{
		GridSize:           GridSize,
		CellSize:           CellSize,
		BorderPad:          BorderPad,
		TickInterval:       200 * time.Millisecond,
		FPS:                60,
		SpritePath:         "assets/greenapple.png",
		MusicPath:          "assets/music.mp3",
		EatSoundPath:       "assets/eat.mp3",
		CollisionSoundPath: "assets/collision.mp3",
		LogLevel:           "info",
	}
}

// Validate reports the first setting that cannot drive a game.
func (c Config) Validate() error {
	switch {
	case c.GridSize <= 0:
		return fmt.Errorf("grid size must be positive, got %d", c.GridSize)
	case c.CellSize <= 0:
		return fmt.Errorf("cell size must be positive, got %d", c.CellSize)
	case c.BorderPad < 0:
		return fmt.Errorf("border padding must not be negative, got %d", c.BorderPad)
	case c.TickInterval <= 0:
		return fmt.Errorf("tick interval must be positive, got %s", c.TickInterval)
	case c.FPS <= 0:
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	case c.SpritePath == "":
		return errors.New("sprite path is required")
	}
	if !c.Mute && (c.MusicPath == "" || c.EatSoundPath == "" || c.CollisionSoundPath == "") {
		return errors.New("music and sound paths are required unless muted")
	}
	return nil
}

// Grid returns the square play-field described by the config.
func (c Config) Grid() Grid {
	return Grid{Width: c.GridSize, Height: c.GridSize}
}

// Layout returns the pixel layout described by the config.
func (c Config) Layout() Layout {
	return Layout{CellSize: c.CellSize, Offset: c.BorderPad, Cells: c.GridSize}
}

// Layout maps grid cells to window pixels.
type Layout struct {
	CellSize int
	Offset   int
	Cells    int
}

// CellOrigin returns the top-left pixel of the cell at p.
func (l Layout) CellOrigin(p Point) (x, y int) {
	return l.Offset + p.X*l.CellSize, l.Offset + p.Y*l.CellSize
}

// FieldSize is the width and height in pixels of the play-field.
func (l Layout) FieldSize() int {
	return l.CellSize * l.Cells
}

// WindowSize is the side of the square window: field plus a border on both sides.
func (l Layout) WindowSize() int {
	return 2*l.Offset + l.FieldSize()
}
