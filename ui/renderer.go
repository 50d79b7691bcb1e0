package ui

import (
	"errors"
	"fmt"
	"image"

	"retro-snake/game"
	"retro-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

var (
	green     = rl.Color{R: 173, G: 204, B: 96, A: 255}
	darkGreen = rl.Color{R: 43, G: 51, B: 24, A: 255}
)

const (
	titleFontSize = 40
	hintFontSize  = 20
	overlayFade   = 0.6 // seconds for the pause overlay to fade in
	overlayAlpha  = 0.45
)

type Renderer struct {
	layout  types.Layout
	food    rl.Texture2D
	overlay *gween.Tween
	alpha   float32
	paused  bool
}

// NewRenderer uploads the food sprite as a texture. The window must
// already be open.
func NewRenderer(layout types.Layout, sprite *image.RGBA) (*Renderer, error) {
	img := rl.NewImageFromImage(sprite)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	if !rl.IsTextureReady(texture) {
		return nil, errors.New("upload food texture")
	}

	return &Renderer{
		layout:  layout,
		food:    texture,
		overlay: gween.New(0, overlayAlpha, overlayFade, ease.OutQuad),
	}, nil
}

// Close unloads the food texture.
func (r *Renderer) Close() {
	rl.UnloadTexture(r.food)
}

// Draw renders one frame. dt is the frame time in seconds and drives the
// pause overlay fade.
func (r *Renderer) Draw(g *game.Game, dt float32) {
	rl.BeginDrawing()
	defer rl.EndDrawing()

	rl.ClearBackground(green)

	offset := float32(r.layout.Offset)
	field := float32(r.layout.FieldSize())
	rl.DrawRectangleLinesEx(rl.NewRectangle(offset-5, offset-5, field+10, field+10), 5, darkGreen)
	rl.DrawText("Retro Snake", int32(r.layout.Offset-5), 20, titleFontSize, darkGreen)

	scoreY := int32(r.layout.Offset + r.layout.FieldSize() + 10)
	rl.DrawText(fmt.Sprintf("%d", g.Score()), int32(r.layout.Offset-5), scoreY, titleFontSize, darkGreen)
	best := fmt.Sprintf("Best: %d", g.HighScore())
	bestX := int32(r.layout.Offset+r.layout.FieldSize()) - rl.MeasureText(best, hintFontSize)
	rl.DrawText(best, bestX, scoreY+10, hintFontSize, darkGreen)

	// food first so the snake is drawn over it
	r.drawFood(g.GetFood())
	r.drawSnake(g.GetSnake().Body())

	r.drawOverlay(g, dt)
}

func (r *Renderer) drawFood(p types.Point) {
	x, y := r.layout.CellOrigin(p)
	rl.DrawTexture(r.food, int32(x), int32(y), rl.White)
}

func (r *Renderer) drawSnake(body []types.Point) {
	size := float32(r.layout.CellSize)
	for _, p := range body {
		x, y := r.layout.CellOrigin(p)
		segment := rl.NewRectangle(float32(x), float32(y), size, size)
		rl.DrawRectangleRounded(segment, 0.5, 6, darkGreen)
	}
}

// drawOverlay dims the play-field while the game waits for input after a
// game over.
func (r *Renderer) drawOverlay(g *game.Game, dt float32) {
	if g.Running() {
		r.paused = false
		return
	}
	if !r.paused {
		r.paused = true
		r.overlay.Reset()
	}
	r.alpha, _ = r.overlay.Update(dt)

	offset := int32(r.layout.Offset)
	field := int32(r.layout.FieldSize())
	rl.DrawRectangle(offset, offset, field, field, rl.Fade(darkGreen, r.alpha))

	if g.Rounds() == 0 {
		return
	}
	hint := "Press an arrow key to play again"
	width := rl.MeasureText(hint, hintFontSize)
	rl.DrawText(hint, offset+(field-width)/2, offset+field/2-hintFontSize/2, hintFontSize, rl.RayWhite)
}
