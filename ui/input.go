package ui

import (
	"retro-snake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

var directionKeys = []struct {
	dir  types.Direction
	keys []int32
}{
	{types.Up, []int32{rl.KeyUp, rl.KeyW}},
	{types.Down, []int32{rl.KeyDown, rl.KeyS}},
	{types.Left, []int32{rl.KeyLeft, rl.KeyA}},
	{types.Right, []int32{rl.KeyRight, rl.KeyD}},
}

// PressedDirections returns the directions whose keys went down this
// frame, in up, down, left, right order.
func PressedDirections() []types.Direction {
	var pressed []types.Direction
	for _, dk := range directionKeys {
		for _, key := range dk.keys {
			if rl.IsKeyPressed(key) {
				pressed = append(pressed, dk.dir)
				break
			}
		}
	}
	return pressed
}
