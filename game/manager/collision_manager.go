package manager

import (
	"retro-snake/game/entity"
	"retro-snake/game/types"
)

// CollisionType represents the type of collision
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	default:
		return "none"
	}
}

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// IsWallCollision checks if a position lies outside the grid
func (cm *CollisionManager) IsWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// IsFoodCollision checks if the snake's head is on the food
func (cm *CollisionManager) IsFoodCollision(snake *entity.Snake, food types.Point) bool {
	return snake.GetHead() == food
}

// CheckFatal runs the wall check and then the self check against the
// snake's current head.
func (cm *CollisionManager) CheckFatal(snake *entity.Snake) CollisionType {
	if cm.IsWallCollision(snake.GetHead()) {
		return WallCollision
	}
	if snake.HitsItself() {
		return SelfCollision
	}
	return NoCollision
}
