package manager

import (
	"errors"

	"retro-snake/game/types"
)

// ErrGridFull is returned when every cell of the grid is occupied.
var ErrGridFull = errors.New("no free cell left for food")

// Source supplies uniformly distributed integers in [0, n).
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type Source interface {
	Intn(n int) int
}

type FoodManager struct {
	grid     types.Grid
	rng      Source
	position types.Point
	attempts int
}

// NewFoodManager returns a manager that gives up rejection sampling after
// four times the grid area in misses and scans for free cells instead.
func NewFoodManager(grid types.Grid, rng Source) *FoodManager {
	return &FoodManager{
		grid:     grid,
		rng:      rng,
		attempts: grid.Area() * 4,
	}
}

func (fm *FoodManager) Position() types.Point {
	return fm.position
}

// PlaceRandomly moves the food to a random cell for which occupied
// returns false. The previous position is kept when the grid is full.
func (fm *FoodManager) PlaceRandomly(occupied func(types.Point) bool) (types.Point, error) {
	for i := 0; i < fm.attempts; i++ {
		food := fm.randomCell()
		if !occupied(food) {
			fm.position = food
			return food, nil
		}
	}

	free := fm.freeCells(occupied)
	if len(free) == 0 {
		return fm.position, ErrGridFull
	}
	fm.position = free[fm.rng.Intn(len(free))]
	return fm.position, nil
}

func (fm *FoodManager) randomCell() types.Point {
	return types.Point{
		X: fm.rng.Intn(fm.grid.Width),
		Y: fm.rng.Intn(fm.grid.Height),
	}
}

func (fm *FoodManager) freeCells(occupied func(types.Point) bool) []types.Point {
	free := make([]types.Point, 0)
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if !occupied(p) {
				free = append(free, p)
			}
		}
	}
	return free
}
