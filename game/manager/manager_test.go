package manager

import (
	"errors"
	"testing"

	"retro-snake/game/entity"
	"retro-snake/game/types"
)

// scriptedSource replays fixed values and then falls back to zero.
type scriptedSource struct {
	values []int
	calls  int
}

func (s *scriptedSource) Intn(n int) int {
	s.calls++
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[0]
	s.values = s.values[1:]
	return v % n
}

var grid = types.Grid{Width: types.GridSize, Height: types.GridSize}

func TestPlaceRandomlySkipsOccupied(t *testing.T) {
	snake := entity.NewSnake()
	// (6,9), (5,9), (4,9) are the spawn body; (10,3) is free
	src := &scriptedSource{values: []int{6, 9, 5, 9, 4, 9, 6, 9, 10, 3}}
	fm := NewFoodManager(grid, src)

	got, err := fm.PlaceRandomly(snake.Occupies)
	if err != nil {
		t.Fatalf("PlaceRandomly: %v", err)
	}
	if got != (types.Point{X: 10, Y: 3}) {
		t.Errorf("PlaceRandomly = %v, want (10,3)", got)
	}
	if fm.Position() != got {
		t.Errorf("Position() = %v, want %v", fm.Position(), got)
	}
	if src.calls != 10 {
		t.Errorf("random draws = %d, want 10", src.calls)
	}
}

type lcg struct{ state uint64 }

func (l *lcg) Intn(n int) int {
	l.state = l.state*6364136223846793005 + 1442695040888963407
	return int((l.state >> 33) % uint64(n))
}

func TestPlaceRandomlyNeverOnBody(t *testing.T) {
	snake := entity.NewSnake()
	fm := NewFoodManager(grid, &lcg{state: 7})
	for i := 0; i < 500; i++ {
		if i%10 == 0 && snake.Len() < 60 {
			snake.Grow()
		}
		snake.Advance()
		// circle around the inner ring so the body stays on the grid
		switch head := snake.GetHead(); {
		case head.X == 20 && head.Y < 20:
			snake.SetDirection(types.Down)
		case head.Y == 20 && head.X > 2:
			snake.SetDirection(types.Left)
		case head.X == 2 && head.Y > 2:
			snake.SetDirection(types.Up)
		case head.Y == 2:
			snake.SetDirection(types.Right)
		}
		food, err := fm.PlaceRandomly(snake.Occupies)
		if err != nil {
			t.Fatalf("PlaceRandomly: %v", err)
		}
		if snake.Occupies(food) {
			t.Fatalf("food %v placed on snake %v", food, snake.Body())
		}
		if !grid.Contains(food) {
			t.Fatalf("food %v outside grid", food)
		}
	}
}

func TestPlaceRandomlyFallsBackToScan(t *testing.T) {
	free := types.Point{X: 24, Y: 24}
	occupied := func(p types.Point) bool { return p != free }
	// a source stuck on (0,0) never finds the free cell by sampling
	src := &scriptedSource{}
	fm := NewFoodManager(grid, src)

	got, err := fm.PlaceRandomly(occupied)
	if err != nil {
		t.Fatalf("PlaceRandomly: %v", err)
	}
	if got != free {
		t.Errorf("PlaceRandomly = %v, want %v", got, free)
	}
	if want := grid.Area()*4*2 + 1; src.calls != want {
		t.Errorf("random draws = %d, want %d", src.calls, want)
	}
}

func TestPlaceRandomlyGridFull(t *testing.T) {
	fm := NewFoodManager(grid, &lcg{state: 1})
	first, err := fm.PlaceRandomly(func(types.Point) bool { return false })
	if err != nil {
		t.Fatal(err)
	}
	got, err := fm.PlaceRandomly(func(types.Point) bool { return true })
	if !errors.Is(err, ErrGridFull) {
		t.Fatalf("err = %v, want ErrGridFull", err)
	}
	if got != first || fm.Position() != first {
		t.Errorf("position changed on full grid: %v -> %v", first, got)
	}
}

func TestCheckFatal(t *testing.T) {
	cm := NewCollisionManager(grid)

	snake := entity.NewSnake()
	if got := cm.CheckFatal(snake); got != NoCollision {
		t.Errorf("fresh snake: %v", got)
	}
	snake.Advance()
	if got := cm.CheckFatal(snake); got != NoCollision {
		t.Errorf("after forward move: %v", got)
	}

	snake.SetDirection(types.Up)
	for i := 0; i < 9; i++ {
		snake.Advance()
		if got := cm.CheckFatal(snake); got != NoCollision {
			t.Fatalf("interior head %v: %v", snake.GetHead(), got)
		}
	}
	snake.Advance()
	if got := cm.CheckFatal(snake); got != WallCollision {
		t.Errorf("head %v: got %v, want wall", snake.GetHead(), got)
	}
}

func TestIsWallCollisionEdges(t *testing.T) {
	cm := NewCollisionManager(grid)
	for i := -1; i <= types.GridSize; i++ {
		for _, p := range []types.Point{{X: i, Y: 0}, {X: 0, Y: i}} {
			want := i == -1 || i == types.GridSize
			if got := cm.IsWallCollision(p); got != want {
				t.Errorf("IsWallCollision(%v) = %v, want %v", p, got, want)
			}
		}
	}
}

func TestIsFoodCollision(t *testing.T) {
	cm := NewCollisionManager(grid)
	snake := entity.NewSnake()
	if !cm.IsFoodCollision(snake, types.Point{X: 6, Y: 9}) {
		t.Error("head on food not detected")
	}
	if cm.IsFoodCollision(snake, types.Point{X: 5, Y: 9}) {
		t.Error("body on food counted as eating")
	}
}

func TestStateManager(t *testing.T) {
	sm := NewStateManager()
	if !sm.Running() {
		t.Fatal("new session should be running")
	}
	sm.AddPoint()
	sm.AddPoint()
	if sm.GetScore() != 2 || sm.GetHighScore() != 2 {
		t.Errorf("score=%d high=%d", sm.GetScore(), sm.GetHighScore())
	}
	if final := sm.EndRound(); final != 2 {
		t.Errorf("EndRound() = %d, want 2", final)
	}
	if sm.Running() || sm.GetScore() != 0 || sm.Rounds() != 1 {
		t.Errorf("after EndRound running=%v score=%d rounds=%d", sm.Running(), sm.GetScore(), sm.Rounds())
	}
	if !sm.Resume() {
		t.Error("Resume() = false while paused")
	}
	if sm.Resume() {
		t.Error("Resume() = true while running")
	}
	sm.AddPoint()
	if sm.GetHighScore() != 2 {
		t.Errorf("high score dropped to %d", sm.GetHighScore())
	}
}
