package entity

import (
	"retro-snake/game/types"
)

// Snake is the player's snake. Body[0] is the head.
type Snake struct {
	body      []types.Point
	direction types.Direction
	heading   types.Direction // direction of the last completed move
	growing   bool
}

func NewSnake() *Snake {
	s := &Snake{}
	s.Reset()
	return s
}

// Reset puts the snake back to its spawn body and heading.
func (s *Snake) Reset() {
	s.body = append(s.body[:0], types.SpawnBody...)
	s.direction = types.SpawnDirection
	s.heading = types.SpawnDirection
	s.growing = false
}

// Advance moves the head one cell in the current direction. The tail is
// kept when a growth is pending, otherwise it is dropped. Heads outside
// the grid are left for the caller to detect.
func (s *Snake) Advance() {
	newHead := s.GetHead().Add(s.direction.ToPoint())
	if s.growing {
		s.body = append(s.body, types.Point{})
		s.growing = false
	}
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = newHead
	s.heading = s.direction
}

// Grow makes the next Advance extend the body by one segment.
func (s *Snake) Grow() {
	s.growing = true
}

func (s *Snake) SetDirection(dir types.Direction) {
	s.direction = dir
}

func (s *Snake) Direction() types.Direction {
	return s.direction
}

// Heading is the direction the snake moved on its last Advance, which may
// differ from Direction when a turn has been requested but not yet taken.
func (s *Snake) Heading() types.Direction {
	return s.heading
}

func (s *Snake) GetHead() types.Point {
	return s.body[0]
}

func (s *Snake) Growing() bool {
	return s.growing
}

func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the segments, head first.
func (s *Snake) Body() []types.Point {
	body := make([]types.Point, len(s.body))
	copy(body, s.body)
	return body
}

// Occupies reports whether any segment sits on p.
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.body {
		if part == p {
			return true
		}
	}
	return false
}

// HitsItself reports whether the head shares a cell with the rest of the body.
func (s *Snake) HitsItself() bool {
	head := s.GetHead()
	for _, part := range s.body[1:] {
		if part == head {
			return true
		}
	}
	return false
}
