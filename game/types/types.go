package types

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Area is the number of cells in the grid.
func (g Grid) Area() int {
	return g.Width * g.Height
}

// Point is a single grid cell.
type Point struct {
	X, Y int
}

// Add returns p moved by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Direction is one of the four headings a snake can move in.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// ToPoint converts a Direction into its unit movement vector.
// Y grows downwards, as on screen.
func (d Direction) ToPoint() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Game constants
const (
	GridSize  = 25 // Cells on each side of the play-field
	CellSize  = 30 // Pixels per cell
	BorderPad = 75 // Width of the window border around the grid
)

// SpawnBody is the snake body at the start of every round, head first.
var SpawnBody = []Point{{X: 6, Y: 9}, {X: 5, Y: 9}, {X: 4, Y: 9}}

// SpawnDirection is the heading of a freshly spawned snake.
const SpawnDirection = Right
