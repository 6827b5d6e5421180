// Package game implements the snake easter egg.
// The package is pure state-machine logic; the terminal shell drives it
// with a tick and renders the board itself.
package game

import (
	"math/rand"
)

// Point is a cell on the board.
type Point struct {
	X, Y int
}

// Direction is a unit step applied every tick.
type Direction Point

// The four legal movement directions.
var (
	DirUp    = Direction{X: 0, Y: -1}
	DirDown  = Direction{X: 0, Y: 1}
	DirLeft  = Direction{X: -1, Y: 0}
	DirRight = Direction{X: 1, Y: 0}
)

// PointsPerFood is the score awarded per food eaten.
const PointsPerFood = 10

// Snake holds one game in progress.
type Snake struct {
	cols, rows int
	body       []Point
	dir        Direction
	nextDir    Direction
	food       Point
	score      int
	gameOver   bool
	rng        *rand.Rand
}

// New starts a game on a cols x rows board.
// seed fixes the food sequence; pass a time-based seed in production.
func New(cols, rows int, seed int64) *Snake {
	s := &Snake{
		cols:    cols,
		rows:    rows,
		body:    []Point{{X: 5, Y: 5}},
		dir:     DirRight,
		nextDir: DirRight,
		rng:     rand.New(rand.NewSource(seed)),
	}
	s.food = s.spawnFood()
	return s
}

// Restart resets the board keeping the dimensions and RNG.
func (s *Snake) Restart() {
	s.body = []Point{{X: 5, Y: 5}}
	s.dir = DirRight
	s.nextDir = DirRight
	s.score = 0
	s.gameOver = false
	s.food = s.spawnFood()
}

// Steer queues a direction change for the next tick.
// Reversing onto the snake's own neck is ignored.
func (s *Snake) Steer(d Direction) {
	if d.X == -s.dir.X && d.Y == -s.dir.Y {
		return
	}
	s.nextDir = d
}

// Step advances the game one tick.
// Returns false once the game is over (wall or self collision).
func (s *Snake) Step() bool {
	if s.gameOver {
		return false
	}

	s.dir = s.nextDir
	head := Point{X: s.body[0].X + s.dir.X, Y: s.body[0].Y + s.dir.Y}

	if head.X < 0 || head.X >= s.cols || head.Y < 0 || head.Y >= s.rows {
		s.gameOver = true
		return false
	}
	for _, seg := range s.body {
		if seg == head {
			s.gameOver = true
			return false
		}
	}

	s.body = append([]Point{head}, s.body...)

	if head == s.food {
		s.score += PointsPerFood
		s.food = s.spawnFood()
	} else {
		s.body = s.body[:len(s.body)-1]
	}
	return true
}

// spawnFood picks a free cell for the next food.
func (s *Snake) spawnFood() Point {
	for {
		p := Point{X: s.rng.Intn(s.cols), Y: s.rng.Intn(s.rows)}
		occupied := false
		for _, seg := range s.body {
			if seg == p {
				occupied = true
				break
			}
		}
		if !occupied {
			return p
		}
	}
}

// Body returns the snake segments, head first.
func (s *Snake) Body() []Point { return s.body }

// Food returns the current food cell.
func (s *Snake) Food() Point { return s.food }

// Score returns the current score.
func (s *Snake) Score() int { return s.score }

// Over reports whether the game has ended.
func (s *Snake) Over() bool { return s.gameOver }

// Size returns the board dimensions.
func (s *Snake) Size() (cols, rows int) { return s.cols, s.rows }
