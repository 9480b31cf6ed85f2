package snake

import (
	"fmt"
	"math/rand"
)

// Point represents a grid coordinate. Coordinates are signed so a position
// one step past the wall ring can be computed and rejected before it is
// ever committed to the snake's body.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Transform returns p shifted count cells along d.
func (p Point) Transform(d Direction, count int) Point {
	dx, dy := d.Delta()
	return Point{X: p.X + dx*count, Y: p.Y + dy*count}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// sampleAttemptsPerCell bounds rejection sampling before falling back to a
// scan of the free interior cells.
const sampleAttemptsPerCell = 4

// RandomNonColliding returns a uniformly random interior point of a
// width x height grid (1 <= x <= width-2, 1 <= y <= height-2) that is not
// part of s's body. It reports false when every interior cell is occupied.
func RandomNonColliding(rng *rand.Rand, width, height int, s *Snake) (Point, bool) {
	innerW, innerH := width-2, height-2
	if innerW <= 0 || innerH <= 0 {
		return Point{}, false
	}

	for range innerW * innerH * sampleAttemptsPerCell {
		p := Point{X: 1 + rng.Intn(innerW), Y: 1 + rng.Intn(innerH)}
		if !s.Contains(p) {
			return p, true
		}
	}

	// Crowded board: pick among the cells that are actually free.
	var free []Point
	for y := 1; y <= innerH; y++ {
		for x := 1; x <= innerW; x++ {
			p := Point{X: x, Y: y}
			if !s.Contains(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return Point{}, false
	}
	return free[rng.Intn(len(free))], true
}
