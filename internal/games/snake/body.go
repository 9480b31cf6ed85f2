package snake

// Snake is an ordered body of points, head first, moving in a direction.
// It performs no validation of its own: the engine decides which direction
// changes are legal and whether the next head position is safe.
type Snake struct {
	body      []Point // Head at index 0
	direction Direction
	growing   bool // If true, don't remove tail on next slide
}

// NewSnake builds a snake of length cells with its head at start. The rest
// of the body trails behind the head, opposite to dir. A length below one
// is treated as one so the body is never empty.
func NewSnake(start Point, length int, dir Direction) *Snake {
	length = max(length, 1)
	back := dir.Opposite()

	body := make([]Point, 0, length)
	for i := range length {
		body = append(body, start.Transform(back, i))
	}

	return &Snake{
		body:      body,
		direction: dir,
	}
}

// Head returns the leading cell.
func (s *Snake) Head() Point {
	return s.body[0]
}

// Len returns the number of body cells.
func (s *Snake) Len() int {
	return len(s.body)
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []Point {
	out := make([]Point, len(s.body))
	copy(out, s.body)
	return out
}

// Direction returns the current direction of travel.
func (s *Snake) Direction() Direction {
	return s.direction
}

// SetDirection overwrites the direction of travel unconditionally.
func (s *Snake) SetDirection(d Direction) {
	s.direction = d
}

// Growing reports whether the next slide keeps the tail.
func (s *Snake) Growing() bool {
	return s.growing
}

// NextHead returns where the head would move on the next slide.
// It does not modify the snake.
func (s *Snake) NextHead() Point {
	return s.Head().Transform(s.direction, 1)
}

// Slide moves the snake one cell: a new head is pushed at NextHead and the
// tail is dropped, unless a grow is pending, in which case the body gets one
// cell longer and the pending flag is cleared.
func (s *Snake) Slide() {
	head := s.NextHead()

	if s.growing {
		s.body = append(s.body, Point{})
		s.growing = false
	}
	copy(s.body[1:], s.body[:len(s.body)-1])
	s.body[0] = head
}

// Grow marks the snake to keep its tail on the next slide.
// Calling it more than once before a slide has no extra effect.
func (s *Snake) Grow() {
	s.growing = true
}

// Contains reports whether p is part of the body.
func (s *Snake) Contains(p Point) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// Bites reports whether moving the head to p would hit the body. The tail
// is excluded when it is about to move out of the way.
func (s *Snake) Bites(p Point) bool {
	checkLen := len(s.body)
	if !s.Growing() {
		checkLen-- // Tail will be removed
	}
	for i := range checkLen {
		if s.body[i] == p {
			return true
		}
	}
	return false
}
