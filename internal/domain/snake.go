package domain

// Snake keeps its body as explicit cells, tail at index 0 and head at the
// last index. Appending the new head and slicing off the tail are both O(1),
// so one tick never reshuffles the whole body.
type Snake struct {
	Body    []Coord
	Heading Direction

	growPending bool
}

func NewSnake(field *Field, initialLength int) *Snake {
	s := &Snake{}
	s.Reset(field, initialLength)
	return s
}

// Reset rebuilds the body as initialLength consecutive cells ending at the
// field center, tail first, heading right. Deterministic for a given field.
func (s *Snake) Reset(field *Field, initialLength int) {
	center := field.Center()

	s.Body = s.Body[:0]
	for i := initialLength - 1; i >= 0; i-- {
		s.Body = append(s.Body, Coord{X: center.X - i, Y: center.Y})
	}

	s.Heading = DirectionRight
	s.growPending = false
}

func (s *Snake) Head() Coord {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Length() int {
	return len(s.Body)
}

// Turn sets the heading unless the request would reverse the snake onto
// itself. Rejected requests are dropped silently.
func (s *Snake) Turn(dir Direction) bool {
	if dir.IsOpposite(s.Heading) {
		return false
	}
	s.Heading = dir
	return true
}

// Move advances the head one cell. The new head is appended before the tail
// is trimmed; CheckCollision relies on seeing exactly that post-append body.
func (s *Snake) Move() {
	newHead := s.Head().Add(s.Heading.Delta())
	s.Body = append(s.Body, newHead)

	if s.growPending {
		s.growPending = false
		return
	}
	s.Body = s.Body[1:]
}

// Grow marks the next Move to keep its tail. The flag is one-shot: calling
// Grow twice before a Move still adds a single segment.
func (s *Snake) Grow() {
	s.growPending = true
}

func (s *Snake) GrowPending() bool {
	return s.growPending
}

// CheckCollision reports a fatal head position: off the field, or on top of
// any other body cell. Call it right after Move, before food handling.
func (s *Snake) CheckCollision(field *Field) bool {
	head := s.Head()
	if !field.Contains(head) {
		return true
	}
	for i := 0; i < len(s.Body)-1; i++ {
		if s.Body[i].Equals(head) {
			return true
		}
	}
	return false
}

// HitsBody reports whether c lies on the snake, head included.
func (s *Snake) HitsBody(c Coord) bool {
	for _, cell := range s.Body {
		if cell.Equals(c) {
			return true
		}
	}
	return false
}
