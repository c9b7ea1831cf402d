package domain

type Field struct {
	Width  int
	Height int
}

func NewField(width, height int) *Field {
	return &Field{
		Width:  width,
		Height: height,
	}
}

// Contains reports whether c lies inside [0,Width)x[0,Height).
// Cells outside are walls, not wrap-around.
func (f *Field) Contains(c Coord) bool {
	return c.X >= 0 && c.X < f.Width && c.Y >= 0 && c.Y < f.Height
}

func (f *Field) Center() Coord {
	return Coord{X: f.Width / 2, Y: f.Height / 2}
}

func (f *Field) Area() int {
	return f.Width * f.Height
}
