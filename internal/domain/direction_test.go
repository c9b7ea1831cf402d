package domain

import "testing"

func TestDirection_Delta(t *testing.T) {
	cases := []struct {
		dir  Direction
		want Coord
	}{
		{DirectionUp, Coord{0, -1}},
		{DirectionDown, Coord{0, 1}},
		{DirectionLeft, Coord{-1, 0}},
		{DirectionRight, Coord{1, 0}},
	}
	for _, c := range cases {
		if got := c.dir.Delta(); !got.Equals(c.want) {
			t.Fatalf("%s delta = %v, want %v", c.dir, got, c.want)
		}
	}
}

func TestDirection_OppositeIsInvolution(t *testing.T) {
	for _, d := range []Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight} {
		if d.Opposite().Opposite() != d {
			t.Fatalf("opposite(opposite(%s)) = %s", d, d.Opposite().Opposite())
		}
		if !d.IsOpposite(d.Opposite()) {
			t.Fatalf("%s should be opposite of %s", d, d.Opposite())
		}
		if d.IsOpposite(d) {
			t.Fatalf("%s must not be its own opposite", d)
		}
	}
}

func TestDirection_DeltasCancel(t *testing.T) {
	for _, d := range []Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight} {
		sum := d.Delta().Add(d.Opposite().Delta())
		if !sum.Equals(Coord{0, 0}) {
			t.Fatalf("%s delta and opposite delta should cancel, got %v", d, sum)
		}
	}
}
