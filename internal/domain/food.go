package domain

import (
	"math/rand"
)

const foodSpawnAttempts = 100

type Food struct {
	Position Coord
}

// Spawn relocates the food to a uniformly random free cell. Random sampling
// is capped; after that a linear scan picks the first free cell, so the only
// way Spawn fails is a fully occupied field. It returns false in that case
// and leaves the position untouched.
func (f *Food) Spawn(rng *rand.Rand, field *Field, occupied []Coord) bool {
	taken := make(map[Coord]bool, len(occupied))
	for _, c := range occupied {
		taken[c] = true
	}

	if len(taken) >= field.Area() {
		return false
	}

	for attempts := 0; attempts < foodSpawnAttempts; attempts++ {
		pos := Coord{
			X: rng.Intn(field.Width),
			Y: rng.Intn(field.Height),
		}
		if !taken[pos] {
			f.Position = pos
			return true
		}
	}

	// Crowded field: sampling missed, but a free cell exists.
	free := make([]Coord, 0)
	for y := 0; y < field.Height; y++ {
		for x := 0; x < field.Width; x++ {
			pos := Coord{X: x, Y: y}
			if !taken[pos] {
				free = append(free, pos)
			}
		}
	}
	f.Position = free[rng.Intn(len(free))]
	return true
}
