package domain

import (
	"math/rand"
	"testing"
)

func TestFood_SpawnAvoidsOccupied(t *testing.T) {
	field := NewField(10, 10)
	rng := rand.New(rand.NewSource(1))

	occupied := make([]Coord, 0)
	for x := 0; x < 10; x++ {
		for y := 0; y < 5; y++ {
			occupied = append(occupied, Coord{x, y})
		}
	}

	food := &Food{}
	for i := 0; i < 50; i++ {
		if !food.Spawn(rng, field, occupied) {
			t.Fatal("spawn failed with half the field free")
		}
		if food.Position.Y < 5 {
			t.Fatalf("food %v landed on an occupied cell", food.Position)
		}
		if !field.Contains(food.Position) {
			t.Fatalf("food %v outside the field", food.Position)
		}
	}
}

func TestFood_SpawnSingleFreeCell(t *testing.T) {
	field := NewField(4, 4)
	rng := rand.New(rand.NewSource(2))

	occupied := make([]Coord, 0, 15)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if x == 3 && y == 3 {
				continue
			}
			occupied = append(occupied, Coord{x, y})
		}
	}

	food := &Food{}
	if !food.Spawn(rng, field, occupied) {
		t.Fatal("spawn must succeed while a free cell remains")
	}
	if !food.Position.Equals(Coord{3, 3}) {
		t.Fatalf("food = %v, want the only free cell (3,3)", food.Position)
	}
}

func TestFood_SpawnFullBoard(t *testing.T) {
	field := NewField(3, 3)
	rng := rand.New(rand.NewSource(3))

	occupied := make([]Coord, 0, 9)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			occupied = append(occupied, Coord{x, y})
		}
	}

	food := &Food{Position: Coord{1, 1}}
	if food.Spawn(rng, field, occupied) {
		t.Fatal("spawn must fail on a fully occupied field")
	}
	if !food.Position.Equals(Coord{1, 1}) {
		t.Fatalf("failed spawn moved the food to %v", food.Position)
	}
}
