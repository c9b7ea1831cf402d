package domain

import (
	"math/rand"
	"testing"
)

func newTestGame(t *testing.T) *GameState {
	t.Helper()
	return NewGameState(DefaultGameConfig(), rand.New(rand.NewSource(42)))
}

func TestGameState_InitialState(t *testing.T) {
	gs := newTestGame(t)

	if gs.Phase != PhaseRunning {
		t.Fatal("new game must be running")
	}
	if gs.Score != 0 || gs.HighScore != 0 {
		t.Fatalf("score = %d, high = %d, want 0/0", gs.Score, gs.HighScore)
	}
	if gs.Snake.Length() != 3 {
		t.Fatalf("snake length = %d, want 3", gs.Snake.Length())
	}
	if gs.Snake.HitsBody(gs.Food.Position) {
		t.Fatalf("initial food %v on the snake", gs.Food.Position)
	}
}

func TestGameState_TickEatsFood(t *testing.T) {
	gs := newTestGame(t)

	// Put the food directly in the snake's path: head (20,15) heading right.
	gs.Food.Position = Coord{21, 15}

	if outcome := gs.Tick(); outcome != TickContinue {
		t.Fatalf("outcome = %v, want continue", outcome)
	}
	if !gs.Snake.Head().Equals(Coord{21, 15}) {
		t.Fatalf("head = %v, want (21,15)", gs.Snake.Head())
	}
	// The eating move keeps its tail, so the snake is longer on this tick.
	want := []Coord{{18, 15}, {19, 15}, {20, 15}, {21, 15}}
	if gs.Snake.Length() != len(want) {
		t.Fatalf("length = %d, want %d", gs.Snake.Length(), len(want))
	}
	for i, cell := range want {
		if !gs.Snake.Body[i].Equals(cell) {
			t.Fatalf("body[%d] = %v, want %v", i, gs.Snake.Body[i], cell)
		}
	}
	if gs.Score != 10 {
		t.Fatalf("score = %d, want 10", gs.Score)
	}
	if gs.Phase != PhaseRunning {
		t.Fatal("eating must not end the run")
	}
	if gs.Snake.HitsBody(gs.Food.Position) {
		t.Fatalf("respawned food %v on the snake", gs.Food.Position)
	}
	if gs.Snake.GrowPending() {
		t.Fatal("growth must be consumed by the eating move")
	}
}

func TestGameState_PlainMoveAfterEating(t *testing.T) {
	gs := newTestGame(t)
	gs.Food.Position = Coord{21, 15}
	gs.Tick()

	// Move the food off the path; the next tick is a plain move.
	gs.Food.Position = Coord{0, 0}
	gs.Tick()

	want := []Coord{{19, 15}, {20, 15}, {21, 15}, {22, 15}}
	if gs.Snake.Length() != len(want) {
		t.Fatalf("length = %d, want %d", gs.Snake.Length(), len(want))
	}
	for i, cell := range want {
		if !gs.Snake.Body[i].Equals(cell) {
			t.Fatalf("body[%d] = %v, want %v", i, gs.Snake.Body[i], cell)
		}
	}
}

func TestGameState_WallEndsRun(t *testing.T) {
	gs := newTestGame(t)
	gs.Score = 30

	// Aim the snake at the left wall.
	gs.Snake.Body = []Coord{{2, 15}, {1, 15}, {0, 15}}
	gs.Snake.Heading = DirectionLeft

	if outcome := gs.Tick(); outcome != TickGameOver {
		t.Fatalf("outcome = %v, want game over", outcome)
	}
	if gs.Phase != PhaseGameOver {
		t.Fatal("phase must be game over")
	}
	if gs.EndReason != EndReasonWallHit {
		t.Fatalf("end reason = %v, want wall hit", gs.EndReason)
	}
	if gs.HighScore != 30 {
		t.Fatalf("high score = %d, want 30", gs.HighScore)
	}
}

func TestGameState_SelfHitEndsRun(t *testing.T) {
	gs := newTestGame(t)
	gs.Snake.Body = []Coord{{5, 6}, {6, 6}, {7, 6}, {7, 5}, {6, 5}, {5, 5}}
	gs.Snake.Heading = DirectionRight

	if outcome := gs.Tick(); outcome != TickGameOver {
		t.Fatalf("outcome = %v, want game over", outcome)
	}
	if gs.EndReason != EndReasonSelfHit {
		t.Fatalf("end reason = %v, want self hit", gs.EndReason)
	}
}

func TestGameState_HighScoreKeepsBest(t *testing.T) {
	gs := newTestGame(t)
	gs.HighScore = 100
	gs.Score = 40
	gs.Snake.Body = []Coord{{2, 15}, {1, 15}, {0, 15}}
	gs.Snake.Heading = DirectionLeft

	gs.Tick()
	if gs.HighScore != 100 {
		t.Fatalf("high score = %d, a worse run must not lower it", gs.HighScore)
	}
}

func TestGameState_TickAfterGameOverIsNoop(t *testing.T) {
	gs := newTestGame(t)
	gs.Snake.Body = []Coord{{2, 15}, {1, 15}, {0, 15}}
	gs.Snake.Heading = DirectionLeft
	gs.Tick()

	head := gs.Snake.Head()
	length := gs.Snake.Length()
	for i := 0; i < 5; i++ {
		if outcome := gs.Tick(); outcome != TickGameOver {
			t.Fatalf("outcome = %v on dead game, want game over", outcome)
		}
	}
	if !gs.Snake.Head().Equals(head) || gs.Snake.Length() != length {
		t.Fatal("ticking a dead game must not mutate the snake")
	}

	gs.ApplyDirection(DirectionUp)
	if gs.Snake.Heading != DirectionLeft {
		t.Fatal("steering a dead game must be ignored")
	}
}

func TestGameState_ResetKeepsHighScore(t *testing.T) {
	gs := newTestGame(t)
	gs.Score = 50
	gs.Snake.Body = []Coord{{2, 15}, {1, 15}, {0, 15}}
	gs.Snake.Heading = DirectionLeft
	gs.Tick()

	gs.Reset()
	if gs.Phase != PhaseRunning {
		t.Fatal("reset must resume running")
	}
	if gs.Score != 0 {
		t.Fatalf("score = %d after reset, want 0", gs.Score)
	}
	if gs.HighScore != 50 {
		t.Fatalf("high score = %d after reset, want 50", gs.HighScore)
	}
	if gs.EndReason != EndReasonNone {
		t.Fatalf("end reason = %v after reset", gs.EndReason)
	}
	if gs.Snake.Length() != 3 || gs.Snake.Heading != DirectionRight {
		t.Fatal("reset must rebuild the initial snake")
	}
	if !gs.Snake.Head().Equals(gs.Field.Center()) {
		t.Fatalf("head = %v after reset, want center", gs.Snake.Head())
	}
}

func TestGameState_BoardFullEndsRun(t *testing.T) {
	cfg := &GameConfig{Width: 3, Height: 3, InitialLength: 1, FoodScore: 10, TickDelayMs: 200}
	gs := NewGameState(cfg, rand.New(rand.NewSource(7)))

	// Hand-build a snake covering all but one cell, with the head next to
	// the last free cell where the food sits.
	gs.Snake.Body = []Coord{
		{0, 0}, {1, 0}, {2, 0},
		{2, 1}, {1, 1}, {0, 1},
		{0, 2}, {1, 2},
	}
	gs.Snake.Heading = DirectionRight
	gs.Food.Position = Coord{2, 2}

	if outcome := gs.Tick(); outcome != TickGameOver {
		t.Fatalf("outcome = %v, want game over on a full board", outcome)
	}
	if gs.EndReason != EndReasonBoardFull {
		t.Fatalf("end reason = %v, want board full", gs.EndReason)
	}
	if gs.HighScore != 10 {
		t.Fatalf("high score = %d, the final food must still count", gs.HighScore)
	}
}

func TestGameState_DeterministicWithSeed(t *testing.T) {
	a := NewGameState(DefaultGameConfig(), rand.New(rand.NewSource(9)))
	b := NewGameState(DefaultGameConfig(), rand.New(rand.NewSource(9)))

	if !a.Food.Position.Equals(b.Food.Position) {
		t.Fatalf("same seed spawned food at %v and %v", a.Food.Position, b.Food.Position)
	}
}
