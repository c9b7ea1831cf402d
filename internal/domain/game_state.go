package domain

import (
	"math/rand"
	"time"
)

type Phase int

const (
	PhaseRunning  Phase = 0
	PhaseGameOver Phase = 1
)

type EndReason int

const (
	EndReasonNone EndReason = iota
	EndReasonWallHit
	EndReasonSelfHit
	EndReasonBoardFull
)

func (r EndReason) String() string {
	switch r {
	case EndReasonWallHit:
		return "hit a wall"
	case EndReasonSelfHit:
		return "ran into itself"
	case EndReasonBoardFull:
		return "filled the board"
	}
	return "still running"
}

// GameState composes the snake, the food and the score counters. It is owned
// by exactly one goroutine; the locking the networked original needed is
// gone along with the peers.
type GameState struct {
	Field  *Field
	Config *GameConfig
	Snake  *Snake
	Food   *Food

	Score     int
	HighScore int
	Phase     Phase
	EndReason EndReason

	rng *rand.Rand
}

// NewGameState builds a running game. The rng drives food placement; tests
// pass a seeded source, callers may pass nil for a time-seeded one.
func NewGameState(config *GameConfig, rng *rand.Rand) *GameState {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	gs := &GameState{
		Field:  NewField(config.Width, config.Height),
		Config: config.Copy(),
		Food:   &Food{},
		rng:    rng,
	}
	gs.Snake = NewSnake(gs.Field, config.InitialLength)
	gs.Food.Spawn(rng, gs.Field, gs.Snake.Body)
	gs.Phase = PhaseRunning
	return gs
}

// Reset starts a fresh run. The high score survives as the session best.
func (gs *GameState) Reset() {
	gs.Snake.Reset(gs.Field, gs.Config.InitialLength)
	gs.Food.Spawn(gs.rng, gs.Field, gs.Snake.Body)
	gs.Score = 0
	gs.Phase = PhaseRunning
	gs.EndReason = EndReasonNone
}
