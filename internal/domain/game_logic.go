package domain

type TickOutcome int

const (
	TickContinue TickOutcome = 0
	TickGameOver TickOutcome = 1
)

// ApplyDirection forwards a steering request to the snake. Requests after
// the run ended are dropped.
func (gs *GameState) ApplyDirection(dir Direction) {
	if gs.Phase == PhaseGameOver {
		return
	}
	gs.Snake.Turn(dir)
}

// Tick advances the simulation by one step: move, then collision, then food.
// Whether the move lands on food is decided before the snake moves, so an
// eating move keeps its tail within the same tick. Collision wins over food
// overlap, so a fatal move never scores. Once the run is over Tick is a
// no-op until Reset.
func (gs *GameState) Tick() TickOutcome {
	if gs.Phase == PhaseGameOver {
		return TickGameOver
	}

	nextHead := gs.Snake.Head().Add(gs.Snake.Heading.Delta())
	ate := nextHead.Equals(gs.Food.Position)
	if ate {
		gs.Snake.Grow()
	}

	gs.Snake.Move()

	if gs.Snake.CheckCollision(gs.Field) {
		reason := EndReasonSelfHit
		if !gs.Field.Contains(gs.Snake.Head()) {
			reason = EndReasonWallHit
		}
		gs.endRun(reason)
		return TickGameOver
	}

	if ate {
		gs.Score += gs.Config.FoodScore
		if !gs.Food.Spawn(gs.rng, gs.Field, gs.Snake.Body) {
			// No free cell left for food. The run cannot continue, which is
			// a win in all but name; it ends like a collision does.
			gs.endRun(EndReasonBoardFull)
			return TickGameOver
		}
	}

	return TickContinue
}

func (gs *GameState) endRun(reason EndReason) {
	gs.Phase = PhaseGameOver
	gs.EndReason = reason
	if gs.Score > gs.HighScore {
		gs.HighScore = gs.Score
	}
}
