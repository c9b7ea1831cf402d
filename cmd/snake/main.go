package main

import (
	"log"

	"retrosnake/internal/app"
	"retrosnake/internal/domain"
	"retrosnake/internal/ui/graphics"
	"retrosnake/internal/ui/graphics/screens"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	session := app.NewSession(domain.DefaultGameConfig())

	engine := graphics.NewEngine(session)
	engine.RegisterScreens(
		screens.NewMenuScreen(engine),
		screens.NewOptionsScreen(engine, session.Config()),
		screens.NewGameScreen(engine, session),
	)

	if err := engine.Run(); err != nil {
		log.Fatalf("UI error: %v", err)
	}

	state := session.State()
	log.Printf("Session over. Final score: %d, high score: %d, runs: %d",
		state.Score, state.HighScore, session.RunsCompleted())
}
