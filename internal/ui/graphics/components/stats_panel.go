package components

import (
	"fmt"
	"image/color"

	"retrosnake/internal/app"
	"retrosnake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// StatsPanel shows the current run and session counters to the right of the
// playfield.
type StatsPanel struct {
	X, Y          int
	Width, Height int
}

func NewStatsPanel(x, y, width, height int) *StatsPanel {
	return &StatsPanel{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
	}
}

func (sp *StatsPanel) Draw(screen *ebiten.Image, session *app.Session) {
	vector.DrawFilledRect(screen,
		float32(sp.X), float32(sp.Y),
		float32(sp.Width), float32(sp.Height),
		types.Darken(types.ColorFieldBg, 0.8), false)

	vector.StrokeRect(screen,
		float32(sp.X), float32(sp.Y),
		float32(sp.Width), float32(sp.Height),
		1, types.ColorGrid, false)

	fonts := types.GetFonts()
	state := session.State()

	text.Draw(screen, "STATS", fonts.Normal, sp.X+10, sp.Y+20, types.ColorTextHighlight)

	lines := []struct {
		label string
		color color.Color
	}{
		{fmt.Sprintf("Score: %d", state.Score), types.ColorScore},
		{fmt.Sprintf("Best: %d", state.HighScore), types.ColorTextHighlight},
		{fmt.Sprintf("Length: %d", state.Snake.Length()), types.ColorText},
		{fmt.Sprintf("Longest: %d", session.LongestSnake()), types.ColorText},
		{fmt.Sprintf("Runs: %d", session.RunsCompleted()), types.ColorText},
		{fmt.Sprintf("Grid: %dx%d", state.Field.Width, state.Field.Height), types.ColorTextDim},
	}

	y := sp.Y + 45
	for _, line := range lines {
		if y > sp.Y+sp.Height-10 {
			break
		}
		text.Draw(screen, line.label, fonts.Normal, sp.X+10, y, line.color)
		y += 22
	}
}
