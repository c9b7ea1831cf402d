package screens

import (
	"fmt"
	"time"

	"retrosnake/internal/app"
	"retrosnake/internal/domain"
	"retrosnake/internal/ui/graphics/components"
	"retrosnake/internal/ui/graphics/input"
	"retrosnake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type GameScreen struct {
	ctx     types.ScreenContext
	session *app.Session

	fieldRenderer *components.FieldRenderer
	statsPanel    *components.StatsPanel
	keyboard      *input.KeyboardHandler

	copied bool
}

func NewGameScreen(ctx types.ScreenContext, session *app.Session) *GameScreen {
	return &GameScreen{
		ctx:           ctx,
		session:       session,
		fieldRenderer: components.NewFieldRenderer(),
		statsPanel:    components.NewStatsPanel(0, 0, 230, 200),
		keyboard:      input.NewKeyboardHandler(),
	}
}

// Update handles one frame: steering input first, then at most one tick.
func (s *GameScreen) Update() types.UIEvent {
	if input.IsEscapePressed() {
		return types.UIEvent{Type: types.UIEventShowMenu}
	}

	state := s.session.State()

	if state.Phase == domain.PhaseGameOver {
		if input.IsRestartPressed() {
			s.session.Restart()
			s.copied = false
			return types.UIEvent{Type: types.UIEventNone}
		}
		if input.IsCopyPressed() {
			s.session.CopyReport()
			s.copied = true
		}
		return types.UIEvent{Type: types.UIEventNone}
	}

	if dir := s.keyboard.Update(); dir != 0 {
		s.session.HandleDirection(dir)
	}

	s.session.Advance(time.Now())

	return types.UIEvent{Type: types.UIEventNone}
}

func (s *GameScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	w, h := s.ctx.Size()
	state := s.session.State()

	s.fieldRenderer.CalculateLayout(w, h, state.Field)
	s.fieldRenderer.DrawField(screen, state.Field)
	s.fieldRenderer.DrawFood(screen, state.Food)
	s.fieldRenderer.DrawSnake(screen, state.Snake)

	s.statsPanel.X = w - 250
	s.statsPanel.Y = 60
	s.statsPanel.Draw(screen, s.session)

	s.drawHeader(screen, w)
	s.drawFooter(screen, w, h)

	if state.Phase == domain.PhaseGameOver {
		s.drawGameOver(screen, w, h)
	}
}

func (s *GameScreen) drawHeader(screen *ebiten.Image, w int) {
	fonts := types.GetFonts()
	state := s.session.State()

	scoreText := fmt.Sprintf("Score: %d", state.Score)
	text.Draw(screen, scoreText, fonts.Normal, 20, 30, types.ColorScore)

	bestText := fmt.Sprintf("High Score: %d", state.HighScore)
	text.Draw(screen, bestText, fonts.Normal, 160, 30, types.ColorTextHighlight)
}

func (s *GameScreen) drawFooter(screen *ebiten.Image, w, h int) {
	fonts := types.GetFonts()

	hint := "W/A/S/D or Arrows to steer  |  ESC for menu"
	if s.session.State().Phase == domain.PhaseGameOver {
		hint = "SPACE to restart  |  C to copy report  |  ESC for menu"
	}
	text.Draw(screen, hint, fonts.Small, 20, h-15, types.ColorTextDim)
}

func (s *GameScreen) drawGameOver(screen *ebiten.Image, w, h int) {
	fonts := types.GetFonts()
	state := s.session.State()

	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h),
		types.ColorOverlay, false)

	title := "GAME OVER"
	bounds := text.BoundString(fonts.Normal, title)
	x := (w - bounds.Dx()) / 2
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			text.Draw(screen, title, fonts.Normal, x+dx, h/2-50+dy, types.ColorGameOver)
		}
	}

	reason := fmt.Sprintf("The snake %s", state.EndReason)
	bounds = text.BoundString(fonts.Normal, reason)
	text.Draw(screen, reason, fonts.Normal, (w-bounds.Dx())/2, h/2-20, types.ColorText)

	final := fmt.Sprintf("Final Score: %d", state.Score)
	bounds = text.BoundString(fonts.Normal, final)
	text.Draw(screen, final, fonts.Normal, (w-bounds.Dx())/2, h/2+10, types.ColorScore)

	if s.copied {
		msg := "Report copied to clipboard"
		bounds = text.BoundString(fonts.Small, msg)
		text.Draw(screen, msg, fonts.Small, (w-bounds.Dx())/2, h/2+40, types.ColorTextDim)
	}
}

func (s *GameScreen) OnEnter() {
	s.copied = false
}

func (s *GameScreen) OnExit() {}
