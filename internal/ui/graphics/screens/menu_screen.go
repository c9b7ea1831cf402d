package screens

import (
	"retrosnake/internal/ui/graphics/components"
	"retrosnake/internal/ui/graphics/input"
	"retrosnake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

type MenuScreen struct {
	ctx types.ScreenContext

	btnPlay    *components.Button
	btnOptions *components.Button
	btnQuit    *components.Button
}

func NewMenuScreen(ctx types.ScreenContext) *MenuScreen {
	return &MenuScreen{
		ctx:        ctx,
		btnPlay:    components.NewButton(0, 0, 250, 50, "Play"),
		btnOptions: components.NewButton(0, 0, 250, 50, "Options"),
		btnQuit:    components.NewButton(0, 0, 250, 50, "Quit"),
	}
}

func (s *MenuScreen) Update() types.UIEvent {
	w, h := s.ctx.Size()
	centerX := w / 2
	centerY := h / 2

	s.btnPlay.SetPosition(centerX-125, centerY-80)
	s.btnOptions.SetPosition(centerX-125, centerY-20)
	s.btnQuit.SetPosition(centerX-125, centerY+40)

	if s.btnPlay.Update() || input.IsEnterPressed() {
		return types.UIEvent{Type: types.UIEventStartGame}
	}

	if s.btnOptions.Update() {
		return types.UIEvent{Type: types.UIEventShowOptions}
	}

	if s.btnQuit.Update() || input.IsEscapePressed() {
		return types.UIEvent{Type: types.UIEventQuit}
	}

	return types.UIEvent{Type: types.UIEventNone}
}

func (s *MenuScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	fonts := types.GetFonts()
	w, h := s.ctx.Size()

	title := "RETRO SNAKE"
	bounds := text.BoundString(fonts.Normal, title)
	x := (w - bounds.Dx()) / 2

	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			text.Draw(screen, title, fonts.Normal, x+dx, 100+dy, types.ColorSnakeHead)
		}
	}

	subtitle := "Eat. Grow. Don't bite yourself."
	bounds = text.BoundString(fonts.Normal, subtitle)
	x = (w - bounds.Dx()) / 2
	text.Draw(screen, subtitle, fonts.Normal, x, 130, types.ColorTextDim)

	s.btnPlay.Draw(screen)
	s.btnOptions.Draw(screen)
	s.btnQuit.Draw(screen)

	hint := "ENTER to play  |  ESC to quit"
	bounds = text.BoundString(fonts.Small, hint)
	x = (w - bounds.Dx()) / 2
	text.Draw(screen, hint, fonts.Small, x, h-30, types.ColorTextDim)
}

func (s *MenuScreen) OnEnter() {}

func (s *MenuScreen) OnExit() {}
