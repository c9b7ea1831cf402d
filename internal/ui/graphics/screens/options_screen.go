package screens

import (
	"strconv"

	"retrosnake/internal/domain"
	"retrosnake/internal/ui/graphics/components"
	"retrosnake/internal/ui/graphics/input"
	"retrosnake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// OptionsScreen edits the game configuration. Applying it starts a fresh
// game on the new grid; the session best is kept.
type OptionsScreen struct {
	ctx types.ScreenContext

	inputWidth  *components.TextInput
	inputHeight *components.TextInput
	inputLength *components.TextInput
	inputDelay  *components.TextInput

	btnApply *components.Button
	btnBack  *components.Button

	errorMsg string
}

func NewOptionsScreen(ctx types.ScreenContext, config *domain.GameConfig) *OptionsScreen {
	s := &OptionsScreen{
		ctx:         ctx,
		inputWidth:  components.NewNumericInput(0, 0, 140, 35, "40"),
		inputHeight: components.NewNumericInput(0, 0, 140, 35, "30"),
		inputLength: components.NewNumericInput(0, 0, 140, 35, "3"),
		inputDelay:  components.NewNumericInput(0, 0, 140, 35, "200"),
		btnApply:    components.NewButton(0, 0, 140, 45, "Apply"),
		btnBack:     components.NewButton(0, 0, 140, 45, "Back"),
	}

	s.inputWidth.Text = strconv.Itoa(config.Width)
	s.inputHeight.Text = strconv.Itoa(config.Height)
	s.inputLength.Text = strconv.Itoa(config.InitialLength)
	s.inputDelay.Text = strconv.Itoa(config.TickDelayMs)

	return s
}

func (s *OptionsScreen) Update() types.UIEvent {
	w, _ := s.ctx.Size()
	centerX := w / 2
	startY := 140

	s.inputWidth.SetPosition(centerX-150, startY)
	s.inputHeight.SetPosition(centerX+10, startY)
	s.inputLength.SetPosition(centerX-150, startY+70)
	s.inputDelay.SetPosition(centerX+10, startY+70)
	s.btnBack.SetPosition(centerX-150, startY+150)
	s.btnApply.SetPosition(centerX+10, startY+150)

	s.inputWidth.Update()
	s.inputHeight.Update()
	s.inputLength.Update()
	s.inputDelay.Update()

	if input.IsTabPressed() {
		s.cycleFocus()
	}

	if s.btnBack.Update() || input.IsEscapePressed() {
		return types.UIEvent{Type: types.UIEventShowMenu}
	}

	if s.btnApply.Update() || input.IsEnterPressed() {
		return s.applyConfig()
	}

	return types.UIEvent{Type: types.UIEventNone}
}

func (s *OptionsScreen) cycleFocus() {
	inputs := []*components.TextInput{
		s.inputWidth, s.inputHeight,
		s.inputLength, s.inputDelay,
	}

	currentIdx := -1
	for i, inp := range inputs {
		if inp.Focused {
			currentIdx = i
			inp.Focused = false
			break
		}
	}

	inputs[(currentIdx+1)%len(inputs)].Focused = true
}

func (s *OptionsScreen) applyConfig() types.UIEvent {
	width, err := strconv.Atoi(s.inputWidth.Text)
	if err != nil {
		s.errorMsg = "Width must be a number"
		return types.UIEvent{Type: types.UIEventNone}
	}

	height, err := strconv.Atoi(s.inputHeight.Text)
	if err != nil {
		s.errorMsg = "Height must be a number"
		return types.UIEvent{Type: types.UIEventNone}
	}

	length, err := strconv.Atoi(s.inputLength.Text)
	if err != nil {
		s.errorMsg = "Length must be a number"
		return types.UIEvent{Type: types.UIEventNone}
	}

	delay, err := strconv.Atoi(s.inputDelay.Text)
	if err != nil {
		s.errorMsg = "Delay must be a number"
		return types.UIEvent{Type: types.UIEventNone}
	}

	config := &domain.GameConfig{
		Width:         width,
		Height:        height,
		InitialLength: length,
		FoodScore:     domain.DefaultGameConfig().FoodScore,
		TickDelayMs:   delay,
	}
	if !config.Validate() {
		s.errorMsg = "Out of range: grid 10-100, length < half width, delay 50-3000"
		return types.UIEvent{Type: types.UIEventNone}
	}

	return types.UIEvent{
		Type:    types.UIEventApplyConfig,
		Payload: types.ApplyConfigData{Config: config},
	}
}

func (s *OptionsScreen) Draw(screen *ebiten.Image) {
	screen.Fill(types.ColorBackground)

	fonts := types.GetFonts()
	w, h := s.ctx.Size()
	centerX := w / 2
	startY := 140

	title := "OPTIONS"
	bounds := text.BoundString(fonts.Normal, title)
	text.Draw(screen, title, fonts.Normal, (w-bounds.Dx())/2, 60, types.ColorTextHighlight)

	text.Draw(screen, "Grid width:", fonts.Normal, centerX-150, startY-10, types.ColorText)
	text.Draw(screen, "Grid height:", fonts.Normal, centerX+10, startY-10, types.ColorText)
	text.Draw(screen, "Start length:", fonts.Normal, centerX-150, startY+60, types.ColorText)
	text.Draw(screen, "Tick delay ms:", fonts.Normal, centerX+10, startY+60, types.ColorText)

	s.inputWidth.Draw(screen)
	s.inputHeight.Draw(screen)
	s.inputLength.Draw(screen)
	s.inputDelay.Draw(screen)

	s.btnBack.Draw(screen)
	s.btnApply.Draw(screen)

	if s.errorMsg != "" {
		bounds := text.BoundString(fonts.Normal, s.errorMsg)
		text.Draw(screen, s.errorMsg, fonts.Normal, (w-bounds.Dx())/2, startY+230, types.ColorError)
	}

	hint := "TAB to switch fields, ENTER to apply, ESC to go back"
	bounds = text.BoundString(fonts.Small, hint)
	text.Draw(screen, hint, fonts.Small, (w-bounds.Dx())/2, h-30, types.ColorTextDim)
}

func (s *OptionsScreen) OnEnter() {
	s.errorMsg = ""
	s.inputWidth.Focused = true
}

func (s *OptionsScreen) OnExit() {}
