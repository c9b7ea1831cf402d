package components

import (
	"unicode/utf8"

	"retrosnake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type TextInput struct {
	X, Y          int
	Width, Height int
	Text          string
	Placeholder   string
	MaxLength     int
	Numeric       bool
	Focused       bool
}

func NewTextInput(x, y, width, height int, placeholder string) *TextInput {
	return &TextInput{
		X:           x,
		Y:           y,
		Width:       width,
		Height:      height,
		Placeholder: placeholder,
		MaxLength:   8,
	}
}

// NewNumericInput accepts digits only; the options screen fields are all
// numbers.
func NewNumericInput(x, y, width, height int, placeholder string) *TextInput {
	ti := NewTextInput(x, y, width, height, placeholder)
	ti.Numeric = true
	return ti
}

func (ti *TextInput) Update() {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		ti.Focused = mx >= ti.X && mx < ti.X+ti.Width && my >= ti.Y && my < ti.Y+ti.Height
	}

	if !ti.Focused {
		return
	}

	var runes []rune
	runes = ebiten.AppendInputChars(runes)
	for _, r := range runes {
		if ti.Numeric && (r < '0' || r > '9') {
			continue
		}
		if utf8.RuneCountInString(ti.Text) < ti.MaxLength {
			ti.Text += string(r)
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		if len(ti.Text) > 0 {
			ti.Text = ti.Text[:len(ti.Text)-1]
		}
	}
}

func (ti *TextInput) Draw(screen *ebiten.Image) {
	vector.DrawFilledRect(screen,
		float32(ti.X), float32(ti.Y),
		float32(ti.Width), float32(ti.Height),
		types.ColorInputBg, false)

	borderColor := types.ColorInputBorder
	if ti.Focused {
		borderColor = types.ColorInputFocused
	}
	vector.StrokeRect(screen,
		float32(ti.X), float32(ti.Y),
		float32(ti.Width), float32(ti.Height),
		2, borderColor, false)

	fonts := types.GetFonts()
	displayText := ti.Text
	textColor := types.ColorText

	if displayText == "" && !ti.Focused {
		displayText = ti.Placeholder
		textColor = types.ColorTextDim
	}

	textX := ti.X + 8
	textY := ti.Y + ti.Height/2 + 4
	text.Draw(screen, displayText, fonts.Normal, textX, textY, textColor)
}

func (ti *TextInput) SetPosition(x, y int) {
	ti.X = x
	ti.Y = y
}
