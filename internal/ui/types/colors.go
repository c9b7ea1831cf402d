package types

import "image/color"

// Retro palette: black field, green snake, red food with a yellow core.
var (
	ColorBackground    = color.RGBA{0, 0, 0, 255}
	ColorFieldBg       = color.RGBA{10, 10, 10, 255}
	ColorGrid          = color.RGBA{50, 50, 50, 255}
	ColorWall          = color.RGBA{90, 90, 90, 255}
	ColorSnake         = color.RGBA{0, 180, 0, 255}
	ColorSnakeHead     = color.RGBA{0, 255, 0, 255}
	ColorFood          = color.RGBA{255, 0, 0, 255}
	ColorFoodCore      = color.RGBA{255, 255, 0, 255}
	ColorText          = color.RGBA{255, 255, 255, 255}
	ColorTextDim       = color.RGBA{150, 150, 150, 255}
	ColorTextHighlight = color.RGBA{0, 255, 255, 255}
	ColorGameOver      = color.RGBA{255, 0, 0, 255}
	ColorScore         = color.RGBA{255, 255, 0, 255}
	ColorButton        = color.RGBA{40, 40, 40, 255}
	ColorButtonHover   = color.RGBA{60, 80, 60, 255}
	ColorButtonText    = color.RGBA{220, 220, 220, 255}
	ColorInputBg       = color.RGBA{25, 25, 25, 255}
	ColorInputBorder   = color.RGBA{100, 100, 110, 255}
	ColorInputFocused  = color.RGBA{0, 200, 200, 255}
	ColorError         = color.RGBA{255, 100, 100, 255}

	// Semi-transparent black for the game-over dim.
	ColorOverlay = color.RGBA{0, 0, 0, 160}
)

func Darken(c color.RGBA, factor float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}
