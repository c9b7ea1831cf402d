package components

import (
	"retrosnake/internal/domain"
	"retrosnake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type FieldRenderer struct {
	CellSize int
	OffsetX  int
	OffsetY  int
}

func NewFieldRenderer() *FieldRenderer {
	return &FieldRenderer{
		CellSize: 20,
		OffsetX:  20,
		OffsetY:  20,
	}
}

// CalculateLayout fits the field into the window, leaving room for the
// stats panel on the right and the header above.
func (fr *FieldRenderer) CalculateLayout(screenWidth, screenHeight int, field *domain.Field) {
	availableWidth := screenWidth - 280
	availableHeight := screenHeight - 100

	cellW := availableWidth / field.Width
	cellH := availableHeight / field.Height

	fr.CellSize = cellW
	if cellH < cellW {
		fr.CellSize = cellH
	}

	if fr.CellSize < 5 {
		fr.CellSize = 5
	}
	if fr.CellSize > 30 {
		fr.CellSize = 30
	}

	fieldWidth := fr.CellSize * field.Width
	fieldHeight := fr.CellSize * field.Height
	fr.OffsetX = (availableWidth-fieldWidth)/2 + 20
	fr.OffsetY = (availableHeight-fieldHeight)/2 + 60
}

func (fr *FieldRenderer) cellRect(c domain.Coord) (x, y, size float32) {
	return float32(fr.OffsetX + c.X*fr.CellSize),
		float32(fr.OffsetY + c.Y*fr.CellSize),
		float32(fr.CellSize)
}

// DrawField renders the playfield background, the grid lines and the wall
// border. The border marks the fatal boundary.
func (fr *FieldRenderer) DrawField(screen *ebiten.Image, field *domain.Field) {
	w := float32(field.Width * fr.CellSize)
	h := float32(field.Height * fr.CellSize)

	vector.DrawFilledRect(screen,
		float32(fr.OffsetX), float32(fr.OffsetY),
		w, h,
		types.ColorFieldBg, false)

	for x := 0; x <= field.Width; x++ {
		x1 := float32(fr.OffsetX + x*fr.CellSize)
		vector.StrokeLine(screen,
			x1, float32(fr.OffsetY),
			x1, float32(fr.OffsetY)+h,
			1, types.ColorGrid, false)
	}
	for y := 0; y <= field.Height; y++ {
		y1 := float32(fr.OffsetY + y*fr.CellSize)
		vector.StrokeLine(screen,
			float32(fr.OffsetX), y1,
			float32(fr.OffsetX)+w, y1,
			1, types.ColorGrid, false)
	}

	vector.StrokeRect(screen,
		float32(fr.OffsetX)-2, float32(fr.OffsetY)-2,
		w+4, h+4,
		2, types.ColorWall, false)
}

// DrawFood draws the food cell with the retro yellow core.
func (fr *FieldRenderer) DrawFood(screen *ebiten.Image, food *domain.Food) {
	x, y, size := fr.cellRect(food.Position)

	vector.DrawFilledRect(screen, x+1, y+1, size-2, size-2, types.ColorFood, false)
	vector.DrawFilledRect(screen,
		x+size/4, y+size/4,
		size/2, size/2,
		types.ColorFoodCore, false)
}

// DrawSnake draws the body tail to head; the head gets the brighter green.
func (fr *FieldRenderer) DrawSnake(screen *ebiten.Image, snake *domain.Snake) {
	for i, cell := range snake.Body {
		x, y, size := fr.cellRect(cell)

		cellColor := types.ColorSnake
		if i == len(snake.Body)-1 {
			cellColor = types.ColorSnakeHead
		}

		vector.DrawFilledRect(screen, x+1, y+1, size-2, size-2, cellColor, false)
		vector.StrokeRect(screen, x+1, y+1, size-2, size-2, 1,
			types.Darken(cellColor, 0.6), false)
	}
}
