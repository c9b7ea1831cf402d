package graphics

import (
	"retrosnake/internal/app"
	"retrosnake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	DefaultWidth  = 1024
	DefaultHeight = 768
)

// Engine is the ebiten.Game. It routes frames to the active screen and
// handles navigation events synchronously; there are no background
// goroutines, the session lives entirely inside the update loop.
type Engine struct {
	width  int
	height int

	session *app.Session

	currentScreen types.ScreenType
	screenMap     map[types.ScreenType]types.Screen
}

func NewEngine(session *app.Session) *Engine {
	types.InitFonts()

	return &Engine{
		width:         DefaultWidth,
		height:        DefaultHeight,
		session:       session,
		currentScreen: types.ScreenMenu,
		screenMap:     make(map[types.ScreenType]types.Screen),
	}
}

func (e *Engine) RegisterScreens(
	menu types.Screen,
	options types.Screen,
	game types.Screen,
) {
	e.screenMap[types.ScreenMenu] = menu
	e.screenMap[types.ScreenOptions] = options
	e.screenMap[types.ScreenGame] = game
}

func (e *Engine) Run() error {
	ebiten.SetWindowSize(e.width, e.height)
	ebiten.SetWindowTitle("Retro Snake")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(e)
}

func (e *Engine) Update() error {
	e.width, e.height = ebiten.WindowSize()

	screen := e.screenMap[e.currentScreen]
	if screen == nil {
		return nil
	}

	return e.handleEvent(screen.Update())
}

func (e *Engine) Draw(screen *ebiten.Image) {
	if current := e.screenMap[e.currentScreen]; current != nil {
		current.Draw(screen)
	}
}

func (e *Engine) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}

func (e *Engine) Size() (int, int) {
	return e.width, e.height
}

func (e *Engine) SetScreen(screen types.ScreenType) {
	if e.currentScreen != screen {
		if s := e.screenMap[e.currentScreen]; s != nil {
			s.OnExit()
		}
		e.currentScreen = screen
		if s := e.screenMap[e.currentScreen]; s != nil {
			s.OnEnter()
		}
	}
}

func (e *Engine) handleEvent(event types.UIEvent) error {
	switch event.Type {
	case types.UIEventStartGame:
		e.session.Restart()
		e.SetScreen(types.ScreenGame)

	case types.UIEventShowOptions:
		e.SetScreen(types.ScreenOptions)

	case types.UIEventShowMenu:
		e.SetScreen(types.ScreenMenu)

	case types.UIEventApplyConfig:
		data := event.Payload.(types.ApplyConfigData)
		e.session.Configure(data.Config, e.session.State())
		e.SetScreen(types.ScreenMenu)

	case types.UIEventQuit:
		return ebiten.Termination
	}

	return nil
}
