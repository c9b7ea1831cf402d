package types

import (
	"retrosnake/internal/domain"
)

type UIEvent struct {
	Type    UIEventType
	Payload interface{}
}

type UIEventType int

const (
	UIEventNone UIEventType = iota
	UIEventStartGame
	UIEventShowOptions
	UIEventShowMenu
	UIEventApplyConfig
	UIEventQuit
)

type ApplyConfigData struct {
	Config *domain.GameConfig
}
