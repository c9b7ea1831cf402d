package domain

type GameConfig struct {
	Width         int
	Height        int
	InitialLength int
	FoodScore     int
	TickDelayMs   int
}

func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		Width:         40,
		Height:        30,
		InitialLength: 3,
		FoodScore:     10,
		TickDelayMs:   200,
	}
}

func (c *GameConfig) Validate() bool {
	if c.Width < 10 || c.Width > 100 {
		return false
	}
	if c.Height < 10 || c.Height > 100 {
		return false
	}
	if c.InitialLength < 1 || c.InitialLength > c.Width/2 {
		return false
	}
	if c.FoodScore < 1 {
		return false
	}
	if c.TickDelayMs < 50 || c.TickDelayMs > 3000 {
		return false
	}
	return true
}

func (c *GameConfig) Copy() *GameConfig {
	return &GameConfig{
		Width:         c.Width,
		Height:        c.Height,
		InitialLength: c.InitialLength,
		FoodScore:     c.FoodScore,
		TickDelayMs:   c.TickDelayMs,
	}
}
