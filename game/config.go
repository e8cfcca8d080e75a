package game

import "time"

// Simulation constants
const (
	// Board — fixed small grid, origin bottom-left, Up is +Y
	BoardWidth  = 10
	BoardHeight = 10

	// Clock
	TickPeriod = 500 * time.Millisecond

	// Food respawn area is fixed and does not follow the board size
	FoodSpawnWidth  = 10
	FoodSpawnHeight = 10

	// Render
	CellPixels = 10 // screen rect size per cell, placed at coordinate * CellPixels
)

// Config holds the parameters a World is built from.
type Config struct {
	Width      int
	Height     int
	TickPeriod time.Duration
	SpawnArea  Grid
	// Intn replaces the process-wide random draw when set (tests).
	Intn func(n int) int
}

// DefaultConfig returns the fixed 10x10 / 500ms configuration.
func DefaultConfig() Config {
	return Config{
		Width:      BoardWidth,
		Height:     BoardHeight,
		TickPeriod: TickPeriod,
		SpawnArea:  NewGrid(FoodSpawnWidth, FoodSpawnHeight),
	}
}
