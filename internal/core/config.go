package core

// Terminal cells are roughly twice as tall as they are wide, so one cell
// covers CellW x CellH field units.
const (
	CellW = 10.0
	CellH = 20.0
)

// RuntimeConfig contains settings passed from the platform to a session.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frame ticks per second requested from the driver (default 60)
	Seed     int64 // RNG seed for deterministic gameplay; 0 means time-based
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// FieldSize converts a cell area into field dimensions.
func FieldSize(cols, rows int) (float64, float64) {
	return float64(cols) * CellW, float64(rows) * CellH
}
