package area

import "github.com/oomph-ac/platsim/game"

// Config holds the tunables of an area.
type Config struct {
	Gravity   float32
	AirDrag   float32
	TimeScale float32

	TileSize     float32
	SettleOffset float32
	SettleSteps  int

	SoundTTL    float32
	TextLogSize int

	CellSize int
}

// DefaultConfig returns the configuration used when no settings file is loaded.
func DefaultConfig() Config {
	return Config{
		Gravity:      game.Gravity,
		AirDrag:      game.AirDrag,
		TimeScale:    game.TimeScale,
		TileSize:     game.TileSize,
		SettleOffset: game.WarpSettleOffset,
		SettleSteps:  game.WarpSettleSteps,
		SoundTTL:     game.SoundTTL,
		TextLogSize:  game.TextLogSize,
		CellSize:     game.IndexCellSize,
	}
}
