package settings

import (
	"errors"
	"fmt"
	"os"

	"github.com/oomph-ac/platsim/area"
	"github.com/oomph-ac/platsim/game"
	"github.com/pelletier/go-toml"
)

// Settings contains everything that can be tuned about the simulation.
type Settings struct {
	Physics struct {
		// Gravity is the downward acceleration added every step.
		Gravity float32
		// AirDrag slows down rising bodies that are airborne.
		AirDrag float32
		// TimeScale divides the tick delta before integration.
		TimeScale float32
	}
	Warp struct {
		TileSize     float32
		SettleOffset float32
		SettleSteps  int
	}
	Sound struct {
		// TTL is how long, in milliseconds, a sound or text line suppresses duplicates.
		TTL         float32
		TextLogSize int
	}
	Index struct {
		CellSize int
	}
}

// DefaultSettings returns the default settings.
func DefaultSettings() Settings {
	s := Settings{}
	s.Physics.Gravity = game.Gravity
	s.Physics.AirDrag = game.AirDrag
	s.Physics.TimeScale = game.TimeScale

	s.Warp.TileSize = game.TileSize
	s.Warp.SettleOffset = game.WarpSettleOffset
	s.Warp.SettleSteps = game.WarpSettleSteps

	s.Sound.TTL = game.SoundTTL
	s.Sound.TextLogSize = game.TextLogSize

	s.Index.CellSize = game.IndexCellSize
	return s
}

// AreaConfig converts the settings into the configuration of an area.
func (s Settings) AreaConfig() area.Config {
	return area.Config{
		Gravity:      s.Physics.Gravity,
		AirDrag:      s.Physics.AirDrag,
		TimeScale:    s.Physics.TimeScale,
		TileSize:     s.Warp.TileSize,
		SettleOffset: s.Warp.SettleOffset,
		SettleSteps:  s.Warp.SettleSteps,
		SoundTTL:     s.Sound.TTL,
		TextLogSize:  s.Sound.TextLogSize,
		CellSize:     s.Index.CellSize,
	}
}

// Validate returns an error if a setting would make the simulation misbehave.
func (s Settings) Validate() error {
	switch {
	case s.Physics.TimeScale <= 0:
		return fmt.Errorf("Physics.TimeScale must be positive, got %v", s.Physics.TimeScale)
	case s.Warp.TileSize <= 0:
		return fmt.Errorf("Warp.TileSize must be positive, got %v", s.Warp.TileSize)
	case s.Warp.SettleSteps < 0:
		return fmt.Errorf("Warp.SettleSteps must not be negative, got %v", s.Warp.SettleSteps)
	case s.Sound.TextLogSize <= 0:
		return fmt.Errorf("Sound.TextLogSize must be positive, got %v", s.Sound.TextLogSize)
	case s.Index.CellSize <= 0:
		return fmt.Errorf("Index.CellSize must be positive, got %v", s.Index.CellSize)
	}
	return nil
}

// SaveDefault will create and save the default settings file. If the file already exists, it will return an error.
func SaveDefault(path string) error {
	s := DefaultSettings()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if data, err := toml.Marshal(s); err != nil {
			return fmt.Errorf("failed encoding default settings: %v", err)
		} else if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed creating settings file: %v", err)
		}
		return nil
	}
	return errors.New("settings file already exists")
}

// Load will load the settings from your settings file, and return an error if the file does not exist.
// Keys missing from the file keep their default values.
func Load(path string) (Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Settings{}, errors.New("settings file doesn't exist")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("error reading config: %v", err)
	}

	settings := DefaultSettings()
	if err = toml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %v", err)
	}
	if err = settings.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid config: %w", err)
	}
	return settings, nil
}
