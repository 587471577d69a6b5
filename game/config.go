package game

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Mode controls what happens on the first guess.
type Mode int

const (
	// ModeWin7 clears the first guess and its neighbours of mines.
	ModeWin7 Mode = iota
	// ModeClassic leaves mines in place, so the first guess can lose.
	ModeClassic
)

var modeNames = map[Mode]string{
	ModeWin7:    "win7",
	ModeClassic: "classic",
}

func ParseMode(name string) (Mode, error) {
	for mode, modeName := range modeNames {
		if modeName == name {
			return mode, nil
		}
	}
	return 0, fmt.Errorf("invalid game mode %q", name)
}

func (mode Mode) String() string {
	if name, ok := modeNames[mode]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(mode))
}

func (mode Mode) MarshalYAML() (interface{}, error) {
	return mode.String(), nil
}

func (mode *Mode) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	parsed, err := ParseMode(name)
	if err != nil {
		return err
	}
	*mode = parsed
	return nil
}

const (
	MinDimension = 1
	MaxDimension = 10000
	// safeZoneCells is the first guess plus its eight neighbours.
	safeZoneCells = 9
)

var ErrBoardTooSmall = errors.New("board too small to leave a safe first guess")

// LoadConfig reads a YAML config file over the defaults.
func LoadConfig(path string) (GameConfig, error) {
	config := NewGameConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return config, nil
}

// Clamp restricts width and height to [1, 10000] and the mine count to
// [1, width*height-9].
func (config *GameConfig) Clamp() {
	config.Width = clamp(config.Width, MinDimension, MaxDimension)
	config.Height = clamp(config.Height, MinDimension, MaxDimension)
	config.NumMines = clamp(config.NumMines, 1, max(1, config.Width*config.Height-safeZoneCells))
}

func (config GameConfig) Validate() error {
	if _, ok := modeNames[config.Mode]; !ok {
		return fmt.Errorf("invalid game mode %d", int(config.Mode))
	}
	if config.Snapshot != nil {
		return nil
	}
	if config.Width < MinDimension || config.Height < MinDimension ||
		config.Width > MaxDimension || config.Height > MaxDimension {
		return fmt.Errorf("board dimensions %dx%d outside [%d, %d]",
			config.Width, config.Height, MinDimension, MaxDimension)
	}
	if config.Width*config.Height-safeZoneCells < 1 {
		return fmt.Errorf("%w: %dx%d", ErrBoardTooSmall, config.Width, config.Height)
	}
	if config.NumMines < 1 || config.NumMines > config.Width*config.Height-safeZoneCells {
		return fmt.Errorf("mine count %d outside [1, %d]", config.NumMines, config.Width*config.Height-safeZoneCells)
	}
	return nil
}

func clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
