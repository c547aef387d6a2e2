package bounce

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Default values match the classic screensaver window.
const (
	DefaultTitle  = "DVD Bounce"
	DefaultWidth  = 720
	DefaultHeight = 480
	DefaultSpeed  = 100.0
	DefaultAngle  = DefaultAngleDeg * math.Pi / 180
	DefaultScale  = 0.5

	// DefaultAngleDeg is DefaultAngle in degrees, the unit Config uses.
	DefaultAngleDeg = 45.0
)

// Config holds the startup values a host needs to build the viewport and the
// body. JSON field names are used by LoadConfig.
type Config struct {
	Title     string  `json:"title"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	Speed     float64 `json:"speed"`
	AngleDeg  float64 `json:"angle_deg"` // degrees, counter-clockwise from +X
	Scale     float64 `json:"scale"`
	Resizable bool    `json:"resizable,omitempty"`
}

// DefaultConfig returns a 720x480 "DVD Bounce" window with the logo drawn at
// half size, moving at 100 px/s at 45 degrees.
func DefaultConfig() Config {
	return Config{
		Title:    DefaultTitle,
		Width:    DefaultWidth,
		Height:   DefaultHeight,
		Speed:    DefaultSpeed,
		AngleDeg: DefaultAngleDeg,
		Scale:    DefaultScale,
	}
}

// LoadConfig parses JSON on top of DefaultConfig, so fields missing from the
// document keep their default values. The result is validated.
func LoadConfig(jsonData []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := json.Unmarshal(jsonData, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads and parses a JSON config file.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	return LoadConfig(data)
}

// Validate reports the first field that cannot be used to start a host.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("config: viewport %dx%d must be positive", c.Width, c.Height)
	case c.Speed < 0 || math.IsNaN(c.Speed) || math.IsInf(c.Speed, 0):
		return fmt.Errorf("config: speed %v must be a non-negative number", c.Speed)
	case math.IsNaN(c.AngleDeg) || math.IsInf(c.AngleDeg, 0):
		return fmt.Errorf("config: angle_deg %v must be finite", c.AngleDeg)
	case c.Scale <= 0 || math.IsNaN(c.Scale) || math.IsInf(c.Scale, 0):
		return fmt.Errorf("config: scale %v must be positive", c.Scale)
	}
	return nil
}

// Viewport returns the configured viewport.
func (c Config) Viewport() Viewport {
	return Viewport{Width: float64(c.Width), Height: float64(c.Height)}
}

// NewBody is Init using the configured speed and angle.
func (c Config) NewBody() Body {
	return Init(c.Viewport(), c.Speed, c.AngleDeg*math.Pi/180)
}
