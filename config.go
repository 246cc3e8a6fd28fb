package easel

import (
	"fmt"
	"math"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the tunables of the placement engine. The zero value is not
// usable; start from DefaultConfig or LoadConfigFromEnv.
type Config struct {
	// CommitArea is the plane area (m²) a vertical region must exceed
	// before it is committed as the placement anchor.
	CommitArea float64 `env:"EASEL_COMMIT_AREA" envDefault:"0.1"`
	// DragDebounce is how long a touch must be held before moves count
	// as a drag.
	DragDebounce time.Duration `env:"EASEL_DRAG_DEBOUNCE" envDefault:"300ms"`

	// PixelsPerMeter converts content pixel dimensions to frame size when
	// TargetWidth is zero.
	PixelsPerMeter float64 `env:"EASEL_PIXELS_PER_METER" envDefault:"10000"`
	// TargetWidth, when positive, fixes the panel width in meters.
	TargetWidth float64 `env:"EASEL_TARGET_WIDTH" envDefault:"0"`
	// RailWidth is the in-plane thickness of each frame rail.
	RailWidth float64 `env:"EASEL_RAIL_WIDTH" envDefault:"0.05"`
	// FrameDepth is how far the rails stand out from the wall.
	FrameDepth float64 `env:"EASEL_FRAME_DEPTH" envDefault:"0.02"`
	// ChamferRadius rounds every box edge.
	ChamferRadius float64 `env:"EASEL_CHAMFER_RADIUS" envDefault:"0.001"`

	MinScale float64 `env:"EASEL_MIN_SCALE" envDefault:"0.1"`
	MaxScale float64 `env:"EASEL_MAX_SCALE" envDefault:"10"`

	// WallPitch is the pitch forced on the placed object whenever it is
	// posed against a wall.
	WallPitch float64

	// AppearDuration is the fade-in time for the placed object and grids.
	// Zero disables the animation.
	AppearDuration time.Duration `env:"EASEL_APPEAR_DURATION" envDefault:"250ms"`

	// PlaneExtentHit restricts plane hit-tests to the detected extent
	// instead of the infinite plane.
	PlaneExtentHit bool `env:"EASEL_PLANE_EXTENT_HIT" envDefault:"false"`

	Debug bool `env:"EASEL_DEBUG" envDefault:"false"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		CommitArea:     0.1,
		DragDebounce:   300 * time.Millisecond,
		PixelsPerMeter: 10000,
		RailWidth:      0.05,
		FrameDepth:     0.02,
		ChamferRadius:  0.001,
		MinScale:       0.1,
		MaxScale:       10,
		WallPitch:      -math.Pi / 2,
		AppearDuration: 250 * time.Millisecond,
	}
}

// ParseConfigEnv loads configuration from EASEL_* environment variables.
func ParseConfigEnv() (Config, error) {
	cfg := Config{WallPitch: -math.Pi / 2}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFromEnv returns the environment configuration, or the defaults
// when the environment is malformed.
func LoadConfigFromEnv() Config {
	cfg, err := ParseConfigEnv()
	if err != nil {
		return DefaultConfig()
	}
	return cfg
}

// Validate reports the first inconsistent setting.
func (c Config) Validate() error {
	switch {
	case c.CommitArea <= 0:
		return fmt.Errorf("config: commit area must be positive, got %v", c.CommitArea)
	case c.DragDebounce < 0:
		return fmt.Errorf("config: drag debounce must not be negative, got %v", c.DragDebounce)
	case c.PixelsPerMeter <= 0 && c.TargetWidth <= 0:
		return fmt.Errorf("config: need pixels per meter or a target width")
	case c.RailWidth < 0 || c.FrameDepth < 0:
		return fmt.Errorf("config: frame dimensions must not be negative")
	case c.MinScale <= 0 || c.MaxScale < c.MinScale:
		return fmt.Errorf("config: invalid scale range [%v, %v]", c.MinScale, c.MaxScale)
	}
	return nil
}

// frameSpec extracts the frame builder parameters.
func (c Config) frameSpec() FrameSpec {
	return FrameSpec{
		TargetWidth:    c.TargetWidth,
		PixelsPerMeter: c.PixelsPerMeter,
		RailWidth:      c.RailWidth,
		Depth:          c.FrameDepth,
		ChamferRadius:  c.ChamferRadius,
	}
}
