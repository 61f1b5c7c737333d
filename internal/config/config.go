// Package config defines the YAML simulation configuration and its
// validation. Loading merges the file over defaults, so partial configs are
// fine; validation fails fast before anything is built.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrBadVehicle = errors.New("invalid vehicle config")
	ErrBadSensor  = errors.New("invalid sensor config")
	ErrBadTrack   = errors.New("invalid track config")
	ErrBadRun     = errors.New("invalid run config")
)

type Config struct {
	Vehicle VehicleConfig `yaml:"vehicle"`
	Sensor  SensorConfig  `yaml:"sensor"`
	Track   TrackConfig   `yaml:"track"`
	Run     RunConfig     `yaml:"run"`
}

type VehicleConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Acceleration float64 `yaml:"acceleration"`
	MaxSpeed     float64 `yaml:"max_speed"`
	Friction     float64 `yaml:"friction"`
	TurnRate     float64 `yaml:"turn_rate"`
	StartLane    int     `yaml:"start_lane"`
}

type SensorConfig struct {
	RayCount  int     `yaml:"ray_count"`
	RayLength float64 `yaml:"ray_length"`
	RaySpread float64 `yaml:"ray_spread"`
}

type TrackConfig struct {
	CenterX   float64         `yaml:"center_x"`
	Width     float64         `yaml:"width"`
	LaneCount int             `yaml:"lane_count"`
	Obstacles []SegmentConfig `yaml:"obstacles,omitempty"`
}

// SegmentConfig is one border segment given by its two endpoints.
type SegmentConfig struct {
	AX float64 `yaml:"ax"`
	AY float64 `yaml:"ay"`
	BX float64 `yaml:"bx"`
	BY float64 `yaml:"by"`
}

type RunConfig struct {
	Ticks    int    `yaml:"ticks"`
	Parallel bool   `yaml:"parallel"`
	LogLevel string `yaml:"log_level"`
	LogEvery int    `yaml:"log_every"`
}

// Default returns the reference simulation: one three-lane road and the
// standard vehicle and five-ray sensor.
func Default() Config {
	return Config{
		Vehicle: VehicleConfig{
			Width:        30,
			Height:       50,
			Acceleration: 0.2,
			MaxSpeed:     3,
			Friction:     0.05,
			TurnRate:     0.03,
			StartLane:    1,
		},
		Sensor: SensorConfig{
			RayCount:  5,
			RayLength: 150,
			RaySpread: math.Pi / 2,
		},
		Track: TrackConfig{
			CenterX:   100,
			Width:     180,
			LaneCount: 3,
		},
		Run: RunConfig{
			Ticks:    600,
			LogLevel: "info",
			LogEvery: 60,
		},
	}
}

// Load decodes YAML from r over the defaults.
func Load(r io.Reader) (Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return c, nil
}

// LoadFile decodes YAML from the file at path over the defaults.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer func() { _ = f.Close() }()
	return Load(f)
}

func (c Config) Validate() error {
	switch {
	case c.Vehicle.Width <= 0 || c.Vehicle.Height <= 0:
		return fmt.Errorf("%w: dimensions must be positive", ErrBadVehicle)
	case c.Vehicle.Acceleration <= 0:
		return fmt.Errorf("%w: acceleration must be positive", ErrBadVehicle)
	case c.Vehicle.MaxSpeed <= 0:
		return fmt.Errorf("%w: max speed must be positive", ErrBadVehicle)
	case c.Vehicle.Friction < 0:
		return fmt.Errorf("%w: friction must not be negative", ErrBadVehicle)
	case c.Vehicle.TurnRate < 0:
		return fmt.Errorf("%w: turn rate must not be negative", ErrBadVehicle)
	}

	if c.Sensor.RayCount < 1 {
		return fmt.Errorf("%w: ray count must be at least 1", ErrBadSensor)
	}
	if c.Sensor.RayLength <= 0 {
		return fmt.Errorf("%w: ray length must be positive", ErrBadSensor)
	}
	if c.Sensor.RaySpread < 0 {
		return fmt.Errorf("%w: ray spread must not be negative", ErrBadSensor)
	}

	if c.Track.Width <= 0 {
		return fmt.Errorf("%w: width must be positive", ErrBadTrack)
	}
	if c.Track.LaneCount < 1 {
		return fmt.Errorf("%w: lane count must be at least 1", ErrBadTrack)
	}
	if c.Vehicle.StartLane < 0 || c.Vehicle.StartLane >= c.Track.LaneCount {
		return fmt.Errorf("%w: start lane %d outside track lanes", ErrBadVehicle, c.Vehicle.StartLane)
	}
	for i, o := range c.Track.Obstacles {
		if o.AX == o.BX && o.AY == o.BY {
			return fmt.Errorf("%w: obstacle %d is a zero-length segment", ErrBadTrack, i)
		}
	}

	if c.Run.Ticks < 1 {
		return fmt.Errorf("%w: ticks must be at least 1", ErrBadRun)
	}
	if c.Run.LogEvery < 1 {
		return fmt.Errorf("%w: log_every must be at least 1", ErrBadRun)
	}
	return nil
}
