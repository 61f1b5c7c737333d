// Package vehicle implements the kinematic vehicle model, its rotating
// rectangular footprint, and border collision leading to the terminal
// damaged state.
package vehicle

import (
	"errors"
	"fmt"
	"math"

	"github.com/roadsim/roadsim/internal/core/geometry"
	"github.com/roadsim/roadsim/internal/core/sensor"
)

// Reference kinematic constants.
const (
	DefaultWidth        = 30.0
	DefaultHeight       = 50.0
	DefaultAcceleration = 0.2
	DefaultMaxSpeed     = 3.0
	DefaultFriction     = 0.05
	DefaultTurnRate     = 0.03
)

var (
	ErrNonPositiveSize  = errors.New("vehicle dimensions must be positive")
	ErrNonPositiveSpeed = errors.New("vehicle max speed must be positive")
	ErrBadAcceleration  = errors.New("vehicle acceleration must be positive")
	ErrNegativeFriction = errors.New("vehicle friction must not be negative")
	ErrNegativeTurnRate = errors.New("vehicle turn rate must not be negative")
)

// Controls is a per-tick snapshot of the driver's held inputs. It is sampled
// fresh each tick, nothing is queued or buffered.
type Controls struct {
	Forward bool
	Reverse bool
	Left    bool
	Right   bool
}

// Config holds the vehicle's dimensions and kinematic constants plus the
// parameters of its owned sensor.
type Config struct {
	Width        float64
	Height       float64
	Acceleration float64
	MaxSpeed     float64
	Friction     float64
	TurnRate     float64

	Sensor sensor.Config
}

// DefaultConfig returns the reference vehicle.
func DefaultConfig() Config {
	return Config{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		Acceleration: DefaultAcceleration,
		MaxSpeed:     DefaultMaxSpeed,
		Friction:     DefaultFriction,
		TurnRate:     DefaultTurnRate,
		Sensor:       sensor.DefaultConfig(),
	}
}

// Vehicle is a single simulated vehicle together with its exclusively owned
// sensor. All state is mutated only by Tick; a Vehicle is not safe for
// concurrent use, but distinct vehicles share nothing and may be ticked in
// parallel.
type Vehicle struct {
	x     float64
	y     float64
	angle float64
	speed float64

	width        float64
	height       float64
	acceleration float64
	maxSpeed     float64
	friction     float64
	turnRate     float64

	damaged bool
	polygon geometry.Polygon
	sensor  *sensor.Sensor
}

// New validates cfg, builds the owned sensor, and places the vehicle at
// (x, y) with heading 0 (pointing up the road).
func New(x, y float64, cfg Config) (*Vehicle, error) {
	switch {
	case cfg.Width <= 0 || cfg.Height <= 0:
		return nil, fmt.Errorf("size %vx%v: %w", cfg.Width, cfg.Height, ErrNonPositiveSize)
	case cfg.MaxSpeed <= 0:
		return nil, fmt.Errorf("max speed %v: %w", cfg.MaxSpeed, ErrNonPositiveSpeed)
	case cfg.Acceleration <= 0:
		return nil, fmt.Errorf("acceleration %v: %w", cfg.Acceleration, ErrBadAcceleration)
	case cfg.Friction < 0:
		return nil, fmt.Errorf("friction %v: %w", cfg.Friction, ErrNegativeFriction)
	case cfg.TurnRate < 0:
		return nil, fmt.Errorf("turn rate %v: %w", cfg.TurnRate, ErrNegativeTurnRate)
	}

	snsr, err := sensor.New(cfg.Sensor)
	if err != nil {
		return nil, fmt.Errorf("sensor: %w", err)
	}

	v := &Vehicle{
		x:            x,
		y:            y,
		width:        cfg.Width,
		height:       cfg.Height,
		acceleration: cfg.Acceleration,
		maxSpeed:     cfg.MaxSpeed,
		friction:     cfg.Friction,
		turnRate:     cfg.TurnRate,
		sensor:       snsr,
	}
	v.polygon = v.footprint()
	return v, nil
}

// Tick advances one simulation step: kinematics, footprint rebuild, border
// collision, then perception. Once damaged, pose and footprint stay frozen
// at their last pre-damage values while perception keeps running.
func (v *Vehicle) Tick(c Controls, borders []geometry.Segment) {
	if !v.damaged {
		v.move(c)
		v.polygon = v.footprint()
		v.damaged = v.polygon.IntersectsAny(borders)
	}
	v.sensor.Sense(v.Pose(), borders)
}

func (v *Vehicle) move(c Controls) {
	if c.Forward {
		v.speed += v.acceleration
	}
	if c.Reverse {
		v.speed -= v.acceleration
	}

	// Reverse is capped at half the forward maximum.
	if v.speed > v.maxSpeed {
		v.speed = v.maxSpeed
	}
	if v.speed < -v.maxSpeed/2 {
		v.speed = -v.maxSpeed / 2
	}

	if v.speed > 0 {
		v.speed -= v.friction
	}
	if v.speed < 0 {
		v.speed += v.friction
	}
	// Snap to exactly zero so friction cannot oscillate around it.
	if math.Abs(v.speed) < v.friction {
		v.speed = 0
	}

	if v.speed != 0 {
		// Steering follows the direction of travel: flipped in reverse.
		flip := 1.0
		if v.speed < 0 {
			flip = -1
		}
		if c.Left {
			v.angle += flip * v.turnRate
		}
		if c.Right {
			v.angle -= flip * v.turnRate
		}
	}

	v.x -= math.Sin(v.angle) * v.speed
	v.y -= math.Cos(v.angle) * v.speed
}

// footprint computes the four rectangle corners from the pose without a
// rotation matrix: each corner sits at distance radius from the center, at
// heading plus or minus the diagonal half-angle.
func (v *Vehicle) footprint() geometry.Polygon {
	radius := math.Hypot(v.width, v.height) / 2
	alpha := math.Atan2(v.width, v.height)

	corner := func(angle float64) geometry.Point {
		return geometry.Point{
			X: v.x - math.Sin(angle)*radius,
			Y: v.y - math.Cos(angle)*radius,
		}
	}
	return geometry.Polygon{
		corner(v.angle - alpha),
		corner(v.angle + alpha),
		corner(math.Pi + v.angle - alpha),
		corner(math.Pi + v.angle + alpha),
	}
}

// Pose returns the current position and heading for ray casting.
func (v *Vehicle) Pose() sensor.Pose {
	return sensor.Pose{X: v.x, Y: v.y, Angle: v.angle}
}

// Position returns the vehicle center.
func (v *Vehicle) Position() geometry.Point { return geometry.Point{X: v.x, Y: v.y} }

// Angle returns the heading in radians, 0 pointing up the road.
func (v *Vehicle) Angle() float64 { return v.angle }

// Speed returns the scalar speed, negative in reverse.
func (v *Vehicle) Speed() float64 { return v.speed }

// Damaged reports whether the vehicle has hit a border. The state is
// terminal.
func (v *Vehicle) Damaged() bool { return v.damaged }

// Polygon returns the current footprint for rendering or external collision
// queries. Frozen after damage.
func (v *Vehicle) Polygon() geometry.Polygon { return v.polygon }

// Sensor exposes the owned sensor so a renderer can read rays and readings.
func (v *Vehicle) Sensor() *sensor.Sensor { return v.sensor }
