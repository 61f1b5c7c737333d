// Package sensor implements ray-fan perception: a fixed number of rays cast
// from a vehicle pose, each reporting its nearest border crossing.
package sensor

import (
	"errors"
	"fmt"
	"math"

	"github.com/roadsim/roadsim/internal/core/geometry"
)

// Defaults match the reference vehicle setup.
const (
	DefaultRayCount  = 5
	DefaultRayLength = 150.0
	DefaultRaySpread = math.Pi / 2
)

var (
	ErrNoRays           = errors.New("sensor requires at least one ray")
	ErrNonPositiveRange = errors.New("sensor ray length must be positive")
	ErrNegativeSpread   = errors.New("sensor ray spread must not be negative")
)

// Pose is the position and heading rays are cast from. Angle 0 points in the
// vehicle's forward direction; the trigonometric mapping matches vehicle
// movement so perception and kinematics stay geometrically consistent.
type Pose struct {
	X     float64
	Y     float64
	Angle float64
}

// Config holds the ray-fan parameters.
type Config struct {
	RayCount  int
	RayLength float64
	RaySpread float64
}

// DefaultConfig returns the reference five-ray quarter-circle fan.
func DefaultConfig() Config {
	return Config{
		RayCount:  DefaultRayCount,
		RayLength: DefaultRayLength,
		RaySpread: DefaultRaySpread,
	}
}

// Reading is one ray's nearest border crossing. Valid is false when the ray
// reached its full length without touching a border; that is a normal
// outcome, not an error.
type Reading struct {
	Hit   geometry.Intersection
	Valid bool
}

// Sensor casts a fan of rays and keeps the latest rays and readings. Both
// are recomputed wholesale on every Sense call; nothing carries over between
// ticks. A Sensor is exclusively owned by one vehicle and is not safe for
// concurrent use.
type Sensor struct {
	rayCount  int
	rayLength float64
	raySpread float64

	rays     []geometry.Segment
	readings []Reading
}

// New validates cfg and builds a sensor.
func New(cfg Config) (*Sensor, error) {
	switch {
	case cfg.RayCount < 1:
		return nil, fmt.Errorf("ray count %d: %w", cfg.RayCount, ErrNoRays)
	case cfg.RayLength <= 0:
		return nil, fmt.Errorf("ray length %v: %w", cfg.RayLength, ErrNonPositiveRange)
	case cfg.RaySpread < 0:
		return nil, fmt.Errorf("ray spread %v: %w", cfg.RaySpread, ErrNegativeSpread)
	}
	return &Sensor{
		rayCount:  cfg.RayCount,
		rayLength: cfg.RayLength,
		raySpread: cfg.RaySpread,
		rays:      make([]geometry.Segment, 0, cfg.RayCount),
		readings:  make([]Reading, 0, cfg.RayCount),
	}, nil
}

// RayCount returns the fixed number of rays in the fan.
func (s *Sensor) RayCount() int { return s.rayCount }

// CastRays rebuilds the ray fan from pose, ordered from the leftmost spread
// angle to the rightmost. Each ray starts at the pose position and extends
// rayLength along its angle.
func (s *Sensor) CastRays(pose Pose) []geometry.Segment {
	s.rays = s.rays[:0]
	for i := 0; i < s.rayCount; i++ {
		// A single ray sits at the middle of the spread.
		t := 0.5
		if s.rayCount > 1 {
			t = float64(i) / float64(s.rayCount-1)
		}
		angle := geometry.Lerp(s.raySpread/2, -s.raySpread/2, t) + pose.Angle

		s.rays = append(s.rays, geometry.Segment{
			A: geometry.Point{X: pose.X, Y: pose.Y},
			B: geometry.Point{
				X: pose.X - math.Sin(angle)*s.rayLength,
				Y: pose.Y - math.Cos(angle)*s.rayLength,
			},
		})
	}
	return s.rays
}

// Sense recasts the fan from pose and records, for every ray independently,
// the border crossing with the smallest offset along the ray. The result
// always has exactly RayCount entries in ray order.
func (s *Sensor) Sense(pose Pose, borders []geometry.Segment) []Reading {
	s.CastRays(pose)
	s.readings = s.readings[:0]
	for _, ray := range s.rays {
		s.readings = append(s.readings, nearestTouch(ray, borders))
	}
	return s.readings
}

// nearestTouch tracks the minimal-offset crossing directly during the scan,
// so floating rounding cannot split the minimum from its re-lookup.
func nearestTouch(ray geometry.Segment, borders []geometry.Segment) Reading {
	var best Reading
	for _, border := range borders {
		hit, ok := geometry.IntersectSegments(ray, border)
		if !ok {
			continue
		}
		if !best.Valid || hit.Offset < best.Hit.Offset {
			best = Reading{Hit: hit, Valid: true}
		}
	}
	return best
}

// Rays returns the fan from the latest cast. The slice is reused across
// ticks; callers must not retain or mutate it.
func (s *Sensor) Rays() []geometry.Segment { return s.rays }

// Readings returns the readings from the latest Sense call, parallel to
// Rays. Same retention rule as Rays.
func (s *Sensor) Readings() []Reading { return s.readings }

// Endpoint returns where a renderer should stop drawing ray i: the reading
// point when the ray touched a border, the ray terminus otherwise.
func (s *Sensor) Endpoint(i int) geometry.Point {
	if r := s.readings[i]; r.Valid {
		return r.Hit.Point()
	}
	return s.rays[i].B
}
