// Package track builds the read-only border geometry the core senses and
// collides against: a straight multi-lane road plus any extra obstacle
// segments.
package track

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/cespare/xxhash/v2"

	"github.com/roadsim/roadsim/internal/core/geometry"
)

// The road is effectively unbounded along its length; borders extend this
// far in both directions.
const longitude = 1e6

var (
	ErrNonPositiveWidth = errors.New("track width must be positive")
	ErrNoLanes          = errors.New("track requires at least one lane")
)

// Track is a straight vertical road centered on centerX, with a left and a
// right border and optional extra obstacle segments. Borders never change
// after construction.
type Track struct {
	centerX   float64
	width     float64
	laneCount int
	borders   []geometry.Segment
}

// New validates the layout and precomputes the border set.
func New(centerX, width float64, laneCount int, extra ...geometry.Segment) (*Track, error) {
	if width <= 0 {
		return nil, fmt.Errorf("width %v: %w", width, ErrNonPositiveWidth)
	}
	if laneCount < 1 {
		return nil, fmt.Errorf("lane count %d: %w", laneCount, ErrNoLanes)
	}

	left := centerX - width/2
	right := centerX + width/2

	borders := make([]geometry.Segment, 0, 2+len(extra))
	borders = append(borders,
		geometry.Segment{
			A: geometry.Point{X: left, Y: -longitude},
			B: geometry.Point{X: left, Y: longitude},
		},
		geometry.Segment{
			A: geometry.Point{X: right, Y: -longitude},
			B: geometry.Point{X: right, Y: longitude},
		},
	)
	borders = append(borders, extra...)

	return &Track{
		centerX:   centerX,
		width:     width,
		laneCount: laneCount,
		borders:   borders,
	}, nil
}

// Borders returns every border segment. Callers treat the slice as
// read-only; the track never mutates it after construction.
func (t *Track) Borders() []geometry.Segment { return t.borders }

// LaneCount returns the number of lanes.
func (t *Track) LaneCount() int { return t.laneCount }

// LaneCenter returns the x coordinate of the center of the given lane,
// counted from the left. Out-of-range lanes clamp to the nearest edge lane.
func (t *Track) LaneCenter(lane int) float64 {
	if lane < 0 {
		lane = 0
	}
	if lane > t.laneCount-1 {
		lane = t.laneCount - 1
	}
	laneWidth := t.width / float64(t.laneCount)
	return t.centerX - t.width/2 + laneWidth/2 + float64(lane)*laneWidth
}

// Fingerprint returns a stable 64-bit hash of the border layout, used to tag
// telemetry from runs on the same track.
func (t *Track) Fingerprint() uint64 {
	digest := xxhash.New()
	var buf [8]byte
	for _, s := range t.borders {
		for _, f := range [4]float64{s.A.X, s.A.Y, s.B.X, s.B.Y} {
			binary.LittleEndian.PutUint64(buf[:], math.Float64bits(f))
			_, _ = digest.Write(buf[:])
		}
	}
	return digest.Sum64()
}
