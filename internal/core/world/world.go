// Package world owns the per-tick orchestration of independent
// vehicle units on a shared read-only track.
package world

import (
	"context"

	"github.com/google/uuid"

	"github.com/roadsim/roadsim/internal/core/track"
	"github.com/roadsim/roadsim/internal/core/vehicle"
	"github.com/roadsim/roadsim/pkg/concurrent"
)

// ControlFunc supplies a fresh control snapshot for one vehicle each tick,
// "currently held" semantics with no queuing.
type ControlFunc func() vehicle.Controls

// Hold returns a ControlFunc that reports the same snapshot every tick.
func Hold(c vehicle.Controls) ControlFunc {
	return func() vehicle.Controls { return c }
}

type unit struct {
	vehicle  *vehicle.Vehicle
	controls ControlFunc
}

// World steps a set of vehicles against one track. Vehicles share no mutable
// state, so stepping may run sequentially or with one goroutine per vehicle;
// within a single vehicle a tick is one atomic pass. World itself is mutated
// only by Add and Step and is not safe for concurrent use.
type World struct {
	track    *track.Track
	units    map[uuid.UUID]*unit
	order    []uuid.UUID
	parallel bool
	frame    int64
}

type Option func(*World)

// WithParallel steps vehicles concurrently, one goroutine each.
func WithParallel() Option {
	return func(w *World) { w.parallel = true }
}

func New(t *track.Track, opts ...Option) *World {
	w := &World{
		track: t,
		units: make(map[uuid.UUID]*unit),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Add registers a vehicle together with its control source and returns the
// id it is tracked under.
func (w *World) Add(v *vehicle.Vehicle, controls ControlFunc) uuid.UUID {
	id := uuid.New()
	w.units[id] = &unit{vehicle: v, controls: controls}
	w.order = append(w.order, id)
	return id
}

// Vehicle looks up a registered vehicle by id.
func (w *World) Vehicle(id uuid.UUID) (*vehicle.Vehicle, bool) {
	u, ok := w.units[id]
	if !ok {
		return nil, false
	}
	return u.vehicle, true
}

// Vehicles returns all registered vehicles in registration order.
func (w *World) Vehicles() []*vehicle.Vehicle {
	out := make([]*vehicle.Vehicle, 0, len(w.order))
	for _, id := range w.order {
		out = append(out, w.units[id].vehicle)
	}
	return out
}

// Track returns the shared track.
func (w *World) Track() *track.Track { return w.track }

// Frame returns the number of completed steps.
func (w *World) Frame() int64 { return w.frame }

// Damaged reports whether every registered vehicle has reached the damaged
// state. An empty world is not damaged.
func (w *World) Damaged() bool {
	if len(w.units) == 0 {
		return false
	}
	for _, u := range w.units {
		if !u.vehicle.Damaged() {
			return false
		}
	}
	return true
}

// Step advances every vehicle by one tick, sampling each control source
// fresh. Borders are shared read-only input.
func (w *World) Step(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	borders := w.track.Borders()
	if w.parallel {
		err := concurrent.ForEach(w.order, func(id uuid.UUID) error {
			u := w.units[id]
			u.vehicle.Tick(u.controls(), borders)
			return nil
		})
		if err != nil {
			return err
		}
	} else {
		for _, id := range w.order {
			u := w.units[id]
			u.vehicle.Tick(u.controls(), borders)
		}
	}

	w.frame++
	return nil
}
