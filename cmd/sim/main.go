// Command sim runs the road simulation headless: it builds a track and a
// vehicle from YAML config, drives the vehicle forward tick by tick, and
// logs pose and sensor telemetry until the tick budget runs out, the vehicle
// is damaged, or the process is signalled.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/roadsim/roadsim/internal/config"
	"github.com/roadsim/roadsim/internal/core/geometry"
	"github.com/roadsim/roadsim/internal/core/observability/log"
	"github.com/roadsim/roadsim/internal/core/sensor"
	"github.com/roadsim/roadsim/internal/core/track"
	"github.com/roadsim/roadsim/internal/core/vehicle"
	"github.com/roadsim/roadsim/internal/core/world"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to YAML simulation config")
		ticks      = flag.Int("ticks", 0, "override the configured tick budget")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadFile(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "load config:", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if *ticks > 0 {
		cfg.Run.Ticks = *ticks
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, "invalid config:", err)
		os.Exit(1)
	}

	logger := log.New(log.ParseLevel(cfg.Run.LogLevel))

	if err := run(cfg, logger); err != nil {
		logger.Fatal("simulation failed", log.Err(err))
	}
}

func run(cfg config.Config, logger log.Log) error {
	obstacles := make([]geometry.Segment, 0, len(cfg.Track.Obstacles))
	for _, o := range cfg.Track.Obstacles {
		obstacles = append(obstacles, geometry.Segment{
			A: geometry.Point{X: o.AX, Y: o.AY},
			B: geometry.Point{X: o.BX, Y: o.BY},
		})
	}

	tr, err := track.New(cfg.Track.CenterX, cfg.Track.Width, cfg.Track.LaneCount, obstacles...)
	if err != nil {
		return fmt.Errorf("build track: %w", err)
	}

	v, err := vehicle.New(tr.LaneCenter(cfg.Vehicle.StartLane), 0, vehicle.Config{
		Width:        cfg.Vehicle.Width,
		Height:       cfg.Vehicle.Height,
		Acceleration: cfg.Vehicle.Acceleration,
		MaxSpeed:     cfg.Vehicle.MaxSpeed,
		Friction:     cfg.Vehicle.Friction,
		TurnRate:     cfg.Vehicle.TurnRate,
		Sensor: sensor.Config{
			RayCount:  cfg.Sensor.RayCount,
			RayLength: cfg.Sensor.RayLength,
			RaySpread: cfg.Sensor.RaySpread,
		},
	})
	if err != nil {
		return fmt.Errorf("build vehicle: %w", err)
	}

	opts := []world.Option{}
	if cfg.Run.Parallel {
		opts = append(opts, world.WithParallel())
	}
	w := world.New(tr, opts...)
	id := w.Add(v, world.Hold(vehicle.Controls{Forward: true}))

	logger = logger.With(
		log.String("vehicle", id.String()),
		log.Uint64("track", tr.Fingerprint()),
	)
	logger.Info("simulation started",
		log.Int("ticks", cfg.Run.Ticks),
		log.Int("lanes", tr.LaneCount()),
		log.Int("borders", len(tr.Borders())),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-stopCh
		cancel()
	}()

	for i := 0; i < cfg.Run.Ticks; i++ {
		if err := w.Step(ctx); err != nil {
			logger.Warn("simulation interrupted", log.Int64("frame", w.Frame()), log.Err(err))
			return nil
		}

		if v.Damaged() {
			logger.Info("vehicle damaged",
				log.Int64("frame", w.Frame()),
				log.Float64("x", v.Position().X),
				log.Float64("y", v.Position().Y),
			)
			break
		}
		if w.Frame()%int64(cfg.Run.LogEvery) == 0 {
			logTelemetry(logger, w, v)
		}
	}

	logger.Info("simulation finished",
		log.Int64("frames", w.Frame()),
		log.Bool("damaged", v.Damaged()),
	)
	return nil
}

func logTelemetry(logger log.Log, w *world.World, v *vehicle.Vehicle) {
	readings := v.Sensor().Readings()
	touches := 0
	nearest := 1.0
	for _, r := range readings {
		if !r.Valid {
			continue
		}
		touches++
		if r.Hit.Offset < nearest {
			nearest = r.Hit.Offset
		}
	}

	logger.Info("tick",
		log.Int64("frame", w.Frame()),
		log.Float64("x", v.Position().X),
		log.Float64("y", v.Position().Y),
		log.Float64("angle", v.Angle()),
		log.Float64("speed", v.Speed()),
		log.Int("ray_touches", touches),
		log.Float64("nearest_offset", nearest),
	)
}
