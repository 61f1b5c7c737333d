package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	require.Equal(t, 5, c.Sensor.RayCount)
	require.Equal(t, 3, c.Track.LaneCount)
}

func TestLoad(t *testing.T) {
	t.Run("Partial Config Merges Over Defaults", func(t *testing.T) {
		in := `
track:
  width: 240
  lane_count: 4
run:
  ticks: 100
`
		c, err := Load(strings.NewReader(in))
		require.NoError(t, err)
		require.NoError(t, c.Validate())

		require.Equal(t, 240.0, c.Track.Width)
		require.Equal(t, 4, c.Track.LaneCount)
		require.Equal(t, 100, c.Run.Ticks)
		// Untouched sections keep their defaults.
		require.Equal(t, 30.0, c.Vehicle.Width)
		require.Equal(t, 150.0, c.Sensor.RayLength)
	})

	t.Run("Obstacles", func(t *testing.T) {
		in := `
track:
  obstacles:
    - {ax: 10, ay: -200, bx: 190, by: -200}
`
		c, err := Load(strings.NewReader(in))
		require.NoError(t, err)
		require.NoError(t, c.Validate())
		require.Len(t, c.Track.Obstacles, 1)
		require.Equal(t, -200.0, c.Track.Obstacles[0].AY)
	})

	t.Run("Malformed YAML", func(t *testing.T) {
		_, err := Load(strings.NewReader("track: ["))
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		err    error
	}{
		{name: "Zero Vehicle Width", mutate: func(c *Config) { c.Vehicle.Width = 0 }, err: ErrBadVehicle},
		{name: "Negative Friction", mutate: func(c *Config) { c.Vehicle.Friction = -1 }, err: ErrBadVehicle},
		{name: "Start Lane Out Of Range", mutate: func(c *Config) { c.Vehicle.StartLane = 3 }, err: ErrBadVehicle},
		{name: "Zero Rays", mutate: func(c *Config) { c.Sensor.RayCount = 0 }, err: ErrBadSensor},
		{name: "Zero Track Width", mutate: func(c *Config) { c.Track.Width = 0 }, err: ErrBadTrack},
		{name: "Zero-Length Obstacle", mutate: func(c *Config) {
			c.Track.Obstacles = []SegmentConfig{{AX: 1, AY: 1, BX: 1, BY: 1}}
		}, err: ErrBadTrack},
		{name: "Zero Ticks", mutate: func(c *Config) { c.Run.Ticks = 0 }, err: ErrBadRun},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			require.ErrorIs(t, c.Validate(), tt.err)
		})
	}
}
