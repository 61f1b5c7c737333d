package geometry

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLerp(t *testing.T) {
	require.Equal(t, 0.0, Lerp(0, 10, 0))
	require.Equal(t, 10.0, Lerp(0, 10, 1))
	require.Equal(t, 5.0, Lerp(0, 10, 0.5))

	// Extrapolation is allowed, t is never clamped.
	require.Equal(t, 20.0, Lerp(0, 10, 2))
	require.Equal(t, -10.0, Lerp(0, 10, -1))
}

func TestIntersect(t *testing.T) {
	t.Run("Interior Crossing", func(t *testing.T) {
		// AB horizontal, CD vertical, crossing at (2,0): a quarter of the
		// way along AB and halfway along CD.
		a, b := Point{X: 0, Y: 0}, Point{X: 8, Y: 0}
		c, d := Point{X: 2, Y: -2}, Point{X: 2, Y: 2}

		hit, ok := Intersect(a, b, c, d)
		require.True(t, ok)
		require.InDelta(t, 2.0, hit.X, 1e-12)
		require.InDelta(t, 0.0, hit.Y, 1e-12)
		require.InDelta(t, 0.25, hit.Offset, 1e-12)
		require.Greater(t, hit.Offset, 0.0)
		require.Less(t, hit.Offset, 1.0)
	})

	t.Run("Offset Measured Along First Segment", func(t *testing.T) {
		a, b := Point{X: 0, Y: 0}, Point{X: 8, Y: 0}
		c, d := Point{X: 2, Y: -2}, Point{X: 2, Y: 2}

		fwd, ok := Intersect(a, b, c, d)
		require.True(t, ok)
		rev, ok := Intersect(c, d, a, b)
		require.True(t, ok)

		// Same geometric point, different parametric interpretation.
		require.InDelta(t, fwd.X, rev.X, 1e-12)
		require.InDelta(t, fwd.Y, rev.Y, 1e-12)
		require.InDelta(t, 0.25, fwd.Offset, 1e-12)
		require.InDelta(t, 0.5, rev.Offset, 1e-12)
	})

	t.Run("Axis Interpolation", func(t *testing.T) {
		// Crossing on a diagonal segment: x and y must each be interpolated
		// along their own axis pair.
		a, b := Point{X: 0, Y: 0}, Point{X: 10, Y: 20}
		c, d := Point{X: 0, Y: 10}, Point{X: 10, Y: 10}

		hit, ok := Intersect(a, b, c, d)
		require.True(t, ok)
		require.InDelta(t, 5.0, hit.X, 1e-12)
		require.InDelta(t, 10.0, hit.Y, 1e-12)
		require.InDelta(t, 0.5, hit.Offset, 1e-12)
	})

	t.Run("Parallel", func(t *testing.T) {
		a, b := Point{X: 0, Y: 5}, Point{X: 10, Y: 5}
		c, d := Point{X: 0, Y: 7}, Point{X: 10, Y: 7}

		_, ok := Intersect(a, b, c, d)
		require.False(t, ok)
	})

	t.Run("Collinear Overlap Is No Crossing", func(t *testing.T) {
		// Two horizontal segments sharing the same y and overlapping in x.
		a, b := Point{X: 0, Y: 3}, Point{X: 10, Y: 3}
		c, d := Point{X: 5, Y: 3}, Point{X: 15, Y: 3}

		_, ok := Intersect(a, b, c, d)
		require.False(t, ok)
	})

	t.Run("Crossing Outside Segment Bounds", func(t *testing.T) {
		// The infinite lines cross, the segments do not.
		a, b := Point{X: 0, Y: 0}, Point{X: 1, Y: 0}
		c, d := Point{X: 5, Y: -1}, Point{X: 5, Y: 1}

		_, ok := Intersect(a, b, c, d)
		require.False(t, ok)
	})

	t.Run("Touch At Endpoint", func(t *testing.T) {
		// t and u live in the closed interval, an endpoint touch counts.
		a, b := Point{X: 0, Y: 0}, Point{X: 4, Y: 0}
		c, d := Point{X: 4, Y: -2}, Point{X: 4, Y: 2}

		hit, ok := Intersect(a, b, c, d)
		require.True(t, ok)
		require.InDelta(t, 1.0, hit.Offset, 1e-12)
	})
}
