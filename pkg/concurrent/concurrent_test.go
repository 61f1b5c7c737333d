package concurrent

import (
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestForEach(t *testing.T) {
	t.Run("Visits Every Element", func(t *testing.T) {
		var sum int64
		err := ForEach([]int64{1, 2, 3, 4}, func(v int64) error {
			atomic.AddInt64(&sum, v)
			return nil
		})
		require.NoError(t, err)
		require.Equal(t, int64(10), sum)
	})

	t.Run("Propagates First Error", func(t *testing.T) {
		boom := errors.New("boom")
		err := ForEach([]int{1, 2, 3}, func(v int) error {
			if v == 2 {
				return boom
			}
			return nil
		})
		require.ErrorIs(t, err, boom)
	})

	t.Run("Empty Slice", func(t *testing.T) {
		require.NoError(t, ForEach(nil, func(int) error { return nil }))
	})
}

func TestForEachMute(t *testing.T) {
	var calls int64
	ForEachMute([]int{1, 2, 3}, func(int) error {
		atomic.AddInt64(&calls, 1)
		return errors.New("ignored")
	})
	require.Equal(t, int64(3), calls)
}
