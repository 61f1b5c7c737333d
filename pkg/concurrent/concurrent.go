package concurrent

import (
	"sync"

	"golang.org/x/sync/errgroup"
)

// ForEach runs the action function for each element of the slice in a
// separate goroutine. It waits for all goroutines to finish. If action
// returns an error, it returns the first error encountered.
func ForEach[T any](items []T, action func(T) error) error {
	errGroup := errgroup.Group{}
	for _, item := range items {
		item := item
		errGroup.Go(func() error {
			return action(item)
		})
	}
	return errGroup.Wait()
}

// ForEachMute runs the action function for each element of the slice in a
// separate goroutine and waits for all goroutines, ignoring any errors.
func ForEachMute[T any](items []T, action func(T) error) {
	wg := sync.WaitGroup{}
	for _, item := range items {
		wg.Add(1)
		go func(item T) {
			defer wg.Done()
			_ = action(item)
		}(item)
	}
	wg.Wait()
}
