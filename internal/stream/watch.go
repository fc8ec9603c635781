package stream

import (
	"context"

	"apt-be-svc/pkg/logger"
)

// Loader reads the full current snapshot a view is derived from.
type Loader[T any] func(ctx context.Context) (T, error)

// Watch emits a fresh snapshot once at start and again after every signal on sub.
// Delivery is latest-wins: a slow reader skips intermediate snapshots but always
// ends up with the newest one. A failed load keeps the previous snapshot and
// waits for the next signal. The channel closes when ctx is done, and sub is
// closed with it.
func Watch[T any](ctx context.Context, sub *Subscription, load Loader[T], log *logger.Logger) <-chan T {
	out := make(chan T, 1)

	go func() {
		defer close(out)
		defer sub.Close()

		reload := func() {
			v, err := load(ctx)
			if err != nil {
				if ctx.Err() == nil {
					log.WithError(err).WithField("collection", sub.collection).Warn("Snapshot reload failed, keeping previous state")
				}
				return
			}
			select {
			case <-out:
			default:
			}
			out <- v
		}

		reload()
		for {
			select {
			case <-ctx.Done():
				return
			case <-sub.C():
				reload()
			}
		}
	}()

	return out
}
