// Package clock provides helpers for periodic work.
package clock

import (
	"context"
	"time"
)

// Every calls fn immediately and then after each interval until ctx is done. It
// returns the context error that stopped it.
func Every(ctx context.Context, interval time.Duration, fn func(context.Context)) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fn(ctx)
		if err := wait(ctx, interval); err != nil {
			return err
		}
	}
}

// wait blocks for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
