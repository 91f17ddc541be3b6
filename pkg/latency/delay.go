// Package latency simulates network latency at the presentation boundary.
package latency

import (
	"context"
	"time"
)

// Delayer waits before an effect is applied. Wait returns the context error
// when the caller goes away first, in which case the effect must be dropped.
type Delayer interface {
	Wait(ctx context.Context) error
}

type fixed struct {
	d time.Duration
}

// Fixed waits d on every call. A non-positive d does not wait.
func Fixed(d time.Duration) Delayer {
	if d <= 0 {
		return None()
	}
	return fixed{d: d}
}

func (f fixed) Wait(ctx context.Context) error {
	timer := time.NewTimer(f.d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type none struct{}

func None() Delayer {
	return none{}
}

func (none) Wait(ctx context.Context) error {
	return ctx.Err()
}

// Run applies effect after d waits, or not at all.
func Run[T any](ctx context.Context, d Delayer, effect func() (T, error)) (T, error) {
	if err := d.Wait(ctx); err != nil {
		var zero T
		return zero, err
	}
	return effect()
}
