// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package clock provides the suspension points used by the scan loop.
//
// Every settle delay, pulse width and idle yield goes through a Sleeper so the
// task owning the ADC and the column lines gives up the CPU while it waits,
// and so tests can replace real time with a recorder.
package clock

import (
	"context"
	"time"
)

// Sleeper suspends the caller for at least d, or until ctx is done.
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}

// Timer is the Sleeper backed by the runtime timer.
type Timer struct{}

// Sleep waits for d. A non-positive d still checks ctx.
func (Timer) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Func adapts a plain function to the Sleeper interface.
type Func func(ctx context.Context, d time.Duration) error

func (f Func) Sleep(ctx context.Context, d time.Duration) error { return f(ctx, d) }
