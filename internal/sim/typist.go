// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package sim

import (
	"context"
	"math"
	"time"
)

// Typist walks across a Bank pressing one key at a time, each one pushed
// down and let go along a half sine over KeyPeriod.
type Typist struct {
	Bank      *Bank
	Rows      int
	Cols      int
	KeyPeriod time.Duration
	Tick      time.Duration

	start time.Time
	last  int
}

// NewTypist presses every key of a rows×cols bank in turn, one per period.
func NewTypist(b *Bank, rows, cols int, period time.Duration) *Typist {
	return &Typist{Bank: b, Rows: rows, Cols: cols, KeyPeriod: period, Tick: 5 * time.Millisecond, last: -1}
}

// Run moves the keys until ctx ends.
func (t *Typist) Run(ctx context.Context) error {
	t.start = time.Now()
	ticker := time.NewTicker(t.Tick)
	defer ticker.Stop()

	for {
		t.step(time.Since(t.start))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// step sets the bank for elapsed time since the start.
func (t *Typist) step(elapsed time.Duration) {
	n := t.Rows * t.Cols
	if n == 0 || t.KeyPeriod <= 0 {
		return
	}
	k := int(elapsed/t.KeyPeriod) % n
	phase := float64(elapsed%t.KeyPeriod) / float64(t.KeyPeriod)

	if t.last >= 0 && t.last != k {
		t.Bank.Press(t.last/t.Cols, t.last%t.Cols, 0)
	}
	t.last = k
	t.Bank.Press(k/t.Cols, k%t.Cols, math.Sin(math.Pi*phase))
}
