// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package sim

import (
	"fmt"
	"sync"
)

// DefaultRest is the raw reading of a released simulated key.
const DefaultRest = 3121

// FullPressDrop is how far a fully pressed key pulls its reading down.
const FullPressDrop = 1181

// Bank is a grid of hall sensors read one row at a time. The column is
// whatever the shift register currently drives; with no single column
// driven every row reads 0.
type Bank struct {
	mu     sync.Mutex
	reg    *ShiftRegister
	rows   int
	cols   int
	raw    []uint16
	feeds  map[int][]uint16
	jitter uint16
	seed   uint32
	reads  int
}

// NewBank returns rows×cols sensors, all at DefaultRest.
func NewBank(reg *ShiftRegister, rows, cols int) *Bank {
	b := &Bank{
		reg:   reg,
		rows:  rows,
		cols:  cols,
		raw:   make([]uint16, rows*cols),
		feeds: make(map[int][]uint16),
		seed:  1,
	}
	for i := range b.raw {
		b.raw[i] = DefaultRest
	}
	return b
}

// SetJitter adds pseudo-random noise of up to ±amp raw units to each read.
func (b *Bank) SetJitter(amp uint16) {
	b.mu.Lock()
	b.jitter = amp
	b.mu.Unlock()
}

// SetRaw fixes the reading of one key.
func (b *Bank) SetRaw(row, col int, raw uint16) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i, ok := b.index(row, col); ok {
		b.raw[i] = raw
		delete(b.feeds, i)
	}
}

// Feed queues readings for one key; each read of that key consumes one.
// When the queue runs dry the key keeps reporting the last value.
func (b *Bank) Feed(row, col int, raws ...uint16) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i, ok := b.index(row, col); ok {
		b.feeds[i] = append(b.feeds[i], raws...)
	}
}

// Press sets a key to depth of full travel (0 released, 1 bottomed out).
func (b *Bank) Press(row, col int, depth float64) {
	depth = max(0, min(1, depth))
	b.SetRaw(row, col, DefaultRest-uint16(depth*FullPressDrop))
}

// Reads returns the number of row conversions performed.
func (b *Bank) Reads() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.reads
}

// ReadRow performs one conversion on row for the driven column.
func (b *Bank) ReadRow(row int) (uint16, error) {
	if row < 0 || row >= b.rows {
		return 0, fmt.Errorf("sim: row %d out of range", row)
	}
	col, ok := b.reg.Active()

	b.mu.Lock()
	defer b.mu.Unlock()
	b.reads++
	if !ok || col >= b.cols {
		return 0, nil
	}
	i := row*b.cols + col
	if q := b.feeds[i]; len(q) > 0 {
		b.raw[i] = q[0]
		b.feeds[i] = q[1:]
	}
	return b.noisy(b.raw[i]), nil
}

func (b *Bank) index(row, col int) (int, bool) {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return 0, false
	}
	return row*b.cols + col, true
}

func (b *Bank) noisy(v uint16) uint16 {
	if b.jitter == 0 {
		return v
	}
	b.seed = b.seed*1664525 + 1013904223
	span := uint32(b.jitter)*2 + 1
	n := int32(b.seed>>16%span) - int32(b.jitter)
	out := int32(v) + n
	if out < 0 {
		return 0
	}
	return uint16(out)
}
