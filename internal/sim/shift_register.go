// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package sim models the keyboard hardware well enough to run the scanner
// without a board: a 74HC164 chain fed by three GPIO lines, and a bank of
// hall sensors whose readings depend on which column the chain drives.
package sim

import (
	"math/bits"
	"sync"

	"periph.io/x/conn/v3/gpio"
)

// ShiftRegister is a chain of cascaded 74HC164s, width outputs long.
type ShiftRegister struct {
	mu     sync.Mutex
	width  int
	state  uint64
	ds, cp gpio.Level
	mr     gpio.Level

	clocks int
	resets int
}

// NewShiftRegister returns a chain with width outputs (1..64), cleared.
func NewShiftRegister(width int) *ShiftRegister {
	if width < 1 {
		width = 1
	}
	if width > 64 {
		width = 64
	}
	return &ShiftRegister{width: width, mr: gpio.High}
}

// Line is a simulated GPIO output.
type Line struct {
	name string
	out  func(gpio.Level)
}

// Out drives the line.
func (l *Line) Out(level gpio.Level) error {
	l.out(level)
	return nil
}

func (l *Line) String() string { return l.name }

// Data returns the DS input.
func (r *ShiftRegister) Data() *Line {
	return &Line{name: "DS", out: func(level gpio.Level) {
		r.mu.Lock()
		r.ds = level
		r.mu.Unlock()
	}}
}

// Clock returns the CP input. Data shifts in on the rising edge.
func (r *ShiftRegister) Clock() *Line {
	return &Line{name: "CP", out: func(level gpio.Level) {
		r.mu.Lock()
		defer r.mu.Unlock()
		rising := r.cp == gpio.Low && level == gpio.High
		r.cp = level
		if !rising || r.mr == gpio.Low {
			return
		}
		r.clocks++
		r.state <<= 1
		if r.ds == gpio.High {
			r.state |= 1
		}
		r.state &= r.mask()
	}}
}

// Reset returns the MR input. Low clears every output.
func (r *ShiftRegister) Reset() *Line {
	return &Line{name: "MR", out: func(level gpio.Level) {
		r.mu.Lock()
		defer r.mu.Unlock()
		if level == gpio.Low && r.mr == gpio.High {
			r.resets++
		}
		r.mr = level
		if level == gpio.Low {
			r.state = 0
		}
	}}
}

func (r *ShiftRegister) mask() uint64 {
	if r.width == 64 {
		return ^uint64(0)
	}
	return 1<<uint(r.width) - 1
}

// Outputs returns the raw output word, bit i being Q(i).
func (r *ShiftRegister) Outputs() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Active returns the single driven column. It reports false when no output
// or more than one output is high.
func (r *ShiftRegister) Active() (int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if bits.OnesCount64(r.state) != 1 {
		return 0, false
	}
	return bits.TrailingZeros64(r.state), true
}

// Counts returns the number of clock edges and reset pulses seen.
func (r *ShiftRegister) Counts() (clocks, resets int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clocks, r.resets
}
