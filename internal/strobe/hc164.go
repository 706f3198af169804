// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package strobe selects matrix columns through a 74HC164 serial-in,
// parallel-out shift register used as a walking-bit column driver.
package strobe

import (
	"context"
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"

	"github.com/relabs-tech/hall_matrix/internal/clock"
)

// Line is the part of a GPIO output the strobe needs. gpio.PinOut satisfies it.
type Line interface {
	Out(l gpio.Level) error
}

// Timing holds the pulse widths of the shift register protocol.
type Timing struct {
	BitDelay   time.Duration // data setup and clock half-period
	ResetPulse time.Duration // master-reset low time and recovery
}

// DefaultTiming matches the HC164 wiring on the reference board.
var DefaultTiming = Timing{
	BitDelay:   1 * time.Microsecond,
	ResetPulse: 2 * time.Microsecond,
}

// HC164 drives the DS (data), CP (clock) and MR (master reset, active low)
// lines. Select(0) re-arms a single high bit at Q0; every Advance shifts it
// one output further. Skipping an Advance or selecting out of order leaves
// the hardware bit on a different column than the caller believes; the
// register has no readback, so only the tracked position below can notice.
type HC164 struct {
	ds, cp, mr Line
	timing     Timing
	sleep      clock.Sleeper

	col     int // tracked walking-bit position, -1 when unknown
	desyncs uint32
}

// New returns a strobe over the three lines. A nil sleeper uses clock.Timer.
func New(ds, cp, mr Line, timing Timing, sleep clock.Sleeper) *HC164 {
	if sleep == nil {
		sleep = clock.Timer{}
	}
	return &HC164{ds: ds, cp: cp, mr: mr, timing: timing, sleep: sleep, col: -1}
}

// Select makes col the active column. Only column 0 touches the lines:
// the register is reset and a single high bit shifted in. For col > 0 the
// bit was already moved there by Advance.
func (h *HC164) Select(ctx context.Context, col int) error {
	if col != 0 {
		if h.col != col {
			h.desyncs++
			assertInSync(h.col, col)
		}
		return nil
	}

	h.col = -1
	if err := h.reset(ctx); err != nil {
		return err
	}
	if err := h.write(h.ds, gpio.High, "ds"); err != nil {
		return err
	}
	if err := h.sleep.Sleep(ctx, h.timing.BitDelay); err != nil {
		return err
	}
	if err := h.pulseClock(ctx); err != nil {
		return err
	}
	if err := h.write(h.ds, gpio.Low, "ds"); err != nil {
		return err
	}
	h.col = 0
	return nil
}

// Advance shifts a low bit in, moving the active column up by one.
func (h *HC164) Advance(ctx context.Context) error {
	if err := h.shiftLow(ctx); err != nil {
		// The clock edge may or may not have happened.
		h.col = -1
		return err
	}
	if h.col >= 0 {
		h.col++
	}
	return nil
}

func (h *HC164) shiftLow(ctx context.Context) error {
	if err := h.write(h.ds, gpio.Low, "ds"); err != nil {
		return err
	}
	if err := h.sleep.Sleep(ctx, h.timing.BitDelay); err != nil {
		return err
	}
	return h.pulseClock(ctx)
}

// Idle drives the data line low without clocking.
func (h *HC164) Idle() error {
	return h.write(h.ds, gpio.Low, "ds")
}

// Column reports the tracked walking-bit position.
func (h *HC164) Column() (int, bool) {
	return h.col, h.col >= 0
}

// Desyncs counts Select calls for a column the bit had not been advanced to.
func (h *HC164) Desyncs() uint32 { return h.desyncs }

func (h *HC164) reset(ctx context.Context) error {
	if err := h.write(h.mr, gpio.Low, "mr"); err != nil {
		return err
	}
	if err := h.sleep.Sleep(ctx, h.timing.ResetPulse); err != nil {
		return err
	}
	if err := h.write(h.mr, gpio.High, "mr"); err != nil {
		return err
	}
	return h.sleep.Sleep(ctx, h.timing.ResetPulse)
}

func (h *HC164) pulseClock(ctx context.Context) error {
	if err := h.write(h.cp, gpio.High, "cp"); err != nil {
		return err
	}
	if err := h.sleep.Sleep(ctx, h.timing.BitDelay); err != nil {
		return err
	}
	if err := h.write(h.cp, gpio.Low, "cp"); err != nil {
		return err
	}
	return h.sleep.Sleep(ctx, h.timing.BitDelay)
}

func (h *HC164) write(l Line, level gpio.Level, name string) error {
	if err := l.Out(level); err != nil {
		h.col = -1
		return fmt.Errorf("strobe: %s <- %v: %w", name, level, err)
	}
	return nil
}
