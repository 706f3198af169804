// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package matrix scans an analog hall-effect key matrix and turns sensor
// readings into press and release events.
//
// A Matrix owns its row reader and column selector exclusively. All of its
// methods must be called from a single goroutine; the only suspension points
// are the settle delay after each column and the idle yield in ReadEvent.
package matrix

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/relabs-tech/hall_matrix/internal/clock"
	"github.com/relabs-tech/hall_matrix/internal/keyevent"
	"github.com/relabs-tech/hall_matrix/internal/travel"
)

const (
	// NoiseGate is the smallest raw change that is acted upon.
	NoiseGate = 5
	// CalibPasses is the number of full sweeps averaged into each zero.
	CalibPasses = 8
	// QueueCapacity bounds the pending events.
	QueueCapacity = keyevent.Capacity
	// IdleYield is slept when a scan pass produced no event.
	IdleYield = 50 * time.Microsecond
)

var (
	ErrBadDimensions = errors.New("matrix: bad dimensions")
	ErrBadConfig     = errors.New("matrix: bad config")
)

// RowReader samples one row channel of the currently selected column.
// ReadRow blocks for the duration of one conversion.
type RowReader interface {
	ReadRow(row int) (uint16, error)
}

// ColumnSelector drives the column lines. Select(0) starts a pass and
// Advance moves to the next column.
type ColumnSelector interface {
	Select(ctx context.Context, col int) error
	Advance(ctx context.Context) error
}

type keyState struct {
	lastRaw uint16
	travel  uint16
	pressed bool
	cal     travel.Calibration
}

// Matrix is the scanner state for rows×cols keys.
type Matrix struct {
	adc   RowReader
	sel   ColumnSelector
	cfg   Config
	sleep clock.Sleeper
	log   *log.Logger

	act, deact uint16

	keys       *Grid[keyState]
	queue      keyevent.Queue
	calibrated bool
	dropped    uint32
}

// Option customises a Matrix.
type Option func(*Matrix)

// WithSleeper replaces the timer used for settle and idle delays.
func WithSleeper(s clock.Sleeper) Option {
	return func(m *Matrix) { m.sleep = s }
}

// WithLogger sets the logger for calibration reports.
func WithLogger(l *log.Logger) Option {
	return func(m *Matrix) { m.log = l }
}

// New builds a scanner. No hardware is touched until the first Calibrate
// or ReadEvent. Every key starts with the uncalibrated placeholder.
func New(adc RowReader, rows, cols int, sel ColumnSelector, cfg Config, opts ...Option) (*Matrix, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	keys, err := NewGrid[keyState](rows, cols)
	if err != nil {
		return nil, err
	}
	uncal := travel.Uncalibrated()
	keys.Each(func(_, _ int, k *keyState) { k.cal = uncal })

	m := &Matrix{
		adc:   adc,
		sel:   sel,
		cfg:   cfg,
		sleep: clock.Timer{},
		log:   log.Default(),
		keys:  keys,
	}
	m.act, m.deact = cfg.thresholds()
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

func (m *Matrix) Rows() int { return m.keys.Rows() }

func (m *Matrix) Cols() int { return m.keys.Cols() }

// Calibrated reports whether zero readings have been captured.
func (m *Matrix) Calibrated() bool { return m.calibrated }

// Dropped counts events evicted from a full queue.
func (m *Matrix) Dropped() uint32 { return m.dropped }

// Calibration returns the calibration of the key at (row, col).
func (m *Matrix) Calibration(row, col int) (travel.Calibration, bool) {
	k := m.keys.At(row, col)
	if k == nil {
		return travel.Calibration{}, false
	}
	return k.cal, true
}

// ReadEvent blocks until a key changes state. It calibrates first if that
// has not happened yet. The only errors are context cancellation and
// failures driving the column lines.
func (m *Matrix) ReadEvent(ctx context.Context) (keyevent.Event, error) {
	if err := m.Calibrate(ctx); err != nil {
		return keyevent.Event{}, err
	}
	for {
		if ev, ok := m.queue.Pop(); ok {
			return ev, nil
		}
		if err := ctx.Err(); err != nil {
			return keyevent.Event{}, err
		}
		if err := m.scan(ctx); err != nil {
			return keyevent.Event{}, err
		}
		if ev, ok := m.queue.Pop(); ok {
			return ev, nil
		}
		if err := m.sleep.Sleep(ctx, IdleYield); err != nil {
			return keyevent.Event{}, err
		}
	}
}

func (m *Matrix) push(ev keyevent.Event) {
	if m.queue.Push(ev) {
		m.dropped++
	}
}
