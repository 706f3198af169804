package matrix

import (
	"context"
	"fmt"

	"github.com/relabs-tech/hall_matrix/internal/keyevent"
	"github.com/relabs-tech/hall_matrix/internal/travel"
)

// sweep visits every column once, calling visit with each row's reading.
// A failed conversion reads as 0, which lies outside the valid window.
func (m *Matrix) sweep(ctx context.Context, visit func(row, col int, raw uint16)) error {
	rows, cols := m.keys.Rows(), m.keys.Cols()
	for col := 0; col < cols; col++ {
		if err := m.sel.Select(ctx, col); err != nil {
			return fmt.Errorf("matrix: select column %d: %w", col, err)
		}
		if err := m.sleep.Sleep(ctx, m.cfg.SettleAfterCol); err != nil {
			return err
		}
		for row := 0; row < rows; row++ {
			raw, err := m.adc.ReadRow(row)
			if err != nil {
				raw = 0
			}
			visit(row, col, raw)
		}
		if err := m.sel.Advance(ctx); err != nil {
			return fmt.Errorf("matrix: advance from column %d: %w", col, err)
		}
	}
	return nil
}

// scan runs one pass and queues any state changes.
func (m *Matrix) scan(ctx context.Context) error {
	return m.sweep(ctx, func(row, col int, raw uint16) {
		k := m.keys.At(row, col)
		if k.lastRaw != 0 && absDiff(raw, k.lastRaw) < NoiseGate {
			return
		}
		t := travel.ScaledFrom(k.cal, k.travel, raw)
		k.lastRaw = raw
		if t == k.travel {
			return
		}
		k.travel = t

		var pressed bool
		if k.pressed {
			pressed = t >= m.deact
		} else {
			pressed = t >= m.act
		}
		if pressed == k.pressed {
			return
		}
		k.pressed = pressed
		m.push(keyevent.Event{Row: uint8(row), Col: uint8(col), Pressed: pressed})
	})
}

func absDiff(a, b uint16) uint16 {
	if a > b {
		return a - b
	}
	return b - a
}

// Sample runs one pass and returns the raw readings without touching key
// state. It is meant for bring-up tools.
func (m *Matrix) Sample(ctx context.Context) (*Grid[uint16], error) {
	g, err := NewGrid[uint16](m.keys.Rows(), m.keys.Cols())
	if err != nil {
		return nil, err
	}
	err = m.sweep(ctx, func(row, col int, raw uint16) {
		*g.At(row, col) = raw
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}
