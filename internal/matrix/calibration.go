package matrix

import (
	"context"
	"time"

	"github.com/relabs-tech/hall_matrix/internal/travel"
)

// Calibrate averages CalibPasses sweeps into every key's zero reading. It
// runs once; later calls return nil immediately. If ctx ends mid-way the
// partial sums are discarded, no key calibration changes, and the next call
// starts over.
func (m *Matrix) Calibrate(ctx context.Context) error {
	if m.calibrated {
		return nil
	}
	start := time.Now()

	sums, err := NewGrid[uint32](m.keys.Rows(), m.keys.Cols())
	if err != nil {
		return err
	}
	for pass := 0; pass < CalibPasses; pass++ {
		err := m.sweep(ctx, func(row, col int, raw uint16) {
			*sums.At(row, col) += uint32(raw)
		})
		if err != nil {
			return err
		}
	}

	degenerate := 0
	sums.Each(func(row, col int, sum *uint32) {
		cal := travel.FromRest(uint16(*sum / CalibPasses))
		if cal.Scale == travel.ScaleOne {
			degenerate++
		}
		m.keys.At(row, col).cal = cal
	})
	m.calibrated = true

	m.log.Printf("matrix: calibrated %dx%d keys in %v", m.keys.Rows(), m.keys.Cols(), time.Since(start).Round(time.Microsecond))
	if degenerate > 0 {
		m.log.Printf("matrix: %d keys have a neutral scale factor, travel on them is unreliable", degenerate)
	}
	return nil
}
