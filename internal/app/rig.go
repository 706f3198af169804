// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"context"
	"log"
	"time"

	"github.com/relabs-tech/hall_matrix/internal/config"
	"github.com/relabs-tech/hall_matrix/internal/matrix"
	"github.com/relabs-tech/hall_matrix/internal/sensors"
	"github.com/relabs-tech/hall_matrix/internal/sim"
	"github.com/relabs-tech/hall_matrix/internal/strobe"
)

// rig is what a matrix scans: real hardware, or the simulator when mock.
type rig struct {
	rows  matrix.RowReader
	sel   *strobe.HC164
	bank  *sim.Bank
	close func()
}

func openRig(cfg *config.Config, mock bool) (*rig, error) {
	if mock {
		return openSimRig(cfg), nil
	}
	board, err := sensors.OpenBoard(cfg)
	if err != nil {
		return nil, err
	}
	return &rig{
		rows: board.Rows,
		sel:  board.Strobe,
		close: func() {
			if err := board.Close(); err != nil {
				log.Printf("sensors: close: %v", err)
			}
		},
	}, nil
}

func openSimRig(cfg *config.Config) *rig {
	if cfg.MatrixCols > 64 {
		log.Printf("sim: only 64 columns are simulated, %d configured", cfg.MatrixCols)
	}
	reg := sim.NewShiftRegister(cfg.MatrixCols)
	bank := sim.NewBank(reg, cfg.MatrixRows, cfg.MatrixCols)
	bank.SetJitter(2)
	log.Printf("sim: simulated %dx%d matrix", cfg.MatrixRows, cfg.MatrixCols)
	return &rig{
		rows:  bank,
		sel:   strobe.New(reg.Data(), reg.Clock(), reg.Reset(), cfg.StrobeTiming(), nil),
		bank:  bank,
		close: func() {},
	}
}

// animate starts a typist on the simulated bank, if there is one.
func (r *rig) animate(ctx context.Context, cfg *config.Config) {
	if r.bank == nil {
		return
	}
	t := sim.NewTypist(r.bank, cfg.MatrixRows, cfg.MatrixCols, 400*time.Millisecond)
	go func() {
		if err := t.Run(ctx); err != nil && ctx.Err() == nil {
			log.Printf("sim: typist stopped: %v", err)
		}
	}()
}
