// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/relabs-tech/hall_matrix/internal/config"
	"github.com/relabs-tech/hall_matrix/internal/matrix"
	"github.com/relabs-tech/hall_matrix/internal/travel"
)

// KeyCalibration is one key of a calibration report.
type KeyCalibration struct {
	Row     int    `json:"row"`
	Col     int    `json:"col"`
	Zero    uint16 `json:"zero"`
	Scale   int32  `json:"scale"`
	Neutral bool   `json:"neutral"` // scale fell back to 1.0
}

// CalibrationReport is written under ./calibration/ after a run.
type CalibrationReport struct {
	SchemaVersion int              `json:"schema_version"`
	CalibrationAt string           `json:"calibration_at"` // RFC3339
	Rows          int              `json:"rows"`
	Cols          int              `json:"cols"`
	Neutral       int              `json:"neutral_keys"`
	Keys          []KeyCalibration `json:"keys"`
}

// RunCalibrationDump calibrates the matrix once and saves the per-key
// zero points and scale factors as JSON in outDir.
func RunCalibrationDump(mock bool, outDir string) error {
	cfg := config.Get()

	hw, err := openRig(cfg, mock)
	if err != nil {
		return err
	}
	defer hw.close()

	m, err := matrix.New(hw.rows, cfg.MatrixRows, cfg.MatrixCols, hw.sel, cfg.HallConfig())
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println("=== Hall matrix calibration ===")
	fmt.Println("Keep hands off the keyboard while the zero points are sampled.")
	if err := m.Calibrate(ctx); err != nil {
		return fmt.Errorf("calibration: %w", err)
	}

	rep := buildCalibrationReport(m, time.Now())
	name, err := writeCalibrationReport(outDir, rep)
	if err != nil {
		return err
	}
	fmt.Printf("Calibrated %d keys, %d neutral\n", len(rep.Keys), rep.Neutral)
	fmt.Printf("Wrote: %s\n", name)
	return nil
}

func buildCalibrationReport(m *matrix.Matrix, at time.Time) CalibrationReport {
	rep := CalibrationReport{
		SchemaVersion: 1,
		CalibrationAt: at.Format(time.RFC3339),
		Rows:          m.Rows(),
		Cols:          m.Cols(),
	}
	for row := 0; row < m.Rows(); row++ {
		for col := 0; col < m.Cols(); col++ {
			cal, ok := m.Calibration(row, col)
			if !ok {
				continue
			}
			k := KeyCalibration{Row: row, Col: col, Zero: cal.Zero, Scale: cal.Scale, Neutral: cal.Scale == travel.ScaleOne}
			if k.Neutral {
				rep.Neutral++
			}
			rep.Keys = append(rep.Keys, k)
		}
	}
	return rep
}

// reportTimeLayout keeps file names free of colons: UTC ends in Z,
// other zones in +hhmm.
const reportTimeLayout = "2006-01-02T15-04-05Z0700"

func writeCalibrationReport(dir string, rep CalibrationReport) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	at, err := time.Parse(time.RFC3339, rep.CalibrationAt)
	if err != nil {
		at = time.Now()
	}
	name := filepath.Join(dir, fmt.Sprintf("%s_hall_calibration.json", at.Format(reportTimeLayout)))

	b, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(name, b, 0o644); err != nil {
		return "", err
	}
	log.Printf("calibration: saved results to %s", name)
	return name, nil
}
