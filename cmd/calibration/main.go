// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// ./cmd/calibration/main.go
//
// One-shot zero-travel calibration for the hall matrix.
//
// Every key is sampled over several full sweeps with no key pressed; the
// averaged rest reading becomes its zero point and the scale factor is
// derived from it.
//
// Output:
//
//	Writes a JSON file under ./calibration/ with the calibration time and
//	the zero and Q16 scale of every key.
//
// Run:
//
//	go run ./cmd/calibration [-mock]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/relabs-tech/hall_matrix/internal/app"
	"github.com/relabs-tech/hall_matrix/internal/config"
)

func main() {
	configPath := flag.String("config", "hall_config.txt", "Path to configuration file")
	outDir := flag.String("out", "calibration", "Directory for the calibration report")
	mock := flag.Bool("mock", false, "Calibrate a simulated board")
	flag.Parse()

	if err := config.InitGlobal(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to load config from %s: %v\n", *configPath, err)
		os.Exit(1)
	}

	if err := app.RunCalibrationDump(*mock, *outDir); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}
