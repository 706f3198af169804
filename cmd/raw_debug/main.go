// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package main

import (
	"flag"
	"log"
	"time"

	"github.com/relabs-tech/hall_matrix/internal/app"
	"github.com/relabs-tech/hall_matrix/internal/config"
)

func main() {
	configPath := flag.String("config", "hall_config.txt", "Path to configuration file")
	mock := flag.Bool("mock", false, "Read a simulated board")
	interval := flag.Duration("interval", 250*time.Millisecond, "Refresh interval")
	flag.Parse()

	log.Println("starting hall-matrix raw ADC debug tool")

	if err := config.InitGlobal(*configPath); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := app.RunRawDebug(*mock, *interval); err != nil {
		log.Fatalf("fatal: %v", err)
	}
}
