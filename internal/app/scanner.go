// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	serial "github.com/jacobsa/go-serial/serial"

	"github.com/relabs-tech/hall_matrix/internal/config"
	"github.com/relabs-tech/hall_matrix/internal/matrix"
)

// RunScanner calibrates the matrix and forwards every key event to MQTT,
// the log, and the serial line when SERIAL_PORT is set. With mock, the
// simulated board is scanned and keys are pressed by a typist.
func RunScanner(mock bool) error {
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

	// ---- 1) Connect to MQTT broker ----
	client, err := connectMQTT(cfg.MQTTBroker, cfg.MQTTClientIDScanner)
	if err != nil {
		return err
	}
	defer client.Disconnect(250)
	log.Printf("scanner: connected to MQTT broker at %s", cfg.MQTTBroker)

	sinks := fanout{logSink{prefix: "scanner"}, mqttSink{client: client, topic: cfg.TopicKeyEvents}}

	// ---- 2) Optional serial event line ----
	if cfg.SerialPort != "" {
		port, err := openSerial(cfg.SerialPort, cfg.SerialBaudRate)
		if err != nil {
			return err
		}
		defer port.Close()
		sinks = append(sinks, lineSink{w: port})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	hw.animate(ctx, cfg)

	return scanLoop(ctx, m, sinks)
}

// scanLoop reads events until ctx ends.
func scanLoop(ctx context.Context, m *matrix.Matrix, sink EventSink) error {
	log.Printf("scanner: calibrating %dx%d matrix, keep hands off the keys", m.Rows(), m.Cols())
	if err := m.Calibrate(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("calibration: %w", err)
	}

	var dropped uint32
	for {
		ev, err := m.ReadEvent(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				log.Println("scanner: shutting down")
				return nil
			}
			return err
		}
		_ = sink.Publish(ev) // failures are logged by the sinks

		if d := m.Dropped(); d != dropped {
			log.Printf("scanner: queue overflow, %d events lost", d-dropped)
			dropped = d
		}
	}
}

func openSerial(name string, baud int) (io.ReadWriteCloser, error) {
	serialOpts := serial.OpenOptions{
		PortName:              name,
		BaudRate:              uint(baud),
		DataBits:              8,
		StopBits:              1,
		MinimumReadSize:       1,
		ParityMode:            serial.PARITY_NONE,
		InterCharacterTimeout: 0,
	}

	port, err := serial.Open(serialOpts)
	if err != nil {
		return nil, fmt.Errorf("serial open %s: %w", name, err)
	}
	log.Printf("serial: port opened on %s at %d baud", serialOpts.PortName, serialOpts.BaudRate)
	return port, nil
}
