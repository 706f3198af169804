// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

package sensors

import (
	"fmt"
	"log"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"

	"github.com/relabs-tech/hall_matrix/internal/config"
	"github.com/relabs-tech/hall_matrix/internal/strobe"
)

// Board is the keyboard hardware: the column strobe and the row ADCs.
type Board struct {
	Strobe *strobe.HC164
	Rows   *ADCRows
	bus    i2c.BusCloser
}

// OpenBoard initializes periph and opens the lines named in cfg.
func OpenBoard(cfg *config.Config) (*Board, error) {
	if err := cfg.RequireHardware(); err != nil {
		return nil, err
	}
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph host init: %w", err)
	}

	st, err := OpenStrobe(gpioreg.ByName, cfg.StrobeDSPin, cfg.StrobeCPPin, cfg.StrobeMRPin, cfg.StrobeTiming())
	if err != nil {
		return nil, err
	}

	bus, err := i2creg.Open(cfg.ADCI2CBus)
	if err != nil {
		return nil, fmt.Errorf("ADC I2C bus open %q: %w", cfg.ADCI2CBus, err)
	}
	rows, err := OpenADCRows(bus, ADCOptions{
		Addrs:      cfg.ADCI2CAddrs,
		Rows:       cfg.MatrixRows,
		MaxVoltage: physic.ElectricPotential(cfg.ADCMaxMillivolts) * physic.MilliVolt,
		DataRate:   physic.Frequency(cfg.ADCDataRateHz) * physic.Hertz,
		RawShift:   cfg.ADCRawShift,
	})
	if err != nil {
		bus.Close()
		return nil, err
	}

	log.Printf("sensors: strobe on %s/%s/%s, %d rows on %d ADS1115 (%d mV, %d Hz)",
		cfg.StrobeDSPin, cfg.StrobeCPPin, cfg.StrobeMRPin,
		rows.Rows(), len(cfg.ADCI2CAddrs), cfg.ADCMaxMillivolts, cfg.ADCDataRateHz)
	return &Board{Strobe: st, Rows: rows, bus: bus}, nil
}

// Close parks the strobe and releases the ADCs.
func (b *Board) Close() error {
	if err := b.Strobe.Idle(); err != nil {
		log.Printf("sensors: idle strobe: %v", err)
	}
	if err := b.Rows.Halt(); err != nil {
		log.Printf("sensors: halt ADCs: %v", err)
	}
	return b.bus.Close()
}

// OpenStrobe resolves the three lines with lookup and parks them with
// the register out of reset and no clock edge pending.
func OpenStrobe(lookup func(name string) gpio.PinIO, ds, cp, mr string, timing strobe.Timing) (*strobe.HC164, error) {
	lines := make([]gpio.PinIO, 0, 3)
	for _, name := range []string{ds, cp, mr} {
		p := lookup(name)
		if p == nil {
			return nil, fmt.Errorf("strobe: pin %q not found", name)
		}
		lines = append(lines, p)
	}
	park := []gpio.Level{gpio.Low, gpio.Low, gpio.High}
	for i, p := range lines {
		if err := p.Out(park[i]); err != nil {
			return nil, fmt.Errorf("strobe: park %s: %w", p, err)
		}
	}
	return strobe.New(lines[0], lines[1], lines[2], timing, nil), nil
}
