package sensors

import (
	"fmt"
	"math"

	"periph.io/x/conn/v3/analog"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ads1x15"
)

// ChannelsPerADC is the number of single-ended inputs on an ADS1115.
const ChannelsPerADC = 4

var singleEnded = [ChannelsPerADC]ads1x15.Channel{
	ads1x15.Channel0,
	ads1x15.Channel1,
	ads1x15.Channel2,
	ads1x15.Channel3,
}

// sampler is the part of analog.PinADC a row needs.
type sampler interface {
	Read() (analog.Sample, error)
}

// ADCRows reads matrix rows, one ADC channel per row. Conversions block
// for one sample period.
type ADCRows struct {
	pins  []sampler
	halts []func() error
	shift uint
}

// ADCOptions configures the row converters.
type ADCOptions struct {
	Addrs      []uint16
	Rows       int
	MaxVoltage physic.ElectricPotential
	DataRate   physic.Frequency
	RawShift   uint // right shift from the 16-bit result to sensor units
}

// OpenADCRows maps rows to ADS1115 channels on bus: rows 0-3 on Addrs[0],
// rows 4-7 on Addrs[1], and so on.
func OpenADCRows(bus i2c.Bus, opts ADCOptions) (*ADCRows, error) {
	if need := (opts.Rows + ChannelsPerADC - 1) / ChannelsPerADC; len(opts.Addrs) < need {
		return nil, fmt.Errorf("sensors: %d rows need %d ADCs, have %d", opts.Rows, need, len(opts.Addrs))
	}

	r := &ADCRows{shift: opts.RawShift}
	devs := make(map[uint16]*ads1x15.Dev)
	for row := 0; row < opts.Rows; row++ {
		addr := opts.Addrs[row/ChannelsPerADC]
		dev, ok := devs[addr]
		if !ok {
			var err error
			dev, err = ads1x15.NewADS1115(bus, &ads1x15.Opts{I2cAddress: addr})
			if err != nil {
				r.Halt()
				return nil, fmt.Errorf("sensors: ADS1115 at 0x%02X: %w", addr, err)
			}
			devs[addr] = dev
		}
		pin, err := dev.PinForChannel(singleEnded[row%ChannelsPerADC], opts.MaxVoltage, opts.DataRate, ads1x15.SaveEnergy)
		if err != nil {
			r.Halt()
			return nil, fmt.Errorf("sensors: row %d on 0x%02X: %w", row, addr, err)
		}
		r.pins = append(r.pins, pin)
		r.halts = append(r.halts, pin.Halt)
	}
	return r, nil
}

// ReadRow performs one conversion on the row's channel.
func (r *ADCRows) ReadRow(row int) (uint16, error) {
	if row < 0 || row >= len(r.pins) {
		return 0, fmt.Errorf("sensors: row %d out of range", row)
	}
	s, err := r.pins[row].Read()
	if err != nil {
		return 0, fmt.Errorf("sensors: row %d: %w", row, err)
	}
	return rawFromSample(s, r.shift), nil
}

func (r *ADCRows) Rows() int { return len(r.pins) }

// Halt stops every row channel.
func (r *ADCRows) Halt() error {
	var first error
	for _, h := range r.halts {
		if err := h(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// rawFromSample scales a signed conversion result to sensor units.
// Negative readings from ground offset clamp to 0.
func rawFromSample(s analog.Sample, shift uint) uint16 {
	if s.Raw <= 0 {
		return 0
	}
	v := s.Raw >> shift
	if v > math.MaxUint16 {
		return math.MaxUint16
	}
	return uint16(v)
}
