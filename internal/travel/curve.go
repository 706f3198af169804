// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// Package travel maps raw hall-effect ADC samples to calibrated key travel.
//
// Pressing a key lowers the raw reading. The fitted cubic turns that inverted,
// nonlinear response into a travel value that grows with key depression. All
// runtime math is fixed point: DeltaFromRef is served from a Q8 table generated
// by cmd/gentravellut, and scale factors are Q16.
package travel

import "github.com/relabs-tech/hall_matrix/internal/travel/cubic"

//go:generate go run ../../cmd/gentravellut -o lut_table.go

const (
	// FullTravelUnit is the physical travel of a fully pressed key.
	FullTravelUnit = 40
	// TravelScale subdivides each travel unit.
	TravelScale = 6
	// FullTravelScaled is the largest scaled travel value.
	FullTravelScaled = FullTravelUnit * TravelScale

	// DefaultFullRange is the raw drop assumed between rest and full press.
	DefaultFullRange = 900

	// ValidRawMin and ValidRawMax bound plausible sensor readings.
	ValidRawMin = cubic.RawMin
	ValidRawMax = cubic.RawMax

	// RefZeroTravel is the nominal raw reading of a key at rest.
	RefZeroTravel = 3121
	// UncalibratedZero marks a key that has not been calibrated yet.
	UncalibratedZero = 3000

	// LUTQ is the fractional bit count of DeltaFromRef.
	LUTQ = 8
	// ScaleQ is the fractional bit count of scale factors.
	ScaleQ = 16
	// ScaleOne is the identity scale factor.
	ScaleOne int32 = 1 << ScaleQ

	scaleShift = LUTQ + ScaleQ
)

// DeltaFromRef returns cubic.Poly(x) - cubic.Poly(RefZeroTravel) in Q8. x is clamped to
// the valid raw window.
func DeltaFromRef(x uint16) int32 {
	if x < ValidRawMin {
		x = ValidRawMin
	} else if x > ValidRawMax {
		x = ValidRawMax
	}
	return int32(deltaQ8[x-ValidRawMin])
}

// ApplyZeroOffset shifts raw by the distance between a key's zero point and
// RefZeroTravel so the shared curve can be used for every key. It reports
// false when the result does not fit a uint16.
func ApplyZeroOffset(zero, raw uint16) (uint16, bool) {
	if zero >= RefZeroTravel {
		off := zero - RefZeroTravel
		if raw < off {
			return 0, false
		}
		return raw - off, true
	}
	off := RefZeroTravel - zero
	if raw > 0xFFFF-off {
		return 0, false
	}
	return raw + off, true
}

// ComputeScaleFactor returns the Q16 factor that makes the full-travel delta
// land on FullTravelUnit. Degenerate inputs yield ScaleOne.
func ComputeScaleFactor(zero, full uint16) int32 {
	xFull, ok := ApplyZeroOffset(zero, full)
	if !ok {
		return ScaleOne
	}

	fullTravel := int64(DeltaFromRef(xFull))
	if fullTravel == 0 {
		return ScaleOne
	}

	num := int64(FullTravelUnit) << (LUTQ + ScaleQ)
	q := num / fullTravel
	if q > int64(1<<31-1) || q < -int64(1<<31) {
		return ScaleOne
	}
	return int32(q)
}

// Calibration is the per-key result of zero-travel calibration.
type Calibration struct {
	Zero  uint16 `json:"zero"`
	Scale int32  `json:"scale"`
}

// NewCalibration derives the scale factor from a rest reading and a
// full-press reading.
func NewCalibration(zero, full uint16) Calibration {
	return Calibration{Zero: zero, Scale: ComputeScaleFactor(zero, full)}
}

// Uncalibrated is the placeholder every key starts with.
func Uncalibrated() Calibration {
	return NewCalibration(UncalibratedZero, UncalibratedZero-DefaultFullRange)
}

// FromRest calibrates a key from its averaged rest reading, assuming the
// default full range below it.
func FromRest(zero uint16) Calibration {
	full := uint16(0)
	if zero > DefaultFullRange {
		full = zero - DefaultFullRange
	}
	return NewCalibration(zero, full)
}

// IsUncalibrated reports whether c still holds the placeholder zero.
func (c Calibration) IsUncalibrated() bool { return c.Zero == UncalibratedZero }

// ScaledFrom converts raw into scaled travel in [0, FullTravelScaled].
// Readings outside the valid window, or whose zero shift does not fit,
// keep prev.
func ScaledFrom(cal Calibration, prev, raw uint16) uint16 {
	if raw < ValidRawMin || raw > ValidRawMax {
		return prev
	}

	x, ok := ApplyZeroOffset(cal.Zero, raw)
	if !ok {
		return prev
	}
	if x > RefZeroTravel {
		return 0
	}

	// |delta| < 2^15, |scale| < 2^31: the product fits an int64.
	prod := int64(DeltaFromRef(x)) * int64(cal.Scale) * TravelScale
	t := prod >> scaleShift

	switch {
	case t < 0:
		return 0
	case t > FullTravelScaled:
		return FullTravelScaled
	}
	return uint16(t)
}
