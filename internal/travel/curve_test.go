package travel

import (
	"math"
	"testing"

	"github.com/relabs-tech/hall_matrix/internal/travel/cubic"
)

func TestDeltaTableWithinHalfStepOfPoly(t *testing.T) {
	ref := cubic.Poly(RefZeroTravel)
	for x := uint16(ValidRawMin); x <= ValidRawMax; x++ {
		want := (cubic.Poly(float64(x)) - ref) * (1 << LUTQ)
		if d := math.Abs(float64(DeltaFromRef(x)) - want); d > 0.5+1e-6 {
			t.Fatalf("x=%d: table %d, poly %.3f", x, DeltaFromRef(x), want)
		}
	}
}

func TestDeltaFromRef(t *testing.T) {
	if got := DeltaFromRef(RefZeroTravel); got != 0 {
		t.Fatalf("DeltaFromRef(ref) = %d, want 0", got)
	}
	if DeltaFromRef(0) != DeltaFromRef(ValidRawMin) {
		t.Fatal("inputs below the window must clamp to ValidRawMin")
	}
	if DeltaFromRef(0xFFFF) != DeltaFromRef(ValidRawMax) {
		t.Fatal("inputs above the window must clamp to ValidRawMax")
	}
	for x := uint16(ValidRawMin + 1); x <= ValidRawMax; x++ {
		if DeltaFromRef(x) > DeltaFromRef(x-1) {
			t.Fatalf("delta increases between %d and %d", x-1, x)
		}
	}
}

func TestApplyZeroOffset(t *testing.T) {
	tests := []struct {
		name      string
		zero, raw uint16
		want      uint16
		ok        bool
	}{
		{"at reference", RefZeroTravel, 2500, 2500, true},
		{"zero above reference", 3200, 3000, 2921, true},
		{"zero below reference", 3000, 2100, 2221, true},
		{"underflow", 0xFFFF, 10, 0, false},
		{"overflow", 0, 0xFFF0, 0, false},
		{"exact fit", 0, 0xFFFF - RefZeroTravel, 0xFFFF, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ApplyZeroOffset(tt.zero, tt.raw)
			if got != tt.want || ok != tt.ok {
				t.Fatalf("ApplyZeroOffset(%d, %d) = %d, %v; want %d, %v", tt.zero, tt.raw, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestComputeScaleFactor(t *testing.T) {
	if got := ComputeScaleFactor(RefZeroTravel, RefZeroTravel-DefaultFullRange); got != 78297 {
		t.Fatalf("nominal scale = %d, want 78297", got)
	}
	if got := Uncalibrated().Scale; got != 78297 {
		t.Fatalf("uncalibrated scale = %d, want 78297", got)
	}
	if !Uncalibrated().IsUncalibrated() {
		t.Fatal("Uncalibrated() must report IsUncalibrated")
	}

	neutral := []struct{ zero, full uint16 }{
		{0xFFFF, 0},      // offset underflows
		{0, 0xFFFF},      // offset overflows
		{0, 0},           // identical readings
		{0xFFFF, 0xFFFF}, // identical readings
	}
	for _, n := range neutral {
		if got := ComputeScaleFactor(n.zero, n.full); got != ScaleOne {
			t.Errorf("ComputeScaleFactor(%d, %d) = %d, want ScaleOne", n.zero, n.full, got)
		}
	}
}

func TestComputeScaleFactorNeutralWhenZeroEqualsFull(t *testing.T) {
	for z := 0; z <= 0xFFFF; z++ {
		if got := ComputeScaleFactor(uint16(z), uint16(z)); got != ScaleOne {
			t.Fatalf("ComputeScaleFactor(%d, %d) = %d, want ScaleOne", z, z, got)
		}
	}
}

func TestComputeScaleFactorCoversFullTravel(t *testing.T) {
	for zero := uint16(2200); zero <= 3400; zero += 50 {
		cal := FromRest(zero)
		full := zero - DefaultFullRange
		if got := ScaledFrom(cal, 0, full); got < FullTravelScaled-2 {
			t.Errorf("zero=%d: travel at full press = %d, want ~%d", zero, got, FullTravelScaled)
		}
		if got := ScaledFrom(cal, 0, zero); got != 0 {
			t.Errorf("zero=%d: travel at rest = %d, want 0", zero, got)
		}
	}
}

func TestScaledFromKnownPoints(t *testing.T) {
	cal := FromRest(RefZeroTravel)
	tests := []struct {
		raw  uint16
		want uint16
	}{
		{3121, 0},
		{3116, 2},
		{3050, 38},
		{2905, 102},
		{2883, 110},
		{2869, 115},
		{2854, 120},
		{2500, 203},
		{1940, 240},
		{1200, 240},
		{3300, 0},
	}
	for _, tt := range tests {
		if got := ScaledFrom(cal, 7, tt.raw); got != tt.want {
			t.Errorf("ScaledFrom(raw=%d) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestScaledFromMonotonicTowardsPress(t *testing.T) {
	for _, zero := range []uint16{2600, 3000, RefZeroTravel, 3400} {
		cal := FromRest(zero)
		prev := uint16(0)
		for raw := uint16(RefZeroTravel); raw >= ValidRawMin; raw-- {
			got := ScaledFrom(cal, prev, raw)
			if got < prev {
				t.Fatalf("zero=%d raw=%d: travel dropped from %d to %d", zero, raw, prev, got)
			}
			prev = got
		}
	}
}

func TestScaledFromRangeClamp(t *testing.T) {
	cals := []Calibration{Uncalibrated(), {Zero: 0, Scale: ScaleOne}, {Zero: 0xFFFF, Scale: -ScaleOne}}
	for zero := 0; zero <= 0xFFFF; zero += 257 {
		cals = append(cals, FromRest(uint16(zero)), NewCalibration(uint16(zero), uint16(0xFFFF-zero)))
	}
	cals = append(cals, Calibration{Zero: 2000, Scale: math.MaxInt32}, Calibration{Zero: 2000, Scale: math.MinInt32})

	for _, cal := range cals {
		for raw := uint16(ValidRawMin); raw <= ValidRawMax; raw++ {
			if got := ScaledFrom(cal, 0, raw); got > FullTravelScaled {
				t.Fatalf("cal=%+v raw=%d: travel %d out of range", cal, raw, got)
			}
		}
	}
}

func TestScaledFromOutOfRangeKeepsPrevious(t *testing.T) {
	cal := FromRest(RefZeroTravel)
	raws := []uint16{0, 1, ValidRawMin - 1, ValidRawMax + 1, 4122, 0xFFFF}
	for _, raw := range raws {
		for _, prev := range []uint16{0, 1, 119, 240, 0xFFFF} {
			if got := ScaledFrom(cal, prev, raw); got != prev {
				t.Fatalf("ScaledFrom(raw=%d, prev=%d) = %d, want prev", raw, prev, got)
			}
		}
	}
}

func TestScaledFromUnrepresentableOffsetKeepsPrevious(t *testing.T) {
	// zero - RefZeroTravel exceeds raw, so the shift underflows.
	cal := Calibration{Zero: 0xFFFF, Scale: ScaleOne}
	if got := ScaledFrom(cal, 42, 2000); got != 42 {
		t.Fatalf("ScaledFrom = %d, want 42", got)
	}
}
