package main

import (
	"testing"

	"github.com/relabs-tech/hall_matrix/internal/travel"
)

func TestTableMatchesCommittedLUT(t *testing.T) {
	vals := table(travel.RefZeroTravel, travel.LUTQ)
	if len(vals) != travel.LUTLen {
		t.Fatalf("table has %d entries, want %d", len(vals), travel.LUTLen)
	}
	for i, v := range vals {
		x := uint16(travel.ValidRawMin + i)
		if got := travel.DeltaFromRef(x); got != int32(v) {
			t.Fatalf("x=%d: committed %d, generated %d", x, got, v)
		}
	}
}
