package cubic

import (
	"math"
	"testing"
)

func TestChebyshevMatchesPoly(t *testing.T) {
	for x := 1100.0; x <= 3600; x += 0.5 {
		if d := math.Abs(Chebyshev(x) - Poly(x)); d > 1e-9 {
			t.Fatalf("x=%v: |Chebyshev-Poly| = %g", x, d)
		}
	}
}

func TestPolyClampsToWindow(t *testing.T) {
	if Poly(0) != Poly(RawMin) || Poly(1e6) != Poly(RawMax) {
		t.Fatal("Poly must clamp to the raw window")
	}
}
