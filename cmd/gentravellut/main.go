// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text

// ./cmd/gentravellut/main.go
//
// Regenerates internal/travel/lut_table.go: the Q8 table behind
// travel.DeltaFromRef, one entry per raw value of the valid window.
// Values come from the Chebyshev form of the sensor cubic. The generator
// only depends on internal/travel/cubic, so it runs even when the table is
// missing or broken. -ref and -q must match travel.RefZeroTravel and
// travel.LUTQ.
//
// Run:
//
//	go generate ./internal/travel
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"math"
	"os"
	"strings"

	"github.com/relabs-tech/hall_matrix/internal/travel/cubic"
)

const perLine = 12

func main() {
	out := flag.String("o", "lut_table.go", "output file")
	ref := flag.Float64("ref", 3121, "raw reading of a key at rest")
	q := flag.Uint("q", 8, "fractional bits of the table")
	flag.Parse()

	vals := table(*ref, *q)

	var buf bytes.Buffer
	buf.WriteString("// Code generated by gentravellut; DO NOT EDIT.\n\n")
	buf.WriteString("package travel\n\n")
	buf.WriteString("// LUTLen is the number of raw values covered by DeltaFromRef.\n")
	buf.WriteString("const LUTLen = ValidRawMax - ValidRawMin + 1\n\n")
	buf.WriteString("// deltaQ8[x-ValidRawMin] is round((Chebyshev(x) - Chebyshev(RefZeroTravel)) * 2^LUTQ).\n")
	buf.WriteString("var deltaQ8 = [LUTLen]int16{\n")
	for i := 0; i < len(vals); i += perLine {
		end := min(i+perLine, len(vals))
		parts := make([]string, 0, perLine)
		for _, v := range vals[i:end] {
			parts = append(parts, fmt.Sprint(v))
		}
		fmt.Fprintf(&buf, "\t%s,\n", strings.Join(parts, ", "))
	}
	buf.WriteString("}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("gentravellut: format: %v", err)
	}
	if err := os.WriteFile(*out, src, 0644); err != nil {
		log.Fatalf("gentravellut: write %s: %v", *out, err)
	}
	log.Printf("gentravellut: wrote %d entries to %s", len(vals), *out)
}

// table returns round((Chebyshev(x) - Chebyshev(refZero)) * 2^q) for every
// raw value of the window, saturated to int16.
func table(refZero float64, q uint) []int16 {
	ref := cubic.Chebyshev(refZero)
	scale := math.Ldexp(1, int(q))
	vals := make([]int16, 0, cubic.RawMax-cubic.RawMin+1)
	for x := cubic.RawMin; x <= cubic.RawMax; x++ {
		v := math.Round((cubic.Chebyshev(float64(x)) - ref) * scale)
		v = math.Max(math.MinInt16, math.Min(math.MaxInt16, v))
		vals = append(vals, int16(v))
	}
	return vals
}
