package sim_test

import (
	"context"
	"io"
	"log"
	"testing"
	"time"

	"periph.io/x/conn/v3/gpio"

	"github.com/relabs-tech/hall_matrix/internal/clock"
	"github.com/relabs-tech/hall_matrix/internal/keyevent"
	"github.com/relabs-tech/hall_matrix/internal/matrix"
	"github.com/relabs-tech/hall_matrix/internal/sim"
	"github.com/relabs-tech/hall_matrix/internal/strobe"
)

var nop = clock.Func(func(ctx context.Context, d time.Duration) error { return ctx.Err() })

func TestShiftRegisterResetAndShift(t *testing.T) {
	reg := sim.NewShiftRegister(8)
	ds, cp, mr := reg.Data(), reg.Clock(), reg.Reset()

	ds.Out(gpio.High)
	cp.Out(gpio.High)
	cp.Out(gpio.Low)
	ds.Out(gpio.Low)
	if col, ok := reg.Active(); !ok || col != 0 {
		t.Fatalf("Active() = %d, %v; want 0", col, ok)
	}
	for i := 0; i < 3; i++ {
		cp.Out(gpio.High)
		cp.Out(gpio.Low)
	}
	if col, _ := reg.Active(); col != 3 {
		t.Fatalf("Active() = %d, want 3", col)
	}

	// A high level held on CP is not a second edge.
	cp.Out(gpio.High)
	cp.Out(gpio.High)
	cp.Out(gpio.Low)
	if col, _ := reg.Active(); col != 4 {
		t.Fatalf("Active() = %d, want 4", col)
	}

	mr.Out(gpio.Low)
	if _, ok := reg.Active(); ok {
		t.Fatal("outputs not cleared by reset")
	}
	cp.Out(gpio.High)
	cp.Out(gpio.Low)
	if reg.Outputs() != 0 {
		t.Fatal("shifted while reset held low")
	}
	mr.Out(gpio.High)

	for i := 0; i < 8; i++ {
		cp.Out(gpio.High)
		cp.Out(gpio.Low)
	}
	if reg.Outputs() != 0 {
		t.Fatalf("outputs = %b after shifting the bit out", reg.Outputs())
	}
}

func TestBankFollowsDrivenColumn(t *testing.T) {
	reg := sim.NewShiftRegister(4)
	bank := sim.NewBank(reg, 2, 4)
	bank.SetRaw(1, 2, 2000)

	if raw, _ := bank.ReadRow(1); raw != 0 {
		t.Fatalf("undriven read = %d, want 0", raw)
	}
	if _, err := bank.ReadRow(2); err == nil {
		t.Fatal("ReadRow(2) on a 2-row bank succeeded")
	}

	sel := strobe.New(reg.Data(), reg.Clock(), reg.Reset(), strobe.DefaultTiming, nop)
	ctx := context.Background()
	sel.Select(ctx, 0)
	sel.Advance(ctx)
	sel.Advance(ctx)
	if raw, _ := bank.ReadRow(1); raw != 2000 {
		t.Fatalf("read (1,2) = %d, want 2000", raw)
	}
	if raw, _ := bank.ReadRow(0); raw != sim.DefaultRest {
		t.Fatalf("read (0,2) = %d, want %d", raw, sim.DefaultRest)
	}
}

func TestBankJitterStaysBounded(t *testing.T) {
	reg := sim.NewShiftRegister(1)
	bank := sim.NewBank(reg, 1, 1)
	bank.SetJitter(2)
	sel := strobe.New(reg.Data(), reg.Clock(), reg.Reset(), strobe.DefaultTiming, nop)
	sel.Select(context.Background(), 0)

	seen := map[uint16]bool{}
	for i := 0; i < 1000; i++ {
		raw, _ := bank.ReadRow(0)
		if raw < sim.DefaultRest-2 || raw > sim.DefaultRest+2 {
			t.Fatalf("raw %d outside ±2 of rest", raw)
		}
		seen[raw] = true
	}
	if len(seen) < 3 {
		t.Fatalf("jitter produced only %d distinct values", len(seen))
	}
}

func TestTypistRampsOneKeyAtATime(t *testing.T) {
	reg := sim.NewShiftRegister(2)
	bank := sim.NewBank(reg, 1, 2)
	ty := sim.NewTypist(bank, 1, 2, 100*time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()
	if err := ty.Run(ctx); err != context.DeadlineExceeded {
		t.Fatalf("Run = %v, want deadline exceeded", err)
	}

	sel := strobe.New(reg.Data(), reg.Clock(), reg.Reset(), strobe.DefaultTiming, nop)
	sel.Select(context.Background(), 0)
	first, _ := bank.ReadRow(0)
	sel.Advance(context.Background())
	second, _ := bank.ReadRow(0)
	if first >= sim.DefaultRest {
		t.Fatalf("key 0 not pressed after 30ms of its period: %d", first)
	}
	if second != sim.DefaultRest {
		t.Fatalf("key 1 moved early: %d", second)
	}
}

// TestScannerOnSimulatedBoard runs the matrix against the simulated shift
// register and sensors, noise included.
func TestScannerOnSimulatedBoard(t *testing.T) {
	const rows, cols = 6, 21
	reg := sim.NewShiftRegister(24)
	bank := sim.NewBank(reg, rows, cols)
	bank.SetJitter(2)
	sel := strobe.New(reg.Data(), reg.Clock(), reg.Reset(), strobe.DefaultTiming, nop)

	m, err := matrix.New(bank, rows, cols, sel, matrix.DefaultConfig(),
		matrix.WithSleeper(nop),
		matrix.WithLogger(log.New(io.Discard, "", 0)))
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	if err := m.Calibrate(ctx); err != nil {
		t.Fatal(err)
	}
	if cal, _ := m.Calibration(4, 17); cal.Zero < sim.DefaultRest-2 || cal.Zero > sim.DefaultRest+2 {
		t.Fatalf("zero(4,17) = %d", cal.Zero)
	}

	bank.Press(4, 17, 1)
	ev, err := m.ReadEvent(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if want := (keyevent.Event{Row: 4, Col: 17, Pressed: true}); ev != want {
		t.Fatalf("event = %v, want %v", ev, want)
	}

	bank.Press(4, 17, 0)
	ev, err = m.ReadEvent(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if want := (keyevent.Event{Row: 4, Col: 17, Pressed: false}); ev != want {
		t.Fatalf("event = %v, want %v", ev, want)
	}
	if sel.Desyncs() != 0 {
		t.Fatalf("strobe desynced %d times", sel.Desyncs())
	}
}
