package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/relabs-tech/hall_matrix/internal/config"
	"github.com/relabs-tech/hall_matrix/internal/matrix"
)

// RunRawDebug prints the raw reading of every key, refreshed every
// interval, until interrupted. Nothing is calibrated or published.
func RunRawDebug(mock bool, interval time.Duration) error {
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	hw.animate(ctx, cfg)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		g, err := m.Sample(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		fmt.Print("\033[H\033[2J")
		writeRawGrid(os.Stdout, g)
		if d := hw.sel.Desyncs(); d > 0 {
			fmt.Printf("column desyncs: %d\n", d)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// writeRawGrid prints one line per row, columns as fixed-width counts.
func writeRawGrid(w io.Writer, g *matrix.Grid[uint16]) {
	var b strings.Builder
	b.WriteString("row |")
	for c := 0; c < g.Cols(); c++ {
		fmt.Fprintf(&b, " %4d", c)
	}
	b.WriteString("\n")
	b.WriteString("----+" + strings.Repeat("-----", g.Cols()) + "\n")
	for r := 0; r < g.Rows(); r++ {
		fmt.Fprintf(&b, "%3d |", r)
		for c := 0; c < g.Cols(); c++ {
			fmt.Fprintf(&b, " %4d", *g.At(r, c))
		}
		b.WriteString("\n")
	}
	io.WriteString(w, b.String())
}
