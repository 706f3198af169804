package matrix

import "fmt"

// MaxDim is the largest row or column count; key positions travel as uint8.
const MaxDim = 255

// Grid is fixed row-major storage for one value per key.
type Grid[T any] struct {
	rows, cols int
	cells      []T
}

// NewGrid allocates a rows×cols grid of zero values.
func NewGrid[T any](rows, cols int) (*Grid[T], error) {
	if rows < 1 || rows > MaxDim || cols < 1 || cols > MaxDim {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadDimensions, rows, cols)
	}
	return &Grid[T]{rows: rows, cols: cols, cells: make([]T, rows*cols)}, nil
}

func (g *Grid[T]) Rows() int { return g.rows }

func (g *Grid[T]) Cols() int { return g.cols }

// At returns the cell at (row, col), or nil outside the grid.
func (g *Grid[T]) At(row, col int) *T {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return nil
	}
	return &g.cells[row*g.cols+col]
}

// Each visits every cell in row-major order.
func (g *Grid[T]) Each(fn func(row, col int, v *T)) {
	for i := range g.cells {
		fn(i/g.cols, i%g.cols, &g.cells[i])
	}
}
