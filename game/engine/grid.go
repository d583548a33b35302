package engine

import "fmt"

// Grid is a fixed-size rectangular field of cells. Cells are stored row-major
// as cells[y][x].
type Grid struct {
	width  int
	height int
	cells  [][]CellState
}

// NewGrid creates a width x height grid. Every cell starts passable, then the
// border is forced impassable, so a grid thinner than 3 cells in either
// direction has no passable cell at all.
func NewGrid(width, height int) (*Grid, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}

	cells := make([][]CellState, height)
	for y := range cells {
		cells[y] = make([]CellState, width)
	}

	g := &Grid{
		width:  width,
		height: height,
		cells:  cells,
	}
	g.setBorderImpassable()
	return g, nil
}

func (g *Grid) setBorderImpassable() {
	for x := 0; x < g.width; x++ {
		g.cells[0][x] = Impassable
		g.cells[g.height-1][x] = Impassable
	}
	for y := 0; y < g.height; y++ {
		g.cells[y][0] = Impassable
		g.cells[y][g.width-1] = Impassable
	}
}

// Width returns the number of columns
func (g *Grid) Width() int {
	return g.width
}

// Height returns the number of rows
func (g *Grid) Height() int {
	return g.height
}

func (g *Grid) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Validate returns ErrOutOfBounds if p lies outside the grid
func (g *Grid) Validate(p Position) error {
	if !g.inBounds(p.X, p.Y) {
		return fmt.Errorf("%w: %s outside %dx%d grid", ErrOutOfBounds, p, g.width, g.height)
	}
	return nil
}

// IsPassable reports whether the cell at x, y may be occupied.
// Out-of-range coordinates are not passable.
func (g *Grid) IsPassable(x, y int) bool {
	if !g.inBounds(x, y) {
		return false
	}
	return g.cells[y][x] == Passable
}

// IsValidPosition reports whether an agent may stand at p
func (g *Grid) IsValidPosition(p Position) bool {
	return g.IsPassable(p.X, p.Y)
}

// SetImpassable marks the cell at x, y as an obstacle. Out-of-range
// coordinates are ignored.
func (g *Grid) SetImpassable(x, y int) {
	if g.inBounds(x, y) {
		g.cells[y][x] = Impassable
	}
}

// SetCellState sets the state of the cell at x, y, failing with
// ErrInvalidCoordinate if it lies outside the grid.
func (g *Grid) SetCellState(x, y int, state CellState) error {
	if !g.inBounds(x, y) {
		return fmt.Errorf("%w: (%d, %d) outside %dx%d grid", ErrInvalidCoordinate, x, y, g.width, g.height)
	}
	g.cells[y][x] = state
	return nil
}

// CellState returns the state of the cell at x, y, failing with
// ErrOutOfBounds if it lies outside the grid.
func (g *Grid) CellState(x, y int) (CellState, error) {
	if err := g.Validate(Position{X: x, Y: y}); err != nil {
		return Impassable, err
	}
	return g.cells[y][x], nil
}
