package engine

import "fmt"

// CellState represents whether a grid cell may be occupied
type CellState int

const (
	Passable CellState = iota
	Impassable
)

// String returns the lower-case name of the state
func (s CellState) String() string {
	switch s {
	case Passable:
		return "passable"
	case Impassable:
		return "impassable"
	default:
		return fmt.Sprintf("CellState(%d)", int(s))
	}
}

// Position represents x,y coordinates. Bounds are a Grid concern.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns the position shifted by dx, dy
func (p Position) Add(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Apply returns the candidate position reached by taking movement m from p
func (p Position) Apply(m Movement) Position {
	dx, dy := m.Delta()
	return p.Add(dx, dy)
}

// String renders the position as (x, y)
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// MoveResult describes a single applied movement
type MoveResult struct {
	Movement Movement `json:"movement"`
	From     Position `json:"from"`
	To       Position `json:"to"`
	Accepted bool     `json:"accepted"`
}

// Candidate returns the position the movement aimed for
func (r MoveResult) Candidate() Position {
	return r.From.Apply(r.Movement)
}
