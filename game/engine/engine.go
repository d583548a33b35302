package engine

import "fmt"

// Observer is notified when the agent rejects a movement
type Observer interface {
	OnRejected(result MoveResult)
}

// ObserverFunc adapts a function to the Observer interface
type ObserverFunc func(result MoveResult)

// OnRejected calls f(result)
func (f ObserverFunc) OnRejected(result MoveResult) {
	f(result)
}

// Agent moves across a shared Grid one step at a time. The grid is owned by
// the caller and may change between moves.
type Agent struct {
	grid     *Grid
	position Position
	observer Observer
}

// NewAgent places an agent on grid at start. The start position must be
// inside the grid and passable.
func NewAgent(grid *Grid, start Position) (*Agent, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	if err := grid.Validate(start); err != nil {
		return nil, err
	}
	if !grid.IsValidPosition(start) {
		return nil, fmt.Errorf("%w: %s", ErrBlockedStart, start)
	}

	return &Agent{
		grid:     grid,
		position: start,
	}, nil
}

// SetObserver sets the observer notified of rejected movements. nil disables
// notifications.
func (a *Agent) SetObserver(o Observer) {
	a.observer = o
}

// Position returns the current position
func (a *Agent) Position() Position {
	return a.position
}

// Grid returns the grid the agent moves on
func (a *Agent) Grid() *Grid {
	return a.grid
}

// Step applies movement m and describes the outcome. The candidate position
// is committed only if the grid currently allows it.
func (a *Agent) Step(m Movement) MoveResult {
	result := MoveResult{
		Movement: m,
		From:     a.position,
		To:       a.position,
	}

	candidate := a.position.Apply(m)
	if a.grid.IsValidPosition(candidate) {
		a.position = candidate
		result.To = candidate
		result.Accepted = true
		return result
	}

	if a.observer != nil {
		a.observer.OnRejected(result)
	}
	return result
}

// Move applies movement m and returns the resulting position, which is
// unchanged if the move was rejected.
func (a *Agent) Move(m Movement) Position {
	return a.Step(m).To
}

// CanMove reports whether movement m would currently be accepted
func (a *Agent) CanMove(m Movement) bool {
	return a.grid.IsValidPosition(a.position.Apply(m))
}

// PossibleMoves returns all movements that would currently be accepted
func (a *Agent) PossibleMoves() []Movement {
	var possible []Movement
	for _, m := range AllMovements() {
		if a.CanMove(m) {
			possible = append(possible, m)
		}
	}
	return possible
}
