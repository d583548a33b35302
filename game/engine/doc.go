// Package engine provides the core movement logic for grid navigation.
//
// The engine package implements:
//   - Positions on a fixed-size grid and unit-step movement arithmetic
//   - A grid of passable and impassable cells with bounds checking
//   - An agent that applies one movement at a time, committing only valid moves
//
// Core Types:
//
// Grid is the authoritative source of which cells may be occupied. It exposes
// a forgiving API (IsPassable, IsValidPosition, SetImpassable) that treats
// out-of-range coordinates as blocked or ignores them, and a strict API
// (Validate, SetCellState, CellState) that reports ErrOutOfBounds.
//
// Agent holds the current Position and a pointer to a Grid owned by the
// caller. Every move is validated against the grid as it is at that moment.
//
// Usage:
//
//	grid, err := engine.NewGrid(5, 5)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	agent, err := engine.NewAgent(grid, engine.Position{X: 2, Y: 2})
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	agent.Move(engine.North) // (2, 1)
//	agent.Move(engine.North) // border, rejected: stays at (2, 1)
//
// Movement Rules:
//
// A move that would leave the grid or enter an impassable cell is rejected.
// Rejection is not an error: the agent keeps its position and is ready for
// the next movement.
package engine
