package engine

import (
	"errors"
	"testing"
)

func createTestAgent(t *testing.T) (*Agent, *Grid) {
	t.Helper()
	grid := mustGrid(t, 5, 5)
	agent, err := NewAgent(grid, Position{X: 2, Y: 2})
	if err != nil {
		t.Fatalf("Failed to create agent: %v", err)
	}
	return agent, grid
}

func TestNewAgent(t *testing.T) {
	agent, grid := createTestAgent(t)

	if agent.Position() != (Position{X: 2, Y: 2}) {
		t.Errorf("Expected start (2, 2), got %v", agent.Position())
	}
	if agent.Grid() != grid {
		t.Error("Expected agent to reference the caller's grid")
	}
}

func TestNewAgent_InvalidStart(t *testing.T) {
	grid := mustGrid(t, 5, 5)

	tests := []struct {
		name  string
		grid  *Grid
		start Position
		err   error
	}{
		{"nil grid", nil, Position{X: 1, Y: 1}, ErrNilGrid},
		{"outside grid", grid, Position{X: 3, Y: 5}, ErrOutOfBounds},
		{"negative", grid, Position{X: -1, Y: 2}, ErrOutOfBounds},
		{"on border", grid, Position{X: 0, Y: 2}, ErrBlockedStart},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			agent, err := NewAgent(test.grid, test.start)
			if !errors.Is(err, test.err) {
				t.Errorf("Expected %v, got %v", test.err, err)
			}
			if agent != nil {
				t.Error("Expected nil agent")
			}
		})
	}
}

func TestMove_Scenario(t *testing.T) {
	agent, _ := createTestAgent(t)

	steps := []struct {
		movement Movement
		expected Position
	}{
		{North, Position{X: 2, Y: 1}},
		{North, Position{X: 2, Y: 1}}, // border
		{East, Position{X: 3, Y: 1}},
		{East, Position{X: 3, Y: 1}}, // border
	}

	for i, step := range steps {
		got := agent.Move(step.movement)
		if got != step.expected {
			t.Errorf("Step %d (%s): expected %v, got %v", i+1, step.movement, step.expected, got)
		}
	}

	if agent.Position() != (Position{X: 3, Y: 1}) {
		t.Errorf("Expected final position (3, 1), got %v", agent.Position())
	}
}

func TestStep_CommitAndReject(t *testing.T) {
	agent, grid := createTestAgent(t)
	grid.SetImpassable(2, 3)

	result := agent.Step(South)
	if result.Accepted {
		t.Error("Expected move into obstacle to be rejected")
	}
	if result.From != result.To || result.To != (Position{X: 2, Y: 2}) {
		t.Errorf("Expected rejected move to stay at (2, 2), got %+v", result)
	}

	result = agent.Step(West)
	if !result.Accepted {
		t.Error("Expected move onto passable cell to be accepted")
	}
	if result.To != result.Candidate() {
		t.Errorf("Expected accepted move to land on candidate %v, got %v", result.Candidate(), result.To)
	}
}

func TestMove_SeesGridChanges(t *testing.T) {
	agent, grid := createTestAgent(t)

	if !agent.CanMove(East) {
		t.Fatal("Expected East to be open before obstacle is added")
	}

	grid.SetImpassable(3, 2)
	if agent.Move(East) != (Position{X: 2, Y: 2}) {
		t.Error("Expected move into newly added obstacle to be rejected")
	}

	if err := grid.SetCellState(3, 2, Passable); err != nil {
		t.Fatal(err)
	}
	if agent.Move(East) != (Position{X: 3, Y: 2}) {
		t.Error("Expected move to succeed after obstacle is cleared")
	}
}

func TestMove_ContinuesAfterRejection(t *testing.T) {
	agent, _ := createTestAgent(t)

	moves := []Movement{North, North, North, South, South, South, South}
	for _, m := range moves {
		agent.Move(m)
	}

	if agent.Position() != (Position{X: 2, Y: 3}) {
		t.Errorf("Expected (2, 3), got %v", agent.Position())
	}
}

func TestMove_Deterministic(t *testing.T) {
	moves := []Movement{North, East, East, South, West, North, North, West, West, South}

	run := func() Position {
		agent, _ := createTestAgent(t)
		for _, m := range moves {
			agent.Move(m)
		}
		return agent.Position()
	}

	first := run()
	for i := 0; i < 5; i++ {
		if got := run(); got != first {
			t.Errorf("Run %d: expected %v, got %v", i, first, got)
		}
	}
}

func TestObserver(t *testing.T) {
	agent, _ := createTestAgent(t)

	var rejected []MoveResult
	agent.SetObserver(ObserverFunc(func(r MoveResult) {
		rejected = append(rejected, r)
	}))

	agent.Move(North)
	agent.Move(North)
	agent.Move(West)
	agent.Move(West)

	if len(rejected) != 2 {
		t.Fatalf("Expected 2 rejections, got %d", len(rejected))
	}
	if rejected[0].Movement != North || rejected[0].From != (Position{X: 2, Y: 1}) {
		t.Errorf("Unexpected first rejection: %+v", rejected[0])
	}
	if rejected[1].Movement != West || rejected[1].From != (Position{X: 1, Y: 1}) {
		t.Errorf("Unexpected second rejection: %+v", rejected[1])
	}

	agent.SetObserver(nil)
	agent.Move(West)
	if len(rejected) != 2 {
		t.Error("Expected no notifications after observer is cleared")
	}
}

func TestPossibleMoves(t *testing.T) {
	agent, grid := createTestAgent(t)

	if got := agent.PossibleMoves(); len(got) != 4 {
		t.Errorf("Expected 4 possible moves from centre, got %v", got)
	}

	grid.SetImpassable(2, 1)
	grid.SetImpassable(1, 2)
	got := agent.PossibleMoves()
	if len(got) != 2 || got[0] != South || got[1] != East {
		t.Errorf("Expected [South East], got %v", got)
	}
}
