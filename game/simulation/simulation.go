package simulation

import (
	"context"
	"fmt"

	"github.com/wricardo/gridnav/game/engine"
)

// Simulation applies movements to a single agent on a shared grid
type Simulation struct {
	grid      *engine.Grid
	agent     *engine.Agent
	start     engine.Position
	steps     []Step
	reporters []Reporter
	observers []engine.Observer
}

// New places an agent on grid at start. The grid stays owned by the caller;
// changes made to it between movements are seen by the next movement.
func New(grid *engine.Grid, start engine.Position) (*Simulation, error) {
	agent, err := engine.NewAgent(grid, start)
	if err != nil {
		return nil, fmt.Errorf("failed to place agent: %w", err)
	}

	s := &Simulation{
		grid:  grid,
		agent: agent,
		start: start,
		steps: []Step{},
	}
	agent.SetObserver(engine.ObserverFunc(s.notifyRejected))
	return s, nil
}

// AddReporter registers r. If r also implements engine.Observer it is told
// about rejections as they happen, before the step is reported.
func (s *Simulation) AddReporter(r Reporter) {
	s.reporters = append(s.reporters, r)
	if o, ok := r.(engine.Observer); ok {
		s.observers = append(s.observers, o)
	}
}

func (s *Simulation) notifyRejected(result engine.MoveResult) {
	for _, o := range s.observers {
		o.OnRejected(result)
	}
}

// Position returns the agent's current position. The agent itself stays
// private so its rejection observer cannot be replaced.
func (s *Simulation) Position() engine.Position {
	return s.agent.Position()
}

// Grid returns the grid the agent moves on
func (s *Simulation) Grid() *engine.Grid {
	return s.grid
}

// Apply applies a single movement, records it and reports it
func (s *Simulation) Apply(m engine.Movement) (Step, error) {
	step := Step{
		MoveNumber: len(s.steps) + 1,
		MoveResult: s.agent.Step(m),
	}
	s.steps = append(s.steps, step)

	for _, r := range s.reporters {
		if err := r.Moved(step); err != nil {
			return step, fmt.Errorf("failed to report move %d: %w", step.MoveNumber, err)
		}
	}
	return step, nil
}

// Run applies movements in order and reports the final result. It stops
// early only if ctx is cancelled or a reporter fails; the partial result is
// returned alongside the error.
func (s *Simulation) Run(ctx context.Context, movements []engine.Movement) (*Result, error) {
	for _, m := range movements {
		if err := ctx.Err(); err != nil {
			return s.Result(), err
		}
		if _, err := s.Apply(m); err != nil {
			return s.Result(), err
		}
	}

	result := s.Result()
	for _, r := range s.reporters {
		if err := r.Finished(result); err != nil {
			return result, fmt.Errorf("failed to report result: %w", err)
		}
	}
	return result, nil
}

// Result returns a snapshot of the run so far
func (s *Simulation) Result() *Result {
	result := &Result{
		Start: s.start,
		Final: s.agent.Position(),
		Steps: make([]Step, len(s.steps)),
	}
	copy(result.Steps, s.steps)

	for _, step := range s.steps {
		if step.Accepted {
			result.Accepted++
		} else {
			result.Rejected++
		}
	}
	return result
}

// Run is a convenience wrapper that simulates movements from start on grid
// with the given reporters.
func Run(ctx context.Context, grid *engine.Grid, start engine.Position, movements []engine.Movement, reporters ...Reporter) (*Result, error) {
	s, err := New(grid, start)
	if err != nil {
		return nil, err
	}
	for _, r := range reporters {
		s.AddReporter(r)
	}
	return s.Run(ctx, movements)
}
