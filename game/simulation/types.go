package simulation

import "github.com/wricardo/gridnav/game/engine"

// Step records one applied movement. MoveNumber is 1-based.
type Step struct {
	MoveNumber int `json:"move_number"`
	engine.MoveResult
}

// Result summarises a run
type Result struct {
	Start    engine.Position `json:"start"`
	Final    engine.Position `json:"final"`
	Steps    []Step          `json:"steps"`
	Accepted int             `json:"accepted"`
	Rejected int             `json:"rejected"`
}

// Reporter receives every step of a run and the final result
type Reporter interface {
	Moved(step Step) error
	Finished(result *Result) error
}
