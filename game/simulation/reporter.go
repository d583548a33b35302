package simulation

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/wricardo/gridnav/game/engine"
)

// TextReporter prints the agent's position after every movement and a
// notice for every rejected movement.
type TextReporter struct {
	w      io.Writer
	grid   *engine.Grid
	render bool
	err    error
}

// NewTextReporter creates a reporter writing to w
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{w: w}
}

// WithRender makes the reporter draw grid with the agent after the final
// position.
func (r *TextReporter) WithRender(grid *engine.Grid) *TextReporter {
	r.grid = grid
	r.render = grid != nil
	return r
}

// OnRejected writes the rejection notice. Write errors are kept and
// returned from the next Moved call.
func (r *TextReporter) OnRejected(result engine.MoveResult) {
	if r.err != nil {
		return
	}
	_, r.err = fmt.Fprintf(r.w, "rejected: %s from %s blocked at %s\n",
		result.Movement, result.From, result.Candidate())
}

// Moved writes the current position
func (r *TextReporter) Moved(step Step) error {
	if r.err != nil {
		return r.err
	}
	_, r.err = fmt.Fprintln(r.w, step.To)
	return r.err
}

// Finished writes a one-line summary and, if enabled, the rendered grid
func (r *TextReporter) Finished(result *Result) error {
	if r.err != nil {
		return r.err
	}
	_, r.err = fmt.Fprintf(r.w, "final position: %s (%d accepted, %d rejected)\n",
		result.Final, result.Accepted, result.Rejected)
	if r.err == nil && r.render {
		final := result.Final
		_, r.err = fmt.Fprintln(r.w, strings.Join(engine.Render(r.grid, &final), "\n"))
	}
	return r.err
}

// JSONReporter writes the full result as indented JSON when the run ends
type JSONReporter struct {
	w io.Writer
}

// NewJSONReporter creates a reporter writing to w
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

// Moved is a no-op; steps are written with the result
func (r *JSONReporter) Moved(Step) error {
	return nil
}

// Finished encodes result
func (r *JSONReporter) Finished(result *Result) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}
