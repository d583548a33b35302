package loader

import (
	"fmt"
	"path/filepath"
	"sort"

	"github.com/wricardo/gridnav/game/engine"
)

// Report captures the outcome of inspecting a single map file.
// If Valid is true, Notes holds informational lines; otherwise Errors holds
// the problems that were found.
type Report struct {
	File       string            `json:"file"`
	Valid      bool              `json:"valid"`
	Width      int               `json:"width,omitempty"`
	Height     int               `json:"height,omitempty"`
	Passable   int               `json:"passable,omitempty"`
	OpenBorder []engine.Position `json:"open_border,omitempty"`
	Errors     []string          `json:"errors,omitempty"`
	Notes      []string          `json:"notes,omitempty"`
}

// Inspect loads a map file and summarises it. Load failures are recorded in
// the report rather than returned.
func Inspect(path string) Report {
	report := Report{
		File:  filepath.Base(path),
		Valid: true,
	}

	grid, err := LoadGrid(path)
	if err != nil {
		report.Valid = false
		report.Errors = append(report.Errors, err.Error())
		return report
	}

	report.Width = grid.Width()
	report.Height = grid.Height()
	report.Passable = engine.CountPassable(grid)
	report.OpenBorder = engine.OpenBorderCells(grid)

	if report.Passable == 0 {
		report.Valid = false
		report.Errors = append(report.Errors, "Map has no passable cells")
		return report
	}

	report.Notes = append(report.Notes, fmt.Sprintf("✓ Grid: %dx%d", report.Width, report.Height))
	report.Notes = append(report.Notes, fmt.Sprintf("✓ Passable cells: %d/%d", report.Passable, report.Width*report.Height))
	if n := len(report.OpenBorder); n > 0 {
		report.Notes = append(report.Notes, fmt.Sprintf("⚠ Open border cells: %d (agent can stand on the edge)", n))
	}

	return report
}

// InspectDir inspects every file in dir matching pattern, sorted by name
func InspectDir(dir, pattern string) ([]Report, error) {
	files, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("failed to list map files: %w", err)
	}
	sort.Strings(files)

	reports := make([]Report, 0, len(files))
	for _, file := range files {
		reports = append(reports, Inspect(file))
	}
	return reports, nil
}
