package loader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/wricardo/gridnav/game/engine"
)

var (
	ErrEmptyGrid             = errors.New("grid has no rows")
	ErrInconsistentRows      = errors.New("inconsistent row lengths in grid")
	ErrInvalidPositionFormat = errors.New("invalid initial position format")
	ErrInvalidMovementFormat = errors.New("invalid movement format")
	ErrMissingPosition       = errors.New("script has no position line")
	ErrMissingMovements      = errors.New("script has no movement line")
)

// Script is a start position and the movements to apply from it
type Script struct {
	Start     engine.Position   `json:"start"`
	Movements []engine.Movement `json:"movements"`
}

// readLines splits r into lines with any trailing \r removed
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// ParseGrid builds a grid from map text. Width is measured in characters,
// not bytes. Trailing empty lines are ignored.
func ParseGrid(r io.Reader) (*engine.Grid, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read grid: %w", err)
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, ErrEmptyGrid
	}

	height := len(lines)
	width := utf8.RuneCountInString(lines[0])
	for i, line := range lines {
		if n := utf8.RuneCountInString(line); n != width {
			return nil, fmt.Errorf("%w: row %d has %d characters, expected %d", ErrInconsistentRows, i+1, n, width)
		}
	}

	grid, err := engine.NewGrid(width, height)
	if err != nil {
		return nil, err
	}

	for y, line := range lines {
		x := 0
		for _, c := range line {
			state := engine.Impassable
			if c == ' ' {
				state = engine.Passable
			}
			if err := grid.SetCellState(x, y, state); err != nil {
				return nil, err
			}
			x++
		}
	}

	return grid, nil
}

// ParsePosition parses a start position of the form "x,y". The line must
// contain exactly one comma; spaces around each number are allowed.
func ParsePosition(line string) (engine.Position, error) {
	line = strings.TrimSpace(line)
	if strings.Count(line, ",") != 1 {
		return engine.Position{}, fmt.Errorf("%w: %q must contain exactly one comma", ErrInvalidPositionFormat, line)
	}

	parts := strings.SplitN(line, ",", 2)
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return engine.Position{}, fmt.Errorf("%w: x in %q: %v", ErrInvalidPositionFormat, line, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return engine.Position{}, fmt.Errorf("%w: y in %q: %v", ErrInvalidPositionFormat, line, err)
	}

	return engine.Position{X: x, Y: y}, nil
}

// ParseMovements parses a movement line. Whitespace is skipped; any symbol
// other than N, S, E or W fails the whole line.
func ParseMovements(line string) ([]engine.Movement, error) {
	movements := []engine.Movement{}
	column := 0
	for _, c := range line {
		column++
		if unicode.IsSpace(c) {
			continue
		}
		m, ok := engine.ParseMovement(c)
		if !ok {
			return nil, fmt.Errorf("%w: %q at column %d", ErrInvalidMovementFormat, c, column)
		}
		movements = append(movements, m)
	}
	return movements, nil
}

// ParseScript reads a two-line script: start position, then movements
func ParseScript(r io.Reader) (Script, error) {
	lines, err := readLines(r)
	if err != nil {
		return Script{}, fmt.Errorf("failed to read script: %w", err)
	}
	if len(lines) == 0 {
		return Script{}, ErrMissingPosition
	}

	start, err := ParsePosition(lines[0])
	if err != nil {
		return Script{}, err
	}

	if len(lines) < 2 {
		return Script{}, ErrMissingMovements
	}
	movements, err := ParseMovements(lines[1])
	if err != nil {
		return Script{}, err
	}

	return Script{Start: start, Movements: movements}, nil
}

// LoadGrid reads a map file
func LoadGrid(path string) (*engine.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open grid file: %w", err)
	}
	defer f.Close()

	grid, err := ParseGrid(f)
	if err != nil {
		return nil, fmt.Errorf("grid file %s: %w", path, err)
	}
	return grid, nil
}

// LoadScript reads a script file
func LoadScript(path string) (Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return Script{}, fmt.Errorf("failed to open script file: %w", err)
	}
	defer f.Close()

	script, err := ParseScript(f)
	if err != nil {
		return Script{}, fmt.Errorf("script file %s: %w", path, err)
	}
	return script, nil
}
