package engine

import (
	"encoding/json"
	"fmt"
)

// Movement is one of the four cardinal directions
type Movement int

const (
	North Movement = iota
	South
	East
	West
)

// AllMovements returns the movements in N, S, E, W order
func AllMovements() []Movement {
	return []Movement{North, South, East, West}
}

// Delta returns the unit coordinate delta of the movement.
// Y grows downwards, so North is (0,-1).
func (m Movement) Delta() (dx, dy int) {
	switch m {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}
	return 0, 0
}

// Opposite returns the movement that undoes m
func (m Movement) Opposite() Movement {
	switch m {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return m
}

// Symbol returns the single-letter script symbol for the movement
func (m Movement) Symbol() rune {
	switch m {
	case North:
		return 'N'
	case South:
		return 'S'
	case East:
		return 'E'
	case West:
		return 'W'
	}
	return '?'
}

// String returns the direction name
func (m Movement) String() string {
	switch m {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	}
	return fmt.Sprintf("Movement(%d)", int(m))
}

// MarshalJSON encodes the movement as its direction name
func (m Movement) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// UnmarshalJSON decodes a direction name (North) or script symbol (N)
func (m *Movement) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("movement must be a string: %w", err)
	}
	for _, candidate := range AllMovements() {
		if name == candidate.String() {
			*m = candidate
			return nil
		}
	}
	if r := []rune(name); len(r) == 1 {
		if parsed, ok := ParseMovement(r[0]); ok {
			*m = parsed
			return nil
		}
	}
	return fmt.Errorf("unknown movement %q", name)
}

// ParseMovement maps a script symbol (N, S, E, W) to a Movement
func ParseMovement(r rune) (Movement, bool) {
	switch r {
	case 'N':
		return North, true
	case 'S':
		return South, true
	case 'E':
		return East, true
	case 'W':
		return West, true
	}
	return 0, false
}
