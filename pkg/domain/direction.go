package domain

import (
	"fmt"
	"strings"
)

// Direction is a head movement.
type Direction int

const (
	Left Direction = iota
	Right
	Stay
)

// Delta returns the head offset for the direction.
func (d Direction) Delta() int {
	switch d {
	case Left:
		return -1
	case Right:
		return 1
	default:
		return 0
	}
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "L"
	case Right:
		return "R"
	case Stay:
		return "N"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection reads "L", "R" or "N" (case-insensitive). "S" is accepted as Stay.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "L":
		return Left, nil
	case "R":
		return Right, nil
	case "N", "S":
		return Stay, nil
	}
	return Stay, fmt.Errorf("%w: unknown direction %q", ErrTransitionArgs, s)
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(b []byte) error {
	parsed, err := ParseDirection(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
