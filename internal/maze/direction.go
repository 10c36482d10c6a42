package maze

import "strings"

// Direction names one of the four door slots of a location.
type Direction int

const (
	North Direction = iota
	South
	East
	West
)

// Directions lists every direction in slot order. Engine results that contain
// directions are always sorted in this order.
var Directions = [...]Direction{North, South, East, West}

// Valid reports whether d is one of the four slots.
func (d Direction) Valid() bool { return d >= North && d <= West }

// Opposite returns the slot on the far side of a door leaving in direction d.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return d
}

func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	}
	return "Unknown"
}

// Short returns the single-letter form used by the text console.
func (d Direction) Short() string {
	if !d.Valid() {
		return "?"
	}
	return d.String()[:1]
}

// ParseDirection accepts a single letter or a full direction name in any case.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n", "north":
		return North, nil
	case "s", "south":
		return South, nil
	case "e", "east":
		return East, nil
	case "w", "west":
		return West, nil
	}
	return 0, invalidArgument("this is not a valid direction")
}
