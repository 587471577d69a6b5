package grid

import "strings"

// Direction is a bitset of the eight compass neighbours. Top is y-1.
type Direction uint8

const (
	TopLeft Direction = 1 << iota
	Top
	TopRight
	Left
	Right
	BottomLeft
	Bottom
	BottomRight
)

const (
	NoDirections Direction = 0
	// Flush selects the four orthogonal neighbours.
	Flush    = Top | Left | Right | Bottom
	Diagonal = TopLeft | TopRight | BottomLeft | BottomRight
	All      = Flush | Diagonal
)

var directionOrder = [...]struct {
	dir    Direction
	dx, dy int
	name   string
}{
	{TopLeft, -1, -1, "TopLeft"},
	{Top, 0, -1, "Top"},
	{TopRight, 1, -1, "TopRight"},
	{Left, -1, 0, "Left"},
	{Right, 1, 0, "Right"},
	{BottomLeft, -1, 1, "BottomLeft"},
	{Bottom, 0, 1, "Bottom"},
	{BottomRight, 1, 1, "BottomRight"},
}

func (d Direction) Has(other Direction) bool {
	return d&other == other
}

func (d Direction) Intersects(other Direction) bool {
	return d&other != 0
}

func (d Direction) String() string {
	if d == NoDirections {
		return "None"
	}
	names := make([]string, 0, len(directionOrder))
	for _, entry := range directionOrder {
		if d.Has(entry.dir) {
			names = append(names, entry.name)
		}
	}
	return strings.Join(names, "|")
}
