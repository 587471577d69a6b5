// Package grid provides a dense, fixed-size two-dimensional container and the
// geometry needed to address it: extents, points and neighbour masks.
package grid

import (
	"errors"
	"fmt"
	"iter"
	"math"
)

var ErrInvalidExtents = errors.New("grid extents must be positive")

type Point struct {
	X, Y int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// offset returns p moved by (dx, dy), or false if either coordinate would
// overflow. An overflowed coordinate is never aliased to another cell.
func (p Point) offset(dx, dy int) (Point, bool) {
	x, ok := addInt(p.X, dx)
	if !ok {
		return Point{}, false
	}
	y, ok := addInt(p.Y, dy)
	if !ok {
		return Point{}, false
	}
	return Point{x, y}, true
}

func addInt(a, b int) (int, bool) {
	if b > 0 && a > math.MaxInt-b {
		return 0, false
	}
	if b < 0 && a < math.MinInt-b {
		return 0, false
	}
	return a + b, true
}

// OnionDistance is the Chebyshev distance between two points: max(|dx|, |dy|).
func OnionDistance(a, b Point) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return max(dx, dy)
}

type Extents struct {
	Width, Height int
}

func NewExtents(width, height int) (Extents, error) {
	if width <= 0 || height <= 0 {
		return Extents{}, fmt.Errorf("%w: %dx%d", ErrInvalidExtents, width, height)
	}
	return Extents{Width: width, Height: height}, nil
}

func (e Extents) Area() int {
	return e.Width * e.Height
}

func (e Extents) IsValid(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < e.Width && p.Y < e.Height
}

// LinearIndex returns the row-major index of p.
func (e Extents) LinearIndex(p Point) (int, bool) {
	if !e.IsValid(p) {
		return 0, false
	}
	return p.Y*e.Width + p.X, true
}

// PositionsRowMajor yields every position with x varying fastest.
func (e Extents) PositionsRowMajor() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for y := 0; y < e.Height; y++ {
			for x := 0; x < e.Width; x++ {
				if !yield(Point{x, y}) {
					return
				}
			}
		}
	}
}

// PositionsColumnMajor yields every position with y varying fastest.
func (e Extents) PositionsColumnMajor() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for x := 0; x < e.Width; x++ {
			for y := 0; y < e.Height; y++ {
				if !yield(Point{x, y}) {
					return
				}
			}
		}
	}
}

// Neighbours yields the in-bounds neighbours of p selected by mask, in the
// order TopLeft, Top, TopRight, Left, Right, BottomLeft, Bottom, BottomRight.
func (e Extents) Neighbours(p Point, mask Direction) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		e.sendNeighbours(p, mask, yield)
	}
}

// NeighboursIncludingSelf is Neighbours with p itself first, if p is valid.
func (e Extents) NeighboursIncludingSelf(p Point, mask Direction) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		if e.IsValid(p) && !yield(p) {
			return
		}
		e.sendNeighbours(p, mask, yield)
	}
}

func (e Extents) sendNeighbours(p Point, mask Direction, yield func(Point) bool) {
	for _, d := range directionOrder {
		if !mask.Has(d.dir) {
			continue
		}
		neighbour, ok := p.offset(d.dx, d.dy)
		if !ok || !e.IsValid(neighbour) {
			continue
		}
		if !yield(neighbour) {
			return
		}
	}
}
