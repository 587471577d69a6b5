package grid

import (
	"fmt"
	"iter"
)

type DimensionMismatchError struct {
	Extents Extents
	Got     int
}

func (err *DimensionMismatchError) Error() string {
	return fmt.Sprintf("dimension mismatch: %dx%d grid needs %d values, got %d",
		err.Extents.Width, err.Extents.Height, err.Extents.Area(), err.Got)
}

type NotEnoughValuesError struct {
	Extents Extents
	Got     int
}

func (err *NotEnoughValuesError) Error() string {
	return fmt.Sprintf("not enough values: %dx%d grid needs %d values, sequence ended after %d",
		err.Extents.Width, err.Extents.Height, err.Extents.Area(), err.Got)
}

type IndicesOutOfBoundsError struct {
	X, Y int
}

func (err *IndicesOutOfBoundsError) Error() string {
	return fmt.Sprintf("indices (%d, %d) out of bounds", err.X, err.Y)
}

type IndexOutOfBoundsError struct {
	Index int
}

func (err *IndexOutOfBoundsError) Error() string {
	return fmt.Sprintf("index %d out of bounds", err.Index)
}

// Grid is a dense, fixed-size 2D container stored in row-major order. It is
// never resized; build a new one to change dimensions.
type Grid[T any] struct {
	extents Extents
	cells   []T
}

// New creates a grid filled with the zero value of T.
func New[T any](extents Extents) *Grid[T] {
	return &Grid[T]{
		extents: extents,
		cells:   make([]T, extents.Area()),
	}
}

func NewFilled[T any](extents Extents, value T) *Grid[T] {
	g := New[T](extents)
	for i := range g.cells {
		g.cells[i] = value
	}
	return g
}

// NewWith calls generate once per cell, in row-major order.
func NewWith[T any](extents Extents, generate func(Point) T) *Grid[T] {
	g := New[T](extents)
	i := 0
	for p := range extents.PositionsRowMajor() {
		g.cells[i] = generate(p)
		i++
	}
	return g
}

func FromRowMajor[T any](extents Extents, data []T) (*Grid[T], error) {
	if len(data) != extents.Area() {
		return nil, &DimensionMismatchError{Extents: extents, Got: len(data)}
	}
	g := New[T](extents)
	copy(g.cells, data)
	return g, nil
}

// FromColumnMajor transposes data, where consecutive values walk down a column.
func FromColumnMajor[T any](extents Extents, data []T) (*Grid[T], error) {
	if len(data) != extents.Area() {
		return nil, &DimensionMismatchError{Extents: extents, Got: len(data)}
	}
	g := New[T](extents)
	i := 0
	for p := range extents.PositionsColumnMajor() {
		g.cells[p.Y*extents.Width+p.X] = data[i]
		i++
	}
	return g, nil
}

// FromSeq fills the grid in row-major order. Values beyond the cell count are
// ignored.
func FromSeq[T any](extents Extents, values iter.Seq[T]) (*Grid[T], error) {
	g := New[T](extents)
	n := 0
	if len(g.cells) > 0 {
		for v := range values {
			g.cells[n] = v
			n++
			if n == len(g.cells) {
				break
			}
		}
	}
	if n < len(g.cells) {
		return nil, &NotEnoughValuesError{Extents: extents, Got: n}
	}
	return g, nil
}

func (g *Grid[T]) Extents() Extents {
	return g.extents
}

func (g *Grid[T]) Width() int {
	return g.extents.Width
}

func (g *Grid[T]) Height() int {
	return g.extents.Height
}

func (g *Grid[T]) Get(x, y int) (T, bool) {
	if ptr := g.Ptr(x, y); ptr != nil {
		return *ptr, true
	}
	var zero T
	return zero, false
}

// Ptr returns a pointer to the cell at (x, y), or nil if out of bounds.
func (g *Grid[T]) Ptr(x, y int) *T {
	i, ok := g.extents.LinearIndex(Point{x, y})
	if !ok {
		return nil
	}
	return &g.cells[i]
}

func (g *Grid[T]) GetRowMajor(index int) (T, bool) {
	if index < 0 || index >= len(g.cells) {
		var zero T
		return zero, false
	}
	return g.cells[index], true
}

// GetColumnMajor addresses the cell at x = index % height, y = index / height.
// The divisor is the height, not the width.
func (g *Grid[T]) GetColumnMajor(index int) (T, bool) {
	p, ok := g.columnMajorPoint(index)
	if !ok {
		var zero T
		return zero, false
	}
	return g.Get(p.X, p.Y)
}

func (g *Grid[T]) columnMajorPoint(index int) (Point, bool) {
	if index < 0 || g.extents.Height <= 0 {
		return Point{}, false
	}
	p := Point{X: index % g.extents.Height, Y: index / g.extents.Height}
	return p, g.extents.IsValid(p)
}

func (g *Grid[T]) Set(x, y int, value T) error {
	ptr := g.Ptr(x, y)
	if ptr == nil {
		return &IndicesOutOfBoundsError{X: x, Y: y}
	}
	*ptr = value
	return nil
}

func (g *Grid[T]) SetRowMajor(index int, value T) error {
	if index < 0 || index >= len(g.cells) {
		return &IndexOutOfBoundsError{Index: index}
	}
	g.cells[index] = value
	return nil
}

func (g *Grid[T]) SetColumnMajor(index int, value T) error {
	p, ok := g.columnMajorPoint(index)
	if !ok {
		return &IndexOutOfBoundsError{Index: index}
	}
	return g.Set(p.X, p.Y, value)
}

// At returns the value at p and panics if p is out of bounds. Only use it
// where p is known to be valid.
func (g *Grid[T]) At(p Point) T {
	return *g.mustPtr(p)
}

// Put stores value at p and panics if p is out of bounds.
func (g *Grid[T]) Put(p Point, value T) {
	*g.mustPtr(p) = value
}

func (g *Grid[T]) mustPtr(p Point) *T {
	ptr := g.Ptr(p.X, p.Y)
	if ptr == nil {
		panic(&IndicesOutOfBoundsError{X: p.X, Y: p.Y})
	}
	return ptr
}

// Fill overwrites every cell with value.
func (g *Grid[T]) Fill(value T) {
	for i := range g.cells {
		g.cells[i] = value
	}
}

func (g *Grid[T]) Clone() *Grid[T] {
	clone := New[T](g.extents)
	copy(clone.cells, g.cells)
	return clone
}

// AsRowMajor returns a copy of the cells in row-major order.
func (g *Grid[T]) AsRowMajor() []T {
	out := make([]T, len(g.cells))
	copy(out, g.cells)
	return out
}

func (g *Grid[T]) AsColumnMajor() []T {
	out := make([]T, 0, len(g.cells))
	for v := range g.ColumnMajor() {
		out = append(out, v)
	}
	return out
}

func (g *Grid[T]) RowMajor() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range g.cells {
			if !yield(v) {
				return
			}
		}
	}
}

func (g *Grid[T]) ColumnMajor() iter.Seq[T] {
	return func(yield func(T) bool) {
		for p := range g.extents.PositionsColumnMajor() {
			if !yield(g.cells[p.Y*g.extents.Width+p.X]) {
				return
			}
		}
	}
}

// Row yields the values of row y, left to right. Empty if y is out of range.
func (g *Grid[T]) Row(y int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if y < 0 || y >= g.extents.Height {
			return
		}
		for _, v := range g.cells[y*g.extents.Width : (y+1)*g.extents.Width] {
			if !yield(v) {
				return
			}
		}
	}
}

// Column yields the values of column x, top to bottom.
func (g *Grid[T]) Column(x int) iter.Seq[T] {
	return func(yield func(T) bool) {
		if x < 0 || x >= g.extents.Width {
			return
		}
		for y := 0; y < g.extents.Height; y++ {
			if !yield(g.cells[y*g.extents.Width+x]) {
				return
			}
		}
	}
}

func (g *Grid[T]) EnumerateRowMajor() iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		i := 0
		for p := range g.extents.PositionsRowMajor() {
			if !yield(p, g.cells[i]) {
				return
			}
			i++
		}
	}
}

func (g *Grid[T]) EnumerateColumnMajor() iter.Seq2[Point, T] {
	return func(yield func(Point, T) bool) {
		for p := range g.extents.PositionsColumnMajor() {
			if !yield(p, g.cells[p.Y*g.extents.Width+p.X]) {
				return
			}
		}
	}
}
