// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect is an axis-aligned rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is an axis-aligned bounding box in world units.
// Games simulate in world units and only the renderer converts to cells.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// NewBox creates a box with the given position and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Center returns the center point of the box.
func (b Box) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Intersects returns true if this box overlaps another.
// Touching edges do not count as overlap.
func (b Box) Intersects(other Box) bool {
	// No overlap if one box is completely to the left, right, above, or below
	if b.X >= other.Right() || other.X >= b.Right() {
		return false
	}
	if b.Y >= other.Bottom() || other.Y >= b.Bottom() {
		return false
	}
	return true
}

// Approach moves pos a fraction k of the way toward target.
// Repeated every tick it produces the lagging "chase" motion used for lane
// snapping and monster pursuit.
func Approach(pos, target, k float64) float64 {
	return pos + (target-pos)*k
}

// World describes the simulation field size in world units.
type World struct {
	W float64 `yaml:"width"`
	H float64 `yaml:"height"`
}

// Viewport maps world coordinates onto a screen of the given cell size.
type Viewport struct {
	world World
	cols  int
	rows  int
}

// NewViewport creates a viewport scaling world onto cols x rows cells.
func NewViewport(world World, cols, rows int) Viewport {
	return Viewport{world: world, cols: cols, rows: rows}
}

// Col converts a world x coordinate to a screen column.
func (v Viewport) Col(x float64) int {
	if v.world.W <= 0 {
		return 0
	}
	return int(math.Floor(x * float64(v.cols) / v.world.W))
}

// Row converts a world y coordinate to a screen row.
func (v Viewport) Row(y float64) int {
	if v.world.H <= 0 {
		return 0
	}
	return int(math.Floor(y * float64(v.rows) / v.world.H))
}

// X converts a screen column back to the world x at the cell's center.
func (v Viewport) X(col int) float64 {
	if v.cols <= 0 {
		return 0
	}
	return (float64(col) + 0.5) * v.world.W / float64(v.cols)
}

// Y converts a screen row back to the world y at the cell's center.
func (v Viewport) Y(row int) float64 {
	if v.rows <= 0 {
		return 0
	}
	return (float64(row) + 0.5) * v.world.H / float64(v.rows)
}

// BoxRect converts a world box to the screen cells it covers.
// Non-empty boxes always cover at least one cell.
func (v Viewport) BoxRect(b Box) Rect {
	x0, y0 := v.Col(b.X), v.Row(b.Y)
	x1, y1 := v.Col(b.Right()), v.Row(b.Bottom())
	return NewRect(x0, y0, Max(1, x1-x0), Max(1, y1-y0))
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// AbsF returns the absolute value of a float64.
func AbsF(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
