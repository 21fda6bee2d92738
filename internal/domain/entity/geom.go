package entity

// Vec2 is a world-space vector in pixels (or pixels/sec for velocities).
type Vec2 struct {
	X, Y float64
}

// Add returns v + o
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v * s
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// AABB is an axis-aligned bounding box. X, Y is the top-left corner;
// Y grows downward like the screen.
type AABB struct {
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (b AABB) Right() float64 { return b.X + b.W }

// Bottom returns the y-coordinate of the bottom edge.
func (b AABB) Bottom() float64 { return b.Y + b.H }

// Center returns the centre point of the box.
func (b AABB) Center() Vec2 {
	return Vec2{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

// Translate returns the box moved by d.
func (b AABB) Translate(d Vec2) AABB {
	b.X += d.X
	b.Y += d.Y
	return b
}

// Intersects reports whether both boxes overlap by a positive amount on both axes.
// Boxes that only share an edge do not intersect.
func (b AABB) Intersects(o AABB) bool {
	return overlapX(b, o) > 0 && overlapY(b, o) > 0
}

// Overlap computes the minimum translation that separates a from b.
//
// The correction is along the axis with the smaller overlap; ties go to the
// vertical axis. Its sign pushes a away from b: negative X when a sits to the
// left of b, negative Y when a sits above b. ok is false when the boxes do
// not overlap on both axes.
func Overlap(a, b AABB) (correction Vec2, ok bool) {
	ox := overlapX(a, b)
	oy := overlapY(a, b)
	if ox <= 0 || oy <= 0 {
		return Vec2{}, false
	}

	ac := a.Center()
	bc := b.Center()

	if ox < oy {
		if ac.X < bc.X {
			return Vec2{X: -ox}, true
		}
		return Vec2{X: ox}, true
	}

	if ac.Y < bc.Y {
		return Vec2{Y: -oy}, true
	}
	return Vec2{Y: oy}, true
}

func overlapX(a, b AABB) float64 {
	return min(a.Right(), b.Right()) - max(a.X, b.X)
}

func overlapY(a, b AABB) float64 {
	return min(a.Bottom(), b.Bottom()) - max(a.Y, b.Y)
}
