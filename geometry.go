package main

import "math"

// Circle is a collision shape: center in world pixels, radius in pixels.
type Circle struct {
	X, Y   float64
	Radius float64
}

// BoundingBox is an axis-aligned box: top-left corner plus extents.
type BoundingBox struct {
	X, Y          float64
	Width, Height float64
}

// CenterX returns the box center X coordinate.
func (b BoundingBox) CenterX() float64 { return b.X + b.Width/2 }

// CenterY returns the box center Y coordinate.
func (b BoundingBox) CenterY() float64 { return b.Y + b.Height/2 }

// CollisionNormal is a unit vector pointing from the first shape toward the
// second. It is the zero vector when the shapes share an exact center.
type CollisionNormal struct {
	X, Y float64
}

// CollisionResult is the outcome of a narrow-phase test. Overlap is the
// minimum translation magnitude needed to separate the shapes, 0 when not
// colliding. Distance depends on the test: center-to-center for
// circle-circle, center-to-nearest-point for circle-box, 0 for box-box.
type CollisionResult struct {
	Collided bool
	Distance float64
	Overlap  float64
	Normal   CollisionNormal
}

// CircleCircle tests two circles. Touching circles (distance exactly equal
// to the radius sum) do not collide.
func CircleCircle(a, b Circle) CollisionResult {
	dx := b.X - a.X
	dy := b.Y - a.Y
	dist := math.Sqrt(dx*dx + dy*dy)

	res := CollisionResult{
		Collided: dist < a.Radius+b.Radius,
		Distance: dist,
	}
	if dist > 0 {
		res.Normal = CollisionNormal{X: dx / dist, Y: dy / dist}
	}
	if overlap := a.Radius + b.Radius - dist; overlap > 0 {
		res.Overlap = overlap
	}
	return res
}

// BoxBox tests two axis-aligned boxes. Overlap is the minimum-axis
// penetration (the axis of least resistance for separation), while Normal
// derives from the vector between box centers; the two can disagree in
// direction for non-square boxes and serve different callers.
func BoxBox(a, b BoundingBox) CollisionResult {
	var res CollisionResult

	if a.X >= b.X+b.Width || b.X >= a.X+a.Width ||
		a.Y >= b.Y+b.Height || b.Y >= a.Y+a.Height {
		return res
	}
	res.Collided = true

	overlapX := math.Min(a.X+a.Width, b.X+b.Width) - math.Max(a.X, b.X)
	overlapY := math.Min(a.Y+a.Height, b.Y+b.Height) - math.Max(a.Y, b.Y)
	res.Overlap = math.Min(overlapX, overlapY)

	dx := b.CenterX() - a.CenterX()
	dy := b.CenterY() - a.CenterY()
	if centerDist := math.Sqrt(dx*dx + dy*dy); centerDist > 0 {
		res.Normal = CollisionNormal{X: dx / centerDist, Y: dy / centerDist}
	}
	return res
}

// CircleBox tests a circle against an axis-aligned box by clamping the
// circle center into the box to find the box's nearest point. Normal points
// from that nearest point toward the circle center.
func CircleBox(c Circle, b BoundingBox) CollisionResult {
	nearX := Clamp(c.X, b.X, b.X+b.Width)
	nearY := Clamp(c.Y, b.Y, b.Y+b.Height)

	dx := c.X - nearX
	dy := c.Y - nearY
	dist := math.Sqrt(dx*dx + dy*dy)

	res := CollisionResult{
		Collided: dist < c.Radius,
		Distance: dist,
	}
	if dist > 0 {
		res.Normal = CollisionNormal{X: dx / dist, Y: dy / dist}
	}
	if overlap := c.Radius - dist; overlap > 0 {
		res.Overlap = overlap
	}
	return res
}

// PointInCircle reports whether the point lies in or on the circle.
func PointInCircle(x, y float64, c Circle) bool {
	dx := x - c.X
	dy := y - c.Y
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// PointInBox reports whether the point lies in or on the box.
func PointInBox(x, y float64, b BoundingBox) bool {
	return x >= b.X && x <= b.X+b.Width &&
		y >= b.Y && y <= b.Y+b.Height
}
