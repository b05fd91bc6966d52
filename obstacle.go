package main

const (
	ArenaWallThickness = 40.0
	RockMinSize        = 80.0
	RockMaxSize        = 200.0
	RockCount          = 8
)

// BuildArena returns the static obstacle boxes for a world: four boundary
// walls plus a scattering of rectangular rocks. Rocks keep clear of the
// center so spawns are never buried.
func BuildArena(worldW, worldH float64) []BoundingBox {
	// Boundary walls: top, bottom, left, right
	obstacles := []BoundingBox{
		{X: 0, Y: 0, Width: worldW, Height: ArenaWallThickness},
		{X: 0, Y: worldH - ArenaWallThickness, Width: worldW, Height: ArenaWallThickness},
		{X: 0, Y: 0, Width: ArenaWallThickness, Height: worldH},
		{X: worldW - ArenaWallThickness, Y: 0, Width: ArenaWallThickness, Height: worldH},
	}

	for i := 0; i < RockCount; i++ {
		w := RockMinSize + randFloat()*(RockMaxSize-RockMinSize)
		h := RockMinSize + randFloat()*(RockMaxSize-RockMinSize)
		x := ArenaWallThickness + randFloat()*(worldW-2*ArenaWallThickness-w)
		y := ArenaWallThickness + randFloat()*(worldH-2*ArenaWallThickness-h)
		rock := BoundingBox{X: x, Y: y, Width: w, Height: h}
		// Keep the middle of the arena open
		if PointInBox(worldW/2, worldH/2, rock) {
			continue
		}
		obstacles = append(obstacles, rock)
	}
	return obstacles
}

// ResolveObstacles pushes a circle out of any obstacle it penetrates and
// returns the corrected center. The push direction is the circle-box
// contact normal scaled by the penetration depth.
func ResolveObstacles(c Circle, obstacles []BoundingBox) (float64, float64) {
	for _, box := range obstacles {
		res := CircleBox(c, box)
		if !res.Collided {
			continue
		}
		if res.Normal.X == 0 && res.Normal.Y == 0 {
			// Degenerate case: center inside the box, no contact normal
			c.Y -= res.Overlap
			continue
		}
		c.X += res.Normal.X * res.Overlap
		c.Y += res.Normal.Y * res.Overlap
	}
	return c.X, c.Y
}

// HitsObstacle reports whether a circle penetrates any obstacle. Used for
// projectiles, which die on impact instead of sliding.
func HitsObstacle(c Circle, obstacles []BoundingBox) bool {
	for _, box := range obstacles {
		if CircleBox(c, box).Collided {
			return true
		}
	}
	return false
}
