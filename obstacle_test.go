package main

import "testing"

func TestBuildArenaWalls(t *testing.T) {
	obstacles := BuildArena(WorldWidth, WorldHeight)
	if len(obstacles) < 4 {
		t.Fatalf("expected at least 4 boundary walls, got %d", len(obstacles))
	}

	// The four walls come first: top, bottom, left, right
	top, bottom, left, right := obstacles[0], obstacles[1], obstacles[2], obstacles[3]
	if top.Y != 0 || top.Width != WorldWidth || top.Height != ArenaWallThickness {
		t.Errorf("top wall = %+v", top)
	}
	if bottom.Y != WorldHeight-ArenaWallThickness {
		t.Errorf("bottom wall = %+v", bottom)
	}
	if left.X != 0 || left.Height != WorldHeight {
		t.Errorf("left wall = %+v", left)
	}
	if right.X != WorldWidth-ArenaWallThickness {
		t.Errorf("right wall = %+v", right)
	}
}

func TestBuildArenaCenterClear(t *testing.T) {
	for i := 0; i < 10; i++ {
		obstacles := BuildArena(WorldWidth, WorldHeight)
		for _, box := range obstacles[4:] {
			if PointInBox(WorldWidth/2, WorldHeight/2, box) {
				t.Fatal("rock covers the arena center")
			}
		}
	}
}

func TestResolveObstaclesPushOut(t *testing.T) {
	wall := BoundingBox{X: 0, Y: 0, Width: 40, Height: 600}

	// Circle overlapping the wall's right face gets pushed right
	x, y := ResolveObstacles(Circle{X: 45, Y: 300, Radius: 20}, []BoundingBox{wall})
	if x != 60 {
		t.Errorf("resolved X = %v, want 60", x)
	}
	if y != 300 {
		t.Errorf("resolved Y = %v, want 300", y)
	}

	// Circle clear of the wall is untouched
	x, y = ResolveObstacles(Circle{X: 100, Y: 300, Radius: 20}, []BoundingBox{wall})
	if x != 100 || y != 300 {
		t.Errorf("clear circle moved to (%v,%v)", x, y)
	}
}

func TestResolveObstaclesCenterInside(t *testing.T) {
	box := BoundingBox{X: 100, Y: 100, Width: 200, Height: 200}

	// Center fully inside: must still move out of the degenerate state
	x, y := ResolveObstacles(Circle{X: 200, Y: 200, Radius: 10}, []BoundingBox{box})
	if x == 200 && y == 200 {
		t.Error("circle with center inside box was not moved")
	}
}

func TestHitsObstacle(t *testing.T) {
	obstacles := []BoundingBox{{X: 100, Y: 100, Width: 50, Height: 50}}

	if !HitsObstacle(Circle{X: 98, Y: 125, Radius: 5}, obstacles) {
		t.Error("expected hit at box edge")
	}
	if HitsObstacle(Circle{X: 50, Y: 50, Radius: 5}, obstacles) {
		t.Error("expected no hit away from box")
	}
}
