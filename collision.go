package main

// CollisionWorld owns the broad-phase grid and drives the per-tick rebuild.
// One long-lived instance per game session; all methods assume the strictly
// sequential clear -> populate -> query protocol of the game loop and are
// not safe for concurrent use.
type CollisionWorld struct {
	grid  *SpatialGrid
	pairs []CollisionPair
}

// NewCollisionWorld creates a world with the given dimensions and grid cell
// size. Changing world size requires constructing a new world.
func NewCollisionWorld(worldWidth, worldHeight, cellSize float64) *CollisionWorld {
	return &CollisionWorld{
		grid: NewSpatialGrid(worldWidth, worldHeight, cellSize),
	}
}

// Update rebuilds the grid from the live body list and recomputes the
// candidate pair set. Call exactly once per simulation tick, before any
// queries for that tick.
func (w *CollisionWorld) Update(bodies []Body) {
	w.grid.Clear()
	for _, b := range bodies {
		if !b.CanCollide() {
			continue
		}
		w.grid.Insert(b)
	}
	w.pairs = w.grid.CandidatePairs(w.pairs[:0])
}

// CandidatePairs returns the broad-phase pairs from the last Update, stable
// until the next Update. Empty before the first Update.
func (w *CollisionWorld) CandidatePairs() []CollisionPair {
	return w.pairs
}

// Query returns bodies inserted this tick whose cells overlap the given
// bounding circle.
func (w *CollisionWorld) Query(x, y, radius float64) []Body {
	return w.grid.Query(x, y, radius)
}

// CheckAgainst runs the narrow phase between one body and each target,
// bypassing the grid. Intended for small pre-filtered target lists; only
// collided results are returned.
func (w *CollisionWorld) CheckAgainst(body Body, targets []Body) []BodyHit {
	var hits []BodyHit
	for _, target := range targets {
		if target == body || !target.CanCollide() {
			continue
		}
		res := w.CheckPair(body, target)
		if res.Collided {
			hits = append(hits, BodyHit{Target: target, Result: res})
		}
	}
	return hits
}

// CheckPair runs the narrow phase between two bodies as circles, using each
// body's resolved collider radius. Box testing is only reachable through the
// shape functions directly; the gameplay layer is circle-dominated.
func (w *CollisionWorld) CheckPair(a, b Body) CollisionResult {
	return CircleCircle(bodyCircle(a), bodyCircle(b))
}
