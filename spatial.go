package main

import "math"

// SpatialGrid is a uniform grid over the playable world used for broad-phase
// collision queries. Buckets hold references to live bodies for the current
// tick only; Clear and repopulate it once per tick. Grid topology is fixed
// at construction.
type SpatialGrid struct {
	cellSize float64
	cols     int
	rows     int
	cells    [][]Body
}

// NewSpatialGrid creates a grid covering worldWidth x worldHeight with
// square cells of the given size. Cell size is a tuning parameter: too small
// splits realistic entities across cells, too large degenerates toward
// all-pairs within crowded cells.
func NewSpatialGrid(worldWidth, worldHeight, cellSize float64) *SpatialGrid {
	cols := int(math.Ceil(worldWidth / cellSize))
	rows := int(math.Ceil(worldHeight / cellSize))
	return &SpatialGrid{
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		cells:    make([][]Body, cols*rows),
	}
}

// Clear resets all cells, keeping allocated capacity.
func (g *SpatialGrid) Clear() {
	for i := range g.cells {
		g.cells[i] = g.cells[i][:0]
	}
}

// cellIndex maps a world coordinate to a flat bucket index. Out-of-bounds
// positions clamp to the nearest edge cell rather than being dropped.
func (g *SpatialGrid) cellIndex(x, y float64) int {
	cx := int(math.Floor(x / g.cellSize))
	cy := int(math.Floor(y / g.cellSize))
	if cx < 0 {
		cx = 0
	} else if cx >= g.cols {
		cx = g.cols - 1
	}
	if cy < 0 {
		cy = 0
	} else if cy >= g.rows {
		cy = g.rows - 1
	}
	return cy*g.cols + cx
}

// Insert adds a body to the bucket for its current position. The body is
// point-sampled: its extent does not affect bucket choice.
func (g *SpatialGrid) Insert(b Body) {
	x, y := b.Position()
	idx := g.cellIndex(x, y)
	g.cells[idx] = append(g.cells[idx], b)
}

// InsertCircle adds a body to every cell its bounding circle overlaps, for
// callers that need extent-aware Query results.
func (g *SpatialGrid) InsertCircle(b Body) {
	x, y := b.Position()
	r := b.Collider().Radius
	minCX := int(math.Floor((x - r) / g.cellSize))
	maxCX := int(math.Floor((x + r) / g.cellSize))
	minCY := int(math.Floor((y - r) / g.cellSize))
	maxCY := int(math.Floor((y + r) / g.cellSize))
	if minCX < 0 {
		minCX = 0
	}
	if maxCX >= g.cols {
		maxCX = g.cols - 1
	}
	if minCY < 0 {
		minCY = 0
	}
	if maxCY >= g.rows {
		maxCY = g.rows - 1
	}
	for cy := minCY; cy <= maxCY; cy++ {
		for cx := minCX; cx <= maxCX; cx++ {
			idx := cy*g.cols + cx
			g.cells[idx] = append(g.cells[idx], b)
		}
	}
}

// CandidatePairs appends every unordered pair of distinct bodies sharing a
// bucket to buf and returns the extended slice. Both members must pass the
// participation filter. Pairs split across adjacent cells are never emitted;
// that is the accepted point-sample trade-off, compensated by cell sizing.
func (g *SpatialGrid) CandidatePairs(buf []CollisionPair) []CollisionPair {
	for _, cell := range g.cells {
		for i := 0; i < len(cell); i++ {
			if !cell[i].CanCollide() {
				continue
			}
			for j := i + 1; j < len(cell); j++ {
				if !cell[j].CanCollide() {
					continue
				}
				buf = append(buf, CollisionPair{A: cell[i], B: cell[j]})
			}
		}
	}
	return buf
}

// QueryBuf appends all bodies in cells overlapping the given bounding circle
// to buf and returns the extended slice, avoiding per-call allocation.
func (g *SpatialGrid) QueryBuf(x, y, radius float64, buf []Body) []Body {
	minCX := int(math.Floor((x - radius) / g.cellSize))
	maxCX := int(math.Floor((x + radius) / g.cellSize))
	minCY := int(math.Floor((y - radius) / g.cellSize))
	maxCY := int(math.Floor((y + radius) / g.cellSize))
	if minCX < 0 {
		minCX = 0
	}
	if maxCX >= g.cols {
		maxCX = g.cols - 1
	}
	if minCY < 0 {
		minCY = 0
	}
	if maxCY >= g.rows {
		maxCY = g.rows - 1
	}
	for cy := minCY; cy <= maxCY; cy++ {
		for cx := minCX; cx <= maxCX; cx++ {
			idx := cy*g.cols + cx
			buf = append(buf, g.cells[idx]...)
		}
	}
	return buf
}

// Query returns all bodies in cells overlapping the given bounding circle.
func (g *SpatialGrid) Query(x, y, radius float64) []Body {
	return g.QueryBuf(x, y, radius, nil)
}
