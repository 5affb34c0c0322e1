// Package gridgraph provides utilities to treat a 2D tile map as a graph.
// It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - The dfs.Oracle contract over row-major cell indices
//   - Identification of connected components of traversable cells
//   - Parsing from and rendering to text rows
//
// Walls are the only blocked tiles; open, goal and start cells are traversable.
package gridgraph

import (
	"fmt"

	"github.com/katalvlaran/lvpath/dfs"
)

var _ dfs.Oracle[int] = (*GridGraph)(nil)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs, ErrUnknownTile for a value
// outside the Tile constants.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(tiles [][]Tile, opts GridOptions) (*GridGraph, error) {
	if len(tiles) == 0 || len(tiles[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(tiles), len(tiles[0])
	for _, row := range tiles {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]Tile, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]Tile, w)
		for x, t := range tiles[y] {
			if t < TileOpen || t > TileStart {
				return nil, fmt.Errorf("%w: value %d at (%d,%d)", ErrUnknownTile, int(t), x, y)
			}
			cells[y][x] = t
		}
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}
	gg := &GridGraph{
		Width:           w,
		Height:          h,
		Tiles:           cells,
		Conn:            opts.Conn,
		neighborOffsets: offsets,
	}

	return gg, nil
}

// ParseRows builds a GridGraph from text rows, one rune per cell:
// '.' open, '#' wall, 'G' goal, 'S' start.
func ParseRows(rows []string, opts GridOptions) (*GridGraph, error) {
	tiles := make([][]Tile, len(rows))
	for y, row := range rows {
		line := []rune(row)
		tiles[y] = make([]Tile, len(line))
		for x, r := range line {
			switch r {
			case RuneOpen:
				tiles[y][x] = TileOpen
			case RuneWall:
				tiles[y][x] = TileWall
			case RuneGoal:
				tiles[y][x] = TileGoal
			case RuneStart:
				tiles[y][x] = TileStart
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownTile, r, x, y)
			}
		}
	}

	return NewGridGraph(tiles, opts)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Len returns the number of cells, W×H.
func (gg *GridGraph) Len() int {
	return gg.Width * gg.Height
}

// NeighborOffsets returns the precomputed neighbor offsets slice, in the
// order Neighbors reports them.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) Index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// TileAt returns the tile stored at idx, or ErrOutOfBounds.
func (gg *GridGraph) TileAt(idx int) (Tile, error) {
	if idx < 0 || idx >= gg.Len() {
		return TileOpen, fmt.Errorf("%w: index %d", ErrOutOfBounds, idx)
	}
	x, y := gg.Coordinate(idx)

	return gg.Tiles[y][x], nil
}

// Find returns the indices of every cell holding t, in row-major order.
func (gg *GridGraph) Find(t Tile) []int {
	var out []int
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			if gg.Tiles[y][x] == t {
				out = append(out, gg.Index(x, y))
			}
		}
	}

	return out
}

// Neighbors returns the in-bounds cells adjacent to idx in offset order
// (N, E, S, W for Conn4; N, NE, E, SE, S, SW, W, NW for Conn8). Walls are
// included; callers filter them with Traversable. An out-of-range idx has no
// neighbors.
// Complexity: O(d).
func (gg *GridGraph) Neighbors(idx int) []int {
	if idx < 0 || idx >= gg.Len() {
		return nil
	}
	x, y := gg.Coordinate(idx)
	out := make([]int, 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		nx, ny := x+d[0], y+d[1]
		if !gg.InBounds(nx, ny) {
			continue
		}
		out = append(out, gg.Index(nx, ny))
	}

	return out
}

// Traversable reports whether idx is inside the grid and not a wall.
// Complexity: O(1).
func (gg *GridGraph) Traversable(idx int) bool {
	if idx < 0 || idx >= gg.Len() {
		return false
	}
	x, y := gg.Coordinate(idx)

	return gg.Tiles[y][x] != TileWall
}

// Render draws the grid as text rows, overlaying RunePath on every cell of
// path except start and goal tiles. Out-of-range indices are ignored.
func (gg *GridGraph) Render(path []int) []string {
	onPath := make(map[int]bool, len(path))
	for _, idx := range path {
		onPath[idx] = true
	}
	rows := make([]string, gg.Height)
	for y := 0; y < gg.Height; y++ {
		line := make([]rune, gg.Width)
		for x := 0; x < gg.Width; x++ {
			t := gg.Tiles[y][x]
			line[x] = []rune(t.String())[0]
			if onPath[gg.Index(x, y)] && t != TileGoal && t != TileStart {
				line[x] = RunePath
			}
		}
		rows[y] = string(line)
	}

	return rows
}
