// Package gridgraph defines core types and options for the gridgraph
// subpackage of github.com/katalvlaran/lvpath.
package gridgraph

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Tile is the content of a single grid cell.
type Tile int

const (
	// TileOpen is free floor.
	TileOpen Tile = iota
	// TileWall blocks movement; it is the only non-traversable tile.
	TileWall
	// TileGoal marks the cell an agent is looking for.
	TileGoal
	// TileStart marks where an agent begins.
	TileStart
)

// Runes used by ParseRows and Render.
const (
	RuneOpen  = '.'
	RuneWall  = '#'
	RuneGoal  = 'G'
	RuneStart = 'S'
	RunePath  = '*'
)

// String returns the rune a tile is drawn with.
func (t Tile) String() string {
	switch t {
	case TileOpen:
		return string(RuneOpen)
	case TileWall:
		return string(RuneWall)
	case TileGoal:
		return string(RuneGoal)
	case TileStart:
		return string(RuneStart)
	default:
		return "?"
	}
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings: Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn: Conn4,
	}
}

// GridGraph treats a 2D tile map as an implicit graph over row-major cell
// indices (y*Width + x). It is immutable once built, so one GridGraph may
// back any number of concurrent searches.
// neighborOffsets is precomputed for efficient adjacency lookups.
type GridGraph struct {
	Width, Height   int
	Tiles           [][]Tile
	Conn            Connectivity
	neighborOffsets [][2]int
}
