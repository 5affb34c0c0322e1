// Package gridgraph treats a 2D tile map as an implicit graph, the
// environment that dfs searches run over.
//
// What:
//
//   - GridGraph wraps a rectangular [][]Tile map (open, wall, goal, start).
//   - Implements dfs.Oracle[int] over row-major indices: Neighbors in a fixed
//     offset order, Traversable for every non-wall cell.
//   - Identifies connected components of traversable cells.
//   - Counts the fewest walls separating two cells (BreachWalls).
//   - Parses text maps ('.', '#', 'G', 'S') and renders paths back to text.
//
// Why:
//
//   - Game maps: route an agent from its start tile to the goal tile.
//   - Teaching: reproducible neighbor order gives reproducible DFS output.
//   - Testing: components are the ground truth for reachability.
//
// Complexity:
//
//   - Neighbors / Traversable: O(d), O(1)  (d = 4 or 8)
//   - ConnectedComponents:     O(W×H×d), Memory: O(W×H)
//   - BreachWalls (0–1 BFS):   O(W×H×d), Memory: O(W×H)
//   - Render:                  O(W×H + L)
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrUnknownTile: unrecognised map rune or tile value.
//   - ErrOutOfBounds: TileAt or BreachWalls with an index outside the grid.
package gridgraph
