package entity

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Minimum level dimensions. A grid must be strictly larger on both axes.
const (
	MinLevelRows = 10
	MinLevelCols = 200
)

var (
	// ErrLevelUnreadable is returned when the level source cannot be read.
	ErrLevelUnreadable = errors.New("level unreadable")
	// ErrLevelTooSmall is returned when the grid has rows <= 10 or cols <= 200.
	ErrLevelTooSmall = errors.New("level too small")
	// ErrNoPlayerSpawn is returned when the grid has no P marker.
	ErrNoPlayerSpawn = errors.New("level has no player spawn")
)

// TileKind is the semantic meaning of a grid cell
type TileKind uint8

const (
	TileEmpty TileKind = iota
	TileBlock
	TileHazard
	TileGoal
	TileEnemySpawn
	TileCoinSpawn
	TilePlayerSpawn
)

// TileKindFromRune maps a level file character to its tile kind.
// Unknown characters are empty space.
func TileKindFromRune(r rune) TileKind {
	switch r {
	case 'B':
		return TileBlock
	case 'O':
		return TileHazard
	case 'G':
		return TileGoal
	case 'M':
		return TileEnemySpawn
	case 'C':
		return TileCoinSpawn
	case 'P':
		return TilePlayerSpawn
	default:
		return TileEmpty
	}
}

// Rune returns the level file character for the kind.
func (k TileKind) Rune() rune {
	switch k {
	case TileBlock:
		return 'B'
	case TileHazard:
		return 'O'
	case TileGoal:
		return 'G'
	case TileEnemySpawn:
		return 'M'
	case TileCoinSpawn:
		return 'C'
	case TilePlayerSpawn:
		return 'P'
	default:
		return '.'
	}
}

// String returns a readable name for the kind
func (k TileKind) String() string {
	switch k {
	case TileEmpty:
		return "Empty"
	case TileBlock:
		return "Block"
	case TileHazard:
		return "Hazard"
	case TileGoal:
		return "Goal"
	case TileEnemySpawn:
		return "EnemySpawn"
	case TileCoinSpawn:
		return "CoinSpawn"
	case TilePlayerSpawn:
		return "PlayerSpawn"
	default:
		return "Unknown"
	}
}

// Grid is the immutable tile layout of a loaded level.
type Grid struct {
	Rows     int
	Cols     int
	TileSize int
	Cells    [][]TileKind // [row][col]
}

// ParseGrid reads a plain-text level, one row per line.
// Rows shorter than the widest row are padded with empty cells.
func ParseGrid(r io.Reader, tileSize int) (*Grid, error) {
	var rows [][]TileKind
	cols := 0

	reader := bufio.NewReader(r)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %v", ErrLevelUnreadable, err)
		}
		if len(line) > 0 || err == nil {
			line = strings.TrimRight(line, "\r\n")
			row := make([]TileKind, 0, len(line))
			for _, ch := range line {
				row = append(row, TileKindFromRune(ch))
			}
			rows = append(rows, row)
			cols = max(cols, len(row))
		}
		if err != nil {
			break
		}
	}

	if len(rows) <= MinLevelRows || cols <= MinLevelCols {
		return nil, fmt.Errorf("%w: %dx%d (need more than %dx%d)",
			ErrLevelTooSmall, len(rows), cols, MinLevelRows, MinLevelCols)
	}

	for i, row := range rows {
		if len(row) < cols {
			padded := make([]TileKind, cols)
			copy(padded, row)
			rows[i] = padded
		}
	}

	return &Grid{
		Rows:     len(rows),
		Cols:     cols,
		TileSize: tileSize,
		Cells:    rows,
	}, nil
}

// TileAt returns the tile at the given column and row.
// Cells outside the grid are empty.
func (g *Grid) TileAt(col, row int) TileKind {
	if col < 0 || col >= g.Cols || row < 0 || row >= g.Rows {
		return TileEmpty
	}
	return g.Cells[row][col]
}

// TileBox returns the world-space box of a cell.
func (g *Grid) TileBox(col, row int) AABB {
	ts := float64(g.TileSize)
	return AABB{X: float64(col) * ts, Y: float64(row) * ts, W: ts, H: ts}
}

// TilePos returns the world-space top-left corner of a cell.
func (g *Grid) TilePos(col, row int) Vec2 {
	ts := float64(g.TileSize)
	return Vec2{X: float64(col) * ts, Y: float64(row) * ts}
}

// FindMarker returns the world position of the first cell of the given kind
// in row-major order.
func (g *Grid) FindMarker(kind TileKind) (Vec2, bool) {
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if g.Cells[row][col] == kind {
				return g.TilePos(col, row), true
			}
		}
	}
	return Vec2{}, false
}

// Markers returns the world positions of every cell of the given kind in
// row-major order.
func (g *Grid) Markers(kind TileKind) []Vec2 {
	var out []Vec2
	for row := 0; row < g.Rows; row++ {
		for col := 0; col < g.Cols; col++ {
			if g.Cells[row][col] == kind {
				out = append(out, g.TilePos(col, row))
			}
		}
	}
	return out
}

// Count returns the number of cells of the given kind.
func (g *Grid) Count(kind TileKind) int {
	n := 0
	for _, row := range g.Cells {
		for _, k := range row {
			if k == kind {
				n++
			}
		}
	}
	return n
}

// Width returns the world width in pixels.
func (g *Grid) Width() float64 {
	return float64(g.Cols * g.TileSize)
}

// Bottom returns the world y-coordinate of the lower edge of the last row.
// A player below it has fallen off the map.
func (g *Grid) Bottom() float64 {
	return float64(g.Rows * g.TileSize)
}

// CellRange returns the inclusive cell range touched by a box.
// The result may lie partly outside the grid.
func (g *Grid) CellRange(b AABB) (col0, row0, col1, row1 int) {
	return g.cellIndex(b.X), g.cellIndex(b.Y), g.cellIndex(b.Right()), g.cellIndex(b.Bottom())
}

func (g *Grid) cellIndex(v float64) int {
	ts := float64(g.TileSize)
	if ts <= 0 {
		ts = 1
	}
	i := int(v / ts)
	if v < 0 && float64(i)*ts != v {
		i-- // floor for negatives
	}
	return i
}
