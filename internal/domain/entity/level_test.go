package entity

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// levelText builds a rows x cols level of empty cells with the given
// characters placed at [row][col].
func levelText(rows, cols int, marks map[[2]int]byte) string {
	lines := make([][]byte, rows)
	for r := range lines {
		lines[r] = []byte(strings.Repeat(".", cols))
	}
	for pos, ch := range marks {
		lines[pos[0]][pos[1]] = ch
	}
	var sb strings.Builder
	for _, l := range lines {
		sb.Write(l)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func TestParseGrid_Dimensions(t *testing.T) {
	tests := []struct {
		name    string
		rows    int
		cols    int
		wantErr error
	}{
		{"minimum accepted", 11, 201, nil},
		{"exactly 10 rows rejected", 10, 250, ErrLevelTooSmall},
		{"exactly 200 cols rejected", 12, 200, ErrLevelTooSmall},
		{"tiny rejected", 3, 5, ErrLevelTooSmall},
		{"large accepted", 20, 400, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid, err := ParseGrid(strings.NewReader(levelText(tt.rows, tt.cols, nil)), 32)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, grid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.rows, grid.Rows)
			assert.Equal(t, tt.cols, grid.Cols)
			assert.Equal(t, 32, grid.TileSize)
		})
	}
}

func TestParseGrid_TileKinds(t *testing.T) {
	src := levelText(11, 201, map[[2]int]byte{
		{0, 0}:    'B',
		{0, 1}:    'O',
		{0, 2}:    'G',
		{0, 3}:    'M',
		{0, 4}:    'C',
		{0, 5}:    'P',
		{0, 6}:    'x',
		{10, 200}: 'B',
	})

	grid, err := ParseGrid(strings.NewReader(src), 32)
	require.NoError(t, err)

	want := []TileKind{TileBlock, TileHazard, TileGoal, TileEnemySpawn, TileCoinSpawn, TilePlayerSpawn, TileEmpty}
	for col, k := range want {
		assert.Equal(t, k, grid.TileAt(col, 0), "col %d", col)
	}
	assert.Equal(t, TileBlock, grid.TileAt(200, 10))
}

func TestParseGrid_CRLFAndRaggedRows(t *testing.T) {
	lines := make([]string, 11)
	for i := range lines {
		lines[i] = strings.Repeat(".", 150)
	}
	lines[4] = strings.Repeat(".", 210) + "B"
	src := strings.Join(lines, "\r\n")

	grid, err := ParseGrid(strings.NewReader(src), 32)
	require.NoError(t, err)

	assert.Equal(t, 11, grid.Rows)
	assert.Equal(t, 211, grid.Cols)
	assert.Equal(t, TileBlock, grid.TileAt(210, 4))
	assert.Len(t, grid.Cells[0], 211, "short rows are padded")
	assert.Equal(t, TileEmpty, grid.TileAt(205, 0))
}

func TestParseGrid_ReadError(t *testing.T) {
	_, err := ParseGrid(iotest.ErrReader(errors.New("boom")), 32)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLevelUnreadable)
}

func TestGrid_Markers(t *testing.T) {
	src := levelText(12, 210, map[[2]int]byte{
		{5, 3}:  'P',
		{9, 10}: 'M',
		{2, 40}: 'M',
		{7, 7}:  'C',
	})
	grid, err := ParseGrid(strings.NewReader(src), 32)
	require.NoError(t, err)

	spawn, ok := grid.FindMarker(TilePlayerSpawn)
	require.True(t, ok)
	assert.Equal(t, Vec2{X: 3 * 32, Y: 5 * 32}, spawn)

	_, ok = grid.FindMarker(TileGoal)
	assert.False(t, ok)

	enemies := grid.Markers(TileEnemySpawn)
	require.Len(t, enemies, 2)
	assert.Equal(t, Vec2{X: 40 * 32, Y: 2 * 32}, enemies[0], "row-major order")
	assert.Equal(t, Vec2{X: 10 * 32, Y: 9 * 32}, enemies[1])

	assert.Equal(t, 1, grid.Count(TileCoinSpawn))
}

func TestGrid_Geometry(t *testing.T) {
	grid, err := ParseGrid(strings.NewReader(levelText(11, 201, map[[2]int]byte{{3, 4}: 'B'})), 32)
	require.NoError(t, err)

	assert.Equal(t, AABB{X: 128, Y: 96, W: 32, H: 32}, grid.TileBox(4, 3))
	assert.Equal(t, TileBlock, grid.TileAt(4, 3))
	assert.Equal(t, TileEmpty, grid.TileAt(999, 999))
	assert.Equal(t, 201.0*32, grid.Width())
	assert.Equal(t, 11.0*32, grid.Bottom())

	c0, r0, c1, r1 := grid.CellRange(AABB{X: -5, Y: 31, W: 40, H: 2})
	assert.Equal(t, -1, c0)
	assert.Equal(t, 0, r0)
	assert.Equal(t, 1, c1)
	assert.Equal(t, 1, r1)
}

func TestTileKind_RuneRoundTrip(t *testing.T) {
	for _, r := range "BOGMCP." {
		assert.Equal(t, r, TileKindFromRune(r).Rune())
	}
	assert.Equal(t, "Hazard", TileHazard.String())
}
