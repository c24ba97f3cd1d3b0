package levels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vovakirdan/cookie-crunch/internal/games/crunch/board"
)

func writeLevel(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestParseJSON(t *testing.T) {
	lvl, err := Parse([]byte(`{
		"tiles": [[0, 1, 1], [1, 1, 1]],
		"targetScore": 500,
		"moves": 12
	}`), "Level_9")
	require.NoError(t, err)

	assert.Equal(t, "Level_9", lvl.ID, "falls back to file stem")
	assert.Equal(t, 500, lvl.TargetScore)
	assert.Equal(t, 12, lvl.Moves)
	assert.Equal(t, "Level_9", lvl.Title())

	mask, err := lvl.Mask()
	require.NoError(t, err)
	assert.Equal(t, 3, mask.Columns())
	assert.Equal(t, 2, mask.Rows())
	assert.False(t, mask.TileAt(0, 1), "first row is the top")
	assert.True(t, mask.TileAt(0, 0))
}

func TestParseYAMLSnakeCase(t *testing.T) {
	lvl, err := Parse([]byte(`
id: custom
name: Custom
target_score: 750
tiles:
  - [1, 1, 1]
`), "ignored")
	require.NoError(t, err)
	assert.Equal(t, "custom", lvl.ID)
	assert.Equal(t, "Custom", lvl.Title())
	assert.Equal(t, 750, lvl.TargetScore)
	assert.Zero(t, lvl.Moves)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{name: "not yaml", data: "tiles: [1, 2"},
		{name: "no tiles", data: `{"targetScore": 10}`},
		{name: "ragged", data: `{"tiles": [[1, 1], [1]]}`},
		{name: "bad cell", data: `{"tiles": [[1, 3]]}`},
		{name: "negative moves", data: `{"tiles": [[1]], "moves": -1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), "x")
			require.Error(t, err)
		})
	}

	_, err := Parse([]byte(`{"tiles": [[1, 2]]}`), "x")
	require.ErrorIs(t, err, board.ErrMalformedMask)
}

func TestLoaderLoadAllSortedAndRecursive(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "b.json", `{"id": "b", "tiles": [[1, 1, 1]]}`)
	writeLevel(t, dir, "nested/a.yml", "id: a\ntiles:\n  - [1, 1, 1]\n")
	writeLevel(t, dir, "notes.txt", "not a level")

	loader := NewLoader(dir)
	levels, err := loader.LoadAll()
	require.NoError(t, err)
	require.Len(t, levels, 2)
	assert.Equal(t, "a", levels[0].ID)
	assert.Equal(t, "b", levels[1].ID)
	assert.Equal(t, filepath.ToSlash(filepath.Join(dir, "nested/a.yml")), filepath.ToSlash(levels[0].FilePath))

	assert.Equal(t, []string{"a", "b"}, ids(levels))

	lvl, err := loader.LoadByID("b")
	require.NoError(t, err)
	assert.Equal(t, "b", lvl.ID)

	_, err = loader.LoadByID("missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLoaderReportsMalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "good.json", `{"tiles": [[1, 1, 1]]}`)
	bad := writeLevel(t, dir, "bad.json", `{"tiles": [[1, 1], [1]]}`)

	_, err := NewLoader(dir).LoadAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.json")

	_, err = NewLoader(dir).LoadFile(bad)
	require.ErrorIs(t, err, board.ErrMalformedMask)
}

func TestLoaderRejectsDuplicateIDs(t *testing.T) {
	dir := t.TempDir()
	writeLevel(t, dir, "one.json", `{"id": "same", "tiles": [[1]]}`)
	writeLevel(t, dir, "two.yaml", "id: same\ntiles:\n  - [1]\n")

	_, err := NewLoader(dir).LoadAll()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate")
}

func TestLoadFileUnsupportedExtension(t *testing.T) {
	dir := t.TempDir()
	p := writeLevel(t, dir, "level.toml", "tiles = []")
	_, err := NewLoader(dir).LoadFile(p)
	require.Error(t, err)
}

func TestBuiltinLevelsAreShuffleable(t *testing.T) {
	levels, err := Builtin()
	require.NoError(t, err)
	require.Len(t, levels, 5)

	for i, lvl := range levels {
		t.Run(lvl.ID, func(t *testing.T) {
			assert.Positive(t, lvl.TargetScore)
			assert.Positive(t, lvl.Moves)
			assert.NotEmpty(t, lvl.Name)
			if i > 0 {
				assert.Less(t, levels[i-1].ID, lvl.ID)
			}

			mask, err := lvl.Mask()
			require.NoError(t, err)
			b, err := board.New(mask, board.WithSeed(int64(i+1)))
			require.NoError(t, err)
			_, err = b.Shuffle()
			require.NoError(t, err)
			assert.Equal(t, mask.Count(), b.Count())
		})
	}
}

func TestResolveFallsBackToBuiltin(t *testing.T) {
	lvl, err := Resolve("", "Level_3")
	require.NoError(t, err)
	assert.Equal(t, "Window Panes", lvl.Name)
	assert.Equal(t, 3000, lvl.TargetScore)

	_, err = BuiltinByID("Level_99")
	require.ErrorIs(t, err, ErrNotFound)

	dir := t.TempDir()
	writeLevel(t, dir, "mine.json", `{"id": "mine", "tiles": [[1, 1, 1]]}`)
	lvl, err = Resolve(dir, "mine")
	require.NoError(t, err)
	assert.Equal(t, "mine", lvl.ID)

	all, err := All(dir)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
