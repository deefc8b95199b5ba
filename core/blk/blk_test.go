package blk_test

import (
	"os"
	"path/filepath"
	"testing"

	"naval-tables/core/blk"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		data string
		kind blk.Kind
	}{
		{"Object", `{"a": 1}`, blk.KindObject},
		{"SingletonList", `[{"a": 1}]`, blk.KindObject},
		{"ObjectList", `[{"a": 1}, {"b": 2}]`, blk.KindObjectList},
		{"MixedList", `[{"a": 1}, 2]`, blk.KindInvalid},
		{"Scalar", `42`, blk.KindInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := blk.Parse([]byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.kind, root.Kind)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	_, err := blk.Parse([]byte(`{"a": `))
	assert.ErrorIs(t, err, blk.ErrMalformed)
}

func TestDecode_MergeLaterWins(t *testing.T) {
	obj, err := blk.Decode([]byte(`[{"a": 1, "b": "first"}, {"b": "second", "c": true}]`))
	require.NoError(t, err)

	b, _ := obj.Get("b")
	assert.Equal(t, "second", b)
	assert.Equal(t, []string{"a", "b", "c"}, obj.Keys())
}

func TestDecode_KeepsDocumentOrder(t *testing.T) {
	obj, err := blk.Decode([]byte(`{"zeta": 1, "alpha": 2, "mid": {"x": 1}}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, obj.Keys())

	mid, ok := obj.Get("mid")
	require.True(t, ok)
	assert.Equal(t, map[string]any{"x": float64(1)}, mid)
}

func TestDecode_NotObject(t *testing.T) {
	_, err := blk.Decode([]byte(`[1, 2, 3]`))
	assert.ErrorIs(t, err, blk.ErrNotObject)
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gun.blkx")
	require.NoError(t, os.WriteFile(path, []byte(`[{"weaponType": 0}]`), 0644))

	obj, err := blk.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, obj.Len())

	_, err = blk.ReadFile(filepath.Join(dir, "missing.blkx"))
	assert.Error(t, err)
}

func TestGlob(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.blkx", "a.blkx", "a.blk", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.blkx"), 0755))

	files, err := blk.Glob(dir, blk.DecodedExt)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.blkx"), filepath.Join(dir, "b.blkx")}, files)
}

func TestPaths(t *testing.T) {
	assert.Equal(t, "380mm_skc34", blk.Stem("/data/weapons/380mm_skc34.blkx"))
	assert.Equal(t, "/data/gun.blkx", blk.DecodedPath("/data/gun.blk"))
	assert.Equal(t, "gun.blk", blk.RawName("/data/gun.blkx"))
}
