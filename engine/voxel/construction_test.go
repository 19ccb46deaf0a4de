package voxel

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstructionRoundTrip(t *testing.T) {
	lib := DefaultLibrary()
	m := NewMap(lib, 1, 1, 1)
	m.SetFloorAtHeight(0, lib.NewBlockFromName("stone"))
	m.SetBlock(5, 1, 5, lib.NewBlockFromName("cobblestone"))
	m.SetBlock(6, 1, 5, lib.NewBlockFromName("water"))

	filename := filepath.Join(t.TempDir(), "test.construction")
	require.NoError(t, SaveConstruction(m, filename))

	construction, err := LoadConstruction(filename)
	require.NoError(t, err)
	require.Equal(t, m.Size().X, construction.SizeX)

	imported := NewMapFromConstruction(lib, construction)
	require.Equal(t, m.Size(), imported.Size())
	require.True(t, imported.IsSolidBlockAt(3, 0, 3))
	require.Equal(t, KindPlayerPath, imported.KindAt(Int3{5, 1, 5}))
	require.Equal(t, KindHazard, imported.KindAt(Int3{6, 1, 5}))
	require.True(t, imported.GetGlobalBlock(10, 10, 10).IsAir())
}

func TestLoadConstructionMissingFile(t *testing.T) {
	_, err := LoadConstruction(filepath.Join(t.TempDir(), "nope.construction"))
	require.Error(t, err)
}

func TestConstructionUnknownBlockFallsBackToAir(t *testing.T) {
	lib := DefaultLibrary()
	construction := &Construction{
		Palette: []PaletteEntry{
			{Namespace: "minecraft", Name: "stone"},
			{Namespace: "minecraft", Name: "some_modded_block"},
		},
		SizeX:  2,
		SizeY:  1,
		SizeZ:  1,
		Blocks: []int32{0, 1},
	}
	m := NewMapFromConstruction(lib, construction)
	require.True(t, m.IsSolidBlockAt(0, 0, 0))
	require.True(t, m.GetGlobalBlock(1, 0, 0).IsAir())
}
