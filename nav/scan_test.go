package nav

import (
	"testing"

	"github.com/memmaker/navgraph/engine/voxel"
	"github.com/stretchr/testify/require"
)

func testMap(t *testing.T) (*voxel.Map, *voxel.BlockLibrary) {
	t.Helper()
	lib := voxel.DefaultLibrary()
	return voxel.NewMap(lib, 1, 1, 1), lib
}

func worldFor(m *voxel.Map, origin voxel.Int3) *MapWorld {
	return NewMapWorld(m, origin)
}

func TestScanColumnSimpleFloor(t *testing.T) {
	m, lib := testMap(t)
	m.SetBlock(4, 0, 4, lib.NewBlockFromName("stone"))

	levels := ScanColumn(worldFor(m, voxel.Int3{}), DefaultConfig(), 4, 4)
	require.Equal(t, []int32{1}, levels)
}

func TestScanColumnStackedPlatforms(t *testing.T) {
	m, lib := testMap(t)
	// platforms three levels apart, the minimum the headroom skip allows
	m.SetBlock(4, 0, 4, lib.NewBlockFromName("stone"))
	m.SetBlock(4, 3, 4, lib.NewBlockFromName("stone"))
	m.SetBlock(4, 6, 4, lib.NewBlockFromName("stone"))

	levels := ScanColumn(worldFor(m, voxel.Int3{}), DefaultConfig(), 4, 4)
	require.Equal(t, []int32{1, 4, 7}, levels)
}

func TestScanColumnHeadroomBlocked(t *testing.T) {
	m, lib := testMap(t)
	// ceiling one block above the floor leaves no headroom
	m.SetBlock(4, 0, 4, lib.NewBlockFromName("stone"))
	m.SetBlock(4, 2, 4, lib.NewBlockFromName("stone"))

	levels := ScanColumn(worldFor(m, voxel.Int3{}), DefaultConfig(), 4, 4)
	require.Equal(t, []int32{3}, levels)
}

func TestScanColumnMinimumSeparation(t *testing.T) {
	m, lib := testMap(t)
	for y := int32(0); y < 20; y += 1 {
		if y%2 == 0 {
			m.SetBlock(4, y, 4, lib.NewBlockFromName("stone"))
		}
	}
	cfg := DefaultConfig()
	levels := ScanColumn(worldFor(m, voxel.Int3{}), cfg, 4, 4)
	for i := 1; i < len(levels); i++ {
		require.GreaterOrEqual(t, levels[i]-levels[i-1], cfg.HeadroomBlocks+1,
			"candidates %d and %d are closer than the headroom skip", levels[i-1], levels[i])
	}
}

func TestScanColumnOutsideWorldHasNoFloors(t *testing.T) {
	lib := voxel.DefaultLibrary()
	m := voxel.NewMap(lib, 2, 1, 2)
	m.SetBlock(0, 4, 32, lib.NewBlockFromName("stone"))
	world := worldFor(m, voxel.Int3{})

	// a column just past the map edge must not pick up terrain from a
	// wrapped-around chunk
	require.Empty(t, ScanColumn(world, DefaultConfig(), 64, 0))
	require.Empty(t, ScanColumn(world, DefaultConfig(), -1, 0))
	require.Equal(t, []int32{5}, ScanColumn(world, DefaultConfig(), 0, 32))
}

func TestScanColumnLiquidSurface(t *testing.T) {
	m, lib := testMap(t)
	m.SetBlock(4, 0, 4, lib.NewBlockFromName("stone"))
	for y := int32(1); y <= 3; y++ {
		m.SetBlock(4, y, 4, lib.NewBlockFromName("water"))
	}

	levels := ScanColumn(worldFor(m, voxel.Int3{}), DefaultConfig(), 4, 4)
	// both the lake bed and the water surface are floor candidates
	require.Equal(t, []int32{1, 4}, levels)
}

func TestFloorNearPicksClosestLevel(t *testing.T) {
	m, lib := testMap(t)
	m.SetBlock(4, 0, 4, lib.NewBlockFromName("stone"))
	m.SetBlock(4, 10, 4, lib.NewBlockFromName("stone"))

	floors := NewFloorIndex(worldFor(m, voxel.Int3{}), DefaultConfig())
	level, ok := floors.FloorNear(4, 4, 12)
	require.True(t, ok)
	require.Equal(t, int32(11), level)

	level, ok = floors.FloorNear(4, 4, 2)
	require.True(t, ok)
	require.Equal(t, int32(1), level)
}

func TestFloorNearFallbackHighestSolid(t *testing.T) {
	m, lib := testMap(t)
	// a sealed column: solid all the way up to the world ceiling, so no
	// level has headroom
	for y := int32(0); y < 32; y++ {
		m.SetBlock(4, y, 4, lib.NewBlockFromName("stone"))
	}
	floors := NewFloorIndex(worldFor(m, voxel.Int3{}), DefaultConfig())
	require.Empty(t, floors.Levels(4, 4))

	level, ok := floors.FloorNear(4, 4, 5)
	require.True(t, ok)
	require.Equal(t, int32(32), level)
}

func TestFloorNearHollowColumn(t *testing.T) {
	m, _ := testMap(t)
	floors := NewFloorIndex(worldFor(m, voxel.Int3{}), DefaultConfig())
	_, ok := floors.FloorNear(4, 4, 5)
	require.False(t, ok)
}
