package mapgen

import (
	"github.com/memmaker/navgraph/engine/voxel"
	"github.com/ojrac/opensimplex-go"
)

// FlatPlane builds a map with a stone core and a single surface layer of
// the given block covering the whole horizontal extent. The standable foot
// level is surfaceY+1.
func FlatPlane(lib *voxel.BlockLibrary, chunksX, chunksY, chunksZ int32, surfaceBlock string, surfaceY int32) *voxel.Map {
	m := voxel.NewMap(lib, chunksX, chunksY, chunksZ)
	size := m.Size()
	for x := int32(0); x < size.X; x++ {
		for z := int32(0); z < size.Z; z++ {
			for y := int32(0); y < surfaceY; y++ {
				m.SetBlock(x, y, z, lib.NewBlockFromName("stone"))
			}
			m.SetBlock(x, surfaceY, z, lib.NewBlockFromName(surfaceBlock))
		}
	}
	return m
}

// RollingHills builds noise-shaped terrain: stone core, preferred surface,
// with water filling the valleys below waterLevel.
func RollingHills(lib *voxel.BlockLibrary, seed int64, chunksX, chunksY, chunksZ int32, amplitude float64, waterLevel int32) *voxel.Map {
	noise := opensimplex.New(seed)
	m := voxel.NewMap(lib, chunksX, chunksY, chunksZ)
	size := m.Size()
	base := size.Y / 4
	for x := int32(0); x < size.X; x++ {
		for z := int32(0); z < size.Z; z++ {
			elevation := noise.Eval2(float64(x)/float64(size.X)*4, float64(z)/float64(size.Z)*4)
			height := base + int32(elevation*amplitude)
			if height < 1 {
				height = 1
			}
			if height >= size.Y {
				height = size.Y - 1
			}
			for y := int32(0); y < height-1; y++ {
				m.SetBlock(x, y, z, lib.NewBlockFromName("stone"))
			}
			m.SetBlock(x, height-1, z, lib.NewBlockFromName("grass_block"))
			for y := height; y < waterLevel; y++ {
				m.SetBlock(x, y, z, lib.NewBlockFromName("water"))
			}
		}
	}
	return m
}
