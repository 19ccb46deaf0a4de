package nav

import (
	"github.com/memmaker/navgraph/engine/voxel"
)

// World is the read-only terrain access the graph build needs. A missing or
// out-of-bounds block answers like air, never an error: terrain gaps at the
// world edge are expected.
type World interface {
	Contains(pos voxel.Int3) bool
	// IsSolid reports whether a mover collides with the block.
	IsSolid(pos voxel.Int3) bool
	// IsSurface reports whether a floor probe can land on the block
	// (solid or liquid).
	IsSurface(pos voxel.Int3) bool
	KindAt(pos voxel.Int3) voxel.MaterialKind
	LightAt(pos voxel.Int3) byte
	// HighestSolid is the fallback floor for columns without candidates.
	HighestSolid(x, z int32) (int32, bool)
	VerticalBounds() (minY, maxY int32)
	// Origin is the reference position the bounded region is centered on.
	Origin() voxel.Int3
}

// MapWorld adapts a voxel.Map to the World interface.
type MapWorld struct {
	voxelMap *voxel.Map
	origin   voxel.Int3
}

func NewMapWorld(voxelMap *voxel.Map, origin voxel.Int3) *MapWorld {
	return &MapWorld{voxelMap: voxelMap, origin: origin}
}

func (w *MapWorld) Contains(pos voxel.Int3) bool {
	return w.voxelMap.ContainsGrid(pos)
}

func (w *MapWorld) IsSolid(pos voxel.Int3) bool {
	return w.voxelMap.IsSolidBlockAt(pos.X, pos.Y, pos.Z)
}

func (w *MapWorld) IsSurface(pos voxel.Int3) bool {
	return w.voxelMap.IsSurfaceAt(pos.X, pos.Y, pos.Z)
}

func (w *MapWorld) KindAt(pos voxel.Int3) voxel.MaterialKind {
	return w.voxelMap.KindAt(pos)
}

func (w *MapWorld) LightAt(pos voxel.Int3) byte {
	return w.voxelMap.LightAt(pos)
}

func (w *MapWorld) HighestSolid(x, z int32) (int32, bool) {
	return w.voxelMap.HighestSolid(x, z)
}

func (w *MapWorld) VerticalBounds() (int32, int32) {
	return 0, w.voxelMap.Size().Y - 1
}

func (w *MapWorld) Origin() voxel.Int3 {
	return w.origin
}
