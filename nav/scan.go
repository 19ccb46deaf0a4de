package nav

import (
	"sync"

	"github.com/memmaker/navgraph/engine/voxel"
)

// ScanColumn returns the sorted candidate foot levels of column (x, z).
// A level y is returned when the block at y-1 is a surface and the
// HeadroomBlocks cells starting at y are free of solids.
//
// After a hit the scan skips ahead by the headroom requirement, so two
// candidates are never closer than HeadroomBlocks+1 levels. Floors stacked
// tighter than that could not hold the mover anyway.
func ScanColumn(w World, cfg *Config, x, z int32) []int32 {
	minY, maxY := w.VerticalBounds()
	var levels []int32
	for y := minY; y <= maxY-cfg.HeadroomBlocks; y++ {
		if !w.IsSurface(voxel.Int3{X: x, Y: y, Z: z}) {
			continue
		}
		blocked := false
		for h := int32(1); h <= cfg.HeadroomBlocks; h++ {
			if w.IsSolid(voxel.Int3{X: x, Y: y + h, Z: z}) {
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}
		levels = append(levels, y+1)
		y += cfg.HeadroomBlocks
	}
	return levels
}

// FloorIndex memoises ScanColumn results so the cost evaluator can resolve
// "nearest standable level around (x, z)" without rescanning. Misses fall
// back to the highest solid block + 1. Safe for concurrent readers, the
// memo is guarded.
type FloorIndex struct {
	w   World
	cfg *Config

	mu      sync.RWMutex
	columns map[[2]int32][]int32
}

func NewFloorIndex(w World, cfg *Config) *FloorIndex {
	return &FloorIndex{
		w:       w,
		cfg:     cfg,
		columns: make(map[[2]int32][]int32),
	}
}

// Levels returns the candidate foot levels of a column, scanning it on
// first access.
func (fi *FloorIndex) Levels(x, z int32) []int32 {
	key := [2]int32{x, z}
	fi.mu.RLock()
	levels, exists := fi.columns[key]
	fi.mu.RUnlock()
	if exists {
		return levels
	}
	levels = ScanColumn(fi.w, fi.cfg, x, z)
	fi.mu.Lock()
	fi.columns[key] = levels
	fi.mu.Unlock()
	return levels
}

// FloorNear returns the candidate foot level of column (x, z) closest to
// refY. Columns without candidates fall back to the highest solid block
// plus one; fully hollow columns report ok=false.
func (fi *FloorIndex) FloorNear(x, z, refY int32) (int32, bool) {
	levels := fi.Levels(x, z)
	if len(levels) == 0 {
		top, found := fi.w.HighestSolid(x, z)
		if !found {
			return 0, false
		}
		return top + 1, true
	}
	best := levels[0]
	for _, level := range levels[1:] {
		if voxel.Abs(level-refY) < voxel.Abs(best-refY) {
			best = level
		}
	}
	return best, true
}
