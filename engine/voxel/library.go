package voxel

import (
	"fmt"

	"github.com/memmaker/navgraph/engine/util"
)

// MaterialKind is the coarse terrain classification the navigation layer
// cares about. It is a property of the block definition, not the block cell.
type MaterialKind byte

const (
	KindAir MaterialKind = iota
	KindDefault
	KindPreferred  // natural surfaces movers favor (grass, dirt)
	KindEngineered // paved/engineered path surfaces
	KindPlayerPath // player-carved route markers (cobble, planks)
	KindStairs
	KindHazard // lava, water, magma
	KindSlow   // soul sand, mud
	KindVegetation
)

type BlockDefinition struct {
	BlockID    byte
	UniqueName string
	Kind       MaterialKind
	Solid      bool
	Liquid     bool
}

// BlockLibrary maps block IDs to their definitions. ID 0 is always air.
type BlockLibrary struct {
	blocks   map[byte]*BlockDefinition
	nameToId map[string]byte
}

func NewBlockLibrary() *BlockLibrary {
	return &BlockLibrary{
		nameToId: map[string]byte{"air": 0},
		blocks: map[byte]*BlockDefinition{
			0: {
				BlockID:    0,
				UniqueName: "air",
				Kind:       KindAir,
			},
		},
	}
}

func (b *BlockLibrary) AddBlockDefinition(blockID byte, name string, kind MaterialKind, solid, liquid bool) {
	if _, exists := b.blocks[blockID]; exists {
		panic("Block already exists")
	}
	b.blocks[blockID] = &BlockDefinition{
		BlockID:    blockID,
		UniqueName: name,
		Kind:       kind,
		Solid:      solid,
		Liquid:     liquid,
	}
	b.nameToId[name] = blockID
}

func (b *BlockLibrary) LastBlockID() byte {
	return byte(len(b.blocks) - 1)
}

func (b *BlockLibrary) NewBlockFromName(name string) *Block {
	if blockID, exists := b.nameToId[name]; exists {
		return NewBlock(blockID)
	}
	util.LogVoxelError(fmt.Sprintf("[BlockLibrary] Unknown block name: %s", name))
	return NewBlock(0)
}

func (b *BlockLibrary) HasBlock(name string) bool {
	_, exists := b.nameToId[name]
	return exists
}

func (b *BlockLibrary) NameOf(blockID byte) string {
	if def, exists := b.blocks[blockID]; exists {
		return def.UniqueName
	}
	return "air"
}

func (b *BlockLibrary) KindOf(blockID byte) MaterialKind {
	if def, exists := b.blocks[blockID]; exists {
		return def.Kind
	}
	return KindAir
}

func (b *BlockLibrary) IsSolid(blockID byte) bool {
	def, exists := b.blocks[blockID]
	return exists && def.Solid
}

func (b *BlockLibrary) IsLiquid(blockID byte) bool {
	def, exists := b.blocks[blockID]
	return exists && def.Liquid
}

// IsSurface reports whether a downward floor probe can land on this block.
// Liquids count: a mover can be on top of water, the cost layer penalizes it.
func (b *BlockLibrary) IsSurface(blockID byte) bool {
	def, exists := b.blocks[blockID]
	return exists && (def.Solid || def.Liquid)
}

// DefaultLibrary registers the block palette the map generators and the
// construction importer resolve against.
func DefaultLibrary() *BlockLibrary {
	lib := NewBlockLibrary()
	id := byte(1)
	add := func(name string, kind MaterialKind, solid, liquid bool) {
		lib.AddBlockDefinition(id, name, kind, solid, liquid)
		id++
	}
	add("stone", KindDefault, true, false)
	add("sand", KindDefault, true, false)
	add("gravel", KindDefault, true, false)
	add("grass_block", KindPreferred, true, false)
	add("dirt", KindPreferred, true, false)
	add("dirt_path", KindEngineered, true, false)
	add("smooth_stone", KindEngineered, true, false)
	add("cobblestone", KindPlayerPath, true, false)
	add("oak_planks", KindPlayerPath, true, false)
	add("stone_stairs", KindStairs, true, false)
	add("oak_stairs", KindStairs, true, false)
	add("water", KindHazard, false, true)
	add("lava", KindHazard, false, true)
	add("magma_block", KindHazard, true, false)
	add("soul_sand", KindSlow, true, false)
	add("mud", KindSlow, true, false)
	add("tall_grass", KindVegetation, false, false)
	add("fern", KindVegetation, false, false)
	add("oak_leaves", KindVegetation, false, false)
	return lib
}
