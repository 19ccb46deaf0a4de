package voxel

// Block is a single voxel cell. The ID indexes into the map's BlockLibrary.
type Block struct {
	ID byte
}

func NewBlock(blockID byte) *Block {
	return &Block{ID: blockID}
}

func NewAirBlock() *Block {
	return &Block{ID: EMPTY}
}

func (b *Block) IsAir() bool {
	return b == nil || b.ID == EMPTY
}
