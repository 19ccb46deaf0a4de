package voxel

import (
	"compress/gzip"
	"fmt"
	"os"

	"github.com/Tnze/go-mc/nbt"
	"github.com/memmaker/navgraph/engine/util"
	"github.com/pkg/errors"
)

// Construction is a gzip compressed NBT export of a block volume:
//
//	TAG_Compound({
//	    "palette": TAG_List([TAG_Compound({"namespace": TAG_String(), "base_name": TAG_String()})]),
//	    "size_x": TAG_Int(), "size_y": TAG_Int(), "size_z": TAG_Int(),
//	    "blocks": TAG_Int_Array()  // palette indices, x-major then y then z
//	})
type Construction struct {
	Palette []PaletteEntry `nbt:"palette"`
	SizeX   int32          `nbt:"size_x"`
	SizeY   int32          `nbt:"size_y"`
	SizeZ   int32          `nbt:"size_z"`
	Blocks  []int32        `nbt:"blocks"`
}

type PaletteEntry struct {
	Namespace string `nbt:"namespace"`
	Name      string `nbt:"base_name"`
}

func LoadConstruction(filename string) (*Construction, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "could not open construction file")
	}
	defer file.Close()

	gzipReader, err := gzip.NewReader(file)
	if err != nil {
		return nil, errors.Wrap(err, "construction file is not gzip compressed")
	}
	var construction Construction
	if _, err := nbt.NewDecoder(gzipReader).Decode(&construction); err != nil {
		return nil, errors.Wrap(err, "could not decode construction NBT")
	}
	if int32(len(construction.Blocks)) != construction.SizeX*construction.SizeY*construction.SizeZ {
		return nil, errors.Errorf("construction block array has %d entries, expected %d",
			len(construction.Blocks), construction.SizeX*construction.SizeY*construction.SizeZ)
	}
	return &construction, nil
}

// NewMapFromConstruction imports a construction export, resolving palette
// names through the block library. Unknown names fall back to air.
func NewMapFromConstruction(lib *BlockLibrary, construction *Construction) *Map {
	chunkCountX := (construction.SizeX + CHUNK_SIZE - 1) / CHUNK_SIZE
	chunkCountY := (construction.SizeY + CHUNK_SIZE - 1) / CHUNK_SIZE
	chunkCountZ := (construction.SizeZ + CHUNK_SIZE - 1) / CHUNK_SIZE
	voxelMap := NewMap(lib, chunkCountX, chunkCountY, chunkCountZ)

	unknown := make(map[string]bool)
	blockIndex := 0
	for x := int32(0); x < construction.SizeX; x++ {
		for y := int32(0); y < construction.SizeY; y++ {
			for z := int32(0); z < construction.SizeZ; z++ {
				paletteIndex := construction.Blocks[blockIndex]
				blockIndex++
				if paletteIndex < 0 || paletteIndex >= int32(len(construction.Palette)) {
					continue
				}
				name := construction.Palette[paletteIndex].Name
				if name == "air" {
					continue
				}
				if !lib.HasBlock(name) {
					unknown[name] = true
				}
				voxelMap.SetBlock(x, y, z, lib.NewBlockFromName(name))
			}
		}
	}
	for name := range unknown {
		util.LogVoxelError(fmt.Sprintf("[Construction] Unknown block: %s", name))
	}
	util.LogVoxelInfo(fmt.Sprintf("[Construction] Imported %dx%dx%d blocks into %d chunks",
		construction.SizeX, construction.SizeY, construction.SizeZ, chunkCountX*chunkCountY*chunkCountZ))
	return voxelMap
}

// SaveConstruction writes a map back out in the construction format.
func SaveConstruction(m *Map, filename string) error {
	size := m.Size()
	construction := &Construction{
		SizeX:  size.X,
		SizeY:  size.Y,
		SizeZ:  size.Z,
		Blocks: make([]int32, 0, size.X*size.Y*size.Z),
	}
	paletteIndex := make(map[byte]int32)
	for x := int32(0); x < size.X; x++ {
		for y := int32(0); y < size.Y; y++ {
			for z := int32(0); z < size.Z; z++ {
				block := m.GetGlobalBlock(x, y, z)
				id := byte(0)
				if block != nil {
					id = block.ID
				}
				index, exists := paletteIndex[id]
				if !exists {
					index = int32(len(construction.Palette))
					paletteIndex[id] = index
					construction.Palette = append(construction.Palette, PaletteEntry{
						Namespace: "minecraft",
						Name:      m.lib.NameOf(id),
					})
				}
				construction.Blocks = append(construction.Blocks, index)
			}
		}
	}

	outfile, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "could not create construction file")
	}
	defer outfile.Close()
	gzipWriter := gzip.NewWriter(outfile)
	if err := nbt.NewEncoder(gzipWriter).Encode(construction, ""); err != nil {
		return errors.Wrap(err, "could not encode construction NBT")
	}
	return errors.Wrap(gzipWriter.Close(), "could not flush construction file")
}
