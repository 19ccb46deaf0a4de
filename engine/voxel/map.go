package voxel

import (
	"compress/gzip"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/memmaker/navgraph/engine/util"
	"github.com/pkg/errors"
)

type Map struct {
	chunks []*Chunk
	width  int32
	height int32
	depth  int32
	lib    *BlockLibrary
}

func NewMap(lib *BlockLibrary, width, height, depth int32) *Map {
	m := &Map{
		chunks: make([]*Chunk, width*height*depth),
		width:  width,
		height: height,
		depth:  depth,
		lib:    lib,
	}
	for cX := int32(0); cX < width; cX++ {
		for cY := int32(0); cY < height; cY++ {
			for cZ := int32(0); cZ < depth; cZ++ {
				m.NewChunk(cX, cY, cZ)
			}
		}
	}
	return m
}

func NewMapFromFile(lib *BlockLibrary, filename string) (*Map, error) {
	m := &Map{lib: lib}
	if err := m.LoadFromDisk(filename); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Map) Library() *BlockLibrary {
	return m.lib
}

func (m *Map) SaveToDisk(filename string) error {
	outfile, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "could not create map file")
	}
	defer outfile.Close()

	gzipWriter := gzip.NewWriter(outfile)
	write := func(v any) {
		if err == nil {
			err = binary.Write(gzipWriter, binary.LittleEndian, v)
		}
	}
	write(m.width)
	write(m.height)
	write(m.depth)
	chunkCount := int16(len(m.chunks))
	write(chunkCount)
	for _, chunk := range m.chunks {
		write(chunk.chunkPosX)
		write(chunk.chunkPosY)
		write(chunk.chunkPosZ)
		for _, block := range chunk.data {
			write(block.ID)
		}
	}
	if err != nil {
		return errors.Wrap(err, "could not write map data")
	}
	if err := gzipWriter.Close(); err != nil {
		return errors.Wrap(err, "could not flush map data")
	}
	util.LogVoxelInfo(fmt.Sprintf("[Map] Saved %d chunks (%dx%dx%d) to %s", chunkCount, m.width, m.height, m.depth, filename))
	return nil
}

func (m *Map) LoadFromDisk(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		return errors.Wrap(err, "could not open map file")
	}
	defer file.Close()

	gzipReader, err := gzip.NewReader(file)
	if err != nil {
		return errors.Wrap(err, "map file is not gzip compressed")
	}
	read := func(v any) {
		if err == nil {
			err = binary.Read(gzipReader, binary.LittleEndian, v)
		}
	}
	read(&m.width)
	read(&m.height)
	read(&m.depth)
	chunkCount := int16(0)
	read(&chunkCount)
	if err != nil {
		return errors.Wrap(err, "could not read map header")
	}
	if int32(chunkCount) != m.width*m.height*m.depth {
		return errors.Errorf("map header mismatch: %d chunks for %dx%dx%d", chunkCount, m.width, m.height, m.depth)
	}
	m.chunks = make([]*Chunk, chunkCount)
	for i := int16(0); i < chunkCount; i++ {
		var chunkPos [3]int32
		read(&chunkPos[0])
		read(&chunkPos[1])
		read(&chunkPos[2])
		chunk := NewChunk(m, chunkPos[0], chunkPos[1], chunkPos[2])
		m.chunks[i] = chunk
		for j := int32(0); j < CHUNK_SIZE_CUBED; j++ {
			blockID := byte(0)
			read(&blockID)
			chunk.data[j] = NewBlock(blockID)
		}
	}
	if err != nil {
		return errors.Wrap(err, "could not read chunk data")
	}
	util.LogVoxelInfo(fmt.Sprintf("[Map] Loaded %d chunks (%dx%dx%d) from %s", chunkCount, m.width, m.height, m.depth, filename))
	return nil
}

func (m *Map) SetChunk(x, y, z int32, c *Chunk) {
	m.chunks[x+y*m.width+z*m.width*m.height] = c
}

func (m *Map) NewChunk(cX, cY, cZ int32) *Chunk {
	chunk := NewChunk(m, cX, cY, cZ)
	m.SetChunk(cX, cY, cZ, chunk)
	return chunk
}

func (m *Map) GetChunk(x, y, z int32) *Chunk {
	if x < 0 || x >= m.width || y < 0 || y >= m.height || z < 0 || z >= m.depth {
		return nil
	}
	return m.chunks[x+y*m.width+z*m.width*m.height]
}

func (m *Map) GetChunkFromBlock(x, y, z int32) *Chunk {
	return m.GetChunk(x/CHUNK_SIZE, y/CHUNK_SIZE, z/CHUNK_SIZE)
}

func (m *Map) Contains(x, y, z int32) bool {
	return x >= 0 && x < m.width*CHUNK_SIZE && y >= 0 && y < m.height*CHUNK_SIZE && z >= 0 && z < m.depth*CHUNK_SIZE
}

func (m *Map) ContainsGrid(position Int3) bool {
	return m.Contains(position.X, position.Y, position.Z)
}

func (m *Map) SetBlock(x, y, z int32, block *Block) {
	chunk := m.GetChunkFromBlock(x, y, z)
	if chunk != nil {
		chunk.SetBlock(x%CHUNK_SIZE, y%CHUNK_SIZE, z%CHUNK_SIZE, block)
	}
}

func (m *Map) GetGlobalBlock(x, y, z int32) *Block {
	chunk := m.GetChunkFromBlock(x, y, z)
	if chunk == nil {
		return nil
	}
	return chunk.GetLocalBlock(x%CHUNK_SIZE, y%CHUNK_SIZE, z%CHUNK_SIZE)
}

func (m *Map) GetBlockFromVec(pos Int3) *Block {
	return m.GetGlobalBlock(pos.X, pos.Y, pos.Z)
}

func (m *Map) IsSolidBlockAt(x, y, z int32) bool {
	block := m.GetGlobalBlock(x, y, z)
	return block != nil && m.lib.IsSolid(block.ID)
}

func (m *Map) IsSurfaceAt(x, y, z int32) bool {
	block := m.GetGlobalBlock(x, y, z)
	return block != nil && m.lib.IsSurface(block.ID)
}

func (m *Map) KindAt(pos Int3) MaterialKind {
	block := m.GetBlockFromVec(pos)
	if block == nil {
		return KindAir
	}
	return m.lib.KindOf(block.ID)
}

// HighestSolid returns the top solid level of a column, false if the whole
// column is air/liquid.
func (m *Map) HighestSolid(x, z int32) (int32, bool) {
	for y := m.height*CHUNK_SIZE - 1; y >= 0; y-- {
		if m.IsSolidBlockAt(x, y, z) {
			return y, true
		}
	}
	return 0, false
}

// LightAt approximates skylight: full light with open sky, dimmer for every
// solid block overhead.
func (m *Map) LightAt(pos Int3) byte {
	covered := int32(0)
	for y := pos.Y + 1; y < m.height*CHUNK_SIZE; y++ {
		if m.IsSolidBlockAt(pos.X, y, pos.Z) {
			covered++
		}
	}
	dim := covered * 4
	if dim >= int32(MAX_LIGHT) {
		return 0
	}
	return MAX_LIGHT - byte(dim)
}

// GetGroundPosition iterates down from startBlock until a solid block is hit
// and returns the position directly above it.
func (m *Map) GetGroundPosition(startBlock Int3) Int3 {
	for y := startBlock.Y; y >= 1; y-- {
		if m.IsSolidBlockAt(startBlock.X, y-1, startBlock.Z) || !m.ContainsGrid(Int3{startBlock.X, y - 1, startBlock.Z}) {
			return Int3{startBlock.X, y, startBlock.Z}
		}
	}
	return startBlock
}

func (m *Map) SetFloorAtHeight(yLevel int32, block *Block) {
	for x := int32(0); x < m.width*CHUNK_SIZE; x++ {
		for z := int32(0); z < m.depth*CHUNK_SIZE; z++ {
			m.SetBlock(x, yLevel, z, NewBlock(block.ID))
		}
	}
}

func (m *Map) Size() Int3 {
	return Int3{m.width * CHUNK_SIZE, m.height * CHUNK_SIZE, m.depth * CHUNK_SIZE}
}
