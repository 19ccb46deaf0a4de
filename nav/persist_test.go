package nav

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/memmaker/navgraph/engine/voxel"
	"github.com/memmaker/navgraph/mapgen"
	"github.com/stretchr/testify/require"
)

func generatedGraph(t *testing.T) *NodeGraph {
	t.Helper()
	lib := voxel.DefaultLibrary()
	m := mapgen.RollingHills(lib, 55, 2, 1, 2, 8, 7)
	world := NewMapWorld(m, voxel.Int3{X: 32, Y: 10, Z: 32})
	graph, err := NewGenerator(world, smallConfig()).Generate(context.Background())
	require.NoError(t, err)
	require.False(t, graph.IsEmpty())
	return graph
}

func TestGraphRoundTrip(t *testing.T) {
	graph := generatedGraph(t)
	filename := filepath.Join(t.TempDir(), "graph.bin")

	require.NoError(t, SaveGraph(graph, filename))
	loaded, err := LoadGraph(filename)
	require.NoError(t, err)

	require.Equal(t, graph.Len(), loaded.Len())
	for i := range graph.Nodes {
		require.Equal(t, graph.Nodes[i].Pos, loaded.Nodes[i].Pos)
		require.Equal(t, graph.Nodes[i].Cost, loaded.Nodes[i].Cost)
		require.ElementsMatch(t, adjacencyOf(graph.Nodes[i]), adjacencyOf(loaded.Nodes[i]))
		for j := range graph.Nodes[i].Edges {
			require.Equal(t, graph.Nodes[i].Edges[j].TransitionCost, loaded.Nodes[i].Edges[j].TransitionCost)
		}
	}
}

func TestLoadGraphRejectsGarbage(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "graph.bin")
	require.NoError(t, os.WriteFile(filename, []byte("this is not a graph"), 0644))

	_, err := LoadGraph(filename)
	require.Error(t, err)
}

func TestGetOrGenerateUsesCache(t *testing.T) {
	graph := generatedGraph(t)
	filename := filepath.Join(t.TempDir(), "graph.bin")
	require.NoError(t, SaveGraph(graph, filename))

	// an empty world proves the result came from the cache
	emptyWorld := NewMapWorld(voxel.NewMap(voxel.DefaultLibrary(), 1, 1, 1), voxel.Int3{X: 16, Z: 16})
	cached := GetOrGenerate(context.Background(), emptyWorld, smallConfig(), filename)
	require.Equal(t, graph.Len(), cached.Len())
}

func TestGetOrGenerateRegeneratesOnCorruptCache(t *testing.T) {
	lib := voxel.DefaultLibrary()
	m := mapgen.FlatPlane(lib, 2, 1, 2, "grass_block", 4)
	world := NewMapWorld(m, voxel.Int3{X: 32, Y: 5, Z: 32})
	filename := filepath.Join(t.TempDir(), "graph.bin")
	require.NoError(t, os.WriteFile(filename, []byte("corrupt"), 0644))

	graph := GetOrGenerate(context.Background(), world, smallConfig(), filename)
	require.False(t, graph.IsEmpty())

	// the regenerated graph replaced the broken cache
	reloaded, err := LoadGraph(filename)
	require.NoError(t, err)
	require.Equal(t, graph.Len(), reloaded.Len())
}

func TestGetOrGenerateSurvivesWriteFailure(t *testing.T) {
	lib := voxel.DefaultLibrary()
	m := mapgen.FlatPlane(lib, 2, 1, 2, "grass_block", 4)
	world := NewMapWorld(m, voxel.Int3{X: 32, Y: 5, Z: 32})
	filename := filepath.Join(t.TempDir(), "missing", "graph.bin")

	graph := GetOrGenerate(context.Background(), world, smallConfig(), filename)
	require.False(t, graph.IsEmpty(),
		"a failed save must still return the in-memory graph")
}

func TestGetOrGenerateEmptyRegion(t *testing.T) {
	emptyWorld := NewMapWorld(voxel.NewMap(voxel.DefaultLibrary(), 1, 1, 1), voxel.Int3{X: 16, Z: 16})
	filename := filepath.Join(t.TempDir(), "graph.bin")

	graph := GetOrGenerate(context.Background(), emptyWorld, smallConfig(), filename)
	require.True(t, graph.IsEmpty())
}
