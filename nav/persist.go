package nav

import (
	"compress/gzip"
	"context"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/memmaker/navgraph/engine/util"
	"github.com/pkg/errors"
)

// Graph files are gzip compressed little-endian binary: a header, then the
// nodes in arena order with their edges as (target index, cost) pairs.
// Encoding edges by index instead of reference keeps the format free of
// object cycles.
const (
	graphMagic   uint32 = 0x4E415647 // "NAVG"
	graphVersion uint16 = 1
)

func SaveGraph(graph *NodeGraph, filename string) error {
	outfile, err := os.Create(filename)
	if err != nil {
		return errors.Wrap(err, "could not create graph file")
	}
	defer outfile.Close()

	indexOf := make(map[*Node]int32, len(graph.Nodes))
	for i, node := range graph.Nodes {
		indexOf[node] = int32(i)
	}

	gzipWriter := gzip.NewWriter(outfile)
	write := func(v any) {
		if err == nil {
			err = binary.Write(gzipWriter, binary.LittleEndian, v)
		}
	}
	write(graphMagic)
	write(graphVersion)
	write(int32(len(graph.Nodes)))
	for _, node := range graph.Nodes {
		write(node.Pos.X)
		write(node.Pos.Y)
		write(node.Pos.Z)
		write(node.Cost)
		write(int32(len(node.Edges)))
		for _, edge := range node.Edges {
			targetIndex, known := indexOf[edge.Target]
			if !known {
				return errors.Errorf("edge from %s targets a node outside the graph", node.Pos.ToString())
			}
			write(targetIndex)
			write(edge.TransitionCost)
		}
	}
	if err != nil {
		return errors.Wrap(err, "could not write graph data")
	}
	if err := gzipWriter.Close(); err != nil {
		return errors.Wrap(err, "could not flush graph data")
	}
	util.LogIOInfo(fmt.Sprintf("[Nav] Saved %d nodes to %s", len(graph.Nodes), filename))
	return nil
}

func LoadGraph(filename string) (*NodeGraph, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "could not open graph file")
	}
	defer file.Close()

	gzipReader, err := gzip.NewReader(file)
	if err != nil {
		return nil, errors.Wrap(err, "graph file is not gzip compressed")
	}
	read := func(v any) {
		if err == nil {
			err = binary.Read(gzipReader, binary.LittleEndian, v)
		}
	}
	var magic uint32
	var version uint16
	var nodeCount int32
	read(&magic)
	read(&version)
	read(&nodeCount)
	if err != nil {
		return nil, errors.Wrap(err, "could not read graph header")
	}
	if magic != graphMagic {
		return nil, errors.New("not a graph file")
	}
	if version != graphVersion {
		return nil, errors.Errorf("unsupported graph version %d", version)
	}
	if nodeCount < 0 {
		return nil, errors.Errorf("invalid node count %d", nodeCount)
	}

	nodes := make([]*Node, nodeCount)
	for i := range nodes {
		nodes[i] = &Node{}
	}
	type rawEdge struct {
		target int32
		cost   float64
	}
	edgeLists := make([][]rawEdge, nodeCount)
	for i := int32(0); i < nodeCount; i++ {
		node := nodes[i]
		read(&node.Pos.X)
		read(&node.Pos.Y)
		read(&node.Pos.Z)
		read(&node.Cost)
		var edgeCount int32
		read(&edgeCount)
		if err != nil {
			return nil, errors.Wrapf(err, "could not read node %d", i)
		}
		if edgeCount < 0 || edgeCount > nodeCount {
			return nil, errors.Errorf("node %d has invalid edge count %d", i, edgeCount)
		}
		edgeLists[i] = make([]rawEdge, edgeCount)
		for j := int32(0); j < edgeCount; j++ {
			read(&edgeLists[i][j].target)
			read(&edgeLists[i][j].cost)
		}
	}
	if err != nil {
		return nil, errors.Wrap(err, "could not read edge data")
	}
	for i, rawEdges := range edgeLists {
		for _, raw := range rawEdges {
			if raw.target < 0 || raw.target >= nodeCount {
				return nil, errors.Errorf("node %d has edge to invalid index %d", i, raw.target)
			}
			nodes[i].Edges = append(nodes[i].Edges, Edge{
				Target:         nodes[raw.target],
				TransitionCost: raw.cost,
			})
		}
	}
	util.LogIOInfo(fmt.Sprintf("[Nav] Loaded %d nodes from %s", len(nodes), filename))
	return &NodeGraph{Nodes: nodes}, nil
}

// GetOrGenerate returns the cached graph at filename when it loads cleanly,
// otherwise it generates, tries to persist and returns the fresh graph.
// IO trouble degrades: a broken cache regenerates, a failed save still
// returns the in-memory graph, a cancelled build returns an empty graph.
// Callers treat an empty graph as "pathfinding unavailable".
func GetOrGenerate(ctx context.Context, w World, cfg *Config, filename string) *NodeGraph {
	if _, statErr := os.Stat(filename); statErr == nil {
		graph, loadErr := LoadGraph(filename)
		if loadErr == nil {
			return graph
		}
		util.LogIOError(fmt.Sprintf("[Nav] Cached graph unusable, regenerating: %v", loadErr))
	}

	generator := NewGenerator(w, cfg)
	graph, err := generator.Generate(ctx)
	if err != nil {
		util.LogNavError(fmt.Sprintf("[Nav] Generation aborted: %v", err))
		return &NodeGraph{}
	}
	if saveErr := SaveGraph(graph, filename); saveErr != nil {
		util.LogIOError(fmt.Sprintf("[Nav] Could not persist graph, keeping it in memory: %v", saveErr))
	}
	return graph
}
