package nav

import (
	"github.com/memmaker/navgraph/engine/voxel"
)

// Node is a standable position. Pos.Y is the foot level a mover occupies,
// Cost the precomputed traversal cost. Edges are filled by LinkNodes.
type Node struct {
	Pos   voxel.Int3
	Cost  float64
	Edges []Edge
}

type Edge struct {
	Target         *Node
	TransitionCost float64
}

// NodeGraph is an immutable-after-build node list. It satisfies
// path.DijkstraSource so consumers can search it directly.
type NodeGraph struct {
	Nodes []*Node
}

func (g *NodeGraph) Len() int {
	return len(g.Nodes)
}

func (g *NodeGraph) IsEmpty() bool {
	return g == nil || len(g.Nodes) == 0
}

func (g *NodeGraph) GetNeighbors(node *Node) []*Node {
	neighbors := make([]*Node, len(node.Edges))
	for i, edge := range node.Edges {
		neighbors[i] = edge.Target
	}
	return neighbors
}

func (g *NodeGraph) GetCost(currentNode, neighbor *Node) float64 {
	for _, edge := range currentNode.Edges {
		if edge.Target == neighbor {
			return edge.TransitionCost
		}
	}
	return neighbor.Cost
}

// Nearest returns the node closest to pos, nil on an empty graph.
func (g *NodeGraph) Nearest(pos voxel.Int3) *Node {
	var best *Node
	bestDist := int32(-1)
	for _, node := range g.Nodes {
		d := voxel.ManhattanDistance3(node.Pos, pos)
		if best == nil || d < bestDist {
			best = node
			bestDist = d
		}
	}
	return best
}
