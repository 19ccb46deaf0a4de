package path

import (
	"math"
)

type DijkstraSource[T any] interface {
	GetNeighbors(node T) []T
	GetCost(currentNode T, neighbor T) float64
}

// Dijkstra expands from source until maxCost is exceeded and returns the
// distance and predecessor maps for every reached node.
func Dijkstra[T comparable](source *PqItem[T], maxCost float64, dataSource DijkstraSource[T]) (dist map[T]float64, prev map[T]T) {
	dist = make(map[T]float64)
	prev = make(map[T]T)
	existingNodes := make(map[T]PathNode[T])
	dist[source.GetValue()] = 0
	getDist := func(n T) float64 {
		if d, ok := dist[n]; ok {
			return d
		}
		return math.MaxFloat64
	}
	Q := NewPriorityQueue([]PathNode[T]{source})
	for Q.Len() > 0 {
		currentNode := Q.Pop().(PathNode[T])
		for _, n := range dataSource.GetNeighbors(currentNode.GetValue()) {
			neighbor := n
			neighborDist := getDist(currentNode.GetValue()) + dataSource.GetCost(currentNode.GetValue(), neighbor)
			oldNeighborDist := getDist(neighbor)
			if neighborDist <= maxCost && neighborDist < oldNeighborDist {
				var neighborNode PathNode[T]
				if existingNode, ok := existingNodes[neighbor]; ok {
					existingNode.SetPriority(neighborDist)
					neighborNode = existingNode
				} else {
					neighborNode = NewNode(neighbor)
					neighborNode.SetPriority(neighborDist)
					existingNodes[neighbor] = neighborNode
				}
				dist[neighbor] = neighborDist
				prev[neighbor] = currentNode.GetValue()
				Q.Push(neighborNode)
			}
		}
	}
	return
}
