package nav

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"sync"

	"github.com/memmaker/navgraph/engine/util"
	"github.com/memmaker/navgraph/engine/voxel"
)

var neighborDirections = []voxel.Int3{
	{X: 1}, {X: -1}, {Z: 1}, {Z: -1},
	{X: 1, Z: 1}, {X: 1, Z: -1}, {X: -1, Z: 1}, {X: -1, Z: -1},
}

// Generator builds the navigation graph for a bounded region around the
// world origin. It holds no mutable state between runs.
type Generator struct {
	w   World
	cfg *Config
}

func NewGenerator(w World, cfg *Config) *Generator {
	return &Generator{w: w, cfg: cfg}
}

// Generate runs the full scan -> cost -> link pipeline. The scan checks ctx
// between columns, a cancelled build returns the context error. A region
// without any standable column yields an empty graph, not an error.
func (g *Generator) Generate(ctx context.Context) (*NodeGraph, error) {
	origin := g.w.Origin()
	floors := NewFloorIndex(g.w, g.cfg)

	var nodes []*Node
	radius := g.cfg.RegionRadius
	spacing := g.cfg.NodeSpacing
	for dx := -radius; dx <= radius; dx += spacing {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for dz := -radius; dz <= radius; dz += spacing {
			x, z := origin.X+dx, origin.Z+dz
			for _, footY := range floors.Levels(x, z) {
				nodes = append(nodes, &Node{Pos: voxel.Int3{X: x, Y: footY, Z: z}})
			}
		}
	}
	if len(nodes) == 0 {
		util.LogNavWarning(fmt.Sprintf("[Nav] No standable columns within radius %d of %s", radius, origin.ToString()))
		return &NodeGraph{}, nil
	}

	g.evaluateCosts(nodes, floors)
	LinkNodes(nodes, g.cfg)

	graph := &NodeGraph{Nodes: nodes}
	util.LogNavInfo(fmt.Sprintf("[Nav] Built graph with %d nodes around %s", len(nodes), origin.ToString()))
	return graph, nil
}

// evaluateCosts fans the cost computation out over a worker pool. The floor
// index is the only shared structure and its memo is guarded; no node
// depends on another node's cost.
func (g *Generator) evaluateCosts(nodes []*Node, floors *FloorIndex) {
	evaluator := NewEvaluator(g.w, g.cfg, floors)
	workers := runtime.NumCPU()
	if workers > len(nodes) {
		workers = len(nodes)
	}
	jobs := make(chan int)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				node := nodes[idx]
				node.Cost = evaluator.Evaluate(node.Pos.X, node.Pos.Y, node.Pos.Z)
			}
		}()
	}
	for idx := range nodes {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()
	util.LogNavDebug(fmt.Sprintf("[Nav] Evaluated %d nodes on %d workers", len(nodes), workers))
}

// LinkNodes connects nodes in the eight neighboring spacing cells whose
// vertical separation is within MaxLinkHeight. Both endpoints are visited
// by the pass, so each unordered pair ends up with one edge per direction.
// Edge lists are reset first, relinking an existing graph cannot
// double-append.
func LinkNodes(nodes []*Node, cfg *Config) {
	byColumn := make(map[[2]int32][]*Node, len(nodes))
	for _, node := range nodes {
		node.Edges = nil
		key := [2]int32{node.Pos.X, node.Pos.Z}
		byColumn[key] = append(byColumn[key], node)
	}
	spacing := cfg.NodeSpacing
	for _, node := range nodes {
		for _, dir := range neighborDirections {
			cell := node.Pos.Add(dir.Mul(spacing))
			key := [2]int32{cell.X, cell.Z}
			for _, other := range byColumn[key] {
				if voxel.Abs(other.Pos.Y-node.Pos.Y) > cfg.MaxLinkHeight {
					continue
				}
				node.Edges = append(node.Edges, Edge{
					Target:         other,
					TransitionCost: transitionCost(node, other, cfg),
				})
			}
		}
	}
}

// transitionCost models one step between adjacent nodes: the mean of the
// intrinsic costs, the 3D travel distance, an octile horizontal distance
// (diagonals discounted) and a jump surcharge for horizontal gaps beyond a
// single block.
func transitionCost(a, b *Node, cfg *Config) float64 {
	meanCost := (a.Cost + b.Cost) / 2
	euclidean := float64(util.EucledianDistance3D(a.Pos.ToVec3(), b.Pos.ToVec3()))

	delta := b.Pos.Sub(a.Pos)
	dx := voxel.Abs(delta.X)
	dz := voxel.Abs(delta.Z)
	shorter := dx
	longer := dz
	if dz < dx {
		shorter, longer = dz, dx
	}
	octile := float64(dx+dz) - (2.0-math.Sqrt2)*float64(shorter)

	jump := 0.0
	if longer > 1 {
		jump = float64(longer-1) * cfg.Weights.Jump
	}
	return meanCost + euclidean + octile + jump
}
