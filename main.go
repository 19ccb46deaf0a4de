package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/memmaker/navgraph/engine/path"
	"github.com/memmaker/navgraph/engine/voxel"
	"github.com/memmaker/navgraph/mapgen"
	"github.com/memmaker/navgraph/nav"
)

func main() {
	mapFile := flag.String("map", "", "map file to load (empty: generate demo terrain)")
	constructionFile := flag.String("construction", "", "construction NBT export to import instead of a map file")
	configFile := flag.String("config", "", "yaml config with nav tunables")
	graphFile := flag.String("out", "navgraph.bin", "graph cache file")
	seed := flag.Int64("seed", 42, "seed for the demo terrain")
	flag.Parse()

	cfg := nav.DefaultConfig()
	if *configFile != "" {
		loaded, err := nav.LoadConfig(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	lib := voxel.DefaultLibrary()
	var voxelMap *voxel.Map
	switch {
	case *constructionFile != "":
		construction, err := voxel.LoadConstruction(*constructionFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "construction: %v\n", err)
			os.Exit(1)
		}
		voxelMap = voxel.NewMapFromConstruction(lib, construction)
	case *mapFile != "":
		loaded, err := voxel.NewMapFromFile(lib, *mapFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "map: %v\n", err)
			os.Exit(1)
		}
		voxelMap = loaded
	default:
		voxelMap = mapgen.RollingHills(lib, *seed, 4, 2, 4, 12, 14)
	}

	size := voxelMap.Size()
	origin := voxel.Int3{X: size.X / 2, Z: size.Z / 2}
	if top, ok := voxelMap.HighestSolid(origin.X, origin.Z); ok {
		origin.Y = top + 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	world := nav.NewMapWorld(voxelMap, origin)
	graph := nav.GetOrGenerate(ctx, world, cfg, *graphFile)
	if graph.IsEmpty() {
		fmt.Println("no standable terrain, pathfinding unavailable")
		return
	}

	edges := 0
	for _, node := range graph.Nodes {
		edges += len(node.Edges)
	}
	fmt.Printf("graph: %d nodes, %d edges\n", graph.Len(), edges)

	// sample query: how much of the graph is reachable from the origin
	start := graph.Nearest(origin)
	dist, _ := path.Dijkstra(path.NewNode(start), cfg.Weights.MaxCost*float64(graph.Len()), graph)
	fmt.Printf("reachable from %s: %d of %d nodes\n", start.Pos.ToString(), len(dist), graph.Len())
}
