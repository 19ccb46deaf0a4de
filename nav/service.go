package nav

import (
	"context"
	"sync/atomic"
)

// Service owns the published graph for one world. Generation runs on a
// background goroutine and the finished graph is published atomically:
// readers either get "not ready" or a complete immutable graph, never a
// partial one.
type Service struct {
	world     World
	cfg       *Config
	cachePath string

	current  atomic.Pointer[NodeGraph]
	building atomic.Bool
}

func NewService(world World, cfg *Config, cachePath string) *Service {
	return &Service{world: world, cfg: cfg, cachePath: cachePath}
}

// Graph returns the published graph, ok=false while none is ready.
func (s *Service) Graph() (*NodeGraph, bool) {
	graph := s.current.Load()
	return graph, graph != nil
}

// EnsureBuilt kicks off a background get-or-generate unless one is already
// running or a graph is published. Returns true if a build was started.
func (s *Service) EnsureBuilt(ctx context.Context) bool {
	if s.current.Load() != nil {
		return false
	}
	if !s.building.CompareAndSwap(false, true) {
		return false
	}
	go func() {
		defer s.building.Store(false)
		graph := GetOrGenerate(ctx, s.world, s.cfg, s.cachePath)
		s.current.Store(graph)
	}()
	return true
}

// BuildNow generates synchronously, bypassing the cache, and publishes the
// result. Used by callers that want to force a rebuild.
func (s *Service) BuildNow(ctx context.Context) (*NodeGraph, error) {
	graph, err := NewGenerator(s.world, s.cfg).Generate(ctx)
	if err != nil {
		return nil, err
	}
	s.current.Store(graph)
	return graph, nil
}
