package nav

import (
	"math"

	"github.com/memmaker/navgraph/engine/util"
	"github.com/memmaker/navgraph/engine/voxel"
)

var cardinalDirections = []voxel.Int3{
	{X: 1}, {X: -1}, {Z: 1}, {Z: -1},
}

// Evaluator computes the intrinsic traversal cost of a standable position.
// It only reads from the world and the floor index, so identical inputs
// always produce the identical scalar.
type Evaluator struct {
	w      World
	cfg    *Config
	floors *FloorIndex
}

func NewEvaluator(w World, cfg *Config, floors *FloorIndex) *Evaluator {
	return &Evaluator{w: w, cfg: cfg, floors: floors}
}

// Evaluate returns the cost of standing at foot level (x, y, z), clamped to
// [MinCost, MaxCost].
//
// The base tier comes from the surface block under the foot level.
// Engineered surfaces short-circuit: a paved path is cheap no matter what
// surrounds it. Stairs keep a cheap base and damp the slope and variance
// terms, otherwise every climb up a staircase would look like a cliff.
func (e *Evaluator) Evaluate(x, y, z int32) float64 {
	cw := &e.cfg.Weights
	surfaceKind := e.w.KindAt(voxel.Int3{X: x, Y: y - 1, Z: z})

	if surfaceKind == voxel.KindEngineered {
		return util.Clamp(cw.BaseEngineered, cw.MinCost, cw.MaxCost)
	}

	cost := cw.BaseDefault
	damping := 1.0
	switch surfaceKind {
	case voxel.KindStairs:
		cost = cw.BaseStairs
		damping = cw.StairDamping
	case voxel.KindPreferred:
		cost = cw.BasePreferred
	case voxel.KindPlayerPath:
		cost = cw.BasePreferred
	}

	var (
		samples    float64
		slopeSum   float64
		levelSum   float64
		levelSqSum float64
		hazards    float64
		slows      float64
		paths      float64
		vegetation float64
	)
	radius := e.cfg.SampleRadius
	for dx := -radius; dx <= radius; dx++ {
		for dz := -radius; dz <= radius; dz++ {
			if dx == 0 && dz == 0 {
				continue
			}
			nx, nz := x+dx, z+dz
			floorY, ok := e.floors.FloorNear(nx, nz, y)
			if !ok {
				continue
			}
			samples++
			diff := float64(floorY - y)
			slopeSum += math.Abs(diff)
			levelSum += float64(floorY)
			levelSqSum += float64(floorY) * float64(floorY)

			switch e.w.KindAt(voxel.Int3{X: nx, Y: floorY - 1, Z: nz}) {
			case voxel.KindHazard:
				hazards++
			case voxel.KindSlow:
				slows++
			case voxel.KindEngineered, voxel.KindPlayerPath:
				paths++
			}
			if e.w.KindAt(voxel.Int3{X: nx, Y: y, Z: nz}) == voxel.KindVegetation {
				vegetation++
			}
		}
	}

	if samples > 0 {
		avgSlope := slopeSum / samples
		if avgSlope > cw.SlopeThreshold {
			cost += (avgSlope - cw.SlopeThreshold) * cw.Slope * damping
		}

		mean := levelSum / samples
		variance := levelSqSum/samples - mean*mean
		if variance > 0 {
			cost += math.Sqrt(variance) * cw.Variance * damping
		}

		if float64(y) > mean+cw.PerchSlack {
			cost += (float64(y) - mean - cw.PerchSlack) * cw.Perch
		}

		hazardRatio := hazards / samples
		if hazardRatio > cw.HazardRatioThreshold {
			cost += cw.Hazard * math.Exp((hazardRatio-cw.HazardRatioThreshold)*cw.HazardSteepness)
		}
		slowRatio := slows / samples
		if slowRatio > cw.SlowRatioThreshold {
			cost += cw.Slow * math.Exp((slowRatio-cw.SlowRatioThreshold)*cw.SlowSteepness)
		}

		cost += (vegetation / samples) * cw.Vegetation

		pathRatio := paths / samples
		if pathRatio > cw.PathRatioThreshold {
			cost -= pathRatio * cw.PathBonus
		}
	}

	// ledge indicators: cardinal neighbors with nothing solid under the
	// foot level signal a drop-off
	ledges := 0
	for _, dir := range cardinalDirections {
		below := voxel.Int3{X: x + dir.X, Y: y - 1, Z: z + dir.Z}
		if e.w.Contains(below) && !e.w.IsSolid(below) {
			ledges++
		}
	}
	cost += float64(ledges) * cw.Ledge
	if ledges > 0 {
		cost += cw.NearCliff
	}

	switch surfaceKind {
	case voxel.KindHazard:
		cost += cw.HazardSurface
	case voxel.KindSlow:
		cost += cw.SlowSurface
	}

	light := e.w.LightAt(voxel.Int3{X: x, Y: y, Z: z})
	if light < e.cfg.DarknessThreshold {
		cost += float64(e.cfg.DarknessThreshold-light) * cw.Light
	}

	return util.Clamp(cost, cw.MinCost, cw.MaxCost)
}
