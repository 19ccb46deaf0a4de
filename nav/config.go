package nav

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the tunables of the graph build. The zero value is not
// usable, start from DefaultConfig.
type Config struct {
	NodeSpacing       int32 `yaml:"node_spacing"`
	RegionRadius      int32 `yaml:"region_radius"`
	SampleRadius      int32 `yaml:"sample_radius"`
	MaxLinkHeight     int32 `yaml:"max_link_height"`
	HeadroomBlocks    int32 `yaml:"headroom_blocks"`
	DarknessThreshold byte  `yaml:"darkness_threshold"`

	Weights CostWeights `yaml:"weights"`
}

type CostWeights struct {
	BaseEngineered float64 `yaml:"base_engineered"`
	BaseStairs     float64 `yaml:"base_stairs"`
	BasePreferred  float64 `yaml:"base_preferred"`
	BaseDefault    float64 `yaml:"base_default"`

	MinCost float64 `yaml:"min_cost"`
	MaxCost float64 `yaml:"max_cost"`

	SlopeThreshold float64 `yaml:"slope_threshold"`
	Slope          float64 `yaml:"slope"`
	Variance       float64 `yaml:"variance"`
	StairDamping   float64 `yaml:"stair_damping"`

	Ledge     float64 `yaml:"ledge"`
	NearCliff float64 `yaml:"near_cliff"`

	PerchSlack float64 `yaml:"perch_slack"`
	Perch      float64 `yaml:"perch"`

	HazardRatioThreshold float64 `yaml:"hazard_ratio_threshold"`
	HazardSteepness      float64 `yaml:"hazard_steepness"`
	Hazard               float64 `yaml:"hazard"`
	HazardSurface        float64 `yaml:"hazard_surface"`

	SlowRatioThreshold float64 `yaml:"slow_ratio_threshold"`
	SlowSteepness      float64 `yaml:"slow_steepness"`
	Slow               float64 `yaml:"slow"`
	SlowSurface        float64 `yaml:"slow_surface"`

	Vegetation float64 `yaml:"vegetation"`
	Light      float64 `yaml:"light"`

	PathRatioThreshold float64 `yaml:"path_ratio_threshold"`
	PathBonus          float64 `yaml:"path_bonus"`

	Jump float64 `yaml:"jump"`
}

func DefaultConfig() *Config {
	return &Config{
		NodeSpacing:       2,
		RegionRadius:      64,
		SampleRadius:      3,
		MaxLinkHeight:     4,
		HeadroomBlocks:    2,
		DarknessThreshold: 7,
		Weights: CostWeights{
			BaseEngineered: 10,
			BaseStairs:     12,
			BasePreferred:  15,
			BaseDefault:    35,

			MinCost: 5,
			MaxCost: 1000,

			SlopeThreshold: 1.0,
			Slope:          12,
			Variance:       8,
			StairDamping:   0.2,

			Ledge:     15,
			NearCliff: 25,

			PerchSlack: 1.5,
			Perch:      10,

			HazardRatioThreshold: 0.15,
			HazardSteepness:      6,
			Hazard:               40,
			HazardSurface:        250,

			SlowRatioThreshold: 0.25,
			SlowSteepness:      4,
			Slow:               25,
			SlowSurface:        60,

			Vegetation: 20,
			Light:      6,

			PathRatioThreshold: 0.1,
			PathBonus:          30,

			Jump: 10,
		},
	}
}

// LoadConfig reads a yaml file over the defaults, so partial files only
// override the keys they mention.
func LoadConfig(filename string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrap(err, "could not read nav config")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "could not parse nav config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.NodeSpacing < 1 {
		return errors.New("node_spacing must be at least 1")
	}
	if c.RegionRadius < c.NodeSpacing {
		return errors.New("region_radius must cover at least one spacing step")
	}
	if c.HeadroomBlocks < 1 {
		return errors.New("headroom_blocks must be at least 1")
	}
	if c.Weights.MinCost >= c.Weights.MaxCost {
		return errors.New("min_cost must be below max_cost")
	}
	return nil
}
