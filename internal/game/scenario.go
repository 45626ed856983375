package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type ScenarioID string

const (
	ScenarioTrainingLagoonID ScenarioID = "training_lagoon"
	ScenarioTradeWindsID     ScenarioID = "trade_winds"
	ScenarioStormGauntletID  ScenarioID = "storm_gauntlet"
	ScenarioRandomID         ScenarioID = "random"
)

// Scenario fixes the shape of one voyage: the chart, the weather envelope,
// the fish stock, and the economy the player starts into. Everything the
// physics consumes beyond these fields sits in Tuning.
type Scenario struct {
	ID          ScenarioID `yaml:"id" json:"id"`
	Name        string     `yaml:"name" json:"name"`
	Description string     `yaml:"description,omitempty" json:"description,omitempty"`

	MapEdgeTiles int `yaml:"map_edge_tiles" json:"map_edge_tiles"`

	WindMinSpeed     float64 `yaml:"wind_min_speed" json:"wind_min_speed"`
	WindMaxSpeed     float64 `yaml:"wind_max_speed" json:"wind_max_speed"`
	WindShiftSeconds int     `yaml:"wind_shift_seconds" json:"wind_shift_seconds"`
	WindBlendSeconds int     `yaml:"wind_blend_seconds" json:"wind_blend_seconds"`

	FishPerTile  float64 `yaml:"fish_per_tile" json:"fish_per_tile"`
	MaxFishCount int     `yaml:"max_fish_count" json:"max_fish_count"`

	HarborCount   int   `yaml:"harbor_count" json:"harbor_count"`
	StartingFunds int64 `yaml:"starting_funds" json:"starting_funds"`

	Tuning Tuning `yaml:"tuning,omitempty" json:"tuning,omitempty"`
}

func (s Scenario) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("scenario id must not be empty")
	}
	if s.MapEdgeTiles < 16 || s.MapEdgeTiles > 512 {
		return fmt.Errorf("map edge must be between 16 and 512 tiles, got %d", s.MapEdgeTiles)
	}
	if s.WindMinSpeed < 0 || s.WindMaxSpeed < s.WindMinSpeed {
		return fmt.Errorf("wind speed range invalid: %.1f..%.1f", s.WindMinSpeed, s.WindMaxSpeed)
	}
	if s.WindShiftSeconds < 1 {
		return fmt.Errorf("wind shift interval must be at least one second, got %d", s.WindShiftSeconds)
	}
	if s.FishPerTile < 0 {
		return fmt.Errorf("fish density must not be negative, got %.3f", s.FishPerTile)
	}
	if s.MaxFishCount < 1 {
		return fmt.Errorf("max fish count must be positive, got %d", s.MaxFishCount)
	}
	if s.HarborCount < 1 {
		return fmt.Errorf("at least one harbor is required, got %d", s.HarborCount)
	}
	if s.StartingFunds < 0 {
		return fmt.Errorf("starting funds must not be negative, got %d", s.StartingFunds)
	}
	return nil
}

func GetScenario(scenarios []Scenario, id ScenarioID) (Scenario, bool) {
	for _, scenario := range scenarios {
		if scenario.ID == id {
			return scenario, true
		}
	}

	return Scenario{}, false
}

// LoadScenarioFile reads a single scenario from YAML. Missing tuning fields
// fall back to DefaultTuning when the world is built.
func LoadScenarioFile(path string) (Scenario, error) {
	raw, err := os.ReadFile(path) // #nosec G304 -- operator-supplied path
	if err != nil {
		return Scenario{}, fmt.Errorf("read scenario file: %w", err)
	}

	var scenario Scenario
	if err := yaml.Unmarshal(raw, &scenario); err != nil {
		return Scenario{}, fmt.Errorf("parse scenario file %s: %w", path, err)
	}

	if err := scenario.Validate(); err != nil {
		return Scenario{}, fmt.Errorf("scenario file %s: %w", path, err)
	}

	return scenario, nil
}

// MarshalScenario renders a scenario back to YAML, used by scenariogen and
// by tests asserting round-trip stability.
func MarshalScenario(scenario Scenario) ([]byte, error) {
	out, err := yaml.Marshal(scenario)
	if err != nil {
		return nil, fmt.Errorf("marshal scenario %s: %w", scenario.ID, err)
	}
	return out, nil
}
