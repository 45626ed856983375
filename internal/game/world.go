package game

import (
	"fmt"
	"time"
)

// World is the whole simulation for one voyage: chart, weather, vessel,
// fish stock, harbors, and the player's purse. Advance is the only way it
// moves; everything else is construction or read-only views.
type World struct {
	Config   RunConfig
	Scenario Scenario
	Tuning   Tuning

	Tick  uint64 `json:"tick"`
	Funds int64  `json:"funds"`

	Vessel VesselState `json:"vessel"`
	Rig    FishingRig  `json:"rig"`

	Grid       *DepthGrid
	Wind       *WindField
	Population *FishPopulation
	Harbors    []Harbor

	pendingTrade []Command
}

func NewWorld(config RunConfig) (*World, error) {
	resolvedConfig := config

	if err := resolvedConfig.Validate(); err != nil {
		return nil, err
	}

	if resolvedConfig.Seed == 0 {
		resolvedConfig.Seed = time.Now().UnixNano()
	}

	scenario, err := resolveScenario(&resolvedConfig)
	if err != nil {
		return nil, err
	}

	tuning := scenario.Tuning.withDefaults()
	grid := NewDepthGrid(resolvedConfig.Seed, scenario.MapEdgeTiles)
	harbors := buildHarbors(resolvedConfig.Seed, scenario, grid, tuning)

	world := &World{
		Config:     resolvedConfig,
		Scenario:   scenario,
		Tuning:     tuning,
		Funds:      scenario.StartingFunds,
		Vessel:     NewVessel(startPosition(resolvedConfig.Seed, grid, harbors)),
		Grid:       grid,
		Wind:       NewWindField(resolvedConfig.Seed, scenario),
		Population: newFishPopulation(resolvedConfig.Seed, scenario, grid),
		Harbors:    harbors,
	}

	return world, nil
}

// resolveScenario turns the config into a concrete scenario: an explicit
// file wins, the random ID picks a built-in by seed, anything else is a
// catalog lookup.
func resolveScenario(config *RunConfig) (Scenario, error) {
	if config.ScenarioFile != "" {
		return LoadScenarioFile(config.ScenarioFile)
	}

	scenarios := BuiltInScenarios()

	if config.ScenarioID == ScenarioRandomID {
		rng := seededRNG(config.Seed, "scenario")
		config.ScenarioID = scenarios[rng.IntN(len(scenarios))].ID
	}

	scenario, found := GetScenario(scenarios, config.ScenarioID)
	if !found {
		return Scenario{}, fmt.Errorf("scenario not found: %s", config.ScenarioID)
	}

	return scenario, nil
}

// startPosition puts the vessel at the first harbor so trade is reachable
// from tick one. Charts that somehow ended up harborless fall back to open
// water, then to the map middle.
func startPosition(seed int64, grid *DepthGrid, harbors []Harbor) Vec2 {
	if len(harbors) > 0 {
		return harbors[0].Position
	}

	if pos, ok := grid.RandomOpenWater(seededRNG(seed, "start")); ok {
		return pos
	}

	half := grid.MapSize() / 2

	return vec2(half, half)
}

// Advance moves the world exactly one tick. Commands are applied first so
// the physics sees the new helm, then wind, fish drift, hull motion, gear,
// and finally trade settle in a fixed order. The same seed and the same
// inputs replay to the same snapshots.
func (w *World) Advance(input PlayerInput) WorldSnapshot {
	w.Tick++

	events := w.applyCommands(input)

	wind := w.Wind.SampleAt(w.Tick)
	w.Population.Tick(w.Tick, w.Grid, w.Tuning)

	dragScale := 1.0
	if w.Rig.TrawlDeployed() {
		dragScale = w.Tuning.TrawlDragBoost
	}

	outcome := stepVessel(&w.Vessel, w.Grid, wind, w.Tuning, dragScale)
	if outcome.CapsizedNow {
		events = append(events, TickEvent{
			Kind:    EventCapsized,
			Message: "vessel capsized, sail and gear are lost until righted",
		})
	}

	catch := stepFishing(&w.Rig, &w.Vessel, w.Population, w.Grid, w.Tuning)

	for _, species := range catch.Caught {
		message := fmt.Sprintf("hauled in %s", species)
		if spec, ok := SpeciesByID(species); ok {
			message = fmt.Sprintf("hauled in %s", spec.Name)
		}

		events = append(events, TickEvent{
			Kind:    EventCatch,
			Message: message,
			Species: species,
		})
	}

	if catch.HoldFull {
		events = append(events, TickEvent{
			Kind:    EventHoldFull,
			Message: "hold is full, the rest of the catch slipped back",
		})
	}

	events = append(events, w.processTrade()...)

	return w.buildSnapshot(wind, catch, events)
}

// Snapshot renders the current state without advancing. Hosts use it for
// the first frame before any input exists.
func (w *World) Snapshot() WorldSnapshot {
	return w.buildSnapshot(w.Wind.SampleAt(w.Tick), CatchResult{}, nil)
}
