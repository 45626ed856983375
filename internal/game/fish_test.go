package game

import (
	"testing"
)

func fishScenario() Scenario {
	return Scenario{
		ID:               "fish_test",
		Name:             "Fish Test",
		MapEdgeTiles:     32,
		WindMinSpeed:     2,
		WindMaxSpeed:     8,
		WindShiftSeconds: 60,
		FishPerTile:      0.05,
		MaxFishCount:     100,
		HarborCount:      1,
	}
}

func TestPopulationFillsTowardTarget(t *testing.T) {
	grid := NewDepthGrid(21, 32)
	scenario := fishScenario()
	pop := newFishPopulation(21, scenario, grid)

	want := int(float64(grid.PassableTileCount()) * scenario.FishPerTile)
	if want > scenario.MaxFishCount {
		want = scenario.MaxFishCount
	}

	if pop.TargetCount() != want {
		t.Fatalf("expected target %d, got %d", want, pop.TargetCount())
	}
	if pop.Count() < want {
		t.Fatalf("expected initial stock to reach the target, count=%d target=%d", pop.Count(), want)
	}
	if pop.Count() > scenario.MaxFishCount {
		t.Fatalf("expected stock to respect the cap, count=%d cap=%d", pop.Count(), scenario.MaxFishCount)
	}
}

func TestFishCarrySpeciesSwimBands(t *testing.T) {
	grid := NewDepthGrid(21, 32)
	pop := newFishPopulation(21, fishScenario(), grid)

	for _, fish := range pop.Fish {
		spec, ok := SpeciesByID(fish.Species)
		if !ok {
			t.Fatalf("fish %d carries unknown species %s", fish.ID, fish.Species)
		}
		if fish.DepthM < spec.SwimDepthMin || fish.DepthM > spec.SwimDepthMax {
			t.Fatalf("fish %d (%s) swims at %f outside band %f..%f", fish.ID, fish.Species, fish.DepthM, spec.SwimDepthMin, spec.SwimDepthMax)
		}
		if !grid.IsPassable(fish.Origin) {
			t.Fatalf("fish %d spawned on shore at (%f,%f)", fish.ID, fish.Origin.X, fish.Origin.Y)
		}
	}
}

func TestFishDriftIsDeterministic(t *testing.T) {
	grid := NewDepthGrid(33, 32)
	tun := DefaultTuning()

	popA := newFishPopulation(33, fishScenario(), grid)
	popB := newFishPopulation(33, fishScenario(), grid)

	for tick := uint64(1); tick <= 500; tick++ {
		popA.Tick(tick, grid, tun)
		popB.Tick(tick, grid, tun)
	}

	if popA.Count() != popB.Count() {
		t.Fatalf("expected identical counts, got %d and %d", popA.Count(), popB.Count())
	}
	for i := range popA.Fish {
		if popA.Fish[i] != popB.Fish[i] {
			t.Fatalf("expected identical fish at %d, got %+v and %+v", i, popA.Fish[i], popB.Fish[i])
		}
	}
}

func TestFishSwayStaysNearOrigin(t *testing.T) {
	grid := NewDepthGrid(33, 32)
	tun := DefaultTuning()
	pop := newFishPopulation(33, fishScenario(), grid)

	// The sway curve sums at most three unit circles.
	for _, tick := range []uint64{1, 97, 1201, 7919} {
		pop.Tick(tick, grid, tun)
		for _, fish := range pop.Fish {
			if d := grid.TorusDistance(fish.Origin, fish.Position); d > 3.0+1e-9 {
				t.Fatalf("fish %d wandered %f from its origin at tick %d", fish.ID, d, tick)
			}
		}
	}
}

func TestRespawnRefillsAfterCatches(t *testing.T) {
	grid := NewDepthGrid(9, 32)
	tun := DefaultTuning()
	pop := newFishPopulation(9, fishScenario(), grid)

	for pop.Count() > pop.TargetCount()/2 {
		pop.Remove(0)
	}
	depleted := pop.Count()

	// Half the target missing gives roughly one school every couple of
	// simulated minutes, so a long horizon is deterministic enough.
	for tick := uint64(1); tick <= 20*60*TicksPerSecond; tick++ {
		pop.Tick(tick, grid, tun)
	}

	if pop.Count() <= depleted {
		t.Fatalf("expected the stock to refill after catches, depleted=%d now=%d", depleted, pop.Count())
	}
	if pop.Count() > pop.TargetCount()+20 {
		t.Fatalf("expected respawn to stop near the target, count=%d target=%d", pop.Count(), pop.TargetCount())
	}
}

func TestRespawnNeverRunsAtTarget(t *testing.T) {
	grid := NewDepthGrid(9, 32)
	tun := DefaultTuning()
	pop := newFishPopulation(9, fishScenario(), grid)

	before := pop.Count()
	for tick := uint64(1); tick <= 10*TicksPerSecond; tick++ {
		pop.Tick(tick, grid, tun)
	}

	if pop.Count() != before {
		t.Fatalf("expected a full stock to stay put, before=%d after=%d", before, pop.Count())
	}
}

func TestQueryNearSortsByDistance(t *testing.T) {
	grid := flatGrid(32, 12)
	pop := &FishPopulation{Fish: []Fish{
		{ID: 1, Species: "herring", Position: vec2(70, 64)},
		{ID: 2, Species: "herring", Position: vec2(65, 64)},
		{ID: 3, Species: "herring", Position: vec2(64, 67)},
		{ID: 4, Species: "herring", Position: vec2(100, 100)},
	}}

	got := pop.QueryNear(grid, vec2(64, 64), 10)
	if len(got) != 3 {
		t.Fatalf("expected three fish in range, got %d", len(got))
	}
	if pop.Fish[got[0]].ID != 2 || pop.Fish[got[1]].ID != 3 || pop.Fish[got[2]].ID != 1 {
		t.Fatalf("expected nearest-first order 2,3,1, got %d,%d,%d", pop.Fish[got[0]].ID, pop.Fish[got[1]].ID, pop.Fish[got[2]].ID)
	}
}

func TestQueryNearWrapsTheSeam(t *testing.T) {
	grid := flatGrid(8, 12)
	size := grid.MapSize()
	pop := &FishPopulation{Fish: []Fish{
		{ID: 1, Species: "herring", Position: vec2(size-1, 1)},
	}}

	got := pop.QueryNear(grid, vec2(1, 1), 5)
	if len(got) != 1 {
		t.Fatalf("expected the fish across the seam to be in range, got %d hits", len(got))
	}
}

func TestRemoveByID(t *testing.T) {
	pop := &FishPopulation{Fish: []Fish{
		{ID: 1, Species: "herring"},
		{ID: 2, Species: "tuna"},
		{ID: 3, Species: "cod"},
	}}

	spec, ok := pop.RemoveByID(2)
	if !ok {
		t.Fatalf("expected removal of a present fish to succeed")
	}
	if spec.ID != "tuna" {
		t.Fatalf("expected the tuna's spec back, got %s", spec.ID)
	}
	if pop.Count() != 2 {
		t.Fatalf("expected two fish left, got %d", pop.Count())
	}
	if _, ok := pop.fishByID(2); ok {
		t.Fatalf("expected fish 2 to be gone")
	}

	if _, ok := pop.RemoveByID(99); ok {
		t.Fatalf("expected removal of a missing fish to fail")
	}
}
