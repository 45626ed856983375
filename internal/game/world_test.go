package game

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func newTestWorld(t *testing.T, seed int64) *World {
	t.Helper()

	world, err := NewWorld(RunConfig{ScenarioID: ScenarioTrainingLagoonID, Seed: seed})
	if err != nil {
		t.Fatalf("new world: %v", err)
	}
	return world
}

func hasEvent(events []TickEvent, kind TickEventKind) bool {
	for _, event := range events {
		if event.Kind == kind {
			return true
		}
	}
	return false
}

func findRefusal(events []TickEvent, cmd CommandKind) (TickEvent, bool) {
	for _, event := range events {
		if event.Kind == EventRefused && event.Command == cmd {
			return event, true
		}
	}
	return TickEvent{}, false
}

// openWaterFarFromHarbors scans tile centers for the passable spot with the
// most sea room around every harbor.
func openWaterFarFromHarbors(w *World) Vec2 {
	best := Vec2{}
	bestDist := -1.0

	for ty := 0; ty < w.Grid.EdgeTiles; ty++ {
		for tx := 0; tx < w.Grid.EdgeTiles; tx++ {
			center := w.Grid.TileCenter(tx, ty)
			if !w.Grid.IsPassable(center) {
				continue
			}
			nearest := w.Grid.MapSize()
			for _, harbor := range w.Harbors {
				if d := w.Grid.TorusDistance(center, harbor.Position); d < nearest {
					nearest = d
				}
			}
			if nearest > bestDist {
				bestDist = nearest
				best = center
			}
		}
	}

	return best
}

func TestWorldStartsDockedWithFunds(t *testing.T) {
	world := newTestWorld(t, 42)
	snapshot := world.Snapshot()

	if snapshot.Tick != 0 {
		t.Fatalf("expected tick zero before any input, got %d", snapshot.Tick)
	}
	if snapshot.Funds != world.Scenario.StartingFunds {
		t.Fatalf("expected starting funds %d, got %d", world.Scenario.StartingFunds, snapshot.Funds)
	}
	if len(world.Harbors) != world.Scenario.HarborCount {
		t.Fatalf("expected %d harbors, got %d", world.Scenario.HarborCount, len(world.Harbors))
	}
	if world.Vessel.Position != world.Harbors[0].Position {
		t.Fatalf("expected the voyage to start at the first harbor")
	}

	docked := false
	for _, status := range snapshot.Harbors {
		if status.InRange {
			docked = true
		}
	}
	if !docked {
		t.Fatalf("expected at least one harbor in range at the start")
	}
	if snapshot.Terrain == TerrainShore.String() {
		t.Fatalf("expected the boat to start afloat")
	}
}

func TestWorldDeterministicReplay(t *testing.T) {
	script := func(tick uint64, tun Tuning) PlayerInput {
		switch {
		case tick <= 4:
			return PlayerInput{Commands: []Command{{Kind: CommandHoistSail}}}
		case tick == 5:
			return PlayerInput{Commands: []Command{{Kind: CommandTrimSail, Amount: 0.7}}}
		case tick == 10:
			return PlayerInput{Commands: []Command{{Kind: CommandTurn, Amount: 0.5}}}
		case tick == 60:
			return PlayerInput{Commands: []Command{{Kind: CommandCenterRudder}}}
		case tick == 80:
			method := TrawlMethod(tun)
			return PlayerInput{Commands: []Command{{Kind: CommandEngageRig, Method: &method}}}
		case tick == 200:
			return PlayerInput{Commands: []Command{{Kind: CommandStowRig}, {Kind: CommandSell}}}
		default:
			return PlayerInput{}
		}
	}

	worldA := newTestWorld(t, 4242)
	worldB := newTestWorld(t, 4242)

	var lastA, lastB WorldSnapshot
	for tick := uint64(1); tick <= 240; tick++ {
		lastA = worldA.Advance(script(tick, worldA.Tuning))
		lastB = worldB.Advance(script(tick, worldB.Tuning))
	}

	rawA, err := json.Marshal(lastA)
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}
	rawB, err := json.Marshal(lastB)
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}
	if !bytes.Equal(rawA, rawB) {
		t.Fatalf("expected identical replays, got\n%s\nand\n%s", rawA, rawB)
	}
	if worldA.Funds != worldB.Funds || worldA.Population.Count() != worldB.Population.Count() {
		t.Fatalf("expected identical world state, funds %d/%d fish %d/%d", worldA.Funds, worldB.Funds, worldA.Population.Count(), worldB.Population.Count())
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	worldA := newTestWorld(t, 1)
	worldB := newTestWorld(t, 2)

	sameChart := true
	for i := range worldA.Grid.Depths {
		if worldA.Grid.Depths[i] != worldB.Grid.Depths[i] {
			sameChart = false
			break
		}
	}
	if sameChart {
		t.Fatalf("expected different seeds to carve different charts")
	}
}

func TestHelmCommandsApplyBeforePhysics(t *testing.T) {
	world := newTestWorld(t, 7)

	snapshot := world.Advance(PlayerInput{Commands: []Command{
		{Kind: CommandHoistSail},
		{Kind: CommandHoistSail},
		{Kind: CommandTrimSail},
		{Kind: CommandTurn},
	}})

	if snapshot.Vessel.Reefing != 2 {
		t.Fatalf("expected two reef steps out, got %d", snapshot.Vessel.Reefing)
	}
	if snapshot.Vessel.TrimRadians != world.Tuning.TrimStepRadians {
		t.Fatalf("expected the default trim step, got %f", snapshot.Vessel.TrimRadians)
	}
	if snapshot.Vessel.Rudder != world.Tuning.RudderStep {
		t.Fatalf("expected the default rudder step, got %f", snapshot.Vessel.Rudder)
	}

	snapshot = world.Advance(PlayerInput{Commands: []Command{{Kind: CommandCenterRudder}}})
	if snapshot.Vessel.Rudder != 0 {
		t.Fatalf("expected a centered rudder, got %f", snapshot.Vessel.Rudder)
	}
}

func TestSellAwayFromHarborIsRefused(t *testing.T) {
	world := newTestWorld(t, 42)
	world.Vessel.Position = openWaterFarFromHarbors(world)

	snapshot := world.Advance(PlayerInput{Commands: []Command{{Kind: CommandSell}}})

	refusal, found := findRefusal(snapshot.Events, CommandSell)
	if !found {
		t.Fatalf("expected the sale to be refused away from harbor, events=%+v", snapshot.Events)
	}
	if !strings.Contains(refusal.Message, "harbor") {
		t.Fatalf("expected a harbor refusal, got %q", refusal.Message)
	}
	if snapshot.Funds != world.Scenario.StartingFunds {
		t.Fatalf("expected funds untouched, got %d", snapshot.Funds)
	}
}

func TestSellAtHarborEmitsSaleEvent(t *testing.T) {
	world := newTestWorld(t, 42)
	world.Vessel.Cargo["herring"] = 3
	before := world.Funds

	snapshot := world.Advance(PlayerInput{Commands: []Command{{Kind: CommandSell}}})

	if !hasEvent(snapshot.Events, EventSold) {
		t.Fatalf("expected a sale event, got %+v", snapshot.Events)
	}

	want := before + 3*world.Harbors[0].Prices["herring"]
	if snapshot.Funds != want {
		t.Fatalf("expected funds %d after the sale, got %d", want, snapshot.Funds)
	}
	if len(snapshot.Vessel.Cargo) != 0 {
		t.Fatalf("expected an empty hold after the sale, got %+v", snapshot.Vessel.Cargo)
	}
}

func TestUpgradeFlowAtHarbor(t *testing.T) {
	world := newTestWorld(t, 42)
	tier2, _ := SailTierByNumber(2)
	world.Funds = tier2.UpgradeCost

	snapshot := world.Advance(PlayerInput{Commands: []Command{{Kind: CommandUpgradeSail}}})

	if !hasEvent(snapshot.Events, EventUpgraded) {
		t.Fatalf("expected an upgrade event, got %+v", snapshot.Events)
	}
	if snapshot.Vessel.SailTier != 2 {
		t.Fatalf("expected sail tier 2, got %d", snapshot.Vessel.SailTier)
	}
	if snapshot.Funds != 0 {
		t.Fatalf("expected the purse emptied by the exact price, got %d", snapshot.Funds)
	}

	snapshot = world.Advance(PlayerInput{Commands: []Command{{Kind: CommandUpgradeSail}}})
	if _, found := findRefusal(snapshot.Events, CommandUpgradeSail); !found {
		t.Fatalf("expected an empty purse to refuse the next tier, got %+v", snapshot.Events)
	}
	if snapshot.Vessel.SailTier != 2 {
		t.Fatalf("expected the refusal to leave the tier alone, got %d", snapshot.Vessel.SailTier)
	}
}

func TestRecoverFlowThroughCommands(t *testing.T) {
	world := newTestWorld(t, 42)
	capsizeVessel(&world.Vessel, world.Tuning)

	snapshot := world.Advance(PlayerInput{Commands: []Command{{Kind: CommandRecover}}})
	if _, found := findRefusal(snapshot.Events, CommandRecover); !found {
		t.Fatalf("expected recovery to be refused during the countdown, got %+v", snapshot.Events)
	}

	world.Vessel.RightingTicks = 0
	snapshot = world.Advance(PlayerInput{Commands: []Command{{Kind: CommandRecover}}})
	if !hasEvent(snapshot.Events, EventRecovered) {
		t.Fatalf("expected a recovery event, got %+v", snapshot.Events)
	}
	if snapshot.Vessel.Capsized {
		t.Fatalf("expected the boat upright after recovery")
	}
}

func TestRigCommandsRefusedWhileCapsized(t *testing.T) {
	world := newTestWorld(t, 42)
	capsizeVessel(&world.Vessel, world.Tuning)

	snapshot := world.Advance(PlayerInput{Commands: []Command{{Kind: CommandEngageRig}}})
	if _, found := findRefusal(snapshot.Events, CommandEngageRig); !found {
		t.Fatalf("expected gear work to be refused while capsized, got %+v", snapshot.Events)
	}

	snapshot = world.Advance(PlayerInput{Commands: []Command{{Kind: CommandSell}}})
	if _, found := findRefusal(snapshot.Events, CommandSell); !found {
		t.Fatalf("expected trade to be refused while capsized, got %+v", snapshot.Events)
	}
}

func TestUnknownCommandIsRefused(t *testing.T) {
	world := newTestWorld(t, 42)

	snapshot := world.Advance(PlayerInput{Commands: []Command{{Kind: "scuttle"}}})

	refusal, found := findRefusal(snapshot.Events, "scuttle")
	if !found {
		t.Fatalf("expected an unknown command to be refused, got %+v", snapshot.Events)
	}
	if !strings.Contains(refusal.Message, "unknown command") {
		t.Fatalf("expected an unknown-command message, got %q", refusal.Message)
	}
}

func TestRefusedCommandDoesNotStopTheRest(t *testing.T) {
	world := newTestWorld(t, 42)

	snapshot := world.Advance(PlayerInput{Commands: []Command{
		{Kind: CommandStowRig},
		{Kind: CommandHoistSail},
	}})

	if _, found := findRefusal(snapshot.Events, CommandStowRig); !found {
		t.Fatalf("expected stowing idle gear to be refused, got %+v", snapshot.Events)
	}
	if snapshot.Vessel.Reefing != 1 {
		t.Fatalf("expected the hoist after the refusal to land, got %d", snapshot.Vessel.Reefing)
	}
}

func TestSnapshotIsolatedFromLiveWorld(t *testing.T) {
	world := newTestWorld(t, 42)
	method := TrawlMethod(world.Tuning)
	if err := world.Rig.Engage(method); err != nil {
		t.Fatalf("engage rig: %v", err)
	}

	snapshot := world.Snapshot()

	world.Vessel.Cargo["herring"] = 99
	world.Rig.Method.Trawl.Width = 1000

	if snapshot.Vessel.Cargo["herring"] != 0 {
		t.Fatalf("expected the snapshot hold to stay frozen, got %d", snapshot.Vessel.Cargo["herring"])
	}
	if snapshot.Rig.Method.Trawl.Width == 1000 {
		t.Fatalf("expected the snapshot rig to stay frozen")
	}
}

func TestSnapshotShadowsDeepFish(t *testing.T) {
	world := newTestWorld(t, 42)
	near := world.Vessel.Position
	world.Population.Fish = []Fish{
		{ID: 1, Species: "mackerel", Origin: near, Position: near.Add(vec2(3, 0)), DepthM: 2},
		{ID: 2, Species: "cod", Origin: near, Position: near.Add(vec2(0, 4)), DepthM: 10},
	}

	snapshot := world.Snapshot()

	if len(snapshot.Fish) != 2 {
		t.Fatalf("expected both fish in view, got %d", len(snapshot.Fish))
	}
	for _, fish := range snapshot.Fish {
		switch fish.ID {
		case 1:
			if fish.ShadowOnly || fish.Species != "mackerel" {
				t.Fatalf("expected the shallow swimmer identified, got %+v", fish)
			}
		case 2:
			if !fish.ShadowOnly || fish.Species != "" {
				t.Fatalf("expected the deep swimmer as an anonymous shadow, got %+v", fish)
			}
		}
	}
}

func TestRandomScenarioResolvesBySeed(t *testing.T) {
	worldA, err := NewWorld(RunConfig{ScenarioID: ScenarioRandomID, Seed: 7})
	if err != nil {
		t.Fatalf("new world: %v", err)
	}
	worldB, err := NewWorld(RunConfig{ScenarioID: ScenarioRandomID, Seed: 7})
	if err != nil {
		t.Fatalf("new world: %v", err)
	}

	if worldA.Scenario.ID != worldB.Scenario.ID {
		t.Fatalf("expected the same seed to pick the same scenario, got %s and %s", worldA.Scenario.ID, worldB.Scenario.ID)
	}
	if worldA.Config.ScenarioID == ScenarioRandomID {
		t.Fatalf("expected the resolved config to carry a concrete scenario")
	}
}

func TestNewWorldRejectsUnknownScenario(t *testing.T) {
	if _, err := NewWorld(RunConfig{ScenarioID: "nowhere", Seed: 1}); err == nil {
		t.Fatalf("expected an unknown scenario to fail")
	}
}
