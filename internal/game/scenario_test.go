package game

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestBuiltInScenariosAreValid(t *testing.T) {
	scenarios := BuiltInScenarios()
	if len(scenarios) < 3 {
		t.Fatalf("expected at least three built-in scenarios, got %d", len(scenarios))
	}

	seen := make(map[ScenarioID]bool, len(scenarios))
	for _, scenario := range scenarios {
		if err := scenario.Validate(); err != nil {
			t.Fatalf("scenario %s invalid: %v", scenario.ID, err)
		}
		if seen[scenario.ID] {
			t.Fatalf("duplicate scenario ID: %s", scenario.ID)
		}
		seen[scenario.ID] = true

		if scenario.Name == "" {
			t.Fatalf("scenario %s has empty name", scenario.ID)
		}
	}
}

func TestGetScenario(t *testing.T) {
	scenarios := BuiltInScenarios()

	scenario, found := GetScenario(scenarios, ScenarioTrainingLagoonID)
	if !found {
		t.Fatalf("expected the training lagoon to exist")
	}
	if scenario.ID != ScenarioTrainingLagoonID {
		t.Fatalf("expected %s, got %s", ScenarioTrainingLagoonID, scenario.ID)
	}

	if _, found := GetScenario(scenarios, "open_ocean"); found {
		t.Fatalf("expected an unknown ID to miss")
	}
}

func TestScenarioYAMLRoundTrip(t *testing.T) {
	original, _ := GetScenario(BuiltInScenarios(), ScenarioStormGauntletID)

	data, err := MarshalScenario(original)
	if err != nil {
		t.Fatalf("marshal scenario: %v", err)
	}

	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write scenario file: %v", err)
	}

	loaded, err := LoadScenarioFile(path)
	if err != nil {
		t.Fatalf("load scenario file: %v", err)
	}
	if !reflect.DeepEqual(original, loaded) {
		t.Fatalf("expected round trip to preserve the scenario, got %+v want %+v", loaded, original)
	}
}

func TestLoadScenarioFileRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	bad := "id: broken\nname: Broken\nmap_edge_tiles: 4\nwind_min_speed: 2\nwind_max_speed: 8\nwind_shift_seconds: 30\nfish_per_tile: 0.05\nmax_fish_count: 50\nharbor_count: 1\n"
	if err := os.WriteFile(path, []byte(bad), 0o600); err != nil {
		t.Fatalf("write scenario file: %v", err)
	}

	if _, err := LoadScenarioFile(path); err == nil {
		t.Fatalf("expected a tiny chart to fail validation")
	}
}

func TestLoadScenarioFileRejectsMissingFile(t *testing.T) {
	if _, err := LoadScenarioFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected a missing file to error")
	}
}

func TestScenarioValidateCatchesBadRanges(t *testing.T) {
	base := Scenario{
		ID:               "check",
		Name:             "Check",
		MapEdgeTiles:     64,
		WindMinSpeed:     2,
		WindMaxSpeed:     8,
		WindShiftSeconds: 30,
		FishPerTile:      0.05,
		MaxFishCount:     50,
		HarborCount:      1,
	}
	if err := base.Validate(); err != nil {
		t.Fatalf("expected the base scenario to validate: %v", err)
	}

	cases := []func(*Scenario){
		func(s *Scenario) { s.ID = "" },
		func(s *Scenario) { s.MapEdgeTiles = 1024 },
		func(s *Scenario) { s.WindMaxSpeed = s.WindMinSpeed - 1 },
		func(s *Scenario) { s.WindShiftSeconds = 0 },
		func(s *Scenario) { s.FishPerTile = -0.5 },
		func(s *Scenario) { s.MaxFishCount = 0 },
		func(s *Scenario) { s.HarborCount = 0 },
		func(s *Scenario) { s.StartingFunds = -10 },
	}
	for i, mutate := range cases {
		scenario := base
		mutate(&scenario)
		if err := scenario.Validate(); err == nil {
			t.Fatalf("case %d: expected validation to fail for %+v", i, scenario)
		}
	}
}

func TestRunConfigValidate(t *testing.T) {
	if err := (RunConfig{ScenarioID: ScenarioTradeWindsID, Seed: 1}).Validate(); err != nil {
		t.Fatalf("expected a known scenario to validate: %v", err)
	}
	if err := (RunConfig{ScenarioID: ScenarioRandomID, Seed: 1}).Validate(); err != nil {
		t.Fatalf("expected the random scenario to validate: %v", err)
	}
	if err := (RunConfig{ScenarioID: "nowhere", Seed: 1}).Validate(); err == nil {
		t.Fatalf("expected an unknown scenario to fail")
	}
	if err := (RunConfig{ScenarioID: "nowhere", ScenarioFile: "custom.yaml"}).Validate(); err != nil {
		t.Fatalf("expected a scenario file to bypass the catalog: %v", err)
	}
}
