package game

import "testing"

func TestSpeciesCatalogIsCoherent(t *testing.T) {
	catalog := SpeciesCatalog()
	if len(catalog) < 10 {
		t.Fatalf("expected a catalog of fish and junk, got %d entries", len(catalog))
	}

	seen := make(map[SpeciesID]bool, len(catalog))
	junkCount := 0
	for _, spec := range catalog {
		if spec.ID == "" || spec.Name == "" {
			t.Fatalf("species with empty identity: %+v", spec)
		}
		if seen[spec.ID] {
			t.Fatalf("duplicate species ID: %s", spec.ID)
		}
		seen[spec.ID] = true

		if spec.WeightKg <= 0 {
			t.Fatalf("species %s has no weight", spec.ID)
		}
		if spec.Value <= 0 {
			t.Fatalf("species %s has no sale value", spec.ID)
		}
		if spec.SchoolMin < 1 || spec.SchoolMax < spec.SchoolMin {
			t.Fatalf("species %s school range invalid: %d..%d", spec.ID, spec.SchoolMin, spec.SchoolMax)
		}
		if spec.SwimDepthMin < 0 || spec.SwimDepthMax < spec.SwimDepthMin {
			t.Fatalf("species %s swim band invalid: %f..%f", spec.ID, spec.SwimDepthMin, spec.SwimDepthMax)
		}
		if spec.SeabedMin < 0 || spec.SeabedMax < spec.SeabedMin {
			t.Fatalf("species %s seabed band invalid: %f..%f", spec.ID, spec.SeabedMin, spec.SeabedMax)
		}
		if spec.SpawnPerTile <= 0 {
			t.Fatalf("species %s can never spawn", spec.ID)
		}

		if spec.Junk {
			junkCount++
			if spec.Value != 1 {
				t.Fatalf("junk %s should sell for a token 1, got %d", spec.ID, spec.Value)
			}
		}
	}

	if junkCount == 0 {
		t.Fatalf("expected some junk in the water")
	}
	if junkCount == len(catalog) {
		t.Fatalf("expected some actual fish in the water")
	}
}

func TestSpeciesByID(t *testing.T) {
	spec, ok := SpeciesByID("herring")
	if !ok {
		t.Fatalf("expected herring in the catalog")
	}
	if spec.Name != "Herring" {
		t.Fatalf("expected the herring's name, got %s", spec.Name)
	}

	if _, ok := SpeciesByID("kraken"); ok {
		t.Fatalf("expected no kraken in the catalog")
	}
}

func TestJunkSellsCheaperThanFish(t *testing.T) {
	for _, spec := range SpeciesCatalog() {
		if spec.Junk {
			continue
		}
		if spec.Value <= 1 {
			t.Fatalf("fish %s should outvalue junk, got %d", spec.ID, spec.Value)
		}
	}
}
