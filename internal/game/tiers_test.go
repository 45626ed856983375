package game

import "testing"

func TestSailTiersEscalate(t *testing.T) {
	catalog := SailTierCatalog()
	if len(catalog) < 3 {
		t.Fatalf("expected at least three sail tiers, got %d", len(catalog))
	}

	for i := 1; i < len(catalog); i++ {
		prev, cur := catalog[i-1], catalog[i]
		if cur.Tier != prev.Tier+1 {
			t.Fatalf("expected consecutive tiers, got %d after %d", cur.Tier, prev.Tier)
		}
		if cur.SailAreaM2 <= prev.SailAreaM2 {
			t.Fatalf("expected tier %d to carry more canvas than tier %d", cur.Tier, prev.Tier)
		}
		if cur.UpgradeCost <= prev.UpgradeCost {
			t.Fatalf("expected tier %d to cost more than tier %d", cur.Tier, prev.Tier)
		}
		if cur.ReefSteps <= 0 {
			t.Fatalf("tier %d has no reef steps", cur.Tier)
		}
	}

	if catalog[0].UpgradeCost != 0 {
		t.Fatalf("expected the starting sail to be free, got %d", catalog[0].UpgradeCost)
	}
}

func TestHullTiersEscalate(t *testing.T) {
	catalog := HullTierCatalog()
	if len(catalog) < 3 {
		t.Fatalf("expected at least three hull tiers, got %d", len(catalog))
	}

	for i := 1; i < len(catalog); i++ {
		prev, cur := catalog[i-1], catalog[i]
		if cur.Tier != prev.Tier+1 {
			t.Fatalf("expected consecutive tiers, got %d after %d", cur.Tier, prev.Tier)
		}
		if cur.CargoCapacityKg <= prev.CargoCapacityKg {
			t.Fatalf("expected tier %d to hold more cargo than tier %d", cur.Tier, prev.Tier)
		}
		if cur.RightingMoment <= prev.RightingMoment {
			t.Fatalf("expected tier %d to be stiffer than tier %d", cur.Tier, prev.Tier)
		}
		if cur.UpgradeCost <= prev.UpgradeCost {
			t.Fatalf("expected tier %d to cost more than tier %d", cur.Tier, prev.Tier)
		}
	}

	if catalog[0].UpgradeCost != 0 {
		t.Fatalf("expected the starting hull to be free, got %d", catalog[0].UpgradeCost)
	}
}

func TestTierLookupMissesGracefully(t *testing.T) {
	if _, ok := SailTierByNumber(99); ok {
		t.Fatalf("expected no sail tier 99")
	}
	if _, ok := HullTierByNumber(0); ok {
		t.Fatalf("expected no hull tier 0")
	}
	if MaxSailTier() < 3 || MaxHullTier() < 3 {
		t.Fatalf("expected three tiers each, got sail=%d hull=%d", MaxSailTier(), MaxHullTier())
	}
}
