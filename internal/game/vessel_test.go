package game

import (
	"errors"
	"math"
	"testing"
)

func TestStowCatchEnforcesWeightCapacity(t *testing.T) {
	v := NewVessel(vec2(0, 0))
	herring, _ := SpeciesByID("herring")

	for i := 0; i < 12; i++ {
		if err := v.stowCatch(herring); err != nil {
			t.Fatalf("expected catch %d to fit, got %v", i+1, err)
		}
	}

	if err := v.stowCatch(herring); !errors.Is(err, ErrCargoFull) {
		t.Fatalf("expected the 13th herring to be refused, got %v", err)
	}
	if v.CargoCount() != 12 {
		t.Fatalf("expected 12 in the hold, got %d", v.CargoCount())
	}
}

func TestCargoWeightTracksContents(t *testing.T) {
	v := NewVessel(vec2(0, 0))
	herring, _ := SpeciesByID("herring")
	tuna, _ := SpeciesByID("tuna")

	_ = v.stowCatch(herring)
	_ = v.stowCatch(tuna)

	want := herring.WeightKg + tuna.WeightKg
	if math.Abs(v.CargoWeightKg()-want) > 1e-9 {
		t.Fatalf("expected cargo weight %f, got %f", want, v.CargoWeightKg())
	}

	hull := v.hullSpec()
	if math.Abs(v.MassKg()-(hull.MassKg+want)) > 1e-9 {
		t.Fatalf("expected displacement to include cargo, got %f", v.MassKg())
	}
}

func TestUnloadCargoEmptiesHold(t *testing.T) {
	v := NewVessel(vec2(0, 0))
	herring, _ := SpeciesByID("herring")
	_ = v.stowCatch(herring)
	_ = v.stowCatch(herring)

	unloaded := v.unloadCargo()

	if unloaded["herring"] != 2 {
		t.Fatalf("expected two herring unloaded, got %d", unloaded["herring"])
	}
	if v.CargoCount() != 0 || v.CargoWeightKg() != 0 {
		t.Fatalf("expected an empty hold, count=%d weight=%f", v.CargoCount(), v.CargoWeightKg())
	}

	// The hold must stay usable after unloading.
	if err := v.stowCatch(herring); err != nil {
		t.Fatalf("expected the emptied hold to take new catch: %v", err)
	}
}

func TestReefFractionScalesWithSteps(t *testing.T) {
	v := NewVessel(vec2(0, 0))
	steps := v.sailSpec().ReefSteps

	v.Reefing = 0
	if v.reefFraction() != 0 {
		t.Fatalf("expected a bare pole at zero reefing, got %f", v.reefFraction())
	}

	v.Reefing = steps
	if v.reefFraction() != 1 {
		t.Fatalf("expected full canvas at max reefing, got %f", v.reefFraction())
	}

	v.Reefing = steps / 2
	frac := v.reefFraction()
	if frac <= 0 || frac >= 1 {
		t.Fatalf("expected partial canvas between 0 and 1, got %f", frac)
	}
}

func TestApparentWindSubtractsBoatSpeed(t *testing.T) {
	v := NewVessel(vec2(0, 0))
	v.Velocity = vec2(2, 0)

	apparent := v.ApparentWind(vec2(5, 0))
	if apparent.X != 3 || apparent.Y != 0 {
		t.Fatalf("expected apparent wind (3,0), got (%f,%f)", apparent.X, apparent.Y)
	}
}

func TestHeadAndCrossSpeedSplitVelocity(t *testing.T) {
	v := NewVessel(vec2(0, 0))
	v.HeadingRadians = 0
	v.Velocity = vec2(3, 4)

	if math.Abs(v.headSpeed()-3) > 1e-9 {
		t.Fatalf("expected headway 3, got %f", v.headSpeed())
	}
	if math.Abs(v.crossSpeed()-4) > 1e-9 {
		t.Fatalf("expected crossflow 4, got %f", v.crossSpeed())
	}
	if math.Abs(v.GroundSpeed()-5) > 1e-9 {
		t.Fatalf("expected ground speed 5, got %f", v.GroundSpeed())
	}
}

func TestUnknownTiersFallBackToFirst(t *testing.T) {
	v := NewVessel(vec2(0, 0))
	v.SailTier = 99
	v.HullTier = -1

	if v.sailSpec().Tier != 1 {
		t.Fatalf("expected the sail spec to fall back to tier 1, got %d", v.sailSpec().Tier)
	}
	if v.hullSpec().Tier != 1 {
		t.Fatalf("expected the hull spec to fall back to tier 1, got %d", v.hullSpec().Tier)
	}
}
