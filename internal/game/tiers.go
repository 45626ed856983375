package game

// SailTierSpec bounds what the rig can deliver. Thrust scales with sail area,
// so the tier is the saturation point: no trim or wind squeezes more drive out
// of a smaller sail than its area allows.
type SailTierSpec struct {
	Tier           int
	Name           string
	SailAreaM2     float64
	MaxTrimRadians float64
	ReefSteps      int
	UpgradeCost    int64
}

// HullTierSpec bounds cargo and stability. Righting moment is what the heel
// moment works against, so hull upgrades are how a bigger sail stays safe.
type HullTierSpec struct {
	Tier            int
	Name            string
	MassKg          float64
	CargoCapacityKg float64
	RightingMoment  float64
	DragCoeff       float64
	UpgradeCost     int64
}

func SailTierCatalog() []SailTierSpec {
	return []SailTierSpec{
		{Tier: 1, Name: "Patched Lugsail", SailAreaM2: 14, MaxTrimRadians: 1.48, ReefSteps: 4, UpgradeCost: 0},
		{Tier: 2, Name: "Gaff Main", SailAreaM2: 22, MaxTrimRadians: 1.48, ReefSteps: 5, UpgradeCost: 350},
		{Tier: 3, Name: "Bermuda Rig", SailAreaM2: 32, MaxTrimRadians: 1.48, ReefSteps: 6, UpgradeCost: 900},
	}
}

func HullTierCatalog() []HullTierSpec {
	return []HullTierSpec{
		{Tier: 1, Name: "Open Skiff", MassKg: 100, CargoCapacityKg: 120, RightingMoment: 500, DragCoeff: 6.0, UpgradeCost: 0},
		{Tier: 2, Name: "Half-Decker", MassKg: 160, CargoCapacityKg: 240, RightingMoment: 800, DragCoeff: 5.0, UpgradeCost: 300},
		{Tier: 3, Name: "Deep Keeler", MassKg: 240, CargoCapacityKg: 420, RightingMoment: 1200, DragCoeff: 4.2, UpgradeCost: 800},
	}
}

func SailTierByNumber(tier int) (SailTierSpec, bool) {
	for _, spec := range SailTierCatalog() {
		if spec.Tier == tier {
			return spec, true
		}
	}
	return SailTierSpec{}, false
}

func HullTierByNumber(tier int) (HullTierSpec, bool) {
	for _, spec := range HullTierCatalog() {
		if spec.Tier == tier {
			return spec, true
		}
	}
	return HullTierSpec{}, false
}

func MaxSailTier() int {
	max := 0
	for _, spec := range SailTierCatalog() {
		if spec.Tier > max {
			max = spec.Tier
		}
	}
	return max
}

func MaxHullTier() int {
	max := 0
	for _, spec := range HullTierCatalog() {
		if spec.Tier > max {
			max = spec.Tier
		}
	}
	return max
}
