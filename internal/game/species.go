package game

type SpeciesID string

// SpeciesSpec describes one kind of catchable stock. Swim depth is how far
// below the surface an individual holds; seabed depth is the water depth band
// of tiles it spawns over. Junk entries are flotsam that sells for scrap.
type SpeciesSpec struct {
	ID   SpeciesID
	Name string
	Junk bool

	WeightKg float64
	Value    int64

	SchoolMin int
	SchoolMax int

	SpawnPerTile float64

	SwimDepthMin float64
	SwimDepthMax float64
	SeabedMin    float64
	SeabedMax    float64

	SwayLowMin, SwayLowMax   int
	SwayHighMin, SwayHighMax int
	SpeedFactorMin           int
	SpeedFactorMax           int
}

func SpeciesCatalog() []SpeciesSpec {
	return []SpeciesSpec{
		{
			ID: "herring", Name: "Herring",
			WeightKg: 10, Value: 12,
			SchoolMin: 4, SchoolMax: 9,
			SpawnPerTile: 0.35,
			SwimDepthMin: 12, SwimDepthMax: 18,
			SeabedMin: 12, SeabedMax: 18,
			SwayLowMin: -9, SwayLowMax: -1, SwayHighMin: 2, SwayHighMax: 10,
			SpeedFactorMin: 90, SpeedFactorMax: 110,
		},
		{
			ID: "tuna", Name: "Tuna",
			WeightKg: 20, Value: 25,
			SchoolMin: 1, SchoolMax: 1,
			SpawnPerTile: 0.05,
			SwimDepthMin: 0, SwimDepthMax: 5,
			SeabedMin: 0, SeabedMax: 12,
			SwayLowMin: -9, SwayLowMax: -1, SwayHighMin: 2, SwayHighMax: 10,
			SpeedFactorMin: 90, SpeedFactorMax: 110,
		},
		{
			ID: "cod", Name: "Cod",
			WeightKg: 15, Value: 17,
			SchoolMin: 1, SchoolMax: 1,
			SpawnPerTile: 0.3,
			SwimDepthMin: 5, SwimDepthMax: 12,
			SeabedMin: 5, SeabedMax: 18,
			SwayLowMin: -9, SwayLowMax: -1, SwayHighMin: 2, SwayHighMax: 10,
			SpeedFactorMin: 90, SpeedFactorMax: 110,
		},
		{
			ID: "bream", Name: "Sea Bream",
			WeightKg: 8, Value: 8,
			SchoolMin: 1, SchoolMax: 1,
			SpawnPerTile: 0.1,
			SwimDepthMin: 5, SwimDepthMax: 12,
			SeabedMin: 0, SeabedMax: 12,
			SwayLowMin: -9, SwayLowMax: -1, SwayHighMin: 2, SwayHighMax: 10,
			SpeedFactorMin: 90, SpeedFactorMax: 110,
		},
		{
			ID: "mackerel", Name: "Mackerel",
			WeightKg: 5, Value: 10,
			SchoolMin: 1, SchoolMax: 1,
			SpawnPerTile: 0.06,
			SwimDepthMin: 0, SwimDepthMax: 5,
			SeabedMin: 0, SeabedMax: 5,
			SwayLowMin: -9, SwayLowMax: -1, SwayHighMin: 2, SwayHighMax: 10,
			SpeedFactorMin: 90, SpeedFactorMax: 110,
		},
		{
			ID: "sardine", Name: "Sardine",
			WeightKg: 6, Value: 5,
			SchoolMin: 10, SchoolMax: 14,
			SpawnPerTile: 0.5,
			SwimDepthMin: 0, SwimDepthMax: 18,
			SeabedMin: 0, SeabedMax: 18,
			SwayLowMin: -9, SwayLowMax: -1, SwayHighMin: 2, SwayHighMax: 10,
			SpeedFactorMin: 90, SpeedFactorMax: 110,
		},
		{
			ID: "pollock", Name: "Pollock",
			WeightKg: 7, Value: 6,
			SchoolMin: 5, SchoolMax: 6,
			SpawnPerTile: 0.5,
			SwimDepthMin: 0, SwimDepthMax: 18,
			SeabedMin: 5, SeabedMax: 18,
			SwayLowMin: -9, SwayLowMax: -1, SwayHighMin: 2, SwayHighMax: 10,
			SpeedFactorMin: 90, SpeedFactorMax: 110,
		},
		{
			ID: "halibut", Name: "Halibut",
			WeightKg: 18, Value: 19,
			SchoolMin: 1, SchoolMax: 2,
			SpawnPerTile: 0.1,
			SwimDepthMin: 5, SwimDepthMax: 12,
			SeabedMin: 5, SeabedMax: 12,
			SwayLowMin: -9, SwayLowMax: -1, SwayHighMin: 2, SwayHighMax: 10,
			SpeedFactorMin: 90, SpeedFactorMax: 110,
		},
		{
			ID: "waterlogged_boot", Name: "Waterlogged Boot", Junk: true,
			WeightKg: 5, Value: 1,
			SchoolMin: 1, SchoolMax: 1,
			SpawnPerTile: 0.03,
			SwimDepthMin: 0, SwimDepthMax: 1,
			SeabedMin: 0, SeabedMax: 12,
			SpeedFactorMin: 1, SpeedFactorMax: 14,
		},
		{
			ID: "barnacled_boot", Name: "Barnacled Boot", Junk: true,
			WeightKg: 5, Value: 1,
			SchoolMin: 1, SchoolMax: 1,
			SpawnPerTile: 0.03,
			SwimDepthMin: 0, SwimDepthMax: 1,
			SeabedMin: 5, SeabedMax: 18,
			SpeedFactorMin: 1, SpeedFactorMax: 19,
		},
		{
			ID: "common_starfish", Name: "Common Starfish", Junk: true,
			WeightKg: 3, Value: 1,
			SchoolMin: 1, SchoolMax: 1,
			SpawnPerTile: 0.05,
			SwimDepthMin: 0, SwimDepthMax: 3,
			SeabedMin: 0, SeabedMax: 4,
			SpeedFactorMin: 20, SpeedFactorMax: 29,
		},
		{
			ID: "sunstar", Name: "Sunstar", Junk: true,
			WeightKg: 5, Value: 1,
			SchoolMin: 1, SchoolMax: 1,
			SpawnPerTile: 0.04,
			SwimDepthMin: 0, SwimDepthMax: 1,
			SeabedMin: 0, SeabedMax: 12,
			SpeedFactorMin: 20, SpeedFactorMax: 29,
		},
		{
			ID: "cushion_star", Name: "Cushion Star", Junk: true,
			WeightKg: 4, Value: 1,
			SchoolMin: 1, SchoolMax: 1,
			SpawnPerTile: 0.04,
			SwimDepthMin: 0, SwimDepthMax: 5,
			SeabedMin: 5, SeabedMax: 12,
			SpeedFactorMin: 20, SpeedFactorMax: 29,
		},
		{
			ID: "brittle_star", Name: "Brittle Star", Junk: true,
			WeightKg: 3, Value: 1,
			SchoolMin: 1, SchoolMax: 1,
			SpawnPerTile: 0.02,
			SwimDepthMin: 12, SwimDepthMax: 18,
			SeabedMin: 12, SeabedMax: 18,
			SpeedFactorMin: 20, SpeedFactorMax: 29,
		},
		{
			ID: "spiny_starfish", Name: "Spiny Starfish", Junk: true,
			WeightKg: 3, Value: 1,
			SchoolMin: 1, SchoolMax: 1,
			SpawnPerTile: 0.02,
			SwimDepthMin: 5, SwimDepthMax: 12,
			SeabedMin: 0, SeabedMax: 12,
			SpeedFactorMin: 20, SpeedFactorMax: 29,
		},
		{
			ID: "eelgrass_clump", Name: "Eelgrass Clump", Junk: true,
			WeightKg: 9, Value: 1,
			SchoolMin: 1, SchoolMax: 1,
			SpawnPerTile: 1.0,
			SwimDepthMin: 0, SwimDepthMax: 1,
			SeabedMin: 0, SeabedMax: 4,
			SpeedFactorMin: 1, SpeedFactorMax: 9,
		},
		{
			ID: "kelp_tangle", Name: "Kelp Tangle", Junk: true,
			WeightKg: 10, Value: 1,
			SchoolMin: 1, SchoolMax: 1,
			SpawnPerTile: 1.0,
			SwimDepthMin: 0, SwimDepthMax: 1,
			SeabedMin: 3, SeabedMax: 6,
			SpeedFactorMin: 5, SpeedFactorMax: 14,
		},
	}
}

func SpeciesByID(id SpeciesID) (SpeciesSpec, bool) {
	for _, spec := range SpeciesCatalog() {
		if spec.ID == id {
			return spec, true
		}
	}
	return SpeciesSpec{}, false
}
