package game

func BuiltInScenarios() []Scenario {
	build := func(id ScenarioID, name, desc string, edge int, windMin, windMax float64, shiftSec int, fishPerTile float64, maxFish, harbors int, funds int64) Scenario {
		return Scenario{
			ID:               id,
			Name:             name,
			Description:      desc,
			MapEdgeTiles:     edge,
			WindMinSpeed:     windMin,
			WindMaxSpeed:     windMax,
			WindShiftSeconds: shiftSec,
			WindBlendSeconds: 4,
			FishPerTile:      fishPerTile,
			MaxFishCount:     maxFish,
			HarborCount:      harbors,
			StartingFunds:    funds,
		}
	}

	return []Scenario{
		build(ScenarioTrainingLagoonID, "Training Lagoon",
			"Sheltered water with a steady breeze, generous stock, and a harbor never far off.",
			64, 3.0, 7.0, 90, 0.08, 320, 2, 80),
		build(ScenarioTradeWindsID, "Trade Winds Archipelago",
			"Open crossings between island groups, working winds, and honest fish prices.",
			128, 4.0, 12.0, 45, 0.05, 480, 3, 50),
		build(ScenarioStormGauntletID, "Storm Gauntlet",
			"Hard gusts that swing fast, thin stock inshore, and the best grounds far from shelter.",
			192, 6.0, 18.0, 25, 0.03, 520, 2, 40),
	}
}
