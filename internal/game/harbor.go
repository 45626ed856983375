package game

// Harbor is one trading post tucked against the coast. Trade only happens
// inside its radius, and only once the boat has slowed to docking speed.
type Harbor struct {
	ID       int                 `json:"id"`
	Name     string              `json:"name"`
	Position Vec2                `json:"position"`
	Radius   float64             `json:"radius"`
	Prices   map[SpeciesID]int64 `json:"prices"`
}

func harborNamePool() []string {
	return []string{
		"Port Moray",
		"Herring Quay",
		"Saltwick",
		"Low Anchorage",
		"Gullhaven",
		"Tarwharf",
		"Kettle Sound",
		"Brine Hollow",
		"Lanternside",
		"Nets End",
		"Copper Jetty",
		"Stillwater Stage",
	}
}

func defaultPriceTable() map[SpeciesID]int64 {
	prices := make(map[SpeciesID]int64)
	for _, spec := range SpeciesCatalog() {
		prices[spec.ID] = spec.Value
	}
	return prices
}

func hasShoreNeighbor(grid *DepthGrid, tx, ty int) bool {
	offsets := [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	for _, off := range offsets {
		if grid.DepthAtTile(tx+off[0], ty+off[1]) <= 0 {
			return true
		}
	}
	return false
}

// buildHarbors places the scenario's harbors deterministically: shallow
// water against a shoreline, spread out across the chart. Charts too cramped
// for the spacing rule fall back to any open water so a voyage always has
// somewhere to sell.
func buildHarbors(seed int64, scenario Scenario, grid *DepthGrid, tun Tuning) []Harbor {
	rng := seededRNG(seed, "harbors")

	names := harborNamePool()
	rng.Shuffle(len(names), func(i, j int) {
		names[i], names[j] = names[j], names[i]
	})

	pickName := func(i int) string {
		if i < len(names) {
			return names[i]
		}
		return names[i%len(names)]
	}

	minSeparation := grid.MapSize() / float64(scenario.HarborCount+1)

	var harbors []Harbor
	for attempts := 0; len(harbors) < scenario.HarborCount && attempts < 4000; attempts++ {
		pos, ok := grid.RandomLocationWhere(rng, func(depth float64) bool {
			return depth > 0 && depth < shallowCutoff
		})
		if !ok {
			break
		}
		tx, ty := grid.TileAt(pos)
		if !hasShoreNeighbor(grid, tx, ty) {
			continue
		}

		center := grid.TileCenter(tx, ty)
		tooClose := false
		for _, h := range harbors {
			if grid.TorusDistance(h.Position, center) < minSeparation {
				tooClose = true
				break
			}
		}
		if tooClose {
			continue
		}

		harbors = append(harbors, Harbor{
			ID:       len(harbors) + 1,
			Name:     pickName(len(harbors)),
			Position: center,
			Radius:   tun.HarborRadius,
			Prices:   defaultPriceTable(),
		})
	}

	for len(harbors) < scenario.HarborCount {
		pos, ok := grid.RandomOpenWater(rng)
		if !ok {
			break
		}
		harbors = append(harbors, Harbor{
			ID:       len(harbors) + 1,
			Name:     pickName(len(harbors)),
			Position: pos,
			Radius:   tun.HarborRadius,
			Prices:   defaultPriceTable(),
		})
	}

	return harbors
}

// activeHarbor finds the harbor the boat can trade with right now. Being
// outside every harbor radius and being too fast alongside are distinct
// refusals so the helm knows which problem to fix.
func activeHarbor(harbors []Harbor, grid *DepthGrid, v *VesselState, tun Tuning) (*Harbor, error) {
	var nearest *Harbor
	nearestDist := 0.0
	for i := range harbors {
		d := grid.TorusDistance(v.Position, harbors[i].Position)
		if d <= harbors[i].Radius && (nearest == nil || d < nearestDist) {
			nearest = &harbors[i]
			nearestDist = d
		}
	}
	if nearest == nil {
		return nil, ErrNotAtHarbor
	}
	if v.GroundSpeed() > tun.DockSpeedLimit {
		return nil, ErrTooFastToDock
	}
	return nearest, nil
}

// SaleResult is the outcome of emptying the hold at a harbor.
type SaleResult struct {
	CurrencyDelta int64 `json:"currency_delta"`
	Sold          int   `json:"sold"`
}

// sellAll empties the hold at the harbor's prices. An empty hold is a clean
// zero-delta no-op, never a failure.
func sellAll(v *VesselState, harbor *Harbor) SaleResult {
	var result SaleResult
	for id, count := range v.unloadCargo() {
		if count <= 0 {
			continue
		}
		result.Sold += count
		result.CurrencyDelta += harbor.Prices[id] * int64(count)
	}
	return result
}

type UpgradeKind string

const (
	UpgradeSail UpgradeKind = "sail"
	UpgradeHull UpgradeKind = "hull"
)

// UpgradeResult describes a purchased tier bump.
type UpgradeResult struct {
	Kind UpgradeKind `json:"kind"`
	Tier int         `json:"tier"`
	Cost int64       `json:"cost"`
}

// purchaseUpgrade moves the vessel up one tier of the given kind, spending
// from funds. The new tier's physics apply from the next tick.
func purchaseUpgrade(kind UpgradeKind, v *VesselState, funds *int64) (UpgradeResult, error) {
	var cost int64
	var nextTier int

	switch kind {
	case UpgradeSail:
		nextTier = v.SailTier + 1
		spec, ok := SailTierByNumber(nextTier)
		if !ok {
			return UpgradeResult{}, ErrMaxTierReached
		}
		cost = spec.UpgradeCost
	case UpgradeHull:
		nextTier = v.HullTier + 1
		spec, ok := HullTierByNumber(nextTier)
		if !ok {
			return UpgradeResult{}, ErrMaxTierReached
		}
		cost = spec.UpgradeCost
	default:
		return UpgradeResult{}, ErrMaxTierReached
	}

	if *funds < cost {
		return UpgradeResult{}, ErrInsufficientFunds
	}
	*funds -= cost

	if kind == UpgradeSail {
		v.SailTier = nextTier
	} else {
		v.HullTier = nextTier
	}

	return UpgradeResult{Kind: kind, Tier: nextTier, Cost: cost}, nil
}
