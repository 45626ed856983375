package game

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// fishSwayBaseSeconds scales how long one sway cycle takes for a unit curve.
const fishSwayBaseSeconds = 2

// Fish is one free-swimming individual, or one piece of drifting junk. It
// sways around its spawn origin along a closed curve, so its position at any
// tick is a pure function of its spawn parameters.
type Fish struct {
	ID       int       `json:"id"`
	Species  SpeciesID `json:"species"`
	Origin   Vec2      `json:"origin"`
	Position Vec2      `json:"position"`
	DepthM   float64   `json:"depth_m"`

	SwayLow     int     `json:"sway_low"`
	SwayHigh    int     `json:"sway_high"`
	Phase       float64 `json:"phase"`
	SpeedFactor int     `json:"speed_factor"`
	Backwards   bool    `json:"backwards"`
}

// positionAt traces the sway curve for the given tick. The curve is a sum of
// up to three circles, giving every fish a slightly different closed wander
// no wider than a tile.
func (f *Fish) positionAt(tick uint64) Vec2 {
	forward := 1.0
	if f.Backwards {
		forward = -1.0
	}

	cycle := uint64(1+absInt(f.SwayLow)+absInt(f.SwayHigh)) * 100 / uint64(maxInt(f.SpeedFactor, 1))
	duration := cycle * fishSwayBaseSeconds * TicksPerSecond
	if duration == 0 {
		duration = 1
	}
	progress := forward * (f.Phase + 2*math.Pi*float64(tick%duration)/float64(duration))

	pos := f.Origin.Add(vec2(math.Sin(progress), math.Cos(progress)))
	if f.SwayLow != 0 {
		p := progress * float64(f.SwayLow)
		pos = pos.Add(vec2(math.Sin(p), math.Cos(p)))
	}
	if f.SwayHigh != 0 {
		p := progress * float64(f.SwayHigh)
		pos = pos.Add(vec2(math.Sin(p), math.Cos(p)))
	}
	return pos
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// FishPopulation tracks every catchable in the water. It stays bounded: the
// initial stock fills toward the scenario target and respawns only nudge it
// back toward that target after catches.
type FishPopulation struct {
	Fish   []Fish `json:"fish"`
	NextID int    `json:"next_id"`

	seed        int64
	targetCount int
	maxCount    int

	catalog     []SpeciesSpec
	totalWeight float64
}

func newFishPopulation(seed int64, scenario Scenario, grid *DepthGrid) *FishPopulation {
	target := int(float64(grid.PassableTileCount()) * scenario.FishPerTile)
	if target > scenario.MaxFishCount {
		target = scenario.MaxFishCount
	}

	catalog := SpeciesCatalog()
	total := 0.0
	for _, spec := range catalog {
		total += spec.SpawnPerTile
	}

	pop := &FishPopulation{
		seed:        seed,
		targetCount: target,
		maxCount:    scenario.MaxFishCount,
		catalog:     catalog,
		totalWeight: total,
	}

	rng := seededRNG(seed, "fish:init")
	for len(pop.Fish) < target {
		if !pop.spawnSchool(rng, grid) {
			break
		}
	}
	for i := range pop.Fish {
		pop.Fish[i].Position = pop.Fish[i].positionAt(0)
	}

	return pop
}

func (p *FishPopulation) Count() int {
	return len(p.Fish)
}

func (p *FishPopulation) TargetCount() int {
	return p.targetCount
}

// pickSpecies draws a species weighted by spawn density.
func (p *FishPopulation) pickSpecies(rng *rand.Rand) SpeciesSpec {
	if p.totalWeight <= 0 {
		return p.catalog[0]
	}
	roll := rng.Float64() * p.totalWeight
	running := 0.0
	for _, spec := range p.catalog {
		running += spec.SpawnPerTile
		if roll < running {
			return spec
		}
	}
	return p.catalog[len(p.catalog)-1]
}

// spawnSchool places one school of a weighted-random species over seabed in
// its depth band. Returns false when no tile on the chart can host the pick,
// which only happens on degenerate charts.
func (p *FishPopulation) spawnSchool(rng *rand.Rand, grid *DepthGrid) bool {
	spec := p.pickSpecies(rng)

	anchor, ok := grid.RandomLocationWhere(rng, func(depth float64) bool {
		return depth > 0 && depth >= spec.SeabedMin && depth <= spec.SeabedMax
	})
	if !ok {
		anchor, ok = grid.RandomOpenWater(rng)
		if !ok {
			return false
		}
	}

	size := intInRange(rng, spec.SchoolMin, spec.SchoolMax)
	for i := 0; i < size && len(p.Fish) < p.maxCount; i++ {
		origin := anchor
		if size > 1 {
			scatter := vec2((rng.Float64()-0.5)*TileSize, (rng.Float64()-0.5)*TileSize)
			candidate := grid.WrapPoint(anchor.Add(scatter))
			if grid.IsPassable(candidate) {
				origin = candidate
			}
		}

		p.NextID++
		p.Fish = append(p.Fish, Fish{
			ID:          p.NextID,
			Species:     spec.ID,
			Origin:      origin,
			Position:    origin,
			DepthM:      spec.SwimDepthMin + rng.Float64()*(spec.SwimDepthMax-spec.SwimDepthMin),
			SwayLow:     intInRange(rng, spec.SwayLowMin, spec.SwayLowMax),
			SwayHigh:    intInRange(rng, spec.SwayHighMin, spec.SwayHighMax),
			Phase:       rng.Float64() * 2 * math.Pi,
			SpeedFactor: intInRange(rng, spec.SpeedFactorMin, spec.SpeedFactorMax),
			Backwards:   rng.IntN(2) == 1,
		})
	}
	return true
}

func intInRange(rng *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rng.IntN(hi-lo+1)
}

// Tick sways every fish and maybe respawns one school. The respawn roll is a
// pure hash of seed and tick, so a replay that lands on the same tick with
// the same shortfall spawns the same school.
func (p *FishPopulation) Tick(tick uint64, grid *DepthGrid, tun Tuning) {
	for i := range p.Fish {
		p.Fish[i].Position = p.Fish[i].positionAt(tick)
	}

	missing := p.targetCount - len(p.Fish)
	if missing <= 0 {
		return
	}

	chance := float64(missing) * tun.RespawnPerSecond * tickDuration
	if chance > 1 {
		chance = 1
	}
	if deterministicRoll(p.seed, "fish:respawn", tick) >= chance {
		return
	}

	rng := seededRNG(p.seed, fmt.Sprintf("fish:school:%d", tick))
	p.spawnSchool(rng, grid)
}

// QueryNear lists the indices of fish within the radius around pos, nearest
// first. Distances wrap across the chart seam.
func (p *FishPopulation) QueryNear(grid *DepthGrid, pos Vec2, radius float64) []int {
	type hit struct {
		idx  int
		dist float64
	}
	var hits []hit
	for i := range p.Fish {
		d := grid.TorusDistance(pos, p.Fish[i].Position)
		if d <= radius {
			hits = append(hits, hit{idx: i, dist: d})
		}
	}
	for a := 1; a < len(hits); a++ {
		for b := a; b > 0 && hits[b].dist < hits[b-1].dist; b-- {
			hits[b], hits[b-1] = hits[b-1], hits[b]
		}
	}

	out := make([]int, len(hits))
	for i, h := range hits {
		out[i] = h.idx
	}
	return out
}

// Remove takes a fish out of the water and returns its species spec.
func (p *FishPopulation) Remove(idx int) (SpeciesSpec, bool) {
	if idx < 0 || idx >= len(p.Fish) {
		return SpeciesSpec{}, false
	}
	spec, ok := SpeciesByID(p.Fish[idx].Species)
	if !ok {
		return SpeciesSpec{}, false
	}
	last := len(p.Fish) - 1
	p.Fish[idx] = p.Fish[last]
	p.Fish = p.Fish[:last]
	return spec, true
}

// RemoveByID takes a fish out of the water by its stable ID. Safe to call
// while holding indices from an earlier query, unlike Remove.
func (p *FishPopulation) RemoveByID(id int) (SpeciesSpec, bool) {
	for i := range p.Fish {
		if p.Fish[i].ID == id {
			return p.Remove(i)
		}
	}
	return SpeciesSpec{}, false
}

func (p *FishPopulation) fishByID(id int) (*Fish, bool) {
	for i := range p.Fish {
		if p.Fish[i].ID == id {
			return &p.Fish[i], true
		}
	}
	return nil, false
}
