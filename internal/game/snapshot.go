package game

// visibleFishRadius bounds the fish list in a snapshot. Hosts drawing a
// chart do not need the whole population, just what sits around the hull.
const visibleFishRadius = 80.0

// TickEventKind labels the notable things a tick produced.
type TickEventKind string

const (
	EventRefused   TickEventKind = "refused"
	EventCapsized  TickEventKind = "capsized"
	EventRecovered TickEventKind = "recovered"
	EventCatch     TickEventKind = "catch"
	EventHoldFull  TickEventKind = "hold_full"
	EventSold      TickEventKind = "sold"
	EventUpgraded  TickEventKind = "upgraded"
)

// TickEvent is one notable happening inside a single tick. Command is only
// set on refusals, Species only on catches, Amount only on trades.
type TickEvent struct {
	Kind    TickEventKind `json:"kind"`
	Message string        `json:"message"`
	Command CommandKind   `json:"command,omitempty"`
	Species SpeciesID     `json:"species,omitempty"`
	Amount  int64         `json:"amount,omitempty"`
}

// VisibleFish is the host-facing view of one fish near the vessel. Deep
// swimmers surface only as shadows, so ShadowOnly tells the host to hide
// the species until the fish is hauled up.
type VisibleFish struct {
	ID         int       `json:"id"`
	Species    SpeciesID `json:"species,omitempty"`
	Position   Vec2      `json:"position"`
	DepthM     float64   `json:"depth_m"`
	ShadowOnly bool      `json:"shadow_only,omitempty"`
}

// HarborStatus is the host-facing view of one harbor with the vessel's
// current distance to it.
type HarborStatus struct {
	ID        int     `json:"id"`
	Name      string  `json:"name"`
	Position  Vec2    `json:"position"`
	DistanceM float64 `json:"distance_m"`
	InRange   bool    `json:"in_range"`
}

// WorldSnapshot is the full read-only view handed back by Advance. It
// shares no mutable state with the world, so hosts may keep snapshots
// across ticks for interpolation or replay diffing.
type WorldSnapshot struct {
	Tick uint64     `json:"tick"`
	Wind WindSample `json:"wind"`

	Vessel          VesselState `json:"vessel"`
	CargoWeightKg   float64     `json:"cargo_weight_kg"`
	CargoCapacityKg float64     `json:"cargo_capacity_kg"`
	DepthUnderKeelM float64     `json:"depth_under_keel_m"`
	Terrain         string      `json:"terrain"`

	Funds int64      `json:"funds"`
	Rig   FishingRig `json:"rig"`

	Harbors []HarborStatus `json:"harbors"`

	Fish      []VisibleFish `json:"fish,omitempty"`
	FishCount int           `json:"fish_count"`

	Catch  CatchResult `json:"catch"`
	Events []TickEvent `json:"events,omitempty"`
}

func (w *World) buildSnapshot(wind WindSample, catch CatchResult, events []TickEvent) WorldSnapshot {
	depth := w.Grid.DepthAt(w.Vessel.Position)

	return WorldSnapshot{
		Tick:            w.Tick,
		Wind:            wind,
		Vessel:          cloneVessel(w.Vessel),
		CargoWeightKg:   w.Vessel.CargoWeightKg(),
		CargoCapacityKg: w.Vessel.hullSpec().CargoCapacityKg,
		DepthUnderKeelM: depth,
		Terrain:         ClassifyDepth(depth).String(),
		Funds:           w.Funds,
		Rig:             cloneRig(w.Rig),
		Harbors:         w.harborStatuses(),
		Fish:            w.visibleFish(),
		FishCount:       w.Population.Count(),
		Catch:           catch,
		Events:          events,
	}
}

func (w *World) harborStatuses() []HarborStatus {
	statuses := make([]HarborStatus, 0, len(w.Harbors))

	for _, harbor := range w.Harbors {
		distance := w.Grid.TorusDistance(w.Vessel.Position, harbor.Position)

		statuses = append(statuses, HarborStatus{
			ID:        harbor.ID,
			Name:      harbor.Name,
			Position:  harbor.Position,
			DistanceM: distance,
			InRange:   distance <= harbor.Radius,
		})
	}

	return statuses
}

func (w *World) visibleFish() []VisibleFish {
	indices := w.Population.QueryNear(w.Grid, w.Vessel.Position, visibleFishRadius)
	if len(indices) == 0 {
		return nil
	}

	visible := make([]VisibleFish, 0, len(indices))

	for _, idx := range indices {
		fish := w.Population.Fish[idx]
		shadow := fish.DepthM >= shallowCutoff

		view := VisibleFish{
			ID:         fish.ID,
			Position:   fish.Position,
			DepthM:     fish.DepthM,
			ShadowOnly: shadow,
		}
		if !shadow {
			view.Species = fish.Species
		}

		visible = append(visible, view)
	}

	return visible
}

// cloneVessel deep-copies the cargo map so a held snapshot cannot watch the
// live hold change.
func cloneVessel(v VesselState) VesselState {
	cargo := make(map[SpeciesID]int, len(v.Cargo))
	for id, count := range v.Cargo {
		cargo[id] = count
	}

	v.Cargo = cargo

	return v
}

// cloneRig deep-copies the method parameters behind the rig's pointers.
func cloneRig(r FishingRig) FishingRig {
	if r.Method.Pole != nil {
		pole := *r.Method.Pole
		r.Method.Pole = &pole
	}

	if r.Method.Trawl != nil {
		trawl := *r.Method.Trawl
		r.Method.Trawl = &trawl
	}

	return r
}
