package game

import "math"

// VesselState is everything about the boat that changes tick to tick.
// Heading is radians from world X. Rudder runs -1..1. Trim is how far the
// sail is let out from the centerline; reefing is the deployed cloth step
// from zero (bare pole) up to the sail tier's maximum.
type VesselState struct {
	Position       Vec2    `json:"position"`
	Velocity       Vec2    `json:"velocity"`
	HeadingRadians float64 `json:"heading_radians"`
	Rudder         float64 `json:"rudder"`
	TrimRadians    float64 `json:"trim_radians"`
	Reefing        int     `json:"reefing"`

	SailTier int `json:"sail_tier"`
	HullTier int `json:"hull_tier"`

	HeelRadians   float64 `json:"heel_radians"`
	Capsized      bool    `json:"capsized"`
	OverheelTicks int     `json:"overheel_ticks"`
	RightingTicks int     `json:"righting_ticks"`

	// Cargo maps species to the number of that catch in the hold.
	Cargo map[SpeciesID]int `json:"cargo"`
}

func NewVessel(start Vec2) VesselState {
	return VesselState{
		Position: start,
		SailTier: 1,
		HullTier: 1,
		Cargo:    map[SpeciesID]int{},
	}
}

func (v *VesselState) headingVec() Vec2 {
	return vecFromAngle(v.HeadingRadians)
}

// tangentVec is orthogonal to heading, pointing to port.
func (v *VesselState) tangentVec() Vec2 {
	return vecFromAngle(v.HeadingRadians + math.Pi/2)
}

// GroundSpeed is the magnitude of velocity in m/s.
func (v *VesselState) GroundSpeed() float64 {
	return v.Velocity.Magnitude()
}

// headSpeed is the signed speed along the heading.
func (v *VesselState) headSpeed() float64 {
	return v.Velocity.Dot(v.headingVec())
}

// crossSpeed is the signed speed along the tangent.
func (v *VesselState) crossSpeed() float64 {
	return v.Velocity.Dot(v.tangentVec())
}

// ApparentWind is the wind felt on deck, true wind minus boat motion.
func (v *VesselState) ApparentWind(wind Vec2) Vec2 {
	return wind.Sub(v.Velocity)
}

func (v *VesselState) sailSpec() SailTierSpec {
	spec, ok := SailTierByNumber(v.SailTier)
	if !ok {
		spec, _ = SailTierByNumber(1)
	}
	return spec
}

func (v *VesselState) hullSpec() HullTierSpec {
	spec, ok := HullTierByNumber(v.HullTier)
	if !ok {
		spec, _ = HullTierByNumber(1)
	}
	return spec
}

// reefFraction is the deployed share of the sail, zero through one.
func (v *VesselState) reefFraction() float64 {
	steps := v.sailSpec().ReefSteps
	if steps <= 0 {
		return 0
	}
	return clampFloat(float64(v.Reefing)/float64(steps), 0, 1)
}

// MassKg is hull deadweight plus everything in the hold.
func (v *VesselState) MassKg() float64 {
	return v.hullSpec().MassKg + v.CargoWeightKg()
}

func (v *VesselState) CargoWeightKg() float64 {
	total := 0.0
	for id, count := range v.Cargo {
		if spec, ok := SpeciesByID(id); ok {
			total += spec.WeightKg * float64(count)
		}
	}
	return total
}

func (v *VesselState) CargoCount() int {
	total := 0
	for _, count := range v.Cargo {
		total += count
	}
	return total
}

// stowCatch puts one catch into the hold unless it would push the load past
// the hull capacity. The hold never overfills; a catch that does not fit is
// rejected whole.
func (v *VesselState) stowCatch(spec SpeciesSpec) error {
	if v.CargoWeightKg()+spec.WeightKg > v.hullSpec().CargoCapacityKg {
		return ErrCargoFull
	}
	if v.Cargo == nil {
		v.Cargo = map[SpeciesID]int{}
	}
	v.Cargo[spec.ID]++
	return nil
}

// unloadCargo empties the hold and returns what was in it.
func (v *VesselState) unloadCargo() map[SpeciesID]int {
	sold := v.Cargo
	v.Cargo = map[SpeciesID]int{}
	return sold
}
