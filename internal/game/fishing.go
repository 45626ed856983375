package game

import "math"

type CaptureMethodKind string

const (
	CapturePole  CaptureMethodKind = "pole"
	CaptureTrawl CaptureMethodKind = "trawl"
)

// PoleParams shape a single cast: how far around the boat the line lands and
// how deep a swimming fish it can still hook.
type PoleParams struct {
	Radius     float64 `json:"radius"`
	ReachDepth float64 `json:"reach_depth"`
}

// TrawlParams shape the towed net: mouth width, how far behind the stern the
// net trails, and the speed above which it just skips over the water.
type TrawlParams struct {
	Width      float64 `json:"width"`
	Drift      float64 `json:"drift"`
	SpeedLimit float64 `json:"speed_limit"`
}

// CaptureMethod is a tagged choice of gear. Exactly the params matching Kind
// are set; the other pointer stays nil.
type CaptureMethod struct {
	Kind  CaptureMethodKind `json:"kind"`
	Pole  *PoleParams       `json:"pole,omitempty"`
	Trawl *TrawlParams      `json:"trawl,omitempty"`
}

func PoleMethod(tun Tuning) CaptureMethod {
	return CaptureMethod{
		Kind: CapturePole,
		Pole: &PoleParams{Radius: tun.PoleRadius, ReachDepth: tun.PoleReachDepth},
	}
}

func TrawlMethod(tun Tuning) CaptureMethod {
	return CaptureMethod{
		Kind:  CaptureTrawl,
		Trawl: &TrawlParams{Width: tun.TrawlWidth, Drift: tun.TrawlDrift, SpeedLimit: tun.TrawlSpeedLimit},
	}
}

type RigState string

const (
	RigIdle     RigState = "idle"
	RigDeployed RigState = "deployed"
)

// FishingRig is the gear over the side. A pole stays deployed for exactly one
// tick's check; a trawl stays out until hauled back in or the boat goes over.
type FishingRig struct {
	State  RigState      `json:"state"`
	Method CaptureMethod `json:"method"`
}

func (r *FishingRig) Engage(method CaptureMethod) error {
	if r.State == RigDeployed {
		return ErrRigBusy
	}
	switch method.Kind {
	case CapturePole:
		if method.Pole == nil {
			method.Pole = &PoleParams{}
		}
	case CaptureTrawl:
		if method.Trawl == nil {
			method.Trawl = &TrawlParams{}
		}
	default:
		return ErrRigIdle
	}
	r.State = RigDeployed
	r.Method = method
	return nil
}

func (r *FishingRig) Disengage() error {
	if r.State != RigDeployed {
		return ErrRigIdle
	}
	r.reset()
	return nil
}

func (r *FishingRig) reset() {
	r.State = RigIdle
	r.Method = CaptureMethod{}
}

// Deployed reports whether gear is currently in the water.
func (r *FishingRig) Deployed() bool {
	return r.State == RigDeployed
}

// TrawlDeployed reports whether the gear in the water is a trawl.
func (r *FishingRig) TrawlDeployed() bool {
	return r.State == RigDeployed && r.Method.Kind == CaptureTrawl
}

// CatchResult reports one tick of rig activity. HoldFull means at least one
// catch was refused for capacity and left in the water. OverSpeed means the
// trawl was moving too fast to fish this tick. Neither is an error.
type CatchResult struct {
	Caught    []SpeciesID `json:"caught,omitempty"`
	HoldFull  bool        `json:"hold_full,omitempty"`
	OverSpeed bool        `json:"over_speed,omitempty"`
}

// stepFishing runs the deployed gear for one tick. A capsize tears the gear
// loose, a pole idles itself after its single check, a trawl keeps sweeping.
func stepFishing(rig *FishingRig, v *VesselState, pop *FishPopulation, grid *DepthGrid, tun Tuning) CatchResult {
	if rig.State != RigDeployed {
		return CatchResult{}
	}
	if v.Capsized {
		rig.reset()
		return CatchResult{}
	}

	switch rig.Method.Kind {
	case CapturePole:
		result := polePass(rig.Method.Pole, v, pop, grid)
		rig.reset()
		return result
	case CaptureTrawl:
		return trawlPass(rig.Method.Trawl, v, pop, grid)
	default:
		rig.reset()
		return CatchResult{}
	}
}

// polePass hooks the nearest fish swimming shallow enough for the line.
// If the hold cannot take it, the fish stays where it was.
func polePass(params *PoleParams, v *VesselState, pop *FishPopulation, grid *DepthGrid) CatchResult {
	var result CatchResult

	for _, idx := range pop.QueryNear(grid, v.Position, params.Radius) {
		fish := &pop.Fish[idx]
		if fish.DepthM > params.ReachDepth {
			continue
		}
		spec, ok := SpeciesByID(fish.Species)
		if !ok {
			continue
		}
		if err := v.stowCatch(spec); err != nil {
			result.HoldFull = true
			return result
		}
		pop.Remove(idx)
		result.Caught = append(result.Caught, spec.ID)
		return result
	}

	return result
}

// trawlPass sweeps the band of water trailing the stern. Above the speed
// limit the net planes and takes nothing; that is a quiet tick, not a fault.
// Catches stop, leaving fish in the water, the moment the hold is full.
func trawlPass(params *TrawlParams, v *VesselState, pop *FishPopulation, grid *DepthGrid) CatchResult {
	var result CatchResult

	if v.GroundSpeed() > params.SpeedLimit {
		result.OverSpeed = true
		return result
	}

	heading := v.headingVec()
	tangent := v.tangentVec()

	// Removal reshuffles population indices, so the sweep works on stable
	// fish IDs gathered up front.
	var inNet []int
	for _, idx := range pop.QueryNear(grid, v.Position, params.Drift+params.Width) {
		fish := &pop.Fish[idx]
		delta := grid.TorusDelta(v.Position, fish.Position)
		along := delta.Dot(heading)
		lateral := math.Abs(delta.Dot(tangent))
		if along > 0 || along < -params.Drift || lateral > params.Width/2 {
			continue
		}
		inNet = append(inNet, fish.ID)
	}

	for _, id := range inNet {
		fish, ok := pop.fishByID(id)
		if !ok {
			continue
		}
		spec, ok := SpeciesByID(fish.Species)
		if !ok {
			continue
		}
		if err := v.stowCatch(spec); err != nil {
			result.HoldFull = true
			break
		}
		pop.RemoveByID(id)
		result.Caught = append(result.Caught, spec.ID)
	}

	return result
}
