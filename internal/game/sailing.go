package game

import "math"

// tickDuration is the simulated seconds per tick.
const tickDuration = 1.0 / TicksPerSecond

// vesselSizeM is the boat's reference length. keelBaseM is the lever the
// rudder works against when turning.
const (
	vesselSizeM = 1.3
	keelBaseM   = 0.9 * vesselSizeM
)

// sailForces is the aerodynamic load on the rig for one tick, resolved into
// the pieces the hull cares about.
type sailForces struct {
	magnitude  float64
	drive      float64
	leeway     float64
	heelMoment float64
}

// computeSailForces resolves the wind against the sail setting. Below the
// luff threshold the cloth just flaps and delivers nothing. Otherwise force
// grows with apparent wind, deployed area, and how far the sail is trimmed
// out; the share that drives versus heels depends on where the apparent wind
// strikes relative to the heading.
func computeSailForces(v *VesselState, wind WindSample, tun Tuning) sailForces {
	if wind.Speed < tun.WindLuffThreshold {
		return sailForces{}
	}
	deployed := v.reefFraction()
	if deployed <= 0 || v.TrimRadians <= 0 {
		return sailForces{}
	}

	apparent := v.ApparentWind(wind.Vector)
	apparentSpeed := apparent.Magnitude()
	if apparentSpeed == 0 {
		return sailForces{}
	}
	apparentUnit := apparent.Unit()

	sail := v.sailSpec()
	trim := clampFloat(v.TrimRadians, 0, sail.MaxTrimRadians)
	area := sail.SailAreaM2 * deployed
	magnitude := tun.SailDriveCoeff * apparentSpeed * math.Sin(trim) * area

	heading := v.headingVec()
	driveFactor := (1 + apparentUnit.Dot(heading)) / 2
	crossFactor := math.Abs(apparentUnit.Cross(heading))
	crossSign := signum(apparent.Dot(v.tangentVec()))

	return sailForces{
		magnitude:  magnitude,
		drive:      magnitude * driveFactor,
		leeway:     magnitude * crossFactor * tun.KeelLeakFraction * crossSign,
		heelMoment: magnitude * crossFactor,
	}
}

type sailOutcome struct {
	CapsizedNow bool
	Grounded    bool
}

// stepVessel advances the boat one tick through the given wind. dragScale
// inflates hull drag while gear is towed. The order matters: heel is judged
// on this tick's rig load before any motion, then velocity, position,
// terrain, steering, and keel traction follow.
func stepVessel(v *VesselState, grid *DepthGrid, wind WindSample, tun Tuning, dragScale float64) sailOutcome {
	if v.Capsized {
		grounded := stepCapsizedDrift(v, grid, tun)
		return sailOutcome{Grounded: grounded}
	}

	forces := computeSailForces(v, wind, tun)
	hull := v.hullSpec()

	v.HeelRadians = math.Atan2(forces.heelMoment, hull.RightingMoment)
	margin := tun.StabilityAngle - v.HeelRadians
	switch {
	case margin < 0:
		v.OverheelTicks++
	case margin > tun.StabilityHysteres:
		v.OverheelTicks = 0
	}
	if tun.CapsizeGraceTicks > 0 && v.OverheelTicks >= tun.CapsizeGraceTicks {
		capsizeVessel(v, tun)
		return sailOutcome{CapsizedNow: true}
	}

	mass := v.MassKg()
	heading := v.headingVec()
	tangent := v.tangentVec()
	headSpeed := v.headSpeed()
	crossSpeed := v.crossSpeed()

	if dragScale < 1 {
		dragScale = 1
	}
	dragHead := -hull.DragCoeff * dragScale * headSpeed * math.Abs(headSpeed)
	dragCross := -hull.DragCoeff * dragScale * (1 + tun.CrossFlowFactor) * crossSpeed * math.Abs(crossSpeed)

	accel := heading.Scale((forces.drive + dragHead) / mass).
		Add(tangent.Scale((forces.leeway + dragCross) / mass))

	velBefore := v.Velocity
	v.Velocity = v.Velocity.Add(accel.Scale(tickDuration))
	distance := velBefore.Add(accel.Scale(tickDuration)).Scale(tickDuration)

	grounded := moveWithShoreClamp(v, grid, distance)
	applySteering(v, distance, tun)
	applyKeelTraction(v, tun)

	return sailOutcome{Grounded: grounded}
}

// moveWithShoreClamp applies the tick's displacement one axis at a time.
// An axis that would land on shore is dropped and its velocity component
// zeroed, so the boat slides along the coast instead of sticking to it.
func moveWithShoreClamp(v *VesselState, grid *DepthGrid, distance Vec2) bool {
	blocked := false

	next := v.Position.Add(vec2(distance.X, 0))
	if grid.IsPassable(next) {
		v.Position = next
	} else {
		v.Velocity.X = 0
		blocked = true
	}

	next = v.Position.Add(vec2(0, distance.Y))
	if grid.IsPassable(next) {
		v.Position = next
	} else {
		v.Velocity.Y = 0
		blocked = true
	}

	v.Position = grid.WrapPoint(v.Position)
	return blocked
}

// applySteering turns the heading by the arc the rudder carves over the
// distance actually sailed along the heading this tick.
func applySteering(v *VesselState, distance Vec2, tun Tuning) {
	if v.Rudder == 0 {
		return
	}
	steeringAngle := math.Abs(v.Rudder) * tun.MaxRudderAngle
	sin := math.Sin(steeringAngle)
	if sin == 0 {
		return
	}
	distanceAlongHeading := distance.Dot(v.headingVec())
	turningRadius := keelBaseM / sin
	v.HeadingRadians = wrapAngle(v.HeadingRadians + distanceAlongHeading/turningRadius*signum(v.Rudder))
}

// applyKeelTraction lets the keel grip sideways flow. Cross speed up to the
// traction limit is folded into headway instead of being lost, anything past
// the limit stays as true sideways slip.
func applyKeelTraction(v *VesselState, tun Tuning) {
	headSpeed := v.headSpeed()
	crossSpeed := v.crossSpeed()

	crossTraction := clampFloat(crossSpeed, -tun.MaxKeelTraction, tun.MaxKeelTraction)

	headMag := math.Sqrt(headSpeed*headSpeed + crossTraction*crossTraction)
	slip := crossSpeed*crossSpeed - crossTraction*crossTraction
	if slip < 0 {
		slip = 0
	}

	headVelo := v.headingVec().Scale(signum(headSpeed) * headMag)
	crossVelo := v.tangentVec().Scale(signum(crossSpeed) * math.Sqrt(slip))
	v.Velocity = headVelo.Add(crossVelo)
}

// capsizeVessel knocks the boat down. The rig goes into the water, so trim
// and reefing reset and stay there until the crew rights her.
func capsizeVessel(v *VesselState, tun Tuning) {
	v.Capsized = true
	v.OverheelTicks = 0
	v.RightingTicks = tun.RecoveryTicks
	v.HeelRadians = math.Pi / 2
	v.Reefing = 0
	v.TrimRadians = 0
	v.Rudder = 0
}

// stepCapsizedDrift moves a knocked-down hull. No rig forces, just heavy
// drag, and the righting countdown runs while the crew clings on.
func stepCapsizedDrift(v *VesselState, grid *DepthGrid, tun Tuning) bool {
	if v.RightingTicks > 0 {
		v.RightingTicks--
	}

	speed := v.Velocity.Magnitude()
	if speed > 0 {
		hull := v.hullSpec()
		decel := hull.DragCoeff * tun.CapsizedDragBoost * speed * speed / v.MassKg() * tickDuration
		if decel > speed {
			decel = speed
		}
		v.Velocity = v.Velocity.Sub(v.Velocity.Unit().Scale(decel))
	}

	return moveWithShoreClamp(v, grid, v.Velocity.Scale(tickDuration))
}

// rightVessel brings a capsized boat back upright once the righting window
// has passed. She comes up dead in the water with the sail struck.
func (v *VesselState) rightVessel() error {
	if !v.Capsized {
		return ErrNotCapsized
	}
	if v.RightingTicks > 0 {
		return ErrStillRighting
	}
	v.Capsized = false
	v.HeelRadians = 0
	v.OverheelTicks = 0
	v.Velocity = Vec2{}
	return nil
}

// Helm adjustments. All of them are refused while capsized since the rig is
// in the water.

func (v *VesselState) adjustReefing(delta int) error {
	if v.Capsized {
		return ErrCapsized
	}
	v.Reefing = clamp(v.Reefing+delta, 0, v.sailSpec().ReefSteps)
	return nil
}

func (v *VesselState) adjustTrim(delta float64) error {
	if v.Capsized {
		return ErrCapsized
	}
	v.TrimRadians = clampFloat(v.TrimRadians+delta, 0, v.sailSpec().MaxTrimRadians)
	return nil
}

func (v *VesselState) adjustRudder(delta float64) error {
	if v.Capsized {
		return ErrCapsized
	}
	v.Rudder = clampFloat(v.Rudder+delta, -1, 1)
	return nil
}

func (v *VesselState) centerRudder() error {
	if v.Capsized {
		return ErrCapsized
	}
	v.Rudder = 0
	return nil
}
