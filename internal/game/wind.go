package game

import "math"

// WindSample is the prevailing wind during one tick. The vector points in the
// direction the air moves, in m/s.
type WindSample struct {
	Vector       Vec2    `json:"vector"`
	Speed        float64 `json:"speed"`
	AngleRadians float64 `json:"angle_radians"`
	Epoch        uint64  `json:"epoch"`
}

// WindField yields the wind for any tick directly from the seed, so rewinding
// or replaying a voyage never drifts. Wind holds steady within an epoch and
// eases into the next one over the blend window.
type WindField struct {
	seed       int64
	minSpeed   float64
	maxSpeed   float64
	shiftTicks uint64
	blendTicks uint64
}

func NewWindField(seed int64, scenario Scenario) *WindField {
	shift := uint64(scenario.WindShiftSeconds) * TicksPerSecond
	if shift == 0 {
		shift = TicksPerSecond
	}
	blend := uint64(scenario.WindBlendSeconds) * TicksPerSecond
	if blend >= shift {
		blend = shift / 2
	}

	return &WindField{
		seed:       seed,
		minSpeed:   scenario.WindMinSpeed,
		maxSpeed:   scenario.WindMaxSpeed,
		shiftTicks: shift,
		blendTicks: blend,
	}
}

func (f *WindField) epochWind(epoch uint64) (float64, float64) {
	rng := epochRNG(f.seed, epoch)
	angle := rng.Float64() * 2 * math.Pi
	speed := f.minSpeed + rng.Float64()*(f.maxSpeed-f.minSpeed)
	return angle, speed
}

// SampleAt gives the wind for a tick. Within the blend window at the start of
// an epoch the previous wind eases toward the new one along the shortest arc.
func (f *WindField) SampleAt(tick uint64) WindSample {
	epoch := tick / f.shiftTicks
	angle, speed := f.epochWind(epoch)

	if epoch > 0 && f.blendTicks > 0 {
		into := tick - epoch*f.shiftTicks
		if into < f.blendTicks {
			prevAngle, prevSpeed := f.epochWind(epoch - 1)
			t := smoothstep(float64(into) / float64(f.blendTicks))
			angle = lerpAngle(prevAngle, angle, t)
			speed = lerp(prevSpeed, speed, t)
		}
	}

	return WindSample{
		Vector:       vecFromAngle(angle).Scale(speed),
		Speed:        speed,
		AngleRadians: angle,
		Epoch:        epoch,
	}
}
