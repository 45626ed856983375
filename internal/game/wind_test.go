package game

import (
	"math"
	"testing"
)

func windScenario() Scenario {
	return Scenario{
		ID:               "wind_test",
		Name:             "Wind Test",
		MapEdgeTiles:     32,
		WindMinSpeed:     4,
		WindMaxSpeed:     12,
		WindShiftSeconds: 30,
		WindBlendSeconds: 4,
		FishPerTile:      0.01,
		MaxFishCount:     10,
		HarborCount:      1,
	}
}

func TestWindFieldDeterministic(t *testing.T) {
	fieldA := NewWindField(4242, windScenario())
	fieldB := NewWindField(4242, windScenario())

	for tick := uint64(0); tick < 5000; tick += 17 {
		sampleA := fieldA.SampleAt(tick)
		sampleB := fieldB.SampleAt(tick)
		if sampleA != sampleB {
			t.Fatalf("expected identical samples at tick %d, got %+v and %+v", tick, sampleA, sampleB)
		}
	}
}

func TestWindSpeedStaysInsideScenarioBand(t *testing.T) {
	scenario := windScenario()
	field := NewWindField(99, scenario)

	for tick := uint64(0); tick < 20000; tick += 7 {
		sample := field.SampleAt(tick)
		if sample.Speed < scenario.WindMinSpeed || sample.Speed > scenario.WindMaxSpeed {
			t.Fatalf("tick %d wind speed %f outside %f..%f", tick, sample.Speed, scenario.WindMinSpeed, scenario.WindMaxSpeed)
		}
		if sample.Vector.Magnitude() == 0 && sample.Speed != 0 {
			t.Fatalf("tick %d has speed %f but zero vector", tick, sample.Speed)
		}
	}
}

func TestWindHoldsSteadyWithinEpoch(t *testing.T) {
	scenario := windScenario()
	field := NewWindField(5, scenario)
	shift := uint64(scenario.WindShiftSeconds) * TicksPerSecond
	blend := uint64(scenario.WindBlendSeconds) * TicksPerSecond

	settled := field.SampleAt(shift + blend)
	later := field.SampleAt(shift + blend + 500)
	if settled.Speed != later.Speed || settled.AngleRadians != later.AngleRadians {
		t.Fatalf("expected steady wind inside an epoch, got %+v then %+v", settled, later)
	}
}

func TestWindShiftsAcrossEpochs(t *testing.T) {
	field := NewWindField(5, windScenario())

	angleA, speedA := field.epochWind(0)
	angleB, speedB := field.epochWind(1)
	if angleA == angleB && speedA == speedB {
		t.Fatalf("expected epochs to draw different winds, both %f at %f m/s", speedA, angleA)
	}
}

func TestWindBlendEasesBetweenEpochs(t *testing.T) {
	scenario := windScenario()
	field := NewWindField(5, scenario)
	shift := uint64(scenario.WindShiftSeconds) * TicksPerSecond
	blend := uint64(scenario.WindBlendSeconds) * TicksPerSecond

	prevAngle, prevSpeed := field.epochWind(0)
	nextAngle, nextSpeed := field.epochWind(1)

	start := field.SampleAt(shift)
	if math.Abs(start.Speed-prevSpeed) > 1e-9 || math.Abs(angleDiff(start.AngleRadians, prevAngle)) > 1e-9 {
		t.Fatalf("expected the blend to start on the old wind, got speed=%f angle=%f", start.Speed, start.AngleRadians)
	}

	settled := field.SampleAt(shift + blend)
	if math.Abs(settled.Speed-nextSpeed) > 1e-9 || math.Abs(angleDiff(settled.AngleRadians, nextAngle)) > 1e-9 {
		t.Fatalf("expected the blend to finish on the new wind, got speed=%f angle=%f", settled.Speed, settled.AngleRadians)
	}

	mid := field.SampleAt(shift + blend/2)
	lo := math.Min(prevSpeed, nextSpeed)
	hi := math.Max(prevSpeed, nextSpeed)
	if mid.Speed < lo-1e-9 || mid.Speed > hi+1e-9 {
		t.Fatalf("expected mid-blend speed between %f and %f, got %f", lo, hi, mid.Speed)
	}
}

func TestWindFieldSurvivesTinyShiftInterval(t *testing.T) {
	scenario := windScenario()
	scenario.WindShiftSeconds = 1
	scenario.WindBlendSeconds = 10

	field := NewWindField(3, scenario)
	sample := field.SampleAt(30)
	if sample.Speed < scenario.WindMinSpeed || sample.Speed > scenario.WindMaxSpeed {
		t.Fatalf("expected clamped blend window to keep speed in band, got %f", sample.Speed)
	}
}
