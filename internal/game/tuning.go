package game

import "math"

// Tuning collects every physics and gameplay constant the simulation uses.
// The stability angle and respawn rate in particular are design intents, not
// fixed values, so they live here instead of being hard-coded in the step
// functions. Zero fields are filled from DefaultTuning by withDefaults.
type Tuning struct {
	// Sail force.
	SailDriveCoeff    float64 `yaml:"sail_drive_coeff" json:"sail_drive_coeff"`
	WindLuffThreshold float64 `yaml:"wind_luff_threshold" json:"wind_luff_threshold"`

	// Hull motion.
	CrossFlowFactor  float64 `yaml:"cross_flow_factor" json:"cross_flow_factor"`
	MaxKeelTraction  float64 `yaml:"max_keel_traction" json:"max_keel_traction"`
	KeelLeakFraction float64 `yaml:"keel_leak_fraction" json:"keel_leak_fraction"`
	MaxRudderAngle   float64 `yaml:"max_rudder_angle" json:"max_rudder_angle"`

	// Stability envelope.
	StabilityAngle    float64 `yaml:"stability_angle" json:"stability_angle"`
	StabilityHysteres float64 `yaml:"stability_hysteresis" json:"stability_hysteresis"`
	CapsizeGraceTicks int     `yaml:"capsize_grace_ticks" json:"capsize_grace_ticks"`
	RecoveryTicks     int     `yaml:"recovery_ticks" json:"recovery_ticks"`
	CapsizedDragBoost float64 `yaml:"capsized_drag_boost" json:"capsized_drag_boost"`

	// Fishing.
	PoleRadius      float64 `yaml:"pole_radius" json:"pole_radius"`
	PoleReachDepth  float64 `yaml:"pole_reach_depth" json:"pole_reach_depth"`
	TrawlWidth      float64 `yaml:"trawl_width" json:"trawl_width"`
	TrawlDrift      float64 `yaml:"trawl_drift" json:"trawl_drift"`
	TrawlSpeedLimit float64 `yaml:"trawl_speed_limit" json:"trawl_speed_limit"`
	TrawlDragBoost  float64 `yaml:"trawl_drag_boost" json:"trawl_drag_boost"`

	// Population churn. RespawnPerSecond is the per-missing-fish respawn
	// probability per simulated second.
	RespawnPerSecond float64 `yaml:"respawn_per_second" json:"respawn_per_second"`

	// Harbor interaction.
	HarborRadius    float64 `yaml:"harbor_radius" json:"harbor_radius"`
	DockSpeedLimit  float64 `yaml:"dock_speed_limit" json:"dock_speed_limit"`
	TrimStepRadians float64 `yaml:"trim_step_radians" json:"trim_step_radians"`
	RudderStep      float64 `yaml:"rudder_step" json:"rudder_step"`
}

func DefaultTuning() Tuning {
	return Tuning{
		SailDriveCoeff:    3.0,
		WindLuffThreshold: 0.05,

		CrossFlowFactor:  0.8,
		MaxKeelTraction:  1.0,
		KeelLeakFraction: 0.18,
		MaxRudderAngle:   math.Pi / 3,

		StabilityAngle:    35 * math.Pi / 180,
		StabilityHysteres: 2 * math.Pi / 180,
		CapsizeGraceTicks: 90,
		RecoveryTicks:     300,
		CapsizedDragBoost: 2.0,

		PoleRadius:      6.0,
		PoleReachDepth:  5.0,
		TrawlWidth:      3.0,
		TrawlDrift:      6.0,
		TrawlSpeedLimit: 2.5,
		TrawlDragBoost:  1.6,

		RespawnPerSecond: 0.02,

		HarborRadius:    12.0,
		DockSpeedLimit:  1.2,
		TrimStepRadians: 5 * math.Pi / 180,
		RudderStep:      0.25,
	}
}

func (t Tuning) withDefaults() Tuning {
	def := DefaultTuning()
	if t.SailDriveCoeff == 0 {
		t.SailDriveCoeff = def.SailDriveCoeff
	}
	if t.WindLuffThreshold == 0 {
		t.WindLuffThreshold = def.WindLuffThreshold
	}
	if t.CrossFlowFactor == 0 {
		t.CrossFlowFactor = def.CrossFlowFactor
	}
	if t.MaxKeelTraction == 0 {
		t.MaxKeelTraction = def.MaxKeelTraction
	}
	if t.KeelLeakFraction == 0 {
		t.KeelLeakFraction = def.KeelLeakFraction
	}
	if t.MaxRudderAngle == 0 {
		t.MaxRudderAngle = def.MaxRudderAngle
	}
	if t.StabilityAngle == 0 {
		t.StabilityAngle = def.StabilityAngle
	}
	if t.StabilityHysteres == 0 {
		t.StabilityHysteres = def.StabilityHysteres
	}
	if t.CapsizeGraceTicks == 0 {
		t.CapsizeGraceTicks = def.CapsizeGraceTicks
	}
	if t.RecoveryTicks == 0 {
		t.RecoveryTicks = def.RecoveryTicks
	}
	if t.CapsizedDragBoost == 0 {
		t.CapsizedDragBoost = def.CapsizedDragBoost
	}
	if t.PoleRadius == 0 {
		t.PoleRadius = def.PoleRadius
	}
	if t.PoleReachDepth == 0 {
		t.PoleReachDepth = def.PoleReachDepth
	}
	if t.TrawlWidth == 0 {
		t.TrawlWidth = def.TrawlWidth
	}
	if t.TrawlDrift == 0 {
		t.TrawlDrift = def.TrawlDrift
	}
	if t.TrawlSpeedLimit == 0 {
		t.TrawlSpeedLimit = def.TrawlSpeedLimit
	}
	if t.TrawlDragBoost == 0 {
		t.TrawlDragBoost = def.TrawlDragBoost
	}
	if t.RespawnPerSecond == 0 {
		t.RespawnPerSecond = def.RespawnPerSecond
	}
	if t.HarborRadius == 0 {
		t.HarborRadius = def.HarborRadius
	}
	if t.DockSpeedLimit == 0 {
		t.DockSpeedLimit = def.DockSpeedLimit
	}
	if t.TrimStepRadians == 0 {
		t.TrimStepRadians = def.TrimStepRadians
	}
	if t.RudderStep == 0 {
		t.RudderStep = def.RudderStep
	}
	return t
}
