package recorder

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Voyage is one recorded run of the simulation.
type Voyage struct {
	gorm.Model
	ScenarioID   string    `json:"scenarioId" gorm:"size:64;index:idx_voyage_scenario"`
	ScenarioName string    `json:"scenarioName" gorm:"size:127"`
	Seed         int64     `json:"seed"`
	StartedAt    time.Time `json:"startedAt" gorm:"NOT NULL"`
	EndedAt      time.Time `json:"endedAt"`
	Ticks        uint64    `json:"ticks"`
	FinalFunds   int64     `json:"finalFunds"`
	CatchCount   int64     `json:"catchCount"`
	Capsizes     int64     `json:"capsizes"`

	Samples []TickSample   `gorm:"foreignkey:VoyageID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Events  []VoyageEvent  `gorm:"foreignkey:VoyageID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Tracks  []TrackSegment `gorm:"foreignkey:VoyageID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// TickSample is one downsampled telemetry frame.
type TickSample struct {
	ID        uint    `gorm:"primarykey"`
	VoyageID  uint    `json:"voyageId" gorm:"index:idx_sample_voyage"`
	Tick      uint64  `json:"tick"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Heading   float64 `json:"heading"`
	Speed     float64 `json:"speed"`
	Heel      float64 `json:"heel"`
	WindSpeed float64 `json:"windSpeed"`
	WindAngle float64 `json:"windAngle"`
	CargoKg   float64 `json:"cargoKg"`
	DepthM    float64 `json:"depthM"`
	Funds     int64   `json:"funds"`
}

// VoyageEvent is a catch, sale, upgrade, capsize or refusal.
type VoyageEvent struct {
	ID         uint           `gorm:"primarykey"`
	VoyageID   uint           `json:"voyageId" gorm:"index:idx_event_voyage"`
	Tick       uint64         `json:"tick"`
	Kind       string         `json:"kind" gorm:"size:32;index:idx_event_kind"`
	Message    string         `json:"message" gorm:"size:255"`
	Attributes datatypes.JSON `json:"attributes"`
}

// TrackSegment is an LZ4-compressed polyline of vessel positions.
type TrackSegment struct {
	ID        uint   `gorm:"primarykey"`
	VoyageID  uint   `json:"voyageId" gorm:"index:idx_track_voyage"`
	StartTick uint64 `json:"startTick"`
	EndTick   uint64 `json:"endTick"`
	Points    int    `json:"points"`
	Polyline  []byte `json:"-"`
}

// DatabaseModels lists everything AutoMigrate manages.
var DatabaseModels = []any{
	&Voyage{},
	&TickSample{},
	&VoyageEvent{},
	&TrackSegment{},
}
