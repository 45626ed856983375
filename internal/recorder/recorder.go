package recorder

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"gorm.io/datatypes"

	"github.com/appengine-ltd/sail-it/internal/config"
	"github.com/appengine-ltd/sail-it/internal/game"
)

const rowFlushThreshold = 256

// Recorder persists voyage telemetry from world snapshots. It reads only
// snapshots, never the live world, so it can sit on any host loop.
type Recorder struct {
	mgr    *Manager
	sink   *InfluxSink
	logger zerolog.Logger

	voyage       Voyage
	scenarioID   string
	scenarioAttr attribute.KeyValue
	sampleEvery  uint64
	flushPoints  int

	samples    []TickSample
	events     []VoyageEvent
	track      []game.Vec2
	trackStart uint64
	lastTick   uint64
	catches    int64
	capsizes   int64

	ticksCounter   metric.Int64Counter
	catchCounter   metric.Int64Counter
	saleCounter    metric.Int64Counter
	capsizeCounter metric.Int64Counter
	refusalCounter metric.Int64Counter
}

// New prepares a recorder on an already-connected manager. sink may be nil.
func New(mgr *Manager, cfg config.RecorderConfig, sink *InfluxSink, log zerolog.Logger) (*Recorder, error) {
	if mgr == nil || !mgr.IsValid {
		return nil, fmt.Errorf("recorder needs a valid database manager")
	}

	sampleEvery := uint64(cfg.SampleEveryTicks)
	if sampleEvery == 0 {
		sampleEvery = uint64(game.TicksPerSecond)
	}
	flushPoints := cfg.TrackFlushPoints
	if flushPoints <= 0 {
		flushPoints = 512
	}

	r := &Recorder{
		mgr:         mgr,
		sink:        sink,
		logger:      log,
		sampleEvery: sampleEvery,
		flushPoints: flushPoints,
	}

	m := meter()
	var err error
	if r.ticksCounter, err = m.Int64Counter("voyage.ticks",
		metric.WithDescription("Total simulation ticks observed")); err != nil {
		return nil, fmt.Errorf("creating ticks counter: %w", err)
	}
	if r.catchCounter, err = m.Int64Counter("voyage.catches",
		metric.WithDescription("Total fish and junk hauled aboard")); err != nil {
		return nil, fmt.Errorf("creating catch counter: %w", err)
	}
	if r.saleCounter, err = m.Int64Counter("voyage.sales",
		metric.WithDescription("Total harbor sales settled")); err != nil {
		return nil, fmt.Errorf("creating sale counter: %w", err)
	}
	if r.capsizeCounter, err = m.Int64Counter("voyage.capsizes",
		metric.WithDescription("Total capsizes")); err != nil {
		return nil, fmt.Errorf("creating capsize counter: %w", err)
	}
	if r.refusalCounter, err = m.Int64Counter("voyage.refusals",
		metric.WithDescription("Total refused commands")); err != nil {
		return nil, fmt.Errorf("creating refusal counter: %w", err)
	}

	return r, nil
}

// Begin opens the voyage row. Call once before the first Observe.
func (r *Recorder) Begin(scenario game.Scenario, seed int64) error {
	r.voyage = Voyage{
		ScenarioID:   string(scenario.ID),
		ScenarioName: scenario.Name,
		Seed:         seed,
		StartedAt:    time.Now(),
	}
	if err := r.mgr.DB.Create(&r.voyage).Error; err != nil {
		return fmt.Errorf("creating voyage row: %w", err)
	}
	r.scenarioID = string(scenario.ID)
	r.scenarioAttr = attribute.String("scenario", r.scenarioID)
	r.logger.Info().Str("scenario", r.scenarioID).Uint("voyage", r.voyage.ID).Msg("voyage recording started")
	return nil
}

// Observe folds one snapshot into the voyage record.
func (r *Recorder) Observe(snap game.WorldSnapshot) {
	ctx := context.Background()
	r.lastTick = snap.Tick
	r.ticksCounter.Add(ctx, 1, metric.WithAttributes(r.scenarioAttr))

	for _, event := range snap.Events {
		switch event.Kind {
		case game.EventCatch:
			r.catches++
			r.catchCounter.Add(ctx, 1, metric.WithAttributes(r.scenarioAttr))
		case game.EventSold:
			r.saleCounter.Add(ctx, 1, metric.WithAttributes(r.scenarioAttr))
		case game.EventCapsized:
			r.capsizes++
			r.capsizeCounter.Add(ctx, 1, metric.WithAttributes(r.scenarioAttr))
		case game.EventRefused:
			r.refusalCounter.Add(ctx, 1, metric.WithAttributes(r.scenarioAttr))
		}
		r.events = append(r.events, r.eventRow(snap.Tick, event))
	}

	if snap.Tick%r.sampleEvery == 0 {
		sample := r.sampleRow(snap)
		r.samples = append(r.samples, sample)
		if len(r.track) == 0 {
			r.trackStart = snap.Tick
		}
		r.track = append(r.track, snap.Vessel.Position)
		if r.sink != nil {
			r.sink.WriteSample(r.scenarioID, r.voyage.ID, sample)
		}
	}

	if len(r.track) >= r.flushPoints {
		r.flushTrack(snap.Tick)
	}
	if len(r.samples) >= rowFlushThreshold || len(r.events) >= rowFlushThreshold {
		r.flushRows()
	}
}

// Close flushes everything buffered and finalizes the voyage row.
func (r *Recorder) Close(final game.WorldSnapshot) error {
	r.flushTrack(final.Tick)
	r.flushRows()

	updates := map[string]any{
		"ended_at":    time.Now(),
		"ticks":       r.lastTick,
		"final_funds": final.Funds,
		"catch_count": r.catches,
		"capsizes":    r.capsizes,
	}
	if err := r.mgr.DB.Model(&Voyage{}).Where("id = ?", r.voyage.ID).Updates(updates).Error; err != nil {
		return fmt.Errorf("finalizing voyage row: %w", err)
	}

	if r.sink != nil {
		r.sink.Close()
	}
	r.logger.Info().Uint64("ticks", r.lastTick).Int64("catches", r.catches).Msg("voyage recording closed")
	return nil
}

func (r *Recorder) sampleRow(snap game.WorldSnapshot) TickSample {
	return TickSample{
		VoyageID:  r.voyage.ID,
		Tick:      snap.Tick,
		X:         snap.Vessel.Position.X,
		Y:         snap.Vessel.Position.Y,
		Heading:   snap.Vessel.HeadingRadians,
		Speed:     snap.Vessel.Velocity.Magnitude(),
		Heel:      snap.Vessel.HeelRadians,
		WindSpeed: snap.Wind.Speed,
		WindAngle: snap.Wind.AngleRadians,
		CargoKg:   snap.CargoWeightKg,
		DepthM:    snap.DepthUnderKeelM,
		Funds:     snap.Funds,
	}
}

func (r *Recorder) eventRow(tick uint64, event game.TickEvent) VoyageEvent {
	attrs, err := json.Marshal(map[string]any{
		"command": event.Command,
		"species": event.Species,
		"amount":  event.Amount,
	})
	if err != nil {
		attrs = []byte(`{}`)
	}
	return VoyageEvent{
		VoyageID:   r.voyage.ID,
		Tick:       tick,
		Kind:       string(event.Kind),
		Message:    event.Message,
		Attributes: datatypes.JSON(attrs),
	}
}

func (r *Recorder) flushTrack(endTick uint64) {
	if len(r.track) == 0 {
		return
	}
	compressed, err := encodeTrack(r.track)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to compress track segment")
		r.track = r.track[:0]
		return
	}
	segment := TrackSegment{
		VoyageID:  r.voyage.ID,
		StartTick: r.trackStart,
		EndTick:   endTick,
		Points:    len(r.track),
		Polyline:  compressed,
	}
	if err := r.mgr.DB.Create(&segment).Error; err != nil {
		r.logger.Error().Err(err).Msg("failed to store track segment")
	}
	r.track = r.track[:0]
}

func (r *Recorder) flushRows() {
	if len(r.samples) > 0 {
		if err := r.mgr.DB.Create(&r.samples).Error; err != nil {
			r.logger.Error().Err(err).Msg("failed to store tick samples")
		}
		r.samples = r.samples[:0]
	}
	if len(r.events) > 0 {
		if err := r.mgr.DB.Create(&r.events).Error; err != nil {
			r.logger.Error().Err(err).Msg("failed to store voyage events")
		}
		r.events = r.events[:0]
	}
}
