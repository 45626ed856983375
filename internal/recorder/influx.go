package recorder

import (
	"context"
	"errors"
	"fmt"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	influxdb2_api "github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/rs/zerolog"

	"github.com/appengine-ltd/sail-it/internal/config"
)

// InfluxSink streams tick samples to InfluxDB through the async write
// API. Entirely optional; the recorder skips a nil sink.
type InfluxSink struct {
	client influxdb2.Client
	writer influxdb2_api.WriteAPI
	logger zerolog.Logger
}

// NewInfluxSink connects and verifies the endpoint. It returns an error
// when export is disabled or the server is unreachable; callers treat
// both as "run without telemetry".
func NewInfluxSink(ctx context.Context, cfg config.InfluxConfig, log zerolog.Logger) (*InfluxSink, error) {
	if !cfg.Enabled {
		return nil, errors.New("influx export disabled")
	}

	client := influxdb2.NewClientWithOptions(
		fmt.Sprintf("%s://%s:%s", cfg.Protocol, cfg.Host, cfg.Port),
		cfg.Token,
		influxdb2.DefaultOptions().
			SetBatchSize(500).
			SetFlushInterval(1000),
	)

	running, err := client.Ping(ctx)
	if err != nil || !running {
		client.Close()
		return nil, fmt.Errorf("influx endpoint not reachable: %w", err)
	}

	sink := &InfluxSink{
		client: client,
		writer: client.WriteAPI(cfg.Org, cfg.Bucket),
		logger: log,
	}

	errorsCh := sink.writer.Errors()
	go func() {
		for writeErr := range errorsCh {
			sink.logger.Error().Err(writeErr).Msg("error sending tick sample to influx")
		}
	}()

	log.Info().Str("bucket", cfg.Bucket).Msg("influx telemetry export enabled")
	return sink, nil
}

// WriteSample queues one tick sample for export.
func (s *InfluxSink) WriteSample(scenarioID string, voyageID uint, sample TickSample) {
	point := influxdb2.NewPoint(
		"tick_sample",
		map[string]string{
			"scenario": scenarioID,
			"voyage":   fmt.Sprintf("%d", voyageID),
		},
		map[string]any{
			"x":          sample.X,
			"y":          sample.Y,
			"heading":    sample.Heading,
			"speed":      sample.Speed,
			"heel":       sample.Heel,
			"wind_speed": sample.WindSpeed,
			"wind_angle": sample.WindAngle,
			"cargo_kg":   sample.CargoKg,
			"depth_m":    sample.DepthM,
			"funds":      sample.Funds,
		},
		time.Now(),
	)
	s.writer.WritePoint(point)
}

// Close flushes pending points and shuts the client down.
func (s *InfluxSink) Close() {
	s.writer.Flush()
	s.client.Close()
}
