package recorder

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/appengine-ltd/sail-it/internal/recorder"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}
