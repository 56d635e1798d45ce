package engine

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/lixenwraith/atb-fighter/engine"

func meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// driverMetrics are the frame driver's counters
// Uses the global OTel meter; cmd/atb-fighter installs the SDK provider when metrics are enabled
type driverMetrics struct {
	frames   metric.Int64Counter
	resolved metric.Int64Counter
	granted  metric.Int64Counter
	ready    metric.Int64Gauge
}

func newDriverMetrics() (*driverMetrics, error) {
	m := meter()
	dm := &driverMetrics{}

	var err error
	dm.frames, err = m.Int64Counter(
		"atb.frames",
		metric.WithDescription("Total frames stepped"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating frames counter: %w", err)
	}

	dm.resolved, err = m.Int64Counter(
		"atb.actions.resolved",
		metric.WithDescription("Total actions resolved through the selection cascade"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resolved counter: %w", err)
	}

	dm.granted, err = m.Int64Counter(
		"atb.commands.granted",
		metric.WithDescription("Total commands granted to player combatants"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating granted counter: %w", err)
	}

	dm.ready, err = m.Int64Gauge(
		"atb.combatants.ready",
		metric.WithDescription("Combatants whose readiness clock is full"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating ready gauge: %w", err)
	}

	return dm, nil
}

func (dm *driverMetrics) frame(ctx context.Context) {
	dm.frames.Add(ctx, 1)
}

func (dm *driverMetrics) readyCount(ctx context.Context, n int) {
	dm.ready.Record(ctx, int64(n))
}

func (dm *driverMetrics) resolve(ctx context.Context, command string) {
	dm.resolved.Add(ctx, 1, metric.WithAttributes(attribute.String("command", command)))
}

func (dm *driverMetrics) grant(ctx context.Context, command string) {
	dm.granted.Add(ctx, 1, metric.WithAttributes(attribute.String("command", command)))
}
