// internal/telemetry/metrics.go
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"tank-duel/internal/event"
)

const instrumentationName = "tank-duel/internal/telemetry"

// Meter — метр из глобального провайдера OTel (no-op, если провайдер не настроен)
func Meter() metric.Meter {
	return otel.Meter(instrumentationName)
}

// Metrics — счётчики матча, обновляются по событиям
type Metrics struct {
	shots      metric.Int64Counter
	groundings metric.Int64Counter
	turns      metric.Int64Counter
}

// NewMetrics — создаёт счётчики на переданном метре
func NewMetrics(m metric.Meter) (*Metrics, error) {
	var (
		mt  Metrics
		err error
	)

	mt.shots, err = m.Int64Counter(
		"duel.shots.fired",
		metric.WithDescription("Total shots fired"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating shots counter: %w", err)
	}

	mt.groundings, err = m.Int64Counter(
		"duel.bullets.grounded",
		metric.WithDescription("Total bullets that reached the ground"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating groundings counter: %w", err)
	}

	mt.turns, err = m.Int64Counter(
		"duel.turns.changed",
		metric.WithDescription("Total turn state transitions"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating turns counter: %w", err)
	}

	return &mt, nil
}

// Attach — подписывает счётчики на диспетчер
func (m *Metrics) Attach(d *event.Dispatcher) {
	d.SubscribeAll(m, event.ShotFired, event.BulletGrounded, event.TurnChanged)
}

// Detach — отписывает счётчики
func (m *Metrics) Detach(d *event.Dispatcher) {
	for _, t := range []event.EventType{event.ShotFired, event.BulletGrounded, event.TurnChanged} {
		d.Unsubscribe(t, m)
	}
}

// OnEvent — реализация event.Listener
func (m *Metrics) OnEvent(e event.Event) {
	ctx := context.Background()
	switch e.Type {
	case event.ShotFired:
		m.shots.Add(ctx, 1)
	case event.BulletGrounded:
		m.groundings.Add(ctx, 1)
	case event.TurnChanged:
		data, ok := e.Data.(event.TurnChangedData)
		if !ok {
			return
		}
		m.turns.Add(ctx, 1, metric.WithAttributes(
			attribute.String("from", data.From.String()),
			attribute.String("to", data.To.String()),
		))
	}
}
