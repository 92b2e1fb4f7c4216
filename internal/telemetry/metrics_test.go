package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"

	"tank-duel/internal/component"
	"tank-duel/internal/event"
)

type countingCounter struct {
	noop.Int64Counter
	total int64
	attrs int
}

func (c *countingCounter) Add(_ context.Context, incr int64, opts ...metric.AddOption) {
	c.total += incr
	c.attrs += len(opts)
}

func newCounted() (*Metrics, *countingCounter, *countingCounter, *countingCounter) {
	shots, ground, turns := &countingCounter{}, &countingCounter{}, &countingCounter{}
	return &Metrics{shots: shots, groundings: ground, turns: turns}, shots, ground, turns
}

func TestNewMetricsNoop(t *testing.T) {
	m, err := NewMetrics(noop.NewMeterProvider().Meter("test"))
	require.NoError(t, err)
	require.NotNil(t, m)

	// no-op счётчики не должны паниковать
	m.OnEvent(event.Event{Type: event.ShotFired})
	m.OnEvent(event.Event{Type: event.TurnChanged, Data: event.TurnChangedData{}})
}

func TestMeterFromGlobalProvider(t *testing.T) {
	_, err := NewMetrics(Meter())
	require.NoError(t, err)
}

func TestOnEventCounts(t *testing.T) {
	m, shots, ground, turns := newCounted()
	d := event.NewDispatcher()
	m.Attach(d)

	d.Dispatch(event.Event{Type: event.ShotFired, Data: event.ShotFiredData{}})
	d.Dispatch(event.Event{Type: event.ShotFired, Data: event.ShotFiredData{}})
	d.Dispatch(event.Event{Type: event.BulletGrounded, Data: event.BulletGroundedData{}})
	d.Dispatch(event.Event{Type: event.TurnChanged, Data: event.TurnChangedData{
		From: component.PlayerTurn, To: component.BulletInFlight,
	}})

	assert.Equal(t, int64(2), shots.total)
	assert.Equal(t, int64(1), ground.total)
	assert.Equal(t, int64(1), turns.total)
	assert.Equal(t, 1, turns.attrs)
}

func TestTurnChangedWithoutPayloadIgnored(t *testing.T) {
	m, _, _, turns := newCounted()
	m.OnEvent(event.Event{Type: event.TurnChanged})
	assert.Equal(t, int64(0), turns.total)
}

func TestDetach(t *testing.T) {
	m, shots, _, _ := newCounted()
	d := event.NewDispatcher()
	m.Attach(d)
	m.Detach(d)

	d.Dispatch(event.Event{Type: event.ShotFired})
	assert.Equal(t, int64(0), shots.total)
}
