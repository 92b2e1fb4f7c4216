package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tank-duel/internal/component"
	"tank-duel/internal/config"
)

func TestTurnIndicatorPulse(t *testing.T) {
	i := NewTurnIndicator(10, 10, 4, nil)
	assert.InDelta(t, 1.0, i.PulseScale(), 1e-9)

	i.Update(component.BulletInFlight, 0.016)
	assert.InDelta(t, 1.3, i.PulseScale(), 1e-9)

	i.Update(component.BulletInFlight, 1.0)
	assert.Less(t, i.PulseScale(), 1.01)
}

func TestTurnColorAndLabel(t *testing.T) {
	assert.Equal(t, config.PlayerTurnColor, TurnColor(component.PlayerTurn))
	assert.Equal(t, config.AITurnColor, TurnColor(component.AITurn))
	assert.Equal(t, config.BulletInFlightColor, TurnColor(component.BulletInFlight))

	labels := map[string]bool{}
	for _, s := range []component.TurnState{component.PlayerTurn, component.AITurn, component.BulletInFlight} {
		labels[TurnLabel(s)] = true
	}
	assert.Len(t, labels, 3)
}
