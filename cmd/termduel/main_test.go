package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	return screen
}

func TestPumpEventsDelivers(t *testing.T) {
	screen := newScreen(t)
	done := make(chan struct{})
	events, stopped := pumpEvents(screen, done, 1)

	require.NoError(t, screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
	select {
	case ev := <-events:
		key, ok := ev.(*tcell.EventKey)
		require.True(t, ok)
		assert.Equal(t, 'x', key.Rune())
	case <-time.After(2 * time.Second):
		t.Fatal("event not delivered")
	}

	close(done)
	screen.Fini()
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("pump did not stop after Fini")
	}
}

// Никто не читает канал: горутина не должна зависнуть на отправке
func TestPumpEventsStopsWhenReaderGone(t *testing.T) {
	screen := newScreen(t)
	done := make(chan struct{})
	_, stopped := pumpEvents(screen, done, 0)

	for i := 0; i < 3; i++ {
		require.NoError(t, screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone)))
	}
	close(done)
	screen.Fini()

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("pump blocked on send after reader returned")
	}
}
