// cmd/termduel/main.go
package main

import (
	"flag"
	"io"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"tank-duel/internal/app"
	"tank-duel/internal/audio"
	"tank-duel/internal/config"
	"tank-duel/internal/logging"
	"tank-duel/internal/telemetry"
	"tank-duel/internal/termview"
)

func main() {
	configDir := flag.String("config", ".", "Directory containing tank-duel.json")
	flag.Parse()

	boot := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	settings, err := config.Load(*configDir)
	if err != nil {
		boot.Fatal().Err(err).Str("dir", *configDir).Msg("Failed to load settings")
	}

	// Экран занят tcell, поэтому в консоль не пишем: только файл и Graylog
	log, closeLog, err := logging.Setup(settings.Log, io.Discard)
	if err != nil {
		boot.Fatal().Err(err).Msg("Failed to set up logging")
	}
	defer closeLog()

	screen, err := tcell.NewScreen()
	if err != nil {
		boot.Fatal().Err(err).Msg("Failed to open terminal")
	}
	if err := screen.Init(); err != nil {
		boot.Fatal().Err(err).Msg("Failed to initialise terminal")
	}
	defer screen.Fini()
	screen.HideCursor()

	g := app.NewGame(settings, log)

	sound := audio.NewSoundManager(settings.Audio, log)
	if err := sound.Initialize(); err != nil {
		log.Warn().Err(err).Msg("Audio unavailable, continuing without sound")
	}
	defer sound.Cleanup()
	sound.Attach(g.EventDispatcher)

	metrics, err := telemetry.NewMetrics(telemetry.Meter())
	if err != nil {
		log.Error().Err(err).Msg("Failed to create metrics")
	} else {
		metrics.Attach(g.EventDispatcher)
	}

	run(screen, g, termview.NewKeyState(nil), settings)
	log.Info().Uint64("ticks", g.Snapshot().Tick).Msg("Bye")
}

// pumpEvents читает события экрана в канал. Горутина завершается, когда экран
// закрыт или закрыт done; stopped закрывается при её выходе.
func pumpEvents(screen tcell.Screen, done <-chan struct{}, buffer int) (events <-chan tcell.Event, stopped <-chan struct{}) {
	out := make(chan tcell.Event, buffer)
	exit := make(chan struct{})
	go func() {
		defer close(exit)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return // экран закрыт
			}
			select {
			case out <- ev:
			case <-done:
				return
			}
		}
	}()
	return out, exit
}

func run(screen tcell.Screen, g *app.Game, keys *termview.KeyState, settings config.Settings) {
	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	eventChan, _ := pumpEvents(screen, done, 100)

	paused := false
	last := time.Now()
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				keys.OnKey(ev)
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-ticker.C:
			deltaTime := now.Sub(last).Seconds()
			last = now

			frame := keys.Poll()
			if frame.Quit {
				return
			}
			if frame.Pause {
				paused = !paused
			}
			if !paused {
				g.Tick(frame, deltaTime)
			}

			termview.Draw(screen, g.Snapshot(), settings.Physics.GroundHeight)
			screen.Show()
		}
	}
}
