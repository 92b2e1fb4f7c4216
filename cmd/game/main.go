// cmd/game/main.go
package main

import (
	"flag"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"golang.org/x/image/font/basicfont"

	"tank-duel/internal/assets"
	"tank-duel/internal/audio"
	"tank-duel/internal/config"
	"tank-duel/internal/input/ebitenin"
	"tank-duel/internal/logging"
	"tank-duel/internal/state"
	"tank-duel/internal/telemetry"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
	maxDeltaTime   float64
	width, height  int
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > a.maxDeltaTime {
		deltaTime = a.maxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	if a.stateMachine.Done() {
		return ebiten.Termination
	}
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	// --- Флаги командной строки ---
	configDir := flag.String("config", ".", "Directory containing tank-duel.json")
	spritePath := flag.String("sprites", "assets/sprites/tank.json", "Sprite sheet definition file")
	devMode := flag.Bool("dev", false, "Start directly in the duel, skipping the menu")
	flag.Parse()

	settings, err := config.Load(*configDir)
	if err != nil {
		boot := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		boot.Fatal().Err(err).Str("dir", *configDir).Msg("Failed to load settings")
	}

	log, closeLog, err := logging.Setup(settings.Log, os.Stderr)
	if err != nil {
		boot := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		boot.Fatal().Err(err).Msg("Failed to set up logging")
	}
	defer closeLog()

	if addr := settings.Debug.PprofAddr; addr != "" {
		go func() {
			log.Info().Str("addr", addr).Msg("pprof listening")
			if err := http.ListenAndServe(addr, nil); err != nil {
				log.Error().Err(err).Msg("pprof server stopped")
			}
		}()
	}

	// --- Источник ввода ---
	src, err := ebitenin.NewSource(settings.Input)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid input bindings")
	}

	// --- Звук и метрики ---
	sound := audio.NewSoundManager(settings.Audio, log)
	if err := sound.Initialize(); err != nil {
		log.Warn().Err(err).Msg("Audio unavailable, continuing without sound")
	}
	defer sound.Cleanup()

	metrics, err := telemetry.NewMetrics(telemetry.Meter())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create metrics")
	}

	svc := &state.Services{
		Settings:  settings,
		Log:       log,
		Input:     src,
		Sheet:     assets.LoadSpriteSheet(*spritePath, log),
		Face:      basicfont.Face7x13,
		Listeners: []state.Listener{sound, metrics},
	}

	// --- Выбор начального состояния ---
	sm := state.NewStateMachine()
	if *devMode || !settings.Window.StartFromMenu {
		sm.SetState(state.NewGameState(sm, svc))
	} else {
		sm.SetState(state.NewMenuState(sm, svc))
	}

	scale := settings.Window.Scale
	app := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
		maxDeltaTime:   settings.Physics.MaxDeltaTime,
		width:          config.GameWidth * scale,
		height:         config.GameHeight * scale,
	}
	ebiten.SetWindowSize(app.width, app.height)
	ebiten.SetWindowTitle(settings.Window.Title)
	if err := ebiten.RunGame(app); err != nil {
		log.Error().Err(err).Msg("Game loop failed")
		return
	}
	log.Info().Msg("Bye")
}
