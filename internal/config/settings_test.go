package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	s, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, Default(), s)
	assert.Equal(t, -9.81, s.Physics.Gravity)
	assert.Equal(t, 5.0, s.Physics.GroundHeight)
	assert.Equal(t, 5.0, s.Physics.MuzzleOffset)
	assert.Equal(t, 10.0, s.Physics.MuzzleSpeed)
	assert.Equal(t, DespawnNextFire, s.Bullets.Despawn)
	assert.False(t, s.Turn.ConfirmSkipsFlight)
	assert.Equal(t, "Space", s.Input.Shoot)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := `{
		"physics": { "gravity": -1.62, "muzzleSpeed": 25 },
		"turn": { "confirmSkipsFlight": true },
		"bullets": { "despawn": "retain" },
		"log": { "level": "debug" }
	}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tank-duel.json"), []byte(cfg), 0644))

	s, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, -1.62, s.Physics.Gravity)
	assert.Equal(t, 25.0, s.Physics.MuzzleSpeed)
	assert.Equal(t, 5.0, s.Physics.MuzzleOffset, "unset keys keep defaults")
	assert.True(t, s.Turn.ConfirmSkipsFlight)
	assert.Equal(t, DespawnRetain, s.Bullets.Despawn)
	assert.Equal(t, "debug", s.Log.Level)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("TANKDUEL_PHYSICS_GRAVITY", "-20")
	t.Setenv("TANKDUEL_AUDIO_ENABLED", "false")

	s, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, -20.0, s.Physics.Gravity)
	assert.False(t, s.Audio.Enabled)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tank-duel.json"), []byte(`{"physics":`), 0644))

	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoad_UnknownDespawnPolicy(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tank-duel.json"), []byte(`{"bullets":{"despawn":"explode"}}`), 0644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "explode")
}

func TestValidate_RejectsBadPhysics(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *Settings)
	}{
		{"zero gravity", func(s *Settings) { s.Physics.Gravity = 0 }},
		{"upward gravity", func(s *Settings) { s.Physics.Gravity = 9.81 }},
		{"NaN gravity", func(s *Settings) { s.Physics.Gravity = math.NaN() }},
		{"infinite muzzle speed", func(s *Settings) { s.Physics.MuzzleSpeed = math.Inf(1) }},
		{"NaN muzzle offset", func(s *Settings) { s.Physics.MuzzleOffset = math.NaN() }},
		{"infinite ground", func(s *Settings) { s.Physics.GroundHeight = math.Inf(-1) }},
		{"negative muzzle speed", func(s *Settings) { s.Physics.MuzzleSpeed = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			tt.mutate(&s)
			assert.Error(t, s.Validate())
		})
	}
}

func TestLoad_RejectsZeroGravityFromEnv(t *testing.T) {
	t.Setenv("TANKDUEL_PHYSICS_GRAVITY", "0")

	_, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gravity")
}

func TestValidate_DefaultsPass(t *testing.T) {
	assert.NoError(t, Default().Validate())
}
