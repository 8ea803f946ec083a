package config

import (
	"os"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.False(t, cfg.Matching.UnconditionalFallback)
	assert.Equal(t, "America/Sao_Paulo", cfg.Matching.TimeZone)
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.MQ.Enabled())
	assert.Equal(t, "ad.played", cfg.MQ.RoutingKey)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenTTL)

	loc, err := cfg.Matching.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/Sao_Paulo", loc.String())
}

func TestLoad_RequiresSecret(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		t.Setenv("AUTH_JWT_SECRET", "")
		_, err := Load()
		assert.ErrorContains(t, err, "AUTH_JWT_SECRET")
	})
	t.Run("unset", func(t *testing.T) {
		t.Setenv("AUTH_JWT_SECRET", "placeholder")
		require.NoError(t, os.Unsetenv("AUTH_JWT_SECRET"))
		_, err := Load()
		assert.ErrorContains(t, err, "AUTH_JWT_SECRET")
	})
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "secret")
	t.Setenv("MATCH_UNCONDITIONAL_FALLBACK", "true")
	t.Setenv("REDIS_ADDRESS", "localhost:6379")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Matching.UnconditionalFallback)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
}

func TestLoadClient(t *testing.T) {
	t.Setenv("RIDESIM_TOKEN", "tok")
	t.Setenv("RIDESIM_ROUTE", "-23.56,-46.65|-23.57,-46.66")
	t.Setenv("SESSION_FIRST_AD_DELAY", "1s")

	cfg, err := LoadClient()
	require.NoError(t, err)
	assert.Equal(t, []string{"-23.56,-46.65", "-23.57,-46.66"}, cfg.RideSim.Route)
	assert.Equal(t, time.Second, cfg.Session.FirstAdDelay)
	assert.Equal(t, 45*time.Second, cfg.Session.NextAdDelay)
	assert.InDelta(t, -23.5505, cfg.Session.FallbackLat, 1e-9)

	_, ok := cfg.MintAuth()
	assert.False(t, ok, "a configured token needs no signing key")
}

func TestLoadClient_MintsWithSecret(t *testing.T) {
	t.Setenv("RIDESIM_TOKEN", "")
	t.Setenv("AUTH_JWT_SECRET", "secret")

	cfg, err := LoadClient()
	require.NoError(t, err)
	mint, ok := cfg.MintAuth()
	require.True(t, ok)
	assert.Equal(t, "secret", mint.JWTSecret)
	assert.Equal(t, "movo-ads", mint.Issuer)
}

func TestLoadClient_RequiresCredentials(t *testing.T) {
	t.Setenv("RIDESIM_TOKEN", "")
	t.Setenv("AUTH_JWT_SECRET", "")
	_, err := LoadClient()
	assert.ErrorContains(t, err, "AUTH_JWT_SECRET")
}
