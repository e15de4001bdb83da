package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, 8080, cfg.ServerPort)
	require.Equal(t, ":8080", cfg.Addr())
	require.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	require.Equal(t, "rangilalls", cfg.MongoDB)
	require.Equal(t, "localhost:6379", cfg.RedisAddr)
	require.Equal(t, 6*time.Minute, cfg.ExtensionWindow)
	require.Equal(t, 17*time.Hour, cfg.DefaultEndTime)
	require.Equal(t, time.UTC, cfg.Timezone)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("EXTENSION_WINDOW", "10m")
	t.Setenv("AUCTION_END_TIME", "18:30")
	t.Setenv("AUCTION_TIMEZONE", "Asia/Kolkata")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, 9090, cfg.ServerPort)
	require.Equal(t, 10*time.Minute, cfg.ExtensionWindow)
	require.Equal(t, 18*time.Hour+30*time.Minute, cfg.DefaultEndTime)
	require.Equal(t, "Asia/Kolkata", cfg.Timezone.String())
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Run("bad_extension_window", func(t *testing.T) {
		t.Setenv("EXTENSION_WINDOW", "soon")
		_, err := Load()
		require.ErrorContains(t, err, "EXTENSION_WINDOW")
	})

	t.Run("bad_end_time", func(t *testing.T) {
		t.Setenv("AUCTION_END_TIME", "6pm")
		_, err := Load()
		require.ErrorContains(t, err, "AUCTION_END_TIME")
	})

	t.Run("bad_int_falls_back", func(t *testing.T) {
		t.Setenv("PORT", "not-a-number")
		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, 8080, cfg.ServerPort)
	})
}
