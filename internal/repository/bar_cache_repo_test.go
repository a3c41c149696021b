package repository

import (
	"context"
	"testing"
	"time"

	"gridtrade/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBarCacheRepositorySaveLoad(t *testing.T) {
	repo := NewBarCacheRepository(t.TempDir(), time.UTC)
	ctx := context.Background()

	bars := []dto.Bar{
		{
			Timestamp: time.Date(2024, 1, 9, 9, 30, 0, 0, time.UTC),
			Open:      187.15, High: 188.02, Low: 186.9, Close: 187.6, Volume: 120345,
		},
		{
			Timestamp: time.Date(2024, 1, 9, 9, 35, 0, 0, time.UTC),
			Open:      187.6, High: 187.8, Low: 187.1, Close: 187.3, Volume: 98000,
		},
	}

	assert.False(t, repo.Exists("aapl"))
	require.NoError(t, repo.Save(ctx, "aapl", bars))
	assert.True(t, repo.Exists("aapl"))
	// Lookups are case-insensitive on the ticker.
	assert.True(t, repo.Exists("AAPL"))

	loaded, err := repo.Load(ctx, "AAPL")
	require.NoError(t, err)
	assert.Equal(t, bars, loaded)
}

func TestBarCacheRepositoryMissingTicker(t *testing.T) {
	repo := NewBarCacheRepository(t.TempDir(), time.UTC)

	_, err := repo.Load(context.Background(), "MSFT")
	assert.Error(t, err)
}
