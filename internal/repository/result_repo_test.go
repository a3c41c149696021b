package repository

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"gridtrade/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultRepositoryRoundTrip(t *testing.T) {
	repo := NewResultRepository(t.TempDir())
	ctx := context.Background()

	record := dto.WeekdayRecord{
		Weekday:  time.Tuesday,
		BuyTime:  dto.NewTimeOfDay(9, 45),
		SellTime: dto.NewTimeOfDay(10, 30),
	}

	require.NoError(t, repo.SaveBestPair(ctx, record))

	loaded, err := repo.LoadBestPair(ctx, time.Tuesday)
	require.NoError(t, err)
	assert.Equal(t, record, loaded)
}

func TestResultRepositoryFileFormat(t *testing.T) {
	dir := t.TempDir()
	repo := NewResultRepository(dir)

	record := dto.WeekdayRecord{
		Weekday:  time.Friday,
		BuyTime:  dto.NewTimeOfDay(9, 30),
		SellTime: dto.NewTimeOfDay(15, 55),
	}
	require.NoError(t, repo.SaveBestPair(context.Background(), record))

	data, err := os.ReadFile(filepath.Join(dir, "Friday.txt"))
	require.NoError(t, err)
	assert.Equal(t, "Friday,09:30,15:55", string(data))
}

func TestResultRepositoryOverwrites(t *testing.T) {
	repo := NewResultRepository(t.TempDir())
	ctx := context.Background()

	first := dto.WeekdayRecord{Weekday: time.Monday, BuyTime: dto.NewTimeOfDay(9, 30), SellTime: dto.NewTimeOfDay(10, 0)}
	second := dto.WeekdayRecord{Weekday: time.Monday, BuyTime: dto.NewTimeOfDay(11, 0), SellTime: dto.NewTimeOfDay(14, 30)}

	require.NoError(t, repo.SaveBestPair(ctx, first))
	require.NoError(t, repo.SaveBestPair(ctx, second))

	loaded, err := repo.LoadBestPair(ctx, time.Monday)
	require.NoError(t, err)
	assert.Equal(t, second, loaded)
}

func TestResultRepositoryMissingRecord(t *testing.T) {
	repo := NewResultRepository(t.TempDir())

	_, err := repo.LoadBestPair(context.Background(), time.Wednesday)
	assert.Error(t, err)
}
