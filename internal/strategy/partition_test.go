package strategy

import (
	"testing"
	"time"

	"gridtrade/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func barAt(t time.Time, open, close float64) dto.Bar {
	return dto.Bar{Timestamp: t, Open: open, High: open, Low: close, Close: close, Volume: 100}
}

func TestPartitionByWeekday(t *testing.T) {
	// 2024-01-09 and 2024-01-16 are Tuesdays, 2024-01-10 a Wednesday.
	tue1 := time.Date(2024, 1, 9, 9, 30, 0, 0, time.UTC)
	wed := time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC)
	tue2 := time.Date(2024, 1, 16, 9, 30, 0, 0, time.UTC)

	bars := []dto.Bar{
		barAt(tue1, 10, 11),
		barAt(tue1.Add(5*time.Minute), 11, 12),
		barAt(wed, 20, 21),
		barAt(tue2, 30, 31),
	}

	groups := PartitionByWeekday(bars, time.Tuesday)

	require.Equal(t, 2, groups.UniqueDays())
	assert.Equal(t, []string{"2024-01-09", "2024-01-16"}, groups.Dates)
	assert.Len(t, groups.Bars["2024-01-09"], 2)
	assert.Len(t, groups.Bars["2024-01-16"], 1)
}

func TestPartitionByWeekdaySortsInterleavedDates(t *testing.T) {
	// Concatenated fetches can deliver a later date before an earlier one.
	tueLate := time.Date(2024, 1, 16, 10, 0, 0, 0, time.UTC)
	tueEarly := time.Date(2024, 1, 9, 10, 0, 0, 0, time.UTC)

	groups := PartitionByWeekday([]dto.Bar{
		barAt(tueLate, 1, 1),
		barAt(tueEarly, 2, 2),
	}, time.Tuesday)

	assert.Equal(t, []string{"2024-01-09", "2024-01-16"}, groups.Dates)
}

func TestPartitionByWeekdayNoMatches(t *testing.T) {
	wed := time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC)

	groups := PartitionByWeekday([]dto.Bar{barAt(wed, 10, 10)}, time.Friday)

	assert.Equal(t, 0, groups.UniqueDays())
	assert.Empty(t, groups.Bars)
}
