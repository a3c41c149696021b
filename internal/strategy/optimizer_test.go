package strategy

import (
	"context"
	"testing"
	"time"

	"gridtrade/internal/dto"
	"gridtrade/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type searchEvent struct {
	kind  string
	total float64
}

type recordingObserver struct {
	events []searchEvent
}

func (o *recordingObserver) OnNewBest(record dto.BestWorstRecord, _ int) {
	o.events = append(o.events, searchEvent{kind: "best", total: record.Best.Total})
}

func (o *recordingObserver) OnNewWorst(record dto.BestWorstRecord, _ int) {
	o.events = append(o.events, searchEvent{kind: "worst", total: record.Worst.Total})
}

// dayFixture builds one trading day with a bar at each clock time.
func dayFixture(t *testing.T, day time.Time, quotes map[string][2]float64) []dto.Bar {
	t.Helper()

	var bars []dto.Bar
	for _, clock := range sortedClocks(quotes) {
		tod, err := dto.ParseTimeOfDay(clock)
		require.NoError(t, err)
		q := quotes[clock]
		ts := time.Date(day.Year(), day.Month(), day.Day(), tod.Hour(), tod.Minute(), 0, 0, time.UTC)
		bars = append(bars, dto.Bar{Timestamp: ts, Open: q[0], High: q[0], Low: q[1], Close: q[1], Volume: 100})
	}
	return bars
}

func sortedClocks(quotes map[string][2]float64) []string {
	clocks := make([]string, 0, len(quotes))
	for c := range quotes {
		clocks = append(clocks, c)
	}
	for i := 0; i < len(clocks); i++ {
		for j := i + 1; j < len(clocks); j++ {
			if clocks[j] < clocks[i] {
				clocks[i], clocks[j] = clocks[j], clocks[i]
			}
		}
	}
	return clocks
}

func TestSearchFindsBestPairAcrossTickers(t *testing.T) {
	tuesday := time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)

	// Hand-computed fixture, allocation 500 per ticker, fee 0:
	//   pair 09:30->09:35: A +100 (50 shares, 10->12), B -25 (25 shares, 20->19), total 75
	//   pair 09:30->09:40: A +50, B +125, total 175  <- best
	//   pair 09:35->09:40: A +50, B +125, total 175 (ties, strict > keeps first)
	barsA := dayFixture(t, tuesday, map[string][2]float64{
		"09:30": {10, 10},
		"09:35": {10, 12},
		"09:40": {12, 11},
	})
	barsB := dayFixture(t, tuesday, map[string][2]float64{
		"09:30": {20, 20},
		"09:35": {20, 19},
		"09:40": {19, 25},
	})

	input := SearchInput{
		Tickers: []string{"AAA", "BBB"},
		DayGroups: map[string]DayGroups{
			"AAA": PartitionByWeekday(barsA, time.Tuesday),
			"BBB": PartitionByWeekday(barsB, time.Tuesday),
		},
		BuyCandidates:          []dto.TimeOfDay{dto.NewTimeOfDay(9, 30), dto.NewTimeOfDay(9, 35)},
		SellCandidates:         []dto.TimeOfDay{dto.NewTimeOfDay(9, 35), dto.NewTimeOfDay(9, 40)},
		AllocatedCashPerTicker: 500,
		FeePerTrade:            0,
	}

	optimizer := NewOptimizer(logger.NewNop(), nil)
	record, uniqueDays := optimizer.Search(context.Background(), input)

	assert.Equal(t, 1, uniqueDays)
	require.True(t, record.HasBest())
	assert.Equal(t, "09:30", record.Best.BuyTime.String())
	assert.Equal(t, "09:40", record.Best.SellTime.String())
	assert.InDelta(t, 175.0, record.Best.Total, 1e-9)

	// The worst slot holds a partial running sum seen mid-scan: after
	// AAA's +50 contribution of the 09:30->09:40 pair.
	require.True(t, record.HasWorst())
	assert.Equal(t, "09:30", record.Worst.BuyTime.String())
	assert.Equal(t, "09:40", record.Worst.SellTime.String())
	assert.InDelta(t, 50.0, record.Worst.Total, 1e-9)
}

func TestSearchBestWorstMutualExclusivity(t *testing.T) {
	tuesday := time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)

	// Single pair, single ticker, one day, one contribution of -49:
	// the value beats both sentinels at once but only the best side moves.
	bars := dayFixture(t, tuesday, map[string][2]float64{
		"09:30": {10, 10},
		"09:35": {10, 9.51},
	})

	observer := &recordingObserver{}
	optimizer := NewOptimizer(logger.NewNop(), observer)

	record, _ := optimizer.Search(context.Background(), SearchInput{
		Tickers:                []string{"AAA"},
		DayGroups:              map[string]DayGroups{"AAA": PartitionByWeekday(bars, time.Tuesday)},
		BuyCandidates:          []dto.TimeOfDay{dto.NewTimeOfDay(9, 30)},
		SellCandidates:         []dto.TimeOfDay{dto.NewTimeOfDay(9, 35)},
		AllocatedCashPerTicker: 1000,
		FeePerTrade:            0,
	})

	require.True(t, record.HasBest())
	assert.False(t, record.HasWorst(), "a value qualifying as both extremes must only update best")

	require.Len(t, observer.events, 1)
	assert.Equal(t, "best", observer.events[0].kind)
	assert.InDelta(t, -49.0, observer.events[0].total, 1e-6)
}

func TestSearchPartialSumUpdatesWithinOnePair(t *testing.T) {
	// Three Tuesdays for one ticker and one candidate pair. Per-day P/L is
	// +10, -20, +100, so the running totals are 10, -10, 90.
	days := []time.Time{
		time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 1, 23, 0, 0, 0, 0, time.UTC),
	}
	closes := []float64{11, 8, 20}

	var bars []dto.Bar
	for i, day := range days {
		bars = append(bars, dayFixture(t, day, map[string][2]float64{
			"09:30": {10, 10},
			"09:35": {10, closes[i]},
		})...)
	}

	observer := &recordingObserver{}
	optimizer := NewOptimizer(logger.NewNop(), observer)

	record, uniqueDays := optimizer.Search(context.Background(), SearchInput{
		Tickers:                []string{"AAA"},
		DayGroups:              map[string]DayGroups{"AAA": PartitionByWeekday(bars, time.Tuesday)},
		BuyCandidates:          []dto.TimeOfDay{dto.NewTimeOfDay(9, 30)},
		SellCandidates:         []dto.TimeOfDay{dto.NewTimeOfDay(9, 35)},
		AllocatedCashPerTicker: 100,
		FeePerTrade:            0,
	})

	assert.Equal(t, 3, uniqueDays)

	want := []searchEvent{
		{kind: "best", total: 10},
		{kind: "worst", total: -10},
		{kind: "best", total: 90},
	}
	require.Len(t, observer.events, len(want))
	for i, event := range want {
		assert.Equal(t, event.kind, observer.events[i].kind, "event %d", i)
		assert.InDelta(t, event.total, observer.events[i].total, 1e-9, "event %d", i)
	}

	assert.InDelta(t, 90.0, record.Best.Total, 1e-9)
	assert.InDelta(t, -10.0, record.Worst.Total, 1e-9)
}

func TestSearchUniqueDaysIsLastTickersCount(t *testing.T) {
	tue1 := time.Date(2024, 1, 9, 0, 0, 0, 0, time.UTC)
	tue2 := time.Date(2024, 1, 16, 0, 0, 0, 0, time.UTC)

	quotes := map[string][2]float64{"09:30": {10, 10}, "09:35": {10, 11}}
	barsA := append(dayFixture(t, tue1, quotes), dayFixture(t, tue2, quotes)...)
	barsB := dayFixture(t, tue1, quotes)

	optimizer := NewOptimizer(logger.NewNop(), nil)
	_, uniqueDays := optimizer.Search(context.Background(), SearchInput{
		Tickers: []string{"AAA", "BBB"},
		DayGroups: map[string]DayGroups{
			"AAA": PartitionByWeekday(barsA, time.Tuesday),
			"BBB": PartitionByWeekday(barsB, time.Tuesday),
		},
		BuyCandidates:          []dto.TimeOfDay{dto.NewTimeOfDay(9, 30)},
		SellCandidates:         []dto.TimeOfDay{dto.NewTimeOfDay(9, 35)},
		AllocatedCashPerTicker: 100,
		FeePerTrade:            0,
	})

	// Last-processed ticker wins, as documented.
	assert.Equal(t, 1, uniqueDays)
}

func TestSearchNoDataStillRecordsZeroBest(t *testing.T) {
	optimizer := NewOptimizer(logger.NewNop(), nil)
	record, uniqueDays := optimizer.Search(context.Background(), SearchInput{
		Tickers:                []string{"AAA"},
		DayGroups:              map[string]DayGroups{"AAA": {}},
		BuyCandidates:          []dto.TimeOfDay{dto.NewTimeOfDay(9, 30)},
		SellCandidates:         []dto.TimeOfDay{dto.NewTimeOfDay(9, 35)},
		AllocatedCashPerTicker: 100,
		FeePerTrade:            0,
	})

	assert.Equal(t, 0, uniqueDays)
	// The completed-pair check records the first pair at total zero.
	require.True(t, record.HasBest())
	assert.Zero(t, record.Best.Total)
	assert.False(t, record.HasWorst())
}
