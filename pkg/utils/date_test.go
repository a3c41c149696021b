package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarketLocation(t *testing.T) {
	loc, err := MarketLocation("America/New_York")
	require.NoError(t, err)
	assert.Equal(t, "America/New_York", loc.String())

	// A bad zone name must keep failing on every call, and never hand out
	// a nil location without an error.
	for i := 0; i < 2; i++ {
		loc, err = MarketLocation("Mars/Olympus_Mons")
		require.Error(t, err)
		assert.Nil(t, loc)
		assert.Contains(t, err.Error(), "Mars/Olympus_Mons")
	}

	// Distinct zone names resolve independently.
	utc, err := MarketLocation("UTC")
	require.NoError(t, err)
	assert.Equal(t, time.UTC.String(), utc.String())
}

func TestParseWeekday(t *testing.T) {
	wd, err := ParseWeekday("tuesday")
	require.NoError(t, err)
	assert.Equal(t, time.Tuesday, wd)

	_, err = ParseWeekday("Sunday")
	assert.Error(t, err)

	_, err = ParseWeekday("someday")
	assert.Error(t, err)
}

func TestDateKey(t *testing.T) {
	ts := time.Date(2024, 1, 9, 15, 55, 0, 0, time.UTC)
	assert.Equal(t, "2024-01-09", DateKey(ts))
}
