package strategy

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject(t *testing.T) {
	projection, err := Project(100, 4, 1000, 50.4)
	require.NoError(t, err)

	assert.InDelta(t, 25.0, projection.AvgDailyProfit, 1e-9)
	assert.InDelta(t, 2.5, projection.PctDaily, 1e-9)
	assert.InDelta(t, 1000+1000*2.5/100*50.4, projection.BalanceNoCompounding, 1e-9)
	assert.InDelta(t, 1000*math.Pow(1.025, 50.4), projection.BalanceCompounding, 1e-9)
	assert.InDelta(t, 50.4, projection.TradingDaysProjection, 1e-9)
}

func TestProjectLoss(t *testing.T) {
	projection, err := Project(-50, 5, 1000, 252)
	require.NoError(t, err)

	assert.InDelta(t, -10.0, projection.AvgDailyProfit, 1e-9)
	assert.InDelta(t, -1.0, projection.PctDaily, 1e-9)
	assert.Less(t, projection.BalanceNoCompounding, 1000.0)
	assert.Less(t, projection.BalanceCompounding, 1000.0)
}

func TestProjectZeroDaysIsAnError(t *testing.T) {
	_, err := Project(100, 0, 1000, 252)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no trading days")
}

func TestProjectNonPositiveBalanceIsAnError(t *testing.T) {
	_, err := Project(100, 5, 0, 252)
	assert.Error(t, err)
}
