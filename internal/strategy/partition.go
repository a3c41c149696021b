package strategy

import (
	"sort"
	"time"

	"gridtrade/internal/dto"
	"gridtrade/pkg/utils"
)

// DayGroups holds one ticker's bars grouped by calendar date, restricted to a
// single weekday. Dates are sorted ascending; bar order within a date follows
// provider order, which is ascending by timestamp.
type DayGroups struct {
	Dates []string
	Bars  map[string][]dto.Bar
}

// UniqueDays is the number of distinct trading days in the groups.
func (g DayGroups) UniqueDays() int {
	return len(g.Dates)
}

// PartitionByWeekday groups a bar series by calendar date, keeping only dates
// whose weekday matches. Concatenated multi-fetch series may interleave dates,
// so the date keys are sorted rather than trusted to arrive in order.
func PartitionByWeekday(bars []dto.Bar, weekday time.Weekday) DayGroups {
	groups := DayGroups{Bars: make(map[string][]dto.Bar)}

	for _, bar := range bars {
		if bar.Timestamp.Weekday() != weekday {
			continue
		}
		key := utils.DateKey(bar.Timestamp)
		if _, ok := groups.Bars[key]; !ok {
			groups.Dates = append(groups.Dates, key)
		}
		groups.Bars[key] = append(groups.Bars[key], bar)
	}

	sort.Strings(groups.Dates)
	return groups
}
