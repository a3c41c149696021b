package utils

import (
	"fmt"
	"strings"
	"time"
)

// MarketLocation returns the exchange timezone used to normalize bar timestamps.
func MarketLocation(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("load market timezone %q: %w", name, err)
	}
	return loc, nil
}

// TradingWeekdays is the ordered set of days the market is open.
var TradingWeekdays = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
}

// ParseWeekday maps a case-insensitive weekday name to time.Weekday.
// Only trading weekdays are accepted.
func ParseWeekday(name string) (time.Weekday, error) {
	for _, wd := range TradingWeekdays {
		if strings.EqualFold(name, wd.String()) {
			return wd, nil
		}
	}
	return 0, fmt.Errorf("invalid day %q: use a weekday name (e.g. Tuesday) or \"all\"", name)
}

// DateKey formats the calendar-date portion of a timestamp, used to group bars by day.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}
