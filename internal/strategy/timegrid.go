package strategy

import "gridtrade/internal/dto"

// GenerateTimeGrid returns the ordered candidate times from start to end
// inclusive, spaced exactly incrementMinutes apart. When the span is not an
// exact multiple of the increment the last value is the largest one <= end.
// Pure and date-independent.
func GenerateTimeGrid(start, end dto.TimeOfDay, incrementMinutes int) []dto.TimeOfDay {
	if incrementMinutes <= 0 || end < start {
		return nil
	}

	var times []dto.TimeOfDay
	for current := start; current <= end; current = current.Add(incrementMinutes) {
		times = append(times, current)
	}
	return times
}
