package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gridtrade/internal/dto"
	"gridtrade/pkg/utils"
)

// ResultRepository persists the discovered best pair for a weekday as a single
// line "Weekday,HH:MM,HH:MM", overwriting any previous record. The live-check
// mode reads it back to re-validate the pair against fresh data.
type ResultRepository interface {
	SaveBestPair(ctx context.Context, record dto.WeekdayRecord) error
	LoadBestPair(ctx context.Context, weekday time.Weekday) (dto.WeekdayRecord, error)
}

type resultRepository struct {
	dir string
}

func NewResultRepository(dir string) ResultRepository {
	return &resultRepository{dir: dir}
}

func (r *resultRepository) path(weekday time.Weekday) string {
	return filepath.Join(r.dir, weekday.String()+".txt")
}

func (r *resultRepository) SaveBestPair(ctx context.Context, record dto.WeekdayRecord) error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("create results dir: %w", err)
	}

	line := fmt.Sprintf("%s,%s,%s", record.Weekday, record.BuyTime, record.SellTime)
	if err := os.WriteFile(r.path(record.Weekday), []byte(line), 0o644); err != nil {
		return fmt.Errorf("write weekday record for %s: %w", record.Weekday, err)
	}
	return nil
}

func (r *resultRepository) LoadBestPair(ctx context.Context, weekday time.Weekday) (dto.WeekdayRecord, error) {
	data, err := os.ReadFile(r.path(weekday))
	if err != nil {
		return dto.WeekdayRecord{}, fmt.Errorf("read weekday record for %s: %w", weekday, err)
	}

	parts := strings.Split(strings.TrimSpace(string(data)), ",")
	if len(parts) != 3 {
		return dto.WeekdayRecord{}, fmt.Errorf("malformed weekday record %q", strings.TrimSpace(string(data)))
	}

	day, err := utils.ParseWeekday(parts[0])
	if err != nil {
		return dto.WeekdayRecord{}, err
	}

	buyTime, err := dto.ParseTimeOfDay(parts[1])
	if err != nil {
		return dto.WeekdayRecord{}, err
	}

	sellTime, err := dto.ParseTimeOfDay(parts[2])
	if err != nil {
		return dto.WeekdayRecord{}, err
	}

	return dto.WeekdayRecord{Weekday: day, BuyTime: buyTime, SellTime: sellTime}, nil
}
