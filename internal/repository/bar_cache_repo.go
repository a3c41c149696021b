package repository

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gridtrade/internal/dto"
)

const csvTimeLayout = "2006-01-02 15:04:05"

var csvHeader = []string{"Datetime", "Open", "High", "Low", "Close", "Volume"}

// BarCacheRepository persists fetched bar series as one CSV file per ticker so
// repeated runs skip the remote fetch.
type BarCacheRepository interface {
	Exists(ticker string) bool
	Load(ctx context.Context, ticker string) ([]dto.Bar, error)
	Save(ctx context.Context, ticker string, bars []dto.Bar) error
}

type barCacheRepository struct {
	dir      string
	location *time.Location
}

func NewBarCacheRepository(dir string, loc *time.Location) BarCacheRepository {
	return &barCacheRepository{dir: dir, location: loc}
}

func (r *barCacheRepository) path(ticker string) string {
	return filepath.Join(r.dir, strings.ToUpper(ticker)+".csv")
}

func (r *barCacheRepository) Exists(ticker string) bool {
	_, err := os.Stat(r.path(ticker))
	return err == nil
}

func (r *barCacheRepository) Load(ctx context.Context, ticker string) ([]dto.Bar, error) {
	f, err := os.Open(r.path(ticker))
	if err != nil {
		return nil, fmt.Errorf("open bar cache for %s: %w", ticker, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read bar cache for %s: %w", ticker, err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	bars := make([]dto.Bar, 0, len(records)-1)
	for i, rec := range records[1:] {
		bar, err := r.parseRow(rec)
		if err != nil {
			return nil, fmt.Errorf("bar cache for %s, row %d: %w", ticker, i+2, err)
		}
		bars = append(bars, bar)
	}
	return bars, nil
}

func (r *barCacheRepository) parseRow(rec []string) (dto.Bar, error) {
	if len(rec) != len(csvHeader) {
		return dto.Bar{}, fmt.Errorf("expected %d columns, got %d", len(csvHeader), len(rec))
	}

	ts, err := time.ParseInLocation(csvTimeLayout, rec[0], r.location)
	if err != nil {
		return dto.Bar{}, fmt.Errorf("invalid datetime %q: %w", rec[0], err)
	}

	var prices [4]float64
	for i := 0; i < 4; i++ {
		prices[i], err = strconv.ParseFloat(rec[i+1], 64)
		if err != nil {
			return dto.Bar{}, fmt.Errorf("invalid %s %q: %w", csvHeader[i+1], rec[i+1], err)
		}
	}

	volume, err := strconv.ParseInt(rec[5], 10, 64)
	if err != nil {
		return dto.Bar{}, fmt.Errorf("invalid volume %q: %w", rec[5], err)
	}

	return dto.Bar{
		Timestamp: ts,
		Open:      prices[0],
		High:      prices[1],
		Low:       prices[2],
		Close:     prices[3],
		Volume:    volume,
	}, nil
}

func (r *barCacheRepository) Save(ctx context.Context, ticker string, bars []dto.Bar) error {
	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return fmt.Errorf("create bar cache dir: %w", err)
	}

	f, err := os.Create(r.path(ticker))
	if err != nil {
		return fmt.Errorf("create bar cache for %s: %w", ticker, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("write bar cache header for %s: %w", ticker, err)
	}

	for _, bar := range bars {
		row := []string{
			bar.Timestamp.In(r.location).Format(csvTimeLayout),
			strconv.FormatFloat(bar.Open, 'f', -1, 64),
			strconv.FormatFloat(bar.High, 'f', -1, 64),
			strconv.FormatFloat(bar.Low, 'f', -1, 64),
			strconv.FormatFloat(bar.Close, 'f', -1, 64),
			strconv.FormatInt(bar.Volume, 10),
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write bar cache row for %s: %w", ticker, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush bar cache for %s: %w", ticker, err)
	}
	return f.Close()
}
