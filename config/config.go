package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Log          Logger       `mapstructure:"logger"`
	Market       Market       `mapstructure:"market"`
	YahooFinance YahooFinance `mapstructure:"yahoo_finance"`
	Data         Data         `mapstructure:"data"`
	History      History      `mapstructure:"history"`
	Cache        Cache        `mapstructure:"cache"`
}

type Logger struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

// Market holds the trading-session parameters the time grid is built from.
type Market struct {
	Timezone             string `mapstructure:"timezone"`
	BuyWindowStart       string `mapstructure:"buy_window_start"`
	BuyWindowEnd         string `mapstructure:"buy_window_end"`
	SellWindowStart      string `mapstructure:"sell_window_start"`
	SellWindowEnd        string `mapstructure:"sell_window_end"`
	GridIncrementMinutes int    `mapstructure:"grid_increment_minutes"`
	TradingDaysPerYear   int    `mapstructure:"trading_days_per_year"`
	HistoricalWindowDays int    `mapstructure:"historical_window_days"`
	LiveWindowDays       int    `mapstructure:"live_window_days"`
}

type YahooFinance struct {
	BaseURL             string        `mapstructure:"base_url"`
	Timeout             time.Duration `mapstructure:"timeout"`
	Interval            string        `mapstructure:"interval"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
}

type Data struct {
	TickerDir  string `mapstructure:"ticker_dir"`
	ResultsDir string `mapstructure:"results_dir"`
}

type History struct {
	Enabled bool   `mapstructure:"enabled"`
	DBPath  string `mapstructure:"db_path"`
}

type Cache struct {
	DefaultExpiration time.Duration `mapstructure:"default_expiration"`
	CleanupInterval   time.Duration `mapstructure:"cleanup_interval"`
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	setDefaults()

	// A missing config file is fine, defaults and env vars cover everything.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults() {
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.encoding", "console")

	viper.SetDefault("market.timezone", "America/New_York")
	viper.SetDefault("market.buy_window_start", "09:30")
	viper.SetDefault("market.buy_window_end", "15:50")
	viper.SetDefault("market.sell_window_start", "09:35")
	viper.SetDefault("market.sell_window_end", "15:55")
	viper.SetDefault("market.grid_increment_minutes", 5)
	viper.SetDefault("market.trading_days_per_year", 252)
	viper.SetDefault("market.historical_window_days", 59)
	viper.SetDefault("market.live_window_days", 1)

	viper.SetDefault("yahoo_finance.base_url", "https://query1.finance.yahoo.com/v8/finance/chart")
	viper.SetDefault("yahoo_finance.timeout", 30*time.Second)
	viper.SetDefault("yahoo_finance.interval", "5m")
	viper.SetDefault("yahoo_finance.max_request_per_minute", 30)

	viper.SetDefault("data.ticker_dir", "ticker_data")
	viper.SetDefault("data.results_dir", ".")

	viper.SetDefault("history.enabled", true)
	viper.SetDefault("history.db_path", "gridtrade.db")

	viper.SetDefault("cache.default_expiration", 30*time.Minute)
	viper.SetDefault("cache.cleanup_interval", time.Hour)
}
