package cmd

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"gridtrade/internal/delivery/terminal"
	"gridtrade/internal/dto"
	"gridtrade/internal/service"
	"gridtrade/internal/strategy"

	"github.com/spf13/cobra"
)

type searchFlags struct {
	day     string
	random  int
	balance float64
	fee     float64
	tickers string
	live    bool
}

var searchOpts searchFlags

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Run the grid search for the best buy/sell time pair",
	Example: `  gridtrade search --day Monday --random 5 --balance 10000 --fee 0.1
  gridtrade search --day all --random 5 --balance 10000 --fee 0.1
  gridtrade search --tickers aapl,meta --day monday
  gridtrade search`,
	RunE: runSearch,
}

func init() {
	registerSearchFlags(searchCmd, &searchOpts)
}

func registerSearchFlags(cmd *cobra.Command, opts *searchFlags) {
	cmd.Flags().StringVar(&opts.day, "day", "Tuesday", "Day of the week to analyze, or \"all\"")
	cmd.Flags().IntVar(&opts.random, "random", 10, "Number of random stocks to pick when --tickers is absent")
	cmd.Flags().Float64Var(&opts.balance, "balance", 15000, "Starting balance, split evenly across tickers")
	cmd.Flags().Float64Var(&opts.fee, "fee", 0.01, "Exchange fee per transaction, charged twice per round trip")
	cmd.Flags().StringVar(&opts.tickers, "tickers", "", "Comma-separated ticker symbols to analyze")
	cmd.Flags().BoolVar(&opts.live, "live", false, "Fetch only the last day's data instead of the historical window")
}

func (f searchFlags) toConfig() dto.SearchConfig {
	cfg := dto.SearchConfig{
		Day:             f.day,
		RandomCount:     f.random,
		StartingBalance: f.balance,
		FeePerTrade:     f.fee,
		Live:            f.live,
	}
	if f.tickers != "" {
		cfg.Tickers = strings.Split(f.tickers, ",")
	}
	return cfg
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appDep, err := NewAppDependency()
	if err != nil {
		return err
	}
	defer appDep.Close()

	return executeSearch(ctx, appDep, searchOpts)
}

func executeSearch(ctx context.Context, appDep *AppDependency, opts searchFlags) error {
	searchCfg := opts.toConfig()

	// Both checks happen before any fetch: an invalid weekday or parameter
	// set must not trigger partial work.
	if _, err := service.ResolveWeekdays(searchCfg.Day); err != nil {
		return err
	}
	if err := appDep.validator.Struct(searchCfg); err != nil {
		return err
	}

	sampler := service.NewRandomSampler(time.Now().UnixNano())
	observerFactory := func(rc service.RunContext) strategy.Observer {
		return terminal.NewDashboard(os.Stdout, rc)
	}

	services := service.NewService(appDep.cfg, appDep.log, appDep.repo, appDep.cache, appDep.recorder, sampler, observerFactory)

	outcomes, err := services.SearchService.Run(ctx, searchCfg)
	if err != nil {
		return err
	}

	terminal.PrintFinalResults(os.Stdout, outcomes)
	terminal.PrintWeeklySummary(os.Stdout, outcomes)
	return nil
}
