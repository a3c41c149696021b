package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gridtrade/internal/delivery/terminal"
	"gridtrade/internal/service"

	"github.com/spf13/cobra"
)

var liveOpts searchFlags

var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "Re-validate a persisted best pair against fresh single-day data",
	Long: `Reads the recorded best buy/sell pair for the chosen weekday (written by a
previous search) and evaluates exactly that pair against a fresh one-day
fetch, printing per-ticker and total profit/loss.`,
	RunE: runLive,
}

func init() {
	registerSearchFlags(liveCmd, &liveOpts)
	_ = liveCmd.Flags().MarkHidden("live")
}

func runLive(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appDep, err := NewAppDependency()
	if err != nil {
		return err
	}
	defer appDep.Close()

	searchCfg := liveOpts.toConfig()
	if err := appDep.validator.Struct(searchCfg); err != nil {
		return err
	}

	sampler := service.NewRandomSampler(time.Now().UnixNano())
	services := service.NewService(appDep.cfg, appDep.log, appDep.repo, appDep.cache, appDep.recorder, sampler, nil)

	result, err := services.LiveCheckService.Check(ctx, searchCfg)
	if err != nil {
		return err
	}

	terminal.PrintLiveCheck(os.Stdout, result)
	return nil
}
