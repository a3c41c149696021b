package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"gridtrade/pkg/logger"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"
)

var (
	watchOpts searchFlags
	cronSpec  string
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the search on a cron schedule until interrupted",
	RunE:  runWatch,
}

func init() {
	registerSearchFlags(watchCmd, &watchOpts)
	watchCmd.Flags().StringVar(&cronSpec, "cron", "0 18 * * 1-5", "Cron schedule for recurring searches")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appDep, err := NewAppDependency()
	if err != nil {
		return err
	}
	defer appDep.Close()

	scheduler := cron.New()
	_, err = scheduler.AddFunc(cronSpec, func() {
		if err := executeSearch(ctx, appDep, watchOpts); err != nil {
			appDep.log.Error("Scheduled search failed", logger.ErrorField(err))
		}
	})
	if err != nil {
		return err
	}

	appDep.log.Info("Watch mode started", logger.StringField("cron", cronSpec))
	scheduler.Start()

	<-ctx.Done()
	appDep.log.Info("Shutting down watch mode")

	stopCtx := scheduler.Stop()
	<-stopCtx.Done()
	return nil
}
