package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gridtrade",
	Short: "Brute-force search for the most profitable fixed daily trade window",
	Long: `gridtrade replays historical intraday bars for a basket of tickers and
searches every (buy time, sell time) candidate pair for the one that would
have produced the highest total profit on a chosen weekday.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(liveCmd)
	rootCmd.AddCommand(watchCmd)
}
