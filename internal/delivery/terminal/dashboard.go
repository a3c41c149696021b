package terminal

import (
	"fmt"
	"io"
	"strings"

	"gridtrade/internal/dto"
	"gridtrade/internal/service"
	"gridtrade/internal/strategy"
)

// ANSI color codes, matching the classic dashboard rendering.
const (
	colorGreen  = "\033[92m"
	colorBlue   = "\033[94m"
	colorRed    = "\033[91m"
	colorYellow = "\033[93m"
	colorReset  = "\033[0m"

	clearScreen = "\033[2J\033[H"

	totalWidth = 100
	halfWidth  = totalWidth / 2
)

// Dashboard renders the live search progress. It implements
// strategy.Observer and is redrawn on every new best or worst pair.
type Dashboard struct {
	w  io.Writer
	rc service.RunContext
}

func NewDashboard(w io.Writer, rc service.RunContext) *Dashboard {
	return &Dashboard{w: w, rc: rc}
}

func (d *Dashboard) OnNewBest(record dto.BestWorstRecord, uniqueDays int) {
	d.render(record, uniqueDays)
}

func (d *Dashboard) OnNewWorst(record dto.BestWorstRecord, uniqueDays int) {
	d.render(record, uniqueDays)
}

func (d *Dashboard) render(record dto.BestWorstRecord, uniqueDays int) {
	var b strings.Builder

	b.WriteString(clearScreen)
	rule(&b, colorGreen, "=")
	b.WriteString(colorGreen + center("Stock Analysis Dashboard (One Day Trading)") + colorReset + "\n")
	rule(&b, colorGreen, "=")

	b.WriteString(colorYellow +
		ljust(fmt.Sprintf("Analyzing Day: %s", d.rc.Weekday)) +
		rjust(fmt.Sprintf("Starting Balance: $%.2f", d.rc.StartingBalance)) +
		colorReset + "\n")
	b.WriteString(colorYellow +
		ljust(fmt.Sprintf("Number of Stocks: %d", len(d.rc.Tickers))) +
		rjust(fmt.Sprintf("Allocated per Stock: $%.2f", d.rc.AllocatedPerTicker)) +
		colorReset + "\n")
	rule(&b, "", "-")

	d.renderBest(&b, record, uniqueDays)
	rule(&b, "", "-")
	d.renderWorst(&b, record, uniqueDays)

	b.WriteString(center("Notes:") + "\n")
	b.WriteString(center("The buy and the sell always happen within the same day") + "\n")
	b.WriteString(center("The goal is to find the best trade window statistically") + "\n")
	b.WriteString(center("Delete a ticker's cached CSV to refresh its history on the next run") + "\n")
	rule(&b, colorGreen, "=")

	b.WriteString(center(fmt.Sprintf("Tickers being used in this run: %s", strings.Join(d.rc.Tickers, ", "))) + "\n")
	for _, ticker := range d.rc.Tickers {
		rule(&b, "", "-")
		b.WriteString(fmt.Sprintf("[%s] %s\n", ticker, service.TickerDetail(ticker)))
	}

	fmt.Fprint(d.w, b.String())
}

func (d *Dashboard) renderBest(b *strings.Builder, record dto.BestWorstRecord, uniqueDays int) {
	b.WriteString(colorBlue + center("Best Case Scenario") + colorReset + "\n")

	if !record.HasBest() {
		b.WriteString(colorBlue + center("Data not available") + colorReset + "\n")
		return
	}

	best := record.Best
	b.WriteString(colorBlue +
		ljust(fmt.Sprintf("Buy Time: %s", best.BuyTime)) +
		rjust(fmt.Sprintf("Sell Time: %s", best.SellTime)) +
		colorReset + "\n")
	b.WriteString(colorBlue + center(fmt.Sprintf("Highest Total Change From %d %s's: $%.2f", uniqueDays, d.rc.Weekday, best.Total)) + colorReset + "\n")

	projection, err := strategy.Project(best.Total, uniqueDays, d.rc.StartingBalance, d.rc.TradingDays)
	if err != nil {
		return
	}

	b.WriteString(colorBlue + center(fmt.Sprintf("Average Change per day: $%.2f", projection.AvgDailyProfit)) + colorReset + "\n")
	b.WriteString(colorBlue + center(fmt.Sprintf("Percentage Change Per Day: %.2f%%", projection.PctDaily)) + colorReset + "\n")
	b.WriteString(colorYellow + center(fmt.Sprintf("Speculative Future Balances Over %.0f %s's", d.rc.TradingDays, d.rc.Weekday)) + colorReset + "\n")
	b.WriteString(colorBlue + center(fmt.Sprintf("Best Case Without Compounding: $%.2f", projection.BalanceNoCompounding)) + colorReset + "\n")
	b.WriteString(colorBlue + center(fmt.Sprintf("Best Case With Compounding: $%.2f", projection.BalanceCompounding)) + colorReset + "\n")
}

func (d *Dashboard) renderWorst(b *strings.Builder, record dto.BestWorstRecord, uniqueDays int) {
	if !record.HasWorst() {
		b.WriteString(colorRed + center("Worst Case Scenario: Data not available") + colorReset + "\n")
		rule(b, colorGreen, "=")
		return
	}

	worst := record.Worst
	b.WriteString(colorRed + center("Worst Case Scenario") + colorReset + "\n")
	b.WriteString(colorRed +
		ljust(fmt.Sprintf("Buy Time: %s", worst.BuyTime)) +
		rjust(fmt.Sprintf("Sell Time: %s", worst.SellTime)) +
		colorReset + "\n")
	b.WriteString(colorRed + center(fmt.Sprintf("Lowest Total Change From %d %s's: $%.2f", uniqueDays, d.rc.Weekday, worst.Total)) + colorReset + "\n")

	projection, err := strategy.Project(worst.Total, uniqueDays, d.rc.StartingBalance, d.rc.TradingDays)
	if err == nil {
		b.WriteString(colorRed + center(fmt.Sprintf("Average Change per day: $%.2f", projection.AvgDailyProfit)) + colorReset + "\n")
		b.WriteString(colorRed + center(fmt.Sprintf("Percentage Change Per Day: %.2f%%", projection.PctDaily)) + colorReset + "\n")
		b.WriteString(colorRed + center(fmt.Sprintf("Worst Case Without Compounding: $%.2f", projection.BalanceNoCompounding)) + colorReset + "\n")
	}
	rule(b, colorGreen, "=")
}

// PrintFinalResults prints the per-weekday summary after all searches finish.
func PrintFinalResults(w io.Writer, outcomes []dto.WeekdayOutcome) {
	for _, outcome := range outcomes {
		result := outcome.Result
		record := result.Record

		fmt.Fprintf(w, "\nFinal Results for %s:\n", result.Weekday)

		if record.HasBest() && outcome.BestProjection != nil {
			fmt.Fprintf(w, "%sBest Buy Time: %s, Best Sell Time: %s, Highest Total Profit Per Day: %.2f%s\n",
				colorGreen, record.Best.BuyTime, record.Best.SellTime, outcome.BestProjection.AvgDailyProfit, colorReset)
		}
		if record.HasWorst() && outcome.WorstProjection != nil {
			fmt.Fprintf(w, "%sWorst Buy Time: %s, Worst Sell Time: %s, Lowest Total Profit: %.2f%s\n",
				colorRed, record.Worst.BuyTime, record.Worst.SellTime, outcome.WorstProjection.AvgDailyProfit, colorReset)
		}
		if len(result.SkippedTickers) > 0 {
			fmt.Fprintf(w, "%sSkipped tickers (no usable data): %s%s\n",
				colorYellow, strings.Join(result.SkippedTickers, ", "), colorReset)
		}
	}
}

// PrintWeeklySummary aggregates per-day averages into a weekly total for
// --day all runs.
func PrintWeeklySummary(w io.Writer, outcomes []dto.WeekdayOutcome) {
	if len(outcomes) < 2 {
		return
	}

	var totalPerDay float64
	for _, outcome := range outcomes {
		if outcome.BestProjection != nil {
			totalPerDay += outcome.BestProjection.AvgDailyProfit
		}
	}

	fmt.Fprintln(w, strings.Repeat("=", halfWidth))
	fmt.Fprintf(w, "%sTotal Potential Profit for the Week using each day's strategy: %.2f%s\n",
		colorGreen, totalPerDay, colorReset)
}

// PrintLiveCheck prints the outcome of re-validating a persisted pair.
func PrintLiveCheck(w io.Writer, result *dto.LiveCheckResult) {
	record := result.Record
	fmt.Fprintf(w, "\nLive check for %s (buy %s, sell %s):\n",
		record.Weekday, record.BuyTime, record.SellTime)

	for _, tr := range result.PerTicker {
		color := colorGreen
		if tr.Result.ProfitLoss < 0 {
			color = colorRed
		}
		fmt.Fprintf(w, "%s[%s] %d shares, buy $%.2f, sell $%.2f, P/L $%.2f%s\n",
			color, tr.Ticker, tr.Result.Shares, tr.Result.BuyPrice, tr.Result.SellPrice, tr.Result.ProfitLoss, colorReset)
	}

	if len(result.NoTradeFor) > 0 {
		fmt.Fprintf(w, "%sNo trade possible for: %s%s\n", colorYellow, strings.Join(result.NoTradeFor, ", "), colorReset)
	}

	color := colorGreen
	if result.TotalPL < 0 {
		color = colorRed
	}
	fmt.Fprintf(w, "%sTotal P/L across %d tickers: $%.2f%s\n", color, result.Evaluated, result.TotalPL, colorReset)
}

func rule(b *strings.Builder, color, char string) {
	b.WriteString(color + strings.Repeat(char, totalWidth) + colorReset + "\n")
}

func center(s string) string {
	if len(s) >= totalWidth {
		return s
	}
	left := (totalWidth - len(s)) / 2
	return strings.Repeat(" ", left) + s
}

func ljust(s string) string {
	if len(s) >= halfWidth {
		return s
	}
	return s + strings.Repeat(" ", halfWidth-len(s))
}

func rjust(s string) string {
	if len(s) >= halfWidth {
		return s
	}
	return strings.Repeat(" ", halfWidth-len(s)) + s
}
