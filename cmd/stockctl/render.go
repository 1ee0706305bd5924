package main

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	stocktrackerv1 "github.com/simaogato/stocktracker-backend/internal/adapter/grpc/stocktracker/v1"
)

func renderPositions(w io.Writer, positions []*stocktrackerv1.Position) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Date", "Stock", "Cost", "Close"})

	for _, p := range positions {
		table.Append([]string{p.ID, p.Date, p.Name, p.CostPrice, p.ClosePrice})
	}

	table.Render()
}

// renderReturns prints the date-grouped table, then the chart series and summary.
// Each date opens with a summary row carrying its daily return.
func renderReturns(w io.Writer, resp *stocktrackerv1.GetReturnsResponse) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Date", "Stock", "Cost", "Close", "Return %", "Weight %", "Daily %", "Count"})
	table.SetAlignment(tablewriter.ALIGN_RIGHT)

	for _, row := range resp.Rows {
		if row.Position == nil {
			table.Append([]string{row.Date, "", "", "", "", "", row.DailyReturn, fmt.Sprint(row.StockCount)})
			continue
		}
		table.Append([]string{
			"",
			row.Position.Name,
			row.Position.CostPrice,
			row.Position.ClosePrice,
			row.ReturnRate,
			row.Weight,
			"",
			"",
		})
	}
	table.Render()

	if len(resp.Series) > 0 {
		fmt.Fprintln(w)
		series := tablewriter.NewWriter(w)
		series.SetHeader([]string{"Date", "Daily %", "Count"})
		series.SetAlignment(tablewriter.ALIGN_RIGHT)
		for _, p := range resp.Series {
			series.Append([]string{p.Date, p.DailyReturn, fmt.Sprint(p.StockCount)})
		}
		series.Render()
	}

	if s := resp.Summary; s != nil && s.Days > 0 {
		fmt.Fprintf(w, "\n%d days, mean %.2f%%, std dev %.2f%%, cumulative %s%%\n", s.Days, s.Mean, s.StdDev, s.Cumulative)
		if s.Best != nil && s.Worst != nil {
			fmt.Fprintf(w, "best %s (%s%%), worst %s (%s%%)\n", s.Best.Date, s.Best.DailyReturn, s.Worst.Date, s.Worst.DailyReturn)
		}
	}

	for _, r := range resp.Rejected {
		fmt.Fprintf(w, "skipped %s %s: %s\n", r.Position.Date, r.Position.Name, r.Reason)
	}
}
