package returns

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/simaogato/stocktracker-backend/internal/domain"
)

// RowKind distinguishes daily summary rows from position rows
type RowKind string

const (
	RowKindSummary  RowKind = "SUMMARY"
	RowKindPosition RowKind = "POSITION"
)

// TableRow is one line of the returns table.
// Position is nil for summary rows.
type TableRow struct {
	Kind        RowKind
	Date        time.Time
	DailyReturn decimal.Decimal
	StockCount  int
	Position    *EnrichedPosition
}

// DailyPoint is one point of the daily return series
type DailyPoint struct {
	Date        time.Time
	DailyReturn decimal.Decimal
	StockCount  int
}

// BuildTable lays out aggregated positions for display: each date starts
// with a summary row carrying the daily return, followed by its positions.
// positions must be sorted by date, as returned by Aggregate.
func BuildTable(positions []EnrichedPosition) []TableRow {
	rows := make([]TableRow, 0, len(positions)*2)
	seen := make(map[time.Time]bool)

	for i := range positions {
		p := &positions[i]
		day := domain.Day(p.Date)
		if !seen[day] {
			seen[day] = true
			rows = append(rows, TableRow{
				Kind:        RowKindSummary,
				Date:        day,
				DailyReturn: p.DailyReturn,
				StockCount:  p.StockCount,
			})
		}
		rows = append(rows, TableRow{
			Kind:        RowKindPosition,
			Date:        day,
			DailyReturn: p.DailyReturn,
			StockCount:  p.StockCount,
			Position:    p,
		})
	}

	return rows
}

// DailySeries returns one point per distinct date, in the order of positions
func DailySeries(positions []EnrichedPosition) []DailyPoint {
	points := make([]DailyPoint, 0)
	seen := make(map[time.Time]bool)

	for _, p := range positions {
		day := domain.Day(p.Date)
		if seen[day] {
			continue
		}
		seen[day] = true
		points = append(points, DailyPoint{
			Date:        day,
			DailyReturn: p.DailyReturn,
			StockCount:  p.StockCount,
		})
	}

	return points
}

// FormatPercent rounds a percentage to two decimals for display
func FormatPercent(d decimal.Decimal) string {
	return d.StringFixed(2)
}
