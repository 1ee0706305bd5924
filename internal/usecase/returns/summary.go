package returns

import (
	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes a daily return series
type Summary struct {
	Days       int
	Mean       float64 // Mean daily return, percent
	StdDev     float64 // Sample standard deviation, percent. Zero below two days
	Best       *DailyPoint
	Worst      *DailyPoint
	Cumulative decimal.Decimal // Compounded return over the series, percent
}

// Summarize computes descriptive statistics over a daily series.
// Cumulative compounds the daily returns: (prod(1 + r/100) - 1) * 100.
func Summarize(series []DailyPoint) Summary {
	summary := Summary{Days: len(series), Cumulative: decimal.Zero}
	if len(series) == 0 {
		return summary
	}

	values := make([]float64, len(series))
	growth := decimal.NewFromInt(1)
	for i, p := range series {
		values[i] = p.DailyReturn.InexactFloat64()
		growth = growth.Mul(decimal.NewFromInt(1).Add(p.DailyReturn.Div(hundred)))
	}

	summary.Mean = stat.Mean(values, nil)
	if len(values) > 1 {
		summary.StdDev = stat.StdDev(values, nil)
	}

	best := series[floats.MaxIdx(values)]
	worst := series[floats.MinIdx(values)]
	summary.Best = &best
	summary.Worst = &worst
	summary.Cumulative = growth.Sub(decimal.NewFromInt(1)).Mul(hundred)

	return summary
}
