package returns

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/simaogato/stocktracker-backend/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// EnrichedPosition is a position annotated with its computed returns.
// All percentages are kept unrounded; use FormatPercent for display values.
type EnrichedPosition struct {
	domain.Position
	ReturnRate  decimal.Decimal // (close - cost) / cost * 100
	Weight      decimal.Decimal // 100 / StockCount
	DailyReturn decimal.Decimal // Shared by every position of the same owner and date
	StockCount  int
}

// Rejection records a position left out of the aggregation
type Rejection struct {
	Position domain.Position
	Err      error // Wraps domain.ErrInvalidRecord
}

// Result is the output of Aggregate
type Result struct {
	Positions []EnrichedPosition
	Rejected  []Rejection
}

type groupKey struct {
	owner uuid.UUID
	date  time.Time
}

type group struct {
	rates       []decimal.Decimal
	weight      decimal.Decimal
	dailyReturn decimal.Decimal
}

type rated struct {
	position domain.Position
	rate     decimal.Decimal
	key      groupKey
}

// Aggregate computes per-position and per-day returns.
// Logic:
//  1. Positions whose prices do not parse or whose cost is zero are rejected
//     and take no part in any group
//  2. Remaining positions are grouped by (owner, date)
//  3. Each position of a group of size n weighs 100/n percent, regardless of
//     prices
//  4. The daily return is the weighted sum of the unrounded return rates
//  5. Output follows input order, stable-sorted by ascending date
//
// The input slice is never modified.
func Aggregate(positions []domain.Position) Result {
	result := Result{Positions: make([]EnrichedPosition, 0, len(positions))}

	// Step 1: compute return rates, partitioning valid positions into groups
	valid := make([]rated, 0, len(positions))
	groups := make(map[groupKey]*group)
	for _, p := range positions {
		rate, err := ReturnRate(p)
		if err != nil {
			result.Rejected = append(result.Rejected, Rejection{Position: p, Err: err})
			continue
		}

		key := groupKey{owner: p.OwnerID, date: domain.Day(p.Date)}
		g, ok := groups[key]
		if !ok {
			g = &group{}
			groups[key] = g
		}
		g.rates = append(g.rates, rate)
		valid = append(valid, rated{position: p, rate: rate, key: key})
	}

	// Step 2: equal weights and the weighted daily sum per group
	for _, g := range groups {
		g.weight = hundred.Div(decimal.NewFromInt(int64(len(g.rates))))
		daily := decimal.Zero
		for _, rate := range g.rates {
			daily = daily.Add(rate.Mul(g.weight).Div(hundred))
		}
		g.dailyReturn = daily
	}

	// Step 3: stamp every position with its group values
	for _, r := range valid {
		g := groups[r.key]
		result.Positions = append(result.Positions, EnrichedPosition{
			Position:    r.position,
			ReturnRate:  r.rate,
			Weight:      g.weight,
			DailyReturn: g.dailyReturn,
			StockCount:  len(g.rates),
		})
	}

	sort.SliceStable(result.Positions, func(i, j int) bool {
		return domain.Day(result.Positions[i].Date).Before(domain.Day(result.Positions[j].Date))
	})

	return result
}

// ReturnRate returns the percentage change from cost to close price.
// Returns an error wrapping domain.ErrInvalidRecord for unparsable prices or
// a zero cost.
func ReturnRate(p domain.Position) (decimal.Decimal, error) {
	cost, closing, err := p.Prices()
	if err != nil {
		return decimal.Zero, err
	}
	return closing.Sub(cost).Mul(hundred).Div(cost), nil
}
