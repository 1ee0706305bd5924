package stocktrackerv1

import "time"

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionResponse is returned by Register and Login
type SessionResponse struct {
	UserID    string    `json:"user_id"`
	Username  string    `json:"username"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type LogoutRequest struct{}

type LogoutResponse struct{}

type AddPositionRequest struct {
	Name       string `json:"name"`
	CostPrice  string `json:"cost_price"`
	ClosePrice string `json:"close_price"`
}

// UpdatePositionRequest edits a position; nil fields are left unchanged
type UpdatePositionRequest struct {
	ID         string  `json:"id"`
	Name       *string `json:"name,omitempty"`
	CostPrice  *string `json:"cost_price,omitempty"`
	ClosePrice *string `json:"close_price,omitempty"`
}

type PositionResponse struct {
	Position *Position `json:"position"`
}

type DeletePositionRequest struct {
	ID string `json:"id"`
}

type DeletePositionResponse struct{}

type ListPositionsRequest struct{}

type ListPositionsResponse struct {
	Positions []*Position `json:"positions"`
}

type GetReturnsRequest struct{}

// GetReturnsResponse carries the date-grouped table, the chart series,
// summary statistics and the positions left out as invalid
type GetReturnsResponse struct {
	Rows     []*ReturnRow        `json:"rows"`
	Series   []*DailyPoint       `json:"series"`
	Summary  *Summary            `json:"summary"`
	Rejected []*RejectedPosition `json:"rejected"`
}

// Position is a stored position. Prices are decimal strings as entered.
type Position struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	CostPrice  string    `json:"cost_price"`
	ClosePrice string    `json:"close_price"`
	Date       string    `json:"date"` // YYYY-MM-DD
	CreatedAt  time.Time `json:"created_at"`
}

// ReturnRow is one line of the returns table.
// Summary rows have no Position, ReturnRate or Weight.
// Percentages are rounded to two decimals.
type ReturnRow struct {
	Kind        string    `json:"kind"` // SUMMARY or POSITION
	Date        string    `json:"date"`
	DailyReturn string    `json:"daily_return"`
	StockCount  int       `json:"stock_count"`
	Position    *Position `json:"position,omitempty"`
	ReturnRate  string    `json:"return_rate,omitempty"`
	Weight      string    `json:"weight,omitempty"`
}

type DailyPoint struct {
	Date        string `json:"date"`
	DailyReturn string `json:"daily_return"`
	StockCount  int    `json:"stock_count"`
}

type Summary struct {
	Days       int         `json:"days"`
	Mean       float64     `json:"mean"`
	StdDev     float64     `json:"std_dev"`
	Best       *DailyPoint `json:"best,omitempty"`
	Worst      *DailyPoint `json:"worst,omitempty"`
	Cumulative string      `json:"cumulative"`
}

type RejectedPosition struct {
	Position *Position `json:"position"`
	Reason   string    `json:"reason"`
}
