// Package presenter converts domain and report values into the API messages
// shared by the gRPC and HTTP transports.
package presenter

import (
	stocktrackerv1 "github.com/simaogato/stocktracker-backend/internal/adapter/grpc/stocktracker/v1"
	"github.com/simaogato/stocktracker-backend/internal/domain"
	"github.com/simaogato/stocktracker-backend/internal/usecase/auth"
	"github.com/simaogato/stocktracker-backend/internal/usecase/portfolio"
	"github.com/simaogato/stocktracker-backend/internal/usecase/returns"
)

// Session converts a user and its session
func Session(user *domain.User, session *auth.Session) *stocktrackerv1.SessionResponse {
	return &stocktrackerv1.SessionResponse{
		UserID:    user.ID.String(),
		Username:  user.Username,
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
	}
}

// Position converts a domain position
func Position(p *domain.Position) *stocktrackerv1.Position {
	return &stocktrackerv1.Position{
		ID:         p.ID.String(),
		Name:       p.Name,
		CostPrice:  p.CostPrice,
		ClosePrice: p.ClosePrice,
		Date:       p.DateKey(),
		CreatedAt:  p.CreatedAt,
	}
}

// Positions converts a list of domain positions
func Positions(positions []*domain.Position) []*stocktrackerv1.Position {
	out := make([]*stocktrackerv1.Position, 0, len(positions))
	for _, p := range positions {
		out = append(out, Position(p))
	}
	return out
}

// Returns converts a returns report. Percentages are rounded here and nowhere earlier.
func Returns(report *portfolio.Report) *stocktrackerv1.GetReturnsResponse {
	resp := &stocktrackerv1.GetReturnsResponse{
		Rows:     make([]*stocktrackerv1.ReturnRow, 0, len(report.Table)),
		Series:   make([]*stocktrackerv1.DailyPoint, 0, len(report.Series)),
		Summary:  summary(report.Summary),
		Rejected: make([]*stocktrackerv1.RejectedPosition, 0, len(report.Rejected)),
	}

	for _, row := range report.Table {
		out := &stocktrackerv1.ReturnRow{
			Kind:        string(row.Kind),
			Date:        row.Date.Format(domain.DateLayout),
			DailyReturn: returns.FormatPercent(row.DailyReturn),
			StockCount:  row.StockCount,
		}
		if row.Position != nil {
			out.Position = Position(&row.Position.Position)
			out.ReturnRate = returns.FormatPercent(row.Position.ReturnRate)
			out.Weight = returns.FormatPercent(row.Position.Weight)
		}
		resp.Rows = append(resp.Rows, out)
	}

	for _, point := range report.Series {
		resp.Series = append(resp.Series, dailyPoint(&point))
	}

	for _, r := range report.Rejected {
		resp.Rejected = append(resp.Rejected, &stocktrackerv1.RejectedPosition{
			Position: Position(&r.Position),
			Reason:   r.Err.Error(),
		})
	}

	return resp
}

func summary(s returns.Summary) *stocktrackerv1.Summary {
	out := &stocktrackerv1.Summary{
		Days:       s.Days,
		Mean:       s.Mean,
		StdDev:     s.StdDev,
		Cumulative: returns.FormatPercent(s.Cumulative),
	}
	if s.Best != nil {
		out.Best = dailyPoint(s.Best)
	}
	if s.Worst != nil {
		out.Worst = dailyPoint(s.Worst)
	}
	return out
}

func dailyPoint(p *returns.DailyPoint) *stocktrackerv1.DailyPoint {
	return &stocktrackerv1.DailyPoint{
		Date:        p.Date.Format(domain.DateLayout),
		DailyReturn: returns.FormatPercent(p.DailyReturn),
		StockCount:  p.StockCount,
	}
}
