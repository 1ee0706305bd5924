package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DateLayout is the ISO calendar date format used for position dates
const DateLayout = "2006-01-02"

// Position represents one stock holding recorded by a user for a given day.
// Prices are kept as the decimal strings the user submitted; they are parsed
// on demand with Prices.
type Position struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID // Frozen after creation
	Name       string
	CostPrice  string
	ClosePrice string
	Date       time.Time // UTC midnight. Frozen after creation
	CreatedAt  time.Time
}

// PositionPatch holds the editable fields of a position.
// Nil fields are left untouched.
type PositionPatch struct {
	Name       *string
	CostPrice  *string
	ClosePrice *string
}

// Day truncates t to its UTC calendar day
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses an ISO YYYY-MM-DD date
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// DateKey returns the ISO date of the position
func (p *Position) DateKey() string {
	return p.Date.Format(DateLayout)
}

// Prices parses cost and close prices.
// Returns an error wrapping ErrInvalidRecord if either price is not a number
// or if the cost price is zero, since the return rate divides by it.
func (p *Position) Prices() (cost, closing decimal.Decimal, err error) {
	cost, err = parsePrice("cost price", p.CostPrice)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	closing, err = parsePrice("close price", p.ClosePrice)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}
	if cost.IsZero() {
		return decimal.Zero, decimal.Zero, fmt.Errorf("%w: cost price must be non-zero", ErrInvalidRecord)
	}
	return cost, closing, nil
}

// Validate ensures the position adheres to domain rules
func (p *Position) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: position name cannot be empty", ErrInvalidRecord)
	}
	if p.OwnerID == uuid.Nil {
		return errors.New("position must have an owner")
	}
	if p.Date.IsZero() {
		return errors.New("position must have a date")
	}
	_, _, err := p.Prices()
	return err
}

// Apply copies the non-nil patch fields onto the position.
// Owner and date are never touched.
func (p *Position) Apply(patch PositionPatch) {
	if patch.Name != nil {
		p.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.CostPrice != nil {
		p.CostPrice = strings.TrimSpace(*patch.CostPrice)
	}
	if patch.ClosePrice != nil {
		p.ClosePrice = strings.TrimSpace(*patch.ClosePrice)
	}
}

func parsePrice(field, raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero, fmt.Errorf("%w: %s is required", ErrInvalidRecord, field)
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %s %q is not a number", ErrInvalidRecord, field, raw)
	}
	return v, nil
}
