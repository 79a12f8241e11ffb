package targets

import (
	"time"

	"github.com/SongChangseok/stock-dashboard/internal/domain"
)

// TargetPortfolio is a named target allocation the user compares the
// current portfolio against
type TargetPortfolio struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Entries     []domain.TargetEntry `json:"entries"`
	TotalWeight float64              `json:"total_weight"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// TargetSet converts the stored portfolio into the engine's input shape
func (p TargetPortfolio) TargetSet() domain.TargetSet {
	return domain.TargetSet{
		Entries:     p.Entries,
		TotalWeight: p.TotalWeight,
	}
}

// EntryInput is one allocation line in a create/update payload
type EntryInput struct {
	Name         string  `json:"name"`
	Ticker       string  `json:"ticker"`
	TargetWeight float64 `json:"target_weight"`
}

// PortfolioInput is the request payload for creating or updating a
// target portfolio
type PortfolioInput struct {
	Name    string       `json:"name"`
	Entries []EntryInput `json:"entries"`
}
