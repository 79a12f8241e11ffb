package holdings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/SongChangseok/stock-dashboard/internal/domain"
	"github.com/SongChangseok/stock-dashboard/pkg/formulas"
)

// ErrInvalidInput is returned (wrapped) when a holding payload fails validation
var ErrInvalidInput = errors.New("invalid holding")

// Service orchestrates holding operations
type Service struct {
	repo *Repository
	log  zerolog.Logger
}

// NewService creates a new holdings service
func NewService(repo *Repository, log zerolog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With().Str("service", "holdings").Logger(),
	}
}

// List returns all holdings
func (s *Service) List() ([]domain.Holding, error) {
	return s.repo.GetAll()
}

// Get returns one holding by ID
func (s *Service) Get(id string) (domain.Holding, error) {
	return s.repo.GetByID(id)
}

// Create validates and stores a new holding
func (s *Service) Create(input HoldingInput) (domain.Holding, error) {
	if err := validateInput(input); err != nil {
		return domain.Holding{}, err
	}
	return s.repo.Create(toHolding(input))
}

// Update validates and replaces an existing holding
func (s *Service) Update(id string, input HoldingInput) (domain.Holding, error) {
	if err := validateInput(input); err != nil {
		return domain.Holding{}, err
	}
	holding := toHolding(input)
	holding.ID = id
	return s.repo.Update(holding)
}

// Delete removes a holding
func (s *Service) Delete(id string) error {
	return s.repo.Delete(id)
}

// Snapshot builds the current portfolio snapshot from stored holdings
func (s *Service) Snapshot() (domain.PortfolioSnapshot, error) {
	all, err := s.repo.GetAll()
	if err != nil {
		return domain.PortfolioSnapshot{}, fmt.Errorf("failed to load holdings: %w", err)
	}
	return domain.NewPortfolioSnapshot(all), nil
}

// Summarize aggregates the portfolio for dashboard display
func (s *Service) Summarize() (Summary, error) {
	snapshot, err := s.Snapshot()
	if err != nil {
		return Summary{}, err
	}

	values := make([]float64, len(snapshot.Holdings))
	for i, h := range snapshot.Holdings {
		values[i] = h.TotalValue()
	}
	weights := formulas.Weights(values)

	summary := Summary{
		TotalValue:           snapshot.TotalValue,
		TotalCost:            snapshot.TotalCost,
		TotalProfit:          snapshot.TotalValue - snapshot.TotalCost,
		ProfitPercent:        formulas.ProfitPercent(snapshot.TotalValue, snapshot.TotalCost),
		HoldingCount:         len(snapshot.Holdings),
		AveragePositionValue: formulas.Mean(values),
		LargestWeight:        formulas.Max(weights),
		Weights:              make([]HoldingWeight, len(snapshot.Holdings)),
	}

	for i, h := range snapshot.Holdings {
		summary.Weights[i] = HoldingWeight{
			StockName: h.Name,
			Ticker:    h.Ticker,
			Value:     values[i],
			Weight:    weights[i],
		}
	}

	return summary, nil
}

func validateInput(input HoldingInput) error {
	if strings.TrimSpace(input.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if input.Quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", ErrInvalidInput)
	}
	if input.PurchasePrice <= 0 {
		return fmt.Errorf("%w: purchase price must be positive", ErrInvalidInput)
	}
	if input.CurrentPrice <= 0 {
		return fmt.Errorf("%w: current price must be positive", ErrInvalidInput)
	}
	return nil
}

func toHolding(input HoldingInput) domain.Holding {
	return domain.Holding{
		Name:          strings.TrimSpace(input.Name),
		Ticker:        strings.TrimSpace(input.Ticker),
		Quantity:      input.Quantity,
		PurchasePrice: input.PurchasePrice,
		CurrentPrice:  input.CurrentPrice,
	}
}
