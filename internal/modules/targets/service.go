package targets

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/SongChangseok/stock-dashboard/internal/domain"
)

// ErrInvalidInput is returned (wrapped) when a portfolio payload fails validation
var ErrInvalidInput = errors.New("invalid target portfolio")

// Service orchestrates target portfolio operations
type Service struct {
	repo *Repository
	log  zerolog.Logger
}

// NewService creates a new targets service
func NewService(repo *Repository, log zerolog.Logger) *Service {
	return &Service{
		repo: repo,
		log:  log.With().Str("service", "targets").Logger(),
	}
}

// List returns all target portfolios
func (s *Service) List() ([]TargetPortfolio, error) {
	return s.repo.GetAll()
}

// Get returns one target portfolio by ID
func (s *Service) Get(id string) (TargetPortfolio, error) {
	return s.repo.GetByID(id)
}

// Create validates and stores a new target portfolio
func (s *Service) Create(input PortfolioInput) (TargetPortfolio, error) {
	portfolio, err := fromInput(input)
	if err != nil {
		return TargetPortfolio{}, err
	}
	return s.repo.Create(portfolio)
}

// Update validates and replaces an existing target portfolio
func (s *Service) Update(id string, input PortfolioInput) (TargetPortfolio, error) {
	portfolio, err := fromInput(input)
	if err != nil {
		return TargetPortfolio{}, err
	}
	portfolio.ID = id
	return s.repo.Update(portfolio)
}

// Delete removes a target portfolio
func (s *Service) Delete(id string) error {
	return s.repo.Delete(id)
}

// fromInput validates the payload and computes the stored total weight.
// The total is allowed to deviate from 100; the rebalancing validation
// pass reports that, not the CRUD layer.
func fromInput(input PortfolioInput) (TargetPortfolio, error) {
	if strings.TrimSpace(input.Name) == "" {
		return TargetPortfolio{}, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	entries := make([]domain.TargetEntry, len(input.Entries))
	for i, e := range input.Entries {
		if strings.TrimSpace(e.Name) == "" {
			return TargetPortfolio{}, fmt.Errorf("%w: entry %d has no name", ErrInvalidInput, i)
		}
		if e.TargetWeight <= 0 || e.TargetWeight > 100 {
			return TargetPortfolio{}, fmt.Errorf(
				"%w: entry %q weight must be in (0, 100], got %.2f", ErrInvalidInput, e.Name, e.TargetWeight)
		}
		entries[i] = domain.TargetEntry{
			Name:         strings.TrimSpace(e.Name),
			Ticker:       strings.TrimSpace(e.Ticker),
			TargetWeight: e.TargetWeight,
		}
	}

	set := domain.NewTargetSet(entries)

	return TargetPortfolio{
		Name:        strings.TrimSpace(input.Name),
		Entries:     set.Entries,
		TotalWeight: set.TotalWeight,
	}, nil
}
