package targets

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/SongChangseok/stock-dashboard/internal/domain"
)

// Repository handles target portfolio database operations
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new targets repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "targets").Logger(),
	}
}

// GetAll returns all target portfolios with their entries
func (r *Repository) GetAll() ([]TargetPortfolio, error) {
	query := `SELECT id, name, total_weight, created_at, updated_at
	          FROM target_portfolios ORDER BY created_at, id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query target portfolios: %w", err)
	}
	defer rows.Close()

	var portfolios []TargetPortfolio
	for rows.Next() {
		portfolio, err := scanPortfolio(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan target portfolio: %w", err)
		}
		portfolios = append(portfolios, portfolio)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating target portfolios: %w", err)
	}

	for i := range portfolios {
		entries, err := r.getEntries(portfolios[i].ID)
		if err != nil {
			return nil, err
		}
		portfolios[i].Entries = entries
	}

	return portfolios, nil
}

// GetByID returns one target portfolio with its entries, or sql.ErrNoRows
func (r *Repository) GetByID(id string) (TargetPortfolio, error) {
	query := `SELECT id, name, total_weight, created_at, updated_at
	          FROM target_portfolios WHERE id = ?`

	portfolio, err := scanPortfolio(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return TargetPortfolio{}, err
		}
		return TargetPortfolio{}, fmt.Errorf("failed to scan target portfolio: %w", err)
	}

	entries, err := r.getEntries(id)
	if err != nil {
		return TargetPortfolio{}, err
	}
	portfolio.Entries = entries

	return portfolio, nil
}

// Create inserts a portfolio and its entries in one transaction
func (r *Repository) Create(portfolio TargetPortfolio) (TargetPortfolio, error) {
	now := time.Now().UTC()
	portfolio.ID = uuid.NewString()
	portfolio.CreatedAt = now
	portfolio.UpdatedAt = now

	tx, err := r.db.Begin()
	if err != nil {
		return TargetPortfolio{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.Exec(
		`INSERT INTO target_portfolios (id, name, total_weight, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		portfolio.ID, portfolio.Name, portfolio.TotalWeight,
		now.Format(time.RFC3339Nano), now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return TargetPortfolio{}, fmt.Errorf("failed to insert target portfolio: %w", err)
	}

	if err := insertEntries(tx, portfolio.ID, portfolio.Entries); err != nil {
		return TargetPortfolio{}, err
	}

	if err := tx.Commit(); err != nil {
		return TargetPortfolio{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	r.log.Debug().Str("id", portfolio.ID).Str("name", portfolio.Name).
		Int("entry_count", len(portfolio.Entries)).Msg("Target portfolio created")

	return portfolio, nil
}

// Update replaces a portfolio's fields and entries in one transaction
func (r *Repository) Update(portfolio TargetPortfolio) (TargetPortfolio, error) {
	now := time.Now().UTC()

	tx, err := r.db.Begin()
	if err != nil {
		return TargetPortfolio{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.Exec(
		`UPDATE target_portfolios SET name = ?, total_weight = ?, updated_at = ? WHERE id = ?`,
		portfolio.Name, portfolio.TotalWeight, now.Format(time.RFC3339Nano), portfolio.ID,
	)
	if err != nil {
		return TargetPortfolio{}, fmt.Errorf("failed to update target portfolio: %w", err)
	}
	affected, _ := result.RowsAffected()
	if affected == 0 {
		return TargetPortfolio{}, sql.ErrNoRows
	}

	// Replace entries wholesale; the payload is the full allocation
	if _, err := tx.Exec(`DELETE FROM target_entries WHERE portfolio_id = ?`, portfolio.ID); err != nil {
		return TargetPortfolio{}, fmt.Errorf("failed to delete existing entries: %w", err)
	}
	if err := insertEntries(tx, portfolio.ID, portfolio.Entries); err != nil {
		return TargetPortfolio{}, err
	}

	if err := tx.Commit(); err != nil {
		return TargetPortfolio{}, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return r.GetByID(portfolio.ID)
}

// Delete removes a portfolio and (via cascade) its entries
func (r *Repository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM target_portfolios WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete target portfolio: %w", err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return sql.ErrNoRows
	}

	r.log.Debug().Str("id", id).Msg("Target portfolio deleted")
	return nil
}

func (r *Repository) getEntries(portfolioID string) ([]domain.TargetEntry, error) {
	query := `SELECT name, ticker, target_weight
	          FROM target_entries WHERE portfolio_id = ? ORDER BY position`

	rows, err := r.db.Query(query, portfolioID)
	if err != nil {
		return nil, fmt.Errorf("failed to query target entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.TargetEntry
	for rows.Next() {
		var entry domain.TargetEntry
		if err := rows.Scan(&entry.Name, &entry.Ticker, &entry.TargetWeight); err != nil {
			return nil, fmt.Errorf("failed to scan target entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating target entries: %w", err)
	}

	return entries, nil
}

func insertEntries(tx *sql.Tx, portfolioID string, entries []domain.TargetEntry) error {
	for i, entry := range entries {
		_, err := tx.Exec(
			`INSERT INTO target_entries (id, portfolio_id, name, ticker, target_weight, position) VALUES (?, ?, ?, ?, ?, ?)`,
			uuid.NewString(), portfolioID, entry.Name, entry.Ticker, entry.TargetWeight, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert target entry: %w", err)
		}
	}
	return nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanPortfolio(row scanner) (TargetPortfolio, error) {
	var portfolio TargetPortfolio
	var createdAt, updatedAt string

	err := row.Scan(&portfolio.ID, &portfolio.Name, &portfolio.TotalWeight, &createdAt, &updatedAt)
	if err != nil {
		return TargetPortfolio{}, err
	}

	portfolio.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	portfolio.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedAt)
	return portfolio, nil
}
