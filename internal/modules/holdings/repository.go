package holdings

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/SongChangseok/stock-dashboard/internal/domain"
)

// Repository handles holding database operations
type Repository struct {
	db  *sql.DB
	log zerolog.Logger
}

// NewRepository creates a new holdings repository
func NewRepository(db *sql.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("repo", "holdings").Logger(),
	}
}

// GetAll returns all holdings in insertion order
func (r *Repository) GetAll() ([]domain.Holding, error) {
	query := `SELECT id, name, ticker, quantity, purchase_price, current_price, created_at, updated_at
	          FROM holdings ORDER BY created_at, id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query holdings: %w", err)
	}
	defer rows.Close()

	var result []domain.Holding
	for rows.Next() {
		holding, err := scanHolding(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan holding: %w", err)
		}
		result = append(result, holding)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating holdings: %w", err)
	}

	return result, nil
}

// GetByID returns a single holding, or sql.ErrNoRows if it does not exist
func (r *Repository) GetByID(id string) (domain.Holding, error) {
	query := `SELECT id, name, ticker, quantity, purchase_price, current_price, created_at, updated_at
	          FROM holdings WHERE id = ?`

	row := r.db.QueryRow(query, id)
	holding, err := scanHolding(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.Holding{}, err
		}
		return domain.Holding{}, fmt.Errorf("failed to scan holding: %w", err)
	}
	return holding, nil
}

// Create inserts a new holding and returns it with its generated ID
func (r *Repository) Create(holding domain.Holding) (domain.Holding, error) {
	now := time.Now().UTC()
	holding.ID = uuid.NewString()
	holding.CreatedAt = now
	holding.UpdatedAt = now

	query := `INSERT INTO holdings (id, name, ticker, quantity, purchase_price, current_price, created_at, updated_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	_, err := r.db.Exec(query,
		holding.ID, holding.Name, holding.Ticker,
		holding.Quantity, holding.PurchasePrice, holding.CurrentPrice,
		holding.CreatedAt.Format(time.RFC3339Nano), holding.UpdatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return domain.Holding{}, fmt.Errorf("failed to insert holding: %w", err)
	}

	r.log.Debug().Str("id", holding.ID).Str("name", holding.Name).Msg("Holding created")
	return holding, nil
}

// Update replaces the mutable fields of an existing holding
func (r *Repository) Update(holding domain.Holding) (domain.Holding, error) {
	holding.UpdatedAt = time.Now().UTC()

	query := `UPDATE holdings
	          SET name = ?, ticker = ?, quantity = ?, purchase_price = ?, current_price = ?, updated_at = ?
	          WHERE id = ?`

	result, err := r.db.Exec(query,
		holding.Name, holding.Ticker,
		holding.Quantity, holding.PurchasePrice, holding.CurrentPrice,
		holding.UpdatedAt.Format(time.RFC3339Nano), holding.ID,
	)
	if err != nil {
		return domain.Holding{}, fmt.Errorf("failed to update holding: %w", err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return domain.Holding{}, sql.ErrNoRows
	}

	return r.GetByID(holding.ID)
}

// Delete removes a holding, returning sql.ErrNoRows if it does not exist
func (r *Repository) Delete(id string) error {
	result, err := r.db.Exec("DELETE FROM holdings WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete holding: %w", err)
	}

	affected, _ := result.RowsAffected()
	if affected == 0 {
		return sql.ErrNoRows
	}

	r.log.Debug().Str("id", id).Msg("Holding deleted")
	return nil
}

// scanner abstracts *sql.Row and *sql.Rows for shared scanning
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanHolding(row scanner) (domain.Holding, error) {
	var holding domain.Holding
	var createdAt, updatedAt string

	err := row.Scan(
		&holding.ID, &holding.Name, &holding.Ticker,
		&holding.Quantity, &holding.PurchasePrice, &holding.CurrentPrice,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return domain.Holding{}, err
	}

	holding.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdAt)
	holding.UpdatedAt, _ = time.Parse(time.RFC3339Nano, updatedAt)
	return holding, nil
}
