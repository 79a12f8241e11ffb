package holdings

import (
	"database/sql"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/SongChangseok/stock-dashboard/internal/domain"
)

func testRepo(t *testing.T) *Repository {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, InitSchema(db))

	return NewRepository(db, zerolog.Nop())
}

func TestRepository_CreateAndGet(t *testing.T) {
	repo := testRepo(t)

	created, err := repo.Create(domain.Holding{
		Name:          "Apple",
		Ticker:        "AAPL",
		Quantity:      10,
		PurchasePrice: 120,
		CurrentPrice:  150,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := repo.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Apple", got.Name)
	assert.Equal(t, "AAPL", got.Ticker)
	assert.Equal(t, 10.0, got.Quantity)
	assert.Equal(t, 1500.0, got.TotalValue())
}

func TestRepository_GetAll_InsertionOrder(t *testing.T) {
	repo := testRepo(t)

	first, err := repo.Create(domain.Holding{Name: "Apple", Ticker: "AAPL", Quantity: 1, PurchasePrice: 1, CurrentPrice: 1})
	require.NoError(t, err)
	second, err := repo.Create(domain.Holding{Name: "Microsoft", Ticker: "MSFT", Quantity: 1, PurchasePrice: 1, CurrentPrice: 1})
	require.NoError(t, err)

	all, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first.ID, all[0].ID)
	assert.Equal(t, second.ID, all[1].ID)
}

func TestRepository_Update(t *testing.T) {
	repo := testRepo(t)

	created, err := repo.Create(domain.Holding{Name: "Apple", Ticker: "AAPL", Quantity: 10, PurchasePrice: 120, CurrentPrice: 150})
	require.NoError(t, err)

	created.CurrentPrice = 175
	updated, err := repo.Update(created)
	require.NoError(t, err)
	assert.Equal(t, 175.0, updated.CurrentPrice)
}

func TestRepository_UpdateMissing(t *testing.T) {
	repo := testRepo(t)

	_, err := repo.Update(domain.Holding{ID: "nope", Name: "Ghost"})
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestRepository_Delete(t *testing.T) {
	repo := testRepo(t)

	created, err := repo.Create(domain.Holding{Name: "Apple", Ticker: "AAPL", Quantity: 1, PurchasePrice: 1, CurrentPrice: 1})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(created.ID))

	_, err = repo.GetByID(created.ID)
	assert.ErrorIs(t, err, sql.ErrNoRows)

	assert.ErrorIs(t, repo.Delete(created.ID), sql.ErrNoRows)
}
