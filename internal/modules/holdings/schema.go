package holdings

import "database/sql"

// Schema defines the holdings table
const Schema = `
CREATE TABLE IF NOT EXISTS holdings (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    ticker TEXT NOT NULL DEFAULT '',
    quantity REAL NOT NULL DEFAULT 0,
    purchase_price REAL NOT NULL DEFAULT 0,
    current_price REAL NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_holdings_ticker ON holdings(ticker);
`

// InitSchema ensures the holdings table exists
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(Schema)
	return err
}
