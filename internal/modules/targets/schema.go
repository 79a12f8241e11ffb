package targets

import "database/sql"

// Schema defines the target portfolio tables
const Schema = `
CREATE TABLE IF NOT EXISTS target_portfolios (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    total_weight REAL NOT NULL DEFAULT 0,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS target_entries (
    id TEXT PRIMARY KEY,
    portfolio_id TEXT NOT NULL REFERENCES target_portfolios(id) ON DELETE CASCADE,
    name TEXT NOT NULL,
    ticker TEXT NOT NULL DEFAULT '',
    target_weight REAL NOT NULL,
    position INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_target_entries_portfolio ON target_entries(portfolio_id, position);
`

// InitSchema ensures the target portfolio tables exist
func InitSchema(db *sql.DB) error {
	_, err := db.Exec(Schema)
	return err
}
