package scheduler

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/SongChangseok/stock-dashboard/internal/database"
)

// IntegrityCheckJob periodically verifies the dashboard database and
// truncates its WAL so the file does not grow unbounded
type IntegrityCheckJob struct {
	db  *database.DB
	log zerolog.Logger
}

// NewIntegrityCheckJob creates a new integrity check job
func NewIntegrityCheckJob(db *database.DB, log zerolog.Logger) *IntegrityCheckJob {
	return &IntegrityCheckJob{
		db:  db,
		log: log.With().Str("job", "integrity_check").Logger(),
	}
}

// Name returns the job name
func (j *IntegrityCheckJob) Name() string {
	return "integrity_check"
}

// Run executes the integrity check
func (j *IntegrityCheckJob) Run() error {
	start := time.Now()

	var result string
	if err := j.db.QueryRow("PRAGMA integrity_check").Scan(&result); err != nil {
		return fmt.Errorf("integrity check query failed: %w", err)
	}
	if result != "ok" {
		// Corruption cannot be auto-recovered; surface it loudly
		j.log.Error().
			Str("path", j.db.Path()).
			Str("result", result).
			Msg("Database integrity check failed")
		return fmt.Errorf("database %s failed integrity check: %s", j.db.Path(), result)
	}

	if _, err := j.db.Exec("PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		j.log.Warn().Err(err).Msg("WAL checkpoint failed")
	}

	j.log.Info().
		Dur("duration", time.Since(start)).
		Msg("Database integrity check passed")

	return nil
}
