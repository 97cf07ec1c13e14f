package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/buscacep/internal/database"
)

// MaintenanceService houses destructive actions surfaced through the TUI.
type MaintenanceService struct {
	DB *sql.DB
}

// ClearHistory wipes the lookup history and returns how many rows were removed.
// The schema stays intact so the app can continue running.
func (s *MaintenanceService) ClearHistory(ctx context.Context) (int64, error) {
	if s.DB == nil {
		return 0, fmt.Errorf("maintenance: db not configured")
	}
	var removed int64
	if err := database.WithTx(s.DB, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, "DELETE FROM lookups")
		if err != nil {
			return fmt.Errorf("clear lookups: %w", err)
		}
		removed, _ = res.RowsAffected()
		return nil
	}); err != nil {
		return 0, err
	}
	_, _ = s.DB.ExecContext(ctx, "VACUUM")
	return removed, nil
}
