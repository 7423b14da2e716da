package service

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jask/gitdeck/internal/database"
)

// MaintenanceService houses destructive/ops actions surfaced through the CLI.
type MaintenanceService struct {
	DB *sql.DB
}

// Reset wipes the saved profile and deck position. The schema stays intact.
func (s *MaintenanceService) Reset(ctx context.Context) error {
	if s.DB == nil {
		return fmt.Errorf("maintenance: db not configured")
	}
	if err := database.WithTx(s.DB, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM kv"); err != nil {
			return fmt.Errorf("reset kv: %w", err)
		}
		return nil
	}); err != nil {
		return err
	}
	_, _ = s.DB.ExecContext(ctx, "VACUUM")
	return nil
}
