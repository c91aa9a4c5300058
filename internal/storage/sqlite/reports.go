package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/coalition/internal/models"
	"github.com/mmynk/coalition/internal/storage"
)

// CreateReport persists a new report to the database.
func (s *SQLiteStore) CreateReport(ctx context.Context, report *models.Report) error {
	if report.ID == "" {
		report.ID = uuid.New().String()
	}
	if report.CreatedAt == 0 {
		report.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO reports (id, created_at, seats, majority, has_majority, text)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		report.ID, report.CreatedAt, report.Seats, report.Majority, report.HasMajority, report.Text,
	)
	if err != nil {
		return fmt.Errorf("failed to insert report: %w", err)
	}

	for _, partyID := range report.PartyIDs {
		_, err = tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO report_parties (report_id, party_id) VALUES (?, ?)",
			report.ID, partyID,
		)
		if err != nil {
			return fmt.Errorf("failed to insert report party: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetReport retrieves a report by ID, including its party IDs.
func (s *SQLiteStore) GetReport(ctx context.Context, reportID string) (*models.Report, error) {
	report := &models.Report{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, created_at, seats, majority, has_majority, text FROM reports WHERE id = ?",
		reportID,
	).Scan(&report.ID, &report.CreatedAt, &report.Seats, &report.Majority, &report.HasMajority, &report.Text)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("report %s: %w", reportID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	if report.PartyIDs, err = s.reportParties(ctx, report.ID); err != nil {
		return nil, err
	}
	return report, nil
}

// ListReports retrieves reports, newest first.
func (s *SQLiteStore) ListReports(ctx context.Context, limit int) ([]*models.Report, error) {
	if limit <= 0 {
		limit = -1 // SQLite: no limit
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, seats, majority, has_majority, text
		 FROM reports ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	defer rows.Close()

	var reports []*models.Report
	for rows.Next() {
		report := &models.Report{}
		if err := rows.Scan(&report.ID, &report.CreatedAt, &report.Seats, &report.Majority,
			&report.HasMajority, &report.Text); err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reports: %w", err)
	}
	rows.Close()

	for _, report := range reports {
		if report.PartyIDs, err = s.reportParties(ctx, report.ID); err != nil {
			return nil, err
		}
	}
	return reports, nil
}

func (s *SQLiteStore) reportParties(ctx context.Context, reportID string) ([]int, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT party_id FROM report_parties WHERE report_id = ? ORDER BY party_id",
		reportID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get report parties: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan report party: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate report parties: %w", err)
	}
	return ids, nil
}
