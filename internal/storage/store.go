// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/coalition/internal/models"
)

// ErrNotFound is returned when a key or report does not exist.
var ErrNotFound = errors.New("not found")

// Well-known keys of the key-value snapshot.
const (
	KeySelection = "selectedParties"
	KeyDarkMode  = "darkMode"
)

// Store defines the interface for the simulator's local persistence:
// a small key-value snapshot plus a log of exported reports.
// This abstraction keeps front-ends from reaching for global state and lets
// tests and alternate backends swap in.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// CreateReport persists a report.
	// The report.ID and report.CreatedAt fields are populated when empty.
	CreateReport(ctx context.Context, report *models.Report) error

	// GetReport retrieves a report by ID, or ErrNotFound.
	GetReport(ctx context.Context, reportID string) (*models.Report, error)

	// ListReports returns up to limit reports, newest first.
	// A limit <= 0 returns all reports.
	ListReports(ctx context.Context, limit int) ([]*models.Report, error)

	// Close releases any resources held by the store.
	Close() error
}
