// Package store persists citizen reports and user accounts in a document
// database. Ids are store-generated UUIDs; there is a single id space
// regardless of backend.
package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when no document matches the given id or filter.
var ErrNotFound = errors.New("document not found")

// ReportStore is the document-store contract for citizen reports.
type ReportStore interface {
	// Insert persists a new report and returns its generated id.
	Insert(ctx context.Context, r *Report) (string, error)

	// List returns reports newest-first, optionally filtered by status
	// ("" or "all" means no filter), capped at limit.
	List(ctx context.Context, status string, limit int64) ([]Report, error)

	Get(ctx context.Context, id string) (*Report, error)

	// SetStatus transitions a report's lifecycle status.
	SetStatus(ctx context.Context, id, status string) error

	Delete(ctx context.Context, id string) error

	// Count counts reports, optionally filtered by status ("" means all).
	Count(ctx context.Context, status string) (int64, error)
}

// UserStore is the document-store contract for user accounts.
type UserStore interface {
	// FindByIdentity looks up an account by external id or email; the
	// first match wins.
	FindByIdentity(ctx context.Context, googleID, email string) (*User, error)

	FindByID(ctx context.Context, id string) (*User, error)

	// Create persists a new account and returns its generated id.
	Create(ctx context.Context, u *User) (string, error)

	// UpdateProfile refreshes the mutable profile fields on login.
	UpdateProfile(ctx context.Context, id, name, picture string, lastLogin time.Time) error

	IncrementReports(ctx context.Context, id string, delta int) error

	// List returns accounts newest-first, capped at limit.
	List(ctx context.Context, limit int64) ([]User, error)

	Count(ctx context.Context) (int64, error)
}
