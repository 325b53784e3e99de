package store

import (
	"context"

	"github.com/vettalabs/vetta/internal/interview"
)

// SortField selects the dashboard sort column.
type SortField string

const (
	SortByScore SortField = "score"
	SortByName  SortField = "name"
	SortByDate  SortField = "date"
)

// SortOrder selects ascending or descending listing.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// ListOpts configures candidate listings.
type ListOpts struct {
	// Search filters by case-insensitive substring of name or email.
	// Empty means no filter.
	Search string

	// SortBy defaults to SortByScore when empty.
	SortBy SortField

	// Order defaults to OrderDesc when empty.
	Order SortOrder

	// Limit caps the number of results (0 = unlimited).
	Limit int
}

// CandidateRepo manages finished-interview records on the dashboard.
type CandidateRepo interface {
	// Upsert stores a record, replacing any existing record with the
	// same session ID.
	Upsert(ctx context.Context, rec *interview.CandidateRecord) error

	// Get returns the record for a session ID, or nil if absent.
	Get(ctx context.Context, sessionID string) (*interview.CandidateRecord, error)

	// List returns records filtered and sorted per opts.
	List(ctx context.Context, opts ListOpts) ([]interview.CandidateRecord, error)

	// Delete removes the record for a session ID. Deleting an absent
	// record is not an error.
	Delete(ctx context.Context, sessionID string) error

	// Purge removes all records.
	Purge(ctx context.Context) error
}
