// Package store archives analyses in SQLite.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/kakari-nlp/kakari"
)

// ErrNotFound is returned when no record has the requested id.
var ErrNotFound = errors.New("store: analysis not found")

// Record is a stored analysis.
type Record struct {
	ID        string           `json:"id"`
	Text      string           `json:"text,omitempty"`
	Morphemes int              `json:"morphemes"`
	Analysis  *kakari.Analysis `json:"analysis,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

// ListParams holds parameters for listing records.
type ListParams struct {
	Limit int // 0 means DefaultListLimit
	// Contains keeps only records whose text contains this substring.
	Contains string
	// Summary omits the analysis payload.
	Summary bool
}

// DefaultListLimit applies when ListParams.Limit is zero.
const DefaultListLimit = 20

// Store defines the analysis archive.
type Store interface {
	// Save stores an analysis and returns the created record.
	Save(ctx context.Context, a *kakari.Analysis) (*Record, error)

	// Get returns the record with the given id or ErrNotFound.
	Get(ctx context.Context, id string) (*Record, error)

	// List returns records, newest first.
	List(ctx context.Context, p ListParams) ([]Record, error)

	// Close closes the store.
	Close() error
}
