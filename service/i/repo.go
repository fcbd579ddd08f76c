package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
)

// MazeRepo defines the interface for maze archive persistence.
type MazeRepo interface {
	// Save inserts or replaces a maze record.
	Save(ctx context.Context, record *dmn.MazeRecord) error

	// ByID retrieves a maze record by its unique ID.
	// Returns dmn.ErrMazeNotFound if there is no such record.
	ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)

	// List returns up to limit records, newest first.
	List(ctx context.Context, limit int64) ([]*dmn.MazeRecord, error)

	// Delete removes a maze record.
	// Returns dmn.ErrMazeNotFound if there is no such record.
	Delete(ctx context.Context, id uuid.UUID) error
}
