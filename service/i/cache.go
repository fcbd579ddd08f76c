package i

import (
	"context"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
)

// MazeCache stores seeded mazes so identical requests skip generation.
type MazeCache interface {
	// Get returns the cached record for the key, or nil when there is none.
	Get(ctx context.Context, width, height int, seed int64) (*dmn.MazeRecord, error)

	// Set caches a record under its width, height and seed.
	Set(ctx context.Context, record *dmn.MazeRecord) error

	// Delete evicts the record cached under the key, if any.
	Delete(ctx context.Context, width, height int, seed int64) error

	// Lock serialises generation for one key. The returned func releases it.
	Lock(ctx context.Context, width, height int, seed int64) (func(), error)
}
