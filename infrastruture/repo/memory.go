package repo

import (
	"context"
	"sort"
	"sync"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
)

// MemoryMazeRepo keeps maze records in process memory.
// It is used when no MongoDB URI is configured.
type MemoryMazeRepo struct {
	mu      sync.RWMutex
	records map[uuid.UUID]*dmn.MazeRecord
}

// NewMemoryMazeRepo creates an empty MemoryMazeRepo.
func NewMemoryMazeRepo() *MemoryMazeRepo {
	return &MemoryMazeRepo{
		records: make(map[uuid.UUID]*dmn.MazeRecord),
	}
}

// Save stores a copy of record, replacing any record with the same ID.
func (r *MemoryMazeRepo) Save(_ context.Context, record *dmn.MazeRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[record.ID] = clone(record)
	return nil
}

// ByID retrieves a maze record by its ID.
func (r *MemoryMazeRepo) ByID(_ context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	record, ok := r.records[id]
	if !ok {
		return nil, dmn.ErrMazeNotFound
	}
	return clone(record), nil
}

// List returns up to limit records, newest first.
func (r *MemoryMazeRepo) List(_ context.Context, limit int64) ([]*dmn.MazeRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*dmn.MazeRecord, 0, len(r.records))
	for _, record := range r.records {
		records = append(records, clone(record))
	}
	sort.Slice(records, func(a, b int) bool {
		return records[a].CreatedAt.After(records[b].CreatedAt)
	})

	if limit >= 0 && int64(len(records)) > limit {
		records = records[:limit]
	}
	return records, nil
}

// Delete removes a maze record by its ID.
func (r *MemoryMazeRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return dmn.ErrMazeNotFound
	}
	delete(r.records, id)
	return nil
}

func clone(record *dmn.MazeRecord) *dmn.MazeRecord {
	c := *record
	c.Rows = append([]string(nil), record.Rows...)
	return &c
}
