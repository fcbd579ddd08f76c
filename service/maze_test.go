package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/infrastruture/repo"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string)  {}
func (nopLogger) Warn(string)  {}
func (nopLogger) Error(string) {}

type fakeCache struct {
	mu      sync.Mutex
	records map[string]*dmn.MazeRecord
	locks   int
	getErr  error
	lockErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{records: map[string]*dmn.MazeRecord{}}
}

func cacheKey(width, height int, seed int64) string {
	return fmt.Sprintf("%dx%d:%d", width, height, seed)
}

func (c *fakeCache) Get(_ context.Context, width, height int, seed int64) (*dmn.MazeRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.records[cacheKey(width, height, seed)], nil
}

func (c *fakeCache) Set(_ context.Context, record *dmn.MazeRecord) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records[cacheKey(record.Width, record.Height, record.Seed)] = record
	return nil
}

func (c *fakeCache) Delete(_ context.Context, width, height int, seed int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.records, cacheKey(width, height, seed))
	return nil
}

func (c *fakeCache) Lock(context.Context, int, int, int64) (func(), error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lockErr != nil {
		return nil, c.lockErr
	}
	c.locks++
	return func() {}, nil
}

func seed(v int64) *int64 {
	return &v
}

func newService(t *testing.T, opts *Options) (*MazeService, *repo.MemoryMazeRepo) {
	t.Helper()
	r := repo.NewMemoryMazeRepo()
	svc, err := NewMazeService(r, nopLogger{}, opts)
	require.NoError(t, err)
	return svc.(*MazeService), r
}

func TestNewMazeService(t *testing.T) {
	_, err := NewMazeService(nil, nopLogger{}, nil)
	assert.Error(t, err)

	_, err = NewMazeService(repo.NewMemoryMazeRepo(), nil, nil)
	assert.Error(t, err)

	svc, _ := newService(t, nil)
	assert.Equal(t, defaultMaxDimension, svc.opts.MaxDimension)
	assert.NotNil(t, svc.opts.NewSeed)
}

func TestMazeServiceGenerate(t *testing.T) {
	ctx := context.Background()

	t.Run("Seeded generation matches the maze package", func(t *testing.T) {
		svc, r := newService(t, nil)

		record, err := svc.Generate(ctx, 21, 11, seed(7))
		require.NoError(t, err)

		m, err := maze.New(21, 11)
		require.NoError(t, err)
		m.GenerateWithSeed(7)
		assert.Equal(t, m.Rows(), record.Rows)
		assert.Equal(t, int64(7), record.Seed)

		archived, err := r.ByID(ctx, record.ID)
		require.NoError(t, err)
		assert.Equal(t, record.Rows, archived.Rows)
	})

	t.Run("Unseeded generation records the chosen seed", func(t *testing.T) {
		svc, _ := newService(t, &Options{NewSeed: func() int64 { return 99 }})

		record, err := svc.Generate(ctx, 5, 5, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(99), record.Seed)

		m, err := record.Maze()
		require.NoError(t, err)
		again, err := maze.New(5, 5)
		require.NoError(t, err)
		again.GenerateWithSeed(99)
		assert.Equal(t, again.Grid(), m.Grid())
	})

	t.Run("Invalid dimensions", func(t *testing.T) {
		svc, _ := newService(t, &Options{MaxDimension: 31})

		_, err := svc.Generate(ctx, 1, 5, nil)
		assert.ErrorIs(t, err, maze.ErrInvalidSize)

		_, err = svc.Generate(ctx, 6, 5, nil)
		assert.ErrorIs(t, err, maze.ErrInvalidParity)

		_, err = svc.Generate(ctx, 33, 5, nil)
		assert.ErrorIs(t, err, ErrTooLarge)
	})

	t.Run("Cache hit skips archiving", func(t *testing.T) {
		cache := newFakeCache()
		svc, r := newService(t, &Options{Cache: cache})

		first, err := svc.Generate(ctx, 9, 7, seed(3))
		require.NoError(t, err)
		second, err := svc.Generate(ctx, 9, 7, seed(3))
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, 1, cache.locks)

		records, err := r.List(ctx, 10)
		require.NoError(t, err)
		assert.Len(t, records, 1)
	})

	t.Run("Deleting a maze evicts it from the cache", func(t *testing.T) {
		cache := newFakeCache()
		svc, _ := newService(t, &Options{Cache: cache})

		first, err := svc.Generate(ctx, 9, 7, seed(3))
		require.NoError(t, err)
		require.NoError(t, svc.Delete(ctx, first.ID))
		assert.Empty(t, cache.records)

		second, err := svc.Generate(ctx, 9, 7, seed(3))
		require.NoError(t, err)
		assert.NotEqual(t, first.ID, second.ID)
		assert.Equal(t, first.Rows, second.Rows)

		got, err := svc.ByID(ctx, second.ID)
		require.NoError(t, err)
		assert.Equal(t, second.ID, got.ID)
	})

	t.Run("Cache failures fall back to generation", func(t *testing.T) {
		cache := newFakeCache()
		cache.getErr = errors.New("redis down")
		cache.lockErr = errors.New("redis down")
		svc, _ := newService(t, &Options{Cache: cache})

		record, err := svc.Generate(ctx, 9, 7, seed(3))
		require.NoError(t, err)
		assert.Len(t, record.Rows, 7)
		assert.Zero(t, cache.locks)
	})
}

func TestMazeServiceArchive(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t, nil)

	var ids []uuid.UUID
	for s := int64(1); s <= 3; s++ {
		record, err := svc.Generate(ctx, 5, 5, seed(s))
		require.NoError(t, err)
		ids = append(ids, record.ID)
	}

	got, err := svc.ByID(ctx, ids[0])
	require.NoError(t, err)
	assert.Equal(t, ids[0], got.ID)

	records, err := svc.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, records, 3)

	records, err = svc.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, records, 2)

	require.NoError(t, svc.Delete(ctx, ids[1]))
	assert.ErrorIs(t, svc.Delete(ctx, ids[1]), dmn.ErrMazeNotFound)

	_, err = svc.ByID(ctx, ids[1])
	assert.ErrorIs(t, err, dmn.ErrMazeNotFound)
}
