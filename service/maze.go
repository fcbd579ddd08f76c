package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/google/uuid"
)

const (
	defaultMaxDimension = 1001
	defaultListLimit    = 20
	maxListLimit        = 100
)

var (
	ErrTooLarge = errors.New("maze dimensions exceed the configured maximum")
)

// Options configures a MazeService.
type Options struct {
	MaxDimension int          // Largest width or height accepted
	Cache        i.MazeCache  // Optional cache for seeded mazes
	NewSeed      func() int64 // Seed used when the caller gives none
}

// MazeService generates mazes, caches seeded ones and archives every result.
type MazeService struct {
	repo   i.MazeRepo
	logger i.Logger
	opts   *Options
}

// NewMazeService creates a MazeService. opts may be nil.
func NewMazeService(repo i.MazeRepo, logger i.Logger, opts *Options) (i.MazeGenerator, error) {
	if repo == nil {
		return nil, errors.New("maze repository is required")
	}
	if logger == nil {
		return nil, errors.New("logger is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	if opts.MaxDimension <= 0 {
		opts.MaxDimension = defaultMaxDimension
	}

	if opts.NewSeed == nil {
		opts.NewSeed = func() int64 { return rand.Int64N(math.MaxInt64) }
	}

	return &MazeService{
		repo:   repo,
		logger: logger,
		opts:   opts,
	}, nil
}

// Generate returns the maze for (width, height, seed), generating and archiving it when it is not cached.
func (s *MazeService) Generate(ctx context.Context, width, height int, seed *int64) (*dmn.MazeRecord, error) {
	if err := maze.Validate(width, height); err != nil {
		return nil, err
	}
	if max(width, height) > s.opts.MaxDimension {
		return nil, fmt.Errorf("%w (%d)", ErrTooLarge, s.opts.MaxDimension)
	}

	if seed == nil || s.opts.Cache == nil {
		return s.generate(ctx, width, height, s.seedOrNew(seed))
	}

	if record := s.cached(ctx, width, height, *seed); record != nil {
		return record, nil
	}

	unlock, err := s.opts.Cache.Lock(ctx, width, height, *seed)
	if err != nil {
		s.logger.Warn(fmt.Sprintf("Locking maze %dx%d seed=%d: %v", width, height, *seed, err))
		return s.generate(ctx, width, height, *seed)
	}
	defer unlock()

	// Another request may have finished while we waited for the lock.
	if record := s.cached(ctx, width, height, *seed); record != nil {
		return record, nil
	}

	record, err := s.generate(ctx, width, height, *seed)
	if err != nil {
		return nil, err
	}

	if err := s.opts.Cache.Set(ctx, record); err != nil {
		s.logger.Warn(fmt.Sprintf("Caching maze %s: %v", record.ID, err))
	}
	return record, nil
}

func (s *MazeService) seedOrNew(seed *int64) int64 {
	if seed != nil {
		return *seed
	}
	return s.opts.NewSeed()
}

func (s *MazeService) cached(ctx context.Context, width, height int, seed int64) *dmn.MazeRecord {
	record, err := s.opts.Cache.Get(ctx, width, height, seed)
	if err != nil {
		s.logger.Warn(fmt.Sprintf("Reading maze cache %dx%d seed=%d: %v", width, height, seed, err))
		return nil
	}
	if record != nil {
		s.logger.Info(fmt.Sprintf("Maze cache hit: %dx%d seed=%d ID=%s", width, height, seed, record.ID))
	}
	return record
}

func (s *MazeService) generate(ctx context.Context, width, height int, seed int64) (*dmn.MazeRecord, error) {
	m, err := maze.New(width, height)
	if err != nil {
		return nil, err
	}
	m.GenerateWithSeed(uint64(seed))

	record := dmn.NewMazeRecord(m, seed)
	if err := s.repo.Save(ctx, record); err != nil {
		return nil, fmt.Errorf("archiving maze: %w", err)
	}

	s.logger.Info(fmt.Sprintf("Generated maze: %dx%d seed=%d ID=%s", width, height, seed, record.ID))
	return record, nil
}

// ByID returns an archived maze.
func (s *MazeService) ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error) {
	return s.repo.ByID(ctx, id)
}

// List returns archived mazes, newest first. A non-positive limit uses the default.
func (s *MazeService) List(ctx context.Context, limit int64) ([]*dmn.MazeRecord, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	limit = min(limit, maxListLimit)
	return s.repo.List(ctx, limit)
}

// Delete removes an archived maze and evicts it from the cache.
func (s *MazeService) Delete(ctx context.Context, id uuid.UUID) error {
	record, err := s.repo.ByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if s.opts.Cache != nil {
		if err := s.opts.Cache.Delete(ctx, record.Width, record.Height, record.Seed); err != nil {
			s.logger.Warn(fmt.Sprintf("Evicting maze %s from cache: %v", id, err))
		}
	}

	s.logger.Info(fmt.Sprintf("Deleted maze: ID=%s", id))
	return nil
}
