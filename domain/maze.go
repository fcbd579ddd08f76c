// Package domain holds the records exchanged between the maze service and its storage.
package domain

import (
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

var ErrMazeNotFound = errors.New("maze not found")

// MazeRecord represents the BSON version of a generated maze for storage.
type MazeRecord struct {
	ID        uuid.UUID `bson:"_id" json:"id"`
	Width     int       `bson:"width" json:"width"`
	Height    int       `bson:"height" json:"height"`
	Seed      int64     `bson:"seed" json:"seed"`
	Rows      []string  `bson:"rows" json:"rows"`
	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
}

// NewMazeRecord captures a generated maze together with the seed that produced it.
func NewMazeRecord(m *maze.Maze, seed int64) *MazeRecord {
	return &MazeRecord{
		ID:        uuid.New(),
		Width:     m.Width(),
		Height:    m.Height(),
		Seed:      seed,
		Rows:      m.Rows(),
		CreatedAt: time.Now().UTC(),
	}
}

// Maze rebuilds the stored grid.
func (r *MazeRecord) Maze() (*maze.Maze, error) {
	return maze.FromRows(r.Rows)
}
