// Package mazeapi exposes maze generation and the maze archive over HTTP.
package mazeapi

import (
	"time"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/google/uuid"
)

const (
	FormatPNG  = "png"
	FormatJSON = "json"
	FormatText = "text"
)

// GenerateRequest represents the query of a maze generation request.
// The optional seed is read separately so that an absent seed stays distinguishable from zero.
type GenerateRequest struct {
	Width  int    `form:"width" binding:"required"`
	Height int    `form:"height" binding:"required"`
	Format string `form:"format"`
}

// ListRequest represents the query of an archive listing request.
type ListRequest struct {
	Limit int64 `form:"limit"`
}

// MazeResponse represents a generated or archived maze.
type MazeResponse struct {
	ID        uuid.UUID `json:"id"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Seed      int64     `json:"seed"`
	Rows      []string  `json:"rows"`
	CreatedAt time.Time `json:"created_at"`
}

// ListResponse represents a page of archived mazes.
type ListResponse struct {
	Mazes []MazeResponse `json:"mazes"`
}

func toResponse(r *dmn.MazeRecord) MazeResponse {
	return MazeResponse{
		ID:        r.ID,
		Width:     r.Width,
		Height:    r.Height,
		Seed:      r.Seed,
		Rows:      r.Rows,
		CreatedAt: r.CreatedAt,
	}
}
