package i

import (
	"context"
	"io"

	dmn "github.com/beka-birhanu/vinom-maze/domain"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
)

// MazeGenerator generates mazes and manages the archive of generated ones.
type MazeGenerator interface {
	// Generate builds a maze. A nil seed picks a random one.
	Generate(ctx context.Context, width, height int, seed *int64) (*dmn.MazeRecord, error)
	ByID(ctx context.Context, id uuid.UUID) (*dmn.MazeRecord, error)
	List(ctx context.Context, limit int64) ([]*dmn.MazeRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Renderer turns a finished maze into an encoded image.
type Renderer interface {
	// Check rejects sizes the renderer will not allocate an image for.
	Check(width, height int) error
	Render(w io.Writer, m *maze.Maze) error
	ContentType() string
	Extension() string
}
