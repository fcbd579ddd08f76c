// Package render turns finished mazes into raster images.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/beka-birhanu/vinom-maze/maze"
)

const (
	defaultCellSize = 10

	// DefaultMaxPixels bounds the RGBA buffer to 64 MiB.
	DefaultMaxPixels int64 = 4096 * 4096
)

var (
	// WallColor and PathColor are the two ends of a 20-step qualitative colour map.
	WallColor = color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff}
	PathColor = color.RGBA{R: 0x9e, G: 0xda, B: 0xe5, A: 0xff}

	ErrInvalidCellSize = errors.New("cell size must be positive")
	ErrImageTooLarge   = errors.New("rendered image exceeds the pixel limit")
)

// PNG renders one square block of CellSize pixels per maze cell.
// MaxPixels caps width*height of the output; zero means DefaultMaxPixels.
type PNG struct {
	CellSize  int
	MaxPixels int64
	Wall      color.Color
	Path      color.Color
}

// NewPNG returns a renderer using the default colours.
// A non-positive cellSize falls back to the default.
func NewPNG(cellSize int) *PNG {
	if cellSize <= 0 {
		cellSize = defaultCellSize
	}
	return &PNG{
		CellSize:  cellSize,
		MaxPixels: DefaultMaxPixels,
		Wall:      WallColor,
		Path:      PathColor,
	}
}

// Check reports whether a maze of the given size can be rendered.
func (p *PNG) Check(width, height int) error {
	if p.CellSize <= 0 {
		return ErrInvalidCellSize
	}

	limit := p.MaxPixels
	if limit <= 0 {
		limit = DefaultMaxPixels
	}
	size := int64(p.CellSize)
	if pixels := int64(width) * size * int64(height) * size; pixels > limit {
		return fmt.Errorf("%w: %dx%d cells at %dpx is %d pixels, limit %d",
			ErrImageTooLarge, width, height, p.CellSize, pixels, limit)
	}
	return nil
}

// Image paints the maze onto a new RGBA image.
func (p *PNG) Image(m *maze.Maze) (*image.RGBA, error) {
	if err := p.Check(m.Width(), m.Height()); err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, m.Width()*p.CellSize, m.Height()*p.CellSize))
	wall, path := &image.Uniform{C: p.Wall}, &image.Uniform{C: p.Path}

	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			src := path
			if m.At(x, y) == maze.Wall {
				src = wall
			}
			block := image.Rect(x*p.CellSize, y*p.CellSize, (x+1)*p.CellSize, (y+1)*p.CellSize)
			draw.Draw(img, block, src, image.Point{}, draw.Src)
		}
	}

	return img, nil
}

// Render encodes the maze as PNG to w.
func (p *PNG) Render(w io.Writer, m *maze.Maze) error {
	img, err := p.Image(m)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// ContentType returns the MIME type of the encoded image.
func (p *PNG) ContentType() string {
	return "image/png"
}

// Extension returns the file extension used for saved images.
func (p *PNG) Extension() string {
	return "png"
}

// FileName returns the conventional file name for a maze of the given size.
func FileName(width, height int, ext string) string {
	return fmt.Sprintf("%dx%d.%s", width, height, ext)
}

// Encoder is the subset of a renderer needed to save an image.
type Encoder interface {
	Check(width, height int) error
	Render(w io.Writer, m *maze.Maze) error
	Extension() string
}

// Save writes the rendered maze to dir, creating it if needed, and returns the file path.
func Save(r Encoder, dir string, m *maze.Maze) (string, error) {
	if err := r.Check(m.Width(), m.Height()); err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}

	path := filepath.Join(dir, FileName(m.Width(), m.Height(), r.Extension()))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating image file: %w", err)
	}

	if err := r.Render(file, m); err != nil {
		_ = file.Close()
		return "", fmt.Errorf("rendering maze: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("closing image file: %w", err)
	}

	return path, nil
}
