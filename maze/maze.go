/*
Package maze provides tools for creating rectangular mazes by recursive division.

It defines the `Maze` structure, a grid of `Cell` values that are either `Wall` or `Path`.
Mazes have odd dimensions: cells at even coordinates are rooms, walls are drawn on odd
rows and columns and each wall line is left with a single gap.

Generation draws from an explicit `Source`, so a seed reproduces the same maze for the
same dimensions. The finished grid can be read cell by cell, copied, encoded as rows of
'0'/'1' characters or printed as ASCII.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

const (
	minMazeDimension = 3
)

var (
	ErrInvalidSize   = errors.New("maze size must be at least 3x3")
	ErrInvalidParity = errors.New("maze dimensions must be odd")
	ErrInvalidRows   = errors.New("invalid maze rows")
)

// Maze represents a rectangular grid of wall and path cells.
type Maze struct {
	width  int      // Number of columns
	height int      // Number of rows
	grid   [][]Cell // grid[y][x]
}

// New validates the dimensions and returns a maze whose cells are all paths.
func New(width, height int) (*Maze, error) {
	if err := Validate(width, height); err != nil {
		return nil, err
	}

	return &Maze{
		width:  width,
		height: height,
		grid:   newGrid(width, height),
	}, nil
}

// Validate reports whether width and height can be used for a maze.
func Validate(width, height int) error {
	if width < minMazeDimension || height < minMazeDimension {
		return ErrInvalidSize
	}
	if width%2 == 0 || height%2 == 0 {
		return ErrInvalidParity
	}
	return nil
}

// FromRows rebuilds a maze from rows produced by Rows.
func FromRows(rows []string) (*Maze, error) {
	if len(rows) == 0 {
		return nil, ErrInvalidRows
	}

	width, height := len(rows[0]), len(rows)
	if err := Validate(width, height); err != nil {
		return nil, err
	}

	grid := make([][]Cell, height)
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrInvalidRows, y, len(row), width)
		}
		grid[y] = make([]Cell, width)
		for x := 0; x < width; x++ {
			switch row[x] {
			case '0':
				grid[y][x] = Wall
			case '1':
				grid[y][x] = Path
			default:
				return nil, fmt.Errorf("%w: unexpected %q at (%d, %d)", ErrInvalidRows, row[x], x, y)
			}
		}
	}

	return &Maze{width: width, height: height, grid: grid}, nil
}

func newGrid(width, height int) [][]Cell {
	grid := make([][]Cell, height)
	for y := range grid {
		grid[y] = make([]Cell, width)
		for x := range grid[y] {
			grid[y][x] = Path
		}
	}
	return grid
}

// Width returns the number of columns.
func (m *Maze) Width() int {
	return m.width
}

// Height returns the number of rows.
func (m *Maze) Height() int {
	return m.height
}

// At returns the cell at column x, row y.
func (m *Maze) At(x, y int) Cell {
	return m.grid[y][x]
}

// Grid returns a copy of the grid indexed [row][column].
func (m *Maze) Grid() [][]Cell {
	grid := make([][]Cell, m.height)
	for y := range m.grid {
		grid[y] = append([]Cell(nil), m.grid[y]...)
	}
	return grid
}

// Rows encodes every row as a string of '0' (wall) and '1' (path).
func (m *Maze) Rows() []string {
	rows := make([]string, m.height)
	var b strings.Builder
	for y := range m.grid {
		b.Reset()
		b.Grow(m.width)
		for _, c := range m.grid[y] {
			b.WriteString(c.String())
		}
		rows[y] = b.String()
	}
	return rows
}

// String provides a textual representation of the maze.
func (m *Maze) String() string {
	var output strings.Builder

	for y := range m.grid {
		for _, c := range m.grid[y] {
			if c == Wall {
				output.WriteByte('#')
			} else {
				output.WriteByte(' ')
			}
		}
		output.WriteByte('\n')
	}

	return output.String()
}
