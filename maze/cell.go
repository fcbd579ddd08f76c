package maze

// Cell is the state of a single grid position.
type Cell int8

const (
	Wall Cell = 0 // Wall blocks movement.
	Path Cell = 1 // Path is traversable.
)

// String returns the single character used for the cell in row encodings.
func (c Cell) String() string {
	if c == Wall {
		return "0"
	}
	return "1"
}
