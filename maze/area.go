package maze

// Area is an axis-aligned region of the grid with inclusive bounds.
// A new Area is built for every division step and never modified.
type Area struct {
	MinX int // Leftmost column
	MinY int // Topmost row
	MaxX int // Rightmost column
	MaxY int // Bottom row
}

// Width returns the number of columns covered by the area.
func (a Area) Width() int {
	return a.MaxX - a.MinX + 1
}

// Height returns the number of rows covered by the area.
func (a Area) Height() int {
	return a.MaxY - a.MinY + 1
}
