package maze

import (
	"math/rand/v2"
)

// Source supplies the random choices made while dividing.
// IntN returns a uniform integer in [0, n).
type Source interface {
	IntN(n int) int
}

// NewSource returns a deterministic source for seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func newEntropySource() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// GenerateWithSeed resets the grid and divides it using a source seeded with seed.
func (m *Maze) GenerateWithSeed(seed uint64) {
	m.Generate(NewSource(seed))
}

// Generate resets the grid to all paths and divides it using src.
// A nil src is replaced by a randomly seeded one.
func (m *Maze) Generate(src Source) {
	if src == nil {
		src = newEntropySource()
	}

	for y := range m.grid {
		for x := range m.grid[y] {
			m.grid[y][x] = Path
		}
	}

	m.divide(Area{MinX: 0, MinY: 0, MaxX: m.width - 1, MaxY: m.height - 1}, src)
}

// divide splits area and every region it produces until each is one cell thin.
// Pending areas are kept on a stack; the second half of a split is pushed
// first so regions are visited in depth-first, first-half-first order.
func (m *Maze) divide(area Area, src Source) {
	pending := []Area{area}

	for len(pending) > 0 {
		a := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		if a.Width() <= 1 || a.Height() <= 1 {
			continue
		}

		// Split across the longer side, toss a coin on squares.
		isHorizontal := a.Width() > a.Height()
		if a.Width() == a.Height() {
			isHorizontal = intN(src, 2) == 1
		}

		if isHorizontal {
			x := m.divideHorizontally(a, src)
			pending = append(pending,
				Area{MinX: x + 1, MinY: a.MinY, MaxX: a.MaxX, MaxY: a.MaxY},
				Area{MinX: a.MinX, MinY: a.MinY, MaxX: x - 1, MaxY: a.MaxY},
			)
		} else {
			y := m.divideVertically(a, src)
			pending = append(pending,
				Area{MinX: a.MinX, MinY: y + 1, MaxX: a.MaxX, MaxY: a.MaxY},
				Area{MinX: a.MinX, MinY: a.MinY, MaxX: a.MaxX, MaxY: y - 1},
			)
		}
	}
}

// divideHorizontally draws a vertical wall across the area, leaving one gap,
// and returns the wall column.
func (m *Maze) divideHorizontally(a Area, src Source) int {
	x := a.MinX + 1
	if a.Width() >= 2 {
		x += intN(src, a.Width()/2) * 2
	}

	y := a.MinY
	if a.Height() == 3 {
		y += intN(src, 2) * 2
	} else if a.Height() > 3 {
		y += intN(src, a.Height()/2) * 2
	}

	for row := a.MinY; row <= a.MaxY; row++ {
		m.grid[row][x] = Wall
	}
	m.grid[y][x] = Path
	return x
}

// divideVertically draws a horizontal wall across the area, leaving one gap,
// and returns the wall row.
func (m *Maze) divideVertically(a Area, src Source) int {
	x := a.MinX
	if a.Width() == 3 {
		x += intN(src, 2) * 2
	} else if a.Width() > 3 {
		x += intN(src, a.Width()/2) * 2
	}

	y := a.MinY + 1
	if a.Height() >= 2 {
		y += intN(src, a.Height()/2) * 2
	}

	for col := a.MinX; col <= a.MaxX; col++ {
		m.grid[y][col] = Wall
	}
	m.grid[y][x] = Path
	return y
}

// intN draws from src, treating an empty range as offset zero.
func intN(src Source, n int) int {
	if n <= 0 {
		return 0
	}
	return src.IntN(n)
}
