package twisty

import (
	"fmt"
	"strings"
)

// Color represents a facelet color.
type Color byte

const (
	White  Color = iota // Up face when solved
	Yellow              // Down face when solved
	Orange              // Left face when solved
	Red                 // Right face when solved
	Green               // Front face when solved
	Blue                // Back face when solved
	Black               // Not a real, visible facelet
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Orange:
		return "O"
	case Red:
		return "R"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Black:
		return "K"
	default:
		return "?"
	}
}

// Face identifies one of the six faces of the cube.
// The numbering is fixed; every table in this package depends on it.
type Face int

const (
	Up    Face = 0
	Left  Face = 1
	Front Face = 2
	Right Face = 3
	Back  Face = 4
	Down  Face = 5
)

// Faces lists every face in index order.
var Faces = [6]Face{Up, Left, Front, Right, Back, Down}

func (f Face) String() string {
	switch f {
	case Up:
		return "U"
	case Left:
		return "L"
	case Front:
		return "F"
	case Right:
		return "R"
	case Back:
		return "B"
	case Down:
		return "D"
	default:
		return "?"
	}
}

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool {
	return f >= Up && f <= Down
}

// SolvedColor returns the color a face carries on a solved cube.
func (f Face) SolvedColor() Color {
	return solvedColors[f]
}

// solvedColors is the canonical coloring, indexed by Face.
var solvedColors = [6]Color{White, Orange, Green, Red, Blue, Yellow}

// Cube is an n×n×n cube held as six n×n grids of facelet colors.
//
// Each grid is indexed [row][col] with row 0 at the top of the face and
// col 0 at its left, as seen from outside the cube. The Up face is seen with
// the Back face above it and the Down face with the Front face above it.
//
// A Cube is not safe for concurrent use.
type Cube struct {
	n        int
	facelets [6][][]Color
	cfg      *config
}

// New creates a solved cube of size n. n must be at least 2.
func New(n int, opts ...Option) (*Cube, error) {
	if n < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, n)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	c := &Cube{n: n, cfg: cfg}
	for face := range c.facelets {
		grid := make([][]Color, n)
		for row := range grid {
			grid[row] = make([]Color, n)
		}
		c.facelets[face] = grid
	}
	c.Reset()
	return c, nil
}

// MustNew is like New but panics if n is invalid.
func MustNew(n int, opts ...Option) *Cube {
	c, err := New(n, opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// Reset restores the solved coloring.
func (c *Cube) Reset() {
	for face, grid := range c.facelets {
		color := solvedColors[face]
		for _, row := range grid {
			for col := range row {
				row[col] = color
			}
		}
	}
}

// Size returns n, the number of facelets along each edge.
func (c *Cube) Size() int {
	return c.n
}

// Facelet returns the color stored at row, col of a face.
func (c *Cube) Facelet(face Face, row, col int) Color {
	return c.facelets[face][row][col]
}

// FaceGrid returns a copy of a face's grid.
func (c *Cube) FaceGrid(face Face) [][]Color {
	src := c.facelets[face]
	grid := make([][]Color, c.n)
	for row := range grid {
		grid[row] = append([]Color(nil), src[row]...)
	}
	return grid
}

// IsSolved returns true if every face is a single color matching its
// canonical solved color.
func (c *Cube) IsSolved() bool {
	for _, face := range Faces {
		if !c.faceIs(face, solvedColors[face]) {
			return false
		}
	}
	return true
}

func (c *Cube) faceIs(face Face, color Color) bool {
	for _, row := range c.facelets[face] {
		for _, got := range row {
			if got != color {
				return false
			}
		}
	}
	return true
}

// Clone creates a deep copy of the cube. The copy shares the original's
// options.
func (c *Cube) Clone() *Cube {
	clone := &Cube{n: c.n, cfg: c.cfg}
	for face := range c.facelets {
		clone.facelets[face] = c.FaceGrid(Face(face))
	}
	return clone
}

// Equal reports whether two cubes have the same size and coloring.
func (c *Cube) Equal(other *Cube) bool {
	if other == nil || c.n != other.n {
		return false
	}
	for face := range c.facelets {
		for row := 0; row < c.n; row++ {
			for col := 0; col < c.n; col++ {
				if c.facelets[face][row][col] != other.facelets[face][row][col] {
					return false
				}
			}
		}
	}
	return true
}

// ColorCounts returns how many facelets carry each color.
// On any reachable state each real color appears exactly n*n times.
func (c *Cube) ColorCounts() map[Color]int {
	counts := make(map[Color]int, 6)
	for _, grid := range c.facelets {
		for _, row := range grid {
			for _, color := range row {
				counts[color]++
			}
		}
	}
	return counts
}

// String returns a text net of the cube: Up on top, then Left, Front,
// Right and Back side by side, then Down.
func (c *Cube) String() string {
	var b strings.Builder
	indent := strings.Repeat("  ", c.n) + " "

	writeRow := func(face Face, row int) {
		for col := 0; col < c.n; col++ {
			b.WriteString(c.facelets[face][row][col].String())
			b.WriteByte(' ')
		}
	}

	for row := 0; row < c.n; row++ {
		b.WriteString(indent)
		writeRow(Up, row)
		b.WriteByte('\n')
	}
	for row := 0; row < c.n; row++ {
		for i, face := range []Face{Left, Front, Right, Back} {
			if i > 0 {
				b.WriteByte(' ')
			}
			writeRow(face, row)
		}
		b.WriteByte('\n')
	}
	for row := 0; row < c.n; row++ {
		b.WriteString(indent)
		writeRow(Down, row)
		b.WriteByte('\n')
	}

	return b.String()
}

// Debug returns a simple debug string.
func (c *Cube) Debug() string {
	return fmt.Sprintf("Size: %d Solved: %v", c.n, c.IsSolved())
}
