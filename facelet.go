package twisty

// FaceletSource is the read side of a cube as a renderer sees it: a lattice
// of n×n×n sub-cubes, each with six face directions.
type FaceletSource interface {
	Size() int
	Visible(x, y, z int, face Face) bool
	FaceColor(x, y, z int, face Face) Color
}

var _ FaceletSource = (*Cube)(nil)

// Visible reports whether face of the sub-cube at lattice position x, y, z
// lies on the outside of the cube. The lattice runs x from Left to Right,
// y from Up to Down and z from Front to Back, each in [0, n).
func (c *Cube) Visible(x, y, z int, face Face) bool {
	n := c.n
	if x < 0 || x >= n || y < 0 || y >= n || z < 0 || z >= n {
		return false
	}

	switch face {
	case Up:
		return y == 0
	case Left:
		return x == 0
	case Front:
		return z == 0
	case Right:
		return x == n-1
	case Back:
		return z == n-1
	case Down:
		return y == n-1
	default:
		return false
	}
}

// FaceColor returns the color shown by face of the sub-cube at x, y, z.
// Faces that are not visible from outside return Black.
func (c *Cube) FaceColor(x, y, z int, face Face) Color {
	if !c.Visible(x, y, z, face) {
		return Black
	}

	row, col := c.latticeCell(x, y, z, face)
	return c.facelets[face][row][col]
}

// latticeCell maps a visible lattice facelet to its grid cell. The formulas
// follow from the orientation of each grid in FaceAdjacency.
func (c *Cube) latticeCell(x, y, z int, face Face) (row, col int) {
	n := c.n
	switch face {
	case Up:
		return n - 1 - z, x
	case Left:
		return y, n - 1 - z
	case Front:
		return y, x
	case Right:
		return y, z
	case Back:
		return y, n - 1 - x
	default: // Down
		return z, x
	}
}
