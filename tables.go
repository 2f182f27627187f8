package twisty

// Band selects the outer row or column of a face that borders a turning
// neighbor.
type Band int

const (
	BandTop Band = iota
	BandBottom
	BandLeft
	BandRight
)

func (b Band) String() string {
	switch b {
	case BandTop:
		return "top"
	case BandBottom:
		return "bottom"
	case BandLeft:
		return "left"
	case BandRight:
		return "right"
	default:
		return "?"
	}
}

// cell returns the grid coordinates of the i-th facelet of band b on an
// n×n face. Bands are walked so that the four bands of a ring join end to
// end: top right to left, bottom left to right, left top to bottom, right
// bottom to top.
func (b Band) cell(n, i int) (row, col int) {
	switch b {
	case BandTop:
		return 0, n - 1 - i
	case BandBottom:
		return n - 1, i
	case BandLeft:
		return i, 0
	default:
		return n - 1 - i, n - 1
	}
}

// Adjacency lists the four faces surrounding a face, in the order their
// bands cycle on a clockwise turn, and which band of each one is touched.
type Adjacency struct {
	Sides [4]Face
	Bands [4]Band
}

// FaceAdjacency is the ring of neighbors for each face turn, indexed by Face.
// A clockwise quarter turn moves the facelets of Sides[i] onto Sides[i+1].
var FaceAdjacency = [6]Adjacency{
	Up: {
		Sides: [4]Face{Left, Back, Right, Front},
		Bands: [4]Band{BandTop, BandTop, BandTop, BandTop},
	},
	Left: {
		Sides: [4]Face{Up, Front, Down, Back},
		Bands: [4]Band{BandLeft, BandLeft, BandLeft, BandRight},
	},
	Front: {
		Sides: [4]Face{Left, Up, Right, Down},
		Bands: [4]Band{BandRight, BandBottom, BandLeft, BandTop},
	},
	Right: {
		Sides: [4]Face{Down, Front, Up, Back},
		Bands: [4]Band{BandRight, BandRight, BandRight, BandLeft},
	},
	Back: {
		Sides: [4]Face{Down, Right, Up, Left},
		Bands: [4]Band{BandBottom, BandRight, BandTop, BandLeft},
	},
	Down: {
		Sides: [4]Face{Left, Front, Right, Back},
		Bands: [4]Band{BandBottom, BandBottom, BandBottom, BandBottom},
	},
}

// Axis identifies a whole-cube rotation.
type Axis int

const (
	AxisX Axis = iota // Follows R
	AxisY             // Follows U
	AxisZ             // Follows F
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	default:
		return "?"
	}
}

// Rotation describes a whole-cube quarter turn about one axis. Leading
// turns clockwise and Trailing anticlockwise (both seen from outside).
// Sides[i]'s whole grid moves onto Sides[i+1] after being turned by
// SideTurns[i].
type Rotation struct {
	Leading   Face
	Trailing  Face
	Sides     [4]Face
	SideTurns [4]Turn
}

// AxisRotation is the rotation table, indexed by Axis.
var AxisRotation = [3]Rotation{
	AxisX: {
		Leading:   Right,
		Trailing:  Left,
		Sides:     [4]Face{Front, Up, Back, Down},
		SideTurns: [4]Turn{TurnNone, Double, Double, TurnNone},
	},
	AxisY: {
		Leading:   Up,
		Trailing:  Down,
		Sides:     [4]Face{Left, Back, Right, Front},
		SideTurns: [4]Turn{TurnNone, TurnNone, TurnNone, TurnNone},
	},
	AxisZ: {
		Leading:   Front,
		Trailing:  Back,
		Sides:     [4]Face{Left, Up, Right, Down},
		SideTurns: [4]Turn{CW, CW, CW, CW},
	},
}

// Slice identifies a middle-layer move.
type Slice int

const (
	SliceM Slice = iota // Between L and R, follows L
	SliceE              // Between U and D, follows D
	SliceS              // Between F and B, follows F
)

func (s Slice) String() string {
	switch s {
	case SliceM:
		return "M"
	case SliceE:
		return "E"
	case SliceS:
		return "S"
	default:
		return "?"
	}
}

// WidePair names the slice that a wide turn of a face adds, and whether the
// slice turns against the face's own direction.
type WidePair struct {
	Slice    Slice
	Inverted bool
}

// FaceWidePair is indexed by Face.
var FaceWidePair = [6]WidePair{
	Up:    {Slice: SliceE, Inverted: true},
	Left:  {Slice: SliceM, Inverted: false},
	Front: {Slice: SliceS, Inverted: false},
	Right: {Slice: SliceM, Inverted: true},
	Back:  {Slice: SliceS, Inverted: true},
	Down:  {Slice: SliceE, Inverted: false},
}
