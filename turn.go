package twisty

// Turn represents the direction and magnitude of a turn.
type Turn int

const (
	TurnNone Turn = 0  // Identity
	CW       Turn = 1  // Clockwise (90 degrees)
	CCW      Turn = -1 // Counter-clockwise (90 degrees)
	Double   Turn = 2  // Half turn (180 degrees)
)

func (t Turn) String() string {
	switch t {
	case TurnNone:
		return "none"
	case CW:
		return "clockwise"
	case CCW:
		return "anticlockwise"
	case Double:
		return "double"
	default:
		return "unknown"
	}
}

// Quarters returns the number of clockwise quarter turns t stands for.
// CCW is three clockwise quarters.
func (t Turn) Quarters() int {
	switch t {
	case CW:
		return 1
	case CCW:
		return 3
	case Double:
		return 2
	default:
		return 0
	}
}

// Inverse returns the turn that undoes t.
// CW and CCW swap; Double and TurnNone are their own inverse.
func (t Turn) Inverse() Turn {
	switch t {
	case CW:
		return CCW
	case CCW:
		return CW
	default:
		return t
	}
}

// InverseTurn returns t.Inverse().
func InverseTurn(t Turn) Turn {
	return t.Inverse()
}

// TurnFromQuarters maps a quarter count (any integer, taken mod 4) back to
// a Turn.
func TurnFromQuarters(q int) Turn {
	switch ((q % 4) + 4) % 4 {
	case 1:
		return CW
	case 2:
		return Double
	case 3:
		return CCW
	default:
		return TurnNone
	}
}
