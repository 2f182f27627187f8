package twisty

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	cube.Apply(twisty.R, twisty.U, twisty.RPrime, twisty.UPrime)
var (
	// Right face moves
	R      = Move{Symbol: SymR, Turn: CW}     // Right clockwise
	RPrime = Move{Symbol: SymR, Turn: CCW}    // Right counter-clockwise
	R2     = Move{Symbol: SymR, Turn: Double} // Right 180

	// Left face moves
	L      = Move{Symbol: SymL, Turn: CW}     // Left clockwise
	LPrime = Move{Symbol: SymL, Turn: CCW}    // Left counter-clockwise
	L2     = Move{Symbol: SymL, Turn: Double} // Left 180

	// Up face moves
	U      = Move{Symbol: SymU, Turn: CW}     // Up clockwise
	UPrime = Move{Symbol: SymU, Turn: CCW}    // Up counter-clockwise
	U2     = Move{Symbol: SymU, Turn: Double} // Up 180

	// Down face moves
	D      = Move{Symbol: SymD, Turn: CW}     // Down clockwise
	DPrime = Move{Symbol: SymD, Turn: CCW}    // Down counter-clockwise
	D2     = Move{Symbol: SymD, Turn: Double} // Down 180

	// Front face moves
	F      = Move{Symbol: SymF, Turn: CW}     // Front clockwise
	FPrime = Move{Symbol: SymF, Turn: CCW}    // Front counter-clockwise
	F2     = Move{Symbol: SymF, Turn: Double} // Front 180

	// Back face moves
	B      = Move{Symbol: SymB, Turn: CW}     // Back clockwise
	BPrime = Move{Symbol: SymB, Turn: CCW}    // Back counter-clockwise
	B2     = Move{Symbol: SymB, Turn: Double} // Back 180

	// Whole-cube rotations
	X      = Move{Symbol: SymX, Turn: CW}
	XPrime = Move{Symbol: SymX, Turn: CCW}
	Y      = Move{Symbol: SymY, Turn: CW}
	YPrime = Move{Symbol: SymY, Turn: CCW}
	Z      = Move{Symbol: SymZ, Turn: CW}
	ZPrime = Move{Symbol: SymZ, Turn: CCW}

	// Slice moves
	M      = Move{Symbol: SymM, Turn: CW}
	MPrime = Move{Symbol: SymM, Turn: CCW}
	E      = Move{Symbol: SymE, Turn: CW}
	EPrime = Move{Symbol: SymE, Turn: CCW}
	S      = Move{Symbol: SymS, Turn: CW}
	SPrime = Move{Symbol: SymS, Turn: CCW}
)

// Wide returns the wide form of a face turn. Other moves are returned as is.
func Wide(m Move) Move {
	if _, ok := m.Symbol.Face(); ok {
		m.Wide = true
	}
	return m
}

// Sexy move: R U R' U' - one of the most common algorithms
var SexyMove = []Move{R, U, RPrime, UPrime}

// Inverse sexy move: U R U' R'
var InverseSexyMove = []Move{U, R, UPrime, RPrime}

// T-perm algorithm
var TPerm = []Move{R, U, RPrime, UPrime, RPrime, F, R2, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}
